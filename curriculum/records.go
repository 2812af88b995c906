package curriculum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultCollection = "techniques"
	recordsPerPage    = 200
	eligibleFilter    = `group != "" && group != "` + OtherGroup + `"`
)

// RecordsSource pages through a collection of the app's record API
// (GET /api/collections/<name>/records).
type RecordsSource struct {
	skipCounter
	baseURL    string
	collection string
	client     *http.Client
}

// NewRecordsSource targets the API at baseURL. A nil client gets a default
// with a ten second timeout.
func NewRecordsSource(baseURL, collection string, client *http.Client) *RecordsSource {
	if collection == "" {
		collection = DefaultCollection
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RecordsSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		collection: collection,
		client:     client,
	}
}

type recordsPage struct {
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
	Items      []json.RawMessage `json:"items"`
}

// Techniques fetches every page. Records that do not decode are skipped and
// counted.
func (s *RecordsSource) Techniques(ctx context.Context) ([]Technique, error) {
	s.resetSkipped()
	var out []Technique
	for page := 1; ; page++ {
		p, err := s.fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		for _, raw := range p.Items {
			var t Technique
			if err := json.Unmarshal(raw, &t); err != nil {
				s.skip()
				continue
			}
			out = append(out, t)
		}
		if page >= p.TotalPages || len(p.Items) == 0 {
			return out, nil
		}
	}
}

func (s *RecordsSource) fetch(ctx context.Context, page int) (*recordsPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(recordsPerPage))
	q.Set("filter", eligibleFilter)
	q.Set("sort", "@random")
	endpoint := fmt.Sprintf("%s/api/collections/%s/records?%s", s.baseURL, url.PathEscape(s.collection), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s page %d: %w", s.collection, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s page %d: unexpected status %s", s.collection, page, resp.Status)
	}

	var p recordsPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode %s page %d: %w", s.collection, page, err)
	}
	return &p, nil
}
