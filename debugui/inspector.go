package debugui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gokyotris/puzzle"
)

// Inspector shows the live state of one engine: the snapshot tree, the
// composite grid, session counters and the label pool.
type Inspector struct {
	engine *puzzle.Engine
}

func NewInspector(engine *puzzle.Engine) *Inspector {
	return &Inspector{engine: engine}
}

func toVec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255.0, float32(c.G)/255.0, float32(c.B)/255.0, 1.0)
}

// GridRows renders a composite grid as one string per row, using '.' for
// empty cells and the group digit otherwise.
func GridRows(cells [][]puzzle.Cell) []string {
	rows := make([]string, len(cells))
	for r, row := range cells {
		var sb strings.Builder
		for _, c := range row {
			if c == puzzle.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c))
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

func (in *Inspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 480), imgui.CondOnce)

	if !imgui.BeginV("Engine Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := in.engine.Snapshot()
	imgui.Text(fmt.Sprintf("Session: %s", snap.SessionID))
	imgui.Text(fmt.Sprintf("State: %s  Frame: %d", snap.State, snap.Frame))
	imgui.Text(fmt.Sprintf("Level: %d  Ticks/drop: %d", snap.Level, snap.TicksPerDrop))

	if imgui.Button("Start") {
		in.engine.Start()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		in.engine.Restart()
	}

	imgui.Separator()
	if snap.Active != nil {
		info := in.engine.Catalog().GroupOf(snap.Active.Kind)
		imgui.PushStyleColorVec4(imgui.ColText, toVec4(info.Color))
		imgui.Text(fmt.Sprintf("■ %s  (%s)", snap.Active.Kind, info.Name))
		imgui.PopStyleColor()
		if snap.Label != nil {
			imgui.Indent()
			imgui.Text(snap.Label.Name)
			if snap.Label.Kanji != "" {
				imgui.Text(snap.Label.Kanji)
			}
			imgui.Unindent()
		}
	}

	if imgui.TreeNodeStr("Grid") {
		for _, row := range GridRows(snap.Composite()) {
			imgui.Text(row)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Snapshot") {
		renderNodes(Describe(snap))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Session Stats") {
		in.renderStats(in.engine.Stats())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Label Pool") {
		labels := in.engine.Labels()
		imgui.Text(fmt.Sprintf("Total: %d", labels.Len()))
		for _, g := range in.engine.Catalog().Groups() {
			imgui.PushStyleColorVec4(imgui.ColText, toVec4(g.Color))
			imgui.BulletText(fmt.Sprintf("%s: %d", g.Name, labels.Count(g.ID)))
			imgui.PopStyleColor()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (in *Inspector) renderStats(stats puzzle.Stats) {
	imgui.Text(fmt.Sprintf("Sessions: %d  Game overs: %d", stats.Sessions, stats.GamesOver))
	imgui.Text(fmt.Sprintf("Pieces: %d  Locks: %d", stats.Pieces, stats.Locks))
	imgui.Text(fmt.Sprintf("Lines: %d in %d clears", stats.Lines, stats.ClearEvents))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("KindTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Spawned")
		imgui.TableHeadersRow()
		for _, k := range puzzle.Kinds {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(k.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.PerKind[k]))
		}
		imgui.EndTable()
	}

	for _, t := range []puzzle.Tier{puzzle.TierYuko, puzzle.TierWaza, puzzle.TierIppon} {
		imgui.BulletText(fmt.Sprintf("%s: %d", t, stats.PerTier[t]))
	}
}

func renderNodes(nodes []Node) {
	for _, n := range nodes {
		if n.Children == nil {
			imgui.Text(fmt.Sprintf("%s: %s", n.Name, n.Value))
			continue
		}
		if imgui.TreeNodeStr(n.Name) {
			renderNodes(n.Children)
			imgui.TreePop()
		}
	}
}
