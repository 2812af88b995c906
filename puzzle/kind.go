package puzzle

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven canonical tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindZ
	KindT

	numKinds
)

// Kinds lists every kind in canonical order.
var Kinds = [numKinds]Kind{KindI, KindJ, KindL, KindO, KindS, KindZ, KindT}

var kindNames = [numKinds]string{"I", "J", "L", "O", "S", "Z", "T"}

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the seven canonical kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// ParseKind parses a single-letter kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// Shape returns a fresh copy of the kind's spawn matrix.
func (k Kind) Shape() Matrix {
	if k >= numKinds {
		return nil
	}
	return shapes[k].Clone()
}

var shapes = [numKinds]Matrix{
	KindI: mustMatrix("1111", "0000", "0000", "0000"),
	KindJ: mustMatrix("100", "111", "000"),
	KindL: mustMatrix("001", "111", "000"),
	KindO: mustMatrix("11", "11"),
	KindS: mustMatrix("011", "110", "000"),
	KindZ: mustMatrix("110", "011", "000"),
	KindT: mustMatrix("010", "111", "000"),
}
