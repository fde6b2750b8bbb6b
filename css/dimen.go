package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/shadowdom/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= None
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| FontRel unit
	| ViewRel unit
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsNone is true for dimensions which could not be parsed from property
// text. The zero value of DimenT is None.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return d.d.String()
	}
	if d.flags&dimenPercent > 0 {
		return d.percent.String()
	}
	if d.flags&relativeMask > 0 {
		return "<font/view relative>"
	}
	return "<none>"
}

// Dimen parses the text of a style property into a dimension. Recognized
// are the keywords auto/initial/inherit, percentages, the absolute units
// pt/px/mm/cm/in (normalized to points) and the relative units
// em/ex/rem/vw/vh (kind only; resolving them against a font or viewport
// is outside this package). Everything else yields None.
func Dimen(p style.Property) DimenT {
	v := strings.ToLower(strings.TrimSpace(string(p)))
	switch v {
	case "":
		return DimenT{}
	case "auto":
		return Auto()
	case "initial":
		return Initial()
	case "inherit":
		return Inherit()
	}
	if strings.HasSuffix(v, "%") {
		if n, err := strconv.Atoi(strings.TrimSuffix(v, "%")); err == nil {
			return Percentage(FromInt(n))
		}
		return DimenT{}
	}
	num, unit := v, ""
	if i := strings.IndexFunc(v, func(r rune) bool { return r >= 'a' && r <= 'z' }); i >= 0 {
		num, unit = v[:i], v[i:]
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}
	}
	pts := func(scale float64) DimenT {
		return JustDimen(dimen.DU(f * scale * float64(dimen.PT)))
	}
	switch unit {
	case "pt":
		return pts(1)
	case "px":
		return pts(0.75) // 1px = 3/4pt
	case "in":
		return pts(72)
	case "cm":
		return pts(72 / 2.54)
	case "mm":
		return pts(72 / 25.4)
	case "em":
		return DimenT{flags: dimenEM}
	case "ex":
		return DimenT{flags: dimenEX}
	case "rem":
		return DimenT{flags: dimenREM}
	case "vw":
		return DimenT{flags: dimenVW}
	case "vh":
		return DimenT{flags: dimenVH}
	case "":
		if f == 0 { // unitless zero is a legal length
			return JustDimen(0)
		}
	}
	return DimenT{}
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	None    T
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	if m.dimen.flags == dimenNone {
		return patterns.None
	}
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
