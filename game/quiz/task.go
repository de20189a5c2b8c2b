package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the task family of a session. The string values double as the
// game_id of the highscore service.
type Mode string

const (
	ModeMolar Mode = "molar"
	ModeAtom  Mode = "atom"
)

// Modes lists the playable modes in menu order.
var Modes = []Mode{ModeMolar, ModeAtom}

func (m Mode) Valid() bool {
	return m == ModeMolar || m == ModeAtom
}

// Title is the menu name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeMolar:
		return "Molar mass"
	case ModeAtom:
		return "Atom builder"
	default:
		return string(m)
	}
}

// Prompt is the HUD prefix shown in front of the task.
func (m Mode) Prompt() string {
	switch m {
	case ModeMolar:
		return "Formula:"
	case ModeAtom:
		return "Element:"
	default:
		return ""
	}
}

// DecoyPolicy bounds the wrong answers generated around a correct one.
type DecoyPolicy struct {
	Floor    int // minimum half-width of the draw range
	MinValue int
	MaxValue int // set by the digit budget
}

var (
	MolarDecoys = DecoyPolicy{Floor: 20, MinValue: 1, MaxValue: 999}
	AtomDecoys  = DecoyPolicy{Floor: 5, MinValue: 0, MaxValue: 99}
)

// Range returns the inclusive bounds decoys are drawn from.
func (p DecoyPolicy) Range(correct int) (lo, hi int) {
	half := max(p.Floor, correct/2)
	lo = max(p.MinValue, correct-half)
	hi = min(p.MaxValue, correct+half)
	return lo, hi
}

// Task is one quiz question. MolarTask and AtomTask are the only
// implementations.
type Task interface {
	Answer() int
	Decoys() DecoyPolicy
	// Label is plain ASCII, safe for bitmap fonts.
	Label() string
	// Pretty uses Unicode sub- and superscripts.
	Pretty() string
}

type MolarTask struct {
	Compound Compound
}

func (t MolarTask) Answer() int         { return t.Compound.Mass }
func (t MolarTask) Decoys() DecoyPolicy { return MolarDecoys }
func (t MolarTask) Label() string       { return t.Compound.Formula }
func (t MolarTask) Pretty() string      { return FormatFormula(t.Compound.Formula) }

// Particle is what an atom task asks to count.
type Particle int

const (
	Protons Particle = iota
	Neutrons
	Electrons
)

var particles = []Particle{Protons, Electrons, Neutrons}

func (p Particle) String() string {
	switch p {
	case Protons:
		return "protons"
	case Neutrons:
		return "neutrons"
	case Electrons:
		return "electrons"
	default:
		return "particles"
	}
}

// Symbol is the short particle notation used in the task display.
func (p Particle) Symbol() string {
	switch p {
	case Protons:
		return "p⁺"
	case Neutrons:
		return "n"
	case Electrons:
		return "e⁻"
	default:
		return "?"
	}
}

type AtomTask struct {
	Element  Element
	Particle Particle
	Ion      bool // count electrons of the ion rather than the neutral atom
}

func (t AtomTask) Answer() int {
	e := t.Element
	switch t.Particle {
	case Protons:
		return e.Z
	case Neutrons:
		return e.A - e.Z
	case Electrons:
		if t.Ion {
			return e.Z - e.Charge
		}
		return e.Z
	default:
		return 0
	}
}

func (t AtomTask) Decoys() DecoyPolicy { return AtomDecoys }

func (t AtomTask) Label() string {
	sym := t.Element.Symbol
	if t.Ion {
		sym += chargeText(t.Element.Charge, "+", "-")
	}
	return fmt.Sprintf("%s (%s)", sym, t.Particle)
}

func (t AtomTask) Pretty() string {
	sym := t.Element.Symbol
	if t.Ion {
		sym += toSuperscript(chargeText(t.Element.Charge, "+", "−"))
	}
	return fmt.Sprintf("%s (%s)", sym, t.Particle.Symbol())
}

// chargeText renders +1 as "+", -2 as "2-" and so on.
func chargeText(charge int, plus, minus string) string {
	sign := plus
	if charge < 0 {
		sign = minus
	}
	mag := charge
	if mag < 0 {
		mag = -mag
	}
	if mag == 1 {
		return sign
	}
	return strconv.Itoa(mag) + sign
}

const (
	subscriptDigits   = "₀₁₂₃₄₅₆₇₈₉"
	superscriptDigits = "⁰¹²³⁴⁵⁶⁷⁸⁹"
)

// FormatFormula turns the digits of a formula into subscripts, CO2 -> CO₂.
func FormatFormula(formula string) string {
	sub := []rune(subscriptDigits)
	var b strings.Builder
	for _, r := range formula {
		if r >= '0' && r <= '9' {
			b.WriteRune(sub[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toSuperscript(s string) string {
	sup := []rune(superscriptDigits)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(sup[r-'0'])
		case r == '+':
			b.WriteRune('⁺')
		case r == '-' || r == '−':
			b.WriteRune('⁻')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
