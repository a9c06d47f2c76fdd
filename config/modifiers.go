package config

import (
	"fmt"
	"strings"
)

// Tri is a three-valued modifier state.
type Tri uint8

const (
	// Any matches a modifier whether it is held or not.
	Any Tri = iota
	// On matches a held modifier.
	On
	// Off matches a released modifier.
	Off
)

// Match reports whether a modifier that is held (or not) matches t.
func (t Tri) Match(held bool) bool {
	switch t {
	case On:
		return held
	case Off:
		return !held
	}
	return true
}

// Modifiers is the state of the modifier keys at the time of an event.
type Modifiers struct {
	Alt, Shift, Ctrl bool
}

// ModifierSpec is a chord of Alt, Shift and Ctrl, each On, Off or Any.
//
// Its text form has three characters in the order Alt, Shift, Ctrl:
// an upper-case letter (A, S, C) for On, lower-case for Off and '?' for Any.
// "?sC" means Ctrl held, Shift released, Alt either way.
type ModifierSpec struct {
	Alt, Shift, Ctrl Tri
}

// ParseModifierSpec parses the three-character text form.
func ParseModifierSpec(s string) (ModifierSpec, error) {
	if len(s) != 3 {
		return ModifierSpec{}, fmt.Errorf("config: modifier spec %q: want 3 characters", s)
	}
	var spec ModifierSpec
	for i, dst := range []*Tri{&spec.Alt, &spec.Shift, &spec.Ctrl} {
		letter := "ASC"[i]
		switch c := s[i]; c {
		case '?':
			*dst = Any
		case letter:
			*dst = On
		case letter + 'a' - 'A':
			*dst = Off
		default:
			return ModifierSpec{}, fmt.Errorf("config: modifier spec %q: unexpected %q at %d", s, c, i)
		}
	}
	return spec, nil
}

// MustParseModifierSpec is like ParseModifierSpec but panics on error.
func MustParseModifierSpec(s string) ModifierSpec {
	spec, err := ParseModifierSpec(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// Match reports whether m satisfies every component of the chord.
func (s ModifierSpec) Match(m Modifiers) bool {
	return s.Alt.Match(m.Alt) && s.Shift.Match(m.Shift) && s.Ctrl.Match(m.Ctrl)
}

// String returns the three-character text form.
func (s ModifierSpec) String() string {
	var b strings.Builder
	for i, t := range []Tri{s.Alt, s.Shift, s.Ctrl} {
		switch t {
		case On:
			b.WriteByte("ASC"[i])
		case Off:
			b.WriteByte("asc"[i])
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s ModifierSpec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ModifierSpec) UnmarshalText(text []byte) error {
	spec, err := ParseModifierSpec(string(text))
	if err != nil {
		return err
	}
	*s = spec
	return nil
}
