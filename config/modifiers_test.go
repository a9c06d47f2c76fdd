package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModifierSpec(t *testing.T) {
	tests := []struct {
		in   string
		want ModifierSpec
	}{
		{"?sC", ModifierSpec{Alt: Any, Shift: Off, Ctrl: On}},
		{"As?", ModifierSpec{Alt: On, Shift: Off, Ctrl: Any}},
		{"aSc", ModifierSpec{Alt: Off, Shift: On, Ctrl: Off}},
		{"???", ModifierSpec{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModifierSpec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseModifierSpecErrors(t *testing.T) {
	for _, in := range []string{"", "as", "ascx", "SAC", "x??", "a?Z"} {
		_, err := ParseModifierSpec(in)
		assert.Error(t, err, "ParseModifierSpec(%q)", in)
	}
}

func TestModifierSpecMatch(t *testing.T) {
	snap := MustParseModifierSpec("?sC")

	assert.True(t, snap.Match(Modifiers{Ctrl: true}))
	assert.True(t, snap.Match(Modifiers{Ctrl: true, Alt: true}))
	assert.False(t, snap.Match(Modifiers{Ctrl: true, Shift: true}))
	assert.False(t, snap.Match(Modifiers{}))

	dontCare := ModifierSpec{}
	for _, m := range []Modifiers{{}, {Alt: true}, {Alt: true, Shift: true, Ctrl: true}} {
		assert.True(t, dontCare.Match(m), "??? must match %+v", m)
	}
}

func TestTriMatch(t *testing.T) {
	assert.True(t, On.Match(true))
	assert.False(t, On.Match(false))
	assert.True(t, Off.Match(false))
	assert.False(t, Off.Match(true))
	assert.True(t, Any.Match(true))
	assert.True(t, Any.Match(false))
}

func TestModifierSpecText(t *testing.T) {
	var s ModifierSpec
	require.NoError(t, s.UnmarshalText([]byte("asC")))
	assert.Equal(t, ModifierSpec{Alt: Off, Shift: Off, Ctrl: On}, s)

	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "asC", string(text))

	assert.Error(t, s.UnmarshalText([]byte("bad")))
}
