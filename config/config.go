// Package config holds the preferences of the parallel-way gesture.
//
// A Config is a plain value: it is loaded once, validated and handed to a
// Session, which never changes it.
package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Config is the immutable preference set of a gesture.
type Config struct {
	// SnapThreshold is the distance from a whole unit within which the
	// offset snaps to it. Must be in [0, 0.5).
	SnapThreshold float64 `toml:"snap_threshold" yaml:"snap_threshold"`

	// SnapDefault enables snapping when the snap chord is not held.
	SnapDefault bool `toml:"snap_default" yaml:"snap_default"`

	// CopyTagsDefault copies tags when the copy-tags chord is not held.
	CopyTagsDefault bool `toml:"copy_tags_default" yaml:"copy_tags_default"`

	SnapModifierCombo           ModifierSpec `toml:"snap_modifier_combo" yaml:"snap_modifier_combo"`
	CopyTagsModifierCombo       ModifierSpec `toml:"copy_tags_modifier_combo" yaml:"copy_tags_modifier_combo"`
	AddToSelectionModifierCombo ModifierSpec `toml:"add_to_selection_modifier_combo" yaml:"add_to_selection_modifier_combo"`
	ToggleSelectedModifierCombo ModifierSpec `toml:"toggle_selection_modifier_combo" yaml:"toggle_selection_modifier_combo"`
	SetSelectedModifierCombo    ModifierSpec `toml:"set_selection_modifier_combo" yaml:"set_selection_modifier_combo"`

	// Language is the BCP 47 tag used for user-visible messages.
	Language string `toml:"language" yaml:"language"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		SnapThreshold:               0.35,
		SnapDefault:                 true,
		CopyTagsDefault:             true,
		SnapModifierCombo:           MustParseModifierSpec("?sC"),
		CopyTagsModifierCombo:       MustParseModifierSpec("As?"),
		AddToSelectionModifierCombo: MustParseModifierSpec("aSc"),
		ToggleSelectedModifierCombo: MustParseModifierSpec("asC"),
		SetSelectedModifierCombo:    MustParseModifierSpec("asc"),
		Language:                    "en",
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.SnapThreshold < 0 || c.SnapThreshold >= 0.5 {
		errs = append(errs, fmt.Errorf("config: snap_threshold %v out of range [0, 0.5)", c.SnapThreshold))
	}
	if _, err := language.Parse(c.Language); err != nil {
		errs = append(errs, fmt.Errorf("config: language %q: %w", c.Language, err))
	}
	return errors.Join(errs...)
}

// LanguageTag returns the parsed Language, falling back to English.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// Snap reports whether snapping is active with modifiers m held.
// The snap chord toggles SnapDefault.
func (c Config) Snap(m Modifiers) bool {
	return c.SnapDefault != c.SnapModifierCombo.Match(m)
}

// CopyTags reports whether tags are copied when a drag starts with m held.
// The copy-tags chord toggles CopyTagsDefault.
func (c Config) CopyTags(m Modifiers) bool {
	return c.CopyTagsDefault != c.CopyTagsModifierCombo.Match(m)
}

// DragAllowed reports whether a drag may start with m held: either no
// modifier at all, or a chord that changes snapping or tag copying.
func (c Config) DragAllowed(m Modifiers) bool {
	return m == Modifiers{} || c.SnapModifierCombo.Match(m) || c.CopyTagsModifierCombo.Match(m)
}
