package parallel

import (
	"slices"

	"github.com/gogpu/gg-parallel/config"
)

// Selection is the ordered set of source ways a gesture starts from.
// Ways keep the order in which they were selected.
type Selection struct {
	ids []WayID
}

// IDs returns the selected ways in selection order.
func (s *Selection) IDs() []WayID { return slices.Clone(s.ids) }

// Len returns the number of selected ways.
func (s *Selection) Len() int { return len(s.ids) }

// Contains reports whether id is selected.
func (s *Selection) Contains(id WayID) bool { return slices.Contains(s.ids, id) }

// Add selects id if it is not selected yet.
func (s *Selection) Add(id WayID) {
	if !s.Contains(id) {
		s.ids = append(s.ids, id)
	}
}

// Remove deselects id.
func (s *Selection) Remove(id WayID) {
	s.ids = slices.DeleteFunc(s.ids, func(x WayID) bool { return x == id })
}

// Clear deselects everything.
func (s *Selection) Clear() { s.ids = s.ids[:0] }

// Ensure makes id part of the selection. If it is not selected, the
// selection is replaced by id alone.
func (s *Selection) Ensure(id WayID) {
	if !s.Contains(id) {
		s.Clear()
		s.Add(id)
	}
}

// Click applies a click that did not turn into a drag. hit reports whether
// the click landed on way id. The chord held decides the effect: the
// set-selected chord replaces the selection (or clears it on a miss), the
// add chord adds, the toggle chord toggles. Other chords do nothing.
func (s *Selection) Click(cfg config.Config, mods config.Modifiers, id WayID, hit bool) {
	if !hit {
		if cfg.SetSelectedModifierCombo.Match(mods) {
			s.Clear()
		}
		return
	}
	switch {
	case cfg.AddToSelectionModifierCombo.Match(mods):
		s.Add(id)
	case cfg.ToggleSelectedModifierCombo.Match(mods):
		if s.Contains(id) {
			s.Remove(id)
		} else {
			s.Add(id)
		}
	case cfg.SetSelectedModifierCombo.Match(mods):
		s.Clear()
		s.Add(id)
	}
}

// Chain collects the selected ways into a SourceChain using lookup, with
// ref as the reference way. Ways lookup does not know are skipped.
func (s *Selection) Chain(lookup func(WayID) (Way, bool), ref WayID) (SourceChain, error) {
	chain := SourceChain{Ref: -1}
	for _, id := range s.ids {
		w, ok := lookup(id)
		if !ok {
			continue
		}
		if id == ref {
			chain.Ref = len(chain.Ways)
		}
		chain.Ways = append(chain.Ways, w)
	}
	if chain.Ref < 0 {
		return SourceChain{}, &ReferenceError{Way: -1, Index: -1}
	}
	return chain, nil
}
