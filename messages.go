package parallel

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. They double as the English text.
const (
	msgBranching      = "The ways selected must form a simple branchless path"
	msgDegenerate     = "The ways selected contain a zero-length segment"
	msgReference      = "The reference segment is not part of the selected ways"
	msgModifiers      = "This modifier combination cannot start a parallel copy"
	msgFailed         = "Make parallel way error"
	msgHelpIdle       = "Select ways as in Select mode. Drag selected ways or a single way to create a parallel copy (Alt toggles tag preservation)"
	msgHelpOffsetting = "Hold Ctrl to toggle snapping"
	msgDistance       = "Distance: %.2f"
)

func init() {
	de := []struct{ key, msg string }{
		{msgBranching, "Die ausgewählten Wege müssen einen einfachen, unverzweigten Pfad bilden"},
		{msgDegenerate, "Die ausgewählten Wege enthalten ein Segment der Länge null"},
		{msgReference, "Das Referenzsegment gehört nicht zu den ausgewählten Wegen"},
		{msgModifiers, "Mit dieser Tastenkombination kann keine parallele Kopie begonnen werden"},
		{msgFailed, "Fehler beim Erstellen des parallelen Weges"},
		{msgHelpIdle, "Wege wie im Auswahlmodus wählen. Ausgewählte Wege oder einen einzelnen Weg ziehen, um eine parallele Kopie zu erstellen (Alt schaltet das Übernehmen der Tags um)"},
		{msgHelpOffsetting, "Strg gedrückt halten, um das Einrasten umzuschalten"},
		{msgDistance, "Abstand: %.2f"},
	}
	for _, e := range de {
		if err := message.SetString(language.German, e.key, e.msg); err != nil {
			panic(err)
		}
	}
}

// Message returns the user-visible text for an error returned by Arm or
// NewWays in the language tag, or "" for errors the user cannot act on.
func Message(tag language.Tag, err error) string {
	p := message.NewPrinter(tag)
	switch {
	case errors.Is(err, ErrInvalidTopology):
		return p.Sprintf(msgBranching)
	case errors.Is(err, ErrDegenerateSegment):
		return p.Sprintf(msgDegenerate)
	case errors.Is(err, ErrInvalidReference):
		return p.Sprintf(msgReference)
	case errors.Is(err, ErrInvalidModifiers):
		return p.Sprintf(msgModifiers)
	}
	return ""
}

// Title returns the title for a rejected gesture.
func Title(tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf(msgFailed)
}

// HelpText returns the status line help for a gesture state.
func HelpText(tag language.Tag, s State) string {
	p := message.NewPrinter(tag)
	switch s {
	case StateArmed, StateOffsetting:
		return p.Sprintf(msgHelpOffsetting)
	}
	return p.Sprintf(msgHelpIdle)
}

// DistanceText formats the absolute offset distance for the status line.
func DistanceText(tag language.Tag, d float64) string {
	if d < 0 {
		d = -d
	}
	return message.NewPrinter(tag).Sprintf(msgDistance, d)
}
