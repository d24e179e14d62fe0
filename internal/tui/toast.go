package tui

import "strings"

// toast is the one-line notification shown under a screen. Only the most
// recent message is kept; any key press dismisses it.
type toast struct {
	text  string
	level toastLevel
}

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastWarning
	toastError
)

func successToast(text string) toast { return toast{text: text, level: toastSuccess} }
func warningToast(text string) toast { return toast{text: text, level: toastWarning} }
func errorToast(text string) toast   { return toast{text: text, level: toastError} }

func (t toast) empty() bool {
	return strings.TrimSpace(t.text) == ""
}

func (t toast) View() string {
	if t.empty() {
		return ""
	}
	switch t.level {
	case toastError:
		return ErrorStyle.Render("✗ " + t.text)
	case toastWarning:
		return warningStyle.Render("! " + t.text)
	default:
		return successStyle.Render("✓ " + t.text)
	}
}
