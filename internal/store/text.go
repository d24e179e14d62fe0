package store

// PreviewLength is the number of characters kept by Truncate.
const PreviewLength = 25

// Truncate shortens s to PreviewLength characters followed by "...".
// It reports whether anything was cut.
func Truncate(s string) (string, bool) {
	runes := []rune(s)
	if len(runes) <= PreviewLength {
		return s, false
	}
	return string(runes[:PreviewLength]) + "...", true
}
