package logger

// MaxFieldLen is the longest a single field value is allowed to be in a log
// entry. Feedback bodies are free text of unbounded length; logging them
// whole would bloat CloudWatch and leak more customer content than a
// diagnostic needs.
const MaxFieldLen = 256

// TruncateText shortens s to at most n runes, marking the cut.
// "some very long feedback..." stays identifiable without the full body.
func TruncateText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "...(truncated)"
}
