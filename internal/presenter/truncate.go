package presenter

const ellipsis = "..."

// truncate cuts s to limit runes and appends suffix when it did. A
// non-positive limit disables truncation.
func truncate(s string, limit int, suffix string) string {
	if limit <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + suffix
}
