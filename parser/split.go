package parser

// SplitTopLevel splits s on the commas that are not nested inside any pair of
// brackets or parentheses. Unbalanced closing delimiters are ignored. The
// result always has at least one element.
func SplitTopLevel(s string) []string {
	var (
		segments []string
		depth    int
		start    int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				segments = append(segments, s[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, s[start:])
}
