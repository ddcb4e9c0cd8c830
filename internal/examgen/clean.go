package examgen

import "strings"

// bannedPhrases mark decorative lines the model is told not to write.
var bannedPhrases = []string{
	"mock exam",
	"instructions",
	"multiple choice",
	"---",
}

// Clean drops every line whose lower-cased, trimmed content contains a banned
// phrase. Remaining lines keep their relative order.
func Clean(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isBanned(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isBanned(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	for _, p := range bannedPhrases {
		if strings.Contains(l, p) {
			return true
		}
	}
	return false
}
