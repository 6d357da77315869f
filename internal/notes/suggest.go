package notes

import (
	"strings"
	"unicode"
)

const MaxSuggestions = 5

// Suggest returns up to MaxSuggestions known tags completing the tag being typed at cursor.
// cursor counts runes. Nothing is suggested when the cursor is not inside a tag.
func Suggest(text string, cursor int, known []string) []string {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	hash := -1
	for i := cursor - 1; i >= 0; i-- {
		if runes[i] == '#' {
			hash = i
			break
		}
		if unicode.IsSpace(runes[i]) {
			return nil
		}
	}
	if hash < 0 {
		return nil
	}
	prefix := "#" + strings.ToUpper(string(runes[hash+1:cursor]))
	out := make([]string, 0, MaxSuggestions)
	for _, tag := range known {
		tag = strings.ToUpper(tag)
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		if strings.HasPrefix(tag, prefix) && tag != prefix {
			out = append(out, tag)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}
