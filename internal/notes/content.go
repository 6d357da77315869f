// Package notes implements the journal notes of a month: typing from content,
// tags, soft delete with a recycle bin, merge/split and the listing pipeline.
package notes

import (
	"regexp"
	"sort"
	"strings"

	"github.com/limbo/twentyfourseven/pkg/entity"
)

var (
	tagRe = regexp.MustCompile(`#([\p{L}\p{N}_-]+)`)
	urlRe = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
)

// Parse strips a type prefix from content and upper-cases its tags.
//
//	"todo " or "* " -> todo, "! " -> important, any URL -> link, otherwise text.
func Parse(content string) (string, entity.NoteType) {
	content = strings.TrimSpace(content)
	t := entity.NoteText
	lower := strings.ToLower(content)
	switch {
	case strings.HasPrefix(lower, "todo "):
		content, t = content[len("todo "):], entity.NoteTodo
	case strings.HasPrefix(content, "* "):
		content, t = content[len("* "):], entity.NoteTodo
	case strings.HasPrefix(content, "! "):
		content, t = content[len("! "):], entity.NoteImportant
	case urlRe.MatchString(content):
		t = entity.NoteLink
	}
	return UppercaseTags(strings.TrimSpace(content)), t
}

// Resolve parses edited content keeping a todo or important type the note already had.
func Resolve(content string, prev entity.NoteType) (string, entity.NoteType) {
	cleaned, t := Parse(content)
	if t == entity.NoteText || t == entity.NoteLink {
		if prev == entity.NoteTodo || prev == entity.NoteImportant {
			return cleaned, prev
		}
	}
	return cleaned, t
}

func UppercaseTags(content string) string {
	return tagRe.ReplaceAllStringFunc(content, strings.ToUpper)
}

// Tags returns the distinct tags of content, upper-cased and including the leading '#'.
func Tags(content string) []string {
	matches := tagRe.FindAllString(content, -1)
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.ToUpper(m)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		tags = append(tags, m)
	}
	return tags
}

// KnownTags collects the tags of every note that is not in the recycle bin.
func KnownTags(items []entity.NoteItem) []string {
	seen := make(map[string]struct{})
	for _, n := range items {
		if n.Deleted() {
			continue
		}
		for _, t := range Tags(n.Content) {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
