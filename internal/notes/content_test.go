package notes_test

import (
	"testing"

	"github.com/limbo/twentyfourseven/internal/notes"
	"github.com/limbo/twentyfourseven/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In      string
		Content string
		Type    entity.NoteType
	}{
		{In: "todo buy milk #errand", Content: "buy milk #ERRAND", Type: entity.NoteTodo},
		{In: "TODO call mom", Content: "call mom", Type: entity.NoteTodo},
		{In: "* water plants", Content: "water plants", Type: entity.NoteTodo},
		{In: "! pay rent #home", Content: "pay rent #HOME", Type: entity.NoteImportant},
		{In: "read https://go.dev/blog", Content: "read https://go.dev/blog", Type: entity.NoteLink},
		{In: "see www.example.com", Content: "see www.example.com", Type: entity.NoteLink},
		{In: "  just thinking #Ideas_2  ", Content: "just thinking #IDEAS_2", Type: entity.NoteText},
		{In: "todos are fun", Content: "todos are fun", Type: entity.NoteText},
	}
	for _, tc := range testCases {
		content, typ := notes.Parse(tc.In)
		assert.Equal(t, tc.Content, content, tc.In)
		assert.Equal(t, tc.Type, typ, tc.In)
	}
}

func TestResolveKeepsExplicitType(t *testing.T) {
	content, typ := notes.Resolve("buy oat milk", entity.NoteTodo)
	assert.Equal(t, "buy oat milk", content)
	assert.Equal(t, entity.NoteTodo, typ)

	_, typ = notes.Resolve("see https://example.com", entity.NoteImportant)
	assert.Equal(t, entity.NoteImportant, typ)

	_, typ = notes.Resolve("! now urgent", entity.NoteTodo)
	assert.Equal(t, entity.NoteImportant, typ)

	_, typ = notes.Resolve("plain again", entity.NoteLink)
	assert.Equal(t, entity.NoteText, typ)
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"#ERRAND", "#HOME"}, notes.Tags("#errand then #home and #Errand"))
	assert.Empty(t, notes.Tags("no tags here"))

	known := notes.KnownTags([]entity.NoteItem{
		{Content: "#WORK #GO"},
		{Content: "#GYM"},
		{Content: "#BIN", DeletedAt: ptrTime()},
	})
	assert.Equal(t, []string{"#GO", "#GYM", "#WORK"}, known)
}

func TestSuggest(t *testing.T) {
	known := []string{"#ERRAND", "#EVENING", "#EXERCISE", "#EAT", "#EMAIL", "#ENGLISH", "#WORK"}
	testCases := []struct {
		Name   string
		Text   string
		Cursor int
		Out    []string
	}{
		{Name: "prefix", Text: "buy milk #er", Cursor: 12, Out: []string{"#ERRAND"}},
		{Name: "capped at five", Text: "#e", Cursor: 2, Out: []string{"#ERRAND", "#EVENING", "#EXERCISE", "#EAT", "#EMAIL"}},
		{Name: "cursor in middle", Text: "#wo rest", Cursor: 3, Out: []string{"#WORK"}},
		{Name: "space before cursor", Text: "#work done", Cursor: 10, Out: nil},
		{Name: "no hash", Text: "hello", Cursor: 5, Out: nil},
		{Name: "exact match excluded", Text: "#work", Cursor: 5, Out: []string{}},
		{Name: "cursor past end", Text: "#wo", Cursor: 99, Out: []string{"#WORK"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := notes.Suggest(tc.Text, tc.Cursor, known)
			if tc.Out == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tc.Out, got)
		})
	}
}
