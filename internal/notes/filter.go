package notes

import (
	"sort"
	"strings"

	"github.com/limbo/twentyfourseven/pkg/entity"
)

type ViewMode string

const (
	ViewComfortable ViewMode = "comfortable"
	ViewCompact     ViewMode = "compact"
	ViewList        ViewMode = "list"
)

func ParseViewMode(s string) ViewMode {
	switch ViewMode(strings.ToLower(s)) {
	case ViewCompact:
		return ViewCompact
	case ViewList:
		return ViewList
	default:
		return ViewComfortable
	}
}

type Filter struct {
	Bin           bool
	Tag           string
	Search        string
	Types         []entity.NoteType
	PinnedOnly    bool
	CompletedOnly bool
	Sort          bool
}

type DayNotes struct {
	Day   int               `json:"day"`
	Notes []entity.NoteItem `json:"notes"`
}

type View struct {
	Mode  ViewMode          `json:"mode"`
	Days  []DayNotes        `json:"days,omitempty"`
	Items []entity.NoteItem `json:"items,omitempty"`
	Tags  []string          `json:"tags"`
	Total int               `json:"total"`
}

// Match runs the fixed filter chain on one note:
// bin membership, tag, search text, type set, pinned only, completed only.
func (f Filter) Match(n entity.NoteItem) bool {
	if n.Deleted() != f.Bin {
		return false
	}
	if tag := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(f.Tag), "#")); tag != "" {
		found := false
		for _, t := range Tags(n.Content) {
			if strings.Contains(t, tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q := strings.TrimSpace(f.Search); q != "" && !strings.Contains(strings.ToLower(n.Content), strings.ToLower(q)) {
		return false
	}
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if n.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.PinnedOnly && !n.IsPinned {
		return false
	}
	if f.CompletedOnly && !n.IsDone {
		return false
	}
	return true
}

// Apply filters every day of month and, when asked, sorts each day.
// Days come newest first; empty days are dropped.
func (f Filter) Apply(month entity.NotesMonth) []DayNotes {
	days := make([]DayNotes, 0, len(month))
	for day, items := range month {
		matched := make([]entity.NoteItem, 0, len(items))
		for _, n := range items {
			if f.Match(n) {
				matched = append(matched, n)
			}
		}
		if len(matched) == 0 {
			continue
		}
		if f.Sort {
			SortNotes(matched)
		}
		days = append(days, DayNotes{Day: day, Notes: matched})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day > days[j].Day })
	return days
}

var typePriority = map[entity.NoteType]int{
	entity.NoteImportant: 0,
	entity.NoteTodo:      1,
	entity.NoteLink:      2,
	entity.NoteText:      3,
}

// SortNotes orders pinned first, undone before done, by type priority, then newest first.
func SortNotes(items []entity.NoteItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		if a.IsDone != b.IsDone {
			return !a.IsDone
		}
		if pa, pb := typePriority[a.Type], typePriority[b.Type]; pa != pb {
			return pa < pb
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// Render builds the listing of month in the given density.
func Render(month entity.NotesMonth, f Filter, mode ViewMode) View {
	days := f.Apply(month)
	var all []entity.NoteItem
	for _, items := range month {
		all = append(all, items...)
	}
	v := View{Mode: mode, Tags: KnownTags(all)}
	for _, d := range days {
		v.Total += len(d.Notes)
	}
	if mode == ViewList {
		v.Items = make([]entity.NoteItem, 0, v.Total)
		for _, d := range days {
			v.Items = append(v.Items, d.Notes...)
		}
		return v
	}
	v.Days = days
	return v
}
