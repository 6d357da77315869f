package notes

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

// Notebook edits the notes of one month in memory. Callers persist Month() afterwards.
type Notebook struct {
	year  int
	month time.Month
	notes entity.NotesMonth
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

type Option func(*Notebook)

func WithClock(now func() time.Time) Option {
	return func(nb *Notebook) { nb.now = now }
}

func WithIDs(newID func() string) Option {
	return func(nb *Notebook) { nb.newID = newID }
}

func WithLocation(loc *time.Location) Option {
	return func(nb *Notebook) { nb.loc = loc }
}

func NewNotebook(year int, month time.Month, notes entity.NotesMonth, opts ...Option) *Notebook {
	if notes == nil {
		notes = make(entity.NotesMonth)
	}
	nb := &Notebook{
		year:  year,
		month: month,
		notes: notes,
		loc:   time.Local,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(nb)
	}
	return nb
}

func (nb *Notebook) Month() entity.NotesMonth {
	return nb.notes
}

// Items returns every note of the month, bin included, ordered by creation time.
func (nb *Notebook) Items() []entity.NoteItem {
	var out []entity.NoteItem
	for _, day := range nb.notes {
		out = append(out, day...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (nb *Notebook) Get(id string) (entity.NoteItem, error) {
	day, i, err := nb.find(id)
	if err != nil {
		return entity.NoteItem{}, err
	}
	return nb.notes[day][i], nil
}

// Add creates a note on day. Today's notes get the current time, other days keep the time of day.
func (nb *Notebook) Add(day int, content string) (entity.NoteItem, error) {
	if day < 1 || day > daysIn(nb.year, nb.month) {
		return entity.NoteItem{}, errors.Join(errorvalues.ErrValidation, errors.New("day is outside of the month"))
	}
	cleaned, t := Parse(content)
	if cleaned == "" {
		return entity.NoteItem{}, errors.Join(errorvalues.ErrValidation, errors.New("empty note"))
	}
	now := nb.now().In(nb.loc)
	created := time.Date(nb.year, nb.month, day, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), nb.loc)
	n := entity.NoteItem{
		ID:        nb.newID(),
		Content:   cleaned,
		CreatedAt: created,
		Type:      t,
	}
	nb.notes[day] = append(nb.notes[day], n)
	return n, nil
}

func (nb *Notebook) Edit(id, content string) (entity.NoteItem, error) {
	return nb.update(id, func(n *entity.NoteItem) error {
		cleaned, t := Resolve(content, n.Type)
		if cleaned == "" {
			return errors.Join(errorvalues.ErrValidation, errors.New("empty note"))
		}
		n.Content = cleaned
		nb.retype(n, t)
		return nil
	})
}

// SetType retypes a note explicitly.
func (nb *Notebook) SetType(id string, t entity.NoteType) (entity.NoteItem, error) {
	if !t.Valid() {
		return entity.NoteItem{}, errors.Join(errorvalues.ErrValidation, errors.New("unknown note type"))
	}
	return nb.update(id, func(n *entity.NoteItem) error {
		nb.retype(n, t)
		return nil
	})
}

// ToggleTodo flips the done flag. A note of another type becomes a todo first.
func (nb *Notebook) ToggleTodo(id string) (entity.NoteItem, error) {
	return nb.update(id, func(n *entity.NoteItem) error {
		n.Type = entity.NoteTodo
		n.IsDone = !n.IsDone
		if n.IsDone {
			now := nb.now()
			n.CompletedAt = &now
		} else {
			n.CompletedAt = nil
		}
		return nil
	})
}

func (nb *Notebook) TogglePin(id string) (entity.NoteItem, error) {
	return nb.update(id, func(n *entity.NoteItem) error {
		n.IsPinned = !n.IsPinned
		return nil
	})
}

// Delete moves a note to the recycle bin.
func (nb *Notebook) Delete(id string) (entity.NoteItem, error) {
	day, i, err := nb.find(id)
	if err != nil {
		return entity.NoteItem{}, err
	}
	n := &nb.notes[day][i]
	if n.Deleted() {
		return entity.NoteItem{}, errorvalues.ErrNoteDeleted
	}
	now := nb.now()
	n.DeletedAt = &now
	return *n, nil
}

func (nb *Notebook) Restore(id string) (entity.NoteItem, error) {
	day, i, err := nb.find(id)
	if err != nil {
		return entity.NoteItem{}, err
	}
	n := &nb.notes[day][i]
	if !n.Deleted() {
		return entity.NoteItem{}, errorvalues.ErrNoteNotDeleted
	}
	n.DeletedAt = nil
	return *n, nil
}

// PermanentDelete removes a note from the recycle bin for good.
func (nb *Notebook) PermanentDelete(id string) error {
	day, i, err := nb.find(id)
	if err != nil {
		return err
	}
	if !nb.notes[day][i].Deleted() {
		return errorvalues.ErrNoteNotDeleted
	}
	nb.remove(day, i)
	return nil
}

// EmptyBin removes every soft-deleted note and reports how many were removed.
func (nb *Notebook) EmptyBin() int {
	removed := 0
	for day, items := range nb.notes {
		kept := items[:0]
		for _, n := range items {
			if n.Deleted() {
				removed++
				continue
			}
			kept = append(kept, n)
		}
		if len(kept) == 0 {
			delete(nb.notes, day)
		} else {
			nb.notes[day] = kept
		}
	}
	return removed
}

// Merge joins the contents of notes into the oldest of them and removes the rest.
func (nb *Notebook) Merge(ids []string) (entity.NoteItem, error) {
	if len(ids) < 2 {
		return entity.NoteItem{}, errors.Join(errorvalues.ErrValidation, errors.New("at least two notes are needed to merge"))
	}
	items := make([]entity.NoteItem, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		n, err := nb.Get(id)
		if err != nil {
			return entity.NoteItem{}, err
		}
		if n.Deleted() {
			return entity.NoteItem{}, errorvalues.ErrNoteDeleted
		}
		items = append(items, n)
	}
	if len(items) < 2 {
		return entity.NoteItem{}, errors.Join(errorvalues.ErrValidation, errors.New("at least two notes are needed to merge"))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	contents := make([]string, 0, len(items))
	pinned := false
	for _, n := range items {
		contents = append(contents, n.Content)
		pinned = pinned || n.IsPinned
	}
	for _, n := range items[1:] {
		day, i, _ := nb.find(n.ID)
		nb.remove(day, i)
	}
	return nb.update(items[0].ID, func(n *entity.NoteItem) error {
		n.Content = strings.Join(contents, "\n")
		n.IsPinned = pinned
		return nil
	})
}

// Split turns every non-empty line of a note into its own note on the same day.
func (nb *Notebook) Split(id string) ([]entity.NoteItem, error) {
	day, i, err := nb.find(id)
	if err != nil {
		return nil, err
	}
	orig := nb.notes[day][i]
	if orig.Deleted() {
		return nil, errorvalues.ErrNoteDeleted
	}
	var lines []string
	for _, l := range strings.Split(orig.Content, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("note has a single line"))
	}
	first, err := nb.update(id, func(n *entity.NoteItem) error {
		var t entity.NoteType
		n.Content, t = Resolve(lines[0], n.Type)
		nb.retype(n, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := []entity.NoteItem{first}
	for k, l := range lines[1:] {
		cleaned, t := Parse(l)
		n := entity.NoteItem{
			ID:        nb.newID(),
			Content:   cleaned,
			CreatedAt: orig.CreatedAt.Add(time.Duration(k+1) * time.Millisecond),
			Type:      t,
		}
		nb.notes[day] = append(nb.notes[day], n)
		out = append(out, n)
	}
	return out, nil
}

func (nb *Notebook) retype(n *entity.NoteItem, t entity.NoteType) {
	n.Type = t
	if t != entity.NoteTodo {
		n.IsDone = false
		n.CompletedAt = nil
	}
}

// update applies fn to an active note and stamps UpdatedAt.
func (nb *Notebook) update(id string, fn func(n *entity.NoteItem) error) (entity.NoteItem, error) {
	day, i, err := nb.find(id)
	if err != nil {
		return entity.NoteItem{}, err
	}
	n := nb.notes[day][i]
	if n.Deleted() {
		return entity.NoteItem{}, errorvalues.ErrNoteDeleted
	}
	if err := fn(&n); err != nil {
		return entity.NoteItem{}, err
	}
	now := nb.now()
	n.UpdatedAt = &now
	nb.notes[day][i] = n
	return n, nil
}

func (nb *Notebook) find(id string) (int, int, error) {
	for day, items := range nb.notes {
		for i := range items {
			if items[i].ID == id {
				return day, i, nil
			}
		}
	}
	return 0, 0, errorvalues.ErrNoteNotFound
}

func (nb *Notebook) remove(day, i int) {
	items := nb.notes[day]
	items = append(items[:i], items[i+1:]...)
	if len(items) == 0 {
		delete(nb.notes, day)
		return
	}
	nb.notes[day] = items
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
