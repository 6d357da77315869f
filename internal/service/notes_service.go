package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/notes"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type NotesService struct {
	store repository.NoteStoreI
	loc   *time.Location
	now   func() time.Time
	newID func() string
	locks *UserLocks
}

func NewNotesService(store repository.NoteStoreI, loc *time.Location) *NotesService {
	if store == nil {
		log.Fatal("on notes service provided nil store")
	}
	if loc == nil {
		loc = time.Local
	}
	return &NotesService{
		store: store,
		loc:   loc,
		now:   time.Now,
		locks: NewUserLocks(),
	}
}

// WithClock replaces the time source.
func (ns *NotesService) WithClock(now func() time.Time) *NotesService {
	ns.now = now
	return ns
}

// WithLocks makes the service share a lock registry with other writers of the user's keys.
func (ns *NotesService) WithLocks(locks *UserLocks) *NotesService {
	ns.locks = locks
	return ns
}

// WithIDs replaces the note id generator.
func (ns *NotesService) WithIDs(newID func() string) *NotesService {
	ns.newID = newID
	return ns
}

func (ns *NotesService) notebook(ref MonthRef, m entity.NotesMonth) *notes.Notebook {
	opts := []notes.Option{notes.WithLocation(ns.loc), notes.WithClock(ns.now)}
	if ns.newID != nil {
		opts = append(opts, notes.WithIDs(ns.newID))
	}
	return notes.NewNotebook(ref.Year, ref.Month, m, opts...)
}

func (ns *NotesService) load(ctx context.Context, ref MonthRef) (entity.NotesMonth, error) {
	if ref.Month < time.January || ref.Month > time.December || ref.Year < 1 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("invalid month"))
	}
	m, err := ns.store.LoadMonth(ctx, ref.UserID, ref.Year, ref.Month)
	if err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	return m, nil
}

// mutate loads the month, applies fn and saves the result under the user's lock.
func (ns *NotesService) mutate(ctx context.Context, ref MonthRef, fn func(nb *notes.Notebook) error) error {
	unlock := ns.locks.Lock(ref.UserID)
	defer unlock()
	m, err := ns.load(ctx, ref)
	if err != nil {
		return err
	}
	nb := ns.notebook(ref, m)
	if err = fn(nb); err != nil {
		return err
	}
	if err = ns.store.SaveMonth(ctx, ref.UserID, ref.Year, ref.Month, nb.Month()); err != nil {
		return errors.New("store error: " + err.Error())
	}
	return nil
}

func (ns *NotesService) mutateOne(ctx context.Context, ref MonthRef, fn func(nb *notes.Notebook) (entity.NoteItem, error)) (*entity.NoteItem, error) {
	var out entity.NoteItem
	err := ns.mutate(ctx, ref, func(nb *notes.Notebook) error {
		n, err := fn(nb)
		out = n
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (ns *NotesService) List(ctx context.Context, ref MonthRef, req ListNotesRequest) (*notes.View, error) {
	m, err := ns.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	v := notes.Render(m, req.Filter, notes.ParseViewMode(string(req.Mode)))
	return &v, nil
}

func (ns *NotesService) Add(ctx context.Context, ref MonthRef, day int, content string) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.Add(day, content)
	})
}

func (ns *NotesService) Edit(ctx context.Context, ref MonthRef, id, content string) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.Edit(id, content)
	})
}

func (ns *NotesService) SetType(ctx context.Context, ref MonthRef, id string, t entity.NoteType) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.SetType(id, t)
	})
}

func (ns *NotesService) ToggleTodo(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.ToggleTodo(id)
	})
}

func (ns *NotesService) TogglePin(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.TogglePin(id)
	})
}

func (ns *NotesService) Delete(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.Delete(id)
	})
}

func (ns *NotesService) Restore(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.Restore(id)
	})
}

func (ns *NotesService) PermanentDelete(ctx context.Context, ref MonthRef, id string) error {
	return ns.mutate(ctx, ref, func(nb *notes.Notebook) error {
		return nb.PermanentDelete(id)
	})
}

func (ns *NotesService) EmptyBin(ctx context.Context, ref MonthRef) (int, error) {
	removed := 0
	err := ns.mutate(ctx, ref, func(nb *notes.Notebook) error {
		removed = nb.EmptyBin()
		return nil
	})
	return removed, err
}

func (ns *NotesService) Merge(ctx context.Context, ref MonthRef, ids []string) (*entity.NoteItem, error) {
	return ns.mutateOne(ctx, ref, func(nb *notes.Notebook) (entity.NoteItem, error) {
		return nb.Merge(ids)
	})
}

func (ns *NotesService) Split(ctx context.Context, ref MonthRef, id string) ([]entity.NoteItem, error) {
	var parts []entity.NoteItem
	err := ns.mutate(ctx, ref, func(nb *notes.Notebook) error {
		var err error
		parts, err = nb.Split(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return parts, nil
}

func (ns *NotesService) Suggest(ctx context.Context, ref MonthRef, text string, cursor int) ([]string, error) {
	m, err := ns.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	var items []entity.NoteItem
	for _, day := range m {
		items = append(items, day...)
	}
	suggestions := notes.Suggest(text, cursor, notes.KnownTags(items))
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestions, nil
}
