package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/limbo/twentyfourseven/internal/repository"
)

const (
	DefaultHistoryLimit = 50
	DefaultIdleTimeout  = 30 * time.Minute
	// maxOpenMonths bounds the editors kept per user, the least recently used one goes first.
	maxOpenMonths = 12
)

type monthKey struct {
	year  int
	month time.Month
}

type openMonth struct {
	editor *grid.Editor
	used   time.Time
}

// activitySession is the editing state of one user: an editor per opened month and a clipboard
// shared between months.
type activitySession struct {
	mu        sync.Mutex
	months    map[monthKey]*openMonth
	clipboard []grid.ClipboardCell
	// guarded by ActivityService.mu
	used time.Time
}

// evictOldest drops the least recently used month.
func (s *activitySession) evictOldest() {
	var (
		oldest monthKey
		found  bool
	)
	for k, om := range s.months {
		if !found || om.used.Before(s.months[oldest].used) {
			oldest, found = k, true
		}
	}
	delete(s.months, oldest)
}

type ActivityService struct {
	store        repository.ActivityStoreI
	historyLimit int
	idle         time.Duration
	now          func() time.Time

	mu        sync.Mutex
	sessions  map[uuid.UUID]*activitySession
	lastSweep time.Time
}

func NewActivityService(store repository.ActivityStoreI, historyLimit int) *ActivityService {
	if store == nil {
		log.Fatal("on activity service provided nil store")
	}
	if historyLimit < 1 {
		historyLimit = DefaultHistoryLimit
	}
	return &ActivityService{
		store:        store,
		historyLimit: historyLimit,
		idle:         DefaultIdleTimeout,
		now:          time.Now,
		sessions:     make(map[uuid.UUID]*activitySession),
	}
}

// WithIdleTimeout sets how long an untouched user session, with its undo history and clipboard, is kept.
func (as *ActivityService) WithIdleTimeout(idle time.Duration) *ActivityService {
	if idle > 0 {
		as.idle = idle
	}
	return as
}

// WithClock replaces the time source.
func (as *ActivityService) WithClock(now func() time.Time) *ActivityService {
	as.now = now
	return as
}

func (as *ActivityService) session(uid uuid.UUID) *activitySession {
	as.mu.Lock()
	defer as.mu.Unlock()
	now := as.now()
	if now.Sub(as.lastSweep) >= as.idle/2 {
		for id, s := range as.sessions {
			if now.Sub(s.used) > as.idle {
				delete(as.sessions, id)
			}
		}
		as.lastSweep = now
	}
	s, ok := as.sessions[uid]
	if !ok {
		s = &activitySession{months: make(map[monthKey]*openMonth)}
		as.sessions[uid] = s
	}
	s.used = now
	return s
}

// withEditor runs fn on the editor of ref holding the session lock. The month is loaded on first use.
func (as *ActivityService) withEditor(ctx context.Context, ref MonthRef, fn func(s *activitySession, e *grid.Editor) error) error {
	if ref.Month < time.January || ref.Month > time.December || ref.Year < 1 {
		return errors.Join(errorvalues.ErrValidation, errors.New("invalid month"))
	}
	s := as.session(ref.UserID)
	s.mu.Lock()
	defer s.mu.Unlock()
	key := monthKey{year: ref.Year, month: ref.Month}
	om, ok := s.months[key]
	if !ok {
		m, err := as.store.LoadMonth(ctx, ref.UserID, ref.Year, ref.Month)
		if err != nil {
			return errors.New("store error: " + err.Error())
		}
		if len(s.months) >= maxOpenMonths {
			s.evictOldest()
		}
		om = &openMonth{editor: grid.NewEditor(m, as.historyLimit)}
		s.months[key] = om
	}
	om.used = as.now()
	return fn(s, om.editor)
}

// Reload runs write while no editor of uid is in use, then drops the user's cached months so the
// next request reads what write stored. Undo history goes with them, the clipboard stays.
func (as *ActivityService) Reload(uid uuid.UUID, write func() error) error {
	s := as.session(uid)
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.months)
	return write()
}

// mutate applies an editing action and persists its changes. A failed save drops the cached
// editor so the next call reloads what is really stored.
func (as *ActivityService) mutate(ctx context.Context, ref MonthRef, action func(s *activitySession, e *grid.Editor) (grid.Batch, error)) (*MonthView, error) {
	var view *MonthView
	err := as.withEditor(ctx, ref, func(s *activitySession, e *grid.Editor) error {
		b, err := action(s, e)
		if err != nil {
			return err
		}
		if len(b) > 0 {
			if err := as.store.SaveBatch(ctx, ref.UserID, ref.Year, ref.Month, b); err != nil {
				delete(s.months, monthKey{year: ref.Year, month: ref.Month})
				slog.ErrorContext(ctx, "saving activity batch failed", slog.String("error", err.Error()))
				return errors.New("store error: " + err.Error())
			}
		}
		view = monthView(e)
		view.Changes = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (as *ActivityService) read(ctx context.Context, ref MonthRef, fn func(s *activitySession, e *grid.Editor) error) (*MonthView, error) {
	var view *MonthView
	err := as.withEditor(ctx, ref, func(s *activitySession, e *grid.Editor) error {
		if fn != nil {
			if err := fn(s, e); err != nil {
				return err
			}
		}
		view = monthView(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func monthView(e *grid.Editor) *MonthView {
	m := e.Month()
	return &MonthView{
		Year:     m.Year,
		Month:    int(m.Month),
		Days:     m.Days(),
		Cells:    m.List(),
		Selected: e.Selected(),
		CanUndo:  e.History().CanUndo(),
		CanRedo:  e.History().CanRedo(),
		Totals:   grid.MonthTotals(m),
	}
}

func (as *ActivityService) GetMonth(ctx context.Context, ref MonthRef) (*MonthView, error) {
	return as.read(ctx, ref, nil)
}

func (as *ActivityService) SetCell(ctx context.Context, ref MonthRef, cell grid.CellID, value string) (*MonthView, error) {
	return as.mutate(ctx, ref, func(_ *activitySession, e *grid.Editor) (grid.Batch, error) {
		return e.SetCell(cell, value)
	})
}

func (as *ActivityService) Select(ctx context.Context, ref MonthRef, req SelectRequest) (*MonthView, error) {
	return as.read(ctx, ref, func(_ *activitySession, e *grid.Editor) error {
		switch {
		case req.From != nil && req.To != nil:
			return e.SelectRectangle(*req.From, *req.To)
		case req.Toggle:
			for _, c := range req.Cells {
				if err := e.ToggleCell(c); err != nil {
					return err
				}
			}
			return nil
		default:
			return e.Select(req.Cells...)
		}
	})
}

func (as *ActivityService) ClearSelection(ctx context.Context, ref MonthRef) (*MonthView, error) {
	return as.read(ctx, ref, func(_ *activitySession, e *grid.Editor) error {
		e.ClearSelection()
		return nil
	})
}

func (as *ActivityService) Copy(ctx context.Context, ref MonthRef) ([]grid.ClipboardCell, error) {
	var clip []grid.ClipboardCell
	err := as.withEditor(ctx, ref, func(s *activitySession, e *grid.Editor) error {
		c, err := e.Copy()
		if err != nil {
			return err
		}
		s.clipboard = c
		clip = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clip, nil
}

func (as *ActivityService) Paste(ctx context.Context, ref MonthRef) (*MonthView, error) {
	return as.mutate(ctx, ref, func(s *activitySession, e *grid.Editor) (grid.Batch, error) {
		return e.Paste(s.clipboard)
	})
}

func (as *ActivityService) PasteText(ctx context.Context, ref MonthRef, text string) (*MonthView, error) {
	return as.mutate(ctx, ref, func(_ *activitySession, e *grid.Editor) (grid.Batch, error) {
		return e.PasteText(text)
	})
}

func (as *ActivityService) FillSelected(ctx context.Context, ref MonthRef, value string) (*MonthView, error) {
	return as.mutate(ctx, ref, func(_ *activitySession, e *grid.Editor) (grid.Batch, error) {
		return e.FillSelected(value)
	})
}

func (as *ActivityService) Undo(ctx context.Context, ref MonthRef) (*MonthView, error) {
	return as.mutate(ctx, ref, func(_ *activitySession, e *grid.Editor) (grid.Batch, error) {
		return e.Undo()
	})
}

func (as *ActivityService) Redo(ctx context.Context, ref MonthRef) (*MonthView, error) {
	return as.mutate(ctx, ref, func(_ *activitySession, e *grid.Editor) (grid.Batch, error) {
		return e.Redo()
	})
}

// Totals counts hours per category for one day (when day > 0), every day of the month,
// the whole month and all stored months.
func (as *ActivityService) Totals(ctx context.Context, ref MonthRef, day int) (*TotalsReport, error) {
	report := &TotalsReport{}
	err := as.withEditor(ctx, ref, func(_ *activitySession, e *grid.Editor) error {
		m := e.Month()
		if day != 0 && (day < 1 || day > m.Days()) {
			return errorvalues.ErrInvalidCell
		}
		if day > 0 {
			report.Day = grid.DayTotals(m, day)
		}
		report.Daily = grid.DailyTotals(m)
		report.Month = grid.MonthTotals(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	all, err := as.store.AllTotals(ctx, ref.UserID)
	if err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	report.AllTime = all
	return report, nil
}
