package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/limbo/twentyfourseven/internal/notes"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

// SettingsKey holds the JSON encoded settings of a user.
const SettingsKey = grid.KeyPrefix + "-settings"

// ActivityStore maps grid months onto one kv key per non-empty cell.
type ActivityStore struct {
	kv KVStore
}

func NewActivityStore(kv KVStore) *ActivityStore {
	return &ActivityStore{kv: kv}
}

// LoadMonth reads every cell of the month. Malformed values are skipped.
func (s *ActivityStore) LoadMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month) (*grid.Month, error) {
	entries, err := s.kv.List(ctx, uid, grid.MonthKeyPrefix(year, month))
	if err != nil {
		return nil, err
	}
	m := grid.NewMonth(year, month)
	for key, raw := range entries {
		y, mo, id, ok := grid.ParseCellKey(key)
		if !ok || y != year || mo != month {
			continue
		}
		v, ok := grid.NormalizeValue(raw)
		if !ok {
			slog.WarnContext(ctx, "skipping malformed activity value", slog.String("key", key), slog.String("value", raw))
			continue
		}
		if v != "" {
			m.Cells[id] = v
		}
	}
	return m, nil
}

// SaveBatch persists the changes of one editor action. Cleared cells lose their key.
func (s *ActivityStore) SaveBatch(ctx context.Context, uid uuid.UUID, year int, month time.Month, b grid.Batch) error {
	set := make(map[string]string)
	var del []string
	for _, ch := range b {
		key := grid.CellKey(year, month, ch.Cell)
		if ch.New == "" {
			delete(set, key)
			del = append(del, key)
			continue
		}
		set[key] = ch.New
	}
	return s.kv.Apply(ctx, uid, set, del)
}

// AllTotals counts hours per category over every stored month.
func (s *ActivityStore) AllTotals(ctx context.Context, uid uuid.UUID) (grid.Totals, error) {
	entries, err := s.kv.List(ctx, uid, grid.KeyPrefix+"-")
	if err != nil {
		return nil, err
	}
	t := make(grid.Totals)
	for key, raw := range entries {
		if !grid.IsCellKey(key) {
			continue
		}
		if v, ok := grid.NormalizeValue(raw); ok && v != "" {
			t[v]++
		}
	}
	return t, nil
}

// NoteStore keeps one JSON document per month of notes.
type NoteStore struct {
	kv KVStore
}

func NewNoteStore(kv KVStore) *NoteStore {
	return &NoteStore{kv: kv}
}

// LoadMonth returns the notes of a month. A missing or unreadable document yields an empty month.
func (s *NoteStore) LoadMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month) (entity.NotesMonth, error) {
	key := notes.MonthKey(year, month)
	raw, ok, err := s.kv.Get(ctx, uid, key)
	if err != nil {
		return nil, err
	}
	m := make(entity.NotesMonth)
	if !ok {
		return m, nil
	}
	if err := sonic.UnmarshalString(raw, &m); err != nil {
		slog.WarnContext(ctx, "unreadable notes document", slog.String("key", key), slog.String("err", err.Error()))
		return make(entity.NotesMonth), nil
	}
	return m, nil
}

func (s *NoteStore) SaveMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month, m entity.NotesMonth) error {
	key := notes.MonthKey(year, month)
	if len(m) == 0 {
		return s.kv.Delete(ctx, uid, key)
	}
	raw, err := sonic.MarshalString(m)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, uid, key, raw)
}

type SettingsStore struct {
	kv KVStore
}

func NewSettingsStore(kv KVStore) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// Load reports ok=false when nothing usable is stored.
func (s *SettingsStore) Load(ctx context.Context, uid uuid.UUID) (entity.Settings, bool, error) {
	raw, ok, err := s.kv.Get(ctx, uid, SettingsKey)
	if err != nil || !ok {
		return entity.Settings{}, false, err
	}
	var settings entity.Settings
	if err := sonic.UnmarshalString(raw, &settings); err != nil {
		slog.WarnContext(ctx, "unreadable settings document", slog.String("err", err.Error()))
		return entity.Settings{}, false, nil
	}
	return settings, true, nil
}

func (s *SettingsStore) Save(ctx context.Context, uid uuid.UUID, settings entity.Settings) error {
	raw, err := sonic.MarshalString(settings)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, uid, SettingsKey, raw)
}
