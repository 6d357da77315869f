package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/limbo/twentyfourseven/internal/notes"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type BackupService struct {
	kv       repository.KVStore
	locks    *UserLocks
	activity *ActivityService
	now      func() time.Time
}

func NewBackupService(kv repository.KVStore) *BackupService {
	if kv == nil {
		log.Fatal("on backup service provided nil kv store")
	}
	return &BackupService{
		kv:    kv,
		locks: NewUserLocks(),
		now:   time.Now,
	}
}

// WithLocks makes imports wait for notes and settings writes sharing the same registry.
func (bs *BackupService) WithLocks(locks *UserLocks) *BackupService {
	bs.locks = locks
	return bs
}

// WithActivity makes imports drop the cached activity months of the user.
func (bs *BackupService) WithActivity(activity *ActivityService) *BackupService {
	bs.activity = activity
	return bs
}

// WithClock replaces the time source.
func (bs *BackupService) WithClock(now func() time.Time) *BackupService {
	bs.now = now
	return bs
}

func (bs *BackupService) Export(ctx context.Context, uid uuid.UUID) (*entity.Backup, error) {
	data, err := bs.kv.List(ctx, uid, grid.KeyPrefix)
	if err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	return &entity.Backup{
		ExportedAt: bs.now().UTC(),
		Data:       data,
	}, nil
}

func (bs *BackupService) Import(ctx context.Context, uid uuid.UUID, data map[string]string) (*ImportResult, error) {
	result := &ImportResult{Skipped: make([]string, 0)}
	set := make(map[string]string)
	var del []string
	for key, value := range data {
		v, ok := ValidateBackupEntry(key, value)
		if !ok {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		result.Imported++
		if v == "" && grid.IsCellKey(key) {
			del = append(del, key)
			continue
		}
		set[key] = v
	}
	sort.Strings(result.Skipped)
	if result.Imported == 0 {
		return nil, errorvalues.ErrNothingToImport
	}
	if len(result.Skipped) > 0 {
		slog.WarnContext(ctx, "backup entries skipped", slog.Int("skipped", len(result.Skipped)))
	}
	unlock := bs.locks.Lock(uid)
	defer unlock()
	apply := func() error {
		return bs.kv.Apply(ctx, uid, set, del)
	}
	var err error
	if bs.activity != nil {
		err = bs.activity.Reload(uid, apply)
	} else {
		err = apply()
	}
	if err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	return result, nil
}

// ValidateBackupEntry checks a value against the rules of its key family and returns it normalised:
// activity cells hold one letter or nothing, settings must be valid settings JSON, notes may be any string.
func ValidateBackupEntry(key, value string) (string, bool) {
	switch {
	case !strings.HasPrefix(key, grid.KeyPrefix):
		return "", false
	case grid.IsCellKey(key):
		return grid.NormalizeValue(value)
	case key == repository.SettingsKey:
		var settings entity.Settings
		if err := sonic.UnmarshalString(value, &settings); err != nil {
			return "", false
		}
		if ValidateSettings(settings) != nil {
			return "", false
		}
		return value, true
	default:
		if _, _, ok := notes.ParseMonthKey(key); ok {
			return value, true
		}
		return "", false
	}
}

// DecodeBackup accepts an exported document, or a bare key/value object. Non-string values,
// such as settings embedded as objects, are kept in their JSON form.
func DecodeBackup(raw []byte) (map[string]string, error) {
	var doc map[string]any
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	if inner, ok := doc["data"].(map[string]any); ok {
		doc = inner
	}
	data := make(map[string]string, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case string:
			data[k] = val
		case nil:
			continue
		default:
			encoded, err := sonic.MarshalString(val)
			if err != nil {
				continue
			}
			data[k] = encoded
		}
	}
	return data, nil
}
