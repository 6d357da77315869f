package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

const MaxCategories = 10

// DefaultCategories are served until a user saves their own.
func DefaultCategories() []entity.DynamicCategory {
	return []entity.DynamicCategory{
		{Key: "W", Name: "Work", Color: "#3b82f6"},
		{Key: "P", Name: "Personal", Color: "#10b981"},
		{Key: "L", Name: "Learning", Color: "#f59e0b"},
		{Key: "H", Name: "Health", Color: "#ef4444"},
		{Key: "S", Name: "Social", Color: "#8b5cf6"},
		{Key: "O", Name: "Other", Color: "#6b7280"},
	}
}

type SettingsService struct {
	store repository.SettingsStoreI
	locks *UserLocks
}

func NewSettingsService(store repository.SettingsStoreI) *SettingsService {
	if store == nil {
		log.Fatal("on settings service provided nil store")
	}
	return &SettingsService{
		store: store,
		locks: NewUserLocks(),
	}
}

func (ss *SettingsService) WithLocks(locks *UserLocks) *SettingsService {
	ss.locks = locks
	return ss
}

func (ss *SettingsService) Get(ctx context.Context, uid uuid.UUID) (*entity.Settings, error) {
	settings, ok, err := ss.store.Load(ctx, uid)
	if err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	if !ok || len(settings.Categories) == 0 {
		settings = entity.Settings{Categories: DefaultCategories()}
	}
	return &settings, nil
}

func (ss *SettingsService) Update(ctx context.Context, uid uuid.UUID, categories []entity.DynamicCategory) (*entity.Settings, error) {
	settings := entity.Settings{Categories: make([]entity.DynamicCategory, 0, len(categories))}
	for _, c := range categories {
		settings.Categories = append(settings.Categories, entity.DynamicCategory{
			Key:   strings.TrimSpace(c.Key),
			Name:  strings.TrimSpace(c.Name),
			Color: strings.TrimSpace(c.Color),
		})
	}
	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}
	unlock := ss.locks.Lock(uid)
	defer unlock()
	if err := ss.store.Save(ctx, uid, settings); err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	return &settings, nil
}

// ValidateSettings checks category count, key format and uniqueness, then the remaining field rules.
func ValidateSettings(settings entity.Settings) error {
	if len(settings.Categories) > MaxCategories {
		return errorvalues.ErrTooManyCategories
	}
	seen := make(map[string]struct{}, len(settings.Categories))
	for _, c := range settings.Categories {
		if !IsCategoryKey(c.Key) {
			return errorvalues.ErrInvalidCategoryKey
		}
		if _, ok := seen[c.Key]; ok {
			return errorvalues.ErrDuplicateCategoryKey
		}
		seen[c.Key] = struct{}{}
	}
	return validateStruct(settings)
}
