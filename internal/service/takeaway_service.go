package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type TakeawayService struct {
	repo repository.TakeawaysRepositoryI
	loc  *time.Location
	now  func() time.Time
}

func NewTakeawayService(repo repository.TakeawaysRepositoryI, loc *time.Location) *TakeawayService {
	if repo == nil {
		log.Fatal("on takeaway service provided nil repo")
	}
	if loc == nil {
		loc = time.Local
	}
	return &TakeawayService{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// WithClock replaces the time source.
func (ts *TakeawayService) WithClock(now func() time.Time) *TakeawayService {
	ts.now = now
	return ts
}

func (ts *TakeawayService) Create(ctx context.Context, req *CreateTakeawayRequest) (*entity.Takeaway, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date := ts.now()
	if req.Date != nil {
		date = *req.Date
	}
	date = date.In(ts.loc)
	takeaway := &entity.Takeaway{
		UserID:    req.UserID,
		Content:   req.Content,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, ts.loc),
		CreatedAt: ts.now(),
	}
	id, err := ts.repo.Create(ctx, takeaway)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	takeaway.ID = id
	return takeaway, nil
}

func (ts *TakeawayService) List(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]entity.Takeaway, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, errorvalues.ErrInvalidRange
	}
	list, err := ts.repo.List(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return list, nil
}
