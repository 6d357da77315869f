package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

const DefaultGapThreshold = 5 * time.Minute

type GapsService struct {
	repo      repository.TimeEntriesRepositoryI
	threshold time.Duration
}

func NewGapsService(repo repository.TimeEntriesRepositoryI, threshold time.Duration) *GapsService {
	if repo == nil {
		log.Fatal("on gaps service provided nil repo")
	}
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}
	return &GapsService{
		repo:      repo,
		threshold: threshold,
	}
}

func (gs *GapsService) CheckGaps(ctx context.Context, uid uuid.UUID, start, end time.Time) (*entity.GapsReport, error) {
	if !start.Before(end) {
		return nil, errorvalues.ErrInvalidRange
	}
	entries, err := gs.repo.ListClosed(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	report := FindGaps(entries, gs.threshold)
	return &report, nil
}

// FindGaps reports untracked spans between stopped entries longer than threshold.
// Overlapping entries are merged by tracking the furthest end seen so far.
func FindGaps(entries []entity.TimeEntry, threshold time.Duration) entity.GapsReport {
	closed := make([]entity.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.EndTime != nil {
			closed = append(closed, e)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool { return closed[i].StartTime.Before(closed[j].StartTime) })

	report := entity.GapsReport{Gaps: make([]entity.Gap, 0)}
	if len(closed) == 0 {
		return report
	}
	furthest := *closed[0].EndTime
	for _, e := range closed[1:] {
		if spacing := e.StartTime.Sub(furthest); spacing > threshold {
			seconds := int64(spacing / time.Second)
			report.Gaps = append(report.Gaps, entity.Gap{
				Start:    furthest,
				End:      e.StartTime,
				Duration: seconds,
			})
			report.TotalGapTime += seconds
		}
		if e.EndTime.After(furthest) {
			furthest = *e.EndTime
		}
	}
	report.TotalGaps = len(report.Gaps)
	return report
}
