package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type ReportService struct {
	entries   repository.TimeEntriesRepositoryI
	goals     repository.GoalsRepositoryI
	loc       *time.Location
	weekStart time.Weekday
	now       func() time.Time
}

func NewReportService(entries repository.TimeEntriesRepositoryI, goals repository.GoalsRepositoryI, loc *time.Location, weekStart time.Weekday) *ReportService {
	if entries == nil || goals == nil {
		log.Fatal("on report service provided nil repos")
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReportService{
		entries:   entries,
		goals:     goals,
		loc:       loc,
		weekStart: weekStart,
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (rs *ReportService) WithClock(now func() time.Time) *ReportService {
	rs.now = now
	return rs
}

func (rs *ReportService) GetReport(ctx context.Context, uid uuid.UUID, start, end time.Time) (*entity.Report, error) {
	if !start.Before(end) {
		return nil, errorvalues.ErrInvalidRange
	}
	entries, err := rs.entries.ListClosed(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	goals, err := rs.goals.ListByUser(ctx, uid, true)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	report := BuildReport(entries, goals, start, end)
	return &report, nil
}

func (rs *ReportService) GetDashboardData(ctx context.Context, uid uuid.UUID) (*entity.Dashboard, error) {
	today, tomorrow, weekStart := DashboardBounds(rs.now(), rs.loc, rs.weekStart)
	last := tomorrow.Add(-time.Microsecond)
	todayReport, err := rs.GetReport(ctx, uid, today, last)
	if err != nil {
		return nil, err
	}
	weekReport, err := rs.GetReport(ctx, uid, weekStart, last)
	if err != nil {
		return nil, err
	}
	active, err := rs.entries.GetActive(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.Dashboard{
		Today:       todayReport,
		Week:        weekReport,
		ActiveTimer: active,
	}, nil
}

// DashboardBounds returns local midnight of now, the next midnight and the start of the week.
func DashboardBounds(now time.Time, loc *time.Location, weekStart time.Weekday) (today, tomorrow, week time.Time) {
	now = now.In(loc)
	today = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	tomorrow = today.AddDate(0, 0, 1)
	back := (int(today.Weekday()) - int(weekStart) + 7) % 7
	week = today.AddDate(0, 0, -back)
	return today, tomorrow, week
}

// BuildReport aggregates stopped entries per category. Goals are reported with zero progress.
func BuildReport(entries []entity.TimeEntry, goals []entity.Goal, start, end time.Time) entity.Report {
	report := entity.Report{
		CategoryData: make([]entity.CategoryData, 0),
		Goals:        make([]entity.Goal, 0, len(goals)),
		DateRange:    entity.DateRange{Start: start, End: end},
	}
	buckets := make(map[uuid.UUID]*entity.CategoryData)
	order := make([]uuid.UUID, 0)
	for _, e := range entries {
		if e.EndTime == nil {
			continue
		}
		d := entryDuration(e)
		b, ok := buckets[e.CategoryID]
		if !ok {
			b = &entity.CategoryData{CategoryID: e.CategoryID, Category: e.Category}
			buckets[e.CategoryID] = b
			order = append(order, e.CategoryID)
		}
		b.TotalDuration += d
		b.EntryCount++
		report.TotalDuration += d
		report.EntryCount++
	}
	for _, id := range order {
		b := buckets[id]
		if report.TotalDuration > 0 {
			b.Percentage = math.Round(float64(b.TotalDuration)/float64(report.TotalDuration)*100*100) / 100
		}
		report.CategoryData = append(report.CategoryData, *b)
	}
	sort.SliceStable(report.CategoryData, func(i, j int) bool {
		a, b := report.CategoryData[i], report.CategoryData[j]
		if a.TotalDuration != b.TotalDuration {
			return a.TotalDuration > b.TotalDuration
		}
		return categoryName(a) < categoryName(b)
	})
	for _, g := range goals {
		g.Progress = 0
		report.Goals = append(report.Goals, g)
	}
	return report
}

func entryDuration(e entity.TimeEntry) int64 {
	if e.Duration != nil {
		return *e.Duration
	}
	return int64(e.EndTime.Sub(e.StartTime) / time.Second)
}

func categoryName(cd entity.CategoryData) string {
	if cd.Category == nil {
		return cd.CategoryID.String()
	}
	return cd.Category.Name
}
