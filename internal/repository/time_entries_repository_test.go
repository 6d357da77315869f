package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryColumns = []string{
	"id", "user_id", "category_id", "project_id", "start_time", "end_time", "duration", "notes",
	"name", "color", "description", "category_id", "name", "description",
}

func TestCreateTimeEntry(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTimeEntriesRepoWithConn(conn)
	ctx := context.Background()
	entry := entity.TimeEntry{
		UserID:     uuid.New(),
		CategoryID: uuid.New(),
		StartTime:  time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	eid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO time_entries (user_id, category_id, project_id, start_time, end_time, duration, notes)`)
	args := []any{entry.UserID, entry.CategoryID, entry.ProjectID, entry.StartTime, entry.EndTime, entry.Duration, entry.Notes}
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(eid))
		id, err := repo.Create(ctx, &entry)
		assert.NoError(t, err)
		assert.Equal(t, eid, id)
	})
	t.Run("second active timer", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &entry)
		assert.ErrorIs(t, err, errorvalues.ErrActiveTimerExists)
	})
	t.Run("unknown project", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "time_entries_project_id_fkey"})
		_, err := repo.Create(ctx, &entry)
		assert.ErrorIs(t, err, errorvalues.ErrProjectNotFound)
	})
	t.Run("unknown category", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "time_entries_category_id_fkey"})
		_, err := repo.Create(ctx, &entry)
		assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &entry)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetActiveTimeEntry(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTimeEntriesRepoWithConn(conn)
	ctx := context.Background()
	uid, cid, pid, eid := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	projName := "thesis"
	query := regexp.QuoteMeta(`WHERE te.user_id = $1 AND te.end_time IS NULL;`)
	t.Run("running", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows(entryColumns).AddRow(
			eid, uid, cid, &pid, start, (*time.Time)(nil), (*int64)(nil), (*string)(nil),
			"Work", "#3b82f6", "Work related tasks", &cid, &projName, (*string)(nil),
		))
		entry, err := repo.GetActive(ctx, uid)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, eid, entry.ID)
		assert.True(t, entry.Active())
		assert.Equal(t, "Work", entry.Category.Name)
		assert.Equal(t, cid, entry.Category.ID)
		require.NotNil(t, entry.Project)
		assert.Equal(t, "thesis", entry.Project.Name)
	})
	t.Run("none", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		entry, err := repo.GetActive(ctx, uid)
		assert.NoError(t, err)
		assert.Nil(t, entry)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetActive(ctx, uid)
		assert.Error(t, err)
	})
}

func TestGetTimeEntryByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTimeEntriesRepoWithConn(conn)
	eid := uuid.New()
	conn.ExpectQuery(regexp.QuoteMeta(`WHERE te.id = $1;`)).WithArgs(eid).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(context.Background(), eid)
	assert.ErrorIs(t, err, errorvalues.ErrTimeEntryNotFound)
}

func TestCloseTimeEntry(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTimeEntriesRepoWithConn(conn)
	ctx := context.Background()
	eid, uid := uuid.New(), uuid.New()
	end := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	notes := "done"
	query := regexp.QuoteMeta(`UPDATE time_entries SET end_time = $1, duration = $2, notes = COALESCE($3, notes) WHERE id = $4 AND user_id = $5 AND end_time IS NULL;`)
	t.Run("closed", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(end, int64(5400), &notes, eid, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Close(ctx, eid, uid, end, 5400, &notes))
	})
	t.Run("already stopped", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(end, int64(5400), &notes, eid, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Close(ctx, eid, uid, end, 5400, &notes), errorvalues.ErrActiveTimerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(end, int64(5400), &notes, eid, uid).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Close(ctx, eid, uid, end, 5400, &notes))
	})
}

func TestListClosedTimeEntries(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTimeEntriesRepoWithConn(conn)
	ctx := context.Background()
	uid, cid := uuid.New(), uuid.New()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	query := regexp.QuoteMeta(`WHERE te.user_id = $1 AND te.end_time IS NOT NULL AND te.start_time >= $2 AND te.start_time <= $3`)
	rows := pgxmock.NewRows(entryColumns)
	for i := range 3 {
		start := from.Add(time.Duration(i) * time.Hour)
		end := start.Add(30 * time.Minute)
		dur := int64(1800)
		rows.AddRow(uuid.New(), uid, cid, (*uuid.UUID)(nil), start, &end, &dur, (*string)(nil),
			"Health", "#ef4444", "", (*uuid.UUID)(nil), (*string)(nil), (*string)(nil))
	}
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, from, to).WillReturnRows(rows)
		entries, err := repo.ListClosed(ctx, uid, from, to)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for _, e := range entries {
			assert.False(t, e.Active())
			assert.Nil(t, e.Project)
			assert.Equal(t, int64(1800), *e.Duration)
		}
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, from, to).WillReturnError(errors.New("db error"))
		_, err := repo.ListClosed(ctx, uid, from, to)
		assert.Error(t, err)
	})
}
