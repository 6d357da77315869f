package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

const selectEntries = `SELECT te.id, te.user_id, te.category_id, te.project_id, te.start_time, te.end_time, te.duration, te.notes,
c.name, c.color, c.description, p.category_id, p.name, p.description
FROM time_entries te JOIN categories c ON c.id = te.category_id LEFT JOIN projects p ON p.id = te.project_id`

type TimeEntriesRepository struct {
	conn PgConnection
}

func NewTimeEntriesRepoWithConn(conn PgConnection) *TimeEntriesRepository {
	mustPing(conn, "timeEntriesRepo")
	return &TimeEntriesRepository{
		conn: conn,
	}
}

func (tr *TimeEntriesRepository) Create(ctx context.Context, entry *entity.TimeEntry) (uuid.UUID, error) {
	if entry == nil {
		return uuid.Nil, errors.New("time entry is nil")
	}
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO time_entries (user_id, category_id, project_id, start_time, end_time, duration, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		entry.UserID,
		entry.CategoryID,
		entry.ProjectID,
		entry.StartTime,
		entry.EndTime,
		entry.Duration,
		entry.Notes,
	)
	if err := row.Scan(&id); err != nil {
		switch code, constraint := pgCode(err); code {
		// Unique violation, only the one-active-timer index can fire
		case "23505":
			return uuid.Nil, errorvalues.ErrActiveTimerExists
		// FK violation
		case "23503":
			switch constraint {
			case "time_entries_user_id_fkey":
				return uuid.Nil, errorvalues.ErrUserNotFound
			case "time_entries_project_id_fkey":
				return uuid.Nil, errorvalues.ErrProjectNotFound
			default:
				return uuid.Nil, errorvalues.ErrCategoryNotFound
			}
		}
		return uuid.Nil, errors.New("creating time entry db error: " + err.Error())
	}
	return id, nil
}

func (tr *TimeEntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	entry, err := scanEntry(tr.conn.QueryRow(ctx, selectEntries+` WHERE te.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTimeEntryNotFound
		}
		return nil, errors.New("getting time entry by id error: " + err.Error())
	}
	return entry, nil
}

func (tr *TimeEntriesRepository) GetActive(ctx context.Context, uid uuid.UUID) (*entity.TimeEntry, error) {
	entry, err := scanEntry(tr.conn.QueryRow(ctx, selectEntries+` WHERE te.user_id = $1 AND te.end_time IS NULL;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting active time entry error: " + err.Error())
	}
	return entry, nil
}

func (tr *TimeEntriesRepository) Close(ctx context.Context, id, uid uuid.UUID, end time.Time, duration int64, notes *string) error {
	ct, err := tr.conn.Exec(ctx,
		`UPDATE time_entries SET end_time = $1, duration = $2, notes = COALESCE($3, notes) WHERE id = $4 AND user_id = $5 AND end_time IS NULL;`,
		end, duration, notes, id, uid,
	)
	if err != nil {
		return errors.New("closing time entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActiveTimerNotFound
	}
	return nil
}

func (tr *TimeEntriesRepository) ListClosed(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.TimeEntry, error) {
	return tr.list(ctx, selectEntries+` WHERE te.user_id = $1 AND te.end_time IS NOT NULL AND te.start_time >= $2 AND te.start_time <= $3
ORDER BY te.start_time;`, uid, from, to)
}

func (tr *TimeEntriesRepository) List(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.TimeEntry, error) {
	return tr.list(ctx, selectEntries+` WHERE te.user_id = $1 AND te.start_time >= $2 AND te.start_time <= $3
ORDER BY te.start_time;`, uid, from, to)
}

func (tr *TimeEntriesRepository) list(ctx context.Context, query string, args ...any) ([]entity.TimeEntry, error) {
	rows, err := tr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing time entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.TimeEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, errors.New("time entry row parsing error: " + err.Error())
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected time entry rows error: " + err.Error())
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*entity.TimeEntry, error) {
	var (
		te                  entity.TimeEntry
		cat                 entity.Category
		projCategory        *uuid.UUID
		projName, projDescr *string
	)
	err := row.Scan(
		&te.ID, &te.UserID, &te.CategoryID, &te.ProjectID, &te.StartTime, &te.EndTime, &te.Duration, &te.Notes,
		&cat.Name, &cat.Color, &cat.Description, &projCategory, &projName, &projDescr,
	)
	if err != nil {
		return nil, err
	}
	cat.ID = te.CategoryID
	te.Category = &cat
	if te.ProjectID != nil && projName != nil && projCategory != nil {
		te.Project = &entity.Project{
			ID:          *te.ProjectID,
			UserID:      te.UserID,
			CategoryID:  *projCategory,
			Name:        *projName,
			Description: projDescr,
		}
	}
	return &te, nil
}
