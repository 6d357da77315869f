package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type TimeEntriesRepositoryI interface {
	// Inserts an entry. An entry without EndTime is the running timer
	Create(ctx context.Context, entry *entity.TimeEntry) (uuid.UUID, error)
	// Returns entry with its category and project
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error)
	// Returns running entry of user or nil if there is none
	GetActive(ctx context.Context, uid uuid.UUID) (*entity.TimeEntry, error)
	// Closes running entry id of user. Notes are overwritten only when not nil
	Close(ctx context.Context, id, uid uuid.UUID, end time.Time, duration int64, notes *string) error
	// Lists stopped entries of user started within [from, to], ordered by start time
	ListClosed(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.TimeEntry, error)
	// Lists every entry of user started within [from, to], ordered by start time
	List(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.TimeEntry, error)
}

type CategoriesRepositoryI interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

type ProjectsRepositoryI interface {
	Create(ctx context.Context, project *entity.Project) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Project, error)
}

type GoalsRepositoryI interface {
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Lists goals of user. With incompleteOnly completed goals are skipped
	ListByUser(ctx context.Context, uid uuid.UUID, incompleteOnly bool) ([]entity.Goal, error)
	// Marks goal as completed if it belongs to uid
	Complete(ctx context.Context, id, uid uuid.UUID) error
}

type TakeawaysRepositoryI interface {
	Create(ctx context.Context, takeaway *entity.Takeaway) (uuid.UUID, error)
	// Lists takeaways of user newest first. Nil bounds are open
	List(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]entity.Takeaway, error)
}

// KVStore is the per-user key/value space holding grid cells, notes and settings.
type KVStore interface {
	// Returns value stored under key. ok is false when the key is absent
	Get(ctx context.Context, uid uuid.UUID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, uid uuid.UUID, key, value string) error
	Delete(ctx context.Context, uid uuid.UUID, key string) error
	// Returns every key starting with prefix
	List(ctx context.Context, uid uuid.UUID, prefix string) (map[string]string, error)
	// Writes set and removes del atomically
	Apply(ctx context.Context, uid uuid.UUID, set map[string]string, del []string) error
}

type ActivityStoreI interface {
	LoadMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month) (*grid.Month, error)
	SaveBatch(ctx context.Context, uid uuid.UUID, year int, month time.Month, b grid.Batch) error
	AllTotals(ctx context.Context, uid uuid.UUID) (grid.Totals, error)
}

type NoteStoreI interface {
	LoadMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month) (entity.NotesMonth, error)
	SaveMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month, notes entity.NotesMonth) error
}

type SettingsStoreI interface {
	Load(ctx context.Context, uid uuid.UUID) (entity.Settings, bool, error)
	Save(ctx context.Context, uid uuid.UUID, settings entity.Settings) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
