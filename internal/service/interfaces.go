package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/limbo/twentyfourseven/internal/notes"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email,max=254"`
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type StartTimerRequest struct {
	UserID     uuid.UUID  `validate:"required"`
	CategoryID uuid.UUID  `validate:"required"`
	ProjectID  *uuid.UUID `validate:"omitempty"`
	Notes      *string    `validate:"omitempty,max=1000"`
}

type StopTimerRequest struct {
	UserID  uuid.UUID `validate:"required"`
	EntryID uuid.UUID `validate:"required"`
	Notes   *string   `validate:"omitempty,max=1000"`
}

type TimerServiceI interface {
	// Starts a timer. Fails with ErrActiveTimerExists when the user already has one running
	Start(ctx context.Context, req *StartTimerRequest) (*entity.TimeEntry, error)
	// Stops the running timer req.EntryID. Fails with ErrActiveTimerNotFound if it is not running
	Stop(ctx context.Context, req *StopTimerRequest) (*entity.TimeEntry, error)
	// Returns running timer or nil
	GetActive(ctx context.Context, uid uuid.UUID) (*entity.TimeEntry, error)
	ListEntries(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.TimeEntry, error)
}

type GapsServiceI interface {
	CheckGaps(ctx context.Context, uid uuid.UUID, start, end time.Time) (*entity.GapsReport, error)
}

type ReportServiceI interface {
	GetReport(ctx context.Context, uid uuid.UUID, start, end time.Time) (*entity.Report, error)
	GetDashboardData(ctx context.Context, uid uuid.UUID) (*entity.Dashboard, error)
}

type CreateTakeawayRequest struct {
	UserID  uuid.UUID `validate:"required"`
	Content string    `validate:"required,max=5000"`
	// Defaults to the current day
	Date *time.Time
}

type TakeawayServiceI interface {
	Create(ctx context.Context, req *CreateTakeawayRequest) (*entity.Takeaway, error)
	List(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]entity.Takeaway, error)
}

type CreateProjectRequest struct {
	UserID      uuid.UUID `validate:"required"`
	CategoryID  uuid.UUID `validate:"required"`
	Name        string    `validate:"required,max=100"`
	Description *string   `validate:"omitempty,max=1000"`
}

type CreateGoalRequest struct {
	UserID      uuid.UUID `validate:"required"`
	Title       string    `validate:"required,max=200"`
	Description *string   `validate:"omitempty,max=1000"`
	TargetHours float64   `validate:"gt=0"`
	Deadline    *time.Time
}

type CatalogServiceI interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*entity.Project, error)
	ListProjects(ctx context.Context, uid uuid.UUID) ([]entity.Project, error)
	CreateGoal(ctx context.Context, req *CreateGoalRequest) (*entity.Goal, error)
	ListGoals(ctx context.Context, uid uuid.UUID) ([]entity.Goal, error)
	CompleteGoal(ctx context.Context, id, uid uuid.UUID) error
}

// MonthRef addresses one month of a user's grid or notes.
type MonthRef struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// SelectRequest describes a selection change: a rectangle, a set of cells, or toggling cells.
type SelectRequest struct {
	From   *grid.CellID
	To     *grid.CellID
	Cells  []grid.CellID
	Toggle bool
}

type MonthView struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Days     int           `json:"days"`
	Cells    []grid.Cell   `json:"cells"`
	Selected []grid.CellID `json:"selected"`
	Changes  grid.Batch    `json:"changes,omitempty"`
	CanUndo  bool          `json:"canUndo"`
	CanRedo  bool          `json:"canRedo"`
	Totals   grid.Totals   `json:"totals"`
}

type TotalsReport struct {
	Day     grid.Totals   `json:"day"`
	Daily   []grid.Totals `json:"daily"`
	Month   grid.Totals   `json:"month"`
	AllTime grid.Totals   `json:"allTime"`
}

type ActivityServiceI interface {
	GetMonth(ctx context.Context, ref MonthRef) (*MonthView, error)
	SetCell(ctx context.Context, ref MonthRef, cell grid.CellID, value string) (*MonthView, error)
	Select(ctx context.Context, ref MonthRef, req SelectRequest) (*MonthView, error)
	ClearSelection(ctx context.Context, ref MonthRef) (*MonthView, error)
	// Copies selected cells to the user's clipboard and returns it
	Copy(ctx context.Context, ref MonthRef) ([]grid.ClipboardCell, error)
	Paste(ctx context.Context, ref MonthRef) (*MonthView, error)
	PasteText(ctx context.Context, ref MonthRef, text string) (*MonthView, error)
	// Writes value into every selected cell, empty value clears them
	FillSelected(ctx context.Context, ref MonthRef, value string) (*MonthView, error)
	Undo(ctx context.Context, ref MonthRef) (*MonthView, error)
	Redo(ctx context.Context, ref MonthRef) (*MonthView, error)
	Totals(ctx context.Context, ref MonthRef, day int) (*TotalsReport, error)
}

type ListNotesRequest struct {
	Filter notes.Filter
	Mode   notes.ViewMode
}

type NotesServiceI interface {
	List(ctx context.Context, ref MonthRef, req ListNotesRequest) (*notes.View, error)
	Add(ctx context.Context, ref MonthRef, day int, content string) (*entity.NoteItem, error)
	Edit(ctx context.Context, ref MonthRef, id, content string) (*entity.NoteItem, error)
	SetType(ctx context.Context, ref MonthRef, id string, t entity.NoteType) (*entity.NoteItem, error)
	ToggleTodo(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error)
	TogglePin(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error)
	// Moves note to the recycle bin
	Delete(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error)
	Restore(ctx context.Context, ref MonthRef, id string) (*entity.NoteItem, error)
	PermanentDelete(ctx context.Context, ref MonthRef, id string) error
	EmptyBin(ctx context.Context, ref MonthRef) (int, error)
	Merge(ctx context.Context, ref MonthRef, ids []string) (*entity.NoteItem, error)
	Split(ctx context.Context, ref MonthRef, id string) ([]entity.NoteItem, error)
	// Suggests known tags of the month for the tag typed at cursor
	Suggest(ctx context.Context, ref MonthRef, text string, cursor int) ([]string, error)
}

type SettingsServiceI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.Settings, error)
	Update(ctx context.Context, uid uuid.UUID, categories []entity.DynamicCategory) (*entity.Settings, error)
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}

type BackupServiceI interface {
	Export(ctx context.Context, uid uuid.UUID) (*entity.Backup, error)
	// Imports every key that passes validation of its family. Fails with ErrNothingToImport when none does
	Import(ctx context.Context, uid uuid.UUID, data map[string]string) (*ImportResult, error)
}
