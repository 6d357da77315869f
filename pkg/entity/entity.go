package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TimeEntry with EndTime == nil is the active timer. At most one per user.
type TimeEntry struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	CategoryID uuid.UUID  `json:"categoryId"`
	ProjectID  *uuid.UUID `json:"projectId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	// Duration in whole seconds, set when the entry is stopped
	Duration *int64    `json:"duration"`
	Notes    *string   `json:"notes"`
	Category *Category `json:"category,omitempty"`
	Project  *Project  `json:"project,omitempty"`
}

func (te *TimeEntry) Active() bool {
	return te.EndTime == nil
}

type Goal struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	TargetHours float64    `json:"targetHours"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Completed   bool       `json:"completed"`
	Progress    float64    `json:"progress"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Takeaway struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type Gap struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int64     `json:"duration"`
}

type GapsReport struct {
	Gaps         []Gap `json:"gaps"`
	TotalGaps    int   `json:"totalGaps"`
	TotalGapTime int64 `json:"totalGapTime"`
}

type CategoryData struct {
	CategoryID    uuid.UUID `json:"categoryId"`
	Category      *Category `json:"category,omitempty"`
	TotalDuration int64     `json:"totalDuration"`
	Percentage    float64   `json:"percentage"`
	EntryCount    int       `json:"entryCount"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Report struct {
	TotalDuration int64          `json:"totalDuration"`
	CategoryData  []CategoryData `json:"categoryData"`
	EntryCount    int            `json:"entryCount"`
	Goals         []Goal         `json:"goals"`
	DateRange     DateRange      `json:"dateRange"`
}

type Dashboard struct {
	Today       *Report    `json:"today"`
	Week        *Report    `json:"week"`
	ActiveTimer *TimeEntry `json:"activeTimer"`
}

// DynamicCategory is a user-editable grid category addressed by a single uppercase letter.
type DynamicCategory struct {
	Key   string `json:"key" validate:"required,category_key"`
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"required,hexcolor"`
}

type Settings struct {
	Categories []DynamicCategory `json:"categories" validate:"max=10,dive"`
}

type NoteType string

const (
	NoteText      NoteType = "text"
	NoteLink      NoteType = "link"
	NoteTodo      NoteType = "todo"
	NoteImportant NoteType = "important"
)

func (nt NoteType) Valid() bool {
	switch nt {
	case NoteText, NoteLink, NoteTodo, NoteImportant:
		return true
	}
	return false
}

type NoteItem struct {
	ID          string     `json:"id"`
	Content     string     `json:"content"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	Type        NoteType   `json:"type"`
	IsDone      bool       `json:"isDone,omitempty"`
	IsPinned    bool       `json:"isPinned,omitempty"`
}

func (n *NoteItem) Deleted() bool {
	return n.DeletedAt != nil
}

// NotesMonth holds notes of one month keyed by day of month.
type NotesMonth map[int][]NoteItem

// Backup is the export format of every stored key of a user.
type Backup struct {
	ExportedAt time.Time         `json:"exportedAt"`
	Data       map[string]string `json:"data"`
}
