package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")
)

// Time tracking
var (
	ErrActiveTimerExists   = errors.New("There is already an active timer.")
	ErrActiveTimerNotFound = errors.New("Active timer not found")
	ErrTimeEntryNotFound   = errors.New("time entry doesn't exist")
	ErrCategoryNotFound    = errors.New("category doesn't exist")
	ErrProjectNotFound     = errors.New("project doesn't exist")
	ErrProjectExists       = errors.New("project with such name already exists")
	ErrGoalNotFound        = errors.New("goal doesn't exist")
	ErrInvalidRange        = errors.New("start of range must be before its end")
	ErrWrongOwner          = errors.New("resource belongs to another user")
)

// Grid, notes, settings
var (
	ErrInvalidCell          = errors.New("cell is outside of the month grid")
	ErrInvalidCategoryKey   = errors.New("category key must be a single uppercase letter")
	ErrTooManyCategories    = errors.New("too many categories")
	ErrDuplicateCategoryKey = errors.New("duplicate category key")
	ErrEmptyClipboard       = errors.New("clipboard is empty")
	ErrEmptySelection       = errors.New("nothing is selected")
	ErrNothingToUndo        = errors.New("nothing to undo")
	ErrNothingToRedo        = errors.New("nothing to redo")
	ErrNoteNotFound         = errors.New("note doesn't exist")
	ErrNoteNotDeleted       = errors.New("note is not in the recycle bin")
	ErrNoteDeleted          = errors.New("note is in the recycle bin")
	ErrNothingToImport      = errors.New("no valid keys to import")
)
