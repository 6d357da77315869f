package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/pkg/httputil"
)

var errorStatuses = []struct {
	err  error
	code int
}{
	{errorvalues.ErrValidation, http.StatusBadRequest},
	{errorvalues.ErrInvalidRange, http.StatusBadRequest},
	{errorvalues.ErrInvalidCell, http.StatusBadRequest},
	{errorvalues.ErrInvalidCategoryKey, http.StatusBadRequest},
	{errorvalues.ErrTooManyCategories, http.StatusBadRequest},
	{errorvalues.ErrDuplicateCategoryKey, http.StatusBadRequest},
	{errorvalues.ErrNothingToImport, http.StatusBadRequest},
	{errorvalues.ErrWrongCredentials, http.StatusUnauthorized},
	{errorvalues.ErrWrongOwner, http.StatusForbidden},
	{errorvalues.ErrUserNotFound, http.StatusNotFound},
	{errorvalues.ErrActiveTimerNotFound, http.StatusNotFound},
	{errorvalues.ErrTimeEntryNotFound, http.StatusNotFound},
	{errorvalues.ErrCategoryNotFound, http.StatusNotFound},
	{errorvalues.ErrProjectNotFound, http.StatusNotFound},
	{errorvalues.ErrGoalNotFound, http.StatusNotFound},
	{errorvalues.ErrNoteNotFound, http.StatusNotFound},
	{errorvalues.ErrUserExists, http.StatusConflict},
	{errorvalues.ErrActiveTimerExists, http.StatusConflict},
	{errorvalues.ErrProjectExists, http.StatusConflict},
	{errorvalues.ErrEmptySelection, http.StatusConflict},
	{errorvalues.ErrEmptyClipboard, http.StatusConflict},
	{errorvalues.ErrNothingToUndo, http.StatusConflict},
	{errorvalues.ErrNothingToRedo, http.StatusConflict},
	{errorvalues.ErrNoteDeleted, http.StatusConflict},
	{errorvalues.ErrNoteNotDeleted, http.StatusConflict},
}

// statusOf maps a service error to its response code and public message.
func statusOf(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.code, es.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal error"
}

// writeServiceError logs and answers a failed service call. Validation errors carry their details.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	code, msg := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, msg+" while trying to "+op, nil)
		return
	}
	logger.Error(op+" error: "+msg, slog.Int("code", code))
	var details error
	if errors.Is(err, errorvalues.ErrValidation) {
		details = err
	}
	httputil.WriteErrorResponse(w, code, msg, details)
}
