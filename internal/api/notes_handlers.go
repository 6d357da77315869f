package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/limbo/twentyfourseven/internal/notes"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/entity"
	"github.com/limbo/twentyfourseven/pkg/httputil"
)

type AddNoteRequest struct {
	Day     int    `json:"day"`
	Content string `json:"content"`
}

// EditNoteRequest changes the content, the type, or both.
type EditNoteRequest struct {
	Content *string          `json:"content,omitempty"`
	Type    *entity.NoteType `json:"type,omitempty"`
}

type MergeNotesRequest struct {
	IDs []string `json:"ids"`
}

func queryBool(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", errBadParam, name)
	}
	return b, nil
}

// notesQuery reads the filter chain from the query string.
func notesQuery(r *http.Request) (service.ListNotesRequest, error) {
	q := r.URL.Query()
	req := service.ListNotesRequest{
		Filter: notes.Filter{
			Tag:    q.Get("tag"),
			Search: q.Get("search"),
		},
		Mode: notes.ParseViewMode(q.Get("mode")),
	}
	flags := []struct {
		name string
		dst  *bool
	}{
		{"bin", &req.Filter.Bin},
		{"pinned", &req.Filter.PinnedOnly},
		{"completed", &req.Filter.CompletedOnly},
		{"sort", &req.Filter.Sort},
	}
	for _, f := range flags {
		v, err := queryBool(r, f.name)
		if err != nil {
			return req, err
		}
		*f.dst = v
	}
	if types := q.Get("types"); types != "" {
		for _, t := range strings.Split(types, ",") {
			nt := entity.NoteType(strings.TrimSpace(t))
			if !nt.Valid() {
				return req, fmt.Errorf("%w: unknown note type %q", errBadParam, t)
			}
			req.Filter.Types = append(req.Filter.Types, nt)
		}
	}
	return req, nil
}

// noteAction runs one operation on the note addressed by the route.
func (s *Server) noteAction(w http.ResponseWriter, r *http.Request, op string,
	fn func(ctx context.Context, ref service.MonthRef, id string) (*entity.NoteItem, error)) {
	ref, logger, ok := s.readMonth(w, r, op)
	if !ok {
		return
	}
	id := r.PathValue("id")
	ctx, cancel := s.requestContext(r)
	defer cancel()
	note, err := fn(ctx, ref, id)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, note)
	logger.Info(op+" done", slog.String("note", id))
}

// @Summary Notes of a month
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param bin query bool false "show the recycle bin"
// @Param tag query string false "tag substring"
// @Param search query string false "content substring"
// @Param types query string false "comma separated note types"
// @Param pinned query bool false "pinned only"
// @Param completed query bool false "completed only"
// @Param sort query bool false "pinned first, undone first, by type, newest first"
// @Param mode query string false "comfortable, compact or list"
// @Success 200 {object} notes.View
// @Router /api/v1/notes/{year}/{month} [get]
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "list notes")
	if !ok {
		return
	}
	req, err := notesQuery(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	view, err := s.notesService.List(ctx, ref, req)
	if err != nil {
		writeServiceError(w, logger, "list notes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

// @Summary Add a note
// @Description The content prefix picks the type: "- " todo, "! " important, a bare URL link.
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param request body AddNoteRequest true "note"
// @Success 201 {object} entity.NoteItem
// @Router /api/v1/notes/{year}/{month} [post]
func (s *Server) AddNote(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "add note")
	if !ok {
		return
	}
	var req AddNoteRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("add note error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	note, err := s.notesService.Add(ctx, ref, req.Day, req.Content)
	if err != nil {
		writeServiceError(w, logger, "add note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("note added", slog.String("note", note.ID))
}

// @Summary Edit a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param id path string true "note id"
// @Param request body EditNoteRequest true "changes"
// @Success 200 {object} entity.NoteItem
// @Failure 404 {object} httputil.ErrorResponse
// @Router /api/v1/notes/{year}/{month}/{id} [patch]
func (s *Server) EditNote(w http.ResponseWriter, r *http.Request) {
	var req EditNoteRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || (req.Content == nil && req.Type == nil) {
		GetLoggerFromCtx(r.Context()).Error("edit note error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Type != nil && !req.Type.Valid() {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown note type", nil)
		return
	}
	s.noteAction(w, r, "edit note", func(ctx context.Context, ref service.MonthRef, id string) (*entity.NoteItem, error) {
		var note *entity.NoteItem
		var err error
		if req.Content != nil {
			if note, err = s.notesService.Edit(ctx, ref, id, *req.Content); err != nil {
				return nil, err
			}
		}
		if req.Type != nil {
			if note, err = s.notesService.SetType(ctx, ref, id, *req.Type); err != nil {
				return nil, err
			}
		}
		return note, nil
	})
}

// @Summary Toggle a todo
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param id path string true "note id"
// @Success 200 {object} entity.NoteItem
// @Router /api/v1/notes/{year}/{month}/{id}/toggle-todo [post]
func (s *Server) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	s.noteAction(w, r, "toggle todo", s.notesService.ToggleTodo)
}

// @Summary Pin or unpin a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param id path string true "note id"
// @Success 200 {object} entity.NoteItem
// @Router /api/v1/notes/{year}/{month}/{id}/toggle-pin [post]
func (s *Server) TogglePin(w http.ResponseWriter, r *http.Request) {
	s.noteAction(w, r, "toggle pin", s.notesService.TogglePin)
}

// @Summary Move a note to the recycle bin
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param id path string true "note id"
// @Success 200 {object} entity.NoteItem
// @Router /api/v1/notes/{year}/{month}/{id} [delete]
func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	s.noteAction(w, r, "delete note", s.notesService.Delete)
}

// @Summary Restore a note from the recycle bin
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param id path string true "note id"
// @Success 200 {object} entity.NoteItem
// @Failure 409 {object} httputil.ErrorResponse
// @Router /api/v1/notes/{year}/{month}/{id}/restore [post]
func (s *Server) RestoreNote(w http.ResponseWriter, r *http.Request) {
	s.noteAction(w, r, "restore note", s.notesService.Restore)
}

// @Summary Delete a binned note for good
// @Tags notes
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param id path string true "note id"
// @Success 204
// @Failure 409 {object} httputil.ErrorResponse
// @Router /api/v1/notes/{year}/{month}/{id}/permanent [delete]
func (s *Server) PermanentDeleteNote(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "permanent delete")
	if !ok {
		return
	}
	id := r.PathValue("id")
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.notesService.PermanentDelete(ctx, ref, id); err != nil {
		writeServiceError(w, logger, "permanent delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("note deleted permanently", slog.String("note", id))
}

// @Summary Empty the recycle bin of a month
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Success 200 {object} map[string]int
// @Router /api/v1/notes/{year}/{month}/bin [delete]
func (s *Server) EmptyBin(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "empty bin")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	removed, err := s.notesService.EmptyBin(ctx, ref)
	if err != nil {
		writeServiceError(w, logger, "empty bin", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]int{"removed": removed})
	logger.Info("bin emptied", slog.Int("removed", removed))
}

// @Summary Merge notes into the oldest one
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param request body MergeNotesRequest true "ids"
// @Success 200 {object} entity.NoteItem
// @Router /api/v1/notes/{year}/{month}/merge [post]
func (s *Server) MergeNotes(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "merge notes")
	if !ok {
		return
	}
	var req MergeNotesRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("merge notes error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	note, err := s.notesService.Merge(ctx, ref, req.IDs)
	if err != nil {
		writeServiceError(w, logger, "merge notes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, note)
	logger.Info("notes merged", slog.String("note", note.ID), slog.Int("count", len(req.IDs)))
}

// @Summary Split a note by lines
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param id path string true "note id"
// @Success 200 {array} entity.NoteItem
// @Router /api/v1/notes/{year}/{month}/{id}/split [post]
func (s *Server) SplitNote(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "split note")
	if !ok {
		return
	}
	id := r.PathValue("id")
	ctx, cancel := s.requestContext(r)
	defer cancel()
	parts, err := s.notesService.Split(ctx, ref, id)
	if err != nil {
		writeServiceError(w, logger, "split note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, parts)
	logger.Info("note split", slog.String("note", id), slog.Int("parts", len(parts)))
}

// @Summary Tag suggestions for the tag under the cursor
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param text query string true "text being typed"
// @Param cursor query int false "cursor position, end of text by default"
// @Success 200 {array} string
// @Router /api/v1/notes/{year}/{month}/suggestions [get]
func (s *Server) SuggestTags(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "suggest tags")
	if !ok {
		return
	}
	text := r.URL.Query().Get("text")
	cursor, err := queryInt(r, "cursor", len([]rune(text)))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tags, err := s.notesService.Suggest(ctx, ref, text, cursor)
	if err != nil {
		writeServiceError(w, logger, "suggest tags", err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tags)
}
