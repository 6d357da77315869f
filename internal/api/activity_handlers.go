package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/httputil"
)

type SetCellRequest struct {
	Day   int    `json:"day"`
	Hour  int    `json:"hour"`
	Value string `json:"value"`
}

type SelectRequest struct {
	From   *grid.CellID  `json:"from,omitempty"`
	To     *grid.CellID  `json:"to,omitempty"`
	Cells  []grid.CellID `json:"cells,omitempty"`
	Toggle bool          `json:"toggle"`
}

type PasteTextRequest struct {
	Text string `json:"text"`
}

type FillRequest struct {
	Value string `json:"value"`
}

// readMonth resolves the month addressed by the route or answers the request itself.
func (s *Server) readMonth(w http.ResponseWriter, r *http.Request, op string) (service.MonthRef, *slog.Logger, bool) {
	logger := GetLoggerFromCtx(r.Context())
	if _, err := GetUIDFromContext(r); err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return service.MonthRef{}, nil, false
	}
	ref, err := monthRef(r)
	if err != nil {
		logger.Error(op+" error: invalid month", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month", err)
		return service.MonthRef{}, nil, false
	}
	return ref, logger.With(slog.Int("year", ref.Year), slog.Int("month", int(ref.Month))), true
}

// monthAction runs one grid operation that answers with the month view.
func (s *Server) monthAction(w http.ResponseWriter, r *http.Request, op string,
	fn func(ctx context.Context, ref service.MonthRef) (*service.MonthView, error)) {
	ref, logger, ok := s.readMonth(w, r, op)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	view, err := fn(ctx, ref)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	if len(view.Changes) > 0 {
		logger.Info(op+" applied", slog.Int("changes", len(view.Changes)))
	}
}

// @Summary Activity grid of a month
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Success 200 {object} service.MonthView
// @Router /api/v1/activity/{year}/{month} [get]
func (s *Server) GetActivityMonth(w http.ResponseWriter, r *http.Request) {
	s.monthAction(w, r, "get month", s.activityService.GetMonth)
}

// @Summary Set one cell
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param request body SetCellRequest true "cell"
// @Success 200 {object} service.MonthView
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/v1/activity/{year}/{month}/cells [put]
func (s *Server) SetActivityCell(w http.ResponseWriter, r *http.Request) {
	var req SetCellRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		GetLoggerFromCtx(r.Context()).Error("set cell error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	s.monthAction(w, r, "set cell", func(ctx context.Context, ref service.MonthRef) (*service.MonthView, error) {
		return s.activityService.SetCell(ctx, ref, grid.CellID{Day: req.Day, Hour: req.Hour}, req.Value)
	})
}

// @Summary Change the selection
// @Description Selects the rectangle between from and to, or the given cells. With toggle the cells flip their state.
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param request body SelectRequest true "selection"
// @Success 200 {object} service.MonthView
// @Router /api/v1/activity/{year}/{month}/selection [post]
func (s *Server) SelectActivityCells(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		GetLoggerFromCtx(r.Context()).Error("select error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	s.monthAction(w, r, "select", func(ctx context.Context, ref service.MonthRef) (*service.MonthView, error) {
		return s.activityService.Select(ctx, ref, service.SelectRequest{
			From:   req.From,
			To:     req.To,
			Cells:  req.Cells,
			Toggle: req.Toggle,
		})
	})
}

// @Summary Clear the selection
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Success 200 {object} service.MonthView
// @Router /api/v1/activity/{year}/{month}/selection [delete]
func (s *Server) ClearActivitySelection(w http.ResponseWriter, r *http.Request) {
	s.monthAction(w, r, "clear selection", s.activityService.ClearSelection)
}

// @Summary Copy selected cells
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Success 200 {array} grid.ClipboardCell
// @Failure 409 {object} httputil.ErrorResponse
// @Router /api/v1/activity/{year}/{month}/copy [post]
func (s *Server) CopyActivity(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "copy")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	clip, err := s.activityService.Copy(ctx, ref)
	if err != nil {
		writeServiceError(w, logger, "copy", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, clip)
	logger.Info("cells copied", slog.Int("count", len(clip)))
}

// @Summary Paste the clipboard at the selection
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Success 200 {object} service.MonthView
// @Failure 409 {object} httputil.ErrorResponse
// @Router /api/v1/activity/{year}/{month}/paste [post]
func (s *Server) PasteActivity(w http.ResponseWriter, r *http.Request) {
	s.monthAction(w, r, "paste", s.activityService.Paste)
}

// @Summary Paste tab separated text at the selection
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param request body PasteTextRequest true "text"
// @Success 200 {object} service.MonthView
// @Router /api/v1/activity/{year}/{month}/paste-text [post]
func (s *Server) PasteActivityText(w http.ResponseWriter, r *http.Request) {
	var req PasteTextRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		GetLoggerFromCtx(r.Context()).Error("paste text error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	s.monthAction(w, r, "paste text", func(ctx context.Context, ref service.MonthRef) (*service.MonthView, error) {
		return s.activityService.PasteText(ctx, ref, req.Text)
	})
}

// @Summary Fill selected cells
// @Description An empty value clears the selected cells.
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param request body FillRequest true "value"
// @Success 200 {object} service.MonthView
// @Router /api/v1/activity/{year}/{month}/fill [post]
func (s *Server) FillActivity(w http.ResponseWriter, r *http.Request) {
	var req FillRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		GetLoggerFromCtx(r.Context()).Error("fill error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	s.monthAction(w, r, "fill", func(ctx context.Context, ref service.MonthRef) (*service.MonthView, error) {
		return s.activityService.FillSelected(ctx, ref, req.Value)
	})
}

// @Summary Undo the last change
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Success 200 {object} service.MonthView
// @Failure 409 {object} httputil.ErrorResponse
// @Router /api/v1/activity/{year}/{month}/undo [post]
func (s *Server) UndoActivity(w http.ResponseWriter, r *http.Request) {
	s.monthAction(w, r, "undo", s.activityService.Undo)
}

// @Summary Redo the last undone change
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Success 200 {object} service.MonthView
// @Failure 409 {object} httputil.ErrorResponse
// @Router /api/v1/activity/{year}/{month}/redo [post]
func (s *Server) RedoActivity(w http.ResponseWriter, r *http.Request) {
	s.monthAction(w, r, "redo", s.activityService.Redo)
}

// @Summary Hours per category
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month 1-12"
// @Param day query int false "day of month for the day totals"
// @Success 200 {object} service.TotalsReport
// @Router /api/v1/activity/{year}/{month}/totals [get]
func (s *Server) GetActivityTotals(w http.ResponseWriter, r *http.Request) {
	ref, logger, ok := s.readMonth(w, r, "totals")
	if !ok {
		return
	}
	day, err := queryInt(r, "day", 0)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	totals, err := s.activityService.Totals(ctx, ref, day)
	if err != nil {
		writeServiceError(w, logger, "totals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, totals)
}
