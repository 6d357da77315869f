package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/httputil"
)

type StartTimerRequest struct {
	UserID     uuid.UUID  `json:"userId"`
	CategoryID uuid.UUID  `json:"categoryId"`
	ProjectID  *uuid.UUID `json:"projectId,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

type StopTimerRequest struct {
	UserID  uuid.UUID `json:"userId"`
	EntryID uuid.UUID `json:"entryId"`
	Notes   *string   `json:"notes,omitempty"`
}

type CreateTakeawayRequest struct {
	UserID  uuid.UUID `json:"userId"`
	Content string    `json:"content"`
	// RFC3339 timestamp or YYYY-MM-DD
	Date *string `json:"date,omitempty"`
}

// @Summary Start a timer
// @Tags timer
// @Accept json
// @Produce json
// @Param request body StartTimerRequest true "timer"
// @Success 201 {object} entity.TimeEntry
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /timer/start [post]
func (s *Server) StartTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req StartTimerRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("start timer error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entry, err := s.timerService.Start(ctx, &service.StartTimerRequest{
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
		ProjectID:  req.ProjectID,
		Notes:      req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "start timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("timer started", slog.String("uid", req.UserID.String()), slog.String("entry", entry.ID.String()))
}

// @Summary Stop the active timer
// @Tags timer
// @Accept json
// @Produce json
// @Param request body StopTimerRequest true "timer"
// @Success 200 {object} entity.TimeEntry
// @Failure 404 {object} httputil.ErrorResponse
// @Router /timer/stop [post]
func (s *Server) StopTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req StopTimerRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("stop timer error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entry, err := s.timerService.Stop(ctx, &service.StopTimerRequest{
		UserID:  req.UserID,
		EntryID: req.EntryID,
		Notes:   req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "stop timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("timer stopped", slog.String("uid", req.UserID.String()), slog.String("entry", entry.ID.String()))
}

// @Summary Active timer of a user
// @Tags timer
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {object} entity.TimeEntry "null when no timer runs"
// @Router /timer/active/{userId} [get]
func (s *Server) GetActiveTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		logger.Error("get active timer error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entry, err := s.timerService.GetActive(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get active timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

// @Summary Time entries of the authenticated user
// @Tags timer
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "RFC3339 or YYYY-MM-DD"
// @Param endDate query string true "RFC3339 or YYYY-MM-DD"
// @Success 200 {array} entity.TimeEntry
// @Router /api/v1/entries [get]
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, err := s.queryTime(r, "startDate", false)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	to, err := s.queryTime(r, "endDate", true)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entries, err := s.timerService.ListEntries(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "list entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}

// @Summary Untracked gaps between entries
// @Tags gaps
// @Produce json
// @Param userId query string true "user id"
// @Param startDate query string true "RFC3339 or YYYY-MM-DD"
// @Param endDate query string true "RFC3339 or YYYY-MM-DD"
// @Success 200 {object} entity.GapsReport
// @Router /gaps/check [get]
func (s *Server) CheckGaps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, start, end, err := s.rangeQuery(r)
	if err != nil {
		logger.Error("check gaps error: invalid query", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	report, err := s.gapsService.CheckGaps(ctx, uid, start, end)
	if err != nil {
		writeServiceError(w, logger, "check gaps", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

// @Summary Time report by category
// @Tags reports
// @Produce json
// @Param userId query string true "user id"
// @Param startDate query string true "RFC3339 or YYYY-MM-DD"
// @Param endDate query string true "RFC3339 or YYYY-MM-DD"
// @Success 200 {object} entity.Report
// @Router /reports [get]
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, start, end, err := s.rangeQuery(r)
	if err != nil {
		logger.Error("get report error: invalid query", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	report, err := s.reportService.GetReport(ctx, uid, start, end)
	if err != nil {
		writeServiceError(w, logger, "get report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

// @Summary Today and this week at a glance
// @Tags reports
// @Produce json
// @Param userId query string true "user id"
// @Success 200 {object} entity.Dashboard
// @Router /reports/dashboard [get]
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := queryUUID(r, "userId")
	if err != nil {
		logger.Error("get dashboard error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	dashboard, err := s.reportService.GetDashboardData(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
}

// @Summary Write a takeaway
// @Tags takeaways
// @Accept json
// @Produce json
// @Param request body CreateTakeawayRequest true "takeaway"
// @Success 201 {object} entity.Takeaway
// @Failure 400 {object} httputil.ErrorResponse
// @Router /takeaways [post]
func (s *Server) CreateTakeaway(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTakeawayRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create takeaway error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq := &service.CreateTakeawayRequest{UserID: req.UserID, Content: req.Content}
	if req.Date != nil && *req.Date != "" {
		date, err := parseTime(*req.Date, s.loc, false)
		if err != nil {
			logger.Error("create takeaway error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
			return
		}
		serviceReq.Date = &date
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	takeaway, err := s.takeawayService.Create(ctx, serviceReq)
	if err != nil {
		writeServiceError(w, logger, "create takeaway", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, takeaway)
	logger.Info("takeaway created", slog.String("id", takeaway.ID.String()))
}

// @Summary List takeaways
// @Tags takeaways
// @Produce json
// @Param userId query string true "user id"
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD"
// @Success 200 {array} entity.Takeaway
// @Router /takeaways [get]
func (s *Server) ListTakeaways(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := queryUUID(r, "userId")
	if err != nil {
		logger.Error("list takeaways error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	from, err := s.queryOptionalTime(r, "startDate", false)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	to, err := s.queryOptionalTime(r, "endDate", true)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	list, err := s.takeawayService.List(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "list takeaways", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, list)
}

// rangeQuery reads userId, startDate and endDate.
func (s *Server) rangeQuery(r *http.Request) (uid uuid.UUID, start, end time.Time, err error) {
	if uid, err = queryUUID(r, "userId"); err != nil {
		return
	}
	if start, err = s.queryTime(r, "startDate", false); err != nil {
		return
	}
	end, err = s.queryTime(r, "endDate", true)
	return
}
