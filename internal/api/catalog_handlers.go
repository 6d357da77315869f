package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/httputil"
)

type CreateProjectRequest struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

type CreateGoalRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TargetHours float64 `json:"targetHours"`
	// RFC3339 timestamp or YYYY-MM-DD
	Deadline *string `json:"deadline,omitempty"`
}

// @Summary Fixed time tracking categories
// @Tags catalog
// @Produce json
// @Success 200 {array} entity.Category
// @Router /categories [get]
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	categories, err := s.catalogService.ListCategories(ctx)
	if err != nil {
		writeServiceError(w, logger, "list categories", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, categories)
}

// @Summary Create a project
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProjectRequest true "project"
// @Success 201 {object} entity.Project
// @Failure 409 {object} httputil.ErrorResponse
// @Router /api/v1/projects [post]
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create project error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateProjectRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create project error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	project, err := s.catalogService.CreateProject(ctx, &service.CreateProjectRequest{
		UserID:      uid,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, logger, "create project", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, project)
	logger.Info("project created", slog.String("id", project.ID.String()))
}

// @Summary Projects of the authenticated user
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Project
// @Router /api/v1/projects [get]
func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list projects error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	projects, err := s.catalogService.ListProjects(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list projects", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, projects)
}

// @Summary Create a goal
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "goal"
// @Success 201 {object} entity.Goal
// @Router /api/v1/goals [post]
func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGoalRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq := &service.CreateGoalRequest{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		TargetHours: req.TargetHours,
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := parseTime(*req.Deadline, s.loc, true)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid deadline", err)
			return
		}
		serviceReq.Deadline = &deadline
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	goal, err := s.catalogService.CreateGoal(ctx, serviceReq)
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.String("id", goal.ID.String()))
}

// @Summary Goals of the authenticated user
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Goal
// @Router /api/v1/goals [get]
func (s *Server) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	goals, err := s.catalogService.ListGoals(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
}

// @Summary Mark a goal completed
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "goal id"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Router /api/v1/goals/{id}/complete [post]
func (s *Server) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete goal error: invalid goal id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err = s.catalogService.CompleteGoal(ctx, goalID, uid); err != nil {
		writeServiceError(w, logger, "complete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goal completed", slog.String("id", goalID.String()))
}
