package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/entity"
	"github.com/limbo/twentyfourseven/pkg/httputil"
)

const maxBackupSize = 10 << 20

type UpdateSettingsRequest struct {
	Categories []entity.DynamicCategory `json:"categories"`
}

// @Summary Grid categories of the authenticated user
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.Settings
// @Router /api/v1/settings [get]
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	settings, err := s.settingsService.Get(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

// @Summary Replace grid categories
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "categories"
// @Success 200 {object} entity.Settings
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/v1/settings [put]
func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateSettingsRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("update settings error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	settings, err := s.settingsService.Update(ctx, uid, req.Categories)
	if err != nil {
		writeServiceError(w, logger, "update settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings updated", slog.Int("categories", len(settings.Categories)))
}

// @Summary Export every stored key
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.Backup
// @Router /api/v1/backup [get]
func (s *Server) ExportBackup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("export error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	backup, err := s.backupService.Export(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "export", err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q",
		"twentyfourseven-"+backup.ExportedAt.Format("2006-01-02")+".json"))
	httputil.WriteJSONResponse(w, http.StatusOK, backup)
	logger.Info("backup exported", slog.Int("keys", len(backup.Data)))
}

// @Summary Import a backup
// @Description Keys failing validation are skipped. The import fails only when no key is valid.
// @Tags backup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body entity.Backup true "exported document or a plain key/value object"
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/v1/backup [post]
func (s *Server) ImportBackup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("import error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	defer r.Body.Close()
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBackupSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "backup is too large", nil)
			return
		}
		logger.Error("import error: reading body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	data, err := service.DecodeBackup(raw)
	if err != nil {
		logger.Error("import error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	result, err := s.backupService.Import(ctx, uid, data)
	if err != nil {
		writeServiceError(w, logger, "import", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("backup imported", slog.Int("imported", result.Imported), slog.Int("skipped", len(result.Skipped)))
}
