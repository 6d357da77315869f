package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/httputil"
)

const defaultRequestTimeout = 10 * time.Second

type Server struct {
	mx              *chi.Mux
	mu              sync.Mutex
	srv             *http.Server
	timeout         time.Duration
	loc             *time.Location
	jwtService      JWTServiceI
	userService     service.UserServiceI
	timerService    service.TimerServiceI
	gapsService     service.GapsServiceI
	reportService   service.ReportServiceI
	takeawayService service.TakeawayServiceI
	catalogService  service.CatalogServiceI
	activityService service.ActivityServiceI
	notesService    service.NotesServiceI
	settingsService service.SettingsServiceI
	backupService   service.BackupServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	TimerService    service.TimerServiceI
	GapsService     service.GapsServiceI
	ReportService   service.ReportServiceI
	TakeawayService service.TakeawayServiceI
	CatalogService  service.CatalogServiceI
	ActivityService service.ActivityServiceI
	NotesService    service.NotesServiceI
	SettingsService service.SettingsServiceI
	BackupService   service.BackupServiceI
	JwtService      JWTServiceI
	// Per request deadline given to services, 10s when zero
	RequestTimeout time.Duration
	// Location used to read date-only query parameters, time.Local when nil
	Location *time.Location
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		timeout:         servicesOptions.RequestTimeout,
		loc:             servicesOptions.Location,
		jwtService:      servicesOptions.JwtService,
		userService:     servicesOptions.UserService,
		timerService:    servicesOptions.TimerService,
		gapsService:     servicesOptions.GapsService,
		reportService:   servicesOptions.ReportService,
		takeawayService: servicesOptions.TakeawayService,
		catalogService:  servicesOptions.CatalogService,
		activityService: servicesOptions.ActivityService,
		notesService:    servicesOptions.NotesService,
		settingsService: servicesOptions.SettingsService,
		backupService:   servicesOptions.BackupService,
	}
	if s.timeout <= 0 {
		s.timeout = defaultRequestTimeout
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Get("/swagger/*", httpSwagger.WrapHandler)

	s.mx.Post("/auth/register", s.Register)
	s.mx.Post("/auth/login", s.Login)
	s.mx.Get("/categories", s.ListCategories)

	// Time tracking endpoints address the user by id in the request
	s.mx.Post("/timer/start", s.StartTimer)
	s.mx.Post("/timer/stop", s.StopTimer)
	s.mx.Get("/timer/active/{userId}", s.GetActiveTimer)
	s.mx.Get("/gaps/check", s.CheckGaps)
	s.mx.Get("/reports", s.GetReport)
	s.mx.Get("/reports/dashboard", s.GetDashboard)
	s.mx.Post("/takeaways", s.CreateTakeaway)
	s.mx.Get("/takeaways", s.ListTakeaways)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Get("/entries", s.ListEntries)

		r.Post("/projects", s.CreateProject)
		r.Get("/projects", s.ListProjects)
		r.Post("/goals", s.CreateGoal)
		r.Get("/goals", s.ListGoals)
		r.Post("/goals/{id}/complete", s.CompleteGoal)

		r.Route("/activity/{year}/{month}", func(r chi.Router) {
			r.Get("/", s.GetActivityMonth)
			r.Put("/cells", s.SetActivityCell)
			r.Post("/selection", s.SelectActivityCells)
			r.Delete("/selection", s.ClearActivitySelection)
			r.Post("/copy", s.CopyActivity)
			r.Post("/paste", s.PasteActivity)
			r.Post("/paste-text", s.PasteActivityText)
			r.Post("/fill", s.FillActivity)
			r.Post("/undo", s.UndoActivity)
			r.Post("/redo", s.RedoActivity)
			r.Get("/totals", s.GetActivityTotals)
		})

		r.Route("/notes/{year}/{month}", func(r chi.Router) {
			r.Get("/", s.ListNotes)
			r.Post("/", s.AddNote)
			r.Get("/suggestions", s.SuggestTags)
			r.Post("/merge", s.MergeNotes)
			r.Delete("/bin", s.EmptyBin)
			r.Patch("/{id}", s.EditNote)
			r.Delete("/{id}", s.DeleteNote)
			r.Post("/{id}/toggle-todo", s.ToggleTodo)
			r.Post("/{id}/toggle-pin", s.TogglePin)
			r.Post("/{id}/restore", s.RestoreNote)
			r.Delete("/{id}/permanent", s.PermanentDeleteNote)
			r.Post("/{id}/split", s.SplitNote)
		})

		r.Get("/settings", s.GetSettings)
		r.Put("/settings", s.UpdateSettings)
		r.Get("/backup", s.ExportBackup)
		r.Post("/backup", s.ImportBackup)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until Shutdown is called. A graceful stop is not reported as an error.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()
	slog.Info("server started", slog.String("address", address))
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// requestContext bounds service calls of one request.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.timeout)
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
