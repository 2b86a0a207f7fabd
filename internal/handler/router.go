package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hcstnb2047/lvdash/internal/orchestrator"
	"github.com/hcstnb2047/lvdash/internal/service"
	"github.com/sirupsen/logrus"
)

// Dashboard is the workflow overview the API serves; *orchestrator.Dashboard
// satisfies it.
type Dashboard interface {
	Snapshot(ctx context.Context, refresh bool) (orchestrator.Snapshot, error)
	Dispatch(ctx context.Context, fileName string, inputs map[string]string) (<-chan service.PollResult, error)
}

type Services struct {
	Auth        service.AuthService
	Preferences service.PreferencesService
	Workflows   service.WorkflowService
	Dashboard   Dashboard
	Knowledge   service.KnowledgeService
	Books       service.BooksService
	Events      http.Handler
}

type Handler struct {
	Services
	log logrus.FieldLogger
}

func New(s Services) *Handler {
	return &Handler{Services: s, log: logrus.WithField("component", "api")}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/session", h.getSession).Methods(http.MethodGet)
	api.HandleFunc("/session/pat", h.setPAT).Methods(http.MethodPut)
	api.HandleFunc("/session/pat", h.clearPAT).Methods(http.MethodDelete)

	api.HandleFunc("/workflows", h.listWorkflows).Methods(http.MethodGet)
	api.HandleFunc("/workflows/{id:[0-9]+}/runs", h.listRuns).Methods(http.MethodGet)
	api.HandleFunc("/workflows/{file}/dispatches", h.dispatch).Methods(http.MethodPost)
	api.HandleFunc("/workflows/{file}/favorite", h.toggleFavorite).Methods(http.MethodPost)
	api.HandleFunc("/workflows/{file}/visibility", h.toggleVisibility).Methods(http.MethodPost)

	api.HandleFunc("/preferences", h.getPreferences).Methods(http.MethodGet)
	api.HandleFunc("/preferences/theme", h.setTheme).Methods(http.MethodPut)

	api.HandleFunc("/knowledge", h.listKnowledge).Methods(http.MethodGet)
	api.HandleFunc("/knowledge/content", h.knowledgeContent).Methods(http.MethodGet)
	api.HandleFunc("/knowledge/search", h.searchKnowledge).Methods(http.MethodGet)

	api.HandleFunc("/books", h.library).Methods(http.MethodGet)
	api.HandleFunc("/books/status", h.updateBookStatus).Methods(http.MethodPost)
	api.HandleFunc("/books/notes", h.addBookNote).Methods(http.MethodPost)

	if h.Events != nil {
		api.Handle("/events", h.Events).Methods(http.MethodGet)
	}

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE streaming working through the recorder.
func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("request")
	})
}
