package handler

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mtlprog/profilecheck/internal/config"
	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/handler/dto"
	"github.com/mtlprog/profilecheck/internal/middleware"
	"github.com/mtlprog/profilecheck/internal/repository"
	"github.com/mtlprog/profilecheck/internal/service"
	"github.com/mtlprog/profilecheck/internal/static"
)

// DefaultChartLibraryURL is where result pages load the charting library from.
const DefaultChartLibraryURL = config.DefaultChartLibraryURL

// maxUploadSize caps multipart uploads on /verify.
const maxUploadSize = 10 << 20

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Verifier runs a resume verification.
type Verifier interface {
	Verify(ctx context.Context, req service.VerifyRequest) (*domain.VerificationResult, error)
}

// ResultReader loads stored verification results.
type ResultReader interface {
	GetByID(ctx context.Context, id string) (*domain.VerificationResult, error)
	List(ctx context.Context, filter repository.ListFilter) ([]*domain.VerificationResult, error)
}

// AdminAuth handles admin logins and sessions.
type AdminAuth interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Deps are the collaborators of Handler.
type Deps struct {
	DB              Pinger
	Verifier        Verifier
	Results         ResultReader
	Admins          AdminAuth
	ChartLibraryURL string
	SecureCookies   bool
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	db              Pinger
	verifier        Verifier
	results         ResultReader
	admins          AdminAuth
	authMiddleware  *middleware.AuthMiddleware
	templates       *template.Template
	chartLibraryURL string
	secureCookies   bool
}

// New creates a new Handler instance with all dependencies.
func New(deps Deps) *Handler {
	chartLibraryURL := deps.ChartLibraryURL
	if chartLibraryURL == "" {
		chartLibraryURL = DefaultChartLibraryURL
	}

	return &Handler{
		db:              deps.DB,
		verifier:        deps.Verifier,
		results:         deps.Results,
		admins:          deps.Admins,
		authMiddleware:  middleware.NewAuthMiddleware(deps.Admins, "/login"),
		templates:       template.Must(template.ParseFS(static.Templates, "templates/*.html")),
		chartLibraryURL: chartLibraryURL,
		secureCookies:   deps.SecureCookies,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Static assets
	mux.HandleFunc("GET /static/style.css", h.handleStyle)

	// Public pages
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /verify", h.handleVerify)
	mux.HandleFunc("GET /results/{id}", h.handleGetResult)
	mux.HandleFunc("GET /results/{id}/activity", h.handleActivity)
	mux.HandleFunc("GET /api/v1/results/{id}", h.handleGetResultJSON)

	// Admin
	mux.HandleFunc("GET /login", h.handleLoginPage)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("POST /logout", h.handleLogout)
	mux.Handle("GET /admin", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleAdmin)))
	mux.Handle("GET /admin/results/{id}/report", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleReport)))
	mux.Handle("GET /api/v1/results", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleListResultsJSON)))
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleStyle serves the embedded stylesheet.
func (h *Handler) handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.StyleCSS))
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError writes the JSON error response mapped from err.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractResultID extracts and validates result ID from path parameter.
// Returns (resultID, true) if valid, ("", false) if invalid (error already sent to client).
func extractResultID(w http.ResponseWriter, r *http.Request, asJSON bool) (string, bool) {
	resultID := r.PathValue("id")
	if _, err := uuid.Parse(resultID); err != nil {
		if asJSON {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "result id must be a valid UUID")
		} else {
			http.Error(w, "result id must be a valid UUID", http.StatusBadRequest)
		}
		return "", false
	}

	return resultID, true
}
