package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/handler/dto"
	"github.com/mtlprog/profilecheck/internal/middleware"
	"github.com/mtlprog/profilecheck/internal/service"
)

// Page is the data shared by every HTML template.
type Page struct {
	Title    string
	LoggedIn bool
}

type indexPage struct {
	Page
	Error string
}

type resultPage struct {
	Page
	Result          *domain.VerificationResult
	Chart           template.HTML
	ChartLibraryURL string
}

type loginPage struct {
	Page
	Username string
	Error    string
}

type adminPage struct {
	Page
	Results    []*domain.VerificationResult
	Summary    service.Summary
	Limit      int
	NextOffset int
}

// render executes the named template into a buffer before writing, so a
// template failure never leaves a half written page.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// renderDomainError writes a plain text error page mapped from err.
func renderDomainError(w http.ResponseWriter, err error) {
	status, _, message := dto.MapDomainError(err)
	http.Error(w, message, status)
}

// loggedIn reports whether the request carries a live admin session.
func (h *Handler) loggedIn(r *http.Request) bool {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = h.admins.Authenticate(r.Context(), cookie.Value)
	return err == nil
}
