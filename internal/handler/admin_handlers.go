package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/handler/dto"
	"github.com/mtlprog/profilecheck/internal/middleware"
	"github.com/mtlprog/profilecheck/internal/repository"
	"github.com/mtlprog/profilecheck/internal/service"
)

// handleLoginPage renders the admin login form.
func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "login.html", loginPage{Page: Page{Title: "Admin login"}})
}

// handleLogin checks admin credentials and sets the session cookie.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")

	session, err := h.admins.Login(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrEmptyCredentials) {
			slog.Warn("admin login failed", "username", username)
			status, _, message := dto.MapDomainError(err)
			h.render(w, status, "login.html", loginPage{
				Page:     Page{Title: "Admin login"},
				Username: username,
				Error:    message,
			})
			return
		}
		renderDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleLogout ends the admin session and clears the cookie.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.admins.Logout(r.Context(), cookie.Value); err != nil {
			slog.Error("failed to delete session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAdmin lists stored results with a score summary.
func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	filters, err := dto.ParseListResultsFilters(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, limit, err := h.listResults(r, filters)
	if err != nil {
		renderDomainError(w, err)
		return
	}

	nextOffset := 0
	if len(results) == limit {
		nextOffset = filters.Offset + limit
	}

	h.render(w, http.StatusOK, "admin.html", adminPage{
		Page:       Page{Title: "Results", LoggedIn: true},
		Results:    results,
		Summary:    service.SummarizeScores(results),
		Limit:      limit,
		NextOffset: nextOffset,
	})
}

// handleListResultsJSON returns stored results with a score summary.
func (h *Handler) handleListResultsJSON(w http.ResponseWriter, r *http.Request) {
	filters, err := dto.ParseListResultsFilters(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	results, limit, err := h.listResults(r, filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.ResultResponse, len(results))
	for i, result := range results {
		items[i] = dto.ToResultResponse(result)
	}

	respondJSON(w, http.StatusOK, dto.ResultsListResponse{
		Results: items,
		Summary: dto.ToSummaryResponse(service.SummarizeScores(results)),
		Limit:   limit,
		Offset:  filters.Offset,
	})
}

// handleReport streams the PDF report of a stored result as a download.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	resultID, ok := extractResultID(w, r, false)
	if !ok {
		return
	}

	result, err := h.results.GetByID(r.Context(), resultID)
	if err != nil {
		renderDomainError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := service.WriteReport(&buf, result); err != nil {
		slog.Error("failed to build report", "result_id", resultID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.pdf"`, result.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) listResults(r *http.Request, filters dto.ListResultsFilters) ([]*domain.VerificationResult, int, error) {
	limit := filters.Limit
	if limit == 0 {
		limit = repository.DefaultListLimit
	}
	if limit > repository.MaxListLimit {
		limit = repository.MaxListLimit
	}

	results, err := h.results.List(r.Context(), repository.ListFilter{
		GitHubUsername: filters.GitHubUsername,
		Limit:          limit,
		Offset:         filters.Offset,
	})
	if err != nil {
		return nil, 0, err
	}
	return results, limit, nil
}
