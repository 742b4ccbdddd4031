package handler

import (
	"log/slog"
	"net/http"

	"github.com/mtlprog/profilecheck/internal/chart"
	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/handler/dto"
	"github.com/mtlprog/profilecheck/internal/service"
)

// handleIndex renders the upload form.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "index.html", indexPage{
		Page: Page{Title: "Verify a profile", LoggedIn: h.loggedIn(r)},
	})
}

// handleVerify accepts a resume upload and a GitHub profile and renders the result.
func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderIndexError(w, r, http.StatusBadRequest, "The upload could not be read. Resumes are limited to 10 MB.")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		h.renderIndexError(w, r, http.StatusBadRequest, domain.ErrMissingResume.Error())
		return
	}
	defer file.Close()

	result, err := h.verifier.Verify(ctx, service.VerifyRequest{
		Filename:      header.Filename,
		Resume:        file,
		GitHubProfile: r.FormValue("github"),
	})
	if err != nil {
		status, _, message := dto.MapDomainError(err)
		if status == http.StatusInternalServerError {
			http.Error(w, message, status)
			return
		}
		h.renderIndexError(w, r, status, message)
		return
	}

	h.renderResult(w, r, result)
}

// handleGetResult renders a stored result page.
func (h *Handler) handleGetResult(w http.ResponseWriter, r *http.Request) {
	resultID, ok := extractResultID(w, r, false)
	if !ok {
		return
	}

	result, err := h.results.GetByID(r.Context(), resultID)
	if err != nil {
		renderDomainError(w, err)
		return
	}

	h.renderResult(w, r, result)
}

// handleActivity renders the contribution activity chart of a stored result.
func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	resultID, ok := extractResultID(w, r, false)
	if !ok {
		return
	}

	result, err := h.results.GetByID(r.Context(), resultID)
	if err != nil {
		renderDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.RenderActivity(w, result.GitHubUsername, result.ContributionLevels); err != nil {
		slog.Error("failed to render activity chart", "result_id", resultID, "error", err)
	}
}

// handleGetResultJSON returns a stored result, including its chart configuration.
func (h *Handler) handleGetResultJSON(w http.ResponseWriter, r *http.Request) {
	resultID, ok := extractResultID(w, r, true)
	if !ok {
		return
	}

	result, err := h.results.GetByID(r.Context(), resultID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToResultResponse(result))
}

func (h *Handler) renderResult(w http.ResponseWriter, r *http.Request, result *domain.VerificationResult) {
	in, err := chart.NewInput(len(result.ResumeSkills), len(result.GitHubLanguages))
	if err != nil {
		renderDomainError(w, err)
		return
	}

	fragment, err := chart.HTML(chart.NewBinding(in))
	if err != nil {
		slog.Error("failed to render chart", "result_id", result.ID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "result.html", resultPage{
		Page:            Page{Title: result.Status.Label(), LoggedIn: h.loggedIn(r)},
		Result:          result,
		Chart:           fragment,
		ChartLibraryURL: h.chartLibraryURL,
	})
}

func (h *Handler) renderIndexError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Info("verification rejected", "status", status, "reason", message)
	h.render(w, status, "index.html", indexPage{
		Page:  Page{Title: "Verify a profile", LoggedIn: h.loggedIn(r)},
		Error: message,
	})
}
