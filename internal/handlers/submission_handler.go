package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"assignhub/internal/middleware"
	"assignhub/internal/repository"
	"assignhub/internal/service"
	"assignhub/pkg/validator"
)

// SubmissionHandler handles submission requests
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// CreateSubmissionRequest represents a new submission
type CreateSubmissionRequest struct {
	Content string `json:"content" validate:"required"`
}

// RateSubmissionRequest represents a rating for a submission
type RateSubmissionRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// Create handles posting a submission to an assignment
// @Summary Submit a solution
// @Tags Submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body CreateSubmissionRequest true "Submission content"
// @Success 201 {object} models.Submission "Created submission"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /assignments/{id}/submissions [post]
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	assignmentID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidAssignmentID)
		return
	}

	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	submission, err := h.submissionService.Submit(assignmentID, userID, validator.SanitizeString(req.Content))
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			respondWithError(w, http.StatusNotFound, ErrMsgAssignmentNotFound)
			return
		}
		slog.Error("Failed to create submission", "error", err, "assignment_id", assignmentID, "user_id", userID)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	slog.Info("Submission created", "submission_id", submission.ID, "assignment_id", assignmentID, "user_id", userID)
	JSONResponse(w, http.StatusCreated, submission)
}

// ListByAssignment returns all submissions for an assignment
// @Summary List submissions for an assignment
// @Tags Submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {array} models.Submission "Submissions"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /assignments/{id}/submissions [get]
func (h *SubmissionHandler) ListByAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidAssignmentID)
		return
	}

	submissions, err := h.submissionService.ListByAssignment(assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			respondWithError(w, http.StatusNotFound, ErrMsgAssignmentNotFound)
			return
		}
		slog.Error("Failed to list submissions", "error", err, "assignment_id", assignmentID)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, submissions)
}

// Rate handles rating a submission
// @Summary Rate a submission
// @Description Rate a submission 1-5. Only the assignment creator may rate, each submission once.
// @Tags Submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body RateSubmissionRequest true "Rating"
// @Success 200 {object} models.Submission "Rated submission"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 403 {object} map[string]string "Not allowed to rate"
// @Failure 404 {object} map[string]string "Submission not found"
// @Failure 409 {object} map[string]string "Already rated"
// @Router /submissions/{id}/rate [post]
func (h *SubmissionHandler) Rate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	submissionID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidSubmissionID)
		return
	}

	var req RateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	submission, err := h.submissionService.Rate(submissionID, userID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotAssignmentOwner), errors.Is(err, service.ErrRateOwnSubmission):
			respondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, repository.ErrSubmissionNotFound):
			respondWithError(w, http.StatusNotFound, ErrMsgSubmissionNotFound)
		case errors.Is(err, repository.ErrAlreadyRated):
			respondWithError(w, http.StatusConflict, "Submission has already been rated")
		default:
			slog.Error("Failed to rate submission", "error", err, "submission_id", submissionID, "user_id", userID)
			respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		}
		return
	}

	slog.Info("Submission rated", "submission_id", submissionID, "rating", req.Rating, "rated_by", userID)
	JSONResponse(w, http.StatusOK, submission)
}
