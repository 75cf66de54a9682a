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

// AssignmentHandler handles assignment requests
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// CreateAssignmentRequest represents a new assignment
type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Subject     string `json:"subject" validate:"required,max=100"`
}

// Create handles assignment creation
// @Summary Create an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} models.Assignment "Created assignment"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /assignments [post]
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := h.assignmentService.Create(
		validator.SanitizeString(req.Title),
		validator.SanitizeString(req.Description),
		validator.SanitizeString(req.Subject),
		userID,
	)
	if err != nil {
		slog.Error("Failed to create assignment", "error", err, "user_id", userID)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	slog.Info("Assignment created", "assignment_id", assignment.ID, "user_id", userID)
	JSONResponse(w, http.StatusCreated, assignment)
}

// List returns all assignments, newest first
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Success 200 {array} models.Assignment "Assignments"
// @Router /assignments [get]
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentService.List()
	if err != nil {
		slog.Error("Failed to list assignments", "error", err)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, assignments)
}

// Get returns a single assignment by id
// @Summary Get an assignment
// @Tags Assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} models.Assignment "Assignment"
// @Failure 404 {object} map[string]string "Not found"
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidAssignmentID)
		return
	}

	assignment, err := h.assignmentService.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			respondWithError(w, http.StatusNotFound, ErrMsgAssignmentNotFound)
			return
		}
		slog.Error("Failed to get assignment", "error", err, "assignment_id", id)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, assignment)
}
