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

// DiscussionHandler handles assignment discussion requests
type DiscussionHandler struct {
	discussionService *service.DiscussionService
}

// NewDiscussionHandler creates a new discussion handler
func NewDiscussionHandler(discussionService *service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussionService: discussionService}
}

// CreateCommentRequest represents a new discussion comment
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

// Create handles posting a comment to an assignment discussion
// @Summary Post a comment
// @Tags Discussions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} models.DiscussionComment "Created comment"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Assignment or parent comment not found"
// @Router /assignments/{id}/comments [post]
func (h *DiscussionHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.discussionService.PostComment(assignmentID, userID, validator.SanitizeString(req.Content), req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAssignmentNotFound):
			respondWithError(w, http.StatusNotFound, ErrMsgAssignmentNotFound)
		case errors.Is(err, repository.ErrCommentNotFound):
			respondWithError(w, http.StatusNotFound, "Parent comment not found")
		case errors.Is(err, service.ErrParentMismatch):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("Failed to post comment", "error", err, "assignment_id", assignmentID, "user_id", userID)
			respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		}
		return
	}

	slog.Info("Comment posted", "comment_id", comment.ID, "assignment_id", assignmentID, "user_id", userID)
	JSONResponse(w, http.StatusCreated, comment)
}

// List returns the discussion for an assignment as a nested comment tree
// @Summary Get discussion tree
// @Description Returns top-level comments with nested replies. Replies are always oldest first.
// @Tags Discussions
// @Produce json
// @Param id path int true "Assignment ID"
// @Param sort query string false "Top-level sort order" Enums(newest, oldest) default(newest)
// @Success 200 {array} models.DiscussionComment "Comment tree"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /assignments/{id}/comments [get]
func (h *DiscussionHandler) List(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidAssignmentID)
		return
	}

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = service.CommentSortNewest
	}
	if sortBy != service.CommentSortNewest && sortBy != service.CommentSortOldest {
		respondWithError(w, http.StatusBadRequest, "Invalid sort parameter")
		return
	}

	tree, err := h.discussionService.GetCommentTree(assignmentID, sortBy)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			respondWithError(w, http.StatusNotFound, ErrMsgAssignmentNotFound)
			return
		}
		slog.Error("Failed to build comment tree", "error", err, "assignment_id", assignmentID)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, tree)
}
