package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"assignhub/internal/models"
)

var ErrCommentNotFound = errors.New("comment not found")

// DiscussionCommentRepository handles discussion comment database operations
type DiscussionCommentRepository struct {
	db *sql.DB
}

// NewDiscussionCommentRepository creates a new discussion comment repository
func NewDiscussionCommentRepository(db *sql.DB) *DiscussionCommentRepository {
	return &DiscussionCommentRepository{db: db}
}

// Create creates a new discussion comment
func (r *DiscussionCommentRepository) Create(comment *models.DiscussionComment) error {
	query := `
		INSERT INTO discussion_comments (assignment_id, user_id, content, parent_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := r.db.Exec(
		query,
		comment.AssignmentID,
		comment.UserID,
		comment.Content,
		comment.ParentID,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get comment id: %w", err)
	}

	comment.ID = uint(id)
	comment.CreatedAt = now
	return nil
}

// GetByID retrieves a comment by ID
func (r *DiscussionCommentRepository) GetByID(id uint) (*models.DiscussionComment, error) {
	query := `
		SELECT id, assignment_id, user_id, content, parent_id, created_at
		FROM discussion_comments
		WHERE id = ?
	`

	comment := &models.DiscussionComment{}
	err := r.db.QueryRow(query, id).Scan(
		&comment.ID,
		&comment.AssignmentID,
		&comment.UserID,
		&comment.Content,
		&comment.ParentID,
		&comment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListByAssignment retrieves the flat comment list for an assignment,
// oldest first
func (r *DiscussionCommentRepository) ListByAssignment(assignmentID uint) ([]models.DiscussionComment, error) {
	query := `
		SELECT id, assignment_id, user_id, content, parent_id, created_at
		FROM discussion_comments
		WHERE assignment_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.DiscussionComment
	for rows.Next() {
		var comment models.DiscussionComment
		err := rows.Scan(
			&comment.ID,
			&comment.AssignmentID,
			&comment.UserID,
			&comment.Content,
			&comment.ParentID,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}
