package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"assignhub/internal/models"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyRated       = errors.New("submission already rated")
)

// SubmissionRepository handles submission database operations
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create creates a new submission
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	query := `
		INSERT INTO submissions (assignment_id, submitted_by, content, submitted_at)
		VALUES (?, ?, ?, ?)
	`

	now := time.Now()
	result, err := r.db.Exec(
		query,
		submission.AssignmentID,
		submission.SubmittedBy,
		submission.Content,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get submission id: %w", err)
	}

	submission.ID = uint(id)
	submission.SubmittedAt = now
	return nil
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(id uint) (*models.Submission, error) {
	query := `
		SELECT id, assignment_id, submitted_by, content, rating, rated_by, submitted_at, rated_at
		FROM submissions
		WHERE id = ?
	`

	submission := &models.Submission{}
	err := r.db.QueryRow(query, id).Scan(
		&submission.ID,
		&submission.AssignmentID,
		&submission.SubmittedBy,
		&submission.Content,
		&submission.Rating,
		&submission.RatedBy,
		&submission.SubmittedAt,
		&submission.RatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return submission, nil
}

// ListByAssignment retrieves all submissions for an assignment, oldest first
func (r *SubmissionRepository) ListByAssignment(assignmentID uint) ([]models.Submission, error) {
	query := `
		SELECT id, assignment_id, submitted_by, content, rating, rated_by, submitted_at, rated_at
		FROM submissions
		WHERE assignment_id = ?
		ORDER BY submitted_at
	`
	return r.list(query, assignmentID)
}

// ListRated retrieves all submissions that have received a rating
func (r *SubmissionRepository) ListRated() ([]models.Submission, error) {
	query := `
		SELECT id, assignment_id, submitted_by, content, rating, rated_by, submitted_at, rated_at
		FROM submissions
		WHERE rating IS NOT NULL
		ORDER BY id
	`
	return r.list(query)
}

func (r *SubmissionRepository) list(query string, args ...interface{}) ([]models.Submission, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		var submission models.Submission
		err := rows.Scan(
			&submission.ID,
			&submission.AssignmentID,
			&submission.SubmittedBy,
			&submission.Content,
			&submission.Rating,
			&submission.RatedBy,
			&submission.SubmittedAt,
			&submission.RatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}

	return submissions, nil
}

// Rate sets the rating on an unrated submission and updates the
// submitter's denormalized rating counters in the same transaction.
// Returns ErrAlreadyRated if the null -> value transition already happened.
func (r *SubmissionRepository) Rate(submissionID, ratedBy uint, rating int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback only if not committed
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("Failed to rollback rating transaction", "error", err)
		}
	}()

	var submittedBy uint
	var existing *int
	err = tx.QueryRow(
		`SELECT submitted_by, rating FROM submissions WHERE id = ?`,
		submissionID,
	).Scan(&submittedBy, &existing)
	if err == sql.ErrNoRows {
		return ErrSubmissionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get submission for rating: %w", err)
	}
	if existing != nil {
		return ErrAlreadyRated
	}

	now := time.Now()
	_, err = tx.Exec(
		`UPDATE submissions SET rating = ?, rated_by = ?, rated_at = ? WHERE id = ? AND rating IS NULL`,
		rating, ratedBy, now, submissionID,
	)
	if err != nil {
		return fmt.Errorf("failed to rate submission: %w", err)
	}

	// Keep the submitter's counters in sync with the new rating
	_, err = tx.Exec(
		`UPDATE users
		 SET total_ratings = total_ratings + 1,
		     rating_sum = rating_sum + ?,
		     average_rating = CAST(rating_sum + ? AS REAL) / (total_ratings + 1),
		     updated_at = ?
		 WHERE id = ?`,
		rating, rating, now, submittedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user rating counters: %w", err)
	}

	return tx.Commit()
}
