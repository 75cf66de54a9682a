package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"assignhub/internal/models"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentRepository handles assignment database operations
type AssignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (title, description, subject, created_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := r.db.Exec(
		query,
		assignment.Title,
		assignment.Description,
		assignment.Subject,
		assignment.CreatedBy,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get assignment id: %w", err)
	}

	assignment.ID = uint(id)
	assignment.CreatedAt = now
	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	query := `
		SELECT id, title, description, subject, created_by, created_at
		FROM assignments
		WHERE id = ?
	`

	assignment := &models.Assignment{}
	err := r.db.QueryRow(query, id).Scan(
		&assignment.ID,
		&assignment.Title,
		&assignment.Description,
		&assignment.Subject,
		&assignment.CreatedBy,
		&assignment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return assignment, nil
}

// List retrieves all assignments, newest first
func (r *AssignmentRepository) List() ([]models.Assignment, error) {
	query := `
		SELECT id, title, description, subject, created_by, created_at
		FROM assignments
		ORDER BY created_at DESC
	`
	return r.list(query)
}

// ListCreatedSince retrieves assignments created at or after the given time,
// oldest first
func (r *AssignmentRepository) ListCreatedSince(since time.Time) ([]models.Assignment, error) {
	query := `
		SELECT id, title, description, subject, created_by, created_at
		FROM assignments
		WHERE created_at >= ?
		ORDER BY created_at
	`
	return r.list(query, since)
}

func (r *AssignmentRepository) list(query string, args ...interface{}) ([]models.Assignment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.Title,
			&assignment.Description,
			&assignment.Subject,
			&assignment.CreatedBy,
			&assignment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// Count returns the number of assignments
func (r *AssignmentRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM assignments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}
