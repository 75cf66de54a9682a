package models

import (
	"time"
)

// User represents a registered student
type User struct {
	ID            uint      `json:"id" db:"id"`
	Username      string    `json:"username" db:"username"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	TotalRatings  int       `json:"total_ratings" db:"total_ratings"`
	RatingSum     int       `json:"rating_sum" db:"rating_sum"`
	AverageRating float64   `json:"average_rating" db:"average_rating"`
	EmailVerified bool      `json:"email_verified" db:"email_verified"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Assignment represents an uploaded assignment other students can solve
type Assignment struct {
	ID          uint      `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Subject     string    `json:"subject" db:"subject"`
	CreatedBy   uint      `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Submission represents one solution attempt for an assignment.
// Rating and RatedBy are set exactly once; there is no re-rating path.
type Submission struct {
	ID           uint       `json:"id" db:"id"`
	AssignmentID uint       `json:"assignment_id" db:"assignment_id"`
	SubmittedBy  uint       `json:"submitted_by" db:"submitted_by"`
	Content      string     `json:"content" db:"content"`
	Rating       *int       `json:"rating,omitempty" db:"rating"`
	RatedBy      *uint      `json:"rated_by,omitempty" db:"rated_by"`
	SubmittedAt  time.Time  `json:"submitted_at" db:"submitted_at"`
	RatedAt      *time.Time `json:"rated_at,omitempty" db:"rated_at"`
}

// DiscussionComment is stored flat (id + parent_id) and reconstructed
// into a nested reply tree for display. Username, Replies and Depth are
// filled at tree-build time and never persisted.
type DiscussionComment struct {
	ID           uint                `json:"id" db:"id"`
	AssignmentID uint                `json:"assignment_id" db:"assignment_id"`
	UserID       uint                `json:"user_id" db:"user_id"`
	Username     string              `json:"username" db:"-"`
	Content      string              `json:"content" db:"content"`
	ParentID     *uint               `json:"parent_id,omitempty" db:"parent_id"`
	CreatedAt    time.Time           `json:"created_at" db:"created_at"`
	Replies      []DiscussionComment `json:"replies" db:"-"`
	Depth        int                 `json:"depth" db:"-"`
}

// LeaderboardEntry is one user's aggregated standing, recomputed from
// rated submissions on every read
type LeaderboardEntry struct {
	ID                uint    `json:"id"`
	Username          string  `json:"username"`
	Points            int     `json:"points"`
	AverageRating     float64 `json:"average_rating"`
	TotalRatings      int     `json:"total_ratings"`
	AssignmentsSolved int     `json:"assignments_solved"`
	Rank              int     `json:"rank"`
}

// DailyUploads is one point of the uploads-per-day time series.
// Date is formatted as YYYY-MM-DD.
type DailyUploads struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RatingCount is one bucket of the ratings distribution
type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// AnalyticsSummary holds the dashboard aggregates
type AnalyticsSummary struct {
	TotalUsers        int                `json:"total_users"`
	TotalAssignments  int                `json:"total_assignments"`
	SolvedAssignments int                `json:"solved_assignments"`
	AverageRating     float64            `json:"average_rating"`
	UploadsPerDay     []DailyUploads     `json:"uploads_per_day"`
	RatingsDist       []RatingCount      `json:"ratings_dist"`
	TopUsers          []LeaderboardEntry `json:"top_users"`
}
