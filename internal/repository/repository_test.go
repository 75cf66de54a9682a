package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"assignhub/internal/database"
	"assignhub/internal/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// In-memory SQLite loses the schema if the pool opens a second connection
	db.SetMaxOpenConns(1)

	migrator := database.NewMigrationExecutor(db)
	if err := migrator.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, repo *UserRepository, name string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "hash",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Failed to create user %s: %v", name, err)
	}
	return user
}

func createTestAssignment(t *testing.T, repo *AssignmentRepository, createdBy uint) *models.Assignment {
	t.Helper()

	assignment := &models.Assignment{
		Title:       "Sorting algorithms",
		Description: "Implement quicksort",
		Subject:     "CS101",
		CreatedBy:   createdBy,
	}
	if err := repo.Create(assignment); err != nil {
		t.Fatalf("Failed to create assignment: %v", err)
	}
	return assignment
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, repo, "alice")
	if user.ID == 0 {
		t.Fatal("Expected user id to be set after create")
	}

	got, err := repo.GetByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("Failed to get user by email: %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("Expected username alice, got %s", got.Username)
	}
	if got.TotalRatings != 0 || got.AverageRating != 0 {
		t.Errorf("Expected fresh counters, got %+v", got)
	}

	if _, err := repo.GetByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestSubmissionRepositoryRate(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	assignmentRepo := NewAssignmentRepository(db)
	submissionRepo := NewSubmissionRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	assignment := createTestAssignment(t, assignmentRepo, bob.ID)

	submission := &models.Submission{
		AssignmentID: assignment.ID,
		SubmittedBy:  alice.ID,
		Content:      "my solution",
	}
	if err := submissionRepo.Create(submission); err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}

	if err := submissionRepo.Rate(submission.ID, bob.ID, 5); err != nil {
		t.Fatalf("Failed to rate submission: %v", err)
	}

	rated, err := submissionRepo.GetByID(submission.ID)
	if err != nil {
		t.Fatalf("Failed to get submission: %v", err)
	}
	if rated.Rating == nil || *rated.Rating != 5 {
		t.Errorf("Expected rating 5, got %v", rated.Rating)
	}
	if rated.RatedBy == nil || *rated.RatedBy != bob.ID {
		t.Errorf("Expected rated_by %d, got %v", bob.ID, rated.RatedBy)
	}
	if rated.RatedAt == nil {
		t.Error("Expected rated_at to be set")
	}

	// Submitter counters are updated in the same transaction
	updated, err := userRepo.GetByID(alice.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if updated.TotalRatings != 1 || updated.RatingSum != 5 || updated.AverageRating != 5 {
		t.Errorf("Expected counters 1/5/5.0, got %d/%d/%v",
			updated.TotalRatings, updated.RatingSum, updated.AverageRating)
	}

	// A second rating of the same submission is rejected
	if err := submissionRepo.Rate(submission.ID, bob.ID, 3); !errors.Is(err, ErrAlreadyRated) {
		t.Errorf("Expected ErrAlreadyRated, got %v", err)
	}

	// Another submission keeps the running average correct
	second := &models.Submission{
		AssignmentID: assignment.ID,
		SubmittedBy:  alice.ID,
		Content:      "another solution",
	}
	if err := submissionRepo.Create(second); err != nil {
		t.Fatalf("Failed to create second submission: %v", err)
	}
	if err := submissionRepo.Rate(second.ID, bob.ID, 3); err != nil {
		t.Fatalf("Failed to rate second submission: %v", err)
	}

	updated, err = userRepo.GetByID(alice.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if updated.TotalRatings != 2 || updated.RatingSum != 8 || updated.AverageRating != 4 {
		t.Errorf("Expected counters 2/8/4.0, got %d/%d/%v",
			updated.TotalRatings, updated.RatingSum, updated.AverageRating)
	}
}

func TestSubmissionRepositoryRateNotFound(t *testing.T) {
	db := setupTestDB(t)
	submissionRepo := NewSubmissionRepository(db)

	if err := submissionRepo.Rate(999, 1, 4); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("Expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestSubmissionRepositoryListRated(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	assignmentRepo := NewAssignmentRepository(db)
	submissionRepo := NewSubmissionRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	assignment := createTestAssignment(t, assignmentRepo, bob.ID)

	for i := 0; i < 3; i++ {
		submission := &models.Submission{
			AssignmentID: assignment.ID,
			SubmittedBy:  alice.ID,
			Content:      fmt.Sprintf("solution %d", i),
		}
		if err := submissionRepo.Create(submission); err != nil {
			t.Fatalf("Failed to create submission: %v", err)
		}
		// Leave the last submission unrated
		if i < 2 {
			if err := submissionRepo.Rate(submission.ID, bob.ID, i+3); err != nil {
				t.Fatalf("Failed to rate submission: %v", err)
			}
		}
	}

	rated, err := submissionRepo.ListRated()
	if err != nil {
		t.Fatalf("Failed to list rated submissions: %v", err)
	}
	if len(rated) != 2 {
		t.Errorf("Expected 2 rated submissions, got %d", len(rated))
	}
}

func TestDiscussionCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	assignmentRepo := NewAssignmentRepository(db)
	commentRepo := NewDiscussionCommentRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	assignment := createTestAssignment(t, assignmentRepo, alice.ID)

	root := &models.DiscussionComment{
		AssignmentID: assignment.ID,
		UserID:       alice.ID,
		Content:      "does anyone have a hint?",
	}
	if err := commentRepo.Create(root); err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	reply := &models.DiscussionComment{
		AssignmentID: assignment.ID,
		UserID:       alice.ID,
		Content:      "try a smaller input first",
		ParentID:     &root.ID,
	}
	if err := commentRepo.Create(reply); err != nil {
		t.Fatalf("Failed to create reply: %v", err)
	}

	comments, err := commentRepo.ListByAssignment(assignment.ID)
	if err != nil {
		t.Fatalf("Failed to list comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != root.ID {
		t.Errorf("Expected root comment first, got %d", comments[0].ID)
	}
	if comments[1].ParentID == nil || *comments[1].ParentID != root.ID {
		t.Errorf("Expected reply to reference root comment, got %v", comments[1].ParentID)
	}

	if _, err := commentRepo.GetByID(999); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("Expected ErrCommentNotFound, got %v", err)
	}
}
