package service

import (
	"errors"

	"assignhub/internal/models"
	"assignhub/internal/repository"
)

var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrNotAssignmentOwner = errors.New("only the assignment creator can rate submissions")
	ErrRateOwnSubmission  = errors.New("cannot rate your own submission")
)

// SubmissionService manages solution submissions and their one-time rating
type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
	assignmentRepo *repository.AssignmentRepository
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Submit creates a solution attempt for an assignment
func (s *SubmissionService) Submit(assignmentID, userID uint, content string) (*models.Submission, error) {
	if _, err := s.assignmentRepo.GetByID(assignmentID); err != nil {
		return nil, err
	}

	submission := &models.Submission{
		AssignmentID: assignmentID,
		SubmittedBy:  userID,
		Content:      content,
	}
	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// ListByAssignment returns all submissions for an assignment
func (s *SubmissionService) ListByAssignment(assignmentID uint) ([]models.Submission, error) {
	if _, err := s.assignmentRepo.GetByID(assignmentID); err != nil {
		return nil, err
	}
	return s.submissionRepo.ListByAssignment(assignmentID)
}

// Rate assigns a 1-5 rating to a submission. Only the creator of the
// assignment may rate, a submission is rated at most once, and rating
// your own submission is rejected. The submitter's denormalized rating
// counters are updated in the same transaction as the submission row.
func (s *SubmissionService) Rate(submissionID, raterID uint, rating int) (*models.Submission, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	submission, err := s.submissionRepo.GetByID(submissionID)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(submission.AssignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.CreatedBy != raterID {
		return nil, ErrNotAssignmentOwner
	}
	if submission.SubmittedBy == raterID {
		return nil, ErrRateOwnSubmission
	}

	if err := s.submissionRepo.Rate(submissionID, raterID, rating); err != nil {
		return nil, err
	}

	return s.submissionRepo.GetByID(submissionID)
}
