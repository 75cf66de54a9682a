package service

import (
	"assignhub/internal/models"
	"assignhub/internal/repository"
)

// AssignmentService manages assignment uploads
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(assignmentRepo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{assignmentRepo: assignmentRepo}
}

// Create uploads a new assignment on behalf of the given user
func (s *AssignmentService) Create(title, description, subject string, createdBy uint) (*models.Assignment, error) {
	assignment := &models.Assignment{
		Title:       title,
		Description: description,
		Subject:     subject,
		CreatedBy:   createdBy,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// List returns all assignments, newest first
func (s *AssignmentService) List() ([]models.Assignment, error) {
	return s.assignmentRepo.List()
}

// Get returns a single assignment by id
func (s *AssignmentService) Get(id uint) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(id)
}
