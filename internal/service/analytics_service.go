package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"assignhub/internal/models"
	"assignhub/internal/repository"
)

// uploadsWindowDays is the trailing window of the uploads-per-day series,
// including today.
const uploadsWindowDays = 14

// topUsersLimit caps the dashboard's top-user list.
const topUsersLimit = 5

// AnalyticsService derives the dashboard aggregates. All reads, no
// mutation; safe to call concurrently.
type AnalyticsService struct {
	userRepo       *repository.UserRepository
	assignmentRepo *repository.AssignmentRepository
	submissionRepo *repository.SubmissionRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	userRepo *repository.UserRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

// GetSummary recomputes all dashboard aggregates from the current table
// state. Each value is derived independently from plain table scans.
func (s *AnalyticsService) GetSummary() (*models.AnalyticsSummary, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalAssignments, err := s.assignmentRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	rated, err := s.submissionRepo.ListRated()
	if err != nil {
		return nil, fmt.Errorf("failed to list rated submissions: %w", err)
	}

	now := time.Now()
	windowStart := uploadsWindowStart(now)
	recent, err := s.assignmentRepo.ListCreatedSince(windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent assignments: %w", err)
	}

	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	topUsers := ComputeLeaderboard(users, rated, SortByPoints)
	if len(topUsers) > topUsersLimit {
		topUsers = topUsers[:topUsersLimit]
	}

	return &models.AnalyticsSummary{
		TotalUsers:        totalUsers,
		TotalAssignments:  totalAssignments,
		SolvedAssignments: CountSolvedAssignments(rated),
		AverageRating:     AverageRating(rated),
		UploadsPerDay:     ComputeUploadsPerDay(recent, now),
		RatingsDist:       RatingsDistribution(rated),
		TopUsers:          topUsers,
	}, nil
}

// CountSolvedAssignments counts distinct assignments that have at least
// one rated submission
func CountSolvedAssignments(rated []models.Submission) int {
	seen := make(map[uint]struct{})
	for _, submission := range rated {
		seen[submission.AssignmentID] = struct{}{}
	}
	return len(seen)
}

// AverageRating returns the mean of all submission ratings rounded to
// two decimals, or 0 when no ratings exist
func AverageRating(rated []models.Submission) float64 {
	sum := 0
	count := 0
	for _, submission := range rated {
		if submission.Rating == nil {
			continue
		}
		sum += *submission.Rating
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*100) / 100
}

// ComputeUploadsPerDay groups assignment uploads by creation date over
// the trailing 14-day window including today, ordered ascending by date.
// Days without uploads are omitted; chart callers zero-fill if they need
// a dense series.
func ComputeUploadsPerDay(assignments []models.Assignment, now time.Time) []models.DailyUploads {
	windowStart := uploadsWindowStart(now)

	counts := make(map[string]int)
	for _, assignment := range assignments {
		if assignment.CreatedAt.Before(windowStart) {
			continue
		}
		day := assignment.CreatedAt.Format("2006-01-02")
		counts[day]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]models.DailyUploads, 0, len(days))
	for _, day := range days {
		series = append(series, models.DailyUploads{Date: day, Count: counts[day]})
	}
	return series
}

// RatingsDistribution counts submissions per rating value, ascending by
// rating. Only values present in the data appear.
func RatingsDistribution(rated []models.Submission) []models.RatingCount {
	counts := make(map[int]int)
	for _, submission := range rated {
		if submission.Rating == nil {
			continue
		}
		counts[*submission.Rating]++
	}

	ratings := make([]int, 0, len(counts))
	for rating := range counts {
		ratings = append(ratings, rating)
	}
	sort.Ints(ratings)

	dist := make([]models.RatingCount, 0, len(ratings))
	for _, rating := range ratings {
		dist = append(dist, models.RatingCount{Rating: rating, Count: counts[rating]})
	}
	return dist
}

// uploadsWindowStart returns midnight of the first day in the trailing
// window, local time
func uploadsWindowStart(now time.Time) time.Time {
	start := now.AddDate(0, 0, -(uploadsWindowDays - 1))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}
