package service

import (
	"fmt"
	"sort"

	"assignhub/internal/models"
	"assignhub/internal/repository"
)

// PointsPerRating is the number of leaderboard points one rating star is worth.
const PointsPerRating = 3

// Leaderboard sort modes
const (
	SortByPoints = "points"
	SortByRating = "rating"
)

// LeaderboardService derives the community leaderboard from rated submissions
type LeaderboardService struct {
	userRepo       *repository.UserRepository
	submissionRepo *repository.SubmissionRepository
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(
	userRepo *repository.UserRepository,
	submissionRepo *repository.SubmissionRepository,
) *LeaderboardService {
	return &LeaderboardService{
		userRepo:       userRepo,
		submissionRepo: submissionRepo,
	}
}

// GetLeaderboard recomputes the full leaderboard from the current table
// state. There is no cache; every call reflects the submissions as they
// are at call time.
func (s *LeaderboardService) GetLeaderboard(sortBy string) ([]models.LeaderboardEntry, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	rated, err := s.submissionRepo.ListRated()
	if err != nil {
		return nil, fmt.Errorf("failed to list rated submissions: %w", err)
	}

	return ComputeLeaderboard(users, rated, sortBy), nil
}

// ComputeLeaderboard aggregates rated submissions into one entry per user.
//
// Points are rating * PointsPerRating summed over the user's rated
// submissions. Users with no rated submissions still get an entry with
// zero points and zero average. Sorting by "rating" orders by average
// rating descending with points as tie-break; any other mode sorts by
// points descending with average rating as tie-break. Ranks are dense
// and sequential (index + 1 after sorting), so ties still receive
// distinct ranks in sort order.
//
// Ratings are assumed to be validated to 1-5 at the write boundary and
// are not re-checked here.
func ComputeLeaderboard(users []models.User, rated []models.Submission, sortBy string) []models.LeaderboardEntry {
	type tally struct {
		points int
		count  int
		sum    int
	}

	tallies := make(map[uint]*tally)
	for _, submission := range rated {
		if submission.Rating == nil {
			continue
		}
		t := tallies[submission.SubmittedBy]
		if t == nil {
			t = &tally{}
			tallies[submission.SubmittedBy] = t
		}
		t.points += *submission.Rating * PointsPerRating
		t.count++
		t.sum += *submission.Rating
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entry := models.LeaderboardEntry{
			ID:       user.ID,
			Username: user.Username,
		}
		if t := tallies[user.ID]; t != nil {
			entry.Points = t.points
			entry.TotalRatings = t.count
			entry.AssignmentsSolved = t.count
			entry.AverageRating = float64(t.sum) / float64(t.count)
		}
		entries = append(entries, entry)
	}

	if sortBy == SortByRating {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].AverageRating != entries[j].AverageRating {
				return entries[i].AverageRating > entries[j].AverageRating
			}
			return entries[i].Points > entries[j].Points
		})
	} else {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Points != entries[j].Points {
				return entries[i].Points > entries[j].Points
			}
			return entries[i].AverageRating > entries[j].AverageRating
		})
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
