package service

import (
	"testing"

	"assignhub/internal/models"
)

func ratedSubmission(id, assignmentID, submittedBy uint, rating int) models.Submission {
	return models.Submission{
		ID:           id,
		AssignmentID: assignmentID,
		SubmittedBy:  submittedBy,
		Rating:       &rating,
	}
}

func TestComputeLeaderboardPoints(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	rated := []models.Submission{
		ratedSubmission(1, 1, 1, 5),
		ratedSubmission(2, 2, 1, 3),
		ratedSubmission(3, 3, 2, 4),
	}

	entries := ComputeLeaderboard(users, rated, SortByPoints)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Username != "alice" {
		t.Errorf("Expected alice first, got %s", entries[0].Username)
	}
	if entries[0].Points != 24 {
		t.Errorf("Expected alice to have 24 points, got %d", entries[0].Points)
	}
	if entries[0].AverageRating != 4.0 {
		t.Errorf("Expected alice average 4.0, got %v", entries[0].AverageRating)
	}
	if entries[0].TotalRatings != 2 {
		t.Errorf("Expected alice to have 2 ratings, got %d", entries[0].TotalRatings)
	}

	if entries[1].Username != "bob" {
		t.Errorf("Expected bob second, got %s", entries[1].Username)
	}
	if entries[1].Points != 12 {
		t.Errorf("Expected bob to have 12 points, got %d", entries[1].Points)
	}
}

func TestComputeLeaderboardRatingSort(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	// alice: more points (24) but lower average (4.0)
	// bob: fewer points (15) but perfect average (5.0)
	rated := []models.Submission{
		ratedSubmission(1, 1, 1, 5),
		ratedSubmission(2, 2, 1, 3),
		ratedSubmission(3, 3, 2, 5),
	}

	byPoints := ComputeLeaderboard(users, rated, SortByPoints)
	if byPoints[0].Username != "alice" {
		t.Errorf("Points sort: expected alice first, got %s", byPoints[0].Username)
	}

	byRating := ComputeLeaderboard(users, rated, SortByRating)
	if byRating[0].Username != "bob" {
		t.Errorf("Rating sort: expected bob first, got %s", byRating[0].Username)
	}
	if byRating[1].Username != "alice" {
		t.Errorf("Rating sort: expected alice second, got %s", byRating[1].Username)
	}
}

func TestComputeLeaderboardTieBreakByAverage(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	// Same points (12) but bob earned his with a single 4 (avg 4.0)
	// while alice needed a 1 and a 3 (avg 2.0).
	rated := []models.Submission{
		ratedSubmission(1, 1, 1, 1),
		ratedSubmission(2, 2, 1, 3),
		ratedSubmission(3, 3, 2, 4),
	}

	entries := ComputeLeaderboard(users, rated, SortByPoints)
	if entries[0].Username != "bob" {
		t.Errorf("Expected bob to win the points tie on average, got %s", entries[0].Username)
	}
}

func TestComputeLeaderboardIncludesUnratedUsers(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
		{ID: 3, Username: "carol"},
	}
	rated := []models.Submission{
		ratedSubmission(1, 1, 1, 4),
	}

	entries := ComputeLeaderboard(users, rated, SortByPoints)
	if len(entries) != 3 {
		t.Fatalf("Expected an entry for every user, got %d", len(entries))
	}

	for _, entry := range entries[1:] {
		if entry.Points != 0 || entry.AverageRating != 0 || entry.TotalRatings != 0 {
			t.Errorf("Expected zeroed entry for %s, got %+v", entry.Username, entry)
		}
	}
}

func TestComputeLeaderboardRanksAreSequential(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
		{ID: 3, Username: "carol"},
	}
	// alice and bob fully tied, carol unrated
	rated := []models.Submission{
		ratedSubmission(1, 1, 1, 4),
		ratedSubmission(2, 2, 2, 4),
	}

	entries := ComputeLeaderboard(users, rated, SortByPoints)
	for i, entry := range entries {
		if entry.Rank != i+1 {
			t.Errorf("Expected rank %d at position %d, got %d", i+1, i, entry.Rank)
		}
	}
}

func TestComputeLeaderboardIgnoresSubmissionOrder(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	rated := []models.Submission{
		ratedSubmission(1, 1, 1, 5),
		ratedSubmission(2, 2, 2, 4),
		ratedSubmission(3, 3, 1, 3),
	}
	reversed := []models.Submission{rated[2], rated[1], rated[0]}

	a := ComputeLeaderboard(users, rated, SortByPoints)
	b := ComputeLeaderboard(users, reversed, SortByPoints)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Entry %d differs by input order: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestComputeLeaderboardEmpty(t *testing.T) {
	entries := ComputeLeaderboard(nil, nil, SortByPoints)
	if len(entries) != 0 {
		t.Errorf("Expected empty leaderboard, got %d entries", len(entries))
	}
}
