package service

import (
	"fmt"
	"testing"
	"time"

	"assignhub/internal/models"
)

// countingResolver records how often each user id is looked up
type countingResolver struct {
	calls map[uint]int
}

func newCountingResolver() *countingResolver {
	return &countingResolver{calls: make(map[uint]int)}
}

func (r *countingResolver) ResolveUsername(userID uint) string {
	r.calls[userID]++
	return fmt.Sprintf("user%d", userID)
}

func comment(id uint, userID uint, parentID *uint, createdAt time.Time) models.DiscussionComment {
	return models.DiscussionComment{
		ID:           id,
		AssignmentID: 1,
		UserID:       userID,
		Content:      fmt.Sprintf("comment %d", id),
		ParentID:     parentID,
		CreatedAt:    createdAt,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestBuildCommentTreeNesting(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	flat := []models.DiscussionComment{
		comment(1, 10, nil, base),
		comment(2, 11, uintPtr(1), base.Add(time.Minute)),
		comment(3, 10, uintPtr(2), base.Add(2*time.Minute)),
		comment(4, 12, nil, base.Add(3*time.Minute)),
	}

	roots := BuildCommentTree(flat, newCountingResolver())

	if len(roots) != 2 {
		t.Fatalf("Expected 2 root comments, got %d", len(roots))
	}

	first := roots[0]
	if first.ID != 1 || first.Depth != 0 {
		t.Errorf("Expected comment 1 as root at depth 0, got id=%d depth=%d", first.ID, first.Depth)
	}
	if len(first.Replies) != 1 {
		t.Fatalf("Expected 1 reply under comment 1, got %d", len(first.Replies))
	}

	reply := first.Replies[0]
	if reply.ID != 2 || reply.Depth != 1 {
		t.Errorf("Expected comment 2 at depth 1, got id=%d depth=%d", reply.ID, reply.Depth)
	}
	if len(reply.Replies) != 1 {
		t.Fatalf("Expected 1 reply under comment 2, got %d", len(reply.Replies))
	}

	nested := reply.Replies[0]
	if nested.ID != 3 || nested.Depth != 2 {
		t.Errorf("Expected comment 3 at depth 2, got id=%d depth=%d", nested.ID, nested.Depth)
	}
	if nested.Replies == nil || len(nested.Replies) != 0 {
		t.Errorf("Expected leaf comment to have an empty non-nil reply slice")
	}

	if roots[1].ID != 4 {
		t.Errorf("Expected comment 4 as second root, got %d", roots[1].ID)
	}
}

func TestBuildCommentTreeResolvesUsernames(t *testing.T) {
	base := time.Now()
	flat := []models.DiscussionComment{
		comment(1, 10, nil, base),
		comment(2, 10, uintPtr(1), base),
		comment(3, 10, uintPtr(1), base),
		comment(4, 11, nil, base),
	}

	resolver := newCountingResolver()
	roots := BuildCommentTree(flat, resolver)

	if roots[0].Username != "user10" {
		t.Errorf("Expected username user10, got %q", roots[0].Username)
	}
	if roots[1].Username != "user11" {
		t.Errorf("Expected username user11, got %q", roots[1].Username)
	}

	// Each distinct author is resolved exactly once per build
	if resolver.calls[10] != 1 {
		t.Errorf("Expected 1 lookup for user 10, got %d", resolver.calls[10])
	}
	if resolver.calls[11] != 1 {
		t.Errorf("Expected 1 lookup for user 11, got %d", resolver.calls[11])
	}
}

func TestBuildCommentTreePromotesOrphans(t *testing.T) {
	base := time.Now()
	flat := []models.DiscussionComment{
		comment(1, 10, nil, base),
		// Parent 99 does not exist in the input
		comment(2, 11, uintPtr(99), base.Add(time.Minute)),
	}

	roots := BuildCommentTree(flat, newCountingResolver())

	if len(roots) != 2 {
		t.Fatalf("Expected orphan to be promoted to a root, got %d roots", len(roots))
	}
	if roots[1].ID != 2 || roots[1].Depth != 0 {
		t.Errorf("Expected orphan comment 2 at depth 0, got id=%d depth=%d", roots[1].ID, roots[1].Depth)
	}
}

func TestBuildCommentTreePreservesSiblingOrder(t *testing.T) {
	base := time.Now()
	flat := []models.DiscussionComment{
		comment(1, 10, nil, base),
		comment(2, 11, uintPtr(1), base.Add(time.Minute)),
		comment(3, 12, uintPtr(1), base.Add(2*time.Minute)),
		comment(4, 13, uintPtr(1), base.Add(3*time.Minute)),
	}

	roots := BuildCommentTree(flat, newCountingResolver())

	if len(roots) != 1 {
		t.Fatalf("Expected 1 root, got %d", len(roots))
	}
	replies := roots[0].Replies
	if len(replies) != 3 {
		t.Fatalf("Expected 3 replies, got %d", len(replies))
	}
	for i, expected := range []uint{2, 3, 4} {
		if replies[i].ID != expected {
			t.Errorf("Reply %d: expected id %d, got %d", i, expected, replies[i].ID)
		}
	}
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	roots := BuildCommentTree(nil, newCountingResolver())
	if len(roots) != 0 {
		t.Errorf("Expected no roots for empty input, got %d", len(roots))
	}
}
