package service

import (
	"errors"
	"fmt"
	"sort"

	"assignhub/internal/models"
	"assignhub/internal/repository"
)

var ErrParentMismatch = errors.New("parent comment belongs to a different assignment")

// Comment display sort modes, applied to root comments only
const (
	CommentSortNewest = "newest"
	CommentSortOldest = "oldest"
)

// UsernameResolver resolves a user id to a display name. Implementations
// must not fail the lookup: a missing user degrades to a placeholder.
type UsernameResolver interface {
	ResolveUsername(userID uint) string
}

// DiscussionService manages assignment discussion threads
type DiscussionService struct {
	commentRepo    *repository.DiscussionCommentRepository
	assignmentRepo *repository.AssignmentRepository
	resolver       UsernameResolver
}

// NewDiscussionService creates a new discussion service
func NewDiscussionService(
	commentRepo *repository.DiscussionCommentRepository,
	assignmentRepo *repository.AssignmentRepository,
	resolver UsernameResolver,
) *DiscussionService {
	return &DiscussionService{
		commentRepo:    commentRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
	}
}

// PostComment creates a comment, optionally as a reply to an existing
// comment of the same assignment
func (s *DiscussionService) PostComment(assignmentID, userID uint, content string, parentID *uint) (*models.DiscussionComment, error) {
	if _, err := s.assignmentRepo.GetByID(assignmentID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.commentRepo.GetByID(*parentID)
		if err != nil {
			return nil, err
		}
		if parent.AssignmentID != assignmentID {
			return nil, ErrParentMismatch
		}
	}

	comment := &models.DiscussionComment{
		AssignmentID: assignmentID,
		UserID:       userID,
		Content:      content,
		ParentID:     parentID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	comment.Username = s.resolver.ResolveUsername(userID)
	comment.Replies = []models.DiscussionComment{}
	return comment, nil
}

// GetCommentTree loads the flat comment rows of an assignment and
// reassembles them into a nested reply tree. sortBy orders the root
// comments (newest or oldest first); reply order always follows input
// order.
func (s *DiscussionService) GetCommentTree(assignmentID uint, sortBy string) ([]models.DiscussionComment, error) {
	if _, err := s.assignmentRepo.GetByID(assignmentID); err != nil {
		return nil, err
	}

	flat, err := s.commentRepo.ListByAssignment(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	tree := BuildCommentTree(flat, s.resolver)

	if sortBy == CommentSortNewest {
		sort.SliceStable(tree, func(i, j int) bool {
			return tree[i].CreatedAt.After(tree[j].CreatedAt)
		})
	}

	return tree, nil
}

// BuildCommentTree converts a flat parent-referencing comment list into
// a nested reply tree.
//
// Usernames are resolved once per distinct user within a single build.
// Comments without a parent become roots with depth 0; replies get their
// parent's depth + 1, with no depth limit. Sibling order is preserved
// from the input. A comment whose parent id does not resolve to a
// comment in the input is promoted to a root rather than dropped.
func BuildCommentTree(flat []models.DiscussionComment, resolver UsernameResolver) []models.DiscussionComment {
	present := make(map[uint]bool, len(flat))
	for _, comment := range flat {
		present[comment.ID] = true
	}

	usernames := make(map[uint]string)
	children := make(map[uint][]models.DiscussionComment)
	roots := make([]models.DiscussionComment, 0)

	for _, comment := range flat {
		username, ok := usernames[comment.UserID]
		if !ok {
			username = resolver.ResolveUsername(comment.UserID)
			usernames[comment.UserID] = username
		}
		comment.Username = username
		comment.Replies = nil

		if comment.ParentID == nil || !present[*comment.ParentID] {
			roots = append(roots, comment)
		} else {
			children[*comment.ParentID] = append(children[*comment.ParentID], comment)
		}
	}

	var attach func(node *models.DiscussionComment, depth int)
	attach = func(node *models.DiscussionComment, depth int) {
		node.Depth = depth
		kids := children[node.ID]
		node.Replies = make([]models.DiscussionComment, len(kids))
		copy(node.Replies, kids)
		for i := range node.Replies {
			attach(&node.Replies[i], depth+1)
		}
	}

	for i := range roots {
		attach(&roots[i], 0)
	}

	return roots
}
