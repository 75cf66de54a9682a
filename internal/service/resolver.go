package service

import (
	"fmt"

	"assignhub/internal/repository"
)

// RepoUsernameResolver resolves usernames from the user repository,
// falling back to a placeholder when the user record is missing so a
// dangling user reference never fails a whole tree build.
type RepoUsernameResolver struct {
	userRepo *repository.UserRepository
}

// NewRepoUsernameResolver creates a repository-backed username resolver
func NewRepoUsernameResolver(userRepo *repository.UserRepository) *RepoUsernameResolver {
	return &RepoUsernameResolver{userRepo: userRepo}
}

// ResolveUsername returns the user's username, or "User <id>" when the
// record cannot be found
func (r *RepoUsernameResolver) ResolveUsername(userID uint) string {
	user, err := r.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Sprintf("User %d", userID)
	}
	return user.Username
}
