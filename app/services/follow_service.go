package services

import (
	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/app/repositories"
)

// FollowService implements the directional follow relation with its
// existence-check-before-write semantics.
type FollowService struct {
	follows *repositories.FollowRepository
}

func NewFollowService(follows *repositories.FollowRepository) *FollowService {
	return &FollowService{follows: follows}
}

// Follow inserts the (followed, follower) edge. A duplicate pair and a
// self-follow are business rejections, not server faults.
func (s *FollowService) Follow(followed, follower string) (models.Follow, error) {
	if followed == follower {
		return models.Follow{}, ErrSelfFollow
	}

	exists, err := s.follows.Exists(followed, follower)
	if err != nil {
		return models.Follow{}, err
	}
	if exists {
		return models.Follow{}, ErrAlreadyFollowing
	}

	follow := models.Follow{Followed: followed, Follower: follower}
	if err := s.follows.Create(&follow); err != nil {
		return models.Follow{}, err
	}
	return follow, nil
}

// Unfollow removes the edge; an absent pair is a business rejection.
func (s *FollowService) Unfollow(followed, follower string) error {
	exists, err := s.follows.Exists(followed, follower)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFollowing
	}

	return s.follows.Delete(followed, follower)
}

// Following returns the usernames that `username` follows; an empty slice
// (never nil) when there are none.
func (s *FollowService) Following(username string) ([]string, error) {
	usernames, err := s.follows.FollowingUsernames(username)
	if err != nil {
		return nil, err
	}
	if usernames == nil {
		usernames = []string{}
	}
	return usernames, nil
}
