package repositories

import (
	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
)

// FollowRepository handles database operations for Follow.
type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Exists reports whether the exact (followed, follower) pair is present.
func (r *FollowRepository) Exists(followed, follower string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("followed = ? AND follower = ?", followed, follower).
		Count(&count).Error
	return count > 0, err
}

// Create inserts one follow edge.
func (r *FollowRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// Delete removes one follow edge.
func (r *FollowRepository) Delete(followed, follower string) error {
	return r.db.
		Where("followed = ? AND follower = ?", followed, follower).
		Delete(&models.Follow{}).Error
}

// FollowingUsernames returns the usernames that `username` follows.
func (r *FollowRepository) FollowingUsernames(username string) ([]string, error) {
	var usernames []string
	err := r.db.Model(&models.Follow{}).
		Where("follower = ?", username).
		Pluck("followed", &usernames).Error
	return usernames, err
}
