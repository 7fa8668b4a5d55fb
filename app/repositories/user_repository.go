package repositories

import (
	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// All returns every user.
func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

// FindByUsername looks up a user by primary key.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	return user, err
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
