package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/app/repositories"
	"github.com/gbvars988/SoilFullStack/pkg/auth"
)

// UserService handles accounts: signup with password hashing, profile
// updates, and the credential check behind login.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// All returns every user; an empty slice (never nil) when there are none.
func (s *UserService) All() ([]models.User, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// One returns a user by username.
func (s *UserService) One(username string) (models.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// ByEmail returns a user by email address.
func (s *UserService) ByEmail(email string) (models.User, error) {
	user, err := s.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// CreateUserInput carries the fields of a new account.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Create hashes the password and inserts the account.
func (s *UserService) Create(in CreateUserInput) (models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}

	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUserInput carries the editable profile fields. The username is the
// immutable identity key and cannot be changed.
type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string // optional; empty leaves the hash untouched
}

// Update edits a user's profile, re-hashing the password when one is given.
func (s *UserService) Update(username string, in UpdateUserInput) (models.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login checks the credentials and, on success, returns the user and a
// signed JWT. A missing user and a wrong password are indistinguishable to
// the caller.
func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Username)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}
