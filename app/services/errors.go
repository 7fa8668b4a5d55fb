package services

import "errors"

// Sentinel errors for the business-rule failures the API reports. The
// controllers map them onto HTTP statuses; the messages double as the wire
// messages, mirroring the client-facing strings the frontend expects.
var (
	ErrCartNotFound     = errors.New("Cart not found")
	ErrCartItemNotFound = errors.New("Cart item not found")
	ErrProductNotFound  = errors.New("Product not found")
	ErrUserNotFound     = errors.New("User not found")
	ErrReviewNotFound   = errors.New("Review not found")

	ErrStarsRange = errors.New("Stars must be between 1 and 5")

	ErrAlreadyFollowing   = errors.New("You are already following this user")
	ErrNotFollowing       = errors.New("You are not following this user")
	ErrSelfFollow         = errors.New("You cannot follow yourself")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
