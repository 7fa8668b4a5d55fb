package models

// User is the account model. The username is the identity key across the
// whole schema (carts, reviews, follows all reference it) and never changes
// after signup.
type User struct {
	Username     string `gorm:"primaryKey;size:32" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email,omitempty"`
	PasswordHash string `gorm:"size:200;not null" json:"-"` // bcrypt, never serialised
	FirstName    string `gorm:"size:40;not null" json:"first_name"`
	LastName     string `gorm:"size:40;not null" json:"last_name"`
}

// Follow is one directional edge of the user-follows-user relation.
// The (followed, follower) pair is the composite key; duplicates are
// rejected at the service layer before insert.
type Follow struct {
	Followed string `gorm:"primaryKey;size:32" json:"followed"`
	Follower string `gorm:"primaryKey;size:32" json:"follower"`
}

func (Follow) TableName() string { return "followers" }
