package models

import "time"

// Review is a product review or a reply to one, stored in a single flat
// table with a nullable self-referencing parent key.
//
// Stars is non-nil only for top-level reviews (ParentReviewID == nil) and is
// always in [1,5]. Replies carry stars = null whatever the client sent.
type Review struct {
	ReviewID       uint      `gorm:"primaryKey;autoIncrement" json:"review_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Stars          *int      `json:"stars"`
	ProductID      uint      `gorm:"not null;index" json:"product_id"`
	Username       string    `gorm:"size:32;not null;index" json:"username"`
	ParentReviewID *uint     `gorm:"index" json:"parent_review_id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	User    *User    `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
	Replies []Review `gorm:"foreignKey:ParentReviewID" json:"replies"`
}

// IsReply reports whether r is a reply rather than a top-level review.
func (r *Review) IsReply() bool { return r.ParentReviewID != nil }
