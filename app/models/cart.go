package models

import "time"

// Cart is the per-user shopping cart. One cart per username; created lazily
// on the first add-to-cart call.
type Cart struct {
	CartID    uint       `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	Username  string     `gorm:"size:32;uniqueIndex;not null" json:"username"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is one line of a cart, keyed by (cart_id, product_id).
// A line never persists with quantity <= 0; it is deleted instead.
type CartItem struct {
	CartID    uint     `gorm:"primaryKey;autoIncrement:false" json:"cart_id"`
	ProductID uint     `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty"`
}
