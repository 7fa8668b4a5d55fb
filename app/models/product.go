package models

// Product is a catalogue item. Prices are whole dollars, matching the
// original schema. IsSpecial marks the weekly-specials section.
type Product struct {
	ProductID   uint   `gorm:"primaryKey;autoIncrement" json:"product_id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Price       int    `gorm:"not null" json:"price"`
	IsSpecial   bool   `gorm:"not null;default:false" json:"is_special"`
	Description string `gorm:"type:text;not null" json:"description"`
	Quantity    int    `gorm:"not null;default:0" json:"quantity"`
}

// RatedProduct is a Product joined with its average top-level review rating,
// as returned by the product listing endpoints.
type RatedProduct struct {
	Product
	AverageRating float64 `json:"averageRating"`
}
