// Package seeders populates a fresh database with sample marketplace data.
package seeders

import (
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/pkg/auth"
	"github.com/gbvars988/SoilFullStack/pkg/collection"
	"github.com/gbvars988/SoilFullStack/pkg/logger"
)

const seedPassword = "password123"

// Run seeds users, products, reviews, and a few follow edges. It refuses to
// run on a non-empty database so a stray `soil seed` cannot duplicate data.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Warn("seed skipped, database is not empty", "users", count)
		return nil
	}

	users, err := seedUsers(db)
	if err != nil {
		return err
	}

	products, err := seedProducts(db)
	if err != nil {
		return err
	}

	if err := seedReviews(db, users, products); err != nil {
		return err
	}

	if err := seedFollows(db, users); err != nil {
		return err
	}

	logger.Info("seed complete", "users", len(users), "products", len(products))
	return nil
}

func seedUsers(db *gorm.DB) ([]models.User, error) {
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	type profile struct {
		username, email, first, last string
	}

	profiles := []profile{
		{"alice_green", "alice@soil.example", "Alice", "Green"},
		{"bob_fields", "bob@soil.example", "Bob", "Fields"},
		{"carol_rivers", "carol@soil.example", "Carol", "Rivers"},
		{"dave_orchard", "dave@soil.example", "Dave", "Orchard"},
		{"erin_meadow", "erin@soil.example", "Erin", "Meadow"},
		{"frank_harvest", "frank@soil.example", "Frank", "Harvest"},
	}

	users := collection.Map(profiles, func(p profile) models.User {
		return models.User{
			Username:     p.username,
			Email:        p.email,
			PasswordHash: hash,
			FirstName:    p.first,
			LastName:     p.last,
		}
	})

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func seedProducts(db *gorm.DB) ([]models.Product, error) {
	products := []models.Product{
		{Name: "Organic Avocados", Price: 550, IsSpecial: true, Description: "Creamy Hass avocados, pack of 4.", Quantity: 120},
		{Name: "Free-Range Eggs", Price: 780, IsSpecial: true, Description: "A dozen pasture-raised eggs.", Quantity: 80},
		{Name: "Sourdough Loaf", Price: 650, IsSpecial: false, Description: "Stone-baked organic sourdough.", Quantity: 40},
		{Name: "Raw Honey", Price: 1200, IsSpecial: false, Description: "Unfiltered wildflower honey, 500g.", Quantity: 60},
		{Name: "Organic Spinach", Price: 420, IsSpecial: true, Description: "Baby spinach leaves, 250g bag.", Quantity: 150},
		{Name: "Heirloom Tomatoes", Price: 690, IsSpecial: false, Description: "Mixed heirloom varieties, 1kg.", Quantity: 90},
		{Name: "Almond Butter", Price: 1450, IsSpecial: false, Description: "Stone-ground roasted almond butter.", Quantity: 35},
		{Name: "Organic Quinoa", Price: 980, IsSpecial: false, Description: "White quinoa, 750g.", Quantity: 70},
		{Name: "Kombucha Ginger", Price: 520, IsSpecial: true, Description: "Small-batch ginger kombucha, 330ml.", Quantity: 200},
		{Name: "Organic Carrots", Price: 310, IsSpecial: false, Description: "Dutch carrots with tops, 1kg.", Quantity: 140},
		{Name: "Grass-Fed Butter", Price: 870, IsSpecial: false, Description: "Cultured butter from grass-fed cows.", Quantity: 50},
		{Name: "Organic Blueberries", Price: 740, IsSpecial: true, Description: "Fresh blueberries, 125g punnet.", Quantity: 110},
		{Name: "Cold-Pressed Olive Oil", Price: 1890, IsSpecial: false, Description: "Extra virgin olive oil, 500ml.", Quantity: 45},
		{Name: "Organic Oats", Price: 480, IsSpecial: false, Description: "Rolled oats, 1kg.", Quantity: 95},
	}

	if err := db.Create(&products).Error; err != nil {
		return nil, err
	}

	specials := collection.Filter(products, func(p models.Product) bool { return p.IsSpecial })
	logger.Info("seeded products", "total", len(products), "specials", len(specials))

	return products, nil
}

var reviewPhrases = []string{
	"Really fresh, will buy again.",
	"Decent quality for the price.",
	"Arrived in great condition.",
	"My whole family loved this.",
	"Better than the supermarket version.",
	"Good but a little pricey.",
	"Tastes like it came straight from the farm.",
}

var replyPhrases = []string{
	"Totally agree with this.",
	"Thanks, this convinced me to try it.",
	"Had the opposite experience, mine was average.",
	"Which batch did you get?",
}

func seedReviews(db *gorm.DB, users []models.User, products []models.Product) error {
	usernames := collection.Map(users, func(u models.User) string { return u.Username })
	rng := rand.New(rand.NewSource(42))

	for _, product := range products {
		for i := 0; i < 7; i++ {
			stars := rng.Intn(5) + 1
			review := models.Review{
				Content:   fmt.Sprintf("%s %s", product.Name, reviewPhrases[rng.Intn(len(reviewPhrases))]),
				Stars:     &stars,
				ProductID: product.ProductID,
				Username:  usernames[rng.Intn(len(usernames))],
			}
			if err := db.Create(&review).Error; err != nil {
				return err
			}

			for j := 0; j < rng.Intn(3)+1; j++ {
				reply := models.Review{
					Content:        replyPhrases[rng.Intn(len(replyPhrases))],
					ProductID:      product.ProductID,
					Username:       usernames[rng.Intn(len(usernames))],
					ParentReviewID: &review.ReviewID,
				}
				if err := db.Create(&reply).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedFollows(db *gorm.DB, users []models.User) error {
	pairs := []models.Follow{
		{Followed: users[0].Username, Follower: users[1].Username},
		{Followed: users[0].Username, Follower: users[2].Username},
		{Followed: users[3].Username, Follower: users[0].Username},
		{Followed: users[4].Username, Follower: users[5].Username},
	}
	return db.Create(&pairs).Error
}
