// Package migrations holds the schema migrations. Importing it (for side
// effects) registers every migration with the runner.
package migrations

import (
	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/pkg/migration"
)

func init() {
	migration.Register("20240301000001_create_users_table", &createUsersTable{})
	migration.Register("20240301000002_create_products_table", &createProductsTable{})
	migration.Register("20240301000003_create_carts_tables", &createCartsTables{})
	migration.Register("20240301000004_create_reviews_table", &createReviewsTable{})
}

type createUsersTable struct{}

func (createUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Follow{})
}

func (createUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Follow{}, &models.User{})
}

type createProductsTable struct{}

func (createProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (createProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}

type createCartsTables struct{}

func (createCartsTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Cart{}, &models.CartItem{})
}

func (createCartsTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.CartItem{}, &models.Cart{})
}

type createReviewsTable struct{}

func (createReviewsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Review{})
}

func (createReviewsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Review{})
}
