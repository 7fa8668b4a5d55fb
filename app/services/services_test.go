package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gbvars988/SoilFullStack/app/models"
)

// testDB opens an isolated in-memory database, migrated and named after the
// test so parallel tests never share state.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Review{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@soil.example",
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()

	product := models.Product{
		Name:        name,
		Price:       500,
		Description: "test product",
		Quantity:    10,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func intPtr(n int) *int { return &n }
