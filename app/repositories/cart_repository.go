package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/pkg/metrics"
)

// CartRepository handles database operations for Cart and CartItem.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// FindByUsername returns the user's cart, or gorm.ErrRecordNotFound.
func (r *CartRepository) FindByUsername(username string) (models.Cart, error) {
	var cart models.Cart
	err := r.db.First(&cart, "username = ?", username).Error
	return cart, err
}

// FindOrCreate returns the user's cart, creating it on first use.
func (r *CartRepository) FindOrCreate(username string) (models.Cart, error) {
	var cart models.Cart
	err := r.db.Where(models.Cart{Username: username}).FirstOrCreate(&cart).Error
	return cart, err
}

// UpsertItem implements the add-to-cart accumulate semantics in a single
// transaction: a new (cart, product) line is created with quantity, an
// existing one has quantity added to it, never overwritten.
func (r *CartRepository) UpsertItem(cartID, productID uint, quantity int) (models.CartItem, error) {
	defer metrics.ObserveDBQuery("insert", time.Now())

	var item models.CartItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(models.CartItem{CartID: cartID, ProductID: productID}).
			Attrs(models.CartItem{Quantity: quantity}).
			FirstOrCreate(&item)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Line pre-existed: accumulate.
			item.Quantity += quantity
			return tx.Save(&item).Error
		}
		return nil
	})
	return item, err
}

// FindItem returns one cart line, or gorm.ErrRecordNotFound.
func (r *CartRepository) FindItem(cartID, productID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error
	return item, err
}

// ItemWithProduct returns one cart line with its product preloaded.
func (r *CartRepository) ItemWithProduct(cartID, productID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").
		First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error
	return item, err
}

// ItemsWithProducts returns all lines of a cart joined with product details.
func (r *CartRepository) ItemsWithProducts(cartID uint) ([]models.CartItem, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var items []models.CartItem
	err := r.db.Preload("Product").
		Where("cart_id = ?", cartID).
		Find(&items).Error
	return items, err
}

// SaveItem sets a line to its exact current field values. The delete-on-zero
// policy lives in the service layer, not here.
func (r *CartRepository) SaveItem(item *models.CartItem) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(item).Error
}

// DeleteItem removes exactly one line.
func (r *CartRepository) DeleteItem(cartID, productID uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error
}

// ClearItems removes every line of a cart in one statement. Clearing an
// already-empty cart succeeds.
func (r *CartRepository) ClearItems(cartID uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}
