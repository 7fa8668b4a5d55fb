package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/pkg/metrics"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// All returns the full catalogue.
func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "product_id = ?", id).Error
	return product, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(product).Error
}
