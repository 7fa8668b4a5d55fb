package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/app/repositories"
	"github.com/gbvars988/SoilFullStack/pkg/cache"
)

const catalogueKey = "products:all"
const catalogueTTL = time.Minute

// ProductService serves the catalogue with each product's average rating
// attached.
type ProductService struct {
	products *repositories.ProductRepository
	ratings  *ReviewService
}

func NewProductService(products *repositories.ProductRepository, ratings *ReviewService) *ProductService {
	return &ProductService{products: products, ratings: ratings}
}

// All returns every product joined with its average top-level rating. The
// full listing is cached briefly; product and review mutations forget it.
func (s *ProductService) All() ([]models.RatedProduct, error) {
	var cached []models.RatedProduct
	if cache.Get(catalogueKey, &cached) {
		return cached, nil
	}

	products, err := s.products.All()
	if err != nil {
		return nil, err
	}

	rated := make([]models.RatedProduct, 0, len(products))
	for _, p := range products {
		avg, err := s.ratings.AverageRating(p.ProductID)
		if err != nil {
			return nil, err
		}
		rated = append(rated, models.RatedProduct{Product: p, AverageRating: avg})
	}

	cache.Set(catalogueKey, rated, catalogueTTL) //nolint:errcheck
	return rated, nil
}

// One returns a single product with its average rating.
func (s *ProductService) One(id uint) (models.RatedProduct, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RatedProduct{}, ErrProductNotFound
	}
	if err != nil {
		return models.RatedProduct{}, err
	}

	avg, err := s.ratings.AverageRating(id)
	if err != nil {
		return models.RatedProduct{}, err
	}

	return models.RatedProduct{Product: product, AverageRating: avg}, nil
}

// CreateProductInput carries the fields of a new product.
type CreateProductInput struct {
	Name        string
	Price       int
	Description string
	Quantity    int
	IsSpecial   bool
}

// Create inserts a product and forgets the cached listing.
func (s *ProductService) Create(in CreateProductInput) (models.Product, error) {
	product := models.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Quantity:    in.Quantity,
		IsSpecial:   in.IsSpecial,
	}

	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}

	cache.Forget(catalogueKey) //nolint:errcheck
	return product, nil
}
