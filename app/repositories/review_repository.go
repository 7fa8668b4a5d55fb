package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/pkg/metrics"
	"github.com/gbvars988/SoilFullStack/pkg/orm"
)

// authorFields limits preloaded authors to their public columns.
func authorFields(db *gorm.DB) *gorm.DB {
	return db.Select("username", "first_name", "last_name")
}

// ReviewRepository handles database operations for Review.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create persists a new review or reply.
func (r *ReviewRepository) Create(review *models.Review) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(review).Error
}

// FindByID looks up a review by primary key.
func (r *ReviewRepository) FindByID(id uint) (models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "review_id = ?", id).Error
	return review, err
}

// TopLevelByProduct returns one page of a product's top-level reviews, most
// recent first, each carrying its author's public fields and ALL its replies
// (replies are not paginated), also most recent first. The second return
// value is the total top-level count for the product.
func (r *ReviewRepository) TopLevelByProduct(productID uint, page, limit int) ([]models.Review, int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var total int64
	if err := r.db.Model(&models.Review{}).
		Where("product_id = ? AND parent_review_id IS NULL", productID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := r.db.
		Preload("User", authorFields).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Replies.User", authorFields).
		Where("product_id = ? AND parent_review_id IS NULL", productID).
		Order("created_at DESC").
		Scopes(orm.Paginate(page, limit)).
		Find(&reviews).Error

	return reviews, total, err
}

// Save persists changes to an existing review.
func (r *ReviewRepository) Save(review *models.Review) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(review).Error
}

// DeleteWithReplies removes a review and all its replies in one transaction.
func (r *ReviewRepository) DeleteWithReplies(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_review_id = ?", id).
			Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, "review_id = ?", id).Error
	})
}

// StarsByProduct returns the stars of every top-level review for a product.
func (r *ReviewRepository) StarsByProduct(productID uint) ([]int, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var stars []int
	err := r.db.Model(&models.Review{}).
		Where("product_id = ? AND parent_review_id IS NULL", productID).
		Pluck("stars", &stars).Error
	return stars, err
}
