package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/app/repositories"
	"github.com/gbvars988/SoilFullStack/pkg/cache"
	"github.com/gbvars988/SoilFullStack/pkg/collection"
	"github.com/gbvars988/SoilFullStack/pkg/orm"
)

const ratingTTL = 5 * time.Minute

// ratingKey is the cache key for a product's average rating.
func ratingKey(productID uint) string {
	return fmt.Sprintf("product:%d:rating", productID)
}

// ReviewPage is the paginated listing shape returned to the client.
type ReviewPage struct {
	Reviews     []models.Review `json:"reviews"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// CreateReviewInput carries the fields of a new review or reply.
type CreateReviewInput struct {
	Content        string
	Stars          *int
	ProductID      uint
	Username       string
	ParentReviewID *uint
}

// ReviewService implements review/reply threading, the star-rating rule, and
// rating aggregation.
type ReviewService struct {
	reviews *repositories.ReviewRepository
}

func NewReviewService(reviews *repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create inserts a review or reply.
//
// Top-level review (no parent): stars is required and must be in [1,5].
// Reply: stars is forced to null no matter what the client sent.
func (s *ReviewService) Create(in CreateReviewInput) (models.Review, error) {
	review := models.Review{
		Content:        in.Content,
		ProductID:      in.ProductID,
		Username:       in.Username,
		ParentReviewID: in.ParentReviewID,
	}

	if in.ParentReviewID == nil {
		if in.Stars == nil || *in.Stars < 1 || *in.Stars > 5 {
			return models.Review{}, ErrStarsRange
		}
		review.Stars = in.Stars
	}

	if err := s.reviews.Create(&review); err != nil {
		return models.Review{}, err
	}

	s.forgetRating(review.ProductID)
	return review, nil
}

// ListByProduct returns one page of a product's top-level reviews with their
// authors and full (unpaginated) reply threads, most recent first. Page
// defaults to 1 and limit to 5.
func (s *ReviewService) ListByProduct(productID uint, page, limit int) (ReviewPage, error) {
	page, limit = orm.Normalize(page, limit)

	reviews, total, err := s.reviews.TopLevelByProduct(productID, page, limit)
	if err != nil {
		return ReviewPage{}, err
	}

	// Empty pages and threads serialize as [], never null.
	if reviews == nil {
		reviews = []models.Review{}
	}
	for i := range reviews {
		if reviews[i].Replies == nil {
			reviews[i].Replies = []models.Review{}
		}
	}

	pagination := orm.NewPagination(page, limit, total)

	return ReviewPage{
		Reviews:     reviews,
		TotalPages:  pagination.TotalPages,
		CurrentPage: page,
	}, nil
}

// Update edits a review's content and stars. Stars apply only to top-level
// reviews and must be in [1,5]; updating a reply changes its content but its
// stars stay null. A reply can never become rated.
func (s *ReviewService) Update(reviewID uint, content string, stars *int) (models.Review, error) {
	review, err := s.reviews.FindByID(reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}

	review.Content = content

	if !review.IsReply() {
		if stars == nil || *stars < 1 || *stars > 5 {
			return models.Review{}, ErrStarsRange
		}
		review.Stars = stars
	}

	if err := s.reviews.Save(&review); err != nil {
		return models.Review{}, err
	}

	s.forgetRating(review.ProductID)
	return review, nil
}

// Delete removes a review. Deleting a top-level review cascades to its
// replies so no orphaned rows remain.
func (s *ReviewService) Delete(reviewID uint) error {
	review, err := s.reviews.FindByID(reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReviewNotFound
	}
	if err != nil {
		return err
	}

	if err := s.reviews.DeleteWithReplies(review.ReviewID); err != nil {
		return err
	}

	s.forgetRating(review.ProductID)
	return nil
}

// AverageRating computes the mean of stars over a product's top-level
// reviews as a float64 division, no rounding. Zero qualifying reviews yield
// 0, not an error. The result is cached briefly; every review mutation for
// the product forgets the cached value.
func (s *ReviewService) AverageRating(productID uint) (float64, error) {
	var cached float64
	if cache.Get(ratingKey(productID), &cached) {
		return cached, nil
	}

	stars, err := s.reviews.StarsByProduct(productID)
	if err != nil {
		return 0, err
	}

	if len(stars) == 0 {
		return 0, nil
	}

	sum := collection.Reduce(stars, 0, func(acc, n int) int { return acc + n })
	avg := float64(sum) / float64(len(stars))

	cache.Set(ratingKey(productID), avg, ratingTTL) //nolint:errcheck
	return avg, nil
}

func (s *ReviewService) forgetRating(productID uint) {
	cache.Del(ratingKey(productID), "products:all") //nolint:errcheck
}
