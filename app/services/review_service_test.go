package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/app/repositories"
)

func newReviewService(t *testing.T) (*ReviewService, *gorm.DB, uint) {
	t.Helper()

	db := testDB(t)
	seedUser(t, db, "alice")
	product := seedProduct(t, db, "Raw Honey")

	svc := NewReviewService(repositories.NewReviewRepository(db))
	return svc, db, product.ProductID
}

func TestCreateTopLevelReviewRequiresStars(t *testing.T) {
	svc, _, productID := newReviewService(t)

	base := CreateReviewInput{Content: "great", ProductID: productID, Username: "alice"}

	for _, stars := range []*int{nil, intPtr(0), intPtr(6), intPtr(-1)} {
		in := base
		in.Stars = stars
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrStarsRange)
	}

	in := base
	in.Stars = intPtr(5)
	review, err := svc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, review.Stars)
	assert.Equal(t, 5, *review.Stars)
}

func TestReplyStarsForcedToNull(t *testing.T) {
	svc, _, productID := newReviewService(t)

	parent, err := svc.Create(CreateReviewInput{
		Content: "great", Stars: intPtr(4), ProductID: productID, Username: "alice",
	})
	require.NoError(t, err)

	// The client sends stars on the reply; they must be discarded.
	reply, err := svc.Create(CreateReviewInput{
		Content:        "agreed",
		Stars:          intPtr(3),
		ProductID:      productID,
		Username:       "alice",
		ParentReviewID: &parent.ReviewID,
	})
	require.NoError(t, err)
	assert.Nil(t, reply.Stars)
}

func TestUpdateReplyKeepsStarsNull(t *testing.T) {
	svc, _, productID := newReviewService(t)

	parent, err := svc.Create(CreateReviewInput{
		Content: "great", Stars: intPtr(4), ProductID: productID, Username: "alice",
	})
	require.NoError(t, err)

	reply, err := svc.Create(CreateReviewInput{
		Content: "agreed", ProductID: productID, Username: "alice",
		ParentReviewID: &parent.ReviewID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(reply.ReviewID, "changed my mind", intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", updated.Content)
	assert.Nil(t, updated.Stars)
}

func TestUpdateTopLevelReviewValidatesStars(t *testing.T) {
	svc, _, productID := newReviewService(t)

	review, err := svc.Create(CreateReviewInput{
		Content: "great", Stars: intPtr(4), ProductID: productID, Username: "alice",
	})
	require.NoError(t, err)

	_, err = svc.Update(review.ReviewID, "edited", nil)
	assert.ErrorIs(t, err, ErrStarsRange)

	_, err = svc.Update(review.ReviewID, "edited", intPtr(6))
	assert.ErrorIs(t, err, ErrStarsRange)

	updated, err := svc.Update(review.ReviewID, "edited", intPtr(2))
	require.NoError(t, err)
	assert.Equal(t, 2, *updated.Stars)
}

func TestUpdateMissingReview(t *testing.T) {
	svc, _, _ := newReviewService(t)

	_, err := svc.Update(12345, "x", intPtr(3))
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestAverageRating(t *testing.T) {
	svc, _, productID := newReviewService(t)

	var parentID uint
	for _, stars := range []int{5, 3, 4} {
		review, err := svc.Create(CreateReviewInput{
			Content: "review", Stars: intPtr(stars), ProductID: productID, Username: "alice",
		})
		require.NoError(t, err)
		parentID = review.ReviewID
	}

	// Replies never contribute to the average.
	_, err := svc.Create(CreateReviewInput{
		Content: "reply", ProductID: productID, Username: "alice", ParentReviewID: &parentID,
	})
	require.NoError(t, err)

	avg, err := svc.AverageRating(productID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestAverageRatingNoReviews(t *testing.T) {
	svc, _, productID := newReviewService(t)

	avg, err := svc.AverageRating(productID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestListByProductPagination(t *testing.T) {
	svc, db, productID := newReviewService(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		review, err := svc.Create(CreateReviewInput{
			Content: fmt.Sprintf("review %d", i), Stars: intPtr(3),
			ProductID: productID, Username: "alice",
		})
		require.NoError(t, err)

		// Distinct timestamps so the most-recent-first order is stable.
		err = db.Model(&models.Review{}).
			Where("review_id = ?", review.ReviewID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error
		require.NoError(t, err)
	}

	page, err := svc.ListByProduct(productID, 1, 5)
	require.NoError(t, err)
	assert.Len(t, page.Reviews, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, "review 11", page.Reviews[0].Content)

	page, err = svc.ListByProduct(productID, 3, 5)
	require.NoError(t, err)
	assert.Len(t, page.Reviews, 2)
	assert.Equal(t, "review 0", page.Reviews[1].Content)

	// Out-of-range values fall back to page 1, limit 5.
	page, err = svc.ListByProduct(productID, 0, -1)
	require.NoError(t, err)
	assert.Len(t, page.Reviews, 5)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestListByProductEmptyPage(t *testing.T) {
	svc, _, productID := newReviewService(t)

	page, err := svc.ListByProduct(productID, 1, 5)
	require.NoError(t, err)
	require.NotNil(t, page.Reviews)
	assert.Empty(t, page.Reviews)
	assert.Zero(t, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestListByProductIncludesReplies(t *testing.T) {
	svc, _, productID := newReviewService(t)

	parent, err := svc.Create(CreateReviewInput{
		Content: "great", Stars: intPtr(5), ProductID: productID, Username: "alice",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(CreateReviewInput{
			Content: "reply", ProductID: productID, Username: "alice",
			ParentReviewID: &parent.ReviewID,
		})
		require.NoError(t, err)
	}

	page, err := svc.ListByProduct(productID, 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Reviews, 1)
	assert.Len(t, page.Reviews[0].Replies, 2)
	require.NotNil(t, page.Reviews[0].User)
	assert.Equal(t, "alice", page.Reviews[0].User.Username)
}

func TestDeleteCascadesToReplies(t *testing.T) {
	svc, db, productID := newReviewService(t)

	parent, err := svc.Create(CreateReviewInput{
		Content: "great", Stars: intPtr(5), ProductID: productID, Username: "alice",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(CreateReviewInput{
			Content: "reply", ProductID: productID, Username: "alice",
			ParentReviewID: &parent.ReviewID,
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(parent.ReviewID))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteMissingReview(t *testing.T) {
	svc, _, _ := newReviewService(t)

	assert.ErrorIs(t, svc.Delete(999), ErrReviewNotFound)
}
