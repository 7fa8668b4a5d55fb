package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gbvars988/SoilFullStack/app/services"
	"github.com/gbvars988/SoilFullStack/pkg/bind"
	"github.com/gbvars988/SoilFullStack/pkg/logger"
	"github.com/gbvars988/SoilFullStack/pkg/response"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// Create handles POST /api/reviews: a top-level review when
// parent_review_id is absent, a reply when it is present.
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content        string `json:"content"    validate:"required"`
		Stars          *int   `json:"stars"`
		ProductID      uint   `json:"product_id" validate:"required"`
		Username       string `json:"username"   validate:"required"`
		ParentReviewID *uint  `json:"parent_review_id"`
	}

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.Fail(w, http.StatusBadRequest, firstMessage(errs))
		return
	}

	review, err := c.service.Create(services.CreateReviewInput{
		Content:        body.Content,
		Stars:          body.Stars,
		ProductID:      body.ProductID,
		Username:       body.Username,
		ParentReviewID: body.ParentReviewID,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, review)
}

// ListByProduct handles GET /api/reviews/{product_id}?page=&limit=:
// paginated top-level reviews with unpaginated reply threads.
func (c *ReviewController) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "product_id")
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	pageData, err := c.service.ListByProduct(productID, page, limit)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, pageData)
}

// Update handles PUT /api/reviews/{review_id}.
func (c *ReviewController) Update(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseUintParam(r, "review_id")
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	var body struct {
		Content string `json:"content" validate:"required"`
		Stars   *int   `json:"stars"`
	}

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.Fail(w, http.StatusBadRequest, firstMessage(errs))
		return
	}

	review, err := c.service.Update(reviewID, body.Content, body.Stars)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, review)
}

// Delete handles DELETE /api/reviews/{review_id}. The delete cascades to replies.
func (c *ReviewController) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseUintParam(r, "review_id")
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	if err := c.service.Delete(reviewID); err != nil {
		c.fail(w, r, err)
		return
	}

	response.Message(w, "Review deleted")
}

func (c *ReviewController) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrReviewNotFound):
		response.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrStarsRange):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("review request failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
	}
}
