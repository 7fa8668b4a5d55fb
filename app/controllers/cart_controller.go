package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gbvars988/SoilFullStack/app/services"
	"github.com/gbvars988/SoilFullStack/pkg/bind"
	"github.com/gbvars988/SoilFullStack/pkg/logger"
	"github.com/gbvars988/SoilFullStack/pkg/response"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// Add handles POST /api/cart. Adding the same product twice sums the
// quantities.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"  validate:"required"`
		ProductID uint   `json:"productId" validate:"required"`
		Quantity  int    `json:"quantity"  validate:"required,gt=0"`
	}

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.Error(w, http.StatusBadRequest, "All fields (username, productId, quantity) are required.")
		return
	}

	item, err := c.service.AddItem(body.Username, body.ProductID, body.Quantity)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, item)
}

// Get handles GET /api/cart/{username}: the cart's lines joined with
// product details.
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.GetCart(chi.URLParam(r, "username"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, items)
}

// Remove handles DELETE /api/cart, removing one line.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"  validate:"required"`
		ProductID uint   `json:"productId" validate:"required"`
	}

	errs, err := bind.JSON(r, &body)
	if err != nil || errs != nil {
		response.Error(w, http.StatusBadRequest, "All fields (username, productId) are required.")
		return
	}

	if err := c.service.RemoveItem(body.Username, body.ProductID); err != nil {
		c.fail(w, r, err)
		return
	}

	response.Message(w, "Item removed from cart")
}

// Update handles PUT /api/cart. It sets the exact quantity; zero or negative
// removes the line.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"  validate:"required"`
		ProductID uint   `json:"productId" validate:"required"`
		Quantity  int    `json:"quantity"`
	}

	errs, err := bind.JSON(r, &body)
	if err != nil || errs != nil {
		response.Error(w, http.StatusBadRequest, "All fields (username, productId, quantity) are required.")
		return
	}

	item, removed, err := c.service.UpdateQuantity(body.Username, body.ProductID, body.Quantity)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	if removed {
		response.Message(w, "Item removed from cart")
		return
	}

	response.JSON(w, item)
}

// Clear handles POST /api/cart/clear, deleting every line of the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required"`
	}

	errs, err := bind.JSON(r, &body)
	if err != nil || errs != nil {
		response.Error(w, http.StatusBadRequest, "The username field is required.")
		return
	}

	if err := c.service.ClearCart(body.Username); err != nil {
		c.fail(w, r, err)
		return
	}

	response.Message(w, "Cart cleared")
}

func (c *CartController) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrCartNotFound), errors.Is(err, services.ErrCartItemNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("cart request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
	}
}
