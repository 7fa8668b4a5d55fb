package controllers

import (
	"errors"
	"net/http"

	"github.com/gbvars988/SoilFullStack/app/services"
	"github.com/gbvars988/SoilFullStack/pkg/bind"
	"github.com/gbvars988/SoilFullStack/pkg/logger"
	"github.com/gbvars988/SoilFullStack/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// All handles GET /api/products: the catalogue with average ratings.
func (c *ProductController) All(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("product listing failed", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, products)
}

// One handles GET /api/products/select/{id}.
func (c *ProductController) One(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := c.service.One(id)
	if errors.Is(err, services.ErrProductNotFound) {
		response.Fail(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("product lookup failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, product)
}

// Create handles POST /api/products.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"        validate:"required,max=50"`
		Price       int    `json:"price"       validate:"gte=0"`
		Description string `json:"description" validate:"required"`
		Quantity    int    `json:"quantity"    validate:"gte=0"`
		IsSpecial   bool   `json:"is_special"`
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

	product, err := c.service.Create(services.CreateProductInput{
		Name:        body.Name,
		Price:       body.Price,
		Description: body.Description,
		Quantity:    body.Quantity,
		IsSpecial:   body.IsSpecial,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("product create failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Status(w, http.StatusCreated, product)
}
