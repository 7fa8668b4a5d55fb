package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gbvars988/SoilFullStack/app/services"
	"github.com/gbvars988/SoilFullStack/pkg/bind"
	"github.com/gbvars988/SoilFullStack/pkg/logger"
	"github.com/gbvars988/SoilFullStack/pkg/middleware"
	"github.com/gbvars988/SoilFullStack/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// All handles GET /api/users.
func (c *UserController) All(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.All()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, users)
}

// One handles GET /api/users/select/{username}.
func (c *UserController) One(w http.ResponseWriter, r *http.Request) {
	user, err := c.service.One(chi.URLParam(r, "username"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, user)
}

// ByEmail handles GET /api/users/email/{email}.
func (c *UserController) ByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := c.service.ByEmail(chi.URLParam(r, "email"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, user)
}

// Login handles GET /api/users/login?username=&password=. Bad credentials
// answer 200 with a JSON null body so the caller cannot probe which part was
// wrong; a success carries the signed token in the X-Auth-Token header.
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	password := r.URL.Query().Get("password")

	user, token, err := c.service.Login(username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.JSON(w, nil)
		return
	}
	if err != nil {
		c.fail(w, r, err)
		return
	}

	w.Header().Set("X-Auth-Token", token)
	response.JSON(w, user)
}

// Create handles POST /api/users (signup).
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"  validate:"required,alpha_dash,max=32"`
		Email     string `json:"email"     validate:"required,email"`
		Password  string `json:"password"  validate:"required,min=6"`
		FirstName string `json:"firstname" validate:"required"`
		LastName  string `json:"lastname"  validate:"required"`
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

	user, err := c.service.Create(services.CreateUserInput{
		Username:  body.Username,
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.Status(w, http.StatusCreated, user)
}

// Update handles PUT /api/users/{username}. The username itself is the
// identity key and is never rewritten.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email     string `json:"email"     validate:"required,email"`
		FirstName string `json:"firstname" validate:"required"`
		LastName  string `json:"lastname"  validate:"required"`
		Password  string `json:"password"  validate:"nullable,min=6"`
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

	user, err := c.service.Update(chi.URLParam(r, "username"), services.UpdateUserInput{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Password:  body.Password,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, user)
}

// Me handles GET /api/users/me: the profile behind the bearer token.
func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		response.Fail(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	user, err := c.service.One(claims.Username)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, user)
}

func (c *UserController) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.Fail(w, http.StatusNotFound, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("user request failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
	}
}
