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

type FollowController struct {
	service *services.FollowService
}

func NewFollowController(service *services.FollowService) *FollowController {
	return &FollowController{service: service}
}

type followBody struct {
	Followed string `json:"followed" validate:"required"`
	Follower string `json:"follower" validate:"required"`
}

// Follow handles POST /api/follow/follow.
func (c *FollowController) Follow(w http.ResponseWriter, r *http.Request) {
	var body followBody

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.Fail(w, http.StatusBadRequest, firstMessage(errs))
		return
	}

	follow, err := c.service.Follow(body.Followed, body.Follower)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, follow)
}

// Unfollow handles POST /api/follow/unfollow.
func (c *FollowController) Unfollow(w http.ResponseWriter, r *http.Request) {
	var body followBody

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.Fail(w, http.StatusBadRequest, firstMessage(errs))
		return
	}

	if err := c.service.Unfollow(body.Followed, body.Follower); err != nil {
		c.fail(w, r, err)
		return
	}

	response.Message(w, "Unfollowed successfully")
}

// Following handles GET /api/users/following/{username}: the usernames the
// given user follows, as a flat JSON array.
func (c *FollowController) Following(w http.ResponseWriter, r *http.Request) {
	usernames, err := c.service.Following(chi.URLParam(r, "username"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, usernames)
}

func (c *FollowController) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyFollowing),
		errors.Is(err, services.ErrNotFollowing),
		errors.Is(err, services.ErrSelfFollow):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("follow request failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
	}
}
