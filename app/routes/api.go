// Package routes wires repositories, services, and controllers onto the
// router.
package routes

import (
	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/controllers"
	"github.com/gbvars988/SoilFullStack/app/repositories"
	"github.com/gbvars988/SoilFullStack/app/services"
	"github.com/gbvars988/SoilFullStack/pkg/middleware"
	"github.com/gbvars988/SoilFullStack/pkg/router"
)

// RegisterAPI builds the dependency graph from the given database handle and
// mounts every endpoint under /api.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	followRepo := repositories.NewFollowRepository(db)

	reviewService := services.NewReviewService(reviewRepo)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, reviewService)
	cartService := services.NewCartService(cartRepo)
	followService := services.NewFollowService(followRepo)

	users := controllers.NewUserController(userService)
	products := controllers.NewProductController(productService)
	carts := controllers.NewCartController(cartService)
	reviews := controllers.NewReviewController(reviewService)
	follows := controllers.NewFollowController(followService)

	api := r.Group("/api")

	api.Post("/cart", "cart.add", carts.Add)
	api.Post("/cart/clear", "cart.clear", carts.Clear)
	api.Get("/cart/{username}", "cart.show", carts.Get)
	api.Delete("/cart", "cart.remove", carts.Remove)
	api.Put("/cart", "cart.update", carts.Update)

	api.Get("/products", "products.index", products.All)
	api.Get("/products/select/{id}", "products.show", products.One)
	api.Post("/products", "products.create", products.Create)

	api.Post("/reviews", "reviews.create", reviews.Create)
	api.Get("/reviews/{product_id}", "reviews.index", reviews.ListByProduct)
	api.Put("/reviews/{review_id}", "reviews.update", reviews.Update)
	api.Delete("/reviews/{review_id}", "reviews.delete", reviews.Delete)

	api.Post("/follow/follow", "follow.follow", follows.Follow)
	api.Post("/follow/unfollow", "follow.unfollow", follows.Unfollow)

	api.Get("/users", "users.index", users.All)
	api.Get("/users/login", "users.login", users.Login)
	api.Get("/users/me", "users.me", users.Me, middleware.Auth)
	api.Get("/users/following/{username}", "users.following", follows.Following)
	api.Get("/users/select/{username}", "users.show", users.One)
	api.Get("/users/email/{email}", "users.byEmail", users.ByEmail)
	api.Post("/users", "users.create", users.Create)
	api.Put("/users/{username}", "users.update", users.Update)
}
