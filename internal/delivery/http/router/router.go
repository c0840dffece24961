// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	CategoryHandler   *handler.CategoryHandler
	StoreHandler      *handler.StoreHandler
	ProductHandler    *handler.ProductHandler
	ShippingHandler   *handler.ShippingHandler
	StorefrontHandler *handler.StorefrontHandler
	MediaHandler      *handler.MediaHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
	}

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
	}

	// Public storefront routes
	storefrontGroup := e.Group("/storefront")
	{
		storefrontGroup.GET("/navbar", p.StorefrontHandler.GetNavbarTaxonomy)
		storefrontGroup.GET("/search", p.StorefrontHandler.SearchProducts)
		storefrontGroup.GET("/products/latest", p.StorefrontHandler.ListLatestProducts)
	}
	e.GET("/store/:slug", p.StorefrontHandler.GetStorePage)
	e.GET("/store/:slug/qr", p.StorefrontHandler.GetStoreQR)

	// Public catalog reads
	e.GET("/categories", p.CategoryHandler.ListCategories)
	e.GET("/categories/:slug", p.CategoryHandler.GetCategory)
	e.GET("/subcategories", p.CategoryHandler.ListSubcategories)
	e.GET("/stores/:id/shipping/:country", p.ShippingHandler.GetShippingDetails)

	// Seller routes. The actor is resolved when a token is present; the
	// submission actions turn an anonymous actor into a 401 envelope
	// instead of a transport-level reject.
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(p.AuthMiddleware.ResolveActor)
	{
		wizardGroup := sellerGroup.Group("/store-wizard")
		wizardGroup.GET("", p.StoreHandler.GetWizard)
		wizardGroup.PATCH("/draft", p.StoreHandler.PatchDraft)
		wizardGroup.POST("/advance", p.StoreHandler.AdvanceStep)
		wizardGroup.POST("/back", p.StoreHandler.RetreatStep)
		wizardGroup.GET("/missing-fields", p.StoreHandler.MissingFields)
		wizardGroup.POST("/submit", p.StoreHandler.SubmitStore)
		wizardGroup.DELETE("", p.StoreHandler.AbandonDraft)

		sellerGroup.GET("/stores", p.StoreHandler.ListOwnStores)
		sellerGroup.PUT("/stores", p.StoreHandler.UpdateStore)
		sellerGroup.GET("/stores/:id/products", p.ProductHandler.ListStoreProducts)
		sellerGroup.GET("/stores/:id/shipping-rates", p.ShippingHandler.ListStoreRates)
		sellerGroup.POST("/products", p.ProductHandler.UpsertProduct)
		sellerGroup.DELETE("/products/:id", p.ProductHandler.DeleteProduct)
		sellerGroup.POST("/shipping-rates", p.ShippingHandler.UpsertShippingRate)
	}

	// Media upload collaborator, shared by sellers and admins.
	mediaGroup := e.Group("/media")
	mediaGroup.Use(p.AuthMiddleware.ResolveActor)
	{
		mediaGroup.POST("/upload", p.MediaHandler.Upload)
		mediaGroup.DELETE("", p.MediaHandler.Delete)
	}

	// Admin routes. Role checks live in the usecases so failures come back
	// as result envelopes.
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.ResolveActor)
	{
		adminGroup.POST("/categories", p.CategoryHandler.UpsertCategory)
		adminGroup.DELETE("/categories/:id", p.CategoryHandler.DeleteCategory)
		adminGroup.POST("/subcategories", p.CategoryHandler.UpsertSubcategory)
		adminGroup.DELETE("/subcategories/:id", p.CategoryHandler.DeleteSubcategory)
		adminGroup.PATCH("/stores/:id/status", p.StoreHandler.SetStoreStatus)
	}
}
