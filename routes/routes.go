package routes

import (
	"shop-service/handlers"
	"shop-service/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes binds the API surface. Role requirements vary per route, so
// each route names its own chain instead of sharing a group-wide one.
func SetupRoutes(r *gin.Engine, publicDir string) {
	owner := middleware.RoleRequired(middleware.RoleOwner)
	user := middleware.RoleRequired(middleware.RoleUser)
	auth := middleware.AuthRequired()
	upload := middleware.StagedImage(publicDir)

	// ── Shops ──────────────────────────────────────────────────────
	shops := r.Group("/api/shops")
	{
		shops.POST("/create-edit", auth, owner, upload, handlers.CreateOrEditShop)
		shops.GET("/get-shop", auth, owner, handlers.GetShopByOwner)
		shops.GET("/get-shop-by-city/:city", auth, user, handlers.GetShopsByCity)
		shops.GET("/get-shop-by-id/:shopId", auth, user, handlers.GetShopByID)
	}

	// ── Items ──────────────────────────────────────────────────────
	items := r.Group("/api/items")
	{
		items.POST("/", auth, owner, upload, handlers.CreateItem)
		items.PUT("/:itemId", auth, owner, upload, handlers.EditItem)
		items.GET("/shop", auth, owner, handlers.GetItemsByShop)
		items.GET("/:itemId", auth, owner, handlers.GetItem)
		items.DELETE("/:itemId", auth, owner, handlers.DeleteItem)

		// Public catalog browsing
		items.GET("/city/:city", handlers.GetAllItemsOfCity)
		items.GET("/", handlers.GetAllItems)

		// Internal route, called by the order service on completion
		items.PATCH("/:itemId/rating", handlers.UpdateItemRating)
	}
}
