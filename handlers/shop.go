package handlers

import (
	"errors"
	"net/http"
	"strings"

	"shop-service/config"
	"shop-service/middleware"
	"shop-service/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShopRequest struct {
	Name    string `form:"name" binding:"required"`
	City    string `form:"city"`
	State   string `form:"state"`
	Address string `form:"address"`
}

// CreateOrEditShop upserts the caller's shop. There is exactly one shop per
// owner: the first call creates it, every later call updates the supplied
// fields. The image is only replaced when a new file was uploaded.
func CreateOrEditShop(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	// Consume the staged file before any early exit below — the adapter
	// removes it from disk whether the upload succeeds or falls back.
	imageURL, hasImage := resolveImage(c)

	var req ShopRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var shop models.Shop
	err := config.DB.Where("owner_id = ?", ownerID).First(&shop).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		shop = models.Shop{
			OwnerID: ownerID,
			Name:    req.Name,
			City:    req.City,
			State:   req.State,
			Address: req.Address,
		}
		if hasImage {
			shop.Image = imageURL
		}
		if err := config.DB.Create(&shop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create shop"})
			return
		}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create shop"})
		return
	default:
		updates := map[string]interface{}{
			"name":    req.Name,
			"city":    req.City,
			"state":   req.State,
			"address": req.Address,
		}
		if hasImage {
			updates["image"] = imageURL
		}
		if err := config.DB.Model(&shop).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update shop"})
			return
		}
	}

	config.DB.Preload("Items").First(&shop, shop.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": shop})
}

// GetShopByOwner fetches the shop owned by the logged-in user
func GetShopByOwner(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var shop models.Shop
	if err := config.DB.Preload("Items").Where("owner_id = ?", ownerID).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Shop not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": shop})
}

// GetShopsByCity returns every shop whose city contains the given fragment,
// case-insensitively. Each shop carries its items, most recently updated
// first.
func GetShopsByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "City parameter is required"})
		return
	}

	var shops []models.Shop
	err := config.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("updated_at DESC")
		}).
		Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%").
		Find(&shops).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch shops"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": shops, "count": len(shops)})
}

// GetShopByID returns a single shop with its items
func GetShopByID(c *gin.Context) {
	var shop models.Shop
	if err := config.DB.Preload("Items").First(&shop, c.Param("shopId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Shop not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": shop})
}
