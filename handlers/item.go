package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"shop-service/config"
	"shop-service/middleware"
	"shop-service/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ItemRequest struct {
	Name     string  `form:"name" binding:"required"`
	Category string  `form:"category" binding:"required"`
	Price    float64 `form:"price" binding:"required,gt=0"`
	FoodType string  `form:"foodType" binding:"required"`
}

// callerShop loads the shop owned by the requesting user.
func callerShop(c *gin.Context) (*models.Shop, error) {
	var shop models.Shop
	err := config.DB.Where("owner_id = ?", middleware.GetUserID(c)).First(&shop).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// CreateItem adds a new item under the caller's shop. The caller must have
// created a shop first.
func CreateItem(c *gin.Context) {
	// Consume the staged file before any early exit below — the adapter
	// removes it from disk whether the upload succeeds or falls back.
	imageURL, _ := resolveImage(c)

	var req ItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	shop, err := callerShop(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Shop does not exist"})
		return
	}

	item := models.Item{
		ShopID:   shop.ID,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		FoodType: req.FoodType,
		Image:    imageURL,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create item"})
		return
	}

	var updatedShop models.Shop
	config.DB.Preload("Items").First(&updatedShop, shop.ID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": updatedShop, "item": item})
}

// EditItem updates an item. Only the operator of the owning shop may edit;
// the previous image survives unless a new one was uploaded.
func EditItem(c *gin.Context) {
	// Staged file first, for the same reason as CreateItem: a validation or
	// ownership rejection must not orphan it in the public dir.
	imageURL, hasImage := resolveImage(c)

	var req ItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var item models.Item
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found"})
		return
	}

	shop, err := callerShop(c)
	if err != nil || shop.ID != item.ShopID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized to edit this item"})
		return
	}

	updates := map[string]interface{}{
		"name":      req.Name,
		"category":  req.Category,
		"price":     req.Price,
		"food_type": req.FoodType,
	}
	if hasImage {
		updates["image"] = imageURL
	}
	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to edit item"})
		return
	}

	var updatedShop models.Shop
	config.DB.Preload("Items").First(&updatedShop, shop.ID)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updatedShop, "item": item})
}

// GetItemsByShop lists the caller's items, newest first
func GetItemsByShop(c *gin.Context) {
	shop, err := callerShop(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Shop not found"})
		return
	}

	var items []models.Item
	if err := config.DB.Where("shop_id = ?", shop.ID).Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

// GetItem returns a single item with its shop, only to the shop's operator
func GetItem(c *gin.Context) {
	var item models.Item
	if err := config.DB.Preload("Shop").First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found"})
		return
	}

	shop, err := callerShop(c)
	if err != nil || shop.ID != item.ShopID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized to access this item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// DeleteItem removes an item. The same ownership check as edit applies:
// only the operator of the owning shop may delete. The shop's item list is
// pruned by the row delete itself.
func DeleteItem(c *gin.Context) {
	var item models.Item
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found"})
		return
	}

	shop, err := callerShop(c)
	if err != nil || shop.ID != item.ShopID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized to delete this item"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete item"})
		return
	}

	var updatedShop models.Shop
	config.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("updated_at DESC")
	}).First(&updatedShop, shop.ID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item deleted successfully", "data": updatedShop})
}

// GetAllItemsOfCity lists every item sold by shops in a matching city.
// City matching is the same case-insensitive substring match as the shop
// lookup.
func GetAllItemsOfCity(c *gin.Context) {
	city := c.Param("city")

	var shops []models.Shop
	config.DB.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%").Find(&shops)
	if len(shops) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No shops found in this city"})
		return
	}

	shopIDs := make([]uint, 0, len(shops))
	for _, s := range shops {
		shopIDs = append(shopIDs, s.ID)
	}

	var items []models.Item
	if err := config.DB.Preload("Shop").Where("shop_id IN ?", shopIDs).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch items by city"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

// GetAllItems returns the item catalog page by page (default page 1, limit 5)
func GetAllItems(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	var total int64
	config.DB.Model(&models.Item{}).Count(&total)

	var items []models.Item
	if err := config.DB.Preload("Shop").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch all items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

type RatingRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}

// UpdateItemRating folds one score into the item's rating aggregate. The
// route is unauthenticated: it is called service-to-service when an order
// completes. The read-recompute-write runs in a transaction so concurrent
// submissions serialize at the store.
func UpdateItemRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Rating must be between 1 and 5"})
		return
	}

	var item models.Item
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, c.Param("itemId")).Error; err != nil {
			return err
		}
		if err := item.ApplyRating(req.Rating); err != nil {
			return err
		}
		return tx.Model(&item).Updates(map[string]interface{}{
			"rating_average": item.Rating.Average,
			"rating_count":   item.Rating.Count,
		}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update item rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
		"newRating": gin.H{
			"average": item.Rating.Average,
			"count":   item.Rating.Count,
		},
	})
}
