package middleware

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by StagedImage when a file was uploaded.
const (
	StagedFilePathKey = "stagedFilePath"
	StagedFileNameKey = "stagedFileName"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

// StagedImage accepts an optional multipart "image" field and stages it into
// publicDir under a fresh filename. A request without a file passes through
// untouched; a non-image or oversized file is rejected with 400.
func StagedImage(publicDir string) gin.HandlerFunc {
	if err := os.MkdirAll(publicDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			// No file attached — image is optional on every route.
			c.Next()
			return
		}

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only image files are allowed"})
			c.Abort()
			return
		}
		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image must be smaller than 5MB"})
			c.Abort()
			return
		}

		filename := uuid.NewString() + filepath.Ext(file.Filename)
		dest := filepath.Join(publicDir, filename)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store uploaded file"})
			c.Abort()
			return
		}

		c.Set(StagedFilePathKey, dest)
		c.Set(StagedFileNameKey, filename)
		c.Next()
	}
}

// StagedFile returns the staged upload for this request, if any.
func StagedFile(c *gin.Context) (path, name string, ok bool) {
	p, exists := c.Get(StagedFilePathKey)
	if !exists {
		return "", "", false
	}
	n, _ := c.Get(StagedFileNameKey)
	return p.(string), n.(string), true
}
