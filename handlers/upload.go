package handlers

import (
	"fmt"

	"shop-service/middleware"
	"shop-service/storage"

	"github.com/gin-gonic/gin"
)

// imageUploader ingests staged files under the service's fixed Cloudinary
// folder. Without credentials in the environment it stays unconfigured and
// every upload takes the local-fallback path.
var imageUploader = storage.NewUploader("food-delivery-app")

// resolveImage returns the image URL to persist for this request, or
// ok=false when no file was staged. A failed remote upload is not an error:
// the staged filename is served from the local /public route instead, and
// the record write proceeds with that URL.
func resolveImage(c *gin.Context) (url string, ok bool) {
	path, filename, ok := middleware.StagedFile(c)
	if !ok {
		return "", false
	}

	result := imageUploader.Upload(c.Request.Context(), path)
	if result.Success {
		return result.URL, true
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/public/%s", scheme, c.Request.Host, filename), true
}
