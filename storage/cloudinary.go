package storage

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadResult reports the outcome of one ingestion attempt. Success=false
// is not fatal for callers: they fall back to serving the staged file from
// the local static route and proceed with the record write.
type UploadResult struct {
	Success  bool
	URL      string
	PublicID string
	Err      error
}

// Uploader transfers staged files to Cloudinary under a fixed folder.
// Credentials are read lazily on first use; if they are absent the uploader
// stays unconfigured for the process lifetime and every attempt fails into
// the caller's local fallback.
type Uploader struct {
	folder  string
	once    sync.Once
	client  *cloudinary.Cloudinary
	initErr error
}

func NewUploader(folder string) *Uploader {
	return &Uploader{folder: folder}
}

func (u *Uploader) configure() {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("⚠️ Cloudinary credentials missing - uploads will use local storage")
		u.initErr = errors.New("cloudinary credentials not configured")
		return
	}

	u.client, u.initErr = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if u.initErr == nil {
		log.Println("✅ Cloudinary configured")
	}
}

// Upload sends the staged file to Cloudinary. The staged file is removed on
// every path — success, provider failure, misconfiguration — so no orphans
// accumulate in the public directory.
func (u *Uploader) Upload(ctx context.Context, path string) UploadResult {
	if _, err := os.Stat(path); err != nil {
		return UploadResult{Success: false, Err: err}
	}
	defer removeStaged(path)

	u.once.Do(u.configure)
	if u.initErr != nil {
		return UploadResult{Success: false, Err: u.initErr}
	}

	resp, err := u.client.Upload.Upload(ctx, path, uploader.UploadParams{
		Folder: u.folder,
	})
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		return UploadResult{Success: false, Err: err}
	}
	if resp.Error.Message != "" {
		log.Println("Cloudinary upload error:", resp.Error.Message)
		return UploadResult{Success: false, Err: errors.New(resp.Error.Message)}
	}

	return UploadResult{
		Success:  true,
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}
}

func removeStaged(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Println("Error deleting local file:", err)
	}
}
