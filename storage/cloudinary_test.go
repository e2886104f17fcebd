package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func stageTempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staged.png")
	if err := os.WriteFile(path, []byte("not-a-real-png"), 0o644); err != nil {
		t.Fatalf("failed to stage temp file: %v", err)
	}
	return path
}

func TestUpload_UnconfiguredFallsBackAndCleansUp(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")
	t.Setenv("CLOUDINARY_API_KEY", "")
	t.Setenv("CLOUDINARY_API_SECRET", "")

	path := stageTempFile(t)
	u := NewUploader("test-folder")

	result := u.Upload(context.Background(), path)
	if result.Success {
		t.Fatal("expected failure when credentials are missing")
	}
	if result.Err == nil {
		t.Fatal("expected an error on the result")
	}

	// The staged file must not be left behind on the failure path.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("staged file still present after failed upload: %v", err)
	}
}

func TestUpload_ConfiguresAtMostOnce(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")
	t.Setenv("CLOUDINARY_API_KEY", "")
	t.Setenv("CLOUDINARY_API_SECRET", "")

	u := NewUploader("test-folder")
	u.Upload(context.Background(), stageTempFile(t))

	// Credentials appearing later must not re-trigger configuration.
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	result := u.Upload(context.Background(), stageTempFile(t))
	if result.Success {
		t.Fatal("uploader reconfigured itself after first use")
	}
}

func TestUpload_MissingFile(t *testing.T) {
	u := NewUploader("test-folder")

	result := u.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	if result.Success {
		t.Fatal("expected failure for a missing staged file")
	}
	if result.Err == nil {
		t.Fatal("expected an error for a missing staged file")
	}
}
