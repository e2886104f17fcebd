package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"shop-service/config"
	"shop-service/middleware"
	"shop-service/models"
	"shop-service/routes"

	"github.com/gin-gonic/gin"
)

// setupRouter wires the full route table against a fresh in-memory database.
// The returned dir is the upload staging directory for this test.
func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	config.OpenDB(dsn)

	dir := t.TempDir()
	r := gin.New()
	r.Static("/public", dir)
	routes.SetupRoutes(r, dir)
	return r, dir
}

func ownerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, userID+"@example.com", middleware.RoleOwner)
	if err != nil {
		t.Fatalf("failed to generate owner token: %v", err)
	}
	return token
}

func userToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, userID+"@example.com", middleware.RoleUser)
	if err != nil {
		t.Fatalf("failed to generate user token: %v", err)
	}
	return token
}

type formFile struct {
	name        string
	contentType string
	data        []byte
}

// formRequest builds a multipart request, optionally attaching an image file.
func formRequest(t *testing.T, method, path, token string, fields map[string]string, file *formFile) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		w.WriteField(k, v)
	}
	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, file.name))
		header.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to attach file: %v", err)
		}
		part.Write(file.data)
	}
	w.Close()

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func jsonRequest(t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// seedShop inserts a shop directly, bypassing the HTTP surface.
func seedShop(t *testing.T, ownerID, name, city string) *models.Shop {
	t.Helper()
	shop := &models.Shop{OwnerID: ownerID, Name: name, City: city, State: "ST", Address: "1 Main St"}
	if err := config.DB.Create(shop).Error; err != nil {
		t.Fatalf("failed to seed shop: %v", err)
	}
	return shop
}

func seedItem(t *testing.T, shopID uint, name string) *models.Item {
	t.Helper()
	item := &models.Item{ShopID: shopID, Name: name, Category: "snacks", Price: 9.99, FoodType: "veg"}
	if err := config.DB.Create(item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item
}
