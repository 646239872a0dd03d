package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/leafload/leafload-api/internal/config"
	dbpkg "github.com/leafload/leafload-api/internal/db"
	"github.com/leafload/leafload-api/internal/routes"
)

// newTestServer spins up the whole HTTP stack against an in-memory
// database, so tests exercise the real routing, middleware and handlers.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := dbpkg.SeedRegions(db); err != nil {
		t.Fatalf("seed regions: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// signupUser registers an account and returns its id and token.
func signupUser(t *testing.T, r *gin.Engine, username, role string) (uint, string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"firstName": "Max",
		"lastName":  "Muster",
		"password":  "secret1",
		"role":      role,
		"address":   "Bahnhofstrasse 1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: status %d body %s", username, w.Code, w.Body.String())
	}

	resp := decode(t, w)
	return uint(resp["userId"].(float64)), resp["token"].(string)
}

// newOwnerWithRestaurant walks the two-step owner registration and logs
// in again so the token carries the restaurant id.
func newOwnerWithRestaurant(t *testing.T, r *gin.Engine, username, restaurantName string) (ownerID, restaurantID uint, token string) {
	t.Helper()

	ownerID, _ = signupUser(t, r, username, "RESTAURANT_OWNER")

	w := doJSON(t, r, http.MethodPost, "/auth/signup/restaurant", "", gin.H{
		"ownerId": ownerID,
		"name":    restaurantName,
		"address": "Hauptplatz 5",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup-restaurant: status %d body %s", w.Code, w.Body.String())
	}
	restaurantID = uint(decode(t, w)["restaurantId"].(float64))

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": username,
		"password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body.String())
	}
	token = decode(t, w)["token"].(string)

	return ownerID, restaurantID, token
}

// restaurantPath builds "/restaurants/<id>" plus an optional suffix
// segment.
func restaurantPath(id uint, suffix string) string {
	p := fmt.Sprintf("/restaurants/%d", id)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

// addMenuItem creates a menu item through the API as the given owner.
func addMenuItem(t *testing.T, r *gin.Engine, token string, restaurantID uint, title string, price float64, categoryID *uint) uint {
	t.Helper()

	body := gin.H{
		"restaurantId": restaurantID,
		"title":        title,
		"price":        price,
	}
	if categoryID != nil {
		body["categoryId"] = *categoryID
	}

	w := doJSON(t, r, http.MethodPost, "/restaurants/menu-items", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu item: status %d body %s", w.Code, w.Body.String())
	}
	return uint(decode(t, w)["id"].(float64))
}
