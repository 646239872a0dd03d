package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/leafload/leafload-api/internal/models"
)

func TestCreateMenuItemValidation(t *testing.T) {
	r, _ := newTestServer(t)

	_, restaurantID, token := newOwnerWithRestaurant(t, r, "emil", "Emils Ecke")

	w := doJSON(t, r, http.MethodPost, "/restaurants/menu-items", token, gin.H{
		"restaurantId": restaurantID,
		"title":        "Goulash",
		"price":        -2,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative price: status %d, want 400", w.Code)
	}
	if got := decode(t, w)["error_code"]; got != "invalid_price" {
		t.Errorf("error_code = %v, want invalid_price", got)
	}

	w = doJSON(t, r, http.MethodPost, "/restaurants/menu-items", token, gin.H{
		"restaurantId": restaurantID,
		"title":        "   ",
		"price":        5,
	})
	if got := decode(t, w)["error_code"]; got != "empty_title" {
		t.Errorf("blank title: error_code = %v, want empty_title", got)
	}
}

func TestCreateMenuItemRejectsForeignCategory(t *testing.T) {
	r, _ := newTestServer(t)

	_, restaurantID, token := newOwnerWithRestaurant(t, r, "frida", "Fridas Kueche")
	_, otherRestaurantID, otherToken := newOwnerWithRestaurant(t, r, "gustav", "Gustavs Grill")

	foreignCategory := createCategory(t, r, otherToken, otherRestaurantID, "Grilled")

	w := doJSON(t, r, http.MethodPost, "/restaurants/menu-items", token, gin.H{
		"restaurantId": restaurantID,
		"title":        "Steak",
		"price":        19.9,
		"categoryId":   foreignCategory,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
	if got := decode(t, w)["error_code"]; got != "category_not_found" {
		t.Errorf("error_code = %v, want category_not_found", got)
	}
}

func TestUpdateMenuItem(t *testing.T) {
	r, db := newTestServer(t)

	_, restaurantID, token := newOwnerWithRestaurant(t, r, "hanna", "Hannas Herd")

	categoryID := createCategory(t, r, token, restaurantID, "Pasta")
	itemID := addMenuItem(t, r, token, restaurantID, "Carbonara", 11.0, &categoryID)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/restaurants/menu-items/%d", itemID), token, gin.H{
		"price": 12.5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("price update: status %d body %s", w.Code, w.Body.String())
	}

	// null categoryId detaches the item into the "Other" bucket.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/restaurants/menu-items/%d", itemID), token, gin.H{
		"categoryId": nil,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("detach: status %d body %s", w.Code, w.Body.String())
	}

	var item models.MenuItem
	if err := db.First(&item, itemID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if item.Price != 12.5 {
		t.Errorf("price = %v, want 12.5", item.Price)
	}
	if item.CategoryID != nil {
		t.Errorf("CategoryID = %v, want nil", *item.CategoryID)
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/restaurants/menu-items/%d", itemID), token, gin.H{})
	if got := decode(t, w)["error_code"]; got != "empty_update" {
		t.Errorf("empty body: error_code = %v, want empty_update", got)
	}
}

func TestMenuItemEditDataListsCategories(t *testing.T) {
	r, _ := newTestServer(t)

	_, restaurantID, token := newOwnerWithRestaurant(t, r, "ines", "Ines Imbiss")

	createCategory(t, r, token, restaurantID, "Salads")
	itemID := addMenuItem(t, r, token, restaurantID, "Caesar", 8.5, nil)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurants/menu-items/%d/edit", itemID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	resp := decode(t, w)
	categories := resp["categories"].([]any)
	if len(categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(categories))
	}
}

func TestDeleteMenuItemOwnerOnly(t *testing.T) {
	r, db := newTestServer(t)

	_, restaurantID, token := newOwnerWithRestaurant(t, r, "jonas", "Jonas Bar")
	_, customerToken := signupUser(t, r, "klara", "CUSTOMER")

	itemID := addMenuItem(t, r, token, restaurantID, "Burger", 9.0, nil)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/restaurants/menu-items/%d", itemID), customerToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer delete: status %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/restaurants/menu-items/%d", itemID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete: status %d body %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.MenuItem{}).Where("id = ?", itemID).Count(&count)
	if count != 0 {
		t.Error("item should be gone")
	}
}
