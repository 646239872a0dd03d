package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func uploadFile(t *testing.T, r *gin.Engine, token, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/uploads/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadAndServeImage(t *testing.T) {
	r, _ := newTestServer(t)

	_, token := signupUser(t, r, "uli", "CUSTOMER")

	w := uploadFile(t, r, token, "photo.png", "fake png bytes")
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: status %d body %s", w.Code, w.Body.String())
	}

	path := decode(t, w)["path"].(string)
	if !strings.HasPrefix(path, "/uploads/serve/") {
		t.Fatalf("path = %q", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path should keep the extension: %q", path)
	}
	// The stored name is random, not the client's filename.
	if strings.Contains(path, "photo") {
		t.Errorf("path leaks the original filename: %q", path)
	}

	// Serving is public.
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("serve: status %d", resp.Code)
	}
	if resp.Body.String() != "fake png bytes" {
		t.Errorf("served body = %q", resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	r, _ := newTestServer(t)

	_, token := signupUser(t, r, "vik", "CUSTOMER")

	w := uploadFile(t, r, token, "malware.exe", "MZ")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
	if got := decode(t, w)["error_code"]; got != "unsupported_file_type" {
		t.Errorf("error_code = %v, want unsupported_file_type", got)
	}
}

func TestUploadRequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := uploadFile(t, r, "", "photo.jpg", "bytes")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestServeUnknownFile(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/uploads/serve/missing.png", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
