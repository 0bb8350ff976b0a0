package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/bilingual-portfolio-backend/database"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"github.com/rpupo63/bilingual-portfolio-backend/services"
)

type fixedTranslator struct{ out string }

func (f fixedTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return f.out, nil
}

// newTestRouter wires the full route table over a throwaway database, with a
// canned translator and disk storage under the test's temp dir.
func newTestRouter(t *testing.T) (http.Handler, *services.AuthService) {
	t.Helper()
	return newTestRouterWithStorage(t, nil)
}

func newTestRouterWithStorage(t *testing.T, storage services.FileStorage) (http.Handler, *services.AuthService) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gormDB))
	db := database.New(gormDB)

	auth, err := services.NewAuthService(db, map[string]string{"JWT_SECRET": "router-test-secret-0123"})
	require.NoError(t, err)

	if storage == nil {
		storage = services.NewLocalStorage(map[string]string{"UPLOAD_DIR": t.TempDir()})
	}
	svcs := Services{
		Content:  services.NewContentService(db, fixedTranslator{out: "translated"}, storage),
		Auth:     auth,
		Visitors: services.NewVisitorService(db),
	}

	return newRouter(svcs, withConfig(map[string]string{})), auth
}

func loginToken(t *testing.T, router http.Handler, auth *services.AuthService) string {
	t.Helper()

	_, err := auth.ProvisionAdmin(context.Background(), "admin", "correct horse")
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "correct horse"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, auth := newTestRouter(t)
	_, err := auth.ProvisionAdmin(context.Background(), "admin", "correct horse")
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, _ = json.Marshal(map[string]string{"username": "", "password": ""})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/analytics"},
		{http.MethodPost, "/admin/project"},
		{http.MethodDelete, "/admin/project/1"},
		{http.MethodPut, "/admin/about"},
		{http.MethodPost, "/admin/social"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s must be guarded", route.method, route.path)
	}

	// A garbage token is rejected the same way
	r := httptest.NewRequest(http.MethodGet, "/admin/analytics", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatePutsAdminOnContext(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gormDB))
	db := database.New(gormDB)

	auth, err := services.NewAuthService(db, map[string]string{"JWT_SECRET": "router-test-secret-0123"})
	require.NoError(t, err)
	_, err = auth.ProvisionAdmin(context.Background(), "admin", "correct horse")
	require.NoError(t, err)
	token, err := auth.Authenticate(context.Background(), "admin", "correct horse")
	require.NoError(t, err)

	var seen *models.User
	handler := newAuthMiddleware(auth).authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/admin/analytics", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "admin", seen.Username)

	// Public requests see no user
	assert.Nil(t, UserFromContext(context.Background()))
}

func TestPublicListingIsOpen(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var collection ProjectCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &collection))
	assert.Zero(t, collection.Total)
	assert.Equal(t, "en", w.Header().Get("Content-Language"))
}

func multipartProject(t *testing.T, fields map[string]string, gallery []string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	for _, name := range gallery {
		fw, err := mw.CreateFormFile("additional_images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	router, auth := newTestRouter(t)
	token := loginToken(t, router, auth)

	body, contentType := multipartProject(t, map[string]string{
		"title_ar":       "مشروع",
		"description_ar": "وصف",
		"technologies":   "Go, SQLite",
	}, []string{"a.png", "b.png"})

	r := httptest.NewRequest(http.MethodPost, "/admin/project", body)
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID      uint   `json:"id"`
		TitleEn string `json:"title_en"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	assert.Equal(t, "translated", created.TitleEn)

	// Detail page carries the ordered gallery
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/project/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Images []struct {
			Order int `json:"order"`
		} `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Images, 2)
	assert.Equal(t, 0, page.Images[0].Order)
	assert.Equal(t, 1, page.Images[1].Order)

	// Delete and verify the public page reports it gone
	r = httptest.NewRequest(http.MethodDelete, "/admin/project/1", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/project/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// brokenRemoveStorage stores files normally but fails every removal.
type brokenRemoveStorage struct {
	services.FileStorage
}

func (s brokenRemoveStorage) Remove(context.Context, string) error {
	return errors.New("disk detached")
}

func TestDeleteProjectImageWarnsOverHTTP(t *testing.T) {
	storage := brokenRemoveStorage{
		FileStorage: services.NewLocalStorage(map[string]string{"UPLOAD_DIR": t.TempDir()}),
	}
	router, auth := newTestRouterWithStorage(t, storage)
	token := loginToken(t, router, auth)

	body, contentType := multipartProject(t, map[string]string{
		"title_ar":       "مشروع",
		"description_ar": "وصف",
	}, []string{"a.png"})
	r := httptest.NewRequest(http.MethodPost, "/admin/project", body)
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/project/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Images []struct {
			ID uint `json:"id"`
		} `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Images, 1)

	// Row delete succeeds; the failed file removal surfaces as a warning
	r = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/project/image/%d", page.Images[0].ID), nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.NotEmpty(t, resp["warning"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/project/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	page.Images = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Empty(t, page.Images)
}

func TestProjectValidationErrorsOverHTTP(t *testing.T) {
	router, auth := newTestRouter(t)
	token := loginToken(t, router, auth)

	body, contentType := multipartProject(t, map[string]string{"description_ar": "وصف"}, nil)
	r := httptest.NewRequest(http.MethodPost, "/admin/project", body)
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "title_ar", resp.Field)

	// Non-numeric id in the URL
	r = httptest.NewRequest(http.MethodDelete, "/admin/project/abc", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAboutMeOverHTTP(t *testing.T) {
	router, auth := newTestRouter(t)
	token := loginToken(t, router, auth)

	// Never edited: empty bio, not a 404
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var empty map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
	assert.Equal(t, "", empty["text_ar"])

	body, _ := json.Marshal(map[string]string{"text_ar": "نبذة"})
	r := httptest.NewRequest(http.MethodPut, "/admin/about", bytes.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var about struct {
		TextAr string `json:"text_ar"`
		TextEn string `json:"text_en"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &about))
	assert.Equal(t, "نبذة", about.TextAr)
	assert.Equal(t, "translated", about.TextEn)
}

func TestSocialLinksOverHTTP(t *testing.T) {
	router, auth := newTestRouter(t)
	token := loginToken(t, router, auth)

	body, _ := json.Marshal(map[string]string{
		"name": "GitHub",
		"url":  "https://github.com/rpupo63",
		"icon": "fab fa-github",
	})
	r := httptest.NewRequest(http.MethodPost, "/admin/social", bytes.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/social-links", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		SocialLinks []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"social_links"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.SocialLinks, 1)
	assert.Equal(t, 1, listing.Total)
	assert.Equal(t, "GitHub", listing.SocialLinks[0].Name)

	r = httptest.NewRequest(http.MethodDelete, "/admin/social/1", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyticsOverHTTP(t *testing.T) {
	router, auth := newTestRouter(t)
	token := loginToken(t, router, auth)

	r := httptest.NewRequest(http.MethodGet, "/admin/analytics", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var report struct {
		Total     int64            `json:"total"`
		Languages map[string]int64 `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.GreaterOrEqual(t, report.Total, int64(0))
}
