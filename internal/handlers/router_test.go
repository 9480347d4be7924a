package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/auth"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/database"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	credentials := auth.NewCredentialStore(db, bcrypt.MinCost)
	sessions := auth.NewSessionService(db, time.Hour)
	authHandler := NewAuthHandler(credentials, sessions, services.NewUserService(db))
	companyHandler := NewCompanyHandler(services.NewCompanyService(db), services.NewCalendarService(db))
	recordHandler := NewRecordHandler(
		services.NewInterviewService(db),
		services.NewTaskService(db),
		services.NewDocumentService(db),
		services.NewMemoService(db),
	)
	return NewRouter(sessions, authHandler, companyHandler, recordHandler)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signUpAndIn(t *testing.T, r *gin.Engine, username string) *http.Cookie {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": username, "password": "pw", "confirm_password": "pw",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{"username": username, "password": "pw"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterLoginDashboardFlow(t *testing.T) {
	r := newTestApp(t)
	cookie := signUpAndIn(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/dashboard", gin.H{
		"name": "Acme", "application_date": "2025-01-10",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["companies"], 1)
	assert.Len(t, body["events"], 1, "the dated company shows up as a calendar event")
}

func TestDashboardRequiresAuth(t *testing.T) {
	r := newTestApp(t)
	w := doJSON(t, r, http.MethodGet, "/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	bogus := &http.Cookie{Name: auth.CookieName, Value: "forged"}
	w = doJSON(t, r, http.MethodGet, "/dashboard", nil, bogus)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDuplicateRegisterConflicts(t *testing.T) {
	r := newTestApp(t)
	signUpAndIn(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "alice", "password": "pw2", "confirm_password": "pw2",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r := newTestApp(t)
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "alice", "password": "pw", "confirm_password": "other",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrossUserRecordsHidden(t *testing.T) {
	r := newTestApp(t)
	alice := signUpAndIn(t, r, "alice")
	bob := signUpAndIn(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/dashboard", gin.H{"name": "Acme"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	companyID := decodeBody(t, w)["id"]

	companyPath := "/company/" + jsonNumber(t, companyID)
	w = doJSON(t, r, http.MethodGet, companyPath, nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code, "bob sees a 404, not a 403")

	w = doJSON(t, r, http.MethodPost, companyPath+"/task/add", gin.H{"content": "sneak"}, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, companyPath+"/delete", nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Alice still sees it.
	w = doJSON(t, r, http.MethodGet, companyPath, nil, alice)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskToggleOverHTTP(t *testing.T) {
	r := newTestApp(t)
	alice := signUpAndIn(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/dashboard", gin.H{"name": "Acme"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	companyID := jsonNumber(t, decodeBody(t, w)["id"])

	w = doJSON(t, r, http.MethodPost, "/company/"+companyID+"/task/add", gin.H{"content": "prep"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := jsonNumber(t, decodeBody(t, w)["id"])

	w = doJSON(t, r, http.MethodPost, "/task/"+taskID+"/toggle", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "complete", body["status"])
	assert.Equal(t, companyID, jsonNumber(t, body["company_id"]), "response points back to the company")

	w = doJSON(t, r, http.MethodPost, "/task/"+taskID+"/toggle", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "incomplete", decodeBody(t, w)["status"])
}

func TestCompanyDeleteCascadesOverHTTP(t *testing.T) {
	r := newTestApp(t)
	alice := signUpAndIn(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/dashboard", gin.H{"name": "Acme"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	companyPath := "/company/" + jsonNumber(t, decodeBody(t, w)["id"])

	w = doJSON(t, r, http.MethodPost, companyPath+"/memo/add", gin.H{"title": "t", "content": "c"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	memoID := jsonNumber(t, decodeBody(t, w)["id"])

	w = doJSON(t, r, http.MethodPost, companyPath+"/delete", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, companyPath, nil, alice)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/memo/"+memoID+"/edit", gin.H{"title": "x", "content": "y"}, alice)
	assert.Equal(t, http.StatusNotFound, w.Code, "the memo went down with the company")
}

func TestEmptyRequiredFieldRejected(t *testing.T) {
	r := newTestApp(t)
	alice := signUpAndIn(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/dashboard", gin.H{"name": "Acme"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	companyPath := "/company/" + jsonNumber(t, decodeBody(t, w)["id"])

	for _, tc := range []struct {
		path string
		body gin.H
	}{
		{companyPath + "/task/add", gin.H{"content": ""}},
		{companyPath + "/document/add", gin.H{"document_name": ""}},
		{companyPath + "/memo/add", gin.H{"title": "", "content": "c"}},
	} {
		w := doJSON(t, r, http.MethodPost, tc.path, tc.body, alice)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", tc.path)
	}

	// Nothing slipped through.
	w = doJSON(t, r, http.MethodGet, companyPath, nil, alice)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)
	assert.Empty(t, detail["tasks"])
	assert.Empty(t, detail["documents"])
	assert.Empty(t, detail["memos"])
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestApp(t)
	alice := signUpAndIn(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/logout", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/dashboard", nil, alice)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookieEvenWhenDestroyFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A closed handle makes every session operation fail.
	require.NoError(t, sqlDB.Close())

	h := NewAuthHandler(
		auth.NewCredentialStore(db, bcrypt.MinCost),
		auth.NewSessionService(db, time.Hour),
		services.NewUserService(db),
	)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logout", nil)
	c.Request.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "live-token"})

	h.Logout(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == auth.CookieName {
			assert.Empty(t, ck.Value)
			assert.Less(t, ck.MaxAge, 0)
			cleared = true
		}
	}
	assert.True(t, cleared, "the cookie must be cleared even when the destroy fails")
}

func TestRootRedirects(t *testing.T) {
	r := newTestApp(t)

	w := doJSON(t, r, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	alice := signUpAndIn(t, r, "alice")
	w = doJSON(t, r, http.MethodGet, "/", nil, alice)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestAccountDeleteRemovesEverything(t *testing.T) {
	r := newTestApp(t)
	alice := signUpAndIn(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/dashboard", gin.H{"name": "Acme"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/account/delete", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	// The session died with the account.
	w = doJSON(t, r, http.MethodGet, "/dashboard", nil, alice)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The username is free again.
	w = doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "alice", "password": "pw", "confirm_password": "pw",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

// jsonNumber renders a decoded JSON number as the decimal string used in
// URL paths.
func jsonNumber(t *testing.T, v any) string {
	t.Helper()
	f, ok := v.(float64)
	require.True(t, ok, "expected a JSON number, got %T", v)
	return strconv.Itoa(int(f))
}
