package usersserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usermemory "github.com/Apurer/go-users-api/internal/users/adapters/memory"
	userapp "github.com/Apurer/go-users-api/internal/users/application"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := userapp.NewService(usermemory.NewRepository())
	handlers := ApiHandleFunctions{
		UsersAPI:  NewUsersAPI(service),
		HealthAPI: NewHealthAPI(),
	}
	return NewRouter(handlers)
}

type userBody struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
	Picture  *string `json:"picture"`
	IsActive bool    `json:"is_active"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createUser(t *testing.T, router *gin.Engine, payload map[string]any) userBody {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/users", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created userBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func TestCreateUserReturnsSubmittedFields(t *testing.T) {
	router := newTestRouter()

	created := createUser(t, router, map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"phone":    "+1234567890",
		"password": "secret",
	})

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "alice@example.com", created.Email)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "+1234567890", *created.Phone)
	assert.Equal(t, "secret", created.Password)
	assert.Nil(t, created.Picture)
	assert.True(t, created.IsActive, "is_active defaults to true")
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	router := newTestRouter()

	created := createUser(t, router, map[string]any{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "hunter2",
		"picture":  "https://example.com/bob.png",
	})

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched userBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestGetMissingUserReturns404WithID(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/users/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "User with id:999 was not found")
}

func TestUpdateUser(t *testing.T) {
	router := newTestRouter()

	created := createUser(t, router, map[string]any{
		"name":     "Carol",
		"email":    "carol@example.com",
		"password": "pw",
	})

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/users/%d", created.ID), map[string]any{
		"name":      "Caroline",
		"email":     "caroline@example.com",
		"phone":     "+31999",
		"password":  "newpw",
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated userBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID, "id is immutable")
	assert.Equal(t, "Caroline", updated.Name)
	assert.Equal(t, "caroline@example.com", updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+31999", *updated.Phone)
	assert.Equal(t, "newpw", updated.Password)
	assert.False(t, updated.IsActive)
}

func TestUpdateMissingUserReturns404(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPut, "/users/404", map[string]any{
		"name":     "Ghost",
		"email":    "ghost@example.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with id:404 was not found")
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter()

	created := createUser(t, router, map[string]any{
		"name":     "Dave",
		"email":    "dave@example.com",
		"password": "pw",
	})

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User successfully deleted"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMissingUserStillSucceeds(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodDelete, "/users/31337", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User successfully deleted"}`, rec.Body.String())
}

func TestListUsersAfterCreatesAndDeletes(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	const created = 5
	ids := make([]int64, 0, created)
	for i := 0; i < created; i++ {
		user := createUser(t, router, map[string]any{
			"name":     fmt.Sprintf("user-%d", i),
			"email":    fmt.Sprintf("user-%d@example.com", i),
			"password": "pw",
		})
		ids = append(ids, user.ID)
	}
	for _, id := range ids[:2] {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []userBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, created-2)
	seen := map[int64]bool{}
	for _, user := range list {
		assert.False(t, seen[user.ID], "duplicate id %d", user.ID)
		seen[user.ID] = true
	}
}

func TestCreateUserValidation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{"email": "x@example.com", "password": "pw"}},
		{"missing email", map[string]any{"name": "X", "password": "pw"}},
		{"missing password", map[string]any{"name": "X", "email": "x@example.com"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/users", tc.payload)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "Validation Error")
		})
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/users", map[string]any{
		"name":     "X",
		"email":    "not-an-email",
		"password": "pw",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "email must contain '@'")
}

func TestMalformedBodyReturns400(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNonIntegerIDReturns400(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doJSON(t, router, method, "/users/abc", map[string]any{
			"name":     "X",
			"email":    "x@example.com",
			"password": "pw",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "method %s", method)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
