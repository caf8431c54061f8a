package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"shop-api/app"
	"shop-api/database"
	"shop-api/handlers"
	"shop-api/middleware"
	"shop-api/models"
	"shop-api/router"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupTestApp mounts every controller on a Fiber app backed by repo
func setupTestApp(t *testing.T, repo app.Repository) *fiber.App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(repo, logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(logger, false)})
	fiberApp.Use(middleware.Recover())

	api := router.New(fiberApp, logger).Group("/api")
	handlers.CategoryRoutes(api.Group("/categories"), application)
	handlers.UnitRoutes(api.Group("/units"), application)
	handlers.ProductRoutes(api.Group("/products"), application)
	api.Group("/users").Register(handlers.UserRoutes(application)...)

	return fiberApp
}

// setupTestDB creates a temporary sqlite store and an app on top of it
func setupTestDB(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"), database.Options{})
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(), "Failed to run migrations")

	return setupTestApp(t, database.NewRepository(db))
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

func asMap(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	return m
}

func asSlice(t *testing.T, v any) []any {
	t.Helper()
	s, ok := v.([]any)
	require.True(t, ok, "expected array, got %T", v)
	return s
}

func TestCategories_CRUD(t *testing.T) {
	app := setupTestDB(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/categories", `{"category_name":"Electronics"}`)
	require.Equal(t, http.StatusCreated, status)
	resp := asMap(t, body)
	assert.Equal(t, "Category created successfully", resp["message"])
	result := asMap(t, resp["result"])
	assert.Equal(t, "Electronics", result["category_name"])
	assert.Contains(t, result, "createdAt")
	id := int(result["category_id"].(float64))
	path := fmt.Sprintf("/api/categories/%d", id)

	t.Run("Get", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Electronics", asMap(t, body)["category_name"])
	})

	t.Run("Update", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut, path, `{"category_name":"Gadgets"}`)
		assert.Equal(t, http.StatusOK, status)
		resp := asMap(t, body)
		assert.Equal(t, "Category updated successfully", resp["message"])
		assert.Equal(t, "Gadgets", asMap(t, resp["result"])["category_name"])
	})

	t.Run("Update missing", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut, "/api/categories/999", `{"category_name":"Nothing"}`)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, map[string]any{"error": "Category not found"}, body)
	})

	t.Run("Delete twice", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"message": "Category deleted successfully"}, body)

		status, body = doRequest(t, app, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, map[string]any{"error": "Category not found"}, body)
	})
}

func TestCategories_BulkCreate(t *testing.T) {
	app := setupTestDB(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/categories",
		`[{"category_name":"Books"},{"category_name":"Music"}]`)
	require.Equal(t, http.StatusCreated, status)
	assert.Len(t, asSlice(t, asMap(t, body)["result"]), 2)

	status, body = doRequest(t, app, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, asSlice(t, body), 2)
}

func TestCategories_Failures(t *testing.T) {
	app := setupTestDB(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Missing name",
			method:         http.MethodPost,
			path:           "/api/categories",
			body:           `{}`,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Error creating category",
		},
		{
			name:           "Malformed JSON",
			method:         http.MethodPost,
			path:           "/api/categories",
			body:           `{"category_name":`,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Error creating category",
		},
		{
			name:           "Non numeric id",
			method:         http.MethodGet,
			path:           "/api/categories/abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid category id",
		},
		{
			name:           "Unknown id",
			method:         http.MethodGet,
			path:           "/api/categories/42",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Category not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, map[string]any{"error": tt.expectedError}, body)
		})
	}
}

func TestUnits_NotFound(t *testing.T) {
	app := setupTestDB(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/units/999", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"error": "Unit not found"}, body)
}

func TestUnits_UpdateReturnsRecord(t *testing.T) {
	app := setupTestDB(t)

	_, body := doRequest(t, app, http.MethodPost, "/api/units", `{"unit_name":"kg"}`)
	id := int(asMap(t, asMap(t, body)["result"])["unit_id"].(float64))

	status, body := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/units/%d", id), `{"unit_name":"gram"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "gram", asMap(t, body)["unit_name"])
}

func TestProducts_WithRelations(t *testing.T) {
	app := setupTestDB(t)

	_, body := doRequest(t, app, http.MethodPost, "/api/categories", `{"category_name":"Electronics"}`)
	categoryID := int(asMap(t, asMap(t, body)["result"])["category_id"].(float64))
	_, body = doRequest(t, app, http.MethodPost, "/api/units", `{"unit_name":"piece"}`)
	unitID := int(asMap(t, asMap(t, body)["result"])["unit_id"].(float64))

	product := fmt.Sprintf(`{"product_name":"Phone","quantity":2,"price":"199.99","sale_price":"249.5","category_id":%d,"unit_id":%d}`,
		categoryID, unitID)
	status, body := doRequest(t, app, http.MethodPost, "/api/products", product)
	require.Equal(t, http.StatusCreated, status)
	productID := int(asMap(t, asMap(t, body)["result"])["product_id"].(float64))

	t.Run("List includes category and unit", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products", "")
		require.Equal(t, http.StatusOK, status)
		list := asSlice(t, body)
		require.Len(t, list, 1)
		item := asMap(t, list[0])
		assert.Equal(t, "Electronics", asMap(t, item["category"])["category_name"])
		assert.Equal(t, "piece", asMap(t, item["unit"])["unit_name"])
		assert.Equal(t, "249.5", item["sale_price"])
	})

	t.Run("Categories include products on request", func(t *testing.T) {
		_, body := doRequest(t, app, http.MethodGet, "/api/categories", "")
		assert.NotContains(t, asMap(t, asSlice(t, body)[0]), "product")

		_, body = doRequest(t, app, http.MethodGet, "/api/categories?include=product", "")
		products := asSlice(t, asMap(t, asSlice(t, body)[0])["product"])
		assert.Len(t, products, 1)
	})

	t.Run("Units always include products", func(t *testing.T) {
		_, body := doRequest(t, app, http.MethodGet, "/api/units", "")
		assert.Len(t, asSlice(t, asMap(t, asSlice(t, body)[0])["product"]), 1)
	})

	t.Run("Partial update", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/products/%d", productID), `{"quantity":5}`)
		require.Equal(t, http.StatusOK, status)
		item := asMap(t, body)
		assert.Equal(t, float64(5), item["quantity"])
		assert.Equal(t, "Phone", item["product_name"])
	})

	t.Run("Bulk with unknown category is rejected whole", func(t *testing.T) {
		batch := fmt.Sprintf(`[{"product_name":"Case","category_id":%d,"unit_id":%d},{"product_name":"Ghost","category_id":999,"unit_id":%d}]`,
			categoryID, unitID, unitID)
		status, body := doRequest(t, app, http.MethodPost, "/api/products", batch)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]any{"error": "Error creating product"}, body)

		_, body = doRequest(t, app, http.MethodGet, "/api/products", "")
		assert.Len(t, asSlice(t, body), 1)
	})
}

func TestUsers_Lifecycle(t *testing.T) {
	app := setupTestDB(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/users",
		`{"username":"alice","email":"alice@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusCreated, status)
	resp := asMap(t, body)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "User created successfully", resp["message"])
	users := asSlice(t, resp["data"])
	require.Len(t, users, 1)
	user := asMap(t, users[0])
	assert.NotContains(t, user, "password")
	id := int(user["id"].(float64))
	path := fmt.Sprintf("/api/users/%d", id)

	t.Run("Duplicate email is skipped", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/api/users",
			`[{"username":"alice2","email":"alice@example.com","password":"correct-horse"},{"username":"bob","email":"bob@example.com","password":"battery-staple"}]`)
		require.Equal(t, http.StatusCreated, status)
		created := asSlice(t, asMap(t, body)["data"])
		require.Len(t, created, 1)
		assert.Equal(t, "bob", asMap(t, created[0])["username"])
	})

	t.Run("List filtered by email", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/users?email=bob@example.com", "")
		require.Equal(t, http.StatusOK, status)
		resp := asMap(t, body)
		assert.Equal(t, "Request processed successfully", resp["message"])
		assert.Len(t, asSlice(t, resp["data"]), 1)
	})

	t.Run("Get", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "alice", asMap(t, asMap(t, body)["data"])["username"])
	})

	t.Run("Update", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut, path, `{"username":"alicia"}`)
		require.Equal(t, http.StatusOK, status)
		resp := asMap(t, body)
		assert.Equal(t, "User updated successfully", resp["message"])
		assert.Equal(t, "alicia", asMap(t, resp["data"])["username"])
	})

	t.Run("Update to a taken email", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut, path, `{"email":"bob@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		resp := asMap(t, body)
		assert.Equal(t, "Body: email is already taken", resp["message"])
		assert.NotContains(t, resp["message"], "UNIQUE")
	})

	t.Run("Delete twice", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "User deleted successfully", asMap(t, body)["message"])

		status, body = doRequest(t, app, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, status)
		resp := asMap(t, body)
		assert.Equal(t, "User not found", resp["message"])
		assert.Equal(t, false, resp["success"])
		assert.Contains(t, resp, "date")
		assert.Nil(t, resp["date"])
	})
}

func TestUsers_Validation(t *testing.T) {
	app := setupTestDB(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedPrefix string
	}{
		{name: "Bad email query", method: http.MethodGet, path: "/api/users?email=not-an-email", expectedStatus: 400, expectedPrefix: "Query"},
		{name: "Zero id", method: http.MethodGet, path: "/api/users/0", expectedStatus: 400, expectedPrefix: "Params"},
		{name: "Non numeric id", method: http.MethodDelete, path: "/api/users/abc", expectedStatus: 400, expectedPrefix: "Params"},
		{name: "Missing user", method: http.MethodGet, path: "/api/users/999", expectedStatus: 404, expectedPrefix: "User not found"},
		{name: "Empty update", method: http.MethodPut, path: "/api/users/1", body: `{}`, expectedStatus: 400, expectedPrefix: "Body"},
		{name: "Unknown update field", method: http.MethodPut, path: "/api/users/1", body: `{"role":"admin"}`, expectedStatus: 400, expectedPrefix: "Body"},
		{name: "Short password in batch", method: http.MethodPost, path: "/api/users", body: `[{"username":"carol","email":"carol@example.com","password":"short"}]`, expectedStatus: 400, expectedPrefix: "Body"},
		{name: "Empty batch", method: http.MethodPost, path: "/api/users", body: `[]`, expectedStatus: 400, expectedPrefix: "Body"},
		{name: "Hex id", method: http.MethodGet, path: "/api/users/0x8", expectedStatus: 400, expectedPrefix: "Params"},
		{name: "Underscored id", method: http.MethodDelete, path: "/api/users/1_0", expectedStatus: 400, expectedPrefix: "Params"},
		{name: "Leading zero id is decimal", method: http.MethodGet, path: "/api/users/010", expectedStatus: 404, expectedPrefix: "User not found"},
		{
			name:           "Multibyte password over 72 bytes",
			method:         http.MethodPost,
			path:           "/api/users",
			body:           `{"username":"dave","email":"dave@example.com","password":"` + strings.Repeat("é", 40) + `"}`,
			expectedStatus: 400,
			expectedPrefix: "Body: password must be at most 72 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, status)
			resp := asMap(t, body)
			assert.True(t, strings.HasPrefix(resp["message"].(string), tt.expectedPrefix), resp["message"])
			assert.Equal(t, false, resp["success"])
		})
	}
}

func TestUsers_InvalidBodyNeverReachesRepository(t *testing.T) {
	repo := new(mockRepository)
	app := setupTestApp(t, repo)

	status, body := doRequest(t, app, http.MethodPost, "/api/users", `{"username":"alice","password":"correct-horse"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	message := asMap(t, body)["message"].(string)
	assert.True(t, strings.HasPrefix(message, "Body"), message)
	assert.Contains(t, message, "email is required")
	repo.AssertNotCalled(t, "CreateUsers", mock.Anything, mock.Anything)
}

func TestUsers_PasswordIsHashed(t *testing.T) {
	repo := new(mockRepository)
	app := setupTestApp(t, repo)

	repo.On("CreateUsers", mock.Anything, mock.MatchedBy(func(users []models.User) bool {
		return len(users) == 1 &&
			bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("correct-horse")) == nil
	})).Return([]models.User{{ID: 1, Username: "alice", Email: "alice@example.com"}}, nil)

	repo.On("UpdateUser", mock.Anything, uint(7), mock.MatchedBy(func(fields map[string]any) bool {
		hash, ok := fields["password"].(string)
		return ok && bcrypt.CompareHashAndPassword([]byte(hash), []byte("battery-staple")) == nil
	})).Return(&models.User{ID: 7, Username: "bob"}, nil)

	status, _ := doRequest(t, app, http.MethodPost, "/api/users",
		`{"username":"alice","email":"alice@example.com","password":"correct-horse"}`)
	assert.Equal(t, http.StatusCreated, status)

	status, _ = doRequest(t, app, http.MethodPut, "/api/users/7", `{"password":"battery-staple"}`)
	assert.Equal(t, http.StatusOK, status)

	repo.AssertExpectations(t)
}

func TestRepositoryFailures(t *testing.T) {
	repo := new(mockRepository)
	app := setupTestApp(t, repo)

	repo.On("ListUnits", mock.Anything).Return(nil, errors.New("database is locked"))
	repo.On("ListUsers", mock.Anything, "").Return(nil, errors.New("database is locked"))

	t.Run("Legacy controller hides the cause", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/units", "")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]any{"error": "Error fetching units"}, body)
	})

	t.Run("Typed controller goes through the error handler", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/users", "")
		assert.Equal(t, http.StatusInternalServerError, status)
		resp := asMap(t, body)
		assert.Equal(t, "database is locked", resp["message"])
		assert.Equal(t, false, resp["success"])
	})
}

func TestUsers_IDsAreDecimal(t *testing.T) {
	repo := new(mockRepository)
	app := setupTestApp(t, repo)

	repo.On("GetUser", mock.Anything, uint(10)).Return(&models.User{ID: 10, Username: "ten"}, nil)

	status, body := doRequest(t, app, http.MethodGet, "/api/users/010", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(10), asMap(t, asMap(t, body)["data"])["id"])
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "GetUser", mock.Anything, uint(8))
}

func TestUsers_UpdatePasswordOver72Bytes(t *testing.T) {
	repo := new(mockRepository)
	app := setupTestApp(t, repo)

	status, body := doRequest(t, app, http.MethodPut, "/api/users/7", `{"password":"`+strings.Repeat("é", 40)+`"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Body: password must be at most 72 bytes", asMap(t, body)["message"])
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}
