package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tokoadmin/internal/models"
	"tokoadmin/internal/server/servertest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// call sends body as JSON to the app and returns the response.
func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAuthRegisterAndLogin(t *testing.T) {
	f := servertest.New(t)
	app := f.Server.App

	userToRegister := map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}
	resp := call(t, app, http.MethodPost, "/api/v1/auth/register", "", userToRegister)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var registerResp map[string]interface{}
	decode(t, resp, &registerResp)
	assert.Equal(t, "User registered successfully", registerResp["message"])
	assert.NotContains(t, registerResp["user"], "password")

	// Duplicate username
	resp = call(t, app, http.MethodPost, "/api/v1/auth/register", "", userToRegister)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Missing email
	resp = call(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{"username": "abc", "password": "password123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decode(t, resp, &loginResp)
	require.NotEmpty(t, loginResp["token"])

	claims, err := f.Server.Auth.ValidateToken(loginResp["token"])
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.NotEmpty(t, claims.UserID)

	resp = call(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := servertest.New(t)
	app := f.Server.App

	resp := call(t, app, http.MethodGet, "/api/v1/stores", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores", nil)
	req.Header.Set("Authorization", "Token "+f.Token)
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, raw.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/stores", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStoreProductEmployeeEndpoints(t *testing.T) {
	f := servertest.New(t)
	app := f.Server.App

	// Stores
	resp := call(t, app, http.MethodPost, "/api/v1/stores", f.Token, map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/v1/stores", f.Token, map[string]string{"name": "Main"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var store models.Store
	decode(t, resp, &store)
	require.NotEmpty(t, store.ID)

	resp = call(t, app, http.MethodGet, "/api/v1/stores", f.Token, nil)
	var stores []models.Store
	decode(t, resp, &stores)
	assert.Equal(t, []models.Store{store}, stores)

	productsPath := "/api/v1/stores/" + store.ID.String() + "/products"

	// Products
	resp = call(t, app, http.MethodPost, productsPath, f.Token, map[string]interface{}{
		"name": "Smartphone", "price": 799.99, "stock": 50, "store_id": "ignored",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decode(t, resp, &product)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, store.ID, product.StoreID)

	resp = call(t, app, http.MethodPost, productsPath, f.Token, map[string]interface{}{
		"name": "Broken", "price": 1, "stock": -1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPut, productsPath+"/"+product.ID.String(), f.Token, map[string]interface{}{
		"id": product.ID, "name": "Smartphone X", "price": 899.5, "stock": 0, "store_id": store.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decode(t, resp, &updated)
	assert.Equal(t, "Smartphone X", updated.Name)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, "899.50", updated.Price.StringFixed(2))

	resp = call(t, app, http.MethodPut, productsPath+"/missing", f.Token, map[string]interface{}{
		"name": "Ghost", "price": 1, "stock": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodGet, productsPath, f.Token, nil)
	var products []models.Product
	decode(t, resp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Smartphone X", products[0].Name)

	resp = call(t, app, http.MethodDelete, productsPath+"/"+product.ID.String(), f.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = call(t, app, http.MethodDelete, productsPath+"/"+product.ID.String(), f.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Employees
	employeesPath := "/api/v1/stores/" + store.ID.String() + "/employees"
	resp = call(t, app, http.MethodPost, employeesPath, f.Token, map[string]string{
		"username": "budi", "password": "s3cret", "role": "manager",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decode(t, resp, &created)
	assert.Equal(t, "manager", created["role"])
	assert.NotContains(t, created, "password")

	resp = call(t, app, http.MethodPost, employeesPath, f.Token, map[string]string{
		"username": "sari", "password": "pw", "role": "owner",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, employeesPath, f.Token, nil)
	var employees []map[string]interface{}
	decode(t, resp, &employees)
	require.Len(t, employees, 1)
	assert.Equal(t, "budi", employees[0]["username"])
	assert.NotContains(t, employees[0], "password")
}

func TestStoresAreOwnerScoped(t *testing.T) {
	f := servertest.New(t)
	app := f.Server.App

	resp := call(t, app, http.MethodPost, "/api/v1/stores", f.Token, map[string]string{"name": "Main"})
	var store models.Store
	decode(t, resp, &store)

	_, otherToken := f.Register(t, "intruder")

	resp = call(t, app, http.MethodGet, "/api/v1/stores", otherToken, nil)
	var stores []models.Store
	decode(t, resp, &stores)
	assert.Empty(t, stores)

	for _, path := range []string{
		"/api/v1/stores/" + store.ID.String() + "/products",
		"/api/v1/stores/" + store.ID.String() + "/employees",
	} {
		resp = call(t, app, http.MethodGet, path, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}
