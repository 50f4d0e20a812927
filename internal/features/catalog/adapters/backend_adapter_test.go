package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"drherbs-api/internal/core/config"
	"drherbs-api/internal/core/money"
	"drherbs-api/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackendAdapter_ListProducts verifies listing and payload mapping.
func TestBackendAdapter_ListProducts(t *testing.T) {
	mockResponse := `[
		{
			"id": "p1",
			"name": "Chamomile Tea",
			"short_description": "Calming herbal tea",
			"price": 12.99,
			"original_price": 15.99,
			"category": "teas",
			"image_url": "https://img.test/tea.jpg",
			"stock": 25,
			"featured": true,
			"rating": 4.5,
			"review_count": 12,
			"benefits": ["Relaxation", "Better sleep"],
			"created_date": "2024-03-01T10:00:00Z"
		},
		{
			"id": "p2",
			"name": "Lavender Oil",
			"price": 24.5,
			"category": "oils",
			"stock": 5
		}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	adapter := NewBackendAdapter(config.BackendConfig{URL: server.URL, ServiceKey: "sk_test"})
	products, err := adapter.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Chamomile Tea", products[0].Name)
	assert.Equal(t, money.Cents(1299), products[0].Price)
	assert.Equal(t, money.Cents(1599), products[0].OriginalPrice)
	assert.True(t, products[0].Featured)
	assert.Equal(t, 4.5, products[0].Rating)
	assert.Equal(t, []string{"Relaxation", "Better sleep"}, products[0].Benefits)

	expectedDate, _ := time.Parse(time.RFC3339, "2024-03-01T10:00:00Z")
	assert.True(t, expectedDate.Equal(products[0].CreatedAt), "Date should match")

	// Missing optional fields map to safe zero values.
	assert.Equal(t, money.Cents(0), products[1].OriginalPrice)
	assert.True(t, products[1].CreatedAt.IsZero())
}

// TestBackendAdapter_GetProduct verifies single-product fetch and 404 handling.
func TestBackendAdapter_GetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products/p1":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "p1", "name": "Chamomile Tea", "price": 12.99, "category": "teas"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	adapter := NewBackendAdapter(config.BackendConfig{URL: server.URL, ServiceKey: "sk_test"})

	product, err := adapter.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Chamomile Tea", product.Name)

	product, err = adapter.GetProduct(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, product)
}

// TestBackendAdapter_CreateProduct verifies the write path and dollar encoding.
func TestBackendAdapter_CreateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Ginseng Extract", payload["name"])
		assert.Equal(t, 29.99, payload["price"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "p9", "name": "Ginseng Extract", "price": 29.99, "category": "supplements"}`))
	}))
	defer server.Close()

	adapter := NewBackendAdapter(config.BackendConfig{URL: server.URL, ServiceKey: "sk_test"})

	created, err := adapter.CreateProduct(context.Background(), domain.Product{
		Name:     "Ginseng Extract",
		Price:    money.FromDollars(29.99),
		Category: "supplements",
	})

	require.NoError(t, err)
	assert.Equal(t, "p9", created.ID)
	assert.Equal(t, money.Cents(2999), created.Price)
}

// TestBackendAdapter_UpdateProduct_NotFound verifies 404 mapping on update.
func TestBackendAdapter_UpdateProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewBackendAdapter(config.BackendConfig{URL: server.URL, ServiceKey: "sk_test"})

	updated, err := adapter.UpdateProduct(context.Background(), "missing", domain.Product{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

// TestBackendAdapter_DeleteProduct verifies delete status handling.
func TestBackendAdapter_DeleteProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		adapter := NewBackendAdapter(config.BackendConfig{URL: server.URL, ServiceKey: "sk_test"})
		assert.NoError(t, adapter.DeleteProduct(context.Background(), "p1"))
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		adapter := NewBackendAdapter(config.BackendConfig{URL: server.URL, ServiceKey: "sk_test"})
		assert.Error(t, adapter.DeleteProduct(context.Background(), "p1"))
	})
}

// TestBackendAdapter_ListProducts_BadStatus verifies error on non-200 responses.
func TestBackendAdapter_ListProducts_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := NewBackendAdapter(config.BackendConfig{URL: server.URL, ServiceKey: "sk_test"})

	_, err := adapter.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend API returned status")
}
