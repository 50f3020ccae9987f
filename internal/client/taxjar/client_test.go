package taxjar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/client/taxjar"
)

func TestClient_TaxForOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/taxes", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var params taxjar.TaxForOrderParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "US", params.ToCountry)
		assert.Equal(t, "NC", params.ToState)
		assert.InDelta(t, 100.00, params.Amount, 0.001)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tax":{"rate":0.0725,"amount_to_collect":7.97,"freight_taxable":true,"has_nexus":true}}`))
	}))
	defer server.Close()

	client := taxjar.NewClient("test-api-key", taxjar.WithBaseURL(server.URL))
	result, err := client.TaxForOrder(context.Background(), taxjar.TaxForOrderParams{
		ToCountry: "US",
		ToState:   "NC",
		ToCity:    "Charlotte",
		ToZip:     "28202",
		Amount:    100.00,
		Shipping:  9.99,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.0725, result.Rate, 0.00001)
	assert.InDelta(t, 7.97, result.AmountToCollect, 0.001)
	assert.True(t, result.FreightTaxable)
	assert.True(t, result.HasNexus)
}

func TestClient_TaxForOrder_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized","detail":"Not authorized for route","status":401}`))
	}))
	defer server.Close()

	client := taxjar.NewClient("bad-key", taxjar.WithBaseURL(server.URL))
	_, err := client.TaxForOrder(context.Background(), taxjar.TaxForOrderParams{ToCountry: "US", ToState: "NC"})
	require.Error(t, err)

	var apiErr *taxjar.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_TaxForOrder_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := taxjar.NewClient("test-api-key", taxjar.WithBaseURL(server.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.TaxForOrder(ctx, taxjar.TaxForOrderParams{ToCountry: "US", ToState: "NC"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_TaxForOrder_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := taxjar.NewClient("test-api-key", taxjar.WithBaseURL(server.URL))
	_, err := client.TaxForOrder(context.Background(), taxjar.TaxForOrderParams{ToCountry: "US", ToState: "NC"})
	assert.Error(t, err)
}
