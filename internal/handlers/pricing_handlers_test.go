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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/constants"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/handlers"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/mocks"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func newPreviewRouter(t *testing.T) (*gin.Engine, *mocks.MockQuerier) {
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)
	provider := mocks.NewMockTaxProvider(ctrl)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	engine := services.NewPricingEngine(
		nil,
		querier,
		services.NewDiscountCatalog(loc),
		services.NewVerificationDiscountResolver(loc),
		services.NewTaxCalculator(provider, services.DefaultTaxFallbackPolicy(), time.Second),
		services.NewGiftCardLedger(),
		services.NewCurrencyService(),
		5*time.Second,
	)

	handler := handlers.NewPricingHandler(engine)
	router := gin.New()
	router.POST("/api/v1/pricing/preview", handler.PreviewPricing)
	return router, querier
}

func previewBody(productID uuid.UUID, extra string) string {
	base := fmt.Sprintf(`{
		"lines": [{"product_id": %q, "quantity": 1}],
		"destination": {"country": "US", "state": "OR", "city": "Portland", "postal_code": "97201"}`, productID)
	if extra != "" {
		base += "," + extra
	}
	return base + "}"
}

func TestPricingHandler_PreviewPricing(t *testing.T) {
	router, querier := newPreviewRouter(t)

	product := db.Product{
		ID:             uuid.New(),
		ProductType:    constants.ProductTypeAirFilter,
		UnitPriceCents: 10000,
		Active:         true,
	}
	querier.EXPECT().
		GetProductsByIDs(gomock.Any(), []uuid.UUID{product.ID}).
		Return([]db.Product{product}, nil)
	querier.EXPECT().ListActiveDiscountRules(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/preview",
		bytes.NewBufferString(previewBody(product.ID, `"shipping_rate_cents": 999`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.PricingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10000), resp.SubtotalCents)
	assert.Equal(t, int64(999), resp.ShippingCents)
	assert.Equal(t, int64(10999), resp.TotalCents)
	assert.Equal(t, "USD", resp.Currency)
}

func TestPricingHandler_PreviewPricing_InvalidBody(t *testing.T) {
	router, _ := newPreviewRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/preview",
		bytes.NewBufferString(`{"destination": {}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPricingHandler_PreviewPricing_ErrorMapping(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(querier *mocks.MockQuerier)
		expectedStatus int
	}{
		{
			name: "declared subtotal mismatch",
			body: previewBody(productID, `"declared_subtotal_cents": 5000`),
			setupMocks: func(querier *mocks.MockQuerier) {
				querier.EXPECT().
					GetProductsByIDs(gomock.Any(), []uuid.UUID{productID}).
					Return([]db.Product{{ID: productID, ProductType: constants.ProductTypeAirFilter, UnitPriceCents: 5500, Active: true}}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown product",
			body: previewBody(productID, ""),
			setupMocks: func(querier *mocks.MockQuerier) {
				querier.EXPECT().
					GetProductsByIDs(gomock.Any(), []uuid.UUID{productID}).
					Return(nil, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store unavailable",
			body: previewBody(productID, ""),
			setupMocks: func(querier *mocks.MockQuerier) {
				querier.EXPECT().
					GetProductsByIDs(gomock.Any(), []uuid.UUID{productID}).
					Return(nil, fmt.Errorf("connection refused"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "empty cart",
			body:           `{"lines": [], "destination": {"country": "US", "state": "OR"}}`,
			setupMocks:     func(querier *mocks.MockQuerier) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, querier := newPreviewRouter(t)
			tt.setupMocks(querier)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/preview",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
