package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/service"
)

// ── Stub OrderService ────────────────────────────────────────────────────────

type stubOrderService struct {
	listResp   *dto.OrderListResponse
	listErr    error
	getResp    *dto.OrderResponse
	getErr     error
	createResp *dto.OrderResponse
	createErr  error

	lastCreate dto.CreateOrderRequest
}

func (s *stubOrderService) List(_ context.Context, _ dto.OrderFilter) (*dto.OrderListResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubOrderService) Get(_ context.Context, _ int) (*dto.OrderResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubOrderService) Create(_ context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	s.lastCreate = req
	return s.createResp, s.createErr
}

func (s *stubOrderService) Update(_ context.Context, _ int, _ dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrderService) SetActiveStatus(_ context.Context, _ int, _ bool) error { return nil }

func (s *stubOrderService) Delete(_ context.Context, _ int) error { return nil }

var _ service.OrderService = (*stubOrderService)(nil)

func ordersRouter(svc service.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrdersHandler(svc)
	r := gin.New()
	r.GET("/api/orders", h.List)
	r.GET("/api/orders/:id", h.Get)
	r.POST("/api/orders", h.Create)
	r.PUT("/api/orders/:id", h.Update)
	return r
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestListErrorDegradesToEmptyEnvelope(t *testing.T) {
	svc := &stubOrderService{listErr: errors.New("db down")}
	r := ordersRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=2&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"data":[]`)
	assert.Contains(t, body, `"total":0`)
	assert.Contains(t, body, `"page":2`)
}

func TestGetUnknownInvoiceReturns404(t *testing.T) {
	svc := &stubOrderService{getErr: gorm.ErrRecordNotFound}
	r := ordersRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invoice not found")
}

func TestGetRejectsNonNumericID(t *testing.T) {
	r := ordersRouter(&stubOrderService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReturns201WithBody(t *testing.T) {
	svc := &stubOrderService{createResp: &dto.OrderResponse{}}
	svc.createResp.InvoiceNumber = "SQ00000005"
	r := ordersRouter(svc)

	body := `{"customer_id":3,"items":[{"product_id":1,"quantity":"2","unit_price":"5.25","total_price":"10.50"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "SQ00000005")
	require.NotNil(t, svc.lastCreate.CustomerID)
	assert.Equal(t, 3, *svc.lastCreate.CustomerID)
	require.Len(t, svc.lastCreate.Items, 1)
	assert.Equal(t, "10.5", svc.lastCreate.Items[0].TotalPrice.String())
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	r := ordersRouter(&stubOrderService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsItemWithoutProduct(t *testing.T) {
	r := ordersRouter(&stubOrderService{createResp: &dto.OrderResponse{}})

	body := `{"items":[{"quantity":"1","total_price":"5"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateUnknownInvoiceReturns404(t *testing.T) {
	r := ordersRouter(&stubOrderService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/9", strings.NewReader(`{"notes":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
