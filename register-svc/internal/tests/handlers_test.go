package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "autobus-caisse/register-svc/internal/api/http"
	"autobus-caisse/register-svc/internal/domain"
	"autobus-caisse/register-svc/internal/mocks"
	"autobus-caisse/register-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(svc service.RegisterServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(svc, nil)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_orderFlow(t *testing.T) {
	router := setupTestRouter(newRegister(service.PolicySoftCancel, nil))

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expectedCode int
		expectedBody string
	}{
		{name: "add ricard", method: "POST", path: "/api/order/items", body: `{"name":"Ricard"}`, expectedCode: http.StatusCreated, expectedBody: `"total_display":"4.00 €"`},
		{name: "add demi", method: "POST", path: "/api/order/items", body: `{"name":"Demi"}`, expectedCode: http.StatusCreated, expectedBody: `"total":"7.5"`},
		{name: "unknown item", method: "POST", path: "/api/order/items", body: `{"name":"Whisky"}`, expectedCode: http.StatusBadRequest},
		{name: "invalid json", method: "POST", path: "/api/order/items", body: `{bad}`, expectedCode: http.StatusBadRequest},
		{name: "add wine bottle", method: "POST", path: "/api/order/wines", body: `{"name":"Pic Saint Loup - Héritage","subcategory":"Rouges","tier":"bottle"}`, expectedCode: http.StatusCreated, expectedBody: `Pic Saint Loup - Héritage (Bouteille)`},
		{name: "unknown tier", method: "POST", path: "/api/order/wines", body: `{"name":"Pic Saint Loup - Héritage","tier":"magnum"}`, expectedCode: http.StatusBadRequest},
		{name: "remove last", method: "DELETE", path: "/api/order/items/last", expectedCode: http.StatusOK, expectedBody: `"total_display":"7.50 €"`},
		{name: "get order", method: "GET", path: "/api/order", expectedCode: http.StatusOK, expectedBody: `"price_display":"3.50 €"`},
		{name: "invalid method", method: "POST", path: "/api/order/pay", body: `{"method":"cheque"}`, expectedCode: http.StatusBadRequest},
		{name: "pay cash", method: "POST", path: "/api/order/pay", body: `{"method":"cash"}`, expectedCode: http.StatusCreated, expectedBody: `"payment_method":"cash"`},
		{name: "pay empty order", method: "POST", path: "/api/order/pay", body: `{"method":"card"}`, expectedCode: http.StatusNoContent},
		{name: "list transactions", method: "GET", path: "/api/transactions", expectedCode: http.StatusOK, expectedBody: `"time_display":"18:30"`},
		{name: "stats", method: "GET", path: "/api/stats", expectedCode: http.StatusOK, expectedBody: `"total_cash_display":"7.50 €"`},
		{name: "unknown transaction", method: "GET", path: "/api/transactions/missing", expectedCode: http.StatusNotFound},
		{name: "void unknown", method: "DELETE", path: "/api/transactions/missing", expectedCode: http.StatusNoContent},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := serve(router, testCase.method, testCase.path, testCase.body)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_cancelTransaction(t *testing.T) {
	svc := newRegister(service.PolicySoftCancel, nil)
	router := setupTestRouter(svc)
	svc.AddItem("Pinte")
	paid, _, err := svc.Pay(context.Background(), domain.PaymentCard)
	require.NoError(t, err)

	recorder := serve(router, "POST", "/api/transactions/"+paid.ID+"/cancel", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = serve(router, "GET", "/api/transactions/"+paid.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, true, body["cancelled"])

	recorder = serve(router, "POST", "/api/transactions/"+paid.ID+"/cancel", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_getCatalog(t *testing.T) {
	mockSvc := mocks.NewRegisterServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Catalog", "demi").Return(domain.Catalog{
		Menu: []domain.MenuCategory{{Category: "Bières", Items: []domain.CatalogItem{{Name: "Demi", Price: dec("3.50")}}}},
	}).Once()

	recorder := serve(router, "GET", "/api/catalog?q=demi", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	var catalog domain.Catalog
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&catalog))
	require.Len(t, catalog.Menu, 1)
	assert.Equal(t, "Demi", catalog.Menu[0].Items[0].Name)
}

func TestHandler_voidUsesPolicy(t *testing.T) {
	mockSvc := mocks.NewRegisterServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Void", mock.Anything, "tx-4").Return(true).Once()

	req := httptest.NewRequest("DELETE", "/api/transactions/tx-4", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "tx-4"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_getReceipt(t *testing.T) {
	mockSvc := mocks.NewRegisterServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		id           string
		prepareMocks func()
		expectedCode int
		expectedType string
	}{
		{
			name: "found",
			id:   "tx-1",
			prepareMocks: func() {
				mockSvc.On("Receipt", "tx-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedType: "image/png",
		},
		{
			name: "not found",
			id:   "tx-404",
			prepareMocks: func() {
				mockSvc.On("Receipt", "tx-404").Return(nil, domain.ErrTransactionNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "generator failure",
			id:   "tx-500",
			prepareMocks: func() {
				mockSvc.On("Receipt", "tx-500").Return(nil, assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := serve(router, "GET", "/api/transactions/"+testCase.id+"/receipt", "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedType != "" {
				assert.Equal(t, testCase.expectedType, recorder.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHandler_healthCheck(t *testing.T) {
	mockSvc := mocks.NewRegisterServiceInterface(t)
	router := setupTestRouter(mockSvc)
	mockSvc.On("Policy").Return(service.PolicyHardDelete).Once()

	recorder := serve(router, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"policy":"hard_delete"`)
}

func TestNewRouterAllowsCORS(t *testing.T) {
	handler := httpapi.NewRouter(httpapi.NewHandler(newRegister(service.PolicySoftCancel, nil), nil))

	req := httptest.NewRequest("OPTIONS", "/api/order", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
