package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/dataset/mocks"
	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/loading"
	"go.uber.org/mock/gomock"
)

const salesCSV = "Retailer,Retailer ID,Invoice Date,Region,State,City,Product,Price per Unit,Units Sold,Total Sales,Operating Profit,Sales Method\n" +
	"Foot Locker,1185732,01/04/2021,West,California,Los Angeles,Men's Street Footwear,50,10,500,150,Online\n" +
	"Walmart,1128299,02/04/2021,Northeast,New York,New York,Women's Apparel,60,5,300,90,In-store\n" +
	"Amazon,1185732,05/05/2020,South,Texas,Houston,Men's Athletic Footwear,45,20,900,270,Outlet\n"

func newTestRouter(t *testing.T, setup func(client *mocks.MockClient)) http.Handler {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	if setup != nil {
		setup(client)
	}

	cache := loading.NewCache(client)
	service := analyzing.NewService(cache)

	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Sales(service)...),
		router.WithRoutes(Cache(cache, nil)...),
	)
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func expectDataset(client *mocks.MockClient) {
	client.EXPECT().FetchRaw(gomock.Any()).Return([]byte(salesCSV), nil).Times(1)
}

func TestSalesHandlers(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Resumo do dataset",
			method: http.MethodGet,
			target: "/summary",
			setup:  expectDataset,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				body := decodeBody(t, rec)
				assert.Equal(t, 3.0, body["total_records"])
				assert.Equal(t, 1700.0, body["total_sales"])
				assert.Equal(t, 35.0, body["total_units"])

				period := body["data_period"].(map[string]any)
				assert.Equal(t, "2020-05-05", period["start_date"])
				assert.Equal(t, "2021-04-02", period["end_date"])
				assert.Equal(t, []any{2020.0, 2021.0}, period["years"])
			},
		},
		{
			name:   "Tendências mensais de um ano",
			method: http.MethodGet,
			target: "/monthly-trends?year=2021",
			setup:  expectDataset,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)

				body := decodeBody(t, rec)
				require.Len(t, body, 1)
				trend := body["2021"].(map[string]any)
				assert.Equal(t, []any{4.0}, trend["months"])
				assert.Equal(t, []any{800.0}, trend["sales"])
				assert.Equal(t, []any{15.0}, trend["units"])
			},
		},
		{
			name:   "Ano inválido",
			method: http.MethodGet,
			target: "/monthly-trends?year=vinte",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_001", decodeBody(t, rec)["code"])
			},
		},
		{
			name:   "Top produtos com limite",
			method: http.MethodGet,
			target: "/top-products?limit=1",
			setup:  expectDataset,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)

				body := decodeBody(t, rec)
				products := body["top_products"].([]any)
				require.Len(t, products, 1)
				assert.Equal(t, "Men's Athletic Footwear", products[0].(map[string]any)["product"])
			},
		},
		{
			name:   "Limite não numérico",
			method: http.MethodGet,
			target: "/top-products?limit=abc",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_001", decodeBody(t, rec)["code"])
			},
		},
		{
			name:   "Limite menor que um",
			method: http.MethodGet,
			target: "/state-analysis?limit=0",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_001", decodeBody(t, rec)["code"])
			},
		},
		{
			name:   "Dados filtrados por região",
			method: http.MethodPost,
			target: "/filtered-data",
			body:   `{"regions": ["West"]}`,
			setup:  expectDataset,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)

				body := decodeBody(t, rec)
				assert.Equal(t, 1.0, body["total_records"])

				rows := body["filtered_data"].([]any)
				require.Len(t, rows, 1)
				row := rows[0].(map[string]any)
				assert.Equal(t, "2021-04-01", row["Invoice Date"])
				assert.Equal(t, 150.0, row["Operating Profit"])
				assert.Equal(t, "Los Angeles", row["City"])

				assert.Equal(t, map[string]any{"regions": []any{"West"}}, body["applied_filters"])
			},
		},
		{
			name:   "Anos como texto e corpo vazio",
			method: http.MethodPost,
			target: "/filtered-data",
			body:   `{"years": ["2020"]}`,
			setup:  expectDataset,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, 1.0, decodeBody(t, rec)["total_records"])
			},
		},
		{
			name:   "Filtros devolvidos como recebidos",
			method: http.MethodPost,
			target: "/filtered-data",
			body:   `{"regions": [], "years": ["2020"]}`,
			setup:  expectDataset,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)

				body := decodeBody(t, rec)
				assert.Equal(t, 1.0, body["total_records"])
				assert.Equal(t, map[string]any{
					"regions": []any{},
					"years":   []any{"2020"},
				}, body["applied_filters"])
			},
		},
		{
			name:   "Corpo inválido",
			method: http.MethodPost,
			target: "/filtered-data",
			body:   `{"regions": "West"`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_001", decodeBody(t, rec)["code"])
			},
		},
		{
			name:   "Falha de transporte",
			method: http.MethodGet,
			target: "/region-distribution",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().FetchRaw(gomock.Any()).Return(nil, &domain.TransportError{
					URL: "http://dataset", Err: errors.New("connection refused"),
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

				body := decodeBody(t, rec)
				assert.Equal(t, "DATA_001", body["code"])
				assert.Contains(t, body["message"], "connection refused")
			},
		},
		{
			name:   "Dataset sem coluna obrigatória",
			method: http.MethodGet,
			target: "/retailer-analysis",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().FetchRaw(gomock.Any()).Return([]byte("Retailer,Region\nWalmart,West\n"), nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

				body := decodeBody(t, rec)
				assert.Equal(t, "DATA_002", body["code"])
				assert.Equal(t, map[string]any{"column": "Invoice Date"}, body["details"])
			},
		},
		{
			name:   "Health não toca no cache",
			method: http.MethodGet,
			target: "/health",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)

				body := decodeBody(t, rec)
				assert.Equal(t, "healthy", body["status"])
				assert.NotEmpty(t, body["timestamp"])
			},
		},
		{
			name:   "Rota inexistente",
			method: http.MethodGet,
			target: "/nao-existe",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, "SRV_404", decodeBody(t, rec)["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestRouter(t, tt.setup)
			tt.validate(t, serve(rt, tt.method, tt.target, tt.body))
		})
	}
}

func TestCacheHandlers(t *testing.T) {
	rt := newTestRouter(t, expectDataset)

	rec := serve(rt, http.MethodGet, "/cache/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)["cache"].(map[string]any)
	assert.Equal(t, "empty", status["state"])
	assert.Equal(t, 300.0, status["stale_after_seconds"])

	rec = serve(rt, http.MethodPost, "/cache/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, 3.0, body["records"])
	assert.NotEmpty(t, body["version"])

	// snapshot recém carregado atende as consultas sem nova busca
	rec = serve(rt, http.MethodGet, "/debug-data", "")
	require.Equal(t, http.StatusOK, rec.Code)
	debug := decodeBody(t, rec)
	assert.Equal(t, 3.0, debug["total_records"])
	assert.Equal(t, body["version"], debug["snapshot"].(map[string]any)["version"])

	rec = serve(rt, http.MethodGet, "/cache/status", "")
	status = decodeBody(t, rec)["cache"].(map[string]any)
	assert.Equal(t, "ready", status["state"])
	assert.Equal(t, 3.0, status["records"])
}

func TestMethodNotAllowed(t *testing.T) {
	rt := newTestRouter(t, nil)

	rec := serve(rt, http.MethodGet, "/filtered-data", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "SRV_405", decodeBody(t, rec)["code"])
}
