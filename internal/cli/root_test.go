package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/dataset/mocks"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const salesCSV = "Invoice Date,Product,Region,Retailer,Sales Method,State,Price per Unit,Total Sales,Units Sold\n" +
	"2021-04-03,Shoe A,West,Foot Locker,Online,California,50,500,10\n" +
	"2021-04-05,Shoe B,Northeast,Walmart,Outlet,New York,60,300,5\n" +
	"2020-06-01,Shoe C,South,Kohl's,In-store,Texas,40,400,10\n"

// runCLI executa o comando raiz com os argumentos e devolve a saída padrão
func runCLI(t *testing.T, factory ClientFactory, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(factory)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func mockFactory(t *testing.T, setup func(client *mocks.MockClient)) (ClientFactory, *config.Config) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	setup(client)

	captured := &config.Config{}
	return func(cfg *config.Config) datasetclient.Client {
		*captured = *cfg
		return client
	}, captured
}

func TestSummaryCommand_JSON(t *testing.T) {
	factory, cfg := mockFactory(t, func(client *mocks.MockClient) {
		client.EXPECT().FetchRaw(gomock.Any()).Return([]byte(salesCSV), nil)
	})

	out, err := runCLI(t, factory, "summary", "--url", "http://localhost/vendas.csv", "--timeout", "5s")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 3.0, body["total_records"])
	assert.Equal(t, 1200.0, body["total_sales"])

	assert.Equal(t, "http://localhost/vendas.csv", cfg.Dataset.URL)
	assert.Equal(t, 5*time.Second, cfg.Dataset.Timeout)
}

func TestTopProductsCommand_YAML(t *testing.T) {
	factory, _ := mockFactory(t, func(client *mocks.MockClient) {
		client.EXPECT().FetchRaw(gomock.Any()).Return([]byte(salesCSV), nil)
	})

	out, err := runCLI(t, factory, "top-products", "--limit", "2", "-o", "yaml")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &body))

	products := body["top_products"].([]any)
	require.Len(t, products, 2)
	assert.Equal(t, "Shoe A", products[0].(map[string]any)["product"])
	assert.Equal(t, "Shoe C", products[1].(map[string]any)["product"])
}

func TestFilterCommand(t *testing.T) {
	factory, _ := mockFactory(t, func(client *mocks.MockClient) {
		client.EXPECT().FetchRaw(gomock.Any()).Return([]byte(salesCSV), nil)
	})

	out, err := runCLI(t, factory, "filter", "--year", "2021", "--region", "West", "--region", "South")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 1.0, body["total_records"])

	rows := body["filtered_data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Shoe A", rows[0].(map[string]any)["Product"])
}

func TestFilterCommand_LabelWithComma(t *testing.T) {
	csv := salesCSV + "2021-05-10,\"Shoe D, Limited\",West,Foot Locker,Online,California,80,800,10\n"

	factory, _ := mockFactory(t, func(client *mocks.MockClient) {
		client.EXPECT().FetchRaw(gomock.Any()).Return([]byte(csv), nil)
	})

	out, err := runCLI(t, factory, "filter", "--product", "Shoe D, Limited")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 1.0, body["total_records"])
	assert.Equal(t, map[string]any{"products": []any{"Shoe D, Limited"}}, body["applied_filters"])

	rows := body["filtered_data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Shoe D, Limited", rows[0].(map[string]any)["Product"])
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, err error)
	}{
		{
			name:  "Formato de saída inválido",
			args:  []string{"summary", "-o", "xml"},
			setup: func(client *mocks.MockClient) {},
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--output")
			},
		},
		{
			name:  "Limite inválido",
			args:  []string{"states", "--limit", "0"},
			setup: func(client *mocks.MockClient) {},
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--limit")
			},
		},
		{
			name: "Dataset indisponível",
			args: []string{"regions"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().FetchRaw(gomock.Any()).Return(nil, &domain.TransportError{URL: "http://dataset", StatusCode: 503})
			},
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, domain.IsUpstreamError(err))
			},
		},
		{
			name: "Schema inválido",
			args: []string{"debug"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().FetchRaw(gomock.Any()).Return([]byte(strings.Replace(salesCSV, "Units Sold", "Units", 1)), nil)
			},
			validate: func(t *testing.T, err error) {
				var schemaErr *domain.SchemaError
				require.ErrorAs(t, err, &schemaErr)
				assert.Equal(t, domain.ColumnUnitsSold, schemaErr.Column)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, _ := mockFactory(t, tt.setup)
			_, err := runCLI(t, factory, tt.args...)
			tt.validate(t, err)
		})
	}
}
