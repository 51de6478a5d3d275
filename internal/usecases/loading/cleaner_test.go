package loading

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const header = "Retailer, Invoice Date ,Region,State,Product,Price per Unit,Units Sold,Total Sales,Operating Profit,Sales Method\n"

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		validate func(t *testing.T, result *CleanResult)
	}{
		{
			name: "Deve descartar linha com preço não numérico",
			csv: header +
				"R1,2021-04-03,West,CA,Shoe A,50,10,500,150,Online\n" +
				"R2,2021-04-05,East,NY,Shoe B,bad,5,300,90,Outlet\n",
			validate: func(t *testing.T, result *CleanResult) {
				require.Len(t, result.Records, 1)
				assert.Equal(t, 1, result.Dropped)

				record := result.Records[0]
				assert.Equal(t, "Shoe A", record.Product)
				assert.Equal(t, "West", record.Region)
				assert.Equal(t, "R1", record.Retailer)
				assert.Equal(t, "Online", record.SalesMethod)
				assert.Equal(t, "CA", record.State)
				assert.Equal(t, 50.0, record.PricePerUnit)
				assert.Equal(t, 500.0, record.TotalSales)
				assert.Equal(t, 10.0, record.UnitsSold)
				assert.Equal(t, time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC), record.InvoiceDate)
				assert.Equal(t, 2021, record.Year)
				assert.Equal(t, 4, record.Month)
				assert.Equal(t, map[string]string{"Operating Profit": "150"}, record.Extra)
			},
		},
		{
			name: "Deve interpretar a data com o dia primeiro",
			csv:  header + "R1,03/04/2021,West,CA,Shoe A,50,10,500,150,Online\n",
			validate: func(t *testing.T, result *CleanResult) {
				require.Len(t, result.Records, 1)
				assert.Equal(t, 4, result.Records[0].Month)
				assert.Equal(t, 3, result.Records[0].InvoiceDate.Day())
			},
		},
		{
			name: "Deve manter data que só é válida com o mês primeiro",
			csv: header +
				"R1,03/04/2021,West,CA,Shoe A,50,10,500,150,Online\n" +
				"R2,04/13/2021,East,NY,Shoe B,60,5,300,90,Outlet\n",
			validate: func(t *testing.T, result *CleanResult) {
				require.Len(t, result.Records, 2)
				assert.Zero(t, result.Dropped)

				assert.Equal(t, time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC), result.Records[0].InvoiceDate)
				assert.Equal(t, time.Date(2021, 4, 13, 0, 0, 0, 0, time.UTC), result.Records[1].InvoiceDate)
				assert.Equal(t, 4, result.Records[1].Month)
			},
		},
		{
			name: "Deve descartar linhas com valores ausentes ou não finitos",
			csv: header +
				"R1,2021-04-03,West,CA,Shoe A,,10,500,150,Online\n" +
				"R1,2021-04-03,West,CA,Shoe A,50,NaN,500,150,Online\n" +
				"R1,2021-04-03,West,CA,Shoe A,50,10,Inf,150,Online\n" +
				"R1,2021-04-03,West,CA,Shoe A,50,10,500,150,Online\n",
			validate: func(t *testing.T, result *CleanResult) {
				assert.Len(t, result.Records, 1)
				assert.Equal(t, 3, result.Dropped)
			},
		},
		{
			name: "Deve descartar linhas com data inválida",
			csv: header +
				"R1,sem data,West,CA,Shoe A,50,10,500,150,Online\n" +
				"R1,2021-04-03,West,CA,Shoe A,50,10,500,150,Online\n",
			validate: func(t *testing.T, result *CleanResult) {
				assert.Len(t, result.Records, 1)
				assert.Equal(t, 1, result.Dropped)
			},
		},
		{
			name: "Deve ignorar BOM no início do arquivo",
			csv:  "\xef\xbb\xbf" + header + "R1,2021-04-03,West,CA,Shoe A,50,10,500,150,Online\n",
			validate: func(t *testing.T, result *CleanResult) {
				assert.Len(t, result.Records, 1)
			},
		},
		{
			name: "Deve aceitar arquivo só com cabeçalho",
			csv:  header,
			validate: func(t *testing.T, result *CleanResult) {
				assert.Empty(t, result.Records)
				assert.Zero(t, result.Dropped)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Clean([]byte(tt.csv))
			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestClean_SchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		csv    string
		column string
	}{
		{
			name:   "Coluna obrigatória ausente",
			csv:    "Invoice Date,Product,Region,Retailer,Sales Method,State,Price per Unit,Units Sold\n2021-04-03,A,West,R1,Online,CA,50,10\n",
			column: domain.ColumnTotalSales,
		},
		{
			name:   "Arquivo vazio",
			csv:    "",
			column: domain.ColumnInvoiceDate,
		},
		{
			name: "CSV malformado",
			csv:  header + "R1,\"2021-04-03,West\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Clean([]byte(tt.csv))
			assert.Nil(t, result)

			var schemaErr *domain.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.column, schemaErr.Column)
			assert.True(t, domain.IsUpstreamError(err))
		})
	}
}

func TestClean_OnlyFiniteNumericsArePublished(t *testing.T) {
	csv := header +
		"R1,2021-04-03,West,CA,A,50,10,500,1,Online\n" +
		"R1,2021-04-03,West,CA,B,x,10,500,1,Online\n" +
		"R1,2021-04-03,West,CA,C,50,y,500,1,Online\n" +
		"R1,2021-04-03,West,CA,D,50,10,z,1,Online\n" +
		"R1,2021-04-03,West,CA,E, 7.5 ,2,15,1,Online\n"

	result, err := Clean([]byte(csv))
	require.NoError(t, err)

	products := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		products = append(products, record.Product)
	}
	assert.Equal(t, []string{"A", "E"}, products)
	assert.Equal(t, 7.5, result.Records[1].PricePerUnit)
}
