package datasetclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-insights-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

// Client busca o conteúdo bruto do dataset remoto
type Client interface {
	FetchRaw(ctx context.Context) ([]byte, error)
}

type DatasetClient struct {
	httpClient *http.Client
	url        string
}

// NewClient cria um cliente HTTP para o dataset configurado
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Dataset.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &DatasetClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url: cfg.Dataset.URL,
	}
}
