package datasetclient

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// FetchRaw faz um único GET no dataset. Qualquer falha de rede, timeout ou
// status diferente de 2xx é retornada como *domain.TransportError.
func (c *DatasetClient) FetchRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: c.url, Err: errors.Wrap(err, "erro ao criar a requisição")}
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	logrus.WithField("url", c.url).Debug("dataset: buscando CSV remoto")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: c.url, Err: errors.Wrap(err, "erro ao executar a requisição")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.TransportError{
			URL:        c.url,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("requisição falhou com status: %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{URL: c.url, Err: errors.Wrap(err, "erro ao ler a resposta")}
	}

	logrus.WithFields(logrus.Fields{
		"url":   c.url,
		"bytes": len(data),
	}).Debug("dataset: CSV remoto recebido")

	return data, nil
}
