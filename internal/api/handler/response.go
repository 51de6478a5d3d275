package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON converte o valor para a forma de transporte e escreve a resposta
func writeJSON(w http.ResponseWriter, r *http.Request, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(utils.ToTransport(value)); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to encode response")
	}
}

// writeQueryError registra e traduz o erro de uma consulta para a resposta da API
func writeQueryError(w http.ResponseWriter, r *http.Request, query string, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"query": query,
		"error": err.Error(),
	})

	switch {
	case r.Context().Err() != nil && errors.Is(err, r.Context().Err()):
		logger.Warn("handler: request cancelled before the dataset was ready")
	case domain.IsUpstreamError(err):
		logger.Error("handler: dataset unavailable")
	default:
		logger.Error("handler: failed to process query")
	}

	apiErrors.WriteDomainError(w, err)
}

// serveQuery executa a consulta e escreve o resultado ou o erro correspondente
func serveQuery[T any](w http.ResponseWriter, r *http.Request, query string, run func() (T, error)) {
	result, err := run()
	if err != nil {
		writeQueryError(w, r, query, err)
		return
	}

	log.ForContext(r.Context()).WithField("query", query).Debug("handler: query served")
	writeJSON(w, r, http.StatusOK, result)
}
