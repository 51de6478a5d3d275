package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// maxFilterBodyBytes limita o corpo aceito em /filtered-data
const maxFilterBodyBytes = 1 << 20

// parseOptionalInt lê um parâmetro inteiro opcional da query string
func parseOptionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parâmetro %s inválido: %q não é um número inteiro", name, raw)
	}
	return &value, nil
}

// parseLimit lê um limite positivo, usando o padrão quando ausente
func parseLimit(r *http.Request, defaultLimit int) (int, error) {
	limit, err := parseOptionalInt(r, "limit")
	if err != nil {
		return 0, err
	}
	if limit == nil {
		return defaultLimit, nil
	}
	if *limit < 1 {
		return 0, fmt.Errorf("parâmetro limit inválido: deve ser maior ou igual a 1")
	}
	return *limit, nil
}

// decodeFilters lê o corpo de /filtered-data. Corpo vazio significa nenhum filtro.
func decodeFilters(r *http.Request) (domain.DataFilters, error) {
	var filters domain.DataFilters
	if r.Body == nil {
		return filters, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxFilterBodyBytes))
	if err != nil {
		return filters, fmt.Errorf("erro ao ler corpo da requisição: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return filters, nil
	}

	if err := json.Unmarshal(body, &filters); err != nil {
		return domain.DataFilters{}, fmt.Errorf("filtros inválidos: %w", err)
	}
	return filters, nil
}
