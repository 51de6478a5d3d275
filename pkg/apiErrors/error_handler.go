package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Parâmetro ou corpo inválido

	// Erros do dataset
	ErrDatasetUnavailable = "DATA_001" // Falha ao buscar o dataset remoto
	ErrDatasetSchema      = "DATA_002" // Dataset com schema inválido

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro ao processar os dados
	ErrNotFound       = "SRV_404" // Rota inexistente
	ErrNotAllowed     = "SRV_405" // Método não permitido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrDatasetUnavailable: http.StatusServiceUnavailable,
	ErrDatasetSchema:      http.StatusServiceUnavailable,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrNotAllowed:         http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError classifica um erro do domínio no código de API correspondente
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		details := map[string]any{"url": transportErr.URL}
		if transportErr.StatusCode != 0 {
			details["status_code"] = transportErr.StatusCode
		}
		return APIError{
			Code:    ErrDatasetUnavailable,
			Message: "Dataset indisponível: " + err.Error(),
			Details: details,
		}
	}

	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		return APIError{
			Code:    ErrDatasetSchema,
			Message: "Dataset inválido: " + err.Error(),
			Details: map[string]any{"column": schemaErr.Column},
		}
	}

	return APIError{
		Code:    ErrInternalServer,
		Message: "Erro ao processar dados: " + err.Error(),
	}
}

// WriteDomainError classifica o erro e escreve a resposta correspondente
func WriteDomainError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
