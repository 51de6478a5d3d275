package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable agrupa as falhas de busca e validação do dataset
	ErrUpstreamUnavailable = errors.New("dataset indisponível")
	// ErrProcessing agrupa falhas inesperadas durante as agregações
	ErrProcessing = errors.New("erro ao processar dados")
)

// TransportError representa uma falha ao buscar o dataset remoto
type TransportError struct {
	URL        string
	StatusCode int // zero quando a falha aconteceu antes de haver resposta
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("falha ao buscar dados de %s: status %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("falha ao buscar dados de %s: %s", e.URL, e.Err.Error())
	}
	return fmt.Sprintf("falha ao buscar dados de %s", e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// SchemaError indica que o payload não pôde ser lido ou não tem uma coluna obrigatória
type SchemaError struct {
	Column string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("coluna %s não encontrada nos dados", e.Column)
	}
	return fmt.Sprintf("dados em formato inválido: %s", e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// ProcessingError envolve qualquer falha inesperada durante uma consulta
type ProcessingError struct {
	Query string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("erro ao processar %s: %v", e.Query, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func (e *ProcessingError) Is(target error) bool {
	return target == ErrProcessing
}

// IsUpstreamError verifica se o erro veio da busca ou da validação do dataset
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
