package loading

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// DefaultStaleAfter é a janela de validade do snapshot em cache
const DefaultStaleAfter = 300 * time.Second

// State é o estado atual do cache
type State string

const (
	StateEmpty   State = "empty"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Snapshot é a tabela publicada no cache. Não deve ser alterada depois de publicada.
type Snapshot struct {
	Records   []domain.SalesRecord
	FetchedAt time.Time
	Version   string
	Dropped   int
}

// TableProvider entrega o snapshot atual do dataset
type TableProvider interface {
	GetTable(ctx context.Context) (*Snapshot, error)
}

// Status resume o estado do cache para diagnóstico
type Status struct {
	State              State   `json:"state"`
	Version            string  `json:"version,omitempty"`
	Records            int     `json:"records"`
	FetchedAt          string  `json:"fetched_at,omitempty"`
	StaleAfterSeconds  float64 `json:"stale_after_seconds"`
	LastRefreshSeconds float64 `json:"last_refresh_seconds"`
	LastError          string  `json:"last_error,omitempty"`
}

// inflight representa um carregamento em andamento compartilhado pelos chamadores
type inflight struct {
	done     chan struct{}
	snapshot *Snapshot
	err      error
}

// Cache mantém o dataset limpo em memória e decide quando buscar de novo
type Cache struct {
	client     datasetclient.Client
	staleAfter time.Duration
	now        func() time.Time

	mu          sync.Mutex
	snapshot    *Snapshot
	loading     *inflight
	lastErr     error
	lastRefresh time.Duration
}

// Option customiza o Cache
type Option func(*Cache)

// WithStaleAfter altera a janela de validade do snapshot
func WithStaleAfter(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.staleAfter = d
		}
	}
}

// WithClock troca a fonte de tempo, usado nos testes
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache cria um cache vazio; o primeiro GetTable dispara a carga
func NewCache(client datasetclient.Client, opts ...Option) *Cache {
	c := &Cache{
		client:     client,
		staleAfter: DefaultStaleAfter,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetTable retorna o snapshot atual, recarregando quando vazio ou vencido.
// Chamadores concorrentes durante uma carga aguardam a mesma busca.
func (c *Cache) GetTable(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	if c.snapshot != nil && c.now().Sub(c.snapshot.FetchedAt) < c.staleAfter {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot, nil
	}
	load := c.startLoadLocked()
	c.mu.Unlock()

	return wait(ctx, load)
}

// Refresh força uma nova carga, reaproveitando uma carga que já esteja em andamento
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	load := c.startLoadLocked()
	c.mu.Unlock()

	return wait(ctx, load)
}

// Status retorna o estado atual do cache
func (c *Cache) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{
		State:              StateEmpty,
		StaleAfterSeconds:  c.staleAfter.Seconds(),
		LastRefreshSeconds: utils.DurationSeconds(c.lastRefresh),
	}

	if c.snapshot != nil {
		status.State = StateReady
		status.Version = c.snapshot.Version
		status.Records = len(c.snapshot.Records)
		status.FetchedAt = c.snapshot.FetchedAt.Format(time.RFC3339)
	}
	if c.loading != nil {
		status.State = StateLoading
	}
	if c.lastErr != nil {
		status.LastError = c.lastErr.Error()
	}

	return status
}

func wait(ctx context.Context, load *inflight) (*Snapshot, error) {
	select {
	case <-load.done:
		return load.snapshot, load.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// startLoadLocked inicia uma carga se nenhuma estiver em andamento. Deve ser chamado com mu travado.
func (c *Cache) startLoadLocked() *inflight {
	if c.loading != nil {
		return c.loading
	}

	load := &inflight{done: make(chan struct{})}
	c.loading = load

	// A carga não depende do contexto de quem a iniciou: se o chamador desistir,
	// ela termina e publica o snapshot mesmo assim.
	go c.load(load)

	return load
}

func (c *Cache) load(load *inflight) {
	startTime := time.Now()
	logrus.Info("loading: atualizando dataset de vendas")

	snapshot, err := c.safeFetchAndClean()

	c.mu.Lock()
	if err != nil {
		c.lastErr = err
	} else {
		c.snapshot = snapshot
		c.lastErr = nil
	}
	c.lastRefresh = time.Since(startTime)
	c.loading = nil
	c.mu.Unlock()

	load.snapshot, load.err = snapshot, err
	close(load.done)

	if err != nil {
		logrus.WithError(err).Error("loading: falha ao atualizar dataset, mantendo snapshot anterior")
		return
	}

	logrus.WithFields(logrus.Fields{
		"version":  snapshot.Version,
		"records":  len(snapshot.Records),
		"dropped":  snapshot.Dropped,
		"duration": time.Since(startTime).String(),
	}).Info("loading: dataset atualizado")
}

// safeFetchAndClean converte um panic durante a carga em ProcessingError,
// mantendo o snapshot anterior publicado
func (c *Cache) safeFetchAndClean() (snapshot *Snapshot, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.WithField("panic", recovered).Error("loading: falha inesperada ao carregar dataset")

			snapshot = nil
			err = &domain.ProcessingError{Query: "dataset_load", Err: fmt.Errorf("%v", recovered)}
		}
	}()

	return c.fetchAndClean()
}

func (c *Cache) fetchAndClean() (*Snapshot, error) {
	raw, err := c.client.FetchRaw(context.Background())
	if err != nil {
		return nil, err
	}

	cleaned, err := Clean(raw)
	if err != nil {
		return nil, err
	}

	fetchedAt := c.now()

	return &Snapshot{
		Records:   cleaned.Records,
		FetchedAt: fetchedAt,
		Version:   utils.NewSnapshotVersion(fetchedAt),
		Dropped:   cleaned.Dropped,
	}, nil
}
