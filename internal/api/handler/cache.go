package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-insights-api/internal/usecases/loading"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

// CacheManager é a parte do cache exposta pelas rotas de diagnóstico
type CacheManager interface {
	Status() loading.Status
	Refresh(ctx context.Context) (*loading.Snapshot, error)
}

// WarmupScheduler é o agendador de aquecimento do cache
type WarmupScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// GetCacheStatus retorna o estado do cache e do agendador de aquecimento
func GetCacheStatus(cache CacheManager, warmup WarmupScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"cache": cache.Status(),
		}
		if warmup != nil {
			response["warmup"] = warmup.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// RefreshCache recarrega o dataset. Com ?async=true apenas dispara o aquecimento e responde 202.
func RefreshCache(cache CacheManager, warmup WarmupScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		async, _ := strconv.ParseBool(r.URL.Query().Get("async"))
		if async && warmup != nil {
			started := warmup.TriggerManualSync()
			logger.WithField("started", started).Info("cache: manual warm-up requested")

			message := "Recarga do cache iniciada"
			if !started {
				message = "Recarga do cache já em andamento"
			}
			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": message,
				"started": started,
			})
			return
		}

		logger.Info("cache: refreshing dataset")

		snapshot, err := cache.Refresh(r.Context())
		if err != nil {
			writeQueryError(w, r, "cache-refresh", err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Cache atualizado com sucesso",
			"version": snapshot.Version,
			"records": len(snapshot.Records),
			"dropped": snapshot.Dropped,
			"cache":   cache.Status(),
		})
	})
}
