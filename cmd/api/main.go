package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/sales-insights-api/internal/api"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/scheduler"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/loading"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetClient := datasetclient.NewClient(cfg)

	cache := loading.NewCache(datasetClient, loading.WithStaleAfter(cfg.Cache.TTL))
	analyzer := analyzing.NewService(cache)

	cacheWarmupService := scheduler.NewCacheWarmupService(cache, cfg)
	if err := cacheWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do cache")
	} else if cfg.CacheWarmup.Enabled {
		logrus.Info("Agendador de aquecimento do cache iniciado com sucesso")
		cacheWarmupService.TriggerManualSync()
	}

	logrus.WithFields(logrus.Fields{
		"dataset_url": cfg.Dataset.URL,
		"cache_ttl":   cfg.Cache.TTL.String(),
		"timeout":     cfg.Dataset.Timeout.Round(time.Second).String(),
	}).Info("Fonte de dados configurada")

	server, err := api.New(cfg, analyzer, cache, cacheWarmupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
