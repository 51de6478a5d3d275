// Package cli implementa o salesctl, que executa as mesmas consultas da API direto no terminal
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/loading"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

// ClientFactory cria o cliente do dataset a partir da configuração final
type ClientFactory func(cfg *config.Config) datasetclient.Client

// options guarda as flags globais de uma execução
type options struct {
	datasetURL string
	timeout    time.Duration
	output     string
	debug      bool
}

// app liga flags, configuração e serviço de análises
type app struct {
	opts      options
	newClient ClientFactory
	loadCfg   func() (*config.Config, error)
}

// NewRootCommand monta o comando raiz do salesctl
func NewRootCommand(newClient ClientFactory) *cobra.Command {
	a := &app{
		newClient: newClient,
		loadCfg:   config.NewConfig,
	}

	root := &cobra.Command{
		Use:           "salesctl",
		Short:         "Consultas sobre o dataset de vendas de varejo",
		Long:          `salesctl baixa o dataset de vendas configurado e imprime as mesmas análises expostas pela API, em JSON ou YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.output != outputJSON && a.opts.output != outputYAML {
				return fmt.Errorf("--output deve ser %q ou %q", outputJSON, outputYAML)
			}
			if a.opts.debug {
				log.Setup("debug")
			} else {
				log.Setup("warn")
			}
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.opts.datasetURL, "url", "", "URL do CSV de vendas (sobrepõe DATASET_URL)")
	f.DurationVar(&a.opts.timeout, "timeout", 0, "timeout da busca do dataset (sobrepõe DATASET_TIMEOUT)")
	f.StringVarP(&a.opts.output, "output", "o", outputJSON, "formato de saída: json ou yaml")
	f.BoolVar(&a.opts.debug, "debug", false, "habilita logs de depuração")

	root.AddCommand(
		a.summaryCommand(),
		a.monthlyTrendsCommand(),
		a.topProductsCommand(),
		a.regionsCommand(),
		a.correlationCommand(),
		a.statesCommand(),
		a.retailersCommand(),
		a.salesMethodsCommand(),
		a.filterCommand(),
		a.debugCommand(),
	)

	return root
}

// Execute é o ponto de entrada chamado pelo main do salesctl
func Execute() {
	root := NewRootCommand(datasetclient.NewClient)
	if err := root.Execute(); err != nil {
		apiErr := apiErrors.FromError(err)
		fmt.Fprintf(os.Stderr, "✗ Erro [%s]: %v\n", apiErr.Code, err)
		os.Exit(1)
	}
}

// analyzer carrega a configuração, aplica as flags e cria o serviço de análises
func (a *app) analyzer() (analyzing.Analyzer, error) {
	cfg, err := a.loadCfg()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if a.opts.datasetURL != "" {
		cfg.Dataset.URL = a.opts.datasetURL
	}
	if a.opts.timeout > 0 {
		cfg.Dataset.Timeout = a.opts.timeout
	}

	cache := loading.NewCache(a.newClient(cfg))
	return analyzing.NewService(cache), nil
}

// run executa a consulta e imprime o resultado no formato escolhido
func run[T any](a *app, cmd *cobra.Command, query func(ctx context.Context, service analyzing.Analyzer) (T, error)) error {
	service, err := a.analyzer()
	if err != nil {
		return err
	}

	result, err := query(cmd.Context(), service)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), a.opts.output, result)
}
