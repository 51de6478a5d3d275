package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
)

func (a *app) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Estatísticas gerais do dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.SummaryStatistics, error) {
				return s.GetSummary(ctx)
			})
		},
	}
}

func (a *app) monthlyTrendsCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "monthly-trends",
		Short: "Vendas, unidades e preço médio por mês",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var yearFilter *int
			if cmd.Flags().Changed("year") {
				yearFilter = &year
			}
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (domain.MonthlyTrends, error) {
				return s.GetMonthlyTrends(ctx, yearFilter)
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "restringe a um ano")
	return cmd
}

func (a *app) topProductsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-products",
		Short: "Produtos com mais vendas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit deve ser maior ou igual a 1")
			}
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.TopProducts, error) {
				return s.GetTopProducts(ctx, limit)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", analyzing.DefaultTopProductsLimit, "quantidade de produtos")
	return cmd
}

func (a *app) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Distribuição de vendas por região",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.RegionDistribution, error) {
				return s.GetRegionDistribution(ctx)
			})
		},
	}
}

func (a *app) correlationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "price-correlation",
		Short: "Correlação entre preço por unidade e unidades vendidas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.PriceCorrelation, error) {
				return s.GetPriceCorrelation(ctx)
			})
		},
	}
}

func (a *app) statesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "states",
		Short: "Estados com mais vendas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit deve ser maior ou igual a 1")
			}
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.StateAnalysis, error) {
				return s.GetStateAnalysis(ctx, limit)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", analyzing.DefaultStateAnalysisLimit, "quantidade de estados")
	return cmd
}

func (a *app) retailersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "retailers",
		Short: "Desempenho por varejista",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.RetailerAnalysis, error) {
				return s.GetRetailerAnalysis(ctx)
			})
		},
	}
}

func (a *app) salesMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sales-methods",
		Short: "Desempenho por método de venda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.SalesMethodAnalysis, error) {
				return s.GetSalesMethodAnalysis(ctx)
			})
		},
	}
}

func (a *app) filterCommand() *cobra.Command {
	var (
		years     []int
		regions   []string
		products  []string
		retailers []string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Linhas que atendem aos filtros (até 1000)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := domain.DataFilters{
				Years:     domain.YearList(years),
				Regions:   regions,
				Products:  products,
				Retailers: retailers,
			}
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.FilteredData, error) {
				return s.GetFilteredData(ctx, filters)
			})
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&years, "year", nil, "anos aceitos (repetível)")
	f.StringArrayVar(&regions, "region", nil, "regiões aceitas (repetível)")
	f.StringArrayVar(&products, "product", nil, "produtos aceitos (repetível)")
	f.StringArrayVar(&retailers, "retailer", nil, "varejistas aceitos (repetível)")
	return cmd
}

func (a *app) debugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Diagnóstico do dataset carregado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, s analyzing.Analyzer) (*domain.DebugData, error) {
				return s.GetDebugData(ctx)
			})
		},
	}
}
