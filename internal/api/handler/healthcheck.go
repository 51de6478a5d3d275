package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler responde à sonda de liveness sem tocar no cache
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

// RootHandler descreve a API e lista os endpoints disponíveis
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"message":     "Sales Insights API",
			"description": "API de análise do dataset de vendas de varejo",
			"endpoints": map[string]string{
				"/summary":               "Estatísticas gerais do dataset",
				"/monthly-trends":        "Tendências mensais por ano (?year=)",
				"/top-products":          "Produtos com mais vendas (?limit=10)",
				"/region-distribution":   "Distribuição de vendas por região",
				"/price-correlation":     "Correlação entre preço e unidades vendidas",
				"/state-analysis":        "Análise por estado (?limit=15)",
				"/retailer-analysis":     "Desempenho por varejista",
				"/sales-method-analysis": "Desempenho por método de venda",
				"/filtered-data":         "Dados filtrados (POST)",
				"/debug-data":            "Diagnóstico do snapshot em cache",
				"/cache/status":          "Estado do cache do dataset",
				"/cache/refresh":         "Recarga do cache (POST)",
				"/health":                "Sonda de liveness",
			},
		})
	})
}
