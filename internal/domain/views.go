package domain

// DataPeriod descreve o intervalo de datas coberto pelo dataset
type DataPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Years     []int  `json:"years"`
}

type SummaryStatistics struct {
	TotalRecords    int        `json:"total_records"`
	TotalSales      float64    `json:"total_sales"`
	TotalUnits      int64      `json:"total_units"`
	AvgPricePerUnit float64    `json:"avg_price_per_unit"`
	UniqueProducts  int        `json:"unique_products"`
	UniqueRegions   int        `json:"unique_regions"`
	UniqueRetailers int        `json:"unique_retailers"`
	UniqueStates    int        `json:"unique_states"`
	DataPeriod      DataPeriod `json:"data_period"`
}

// MonthlyTrend guarda as séries de um ano, alinhadas pelo índice
type MonthlyTrend struct {
	Months   []int     `json:"months"`
	Sales    []float64 `json:"sales"`
	Units    []float64 `json:"units"`
	AvgPrice []float64 `json:"avg_price"`
}

// MonthlyTrends é indexado pelo ano em texto (ex: "2021")
type MonthlyTrends map[string]*MonthlyTrend

type ProductPerformance struct {
	Product      string  `json:"product"`
	TotalSales   float64 `json:"total_sales"`
	UnitsSold    int64   `json:"units_sold"`
	AvgPrice     float64 `json:"avg_price"`
	Transactions int     `json:"transactions"`
}

type TopProductsSummary struct {
	TotalProducts         int     `json:"total_products"`
	TotalSalesAll         float64 `json:"total_sales_all"`
	TopProductsSales      float64 `json:"top_products_sales"`
	TopProductsPercentage float64 `json:"top_products_percentage"`
	Analysis              string  `json:"analysis"`
}

type TopProducts struct {
	TopProducts []ProductPerformance `json:"top_products"`
	Summary     TopProductsSummary   `json:"summary"`
}

type RegionDistribution struct {
	Regions         []string  `json:"regions"`
	Sales           []float64 `json:"sales"`
	Units           []float64 `json:"units"`
	AvgPrice        []float64 `json:"avg_price"`
	Transactions    []int     `json:"transactions"`
	SalesPercentage []float64 `json:"sales_percentage"`
}

type PriceCorrelation struct {
	Correlation    float64   `json:"correlation"`
	PricePerUnit   []float64 `json:"price_per_unit"`
	UnitsSold      []float64 `json:"units_sold"`
	TotalSales     []float64 `json:"total_sales"`
	Products       []string  `json:"products"`
	SampleSize     int       `json:"sample_size"`
	Interpretation string    `json:"interpretation"`
}

type StatePerformance struct {
	State           string  `json:"state"`
	TotalSales      float64 `json:"total_sales"`
	UnitsSold       int64   `json:"units_sold"`
	Region          string  `json:"region"`
	AvgPrice        float64 `json:"avg_price"`
	Transactions    int     `json:"transactions"`
	SalesPercentage float64 `json:"sales_percentage"`
	AvgPricePerUnit float64 `json:"avg_price_per_unit"`
}

type StateAnalysisSummary struct {
	TotalStatesAnalyzed int     `json:"total_states_analyzed"`
	TotalSalesAll       float64 `json:"total_sales_all"`
	Analysis            string  `json:"analysis"`
}

type StateAnalysis struct {
	States  []StatePerformance   `json:"state_analysis"`
	Summary StateAnalysisSummary `json:"summary"`
}

type RetailerAnalysis struct {
	Retailers    []string  `json:"retailers"`
	Sales        []float64 `json:"sales"`
	Units        []float64 `json:"units"`
	AvgPrice     []float64 `json:"avg_price"`
	Transactions []int     `json:"transactions"`
}

type SalesMethodAnalysis struct {
	Methods      []string  `json:"methods"`
	Sales        []float64 `json:"sales"`
	Units        []float64 `json:"units"`
	AvgPrice     []float64 `json:"avg_price"`
	Transactions []int     `json:"transactions"`
}

// Row é uma linha do dataset já em formato seguro para transporte
type Row map[string]any

type FilteredData struct {
	Rows           []Row          `json:"filtered_data"`
	TotalRecords   int            `json:"total_records"`
	AppliedFilters map[string]any `json:"applied_filters"`
}

type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type SnapshotInfo struct {
	Version     string `json:"version"`
	FetchedAt   string `json:"fetched_at"`
	DroppedRows int    `json:"dropped_rows"`
}

type DebugData struct {
	TotalRecords       int          `json:"total_records"`
	YearsAvailable     []int        `json:"years_available"`
	RegionsAvailable   []string     `json:"regions_available"`
	ProductsAvailable  []string     `json:"products_available"`
	RetailersAvailable []string     `json:"retailers_available"`
	StatesAvailable    []string     `json:"states_available"`
	DateRange          DateRange    `json:"date_range"`
	SampleData         []Row        `json:"sample_data"`
	Snapshot           SnapshotInfo `json:"snapshot"`
}
