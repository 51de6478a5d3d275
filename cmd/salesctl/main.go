package main

import "github.com/vfg2006/sales-insights-api/internal/cli"

func main() {
	cli.Execute()
}
