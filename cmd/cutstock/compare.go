package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/piwi3910/cutstock/internal/engine"
)

func runCompare(args []string) error {
	fs := newFlagSet("compare")
	partsPath := fs.String("parts", "", "path to a parts list (.csv or .xlsx)")
	stocksPath := fs.String("stocks", "", "path to a stock catalog (.csv or .xlsx)")
	kerf := fs.Float64("kerf", 0, "saw kerf width")
	jointAllowance := fs.Float64("joint-allowance", 0, "extra length reserved when splitting an overlength part")
	maxSplitParts := fs.Int("max-split-parts", 2, "maximum segments an overlength part may be split into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *partsPath == "" || *stocksPath == "" {
		return fmt.Errorf("both -parts and -stocks are required")
	}

	parts, err := loadParts(*partsPath)
	if err != nil {
		return fmt.Errorf("load parts: %w", err)
	}
	stocks, err := loadStocks(*stocksPath)
	if err != nil {
		return fmt.Errorf("load stocks: %w", err)
	}

	scenarios := engine.BuildDefaultScenarios(*kerf, *jointAllowance, *maxSplitParts)
	results := engine.CompareScenarios(parts, stocks, scenarios)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTOCKS USED\tWASTE\tWASTE %\tNOT PLACED\tTIME (ms)\tERROR")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t%v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.2f%%\t%d\t%.2f\t\n",
			r.Scenario.Name,
			r.Result.TotalStocksUsed,
			r.Result.TotalWaste,
			r.Result.WastePercentage,
			len(r.Result.PartsNotPlaced),
			r.Result.ComputationTimeMS,
		)
	}
	return w.Flush()
}
