package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/piwi3910/cutstock/internal/project"
)

func runProfiles(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: cutstock profiles list|add-stock|add-kerf")
	}

	switch args[0] {
	case "list":
		return listProfiles()
	case "add-stock":
		return addStockProfile(args[1:])
	case "add-kerf":
		return addKerfProfile(args[1:])
	default:
		return fmt.Errorf("unknown profiles subcommand %q", args[0])
	}
}

func listProfiles() error {
	inv, err := project.LoadOrDefaultInventory()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KERF PROFILE\tKERF\tJOINT ALLOWANCE\tMAX SPLIT PARTS")
	for _, kp := range inv.KerfProfiles {
		fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%d\n", kp.Name, kp.Kerf, kp.JointAllowance, kp.MaxSplitParts)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "STOCK PROFILE\tLENGTH\tDEFAULT QTY\tCOST")
	for _, sp := range inv.StockProfiles {
		qty := fmt.Sprintf("%d", sp.DefaultQuantity)
		if sp.DefaultQuantity == model.Unbounded {
			qty = "unbounded"
		}
		fmt.Fprintf(w, "%s\t%.0f\t%s\t%.2f\n", sp.Name, sp.Length, qty, sp.Cost)
	}
	return w.Flush()
}

func addStockProfile(args []string) error {
	fs := newFlagSet("profiles add-stock")
	name := fs.String("name", "", "profile name")
	length := fs.Float64("length", 0, "stock length")
	quantity := fs.Int("quantity", model.Unbounded, "default quantity, or -1 for unbounded")
	cost := fs.Float64("cost", 0, "unit cost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *length <= 0 {
		return fmt.Errorf("-name and a positive -length are required")
	}

	inv, err := project.LoadOrDefaultInventory()
	if err != nil {
		return err
	}
	inv.StockProfiles = append(inv.StockProfiles, model.NewStockProfile(*name, *length, *quantity, *cost))

	path, err := project.DefaultInventoryPath()
	if err != nil {
		return err
	}
	return project.SaveInventory(path, inv)
}

func addKerfProfile(args []string) error {
	fs := newFlagSet("profiles add-kerf")
	name := fs.String("name", "", "profile name")
	kerf := fs.Float64("kerf", 0, "kerf width")
	jointAllowance := fs.Float64("joint-allowance", 0, "joint allowance")
	maxSplitParts := fs.Int("max-split-parts", 2, "max split parts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("-name is required")
	}

	inv, err := project.LoadOrDefaultInventory()
	if err != nil {
		return err
	}
	inv.KerfProfiles = append(inv.KerfProfiles, model.NewKerfProfile(*name, *kerf, *jointAllowance, *maxSplitParts))

	path, err := project.DefaultInventoryPath()
	if err != nil {
		return err
	}
	return project.SaveInventory(path, inv)
}
