package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/piwi3910/cutstock/internal/project"
)

func runTemplates(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: cutstock templates list|save|run")
	}

	switch args[0] {
	case "list":
		return listTemplates()
	case "save":
		return saveTemplate(args[1:])
	case "run":
		return runTemplate(args[1:])
	default:
		return fmt.Errorf("unknown templates subcommand %q", args[0])
	}
}

func listTemplates() error {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPARTS\tSTOCKS\tALGORITHM")
	for _, t := range store.Templates {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", t.ID, t.Name, len(t.Parts), len(t.Stocks), t.Params.Algorithm)
	}
	return w.Flush()
}

func saveTemplate(args []string) error {
	fs := newFlagSet("templates save")
	name := fs.String("name", "", "template name")
	description := fs.String("description", "", "template description")
	partsPath := fs.String("parts", "", "path to a parts list (.csv or .xlsx)")
	stocksPath := fs.String("stocks", "", "path to a stock catalog (.csv or .xlsx)")
	algorithm := fs.String("algorithm", string(model.Hybrid), "ffd|hybrid|smart_split|ortools_fast|ortools_optimal")
	kerf := fs.Float64("kerf", 0, "saw kerf width")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *partsPath == "" || *stocksPath == "" {
		return fmt.Errorf("-name, -parts and -stocks are required")
	}

	parts, err := loadParts(*partsPath)
	if err != nil {
		return fmt.Errorf("load parts: %w", err)
	}
	stocks, err := loadStocks(*stocksPath)
	if err != nil {
		return fmt.Errorf("load stocks: %w", err)
	}

	params := model.DefaultParams()
	params.Algorithm = model.Algorithm(*algorithm)
	params.Kerf = *kerf

	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return err
	}
	store.Add(model.NewProjectTemplate(*name, *description, parts, stocks, params))
	return project.SaveDefaultTemplates(store)
}

func runTemplate(args []string) error {
	fs := newFlagSet("templates run")
	name := fs.String("name", "", "template name to run")
	out := fs.String("out", "", "write the result to this path (.json, .pdf, .xlsx); stdout JSON if omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("-name is required")
	}

	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return err
	}
	tmpl := store.FindByName(*name)
	if tmpl == nil {
		return fmt.Errorf("no template named %q", *name)
	}

	proj := tmpl.ToProject(*name)
	result, err := optimizeProject(proj)
	if err != nil {
		return err
	}

	if *out == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return writeResult(*out, result, proj.Params.Kerf)
}
