package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/docs"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	var (
		out         string
		datasetPath string
		rulesPath   string
		preview     bool
	)
	flag.StringVar(&out, "out", "docs", "output directory")
	flag.StringVar(&datasetPath, "dataset", "", "YAML dataset (default: bundled demo)")
	flag.StringVar(&rulesPath, "rules", "", "YAML recipe rules (default: built-in)")
	flag.BoolVar(&preview, "preview", false, "render the pages to the terminal instead of writing them")
	flag.Parse()

	data := catalog.Demo()
	if datasetPath != "" {
		var err error
		if data, err = catalog.Load(datasetPath); err != nil {
			fatal(err)
		}
	}
	rules := forge.DefaultRules()
	if rulesPath != "" {
		var err error
		if rules, err = forge.LoadRules(rulesPath); err != nil {
			fatal(err)
		}
	}

	files := []docFile{
		{Name: "controls.md", Title: "Controls", Content: docs.Controls()},
		{Name: "recipes.md", Title: "Recipes", Content: docs.Recipes(rules)},
		{Name: "items.md", Title: "Items", Content: docs.Items(data)},
	}

	if preview {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			fatal(err)
		}
		for _, f := range files {
			rendered, err := r.Render(f.Content)
			if err != nil {
				fatal(err)
			}
			fmt.Print(rendered)
		}
		return
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		fatal(err)
	}
	for _, f := range files {
		path := filepath.Join(out, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(out, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Forge & Field Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
