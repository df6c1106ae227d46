package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ivanvanderbyl/pdftables"
)

func main() {
	cmd := &cli.Command{
		Name:  "pdftables",
		Usage: "Extract tables from PDF pages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input PDF file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "Password for an encrypted PDF",
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "Page number to extract (0-indexed); all pages if unset",
				Value: -1,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: csv, markdown, or html",
				Value: "csv",
			},
		},
		Action: extractTables,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func extractTables(_ context.Context, cmd *cli.Command) error {
	inputPath := cmd.String("input")
	password := cmd.String("password")
	pageArg := cmd.Int("page")
	format := cmd.String("format")

	doc, err := pdftables.OpenDocument(inputPath, password)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inputPath, err)
	}
	defer doc.Close()

	settings := pdftables.DefaultTfSettings()

	render := func(page *pdftables.Page) error {
		tables, err := page.ExtractTables(settings)
		if err != nil {
			return fmt.Errorf("failed to extract tables on page %d: %w", page.Index(), err)
		}
		for i, t := range tables {
			fmt.Fprintf(os.Stderr, "page %d table %d: %dx%d\n", page.Index()+1, i+1, t.NumRows, t.NumCols)
			out, err := renderTable(t, format)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
		return nil
	}

	if pageArg >= 0 {
		page, err := doc.Page(pageArg)
		if err != nil {
			return fmt.Errorf("failed to load page %d: %w", pageArg, err)
		}
		defer page.Close()
		return render(page)
	}

	for page, err := range doc.Pages() {
		if err != nil {
			return fmt.Errorf("failed to iterate pages: %w", err)
		}
		if err := render(page); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(t pdftables.Table, format string) (string, error) {
	switch format {
	case "markdown", "md":
		return pdftables.ToMarkdown(t)
	case "html":
		return pdftables.ToHTML(t)
	default:
		return pdftables.ToCSV(t)
	}
}
