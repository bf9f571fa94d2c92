package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/templates/shared"
)

type format string

const (
	formatTable format = "table"
	formatJSON  format = "json"
	formatYAML  format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(s); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

type productRow struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`
	Status      string  `json:"status" yaml:"status"`
	ImageURL    string  `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Description string  `json:"description" yaml:"description"`
}

func rows(items []backend.Product) []productRow {
	out := make([]productRow, 0, len(items))
	for _, p := range items {
		out = append(out, productRow{
			ID:          string(p.ID),
			Title:       p.Title,
			Category:    p.Category,
			Price:       p.Price,
			Status:      p.Status,
			ImageURL:    p.ImageURL,
			Description: p.Description,
		})
	}
	return out
}

func writeProducts(w io.Writer, f format, items []backend.Product) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows(items))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows(items)); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tSTATUS")
	for _, r := range rows(items) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Category, shared.FormatMoney("BRL", r.Price), r.Status)
	}
	return tw.Flush()
}
