package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"reposearch/internal/usecase"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return true
	}
	return false
}

// searchOutput is the machine-readable form of a result page
type searchOutput struct {
	Query        string       `json:"query" yaml:"query"`
	TotalCount   int          `json:"total_count" yaml:"total_count"`
	Repositories []repoOutput `json:"repositories" yaml:"repositories"`
}

type repoOutput struct {
	ID          int64  `json:"id" yaml:"id"`
	FullName    string `json:"full_name" yaml:"full_name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Stars       int    `json:"stars" yaml:"stars"`
	Forks       int    `json:"forks" yaml:"forks"`
	URL         string `json:"url" yaml:"url"`
}

func toOutput(query string, result usecase.SearchResult) searchOutput {
	out := searchOutput{
		Query:        query,
		TotalCount:   result.TotalCount,
		Repositories: make([]repoOutput, 0, len(result.Repos)),
	}
	for _, r := range result.Repos {
		out.Repositories = append(out.Repositories, repoOutput{
			ID:          r.ID,
			FullName:    r.FullName,
			Description: r.Description,
			Stars:       r.Stars,
			Forks:       r.Forks,
			URL:         r.URL,
		})
	}
	return out
}

// writeResults prints a result page in the requested format
func writeResults(w io.Writer, format, query string, result usecase.SearchResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toOutput(query, result)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toOutput(query, result)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSTARS\tFORKS\tURL")
		for _, r := range result.Repos {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.FullName, r.Stars, r.Forks, r.URL)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
		_, err := fmt.Fprintf(w, "\n%d of %d repositories\n", len(result.Repos), result.TotalCount)
		return err
	}

	return fmt.Errorf("unsupported format %q", format)
}
