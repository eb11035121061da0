package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"reposearch/internal/config"
	"reposearch/internal/eventbus"
	"reposearch/internal/resource"
	"reposearch/internal/ui/viewmodels"
	"reposearch/internal/usecase"
)

// searchOptions holds the flags of the search command
type searchOptions struct {
	configPath string
	page       int
	perPage    int
	format     string
}

func newSearchCommand(configPath *string) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search repositories without the terminal UI",
		Long: `Search GitHub repositories and print one page of results.

The query uses GitHub search syntax, for example:
  reposearch search "language:go stars:>1000"
  reposearch search bubbletea --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = *configPath
			return runSearch(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 0, "Result page (default from config)")
	cmd.Flags().IntVar(&opts.perPage, "per-page", 0, "Results per page, 1-100 (default from config)")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "Output format: table, json, or yaml")

	return cmd
}

// runSearch drives one search through the view model and prints the result
func runSearch(ctx context.Context, out io.Writer, query string, opts searchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !validFormat(opts.format) {
		return fmt.Errorf("unsupported format %q (want table, json, or yaml)", opts.format)
	}

	defaultLog := config.DefaultConfig().Paths.LogFile
	closeLog := setupLogging(defaultLog)
	defer func() { closeLog() }()

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := loadConfig(config.NewConfigServiceWithBus(bus, opts.configPath))
	if err != nil {
		return err
	}
	closeLog = switchLogging(closeLog, defaultLog, cfg.Paths.LogFile)

	if opts.page > 0 {
		cfg.GitHub.Page = opts.page
	}
	if opts.perPage > 0 {
		cfg.GitHub.PerPage = opts.perPage
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vm := viewmodels.NewSearchViewModel(searcher, viewmodels.Options{
		Labels:      cfg.UISettings.Labels,
		Page:        cfg.GitHub.Page,
		PerPage:     cfg.GitHub.PerPage,
		EventBuffer: cfg.UISettings.EventBuffer,
		Bus:         bus,
	})
	go func() { _ = vm.Run(ctx) }()
	defer func() {
		vm.Close()
		<-vm.Done()
	}()

	res, err := vm.SearchAndWait(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to search repositories: %w", err)
	}

	return resource.Fold(res,
		func() error { return fmt.Errorf("search for %q did not finish", query) },
		func(result usecase.SearchResult) error {
			log.Printf("Search for %q returned %d of %d repositories", query, len(result.Repos), result.TotalCount)
			return writeResults(out, opts.format, query, result)
		},
		func(err error) error { return err },
	)
}
