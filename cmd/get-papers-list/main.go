// Command get-papers-list searches PubMed and lists papers with at least one
// author affiliated with a pharmaceutical or biotech company.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/henrybloomingdale/get-papers-list/internal/affil"
	"github.com/henrybloomingdale/get-papers-list/internal/config"
	"github.com/henrybloomingdale/get-papers-list/internal/eutils"
	"github.com/henrybloomingdale/get-papers-list/internal/logging"
	"github.com/henrybloomingdale/get-papers-list/internal/output"
	"github.com/henrybloomingdale/get-papers-list/internal/papers"
)

var (
	flagDebug      bool
	flagFile       string
	flagXLSX       string
	flagJSON       bool
	flagHuman      bool
	flagFull       bool
	flagMaxResults int
	flagYear       string
	flagType       string
	flagAPIKey     string
	flagEmail      string
	flagConfig     string
	flagKeywords   string
	flagDedupe     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-papers-list <query>",
		Short: "List PubMed papers with company-affiliated authors",
		Long: `Search PubMed and keep only papers with at least one author affiliated with a
non-academic organization such as a pharmaceutical or biotech company.

Results are written as CSV to stdout unless --file, --xlsx, --json or --human
is given. The query accepts full PubMed syntax.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}

	f := cmd.Flags()
	f.BoolVarP(&flagDebug, "debug", "d", false, "Print debug information during execution")
	f.StringVarP(&flagFile, "file", "f", "", "Filename to save results as CSV (default: print to console)")
	f.StringVar(&flagXLSX, "xlsx", "", "Also export results to an XLSX workbook")
	f.BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	f.BoolVarP(&flagHuman, "human", "H", false, "Rich colorful terminal output")
	f.BoolVar(&flagFull, "full", false, "Show every author and affiliation (with --human)")
	f.IntVarP(&flagMaxResults, "max-results", "n", eutils.DefaultMaxResults, "Maximum number of PubMed records to inspect")
	f.StringVar(&flagYear, "year", "", "Filter by publication year or range (e.g., 2020-2025)")
	f.StringVar(&flagType, "type", "", "Filter by publication type (review, trial, meta-analysis)")
	f.StringVar(&flagAPIKey, "api-key", "", "NCBI API key (or set NCBI_API_KEY env var)")
	f.StringVar(&flagEmail, "email", "", "Contact email sent to NCBI (or set NCBI_EMAIL env var)")
	f.StringVar(&flagConfig, "config", "", "Config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/get-papers-list.yaml)")
	f.StringVar(&flagKeywords, "keywords", "", "YAML file overriding the academic/company keyword lists")
	f.BoolVar(&flagDedupe, "dedupe-authors", false, "List each non-academic author once per paper")

	return cmd
}

// bindFlags maps command-line flags onto config keys.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	bindings := map[string]string{
		config.KeyDebug:         "debug",
		config.KeyMaxResults:    "max-results",
		config.KeyAPIKey:        "api-key",
		config.KeyEmail:         "email",
		config.KeyKeywordsFile:  "keywords",
		config.KeyDedupeAuthors: "dedupe-authors",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func outputCfg() output.OutputConfig {
	return output.OutputConfig{
		JSON:     flagJSON,
		Human:    flagHuman,
		Full:     flagFull,
		CSVFile:  flagFile,
		XLSXFile: flagXLSX,
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}
	query, err := buildQuery(args)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	v := viper.New()
	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	cfg, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Debug)
	defer func() { _ = logger.Sync() }()
	if cfg.Debug {
		fmt.Fprintln(stderr, "Debug mode enabled.")
		if cfg.File != "" {
			fmt.Fprintln(stderr, "Using config file:", cfg.File)
		}
	}

	kw := affil.DefaultKeywords()
	if cfg.KeywordsFile != "" {
		kw, err = affil.LoadKeywords(cfg.KeywordsFile)
		if err != nil {
			return err
		}
	}

	exOpts := []papers.ExtractorOption{
		papers.WithClassifier(affil.New(kw)),
		papers.WithLogger(logger),
	}
	if cfg.DedupeAuthors {
		exOpts = append(exOpts, papers.WithDedupedAuthors())
	}

	client := eutils.NewClient(append(cfg.ClientOptions(), eutils.WithLogger(logger))...)
	pipeline := papers.NewPipeline(client, papers.NewExtractor(exOpts...), logger)

	fmt.Fprintf(stderr, "Fetching papers for query: %s\n", query)
	rep, err := pipeline.Run(cmd.Context(), query, cfg.MaxResults)
	if err != nil {
		return fmt.Errorf("fetching papers failed: %w", err)
	}
	if cfg.Debug {
		fmt.Fprintf(stderr, "Inspected %d of %d records (%d unparseable), %d matched.\n",
			rep.Fetched, rep.Resolved, len(rep.ParseErrors), len(rep.Papers))
	}

	if len(rep.Papers) == 0 {
		fmt.Fprintln(stderr, "No papers found matching criteria.")
		return nil
	}

	out := outputCfg()
	if err := output.WritePapers(stdout, rep.Papers, out); err != nil {
		return err
	}
	var saved []string
	for _, p := range []string{out.CSVFile, out.XLSXFile} {
		if p != "" {
			saved = append(saved, p)
		}
	}
	if len(saved) > 0 {
		fmt.Fprintf(stderr, "Results saved to %s\n", strings.Join(saved, ", "))
	}
	return nil
}
