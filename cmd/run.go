package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/applicant-filter/internal/candidate"
	"github.com/spigell/applicant-filter/internal/filtering"
	"github.com/spigell/applicant-filter/internal/linkedin"
	"github.com/spigell/applicant-filter/internal/logger"
	"github.com/spigell/applicant-filter/internal/report"
	"github.com/spigell/applicant-filter/internal/secrets"
)

const noCandidatesMsg = "No candidates passed all filters."

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Filter candidates and export the reports",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "record which filters every candidate failed and export the summary report")
	runCmd.Flags().BoolP("detailed", "d", false, "export the detailed report with all candidate fields")
}

type runOptions struct {
	Verbose  bool
	Detailed bool
}

type runResult struct {
	Total   int
	Passed  []*candidate.Candidate
	Results *filtering.Results
	Reports []string
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log = logger.WithFields(log, zap.String("run_id", uuid.NewString()))

	config, err := getConfig(viper.GetViper())
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("starting the applicant-filter", zap.String("version", version))

	// LinkedIn credentials are kept out of the dump by the json tag.
	pretty, _ := json.MarshalIndent(config, "", "  ")
	log.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	opts := runOptions{}
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")
	opts.Detailed, _ = cmd.Flags().GetBool("detailed")

	result, err := execute(ctx, config, opts, cmd.OutOrStdout(), log)
	if err != nil {
		log.Fatal("exiting", zap.Error(err))
	}

	for _, path := range result.Reports {
		log.Info("report exported", zap.String("path", path))
	}

	log.Info("summary",
		zap.Int("total_candidates", result.Total),
		zap.Int("passed_filters", len(result.Passed)),
		zap.String("pass_rate", report.PassRate(result.Total, len(result.Passed))),
	)
}

// execute loads candidates, filters them, prints the survivors to out and writes the reports.
func execute(ctx context.Context, config *Config, opts runOptions, out io.Writer, log *zap.Logger) (*runResult, error) {
	manager := prepareFilters(config.Filter, log)

	for _, status := range filtering.Describe(manager.Filters()) {
		log.Debug("filter configured", logger.StatusFields(status)...)
	}
	log.Info("active filters", zap.Strings("names", manager.Names()))

	source, err := prepareSource(config, log)
	if err != nil {
		return nil, err
	}

	candidates, err := loadCandidates(ctx, source, log)
	if err != nil {
		return nil, err
	}

	log.Info("candidates loaded", zap.Int("count", len(candidates)))

	result := &runResult{Total: len(candidates)}
	if opts.Verbose {
		result.Results = manager.ApplyAllWithDetails(candidates)
		result.Passed = result.Results.Passed()
		logFailures(result.Results, log)
	} else {
		result.Passed = manager.ApplyAll(candidates)
	}

	log.Info("candidates after filtering", zap.Int("count", len(result.Passed)))

	printCandidates(out, result.Passed)

	exporter, err := report.New(config.Export.OutputDirectory, log)
	if err != nil {
		return nil, err
	}
	log.Debug("writing reports", zap.String("dir", exporter.Dir()))

	path, err := exporter.Export(result.Passed, config.Export.Filename)
	if err != nil {
		return nil, fmt.Errorf("export basic report: %w", err)
	}
	result.Reports = append(result.Reports, path)

	if opts.Detailed {
		path, err := exporter.ExportDetailed(result.Passed, config.Export.DetailedFilename)
		if err != nil {
			return nil, fmt.Errorf("export detailed report: %w", err)
		}
		result.Reports = append(result.Reports, path)
	}

	if opts.Verbose {
		path, err := exporter.ExportSummary(result.Total, result.Results, config.Export.SummaryFilename)
		if err != nil {
			return nil, fmt.Errorf("export summary report: %w", err)
		}
		result.Reports = append(result.Reports, path)
	}

	return result, nil
}

func prepareFilters(cfg *FilterConfig, log *zap.Logger) *filtering.Manager {
	manager := filtering.NewManager(log)
	if cfg == nil {
		cfg = &FilterConfig{
			MinAge:             filtering.DefaultMinAge,
			MaxAge:             filtering.DefaultMaxAge,
			MinExperienceYears: filtering.DefaultMinExperienceYears,
			MaxExperienceYears: filtering.DefaultMaxExperienceYears,
		}
	}

	manager.Add(filtering.NewAge(cfg.MinAge, cfg.MaxAge))
	manager.Add(filtering.NewExperience(cfg.MinExperienceYears, cfg.MaxExperienceYears))
	manager.Add(filtering.NewLocation(cfg.ExcludedLocations))
	manager.Add(filtering.NewBackground(cfg.PreferredBackgrounds, cfg.ExcludedBackgrounds))

	return manager
}

func prepareSource(config *Config, log *zap.Logger) (candidate.Source, error) {
	switch config.Source {
	case sourceMock, "":
		return candidate.NewMockSource(), nil
	case sourceFile:
		return candidate.NewFileSource(config.CandidatesFile), nil
	case sourceLinkedIn:
		cfg, err := resolveLinkedIn(config)
		if err != nil {
			return nil, fmt.Errorf("loading linkedin credentials: %w", err)
		}
		return linkedin.New(cfg, logger.WithFields(log, zap.String("source", sourceLinkedIn))), nil
	default:
		return nil, fmt.Errorf("unsupported candidate source: %s", config.Source)
	}
}

// loadCandidates reads the source. A LinkedIn source that is not usable yet falls back to the mock fixture.
func loadCandidates(ctx context.Context, source candidate.Source, log *zap.Logger) ([]*candidate.Candidate, error) {
	candidates, err := source.Candidates(ctx)
	if err == nil {
		return candidates, nil
	}

	if errors.Is(err, linkedin.ErrNotConfigured) || errors.Is(err, linkedin.ErrNotImplemented) {
		log.Warn("linkedin source is unavailable, using mock data", zap.Error(err))
		return candidate.NewMockSource().Candidates(ctx)
	}

	return nil, fmt.Errorf("loading candidates: %w", err)
}

func resolveLinkedIn(config *Config) (linkedin.Config, error) {
	cfg := config.LinkedIn
	if cfg == nil {
		cfg = &LinkedInConfig{}
	}

	apiKey, err := secrets.LoadOptional(secrets.Source{
		Name: "linkedin api key", Env: "LINKEDIN_API_KEY", File: cfg.APIKeyFile, Value: cfg.APIKey,
	})
	if err != nil {
		return linkedin.Config{}, err
	}

	apiSecret, err := secrets.LoadOptional(secrets.Source{
		Name: "linkedin api secret", Env: "LINKEDIN_API_SECRET", File: cfg.APISecretFile, Value: cfg.APISecret,
	})
	if err != nil {
		return linkedin.Config{}, err
	}

	token, err := secrets.LoadOptional(secrets.Source{
		Name: "linkedin access token", Env: "LINKEDIN_ACCESS_TOKEN", File: cfg.AccessTokenFile, Value: cfg.AccessToken,
	})
	if err != nil {
		return linkedin.Config{}, err
	}

	return linkedin.Config{
		APIKey:      apiKey,
		APISecret:   apiSecret,
		AccessToken: token,
		BaseURL:     cfg.BaseURL,
		Keywords:    config.TargetPositions,
	}, nil
}

func logFailures(results *filtering.Results, log *zap.Logger) {
	for _, name := range results.FilterNames() {
		failed := results.Failed(name)
		log.Info("filter details", zap.String(logger.FieldFilter, name), zap.Int("failed", len(failed)))

		for _, c := range failed {
			log.Debug("candidate rejected", append(logger.CandidateFields(c), zap.String(logger.FieldFilter, name))...)
		}
	}
}

func printCandidates(out io.Writer, candidates []*candidate.Candidate) {
	if len(candidates) == 0 {
		fmt.Fprintln(out, noCandidatesMsg)
		return
	}

	blocks := make([]string, 0, len(candidates))
	for _, c := range candidates {
		blocks = append(blocks, c.String())
	}
	fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
}
