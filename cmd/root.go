package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/applicant-filter/internal/filtering"
	"github.com/spigell/applicant-filter/internal/linkedin"
	"github.com/spigell/applicant-filter/internal/report"
)

const (
	app       = "applicant-filter"
	envPrefix = "APPLICANT_FILTER"
	// configEnv points to a config file outside the working directory.
	configEnv = envPrefix + "_CONFIG"

	sourceMock     = "mock"
	sourceFile     = "file"
	sourceLinkedIn = "linkedin"
)

type Config struct {
	Source          string          `mapstructure:"source" validate:"oneof=mock file linkedin"`
	CandidatesFile  string          `mapstructure:"candidates-file" validate:"required_if=Source file"`
	TargetPositions []string        `mapstructure:"target-positions"`
	Filter          *FilterConfig   `mapstructure:"filter" validate:"required"`
	Export          *ExportConfig   `mapstructure:"export" validate:"required"`
	LinkedIn        *LinkedInConfig `mapstructure:"linkedin" json:"-"`
}

// FilterConfig is deliberately not range-checked: an inverted range yields a filter that rejects everyone.
type FilterConfig struct {
	MinAge               int      `mapstructure:"min-age"`
	MaxAge               int      `mapstructure:"max-age"`
	MinExperienceYears   float64  `mapstructure:"min-experience-years"`
	MaxExperienceYears   float64  `mapstructure:"max-experience-years"`
	ExcludedLocations    []string `mapstructure:"excluded-locations"`
	PreferredBackgrounds []string `mapstructure:"preferred-backgrounds"`
	ExcludedBackgrounds  []string `mapstructure:"excluded-backgrounds"`
}

type ExportConfig struct {
	OutputDirectory  string `mapstructure:"output-directory" validate:"required"`
	Filename         string `mapstructure:"excel-filename" validate:"required,endswith=.xlsx"`
	DetailedFilename string `mapstructure:"detailed-filename" validate:"required,endswith=.xlsx"`
	SummaryFilename  string `mapstructure:"summary-filename" validate:"required,endswith=.xlsx"`
}

type LinkedInConfig struct {
	APIKey          string `mapstructure:"api-key"`
	APIKeyFile      string `mapstructure:"api-key-file"`
	APISecret       string `mapstructure:"api-secret"`
	APISecretFile   string `mapstructure:"api-secret-file"`
	AccessToken     string `mapstructure:"access-token"`
	AccessTokenFile string `mapstructure:"access-token-file"`
	BaseURL         string `mapstructure:"base-url"`
}

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "applicant-filter filters job candidates by age, experience, location and background and exports spreadsheet reports",
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Config needed only for run command now.
	if runCmd.CalledAs() == "" {
		return
	}

	// .env is optional; values already present in the environment win.
	_ = godotenv.Load()

	if err := readConfig(viper.GetViper(), os.Getenv(configEnv)); err != nil {
		log.Fatal(err)
	}
}

// readConfig prepares v with defaults and environment overrides and reads the config file.
// Without an explicit path a missing applicant-filter.yaml in the working directory is not an error.
func readConfig(v *viper.Viper, path string) error {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("json", false)

	v.SetDefault("source", sourceMock)
	v.SetDefault("candidates-file", "")
	v.SetDefault("target-positions", []string{
		"Operation Manager",
		"Compliance Advisor",
		"Business Development Manager",
	})

	v.SetDefault("filter.min-age", filtering.DefaultMinAge)
	v.SetDefault("filter.max-age", filtering.DefaultMaxAge)
	v.SetDefault("filter.min-experience-years", filtering.DefaultMinExperienceYears)
	v.SetDefault("filter.max-experience-years", filtering.DefaultMaxExperienceYears)
	v.SetDefault("filter.excluded-locations", filtering.DefaultExcludedLocations())
	v.SetDefault("filter.preferred-backgrounds", filtering.DefaultPreferredBackgrounds())
	v.SetDefault("filter.excluded-backgrounds", filtering.DefaultExcludedBackgrounds())

	v.SetDefault("export.output-directory", "output")
	v.SetDefault("export.excel-filename", report.DefaultFilename)
	v.SetDefault("export.detailed-filename", report.DefaultDetailedFilename)
	v.SetDefault("export.summary-filename", report.DefaultSummaryFilename)

	v.SetDefault("linkedin.api-key", "")
	v.SetDefault("linkedin.api-key-file", "")
	v.SetDefault("linkedin.api-secret", "")
	v.SetDefault("linkedin.api-secret-file", "")
	v.SetDefault("linkedin.access-token", "")
	v.SetDefault("linkedin.access-token-file", "")
	v.SetDefault("linkedin.base-url", linkedin.DefaultBaseURL)
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Source = strings.ToLower(strings.TrimSpace(config.Source))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the structural parts of the config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
