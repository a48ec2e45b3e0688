package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/applicant-filter/internal/candidate"
	"github.com/spigell/applicant-filter/internal/filtering"
	"github.com/spigell/applicant-filter/internal/linkedin"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	return &Config{
		Source:          sourceMock,
		TargetPositions: []string{"Operation Manager"},
		Filter: &FilterConfig{
			MinAge:             filtering.DefaultMinAge,
			MaxAge:             filtering.DefaultMaxAge,
			MinExperienceYears: filtering.DefaultMinExperienceYears,
			MaxExperienceYears: filtering.DefaultMaxExperienceYears,
		},
		Export: &ExportConfig{
			OutputDirectory:  filepath.Join(t.TempDir(), "output"),
			Filename:         "candidates.xlsx",
			DetailedFilename: "candidates_detailed.xlsx",
			SummaryFilename:  "filter_summary.xlsx",
		},
		LinkedIn: &LinkedInConfig{},
	}
}

func TestExecuteBasic(t *testing.T) {
	config := testConfig(t)
	var out bytes.Buffer

	result, err := execute(context.Background(), config, runOptions{}, &out, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, len(candidate.Mock()), result.Total)
	assert.Equal(t, 12, result.Total)
	assert.Len(t, result.Passed, 5)
	assert.Nil(t, result.Results)
	assert.Equal(t, []string{filepath.Join(config.Export.OutputDirectory, "candidates.xlsx")}, result.Reports)
	assert.FileExists(t, result.Reports[0])

	printed := out.String()
	assert.Equal(t, 5, strings.Count(printed, "Name: "))
	assert.Contains(t, printed, "Name: Sophie Williams")
	assert.NotContains(t, printed, "Ming Li")
}

func TestExecuteVerboseAndDetailed(t *testing.T) {
	config := testConfig(t)
	core, observed := observer.New(zapcore.InfoLevel)

	result, err := execute(context.Background(), config, runOptions{Verbose: true, Detailed: true}, &bytes.Buffer{}, zap.New(core))
	require.NoError(t, err)

	require.NotNil(t, result.Results)
	assert.Len(t, result.Passed, 5)
	assert.Len(t, result.Results.Failed(filtering.NameBackground), 3)

	require.Len(t, result.Reports, 3)
	for _, name := range []string{"candidates.xlsx", "candidates_detailed.xlsx", "filter_summary.xlsx"} {
		assert.FileExists(t, filepath.Join(config.Export.OutputDirectory, name))
	}

	details := observed.FilterMessage("filter details").All()
	require.Len(t, details, 4)
	assert.Equal(t, "Age", details[0].ContextMap()["filter"])
	assert.EqualValues(t, 2, details[0].ContextMap()["failed"])
}

func TestExecuteDetailedOnly(t *testing.T) {
	config := testConfig(t)
	core, observed := observer.New(zapcore.DebugLevel)

	result, err := execute(context.Background(), config, runOptions{Detailed: true}, &bytes.Buffer{}, zap.New(core))
	require.NoError(t, err)
	require.Len(t, result.Reports, 2)
	assert.NoFileExists(t, filepath.Join(config.Export.OutputDirectory, "filter_summary.xlsx"))

	writing := observed.FilterMessage("writing reports").All()
	require.Len(t, writing, 1)
	assert.Equal(t, config.Export.OutputDirectory, writing[0].ContextMap()["dir"])
}

func TestPrepareSourceLinkedInLogger(t *testing.T) {
	t.Setenv("LINKEDIN_API_KEY", "key")
	t.Setenv("LINKEDIN_API_SECRET", "secret")
	t.Setenv("LINKEDIN_ACCESS_TOKEN", "")

	config := testConfig(t)
	config.Source = sourceLinkedIn
	core, observed := observer.New(zapcore.DebugLevel)

	source, err := prepareSource(config, zap.New(core))
	require.NoError(t, err)

	_, err = source.Candidates(context.Background())
	assert.ErrorIs(t, err, linkedin.ErrNotImplemented)

	entries := observed.FilterMessage("linkedin authentication requested").All()
	require.Len(t, entries, 1)
	assert.Equal(t, sourceLinkedIn, entries[0].ContextMap()["source"])
}

func TestExecuteNoCandidatesPass(t *testing.T) {
	config := testConfig(t)
	config.Filter.MinAge, config.Filter.MaxAge = 40, 20
	var out bytes.Buffer

	result, err := execute(context.Background(), config, runOptions{}, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, result.Passed)
	assert.Equal(t, noCandidatesMsg+"\n", out.String())
	assert.Len(t, result.Reports, 1)
}

func TestExecuteFileSource(t *testing.T) {
	config := testConfig(t)
	dir := t.TempDir()
	config.Source = sourceFile
	config.CandidatesFile = writeFile(t, dir, "people.yaml", `
- name: Sydney Local
  age: 30
  experience_years: 2
  location: SYDNEY
  education_background: [China]
- name: Perth Local
  age: 30
  experience_years: 2
  location: Perth
  education_background: [China]
`)

	result, err := execute(context.Background(), config, runOptions{}, &bytes.Buffer{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Passed, 1)
	assert.Equal(t, "Perth Local", result.Passed[0].Name)
}

func TestExecuteFileSourceMissingFile(t *testing.T) {
	config := testConfig(t)
	config.Source = sourceFile
	config.CandidatesFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(context.Background(), config, runOptions{}, &bytes.Buffer{}, zap.NewNop())
	assert.Error(t, err)
}

func TestExecuteLinkedInFallsBackToMock(t *testing.T) {
	t.Setenv("LINKEDIN_API_KEY", "")
	t.Setenv("LINKEDIN_API_SECRET", "")
	t.Setenv("LINKEDIN_ACCESS_TOKEN", "")

	config := testConfig(t)
	config.Source = sourceLinkedIn
	core, observed := observer.New(zapcore.WarnLevel)

	result, err := execute(context.Background(), config, runOptions{}, &bytes.Buffer{}, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, 1, observed.FilterMessage("linkedin source is unavailable, using mock data").Len())
}

func TestExecuteUnwritableOutput(t *testing.T) {
	config := testConfig(t)
	blocker := writeFile(t, t.TempDir(), "blocker", "x")
	config.Export.OutputDirectory = filepath.Join(blocker, "output")

	_, err := execute(context.Background(), config, runOptions{}, &bytes.Buffer{}, zap.NewNop())
	assert.Error(t, err)
}

func TestPrepareFilters(t *testing.T) {
	m := prepareFilters(nil, nil)
	assert.Equal(t, []string{"Age", "Experience", "Location", "Background"}, m.Names())
	assert.Len(t, m.ApplyAll(candidate.Mock()), 5)

	m = prepareFilters(&FilterConfig{
		MinAge:               18,
		MaxAge:               60,
		MinExperienceYears:   0,
		MaxExperienceYears:   10,
		ExcludedLocations:    []string{},
		PreferredBackgrounds: []string{"Australia", "USA", "china", "uk"},
		ExcludedBackgrounds:  []string{},
	}, nil)
	assert.Len(t, m.ApplyAll(candidate.Mock()), 12)
}

func TestResolveLinkedIn(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LINKEDIN_API_KEY", "env-key")
	t.Setenv("LINKEDIN_API_SECRET", "")
	t.Setenv("LINKEDIN_ACCESS_TOKEN", "")

	config := testConfig(t)
	config.LinkedIn = &LinkedInConfig{
		APIKey:        "inline-key",
		APISecretFile: writeFile(t, dir, "secret", "file-secret\n"),
		BaseURL:       "https://example.com",
	}

	cfg, err := resolveLinkedIn(config)
	require.NoError(t, err)
	assert.Equal(t, linkedin.Config{
		APIKey:    "env-key",
		APISecret: "file-secret",
		BaseURL:   "https://example.com",
		Keywords:  []string{"Operation Manager"},
	}, cfg)

	config.LinkedIn.AccessTokenFile = filepath.Join(dir, "missing")
	_, err = resolveLinkedIn(config)
	assert.Error(t, err)
}

func TestPrepareSourceUnknown(t *testing.T) {
	config := testConfig(t)
	config.Source = "ldap"

	_, err := prepareSource(config, zap.NewNop())
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(os.Stdout)

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "applicant-filter version: unknown\n", out.String())
}
