package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/applicant-filter/internal/candidate"
	"github.com/spigell/applicant-filter/internal/filtering"
)

const (
	DefaultFilename         = "candidates.xlsx"
	DefaultDetailedFilename = "candidates_detailed.xlsx"
	DefaultSummaryFilename  = "filter_summary.xlsx"

	SheetBasic    = "Filtered Candidates"
	SheetDetailed = "Detailed Candidates"
	SheetSummary  = "Filter Summary"

	headerColor     = "4472C4"
	timestampLayout = "2006-01-02 15:04:05"
	listSeparator   = ", "
	defaultSheet    = "Sheet1"
)

var (
	basicHeaders = []string{"Name", "Position", "Experience (Years)", "Location", "LinkedIn URL"}
	basicWidths  = []float64{25, 30, 18, 15, 45}

	detailedHeaders = []string{
		"Name", "Age", "Position", "Experience (Years)",
		"Location", "Nationality", "Education Background",
		"Work Background", "Skills", "Languages", "LinkedIn URL",
	}
)

// Exporter writes candidate reports as xlsx workbooks into a single directory.
type Exporter struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// New creates an exporter writing into dir, creating the directory when it does not exist.
func New(dir string, logger *zap.Logger) (*Exporter, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %q: %w", dir, err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Exporter{dir: dir, logger: logger, now: time.Now}, nil
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Export writes the basic report: one row per candidate with name, position, experience,
// location and LinkedIn URL. It returns the path of the written file.
func (e *Exporter) Export(candidates []*candidate.Candidate, filename string) (string, error) {
	if filename == "" {
		filename = DefaultFilename
	}

	w, err := newWorkbook(SheetBasic)
	if err != nil {
		return "", err
	}
	defer w.Close()

	headerStyle, err := w.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      headerFill(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return "", fmt.Errorf("creating header style: %w", err)
	}

	cellStyle, err := w.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return "", fmt.Errorf("creating cell style: %w", err)
	}

	urlStyle, err := w.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return "", fmt.Errorf("creating url style: %w", err)
	}

	if err := w.row(1, headerStyle, toRow(basicHeaders)...); err != nil {
		return "", err
	}

	for i, c := range candidates {
		row := i + 2
		if err := w.row(row, cellStyle,
			c.Name,
			c.CurrentPosition,
			c.ExperienceYears,
			c.Location,
			c.LinkedInURL,
		); err != nil {
			return "", err
		}

		if err := w.style(len(basicHeaders), row, urlStyle); err != nil {
			return "", err
		}
	}

	for i, width := range basicWidths {
		if err := w.width(i+1, width); err != nil {
			return "", err
		}
	}

	if err := w.freezeHeader(); err != nil {
		return "", err
	}

	return e.save(w, filename, "basic", len(candidates))
}

// ExportDetailed writes every candidate field, with list fields joined by commas.
func (e *Exporter) ExportDetailed(candidates []*candidate.Candidate, filename string) (string, error) {
	if filename == "" {
		filename = DefaultDetailedFilename
	}

	w, err := newWorkbook(SheetDetailed)
	if err != nil {
		return "", err
	}
	defer w.Close()

	headerStyle, err := w.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: headerFill(),
	})
	if err != nil {
		return "", fmt.Errorf("creating header style: %w", err)
	}

	if err := w.row(1, headerStyle, toRow(detailedHeaders)...); err != nil {
		return "", err
	}

	for i, c := range candidates {
		if err := w.row(i+2, 0,
			c.Name,
			c.Age,
			c.CurrentPosition,
			c.ExperienceYears,
			c.Location,
			c.Nationality,
			strings.Join(c.EducationBackground, listSeparator),
			strings.Join(c.WorkBackground, listSeparator),
			strings.Join(c.Skills, listSeparator),
			strings.Join(c.Languages, listSeparator),
			c.LinkedInURL,
		); err != nil {
			return "", err
		}
	}

	for col := 1; col <= len(detailedHeaders); col++ {
		width := 20.0
		if col == len(detailedHeaders) {
			width = 40
		}
		if err := w.width(col, width); err != nil {
			return "", err
		}
	}

	if err := w.freezeHeader(); err != nil {
		return "", err
	}

	return e.save(w, filename, "detailed", len(candidates))
}

// ExportSummary writes aggregate counts and one failure count per filter, in registry order.
func (e *Exporter) ExportSummary(total int, results *filtering.Results, filename string) (string, error) {
	if filename == "" {
		filename = DefaultSummaryFilename
	}

	w, err := newWorkbook(SheetSummary)
	if err != nil {
		return "", err
	}
	defer w.Close()

	titleStyle, err := w.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return "", fmt.Errorf("creating title style: %w", err)
	}

	boldStyle, err := w.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("creating section style: %w", err)
	}

	passed := len(results.Passed())

	rows := []struct {
		row    int
		style  int
		values []any
	}{
		{row: 1, style: titleStyle, values: []any{"Candidate Filtering Summary"}},
		{row: 3, values: []any{"Generated:", e.now().Format(timestampLayout)}},
		{row: 4, values: []any{"Total Candidates:", total}},
		{row: 5, values: []any{"Passed Filters:", passed}},
		{row: 6, values: []any{"Pass Rate:", PassRate(total, passed)}},
		{row: 8, style: boldStyle, values: []any{"Filter Breakdown"}},
	}

	for _, r := range rows {
		if err := w.row(r.row, 0, r.values...); err != nil {
			return "", err
		}
		if r.style != 0 {
			if err := w.style(1, r.row, r.style); err != nil {
				return "", err
			}
		}
	}

	for i, name := range results.FilterNames() {
		label := fmt.Sprintf("Failed %s:", DisplayName(name))
		if err := w.row(9+i, 0, label, len(results.Failed(name))); err != nil {
			return "", err
		}
	}

	if err := w.width(1, 20); err != nil {
		return "", err
	}
	if err := w.width(2, 25); err != nil {
		return "", err
	}

	return e.save(w, filename, "summary", total)
}

// PassRate formats passed/total as a percentage with one decimal.
func PassRate(total, passed int) string {
	rate := 0.0
	if total > 0 {
		rate = float64(passed) / float64(total) * 100
	}
	return fmt.Sprintf("%.1f%%", rate)
}

// DisplayName turns a filter name such as "work_history" into "Work History".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func (e *Exporter) save(w *workbook, filename, kind string, rows int) (string, error) {
	path := filepath.Join(e.dir, filename)
	if err := w.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s report to %q: %w", kind, path, err)
	}

	e.logger.Debug("report written",
		zap.String("kind", kind),
		zap.String("path", path),
		zap.Int("rows", rows),
	)

	return path, nil
}

func headerFill() excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}}
}

func thinBorder() []excelize.Border {
	borders := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		borders = append(borders, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return borders
}

func toRow(values []string) []any {
	row := make([]any, 0, len(values))
	for _, v := range values {
		row = append(row, v)
	}
	return row
}
