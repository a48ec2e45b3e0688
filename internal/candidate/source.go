package candidate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Source supplies the ordered list of candidates to filter.
type Source interface {
	Candidates(ctx context.Context) ([]*Candidate, error)
}

// MockSource serves the built-in fixture.
type MockSource struct{}

// NewMockSource returns a source backed by Mock.
func NewMockSource() *MockSource {
	return &MockSource{}
}

func (s *MockSource) Candidates(ctx context.Context) ([]*Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Mock(), nil
}

// FileSource reads candidates from a YAML file holding a list of records.
type FileSource struct {
	Path string
}

// NewFileSource creates a source reading the given file.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: strings.TrimSpace(path)}
}

func (s *FileSource) Candidates(ctx context.Context) ([]*Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.Path == "" {
		return nil, fmt.Errorf("candidates file is not configured")
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading candidates file %q: %w", s.Path, err)
	}

	var items []map[string]any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing candidates file %q: %w", s.Path, err)
	}

	return Decode(items)
}

// Decode converts generic records, as produced by YAML or JSON decoders, into candidates.
func Decode(items []map[string]any) ([]*Candidate, error) {
	candidates := make([]*Candidate, 0, len(items))

	for i, item := range items {
		var c Candidate
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &c,
			TagName:     "mapstructure",
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(item); err != nil {
			return nil, fmt.Errorf("decoding candidate #%d: %w", i+1, err)
		}

		candidates = append(candidates, &c)
	}

	return candidates, nil
}
