package linkedin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

const (
	SearchPath = "/search/people"
)

// SearchParams describes a people search.
type SearchParams struct {
	// liparam is custom tag for reflect. Please see buildParams.
	Keywords   []string `liparam:"keywords"`
	Locations  []string `liparam:"location"`
	Industries []string `liparam:"industry"`
	Limit      int      `liparam:"count"`
}

func (p *SearchParams) validate() error {
	if p == nil {
		return fmt.Errorf("search params are required")
	}

	hasKeyword := false
	for _, k := range p.Keywords {
		if strings.TrimSpace(k) != "" {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return fmt.Errorf("at least one keyword is required")
	}

	if p.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", p.Limit)
	}

	return nil
}

func (c *Client) newSearchRequest(ctx context.Context, params *SearchParams) (*http.Request, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p := *params
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}

	req, err := c.newRequest(ctx, http.MethodGet, SearchPath)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = buildParams(&p).Encode()

	return req, nil
}

// buildParams maps SearchParams fields to query values using the liparam tag.
// Slices become repeated keys; zero scalars are skipped.
func buildParams(params *SearchParams) url.Values {
	q := url.Values{}
	value := reflect.ValueOf(params).Elem()

	for _, field := range reflect.VisibleFields(value.Type()) {
		key := field.Tag.Get("liparam")
		if key == "" {
			continue
		}

		switch v := value.FieldByIndex(field.Index).Interface().(type) {
		case []string:
			for _, item := range v {
				if item = strings.TrimSpace(item); item != "" {
					q.Add(key, item)
				}
			}
		case int:
			if v != 0 {
				q.Set(key, strconv.Itoa(v))
			}
		}
	}

	return q
}
