// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cinii-research/pkg/cinii"
	"github.com/pdiddy/cinii-research/pkg/types"
)

// SavedSearch is the on-disk representation of a search and its result. A
// saved search can be reloaded and displayed without re-querying the API.
type SavedSearch struct {
	Search  SavedRequest  `yaml:"search"`
	Result  *types.Result `yaml:"result"`
	Summary SavedSummary  `yaml:"summary"`
}

// SavedRequest records what was sent. The application id is never stored.
type SavedRequest struct {
	SearchType string            `yaml:"search_type"`
	Params     map[string]string `yaml:"params"`
}

// SavedSummary stores result statistics and a timestamp.
type SavedSummary struct {
	TotalResults int       `yaml:"total_results"`
	Returned     int       `yaml:"returned"`
	Timestamp    time.Time `yaml:"timestamp"`
}

// WriteSavedSearch saves the wire parameters and the result to a YAML file.
func WriteSavedSearch(path string, searchType cinii.SearchType, q cinii.WireQuery, res *types.Result) error {
	params := make(map[string]string, len(q))
	for k, v := range q {
		if k != "appId" {
			params[k] = v
		}
	}

	ss := SavedSearch{
		Search: SavedRequest{
			SearchType: string(searchType),
			Params:     params,
		},
		Result: res,
		Summary: SavedSummary{
			Timestamp: time.Now().UTC(),
		},
	}
	if res != nil {
		ss.Summary.TotalResults = res.TotalResults
		ss.Summary.Returned = len(res.Items)
	}

	data, err := yaml.Marshal(&ss)
	if err != nil {
		return fmt.Errorf("marshaling saved search: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSavedSearch loads a previously saved search from disk.
func ReadSavedSearch(path string) (*SavedSearch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading saved search: %w", err)
	}
	var ss SavedSearch
	if err := yaml.Unmarshal(data, &ss); err != nil {
		return nil, fmt.Errorf("parsing saved search: %w", err)
	}
	return &ss, nil
}
