package units

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML shape of a conversion table override file:
//
//	pairs:
//	  - from: oz
//	    to: ml
//	    ratio: "29.5735"
//	replace: false
type fileFormat struct {
	Pairs []filePair `yaml:"pairs"`
	// Replace drops the built-in defaults instead of extending them.
	Replace bool `yaml:"replace"`
}

type filePair struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Ratio string `yaml:"ratio"`
}

// Load reads a YAML conversion file and builds a table from the defaults
// plus the file's pairs (or the file's pairs alone when replace is set).
// A pair that duplicates or contradicts another fails the whole load;
// a bad conversion table silently miscosting every recipe is worse than
// a startup error.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversion file: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse conversion file %s: %w", path, err)
	}

	var pairs []Pair
	if !f.Replace {
		pairs = DefaultPairs()
	}
	for i, fp := range f.Pairs {
		ratio, err := decimal.NewFromString(fp.Ratio)
		if err != nil {
			return nil, fmt.Errorf("conversion file %s: pair %d has invalid ratio %q: %w", path, i+1, fp.Ratio, err)
		}
		pairs = append(pairs, Pair{From: fp.From, To: fp.To, Ratio: ratio})
	}

	t, err := NewTable(pairs)
	if err != nil {
		return nil, fmt.Errorf("conversion file %s: %w", path, err)
	}
	return t, nil
}
