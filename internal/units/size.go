package units

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Package size display strings come straight off distributor sheets:
// "750ml", "1L", "1.75 l", "25.4oz", or case packs like "6x750ml" where
// the per-package size is what matters.
var (
	sizeRe     = regexp.MustCompile(`^([\d.]+)\s*([a-z]+)$`)
	casePackRe = regexp.MustCompile(`^(\d+)\s*[x×]\s*([\d.]+)\s*([a-z]+)$`)
)

// ParsePackageSize parses a size display string into a single package's
// size and unit. Case-pack notation returns the per-package size.
func ParsePackageSize(display string) (decimal.Decimal, string, error) {
	text := strings.ToLower(strings.TrimSpace(display))
	if text == "" {
		return decimal.Decimal{}, "", fmt.Errorf("empty package size")
	}

	if m := casePackRe.FindStringSubmatch(text); m != nil {
		size, err := decimal.NewFromString(m[2])
		if err != nil {
			return decimal.Decimal{}, "", fmt.Errorf("invalid package size %q: %w", display, err)
		}
		if !size.IsPositive() {
			return decimal.Decimal{}, "", fmt.Errorf("package size %q is not positive", display)
		}
		return size, m[3], nil
	}

	m := sizeRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Decimal{}, "", fmt.Errorf("unrecognized package size %q", display)
	}
	size, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Decimal{}, "", fmt.Errorf("invalid package size %q: %w", display, err)
	}
	if !size.IsPositive() {
		return decimal.Decimal{}, "", fmt.Errorf("package size %q is not positive", display)
	}
	return size, m[2], nil
}
