package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

var writeHeader = []string{
	"name", "package_size", "package_unit", "package_cost",
	"vendor", "category", "on_hand", "leftover", "low_threshold",
}

// Write serializes the snapshot back to catalog CSV in load order, in the
// canonical column layout.
func Write(w io.Writer, c *Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(writeHeader); err != nil {
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	for _, item := range c.Items() {
		record := []string{
			item.Name,
			item.PackageSize.String(),
			item.PackageUnit,
			item.PackageCost.String(),
			item.Vendor,
			item.Category,
			item.OnHand.String(),
			item.Leftover.String(),
			item.LowThreshold.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write catalog row for %q: %w", item.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the snapshot to a CSV file, replacing its contents.
func WriteFile(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	if err := Write(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
