// Package refdata bootstraps the inventory from the food_data.csv reference
// table on first run.
package refdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"savemyfridge/internal/inventory"
)

// Row is one reference entry: an ingredient type with its recommended
// shelf life and handling guidance.
type Row struct {
	Name         string
	Category     string
	DefaultDays  int
	StorageTip   string
	DisposalRule string
}

var expectedHeader = []string{"name", "category", "default_days", "storage_tip", "disposal_rule"}

// Load reads and validates the whole reference file. Any malformed row
// fails the load as a whole so a partial import never happens.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d",
				path, i+2, len(expectedHeader), len(rec))
		}

		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, fmt.Errorf("%s row %d: blank name", path, i+2)
		}

		category := strings.TrimSpace(rec[1])
		if _, ok := inventory.ParseCategory(category); !ok {
			return nil, fmt.Errorf("%s row %d: unknown category %q", path, i+2, category)
		}

		days, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: default_days %q is not an integer", path, i+2, rec[2])
		}

		rows = append(rows, Row{
			Name:         name,
			Category:     category,
			DefaultDays:  days,
			StorageTip:   strings.TrimSpace(rec[3]),
			DisposalRule: strings.TrimSpace(rec[4]),
		})
	}
	return rows, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("expected header %v", expectedHeader)
	}
	for i, col := range expectedHeader {
		if strings.TrimSpace(header[i]) != col {
			return fmt.Errorf("expected header %v", expectedHeader)
		}
	}
	return nil
}
