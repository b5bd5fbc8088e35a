package refdata

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"savemyfridge/internal/inventory"
	"savemyfridge/internal/waste"
)

// ImportIfEmpty expands the reference table into inventory records, one per
// row with quantity 1 and expiry_date = today + default_days. It only runs
// against an empty store, so a restart never duplicates data. A missing or
// malformed file degrades to an empty starting inventory; it never aborts
// startup.
func ImportIfEmpty(ctx context.Context, log *logrus.Logger, inv *inventory.Service, path string, today time.Time) error {
	count, err := inv.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Info("no reference data file, starting with an empty inventory")
		return nil
	}
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("reference data load failed, starting with an empty inventory")
		return nil
	}

	imported := 0
	for _, row := range rows {
		_, err := inv.Add(ctx, inventory.AddInput{
			Name:         row.Name,
			Category:     row.Category,
			Quantity:     1,
			ExpiryDate:   today.AddDate(0, 0, row.DefaultDays),
			StorageTip:   row.StorageTip,
			DisposalRule: row.DisposalRule,
		})
		if err != nil {
			log.WithError(err).WithField("name", row.Name).Warn("skipping reference row")
			continue
		}
		imported++
	}

	log.WithFields(logrus.Fields{"path": path, "rows": imported}).Info("reference data imported")
	return nil
}

// demo fixtures, matching the session-state defaults of the ephemeral variant
var demoIngredients = []inventory.AddInput{
	{Name: "계란", Category: "단백질", Quantity: 10},
	{Name: "우유", Category: "유제품", Quantity: 1},
	{Name: "상추", Category: "채소", Quantity: 3},
	{Name: "치킨", Category: "배달음식", Quantity: 2},
}

var demoExpiryOffsets = []int{5, 3, 1, 2}

var demoWaste = []struct {
	DaysAgo int
	Grams   int
}{
	{21, 800},
	{14, 650},
	{7, 500},
	{0, 420},
}

// SeedDemo preloads the demo fixtures used by the in-memory backend.
func SeedDemo(ctx context.Context, log *logrus.Logger, inv *inventory.Service, wasteSvc *waste.Service, today time.Time) error {
	for i, in := range demoIngredients {
		in.ExpiryDate = today.AddDate(0, 0, demoExpiryOffsets[i])
		if _, err := inv.Add(ctx, in); err != nil {
			return err
		}
	}

	for _, w := range demoWaste {
		if _, err := wasteSvc.Record(ctx, today.AddDate(0, 0, -w.DaysAgo), w.Grams); err != nil {
			return err
		}
	}

	log.Info("demo data seeded")
	return nil
}
