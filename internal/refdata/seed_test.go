package refdata

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"savemyfridge/internal/inventory"
	"savemyfridge/internal/points"
	"savemyfridge/internal/waste"
)

var today = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	logg := logrus.New()
	logg.SetOutput(io.Discard)
	return logg
}

func newInventory() *inventory.Service {
	return inventory.NewService(
		inventory.NewMemoryRepository(),
		points.NewService(points.NewMemoryRepository()),
		waste.NewService(waste.NewMemoryRepository()),
	)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "food_data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

const validCSV = `name,category,default_days,storage_tip,disposal_rule
계란,단백질,14,냉장 보관,껍질은 일반 쓰레기
우유,유제품,7,개봉 후 3일 내 소비,팩은 종이류
상추,채소,3,키친타월에 감싸 보관,음식물 쓰레기
`

func TestLoadParsesRows(t *testing.T) {
	rows, err := Load(writeCSV(t, validCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Name != "계란" || first.Category != "단백질" || first.DefaultDays != 14 {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.StorageTip != "냉장 보관" || first.DisposalRule != "껍질은 일반 쓰레기" {
		t.Fatalf("unexpected guidance fields: %+v", first)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad header", "foo,bar\n계란,단백질\n"},
		{"non-numeric days", "name,category,default_days,storage_tip,disposal_rule\n계란,단백질,soon,,\n"},
		{"unknown category", "name,category,default_days,storage_tip,disposal_rule\n고등어,생선,2,,\n"},
		{"blank name", "name,category,default_days,storage_tip,disposal_rule\n,단백질,14,,\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeCSV(t, tc.content)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestImportIfEmptyExpandsRows(t *testing.T) {
	ctx := context.Background()
	inv := newInventory()

	err := ImportIfEmpty(ctx, quietLogger(), inv, writeCSV(t, validCSV), today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := inv.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(items))
	}

	// list is expiry-sorted, so 상추 (3 days) comes first
	first := items[0]
	if first.Name != "상추" {
		t.Fatalf("expected 상추 first, got %q", first.Name)
	}
	if first.Quantity != 1 {
		t.Fatalf("expected quantity defaulted to 1, got %d", first.Quantity)
	}
	if want := today.AddDate(0, 0, 3); !first.ExpiryDate.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, first.ExpiryDate)
	}
}

func TestImportSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	inv := newInventory()

	if _, err := inv.Add(ctx, inventory.AddInput{
		Name: "버터", Category: "dairy", Quantity: 1, ExpiryDate: today,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ImportIfEmpty(ctx, quietLogger(), inv, writeCSV(t, validCSV), today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, _ := inv.Count(ctx)
	if count != 1 {
		t.Fatalf("import must not run against a non-empty store, got %d records", count)
	}
}

func TestImportDegradesGracefully(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		inv := newInventory()
		path := filepath.Join(t.TempDir(), "absent.csv")

		if err := ImportIfEmpty(ctx, quietLogger(), inv, path, today); err != nil {
			t.Fatalf("missing file must not be an error, got %v", err)
		}
		count, _ := inv.Count(ctx)
		if count != 0 {
			t.Fatalf("expected empty inventory, got %d", count)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		inv := newInventory()
		path := writeCSV(t, "name,category\nbroken\n")

		if err := ImportIfEmpty(ctx, quietLogger(), inv, path, today); err != nil {
			t.Fatalf("malformed file must degrade, got %v", err)
		}
		count, _ := inv.Count(ctx)
		if count != 0 {
			t.Fatalf("expected empty inventory, got %d", count)
		}
	})

	// one bad row among good ones must not leave a partial import behind
	t.Run("unknown category mid-file", func(t *testing.T) {
		inv := newInventory()
		path := writeCSV(t, "name,category,default_days,storage_tip,disposal_rule\n"+
			"계란,단백질,14,냉장 보관,껍질은 일반 쓰레기\n"+
			"고등어,생선,2,냉동 보관,음식물 쓰레기\n")

		if err := ImportIfEmpty(ctx, quietLogger(), inv, path, today); err != nil {
			t.Fatalf("malformed file must degrade, got %v", err)
		}
		count, _ := inv.Count(ctx)
		if count != 0 {
			t.Fatalf("expected empty inventory, got %d", count)
		}
	})
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	inv := newInventory()
	wasteService := waste.NewService(waste.NewMemoryRepository())

	if err := SeedDemo(ctx, quietLogger(), inv, wasteService, today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, _ := inv.Count(ctx)
	if count != 4 {
		t.Fatalf("expected 4 demo ingredients, got %d", count)
	}

	total, _ := wasteService.Total(ctx)
	if total != 800+650+500+420 {
		t.Fatalf("unexpected demo waste total: %d", total)
	}
}
