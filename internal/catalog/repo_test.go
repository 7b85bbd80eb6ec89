package catalog

import (
	"context"
	"fmt"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Product{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestUpsert_ByNameReplacesFields(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	first := &Product{
		Name:     "GIGABYTE GeForce RTX 4060",
		Price:    "11,900 บาท",
		Image:    "https://example.com/a.jpg",
		URL:      "https://example.com/a",
		SpecText: "Memory Size 8GB\n",
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &Product{
		Name:     "GIGABYTE GeForce RTX 4060",
		Price:    "10,500 บาท",
		Image:    "https://example.com/b.jpg",
		URL:      "https://example.com/b",
		SpecText: "Memory Size 8GB\nBoost Clock: 2475 MHz\n",
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	products, err := repo.FetchAll(ctx)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product after double upsert, got %d", len(products))
	}
	if products[0].Price != "10,500 บาท" {
		t.Fatalf("expected second price to win, got %q", products[0].Price)
	}
	if products[0].URL != "https://example.com/b" {
		t.Fatalf("expected url replaced, got %q", products[0].URL)
	}
}

func TestDeleteAllAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		if err := repo.Upsert(ctx, &Product{Name: name, Price: "5,000 บาท"}); err != nil {
			t.Fatalf("upsert %s: %v", name, err)
		}
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("count after delete: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty catalog, got %d", n)
	}
}

func TestNumericPrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12,500 บาท", 12500, true},
		{"7000บาท", 7000, true},
		{"4500.50", 4500.5, true},
		{"N/A", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := NumericPrice(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NumericPrice(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMemorySizeGB(t *testing.T) {
	if n, ok := MemorySizeGB("Chipset: NVIDIA\nMemory Size 8GB\nBus: PCIe"); !ok || n != 8 {
		t.Fatalf("expected (8, true), got (%d, %v)", n, ok)
	}
	if n, ok := MemorySizeGB("memory size 12 gb"); !ok || n != 12 {
		t.Fatalf("case-insensitive match failed: (%d, %v)", n, ok)
	}
	if _, ok := MemorySizeGB("Boost Clock: 2475 MHz"); ok {
		t.Fatalf("expected no match for spec text without memory size")
	}
}
