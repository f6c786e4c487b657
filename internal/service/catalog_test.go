package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestCatalogSeedIsIdempotent(t *testing.T) {
	products := newMockProductRepository()
	catalog := NewCatalogService(products, zap.NewNop())
	ctx := context.Background()

	if err := catalog.Seed(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	count, _ := products.Count(ctx)
	if count == 0 {
		t.Fatal("seeding an empty catalog should insert products")
	}

	// A second run against the now non-empty catalog must not duplicate.
	if err := catalog.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	after, _ := products.Count(ctx)
	if after != count {
		t.Errorf("second seed changed product count from %d to %d", count, after)
	}
}

func TestCatalogSeedSkipsNonEmptyCatalog(t *testing.T) {
	products := newMockProductRepository()
	catalog := NewCatalogService(products, zap.NewNop())
	ctx := context.Background()

	existing := activeProduct("Свой товар", 999)
	products.Create(ctx, existing)

	if err := catalog.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	count, _ := products.Count(ctx)
	if count != 1 {
		t.Errorf("seed must not touch a non-empty catalog, count = %d", count)
	}
}
