package contacts

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestInMemoryCreate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()
	start := time.Now().UTC()

	sub, err := repo.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.ID == "" {
		t.Error("expected submission ID to be set")
	}
	if sub.Name != "Jane Doe" {
		t.Errorf("expected name Jane Doe, got %s", sub.Name)
	}
	if sub.CreatedAt.Before(start) {
		t.Errorf("expected CreatedAt >= %v, got %v", start, sub.CreatedAt)
	}
}

func TestInMemoryCreateRejectsInvalid(t *testing.T) {
	repo := NewInMemoryRepository()

	req := validRequest()
	req.Email = "nope"
	if _, err := repo.Create(context.Background(), req); err == nil {
		t.Fatal("expected validation error")
	}

	subs, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected empty store, got %d records", len(subs))
	}
}

func TestInMemoryDuplicatePayloadsGetDistinctIDs(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %s", first.ID)
	}
}

func TestInMemoryListAllInsertionOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	const n = 5
	var ids []string
	for i := 0; i < n; i++ {
		req := validRequest()
		req.Subject = fmt.Sprintf("Subject number %d", i)
		sub, err := repo.Create(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids = append(ids, sub.ID)
	}

	subs, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != n {
		t.Fatalf("expected %d records, got %d", n, len(subs))
	}
	for i, sub := range subs {
		if sub.ID != ids[i] {
			t.Errorf("position %d: expected id %s, got %s", i, ids[i], sub.ID)
		}
	}
}

func TestInMemoryConcurrentCreates(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	const workers = 20
	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := repo.Create(ctx, validRequest())
			done <- err
		}()
	}
	for i := 0; i < workers; i++ {
		if err := <-done; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	subs, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != workers {
		t.Fatalf("expected %d records, got %d", workers, len(subs))
	}
	seen := map[string]bool{}
	for _, sub := range subs {
		if seen[sub.ID] {
			t.Fatalf("duplicate id %s", sub.ID)
		}
		seen[sub.ID] = true
	}
}
