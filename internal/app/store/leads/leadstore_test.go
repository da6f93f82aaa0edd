package leadstore

import (
	"testing"
	"time"

	"github.com/sovramarkets/sovrasite/internal/domain/models"
	"github.com/sovramarkets/sovrasite/internal/testutil"
)

func testLead(reference string) models.Lead {
	return models.Lead{
		Reference:    reference,
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Organization: "Analytical Engines",
		Role:         "Press",
		Message:      "I would like a platform demo.",
		RemoteIP:     "203.0.113.7",
	}
}

func TestInsert_AssignsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	created, err := store.Insert(ctx, testLead("ref-1"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected a generated ObjectID")
	}
	if created.Status != models.LeadStatusNew {
		t.Errorf("status = %q, want %q", created.Status, models.LeadStatusNew)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if created.Forwarded {
		t.Error("new lead should not be marked forwarded")
	}
}

func TestGetByReference(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	if _, err := store.Insert(ctx, testLead("ref-lookup")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByReference(ctx, "ref-lookup")
	if err != nil {
		t.Fatalf("GetByReference failed: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	if _, err := store.GetByReference(ctx, "no-such-ref"); err == nil {
		t.Error("expected error for missing reference")
	}
}

func TestMarkForwarded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	created, err := store.Insert(ctx, testLead("ref-fwd"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := store.MarkForwarded(ctx, created.ID); err != nil {
		t.Fatalf("MarkForwarded failed: %v", err)
	}

	got, err := store.GetByReference(ctx, "ref-fwd")
	if err != nil {
		t.Fatalf("GetByReference failed: %v", err)
	}
	if !got.Forwarded {
		t.Error("expected lead to be marked forwarded")
	}
}

func TestListRecent_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	for _, ref := range []string{"ref-a", "ref-b", "ref-c"} {
		if _, err := store.Insert(ctx, testLead(ref)); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		time.Sleep(5 * time.Millisecond) // distinct created_at
	}

	leads, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("got %d leads, want 2", len(leads))
	}
	if leads[0].Reference != "ref-c" {
		t.Errorf("newest lead = %q, want ref-c", leads[0].Reference)
	}
}

func TestCountSince(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	if _, err := store.Insert(ctx, testLead("ref-count")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	n, err := store.CountSince(ctx, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("CountSince failed: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	n, err = store.CountSince(ctx, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("CountSince failed: %v", err)
	}
	if n != 0 {
		t.Errorf("future count = %d, want 0", n)
	}
}

func TestEnsureIndexes_ReferenceUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	if _, err := store.Insert(ctx, testLead("ref-dup")); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	if _, err := store.Insert(ctx, testLead("ref-dup")); err == nil {
		t.Error("expected duplicate reference to be rejected")
	}
}
