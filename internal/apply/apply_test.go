package apply

import (
	"context"
	"errors"
	"testing"

	"samsoft-rebrand/internal/branding"
	"samsoft-rebrand/internal/winreg"
)

// failingStore wraps a MemStore and rejects writes to one value name.
type failingStore struct {
	*winreg.MemStore
	failName string
	failErr  error
}

func (f *failingStore) SetString(name, value string) error {
	if name == f.failName {
		return f.failErr
	}
	return f.MemStore.SetString(name, value)
}

func TestPlanAgainstEmptyStore(t *testing.T) {
	changes, err := Plan(winreg.NewMemStore(nil), branding.Default())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(changes) != 4 {
		t.Fatalf("changes=%d, want 4", len(changes))
	}
	for _, c := range changes {
		if c.Exists {
			t.Fatalf("%s reported as existing on an empty store", c.Name)
		}
		if !c.Needed() {
			t.Fatalf("%s not needed on an empty store", c.Name)
		}
	}
}

func TestPlanAgainstConvergedStore(t *testing.T) {
	p := branding.Default()
	seed := make(map[string]string)
	for _, e := range p.Entries() {
		seed[e.Name] = e.Value
	}

	changes, err := Plan(winreg.NewMemStore(seed), p)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for _, c := range changes {
		if c.Needed() {
			t.Fatalf("%s still needed after convergence: old=%q new=%q", c.Name, c.Old, c.New)
		}
	}
}

func TestApplyWritesAllEntries(t *testing.T) {
	store := winreg.NewMemStore(map[string]string{
		branding.ValueProductName: "Windows 11 Pro",
	})
	p := branding.Default()

	res, err := Apply(context.Background(), store, p, nil, Options{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.RunID == "" {
		t.Fatal("RunID is empty")
	}
	if len(res.Entries) != 4 {
		t.Fatalf("entries=%d, want 4", len(res.Entries))
	}

	if err := Verify(store, p); err != nil {
		t.Fatalf("Verify after apply: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	store := winreg.NewMemStore(nil)
	p := branding.Default()

	if _, err := Apply(context.Background(), store, p, nil, Options{}); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	first := store.Values()

	if _, err := Apply(context.Background(), store, p, nil, Options{}); err != nil {
		t.Fatalf("second Apply: %v", err)
	}

	changes, err := Plan(store, p)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for _, c := range changes {
		if c.Needed() {
			t.Fatalf("%s still needed after two applies", c.Name)
		}
	}

	second := store.Values()
	if len(first) != len(second) {
		t.Fatalf("value count changed between runs: %d -> %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Fatalf("%s changed between runs: %q -> %q", k, v, second[k])
		}
	}
}

func TestApplyPartialFailureIsReported(t *testing.T) {
	writeErr := errors.New("access is denied")
	store := &failingStore{
		MemStore: winreg.NewMemStore(nil),
		failName: branding.ValueEditionID,
		failErr:  writeErr,
	}
	p := branding.Default()

	res, err := Apply(context.Background(), store, p, nil, Options{})
	if err == nil {
		t.Fatal("expected aggregated error for failed entry")
	}
	if !errors.Is(err, writeErr) {
		t.Fatalf("err=%v, want wrapped write error", err)
	}

	failed := 0
	for _, e := range res.Entries {
		if e.Err != nil {
			failed++
			if e.Name != branding.ValueEditionID {
				t.Fatalf("unexpected failed entry %s", e.Name)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("failed=%d, want 1", failed)
	}

	// The independent entries must still have been written.
	for _, name := range []string{
		branding.ValueProductName,
		branding.ValueRegisteredOwner,
		branding.ValueDisplayVersion,
	} {
		if _, err := store.GetString(name); err != nil {
			t.Fatalf("%s not written despite independent failure: %v", name, err)
		}
	}
}

func TestApplyPreflightFailureWritesNothing(t *testing.T) {
	store := winreg.NewMemStore(nil)
	preflightErr := errors.New("not elevated")

	_, err := Apply(context.Background(), store, branding.Default(), nil, Options{
		Preflight: func() error { return preflightErr },
	})
	if !errors.Is(err, preflightErr) {
		t.Fatalf("err=%v, want preflight error", err)
	}
	if n := len(store.Values()); n != 0 {
		t.Fatalf("store has %d values after failed preflight, want 0", n)
	}
}

func TestApplyStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := winreg.NewMemStore(nil)
	_, err := Apply(ctx, store, branding.Default(), nil, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if n := len(store.Values()); n != 0 {
		t.Fatalf("store has %d values after canceled context, want 0", n)
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	p := branding.Default()
	seed := make(map[string]string)
	for _, e := range p.Entries() {
		seed[e.Name] = e.Value
	}
	seed[branding.ValueDisplayVersion] = "23H2"

	err := Verify(winreg.NewMemStore(seed), p)
	if err == nil {
		t.Fatal("expected mismatch to be reported")
	}
}
