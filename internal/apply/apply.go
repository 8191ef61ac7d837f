// Package apply plans, executes, and verifies branding writes against a
// registry store. Entries are independent, so a failed write does not stop
// the remaining ones; the outcome reports exactly which entries applied.
package apply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"samsoft-rebrand/internal/branding"
	"samsoft-rebrand/internal/winreg"
)

// Change describes what applying one profile entry would do.
type Change struct {
	Name   string
	Old    string
	Exists bool
	New    string
}

// Needed reports whether a write would alter the stored value.
func (c Change) Needed() bool {
	return !c.Exists || c.Old != c.New
}

// EntryResult is the outcome of one write.
type EntryResult struct {
	Name string
	Err  error
}

// Result is the outcome of a whole apply run.
type Result struct {
	RunID   string
	Entries []EntryResult
}

// Err aggregates the per-entry failures, nil when every write applied.
func (r Result) Err() error {
	var errs []error
	for _, e := range r.Entries {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, e.Err))
		}
	}
	return errors.Join(errs...)
}

// Options tunes an apply run.
type Options struct {
	// Preflight runs once before any write. A non-nil error aborts the run
	// with nothing written; this is where the caller hooks the elevation
	// check so an unprivileged run cannot partially mutate the registry.
	Preflight func() error
}

// Plan reads the current value of every profile entry and returns the
// changes an apply would make. It never writes.
func Plan(store winreg.Store, p *branding.Profile) ([]Change, error) {
	entries := p.Entries()
	changes := make([]Change, 0, len(entries))
	for _, e := range entries {
		old, err := store.GetString(e.Name)
		switch {
		case errors.Is(err, winreg.ErrNotExist):
			changes = append(changes, Change{Name: e.Name, New: e.Value})
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", e.Name, err)
		default:
			changes = append(changes, Change{Name: e.Name, Old: old, Exists: true, New: e.Value})
		}
	}
	return changes, nil
}

// Apply writes every profile entry to the store. The returned error is nil
// only when the preflight passed and every write applied; per-entry detail
// is in the Result either way.
func Apply(ctx context.Context, store winreg.Store, p *branding.Profile, logger *log.Logger, opts Options) (Result, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	res := Result{RunID: uuid.NewString()}

	if err := p.Validate(); err != nil {
		return res, err
	}
	if opts.Preflight != nil {
		if err := opts.Preflight(); err != nil {
			logger.Printf("apply run=%s aborted by preflight: %v", res.RunID, err)
			return res, err
		}
	}

	logger.Printf("apply run=%s started, entries=%d", res.RunID, len(p.Entries()))

	for _, e := range p.Entries() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		err := store.SetString(e.Name, e.Value)
		res.Entries = append(res.Entries, EntryResult{Name: e.Name, Err: err})
		if err != nil {
			logger.Printf("apply run=%s %s failed: %v", res.RunID, e.Name, err)
			continue
		}
		logger.Printf("apply run=%s %s=%q", res.RunID, e.Name, e.Value)
	}

	if err := res.Err(); err != nil {
		return res, err
	}
	logger.Printf("apply run=%s completed", res.RunID)
	return res, nil
}

// Verify reads every profile entry back and reports any value that does not
// match the profile exactly.
func Verify(store winreg.Store, p *branding.Profile) error {
	var errs []error
	for _, e := range p.Entries() {
		got, err := store.GetString(e.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("read back %s: %w", e.Name, err))
			continue
		}
		if got != e.Value {
			errs = append(errs, fmt.Errorf("%s=%q, want %q", e.Name, got, e.Value))
		}
	}
	return errors.Join(errs...)
}
