// Package reconcile merges the three per-player sources into one canonical
// row. Every field resolves through the same fixed tier order: dotted paths
// into the structured scan result, alias lookups against the side-table row,
// narrative facts for a small field subset, and finally derivation from
// already-resolved fields. A tier that cannot produce a finite value for a
// field simply yields to the next tier; nothing in this package returns an
// error or panics during per-field resolution.
package reconcile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fairscan/fairscan/pkg/constants"
	"github.com/fairscan/fairscan/pkg/logging"
	"github.com/fairscan/fairscan/pkg/metric"
	"github.com/fairscan/fairscan/pkg/scans"
)

// Reconciler builds canonical rows from per-player inputs. A Reconciler is
// safe for concurrent use; the only mutable state is the alias memo, which
// is keyed by player and idempotent to recompute.
type Reconciler struct {
	aliases *AliasIndex
	workers int
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithWorkers bounds the number of players reconciled concurrently by
// ReconcileAll. Values below 1 fall back to the default.
func WithWorkers(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithAliasIndex supplies a shared alias index, letting callers reuse one
// memo across reconcilers.
func WithAliasIndex(idx *AliasIndex) Option {
	return func(r *Reconciler) {
		if idx != nil {
			r.aliases = idx
		}
	}
}

// New creates a Reconciler with options applied.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		aliases: NewAliasIndex(),
		workers: constants.DefaultScanWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile builds the canonical row for one player. The player name is
// carried verbatim, the narrative passes through unmodified, and every other
// field resolves through the tier order. Reconcile is pure: the same input
// always yields an identical row and provenance.
func (r *Reconciler) Reconcile(in scans.Input) (*scans.Row, Provenance) {
	row := &scans.Row{
		Player:    in.Name,
		Narrative: in.NarrativeText(),
	}
	facts := Extract(row.Narrative)

	prov := make(Provenance, len(fieldSpecs))
	for _, fs := range fieldSpecs {
		v, tier := r.resolve(fs, in, facts, row)
		fs.assign(row, v)
		prov[fs.field] = tier
	}
	return row, prov
}

// resolve walks one field through the tiers. Values that coerce or normalize
// to unknown at one tier degrade to the next; the structured source always
// wins when it can produce a finite value.
func (r *Reconciler) resolve(fs fieldSpec, in scans.Input, facts Facts, row *scans.Row) (metric.Value, Tier) {
	if raw, ok := firstPathValue(in.Structured, fs.paths); ok {
		if v := normalize(fs.kind, raw); v.Known() {
			return v, TierStructured
		}
	}
	if raw, ok := r.aliases.Lookup(in.Name, in.SideTable, fs.aliases); ok {
		if v := normalize(fs.kind, raw); v.Known() {
			return v, TierSideTable
		}
	}
	if fs.fact != factNone {
		if v := normalize(fs.kind, facts.value(fs.fact)); v.Known() {
			return v, TierNarrative
		}
	}
	if fs.derive != nil {
		if v := fs.derive(row); v.Known() {
			return v, TierDerived
		}
	}
	return metric.Unknown(), TierUnknown
}

// ReconcileAll reconciles every input, fanning the pure per-player work out
// over a bounded worker group. Rows come back in input order regardless of
// completion order; the only error is context cancellation.
func (r *Reconciler) ReconcileAll(ctx context.Context, inputs []scans.Input) ([]*scans.Row, error) {
	rows := make([]*scans.Row, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i], _ = r.Reconcile(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Int("players", len(rows)).
		Int("workers", r.workers).
		Msg("reconciled scan inputs")
	return rows, nil
}
