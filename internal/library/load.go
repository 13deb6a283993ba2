package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// Range is an inclusive integer range.
type Range struct {
	Min int `koanf:"min"`
	Max int `koanf:"max"`
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Default ranges cover every tabulated nuclide.
var (
	DefaultZRange = Range{Min: 0, Max: 120}
	DefaultNRange = Range{Min: 0, Max: 180}
)

// Limits are the observed extremes of a table. Valid is false while empty.
type Limits struct {
	Valid bool
	N     Range
	Z     Range
}

func (l *Limits) observe(n, z int) {
	if !l.Valid {
		*l = Limits{Valid: true, N: Range{n, n}, Z: Range{z, z}}
		return
	}
	l.N.Min = min(l.N.Min, n)
	l.N.Max = max(l.N.Max, n)
	l.Z.Min = min(l.Z.Min, z)
	l.Z.Max = max(l.Z.Max, z)
}

// Options control Load.
type Options struct {
	ZRange Range
	NRange Range
	Logger *slog.Logger
}

// Report summarizes a load.
type Report struct {
	Loaded   int
	Filtered int
	// Failures holds one error per entry that produced no record,
	// usually a *dialect.EntryError.
	Failures []error
	Limits   Limits
}

// Load builds every entry with d and adds the records within range to a new
// table. A failing entry is logged and reported; loading continues with the
// next one. Only context cancellation stops a load early.
func Load(ctx context.Context, entries []dialect.Entry, d dialect.Dialect, opts Options) (*Table, *Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.ZRange == (Range{}) {
		opts.ZRange = DefaultZRange
	}
	if opts.NRange == (Range{}) {
		opts.NRange = DefaultNRange
	}

	table := NewTable()
	report := &Report{}
	fail := func(e dialect.Entry, err error) {
		report.Failures = append(report.Failures, err)
		logger.Warn("skipping entry", "pos", e.Pos.String(), "error", err)
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		id, err := nuclide.ParseIdentity(e.Z, e.A)
		if err != nil {
			fail(e, &dialect.EntryError{Pos: e.Pos, Err: err})
			continue
		}
		if !opts.ZRange.Contains(id.Z) || !opts.NRange.Contains(id.N()) {
			report.Filtered++
			continue
		}

		n, err := d.Build(e)
		if err != nil {
			fail(e, err)
			continue
		}
		if err := table.Add(n); err != nil {
			fail(e, &dialect.EntryError{Pos: e.Pos, Nuclide: n.String(), Err: err})
			continue
		}
		report.Limits.observe(n.N(), n.Z())
		report.Loaded++
	}

	logger.Debug("loaded table",
		"dialect", d.Name(),
		"loaded", report.Loaded,
		"filtered", report.Filtered,
		"failed", len(report.Failures))
	return table, report, nil
}
