package nuclide

import (
	"github.com/leapstack-labs/nuctab/pkg/units"
)

// AtomicMassUnitMeV is the energy equivalent of one atomic mass unit.
const AtomicMassUnitMeV = 931.494

// SecondsKind tags the result of HalfLifeSeconds.
type SecondsKind uint8

// Results of a half-life conversion.
const (
	// SecondsNone means no usable value: absent, unknown, unstable without a
	// measurement, or not numeric.
	SecondsNone SecondsKind = iota
	// SecondsMeasured means Value and Uncertainty hold seconds.
	SecondsMeasured
	// SecondsStable means the nuclide is stable (infinite half-life).
	SecondsStable
)

// Seconds is a half-life resolved to seconds.
type Seconds struct {
	Kind        SecondsKind
	Value       float64
	Uncertainty float64
}

// HalfLifeSeconds converts the stored half-life to seconds. Missing data is
// common and is reported through Kind, never as an error.
func (n *Nuclide) HalfLifeSeconds() Seconds {
	if n.halfLife == nil {
		return Seconds{}
	}
	return ToSeconds(*n.halfLife)
}

// ToSeconds converts any half-life record to seconds. An unknown or
// non-numeric uncertainty converts as zero.
func ToSeconds(h HalfLife) Seconds {
	switch h.Value.Kind {
	case HalfLifeStable:
		return Seconds{Kind: SecondsStable}
	case HalfLifeMeasured:
	default:
		return Seconds{}
	}

	t, ok := h.Value.Number.Float()
	if !ok {
		return Seconds{}
	}
	factor, ok := units.Seconds(h.Unit)
	if !ok {
		return Seconds{}
	}
	dt, _ := h.Uncertainty.Float()
	return Seconds{Kind: SecondsMeasured, Value: t * factor, Uncertainty: dt * factor}
}

// Mass is an experimental mass in MeV.
type Mass struct {
	Value       float64
	Uncertainty float64
}

// ExperimentalMass returns A·u + Δ in MeV. It reports false when the mass
// defect is absent, extrapolated or not numeric.
func (n *Nuclide) ExperimentalMass() (Mass, bool) {
	if n.massDefect == nil || n.massDefect.Extrapolated {
		return Mass{}, false
	}
	delta, ok := n.massDefect.Value.Float()
	if !ok {
		return Mass{}, false
	}
	dDelta, ok := n.massDefect.Uncertainty.Float()
	if !ok {
		return Mass{}, false
	}
	return Mass{
		Value:       float64(n.id.A)*AtomicMassUnitMeV + delta/1000,
		Uncertainty: dDelta / 1000,
	}, true
}
