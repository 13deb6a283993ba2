package attrmap

import (
	"strconv"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// Entry is the inverse of Dialect.Build: it renders a record as attribute
// maps. Blocks the record does not carry are omitted.
func Entry(n *nuclide.Nuclide) dialect.Entry {
	e := dialect.Entry{
		Z:       strconv.Itoa(n.Z()),
		A:       strconv.Itoa(n.A()),
		Attrs:   make(map[string]dialect.Attributes, 3),
		Decays:  DecayAttributes(n.DecayModes()),
		Comment: n.Comment(),
	}
	if md, ok := n.MassDefect(); ok {
		e.Attrs[BlockMassDefect] = dialect.Attributes{
			"value":        md.Value.String(),
			"uncertainty":  md.Uncertainty.String(),
			"extrapolated": strconv.FormatBool(md.Extrapolated),
		}
	}
	if hl, ok := n.HalfLife(); ok {
		e.Attrs[BlockHalfLife] = HalfLifeAttributes(hl)
	}
	if spin, ok := n.Spin(); ok {
		e.Attrs[BlockSpin] = dialect.Attributes{
			"value":        spin.Value,
			"extrapolated": strconv.FormatBool(spin.Extrapolated),
		}
	}
	for _, iso := range n.Isomers() {
		e.Isomers = append(e.Isomers, dialect.Entry{
			Attrs: map[string]dialect.Attributes{
				BlockIsomer: {
					"energy":       iso.Energy.String(),
					"uncertainty":  iso.Uncertainty.String(),
					"extrapolated": strconv.FormatBool(iso.Extrapolated),
				},
				BlockHalfLife: HalfLifeAttributes(iso.HalfLife),
			},
			Decays:  DecayAttributes(iso.DecayModes),
			Comment: iso.Comment,
		})
	}
	return e
}

// HalfLifeAttributes renders a half-life block.
func HalfLifeAttributes(h nuclide.HalfLife) dialect.Attributes {
	return dialect.Attributes{
		"value":        h.Value.String(),
		"unit":         h.Unit,
		"uncertainty":  h.Uncertainty.String(),
		"relation":     h.Relation.String(),
		"extrapolated": strconv.FormatBool(h.Extrapolated),
	}
}

// DecayAttributes renders decay blocks in order.
func DecayAttributes(modes []nuclide.DecayMode) []dialect.Attributes {
	out := make([]dialect.Attributes, 0, len(modes))
	for _, d := range modes {
		out = append(out, dialect.Attributes{
			"mode":        d.Mode,
			"relation":    d.Relation.String(),
			"value":       d.Value.String(),
			"uncertainty": d.Uncertainty.String(),
		})
	}
	return out
}
