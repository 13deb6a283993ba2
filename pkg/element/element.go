// Package element provides the chemical element symbol table indexed by
// atomic number Z. Index 0 is the neutron.
package element

import "fmt"

// MaxZ is the highest atomic number in the symbol table (unbinilium). The
// table runs past Z=118 to Uue and Ubn so older tables using them still read.
const MaxZ = 120

// symbols holds element symbols in order of atomic number.
var symbols = [MaxZ + 1]string{
	"n",
	"H", "He", "Li", "Be", "B",
	"C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P",
	"S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn",
	"Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br",
	"Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh",
	"Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs",
	"Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb",
	"Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re",
	"Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At",
	"Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am",
	"Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db",
	"Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Uut", "Fl", "Uup",
	"Lv", "Uus", "Uuo", "Uue", "Ubn",
}

// UnknownElementError is returned when Z falls outside the symbol table.
type UnknownElementError struct {
	Z int
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("no element symbol for Z=%d (supported range is 0..%d)", e.Z, MaxZ)
}

// Symbol returns the element symbol for atomic number z.
func Symbol(z int) (string, error) {
	if z < 0 || z > MaxZ {
		return "", &UnknownElementError{Z: z}
	}
	return symbols[z], nil
}

// Lookup returns the atomic number for a symbol. The match is exact.
func Lookup(symbol string) (int, bool) {
	for z, s := range symbols {
		if s == symbol {
			return z, true
		}
	}
	return 0, false
}

// Symbols returns a copy of the whole table.
func Symbols() []string {
	out := make([]string, len(symbols))
	copy(out, symbols[:])
	return out
}
