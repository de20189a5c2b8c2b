package quiz

// Compound is a formula with its molar mass rounded to g/mol.
type Compound struct {
	Formula string
	Mass    int
}

// Element carries what the atom tasks need. Charge is 0 when the element has
// no common ion.
type Element struct {
	Symbol string
	Name   string
	Z      int // atomic number
	A      int // mass number
	Charge int
}

// HasIon reports whether the element has a defined ionic charge.
func (e Element) HasIon() bool {
	return e.Charge != 0
}

var Compounds = []Compound{
	{"CO2", 44}, {"H2O", 18}, {"NaCl", 58},
	{"NH3", 17}, {"CH4", 16}, {"MgO", 40},
	{"AlCl3", 132}, {"SiO2", 60}, {"PCl5", 206},
	{"SO3", 80}, {"LiF", 26}, {"BeO", 25},
	{"BF3", 68}, {"NaH", 24}, {"MgS", 56},
	{"HCl", 36}, {"H2S", 34}, {"NaF", 42},
	{"Al2O3", 102}, {"SiCl4", 168}, {"P2O5", 142},
}

var Elements = []Element{
	{Symbol: "H", Name: "Hydrogen", Z: 1, A: 1, Charge: +1},
	{Symbol: "Li", Name: "Lithium", Z: 3, A: 7, Charge: +1},
	{Symbol: "Be", Name: "Beryllium", Z: 4, A: 9, Charge: +2},
	{Symbol: "C", Name: "Carbon", Z: 6, A: 12},
	{Symbol: "N", Name: "Nitrogen", Z: 7, A: 14, Charge: -3},
	{Symbol: "O", Name: "Oxygen", Z: 8, A: 16, Charge: -2},
}
