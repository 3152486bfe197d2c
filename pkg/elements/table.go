package elements

// Table is the periodic table of elements 1 to 118 with the heavy hydrogen
// pseudo-elements D and T.
//
// Atomic masses are IUPAC standard weights. Isotope masses and abundances are
// the representative natural compositions; elements without a stable isotope
// carry their longest-lived isotope with abundance 1. Tritium and carbon-14
// are listed with zero abundance so labelled formulae can refer to them.
// Covalent radii are from Cordero et al. 2008, van der Waals radii from
// Bondi 1964 and Mantina 2009.
var Table = MustNew(elementList(), HeavyHydrogen()...)

// MustNew is like NewElements but panics on error.
func MustNew(list []*Element, extras ...*Element) *Elements {
	t, err := NewElements(list, extras...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup finds an element in Table.
func Lookup(key string) (*Element, error) {
	return Table.Lookup(key)
}

// MustLookup is like Lookup but panics when the element is unknown.
func MustLookup(key string) *Element {
	e, err := Table.Lookup(key)
	if err != nil {
		panic(err)
	}
	return e
}

// ValidateAll validates every element in Table.
func ValidateAll() error {
	return Table.Validate()
}

// HeavyHydrogen returns the Deuterium and Tritium pseudo-elements.
func HeavyHydrogen() []*Element {
	return []*Element{
		el(1, "D", "Deuterium", 1, 1, "s", Nonmetals, 2.01410178, 2.20, 0.31, 1.10, "1s",
			iso(2, 2.0141017780, 1.0)),
		el(1, "T", "Tritium", 1, 1, "s", Nonmetals, 3.0160492, 2.20, 0.31, 1.10, "1s",
			iso(3, 3.0160492675, 1.0)),
	}
}

func iso(massNumber int, mass, abundance float64) Isotope {
	return Isotope{MassNumber: massNumber, Mass: mass, Abundance: abundance}
}

func el(number int, symbol, name string, group, period int, block string, series int,
	mass, eleneg, covrad, vdwrad float64, eleconfig string, isotopes ...Isotope) *Element {
	e := &Element{
		Number:    number,
		Symbol:    symbol,
		Name:      name,
		Group:     group,
		Period:    period,
		Block:     block,
		Series:    series,
		Mass:      mass,
		Eleneg:    eleneg,
		Covrad:    covrad,
		Vdwrad:    vdwrad,
		Eleconfig: eleconfig,
		Isotopes:  make(map[int]Isotope, len(isotopes)),
	}
	for _, i := range isotopes {
		e.Isotopes[i.MassNumber] = i
	}
	return e
}

func elementList() []*Element {
	return []*Element{
		el(1, "H", "Hydrogen", 1, 1, "s", Nonmetals, 1.00794, 2.20, 0.31, 1.10, "1s",
			iso(1, 1.0078250321, 0.999885), iso(2, 2.0141017780, 0.000115), iso(3, 3.0160492675, 0)),
		el(2, "He", "Helium", 18, 1, "s", NobleGases, 4.002602, 0, 0.28, 1.40, "1s2",
			iso(3, 3.0160293097, 0.00000137), iso(4, 4.0026032497, 0.99999863)),
		el(3, "Li", "Lithium", 1, 2, "s", AlkaliMetals, 6.941, 0.98, 1.28, 1.82, "[He] 2s",
			iso(6, 6.0151223, 0.0759), iso(7, 7.0160040, 0.9241)),
		el(4, "Be", "Beryllium", 2, 2, "s", AlkalineEarthMetals, 9.012182, 1.57, 0.96, 1.53, "[He] 2s2",
			iso(9, 9.0121821, 1.0)),
		el(5, "B", "Boron", 13, 2, "p", Metalloids, 10.811, 2.04, 0.84, 1.92, "[He] 2s2 2p",
			iso(10, 10.0129370, 0.199), iso(11, 11.0093055, 0.801)),
		el(6, "C", "Carbon", 14, 2, "p", Nonmetals, 12.0107, 2.55, 0.76, 1.70, "[He] 2s2 2p2",
			iso(12, 12.0, 0.9893), iso(13, 13.0033548378, 0.0107), iso(14, 14.0032419887, 0)),
		el(7, "N", "Nitrogen", 15, 2, "p", Nonmetals, 14.0067, 3.04, 0.71, 1.55, "[He] 2s2 2p3",
			iso(14, 14.0030740052, 0.99632), iso(15, 15.0001088984, 0.00368)),
		el(8, "O", "Oxygen", 16, 2, "p", Nonmetals, 15.9994, 3.44, 0.66, 1.52, "[He] 2s2 2p4",
			iso(16, 15.9949146221, 0.99757), iso(17, 16.99913150, 0.00038), iso(18, 17.9991604, 0.00205)),
		el(9, "F", "Fluorine", 17, 2, "p", Halogens, 18.9984032, 3.98, 0.57, 1.47, "[He] 2s2 2p5",
			iso(19, 18.99840320, 1.0)),
		el(10, "Ne", "Neon", 18, 2, "p", NobleGases, 20.1797, 0, 0.58, 1.54, "[He] 2s2 2p6",
			iso(20, 19.9924401759, 0.9048), iso(21, 20.99384674, 0.0027), iso(22, 21.99138551, 0.0925)),
		el(11, "Na", "Sodium", 1, 3, "s", AlkaliMetals, 22.98976928, 0.93, 1.66, 2.27, "[Ne] 3s",
			iso(23, 22.98976966, 1.0)),
		el(12, "Mg", "Magnesium", 2, 3, "s", AlkalineEarthMetals, 24.3050, 1.31, 1.41, 1.73, "[Ne] 3s2",
			iso(24, 23.98504187, 0.7899), iso(25, 24.98583700, 0.1000), iso(26, 25.98259300, 0.1101)),
		el(13, "Al", "Aluminium", 13, 3, "p", PoorMetals, 26.9815386, 1.61, 1.21, 1.84, "[Ne] 3s2 3p",
			iso(27, 26.98153841, 1.0)),
		el(14, "Si", "Silicon", 14, 3, "p", Metalloids, 28.0855, 1.90, 1.11, 2.10, "[Ne] 3s2 3p2",
			iso(28, 27.97692649, 0.92223), iso(29, 28.97649468, 0.04685), iso(30, 29.97377018, 0.03092)),
		el(15, "P", "Phosphorus", 15, 3, "p", Nonmetals, 30.973762, 2.19, 1.07, 1.80, "[Ne] 3s2 3p3",
			iso(31, 30.97376151, 1.0)),
		el(16, "S", "Sulfur", 16, 3, "p", Nonmetals, 32.065, 2.58, 1.05, 1.80, "[Ne] 3s2 3p4",
			iso(32, 31.97207069, 0.9493), iso(33, 32.97145850, 0.0076), iso(34, 33.96786683, 0.0429),
			iso(36, 35.96708088, 0.0002)),
		el(17, "Cl", "Chlorine", 17, 3, "p", Halogens, 35.453, 3.16, 1.02, 1.75, "[Ne] 3s2 3p5",
			iso(35, 34.96885271, 0.7578), iso(37, 36.96590260, 0.2422)),
		el(18, "Ar", "Argon", 18, 3, "p", NobleGases, 39.948, 0, 1.06, 1.88, "[Ne] 3s2 3p6",
			iso(36, 35.96754628, 0.003365), iso(38, 37.9627322, 0.000632), iso(40, 39.962383123, 0.996003)),
		el(19, "K", "Potassium", 1, 4, "s", AlkaliMetals, 39.0983, 0.82, 2.03, 2.75, "[Ar] 4s",
			iso(39, 38.9637069, 0.932581), iso(40, 39.96399867, 0.000117), iso(41, 40.96182597, 0.067302)),
		el(20, "Ca", "Calcium", 2, 4, "s", AlkalineEarthMetals, 40.078, 1.00, 1.76, 2.31, "[Ar] 4s2",
			iso(40, 39.9625912, 0.96941), iso(42, 41.9586183, 0.00647), iso(43, 42.9587668, 0.00135),
			iso(44, 43.9554811, 0.02086), iso(46, 45.9536928, 0.00004), iso(48, 47.952534, 0.00187)),
		el(21, "Sc", "Scandium", 3, 4, "d", TransitionMetals, 44.955912, 1.36, 1.70, 0, "[Ar] 3d 4s2",
			iso(45, 44.9559102, 1.0)),
		el(22, "Ti", "Titanium", 4, 4, "d", TransitionMetals, 47.867, 1.54, 1.60, 0, "[Ar] 3d2 4s2",
			iso(46, 45.9526295, 0.0825), iso(47, 46.9517638, 0.0744), iso(48, 47.9479471, 0.7372),
			iso(49, 48.9478708, 0.0541), iso(50, 49.9447921, 0.0518)),
		el(23, "V", "Vanadium", 5, 4, "d", TransitionMetals, 50.9415, 1.63, 1.53, 0, "[Ar] 3d3 4s2",
			iso(50, 49.9471628, 0.00250), iso(51, 50.9439637, 0.99750)),
		el(24, "Cr", "Chromium", 6, 4, "d", TransitionMetals, 51.9961, 1.66, 1.39, 1.97, "[Ar] 3d5 4s",
			iso(50, 49.9460496, 0.04345), iso(52, 51.9405119, 0.83789), iso(53, 52.9406538, 0.09501),
			iso(54, 53.9388849, 0.02365)),
		el(25, "Mn", "Manganese", 7, 4, "d", TransitionMetals, 54.938045, 1.55, 1.61, 1.96, "[Ar] 3d5 4s2",
			iso(55, 54.9380496, 1.0)),
		el(26, "Fe", "Iron", 8, 4, "d", TransitionMetals, 55.845, 1.83, 1.52, 1.96, "[Ar] 3d6 4s2",
			iso(54, 53.9396148, 0.05845), iso(56, 55.9349421, 0.91754), iso(57, 56.9353987, 0.02119),
			iso(58, 57.9332805, 0.00282)),
		el(27, "Co", "Cobalt", 9, 4, "d", TransitionMetals, 58.933195, 1.88, 1.50, 1.95, "[Ar] 3d7 4s2",
			iso(59, 58.9332002, 1.0)),
		el(28, "Ni", "Nickel", 10, 4, "d", TransitionMetals, 58.6934, 1.91, 1.24, 1.63, "[Ar] 3d8 4s2",
			iso(58, 57.9353479, 0.680769), iso(60, 59.9307906, 0.262231), iso(61, 60.9310604, 0.011399),
			iso(62, 61.9283488, 0.036345), iso(64, 63.9279696, 0.009256)),
		el(29, "Cu", "Copper", 11, 4, "d", TransitionMetals, 63.546, 1.90, 1.32, 2.00, "[Ar] 3d10 4s",
			iso(63, 62.9296011, 0.6917), iso(65, 64.9277937, 0.3083)),
		el(30, "Zn", "Zinc", 12, 4, "d", TransitionMetals, 65.38, 1.65, 1.22, 2.02, "[Ar] 3d10 4s2",
			iso(64, 63.9291466, 0.4863), iso(66, 65.9260368, 0.2790), iso(67, 66.9271309, 0.0410),
			iso(68, 67.9248476, 0.1875), iso(70, 69.925325, 0.0062)),
		el(31, "Ga", "Gallium", 13, 4, "p", PoorMetals, 69.723, 1.81, 1.22, 1.87, "[Ar] 3d10 4s2 4p",
			iso(69, 68.925581, 0.60108), iso(71, 70.9247050, 0.39892)),
		el(32, "Ge", "Germanium", 14, 4, "p", Metalloids, 72.63, 2.01, 1.20, 2.11, "[Ar] 3d10 4s2 4p2",
			iso(70, 69.9242504, 0.2084), iso(72, 71.9220762, 0.2754), iso(73, 72.9234594, 0.0773),
			iso(74, 73.9211782, 0.3628), iso(76, 75.9214027, 0.0761)),
		el(33, "As", "Arsenic", 15, 4, "p", Metalloids, 74.92160, 2.18, 1.19, 1.85, "[Ar] 3d10 4s2 4p3",
			iso(75, 74.9215964, 1.0)),
		el(34, "Se", "Selenium", 16, 4, "p", Nonmetals, 78.96, 2.55, 1.20, 1.90, "[Ar] 3d10 4s2 4p4",
			iso(74, 73.9224766, 0.0089), iso(76, 75.9192141, 0.0937), iso(77, 76.9199146, 0.0763),
			iso(78, 77.9173095, 0.2377), iso(80, 79.9165218, 0.4961), iso(82, 81.9167000, 0.0873)),
		el(35, "Br", "Bromine", 17, 4, "p", Halogens, 79.904, 2.96, 1.20, 1.83, "[Ar] 3d10 4s2 4p5",
			iso(79, 78.9183376, 0.5069), iso(81, 80.916291, 0.4931)),
		el(36, "Kr", "Krypton", 18, 4, "p", NobleGases, 83.798, 3.00, 1.16, 2.02, "[Ar] 3d10 4s2 4p6",
			iso(78, 77.920386, 0.0035), iso(80, 79.916378, 0.0228), iso(82, 81.9134846, 0.1158),
			iso(83, 82.914136, 0.1149), iso(84, 83.911507, 0.5700), iso(86, 85.9106103, 0.1730)),
		el(37, "Rb", "Rubidium", 1, 5, "s", AlkaliMetals, 85.4678, 0.82, 2.20, 3.03, "[Kr] 5s",
			iso(85, 84.9117893, 0.7217), iso(87, 86.9091835, 0.2783)),
		el(38, "Sr", "Strontium", 2, 5, "s", AlkalineEarthMetals, 87.62, 0.95, 1.95, 2.49, "[Kr] 5s2",
			iso(84, 83.913425, 0.0056), iso(86, 85.9092624, 0.0986), iso(87, 86.9088793, 0.0700),
			iso(88, 87.9056143, 0.8258)),
		el(39, "Y", "Yttrium", 3, 5, "d", TransitionMetals, 88.90585, 1.22, 1.90, 0, "[Kr] 4d 5s2",
			iso(89, 88.9058479, 1.0)),
		el(40, "Zr", "Zirconium", 4, 5, "d", TransitionMetals, 91.224, 1.33, 1.75, 0, "[Kr] 4d2 5s2",
			iso(90, 89.9047037, 0.5145), iso(91, 90.9056450, 0.1122), iso(92, 91.9050401, 0.1715),
			iso(94, 93.9063158, 0.1738), iso(96, 95.908276, 0.0280)),
		el(41, "Nb", "Niobium", 5, 5, "d", TransitionMetals, 92.90638, 1.6, 1.64, 0, "[Kr] 4d4 5s",
			iso(93, 92.9063775, 1.0)),
		el(42, "Mo", "Molybdenum", 6, 5, "d", TransitionMetals, 95.96, 2.16, 1.54, 0, "[Kr] 4d5 5s",
			iso(92, 91.906810, 0.1484), iso(94, 93.9050876, 0.0925), iso(95, 94.9058415, 0.1592),
			iso(96, 95.9046789, 0.1668), iso(97, 96.9060210, 0.0955), iso(98, 97.9054078, 0.2413),
			iso(100, 99.907477, 0.0963)),
		el(43, "Tc", "Technetium", 7, 5, "d", TransitionMetals, 97.907216, 1.9, 1.47, 0, "[Kr] 4d5 5s2",
			iso(98, 97.907216, 1.0)),
		el(44, "Ru", "Ruthenium", 8, 5, "d", TransitionMetals, 101.07, 2.2, 1.46, 0, "[Kr] 4d7 5s",
			iso(96, 95.907598, 0.0554), iso(98, 97.905287, 0.0187), iso(99, 98.9059393, 0.1276),
			iso(100, 99.9042197, 0.1260), iso(101, 100.9055822, 0.1706), iso(102, 101.9043495, 0.3155),
			iso(104, 103.905430, 0.1862)),
		el(45, "Rh", "Rhodium", 9, 5, "d", TransitionMetals, 102.90550, 2.28, 1.42, 0, "[Kr] 4d8 5s",
			iso(103, 102.905504, 1.0)),
		el(46, "Pd", "Palladium", 10, 5, "d", TransitionMetals, 106.42, 2.20, 1.39, 1.63, "[Kr] 4d10",
			iso(102, 101.905608, 0.0102), iso(104, 103.904035, 0.1114), iso(105, 104.905084, 0.2233),
			iso(106, 105.903483, 0.2733), iso(108, 107.903894, 0.2646), iso(110, 109.905152, 0.1172)),
		el(47, "Ag", "Silver", 11, 5, "d", TransitionMetals, 107.8682, 1.93, 1.45, 1.72, "[Kr] 4d10 5s",
			iso(107, 106.905093, 0.51839), iso(109, 108.904756, 0.48161)),
		el(48, "Cd", "Cadmium", 12, 5, "d", TransitionMetals, 112.411, 1.69, 1.44, 1.58, "[Kr] 4d10 5s2",
			iso(106, 105.906458, 0.0125), iso(108, 107.904183, 0.0089), iso(110, 109.903006, 0.1249),
			iso(111, 110.904182, 0.1280), iso(112, 111.9027572, 0.2413), iso(113, 112.9044009, 0.1222),
			iso(114, 113.9033581, 0.2873), iso(116, 115.904755, 0.0749)),
		el(49, "In", "Indium", 13, 5, "p", PoorMetals, 114.818, 1.78, 1.42, 1.93, "[Kr] 4d10 5s2 5p",
			iso(113, 112.904061, 0.0429), iso(115, 114.903878, 0.9571)),
		el(50, "Sn", "Tin", 14, 5, "p", PoorMetals, 118.710, 1.96, 1.39, 2.17, "[Kr] 4d10 5s2 5p2",
			iso(112, 111.904821, 0.0097), iso(114, 113.902782, 0.0066), iso(115, 114.903346, 0.0034),
			iso(116, 115.901744, 0.1454), iso(117, 116.902954, 0.0768), iso(118, 117.901606, 0.2422),
			iso(119, 118.903309, 0.0859), iso(120, 119.9021966, 0.3258), iso(122, 121.9034401, 0.0463),
			iso(124, 123.9052746, 0.0579)),
		el(51, "Sb", "Antimony", 15, 5, "p", Metalloids, 121.760, 2.05, 1.39, 2.06, "[Kr] 4d10 5s2 5p3",
			iso(121, 120.9038180, 0.5721), iso(123, 122.9042157, 0.4279)),
		el(52, "Te", "Tellurium", 16, 5, "p", Metalloids, 127.60, 2.1, 1.38, 2.06, "[Kr] 4d10 5s2 5p4",
			iso(120, 119.904020, 0.0009), iso(122, 121.9030471, 0.0255), iso(123, 122.9042730, 0.0089),
			iso(124, 123.9028195, 0.0474), iso(125, 124.9044247, 0.0707), iso(126, 125.9033055, 0.1884),
			iso(128, 127.9044614, 0.3174), iso(130, 129.9062228, 0.3408)),
		el(53, "I", "Iodine", 17, 5, "p", Halogens, 126.90447, 2.66, 1.39, 1.98, "[Kr] 4d10 5s2 5p5",
			iso(127, 126.904468, 1.0)),
		el(54, "Xe", "Xenon", 18, 5, "p", NobleGases, 131.293, 2.6, 1.40, 2.16, "[Kr] 4d10 5s2 5p6",
			iso(124, 123.9058958, 0.0009), iso(126, 125.904269, 0.0009), iso(128, 127.9035304, 0.0192),
			iso(129, 128.9047795, 0.2644), iso(130, 129.9035079, 0.0408), iso(131, 130.9050819, 0.2118),
			iso(132, 131.9041545, 0.2689), iso(134, 133.9053945, 0.1044), iso(136, 135.907220, 0.0887)),
		el(55, "Cs", "Caesium", 1, 6, "s", AlkaliMetals, 132.9054519, 0.79, 2.44, 3.43, "[Xe] 6s",
			iso(133, 132.905447, 1.0)),
		el(56, "Ba", "Barium", 2, 6, "s", AlkalineEarthMetals, 137.327, 0.89, 2.15, 2.68, "[Xe] 6s2",
			iso(130, 129.906310, 0.00106), iso(132, 131.905056, 0.00101), iso(134, 133.904503, 0.02417),
			iso(135, 134.905683, 0.06592), iso(136, 135.904570, 0.07854), iso(137, 136.905821, 0.11232),
			iso(138, 137.905241, 0.71698)),
		el(57, "La", "Lanthanum", 3, 6, "f", Lanthanides, 138.90547, 1.10, 2.07, 0, "[Xe] 5d 6s2",
			iso(138, 137.907107, 0.00090), iso(139, 138.906348, 0.99910)),
		el(58, "Ce", "Cerium", 3, 6, "f", Lanthanides, 140.116, 1.12, 2.04, 0, "[Xe] 4f 5d 6s2",
			iso(136, 135.907140, 0.00185), iso(138, 137.905986, 0.00251), iso(140, 139.905434, 0.88450),
			iso(142, 141.909240, 0.11114)),
		el(59, "Pr", "Praseodymium", 3, 6, "f", Lanthanides, 140.90765, 1.13, 2.03, 0, "[Xe] 4f3 6s2",
			iso(141, 140.907648, 1.0)),
		el(60, "Nd", "Neodymium", 3, 6, "f", Lanthanides, 144.242, 1.14, 2.01, 0, "[Xe] 4f4 6s2",
			iso(142, 141.907719, 0.272), iso(143, 142.909810, 0.122), iso(144, 143.910083, 0.238),
			iso(145, 144.912569, 0.083), iso(146, 145.913112, 0.172), iso(148, 147.916889, 0.057),
			iso(150, 149.920887, 0.056)),
		el(61, "Pm", "Promethium", 3, 6, "f", Lanthanides, 144.912744, 1.13, 1.99, 0, "[Xe] 4f5 6s2",
			iso(145, 144.912744, 1.0)),
		el(62, "Sm", "Samarium", 3, 6, "f", Lanthanides, 150.36, 1.17, 1.98, 0, "[Xe] 4f6 6s2",
			iso(144, 143.911995, 0.0307), iso(147, 146.914893, 0.1499), iso(148, 147.914818, 0.1124),
			iso(149, 148.917180, 0.1382), iso(150, 149.917271, 0.0738), iso(152, 151.919728, 0.2675),
			iso(154, 153.922205, 0.2275)),
		el(63, "Eu", "Europium", 3, 6, "f", Lanthanides, 151.964, 1.2, 1.98, 0, "[Xe] 4f7 6s2",
			iso(151, 150.919846, 0.4781), iso(153, 152.921226, 0.5219)),
		el(64, "Gd", "Gadolinium", 3, 6, "f", Lanthanides, 157.25, 1.20, 1.96, 0, "[Xe] 4f7 5d 6s2",
			iso(152, 151.919788, 0.0020), iso(154, 153.920862, 0.0218), iso(155, 154.922619, 0.1480),
			iso(156, 155.922120, 0.2047), iso(157, 156.923957, 0.1565), iso(158, 157.924101, 0.2484),
			iso(160, 159.927051, 0.2186)),
		el(65, "Tb", "Terbium", 3, 6, "f", Lanthanides, 158.92535, 1.1, 1.94, 0, "[Xe] 4f9 6s2",
			iso(159, 158.925343, 1.0)),
		el(66, "Dy", "Dysprosium", 3, 6, "f", Lanthanides, 162.500, 1.22, 1.92, 0, "[Xe] 4f10 6s2",
			iso(156, 155.924278, 0.0006), iso(158, 157.924405, 0.0010), iso(160, 159.925194, 0.0234),
			iso(161, 160.926930, 0.1891), iso(162, 161.926795, 0.2551), iso(163, 162.928728, 0.2490),
			iso(164, 163.929171, 0.2818)),
		el(67, "Ho", "Holmium", 3, 6, "f", Lanthanides, 164.93032, 1.23, 1.92, 0, "[Xe] 4f11 6s2",
			iso(165, 164.930319, 1.0)),
		el(68, "Er", "Erbium", 3, 6, "f", Lanthanides, 167.259, 1.24, 1.89, 0, "[Xe] 4f12 6s2",
			iso(162, 161.928775, 0.0014), iso(164, 163.929197, 0.0161), iso(166, 165.930290, 0.3361),
			iso(167, 166.932045, 0.2293), iso(168, 167.932368, 0.2678), iso(170, 169.935460, 0.1493)),
		el(69, "Tm", "Thulium", 3, 6, "f", Lanthanides, 168.93421, 1.25, 1.90, 0, "[Xe] 4f13 6s2",
			iso(169, 168.934211, 1.0)),
		el(70, "Yb", "Ytterbium", 3, 6, "f", Lanthanides, 173.054, 1.1, 1.87, 0, "[Xe] 4f14 6s2",
			iso(168, 167.933894, 0.0013), iso(170, 169.934759, 0.0304), iso(171, 170.936322, 0.1428),
			iso(172, 171.9363777, 0.2183), iso(173, 172.9382068, 0.1613), iso(174, 173.9388581, 0.3183),
			iso(176, 175.942568, 0.1276)),
		el(71, "Lu", "Lutetium", 3, 6, "d", Lanthanides, 174.9668, 1.27, 1.87, 0, "[Xe] 4f14 5d 6s2",
			iso(175, 174.9407679, 0.9741), iso(176, 175.9426824, 0.0259)),
		el(72, "Hf", "Hafnium", 4, 6, "d", TransitionMetals, 178.49, 1.3, 1.75, 0, "[Xe] 4f14 5d2 6s2",
			iso(174, 173.940040, 0.0016), iso(176, 175.9414018, 0.0526), iso(177, 176.9432200, 0.1860),
			iso(178, 177.9436977, 0.2728), iso(179, 178.9458151, 0.1362), iso(180, 179.9465488, 0.3508)),
		el(73, "Ta", "Tantalum", 5, 6, "d", TransitionMetals, 180.94788, 1.5, 1.70, 0, "[Xe] 4f14 5d3 6s2",
			iso(180, 179.947466, 0.00012), iso(181, 180.947996, 0.99988)),
		el(74, "W", "Tungsten", 6, 6, "d", TransitionMetals, 183.84, 2.36, 1.62, 0, "[Xe] 4f14 5d4 6s2",
			iso(180, 179.946706, 0.0012), iso(182, 181.948206, 0.2650), iso(183, 182.9502245, 0.1431),
			iso(184, 183.9509326, 0.3064), iso(186, 185.954362, 0.2843)),
		el(75, "Re", "Rhenium", 7, 6, "d", TransitionMetals, 186.207, 1.9, 1.51, 0, "[Xe] 4f14 5d5 6s2",
			iso(185, 184.9529557, 0.3740), iso(187, 186.9557508, 0.6260)),
		el(76, "Os", "Osmium", 8, 6, "d", TransitionMetals, 190.23, 2.2, 1.44, 0, "[Xe] 4f14 5d6 6s2",
			iso(184, 183.952491, 0.0002), iso(186, 185.953838, 0.0159), iso(187, 186.9557479, 0.0196),
			iso(188, 187.9558360, 0.1324), iso(189, 188.9581449, 0.1615), iso(190, 189.958445, 0.2626),
			iso(192, 191.961479, 0.4078)),
		el(77, "Ir", "Iridium", 9, 6, "d", TransitionMetals, 192.217, 2.2, 1.41, 0, "[Xe] 4f14 5d7 6s2",
			iso(191, 190.960591, 0.373), iso(193, 192.962924, 0.627)),
		el(78, "Pt", "Platinum", 10, 6, "d", TransitionMetals, 195.084, 2.28, 1.36, 1.75, "[Xe] 4f14 5d9 6s",
			iso(190, 189.959930, 0.00014), iso(192, 191.961035, 0.00782), iso(194, 193.962664, 0.32967),
			iso(195, 194.964774, 0.33832), iso(196, 195.964935, 0.25242), iso(198, 197.967876, 0.07163)),
		el(79, "Au", "Gold", 11, 6, "d", TransitionMetals, 196.966569, 2.54, 1.36, 1.66, "[Xe] 4f14 5d10 6s",
			iso(197, 196.966552, 1.0)),
		el(80, "Hg", "Mercury", 12, 6, "d", TransitionMetals, 200.59, 2.00, 1.32, 1.55, "[Xe] 4f14 5d10 6s2",
			iso(196, 195.965815, 0.0015), iso(198, 197.966752, 0.0997), iso(199, 198.968262, 0.1687),
			iso(200, 199.968309, 0.2310), iso(201, 200.970285, 0.1318), iso(202, 201.970626, 0.2986),
			iso(204, 203.973476, 0.0687)),
		el(81, "Tl", "Thallium", 13, 6, "p", PoorMetals, 204.3833, 1.62, 1.45, 1.96, "[Xe] 4f14 5d10 6s2 6p",
			iso(203, 202.972329, 0.29524), iso(205, 204.974412, 0.70476)),
		el(82, "Pb", "Lead", 14, 6, "p", PoorMetals, 207.2, 2.33, 1.46, 2.02, "[Xe] 4f14 5d10 6s2 6p2",
			iso(204, 203.973029, 0.014), iso(206, 205.974449, 0.241), iso(207, 206.975881, 0.221),
			iso(208, 207.976636, 0.524)),
		el(83, "Bi", "Bismuth", 15, 6, "p", PoorMetals, 208.98040, 2.02, 1.48, 2.07, "[Xe] 4f14 5d10 6s2 6p3",
			iso(209, 208.980383, 1.0)),
		el(84, "Po", "Polonium", 16, 6, "p", Metalloids, 208.982416, 2.0, 1.40, 1.97, "[Xe] 4f14 5d10 6s2 6p4",
			iso(209, 208.982416, 1.0)),
		el(85, "At", "Astatine", 17, 6, "p", Halogens, 209.987131, 2.2, 1.50, 2.02, "[Xe] 4f14 5d10 6s2 6p5",
			iso(210, 209.987131, 1.0)),
		el(86, "Rn", "Radon", 18, 6, "p", NobleGases, 222.0175705, 0, 1.50, 2.20, "[Xe] 4f14 5d10 6s2 6p6",
			iso(222, 222.0175705, 1.0)),
		el(87, "Fr", "Francium", 1, 7, "s", AlkaliMetals, 223.0197307, 0.7, 2.60, 3.48, "[Rn] 7s",
			iso(223, 223.0197307, 1.0)),
		el(88, "Ra", "Radium", 2, 7, "s", AlkalineEarthMetals, 226.0254026, 0.9, 2.21, 2.83, "[Rn] 7s2",
			iso(226, 226.0254026, 1.0)),
		el(89, "Ac", "Actinium", 3, 7, "f", Actinides, 227.0277470, 1.1, 2.15, 0, "[Rn] 6d 7s2",
			iso(227, 227.0277470, 1.0)),
		el(90, "Th", "Thorium", 3, 7, "f", Actinides, 232.03806, 1.3, 2.06, 0, "[Rn] 6d2 7s2",
			iso(232, 232.0380504, 1.0)),
		el(91, "Pa", "Protactinium", 3, 7, "f", Actinides, 231.03588, 1.5, 2.00, 0, "[Rn] 5f2 6d 7s2",
			iso(231, 231.0358789, 1.0)),
		el(92, "U", "Uranium", 3, 7, "f", Actinides, 238.02891, 1.38, 1.96, 1.86, "[Rn] 5f3 6d 7s2",
			iso(234, 234.0409456, 0.000055), iso(235, 235.0439231, 0.007200), iso(238, 238.0507826, 0.992745)),
		el(93, "Np", "Neptunium", 3, 7, "f", Actinides, 237.0481673, 1.36, 1.90, 0, "[Rn] 5f4 6d 7s2",
			iso(237, 237.0481673, 1.0)),
		el(94, "Pu", "Plutonium", 3, 7, "f", Actinides, 244.064198, 1.28, 1.87, 0, "[Rn] 5f6 7s2",
			iso(244, 244.064198, 1.0)),
		el(95, "Am", "Americium", 3, 7, "f", Actinides, 243.0613727, 1.3, 1.80, 0, "[Rn] 5f7 7s2",
			iso(243, 243.0613727, 1.0)),
		el(96, "Cm", "Curium", 3, 7, "f", Actinides, 247.070347, 1.3, 1.69, 0, "[Rn] 5f7 6d 7s2",
			iso(247, 247.070347, 1.0)),
		el(97, "Bk", "Berkelium", 3, 7, "f", Actinides, 247.070299, 1.3, 0, 0, "[Rn] 5f9 7s2",
			iso(247, 247.070299, 1.0)),
		el(98, "Cf", "Californium", 3, 7, "f", Actinides, 251.079580, 1.3, 0, 0, "[Rn] 5f10 7s2",
			iso(251, 251.079580, 1.0)),
		el(99, "Es", "Einsteinium", 3, 7, "f", Actinides, 252.082970, 1.3, 0, 0, "[Rn] 5f11 7s2",
			iso(252, 252.082970, 1.0)),
		el(100, "Fm", "Fermium", 3, 7, "f", Actinides, 257.095099, 1.3, 0, 0, "[Rn] 5f12 7s2",
			iso(257, 257.095099, 1.0)),
		el(101, "Md", "Mendelevium", 3, 7, "f", Actinides, 258.098425, 1.3, 0, 0, "[Rn] 5f13 7s2",
			iso(258, 258.098425, 1.0)),
		el(102, "No", "Nobelium", 3, 7, "f", Actinides, 259.10102, 1.3, 0, 0, "[Rn] 5f14 7s2",
			iso(259, 259.10102, 1.0)),
		el(103, "Lr", "Lawrencium", 3, 7, "d", Actinides, 262.10969, 0, 0, 0, "[Rn] 5f14 7s2 7p",
			iso(262, 262.10969, 1.0)),
		el(104, "Rf", "Rutherfordium", 4, 7, "d", TransitionMetals, 267.12179, 0, 0, 0, "[Rn] 5f14 6d2 7s2",
			iso(267, 267.12179, 1.0)),
		el(105, "Db", "Dubnium", 5, 7, "d", TransitionMetals, 268.12567, 0, 0, 0, "[Rn] 5f14 6d3 7s2",
			iso(268, 268.12567, 1.0)),
		el(106, "Sg", "Seaborgium", 6, 7, "d", TransitionMetals, 271.13393, 0, 0, 0, "[Rn] 5f14 6d4 7s2",
			iso(271, 271.13393, 1.0)),
		el(107, "Bh", "Bohrium", 7, 7, "d", TransitionMetals, 272.13826, 0, 0, 0, "[Rn] 5f14 6d5 7s2",
			iso(272, 272.13826, 1.0)),
		el(108, "Hs", "Hassium", 8, 7, "d", TransitionMetals, 270.13429, 0, 0, 0, "[Rn] 5f14 6d6 7s2",
			iso(270, 270.13429, 1.0)),
		el(109, "Mt", "Meitnerium", 9, 7, "d", TransitionMetals, 276.15159, 0, 0, 0, "[Rn] 5f14 6d7 7s2",
			iso(276, 276.15159, 1.0)),
		el(110, "Ds", "Darmstadtium", 10, 7, "d", TransitionMetals, 281.16451, 0, 0, 0, "[Rn] 5f14 6d8 7s2",
			iso(281, 281.16451, 1.0)),
		el(111, "Rg", "Roentgenium", 11, 7, "d", TransitionMetals, 280.16514, 0, 0, 0, "[Rn] 5f14 6d9 7s2",
			iso(280, 280.16514, 1.0)),
		el(112, "Cn", "Copernicium", 12, 7, "d", TransitionMetals, 285.17712, 0, 0, 0, "[Rn] 5f14 6d10 7s2",
			iso(285, 285.17712, 1.0)),
		el(113, "Nh", "Nihonium", 13, 7, "p", PoorMetals, 284.17873, 0, 0, 0, "[Rn] 5f14 6d10 7s2 7p",
			iso(284, 284.17873, 1.0)),
		el(114, "Fl", "Flerovium", 14, 7, "p", PoorMetals, 289.19042, 0, 0, 0, "[Rn] 5f14 6d10 7s2 7p2",
			iso(289, 289.19042, 1.0)),
		el(115, "Mc", "Moscovium", 15, 7, "p", PoorMetals, 288.19274, 0, 0, 0, "[Rn] 5f14 6d10 7s2 7p3",
			iso(288, 288.19274, 1.0)),
		el(116, "Lv", "Livermorium", 16, 7, "p", PoorMetals, 293.20449, 0, 0, 0, "[Rn] 5f14 6d10 7s2 7p4",
			iso(293, 293.20449, 1.0)),
		el(117, "Ts", "Tennessine", 17, 7, "p", Halogens, 292.20746, 0, 0, 0, "[Rn] 5f14 6d10 7s2 7p5",
			iso(292, 292.20746, 1.0)),
		el(118, "Og", "Oganesson", 18, 7, "p", NobleGases, 294.21392, 0, 0, 0, "[Rn] 5f14 6d10 7s2 7p6",
			iso(294, 294.21392, 1.0)),
	}
}
