// Package elemtype holds the static Gmsh MSH 4.1 element-type catalogue:
// 140 numeric identifiers mapped to a family name and a fixed node arity,
// or a marker that the element record carries an explicit leading count.
package elemtype

// Descriptor describes one catalogue entry.
type Descriptor struct {
	ID       int
	Name     string
	Variable bool
	Arity    int // meaningless when Variable is true
}

var catalogue = map[int]Descriptor{
	1: {ID: 1, Name: "Line2", Arity: 2},
	2: {ID: 2, Name: "Triangle3", Arity: 3},
	3: {ID: 3, Name: "Quadrangle4", Arity: 4},
	4: {ID: 4, Name: "Tetrahedron4", Arity: 4},
	5: {ID: 5, Name: "Hexahedron8", Arity: 8},
	6: {ID: 6, Name: "Prism6", Arity: 6},
	7: {ID: 7, Name: "Pyramid5", Arity: 5},
	8: {ID: 8, Name: "Line3", Arity: 3},
	9: {ID: 9, Name: "Triangle6", Arity: 6},
	10: {ID: 10, Name: "Quadrangle9", Arity: 9},
	11: {ID: 11, Name: "Tetrahedron10", Arity: 10},
	12: {ID: 12, Name: "Hexahedron27", Arity: 27},
	13: {ID: 13, Name: "Prism18", Arity: 18},
	14: {ID: 14, Name: "Pyramid14", Arity: 14},
	15: {ID: 15, Name: "Point", Arity: 1},
	16: {ID: 16, Name: "Quadrangle8", Arity: 8},
	17: {ID: 17, Name: "Hexahedron20", Arity: 20},
	18: {ID: 18, Name: "Prism15", Arity: 15},
	19: {ID: 19, Name: "Pyramid13", Arity: 13},
	20: {ID: 20, Name: "Triangle9", Arity: 9},
	21: {ID: 21, Name: "Triangle10", Arity: 10},
	22: {ID: 22, Name: "Triangle12", Arity: 12},
	23: {ID: 23, Name: "Triangle15", Arity: 15},
	24: {ID: 24, Name: "Triangle15I", Arity: 15},
	25: {ID: 25, Name: "Triangle21", Arity: 21},
	26: {ID: 26, Name: "Line4", Arity: 4},
	27: {ID: 27, Name: "Line5", Arity: 5},
	28: {ID: 28, Name: "Line6", Arity: 6},
	29: {ID: 29, Name: "Tetrahedron20", Arity: 20},
	30: {ID: 30, Name: "Tetrahedron35", Arity: 35},
	31: {ID: 31, Name: "Tetrahedron56", Arity: 56},
	32: {ID: 32, Name: "Tetrahedron22", Arity: 22},
	33: {ID: 33, Name: "Tetrahedron28", Arity: 28},
	34: {ID: 34, Name: "Polygon", Variable: true},
	35: {ID: 35, Name: "Polyhedron", Variable: true},
	36: {ID: 36, Name: "Quadrangle16", Arity: 16},
	37: {ID: 37, Name: "Quadrangle25", Arity: 25},
	38: {ID: 38, Name: "Quadrangle36", Arity: 36},
	39: {ID: 39, Name: "Quadrangle12", Arity: 12},
	40: {ID: 40, Name: "Quadrangle16I", Arity: 16},
	41: {ID: 41, Name: "Quadrangle20", Arity: 20},
	42: {ID: 42, Name: "Triangle28", Arity: 28},
	43: {ID: 43, Name: "Triangle36", Arity: 36},
	44: {ID: 44, Name: "Triangle45", Arity: 45},
	45: {ID: 45, Name: "Triangle55", Arity: 55},
	46: {ID: 46, Name: "Triangle66", Arity: 66},
	47: {ID: 47, Name: "Quadrangle49", Arity: 49},
	48: {ID: 48, Name: "Quadrangle64", Arity: 64},
	49: {ID: 49, Name: "Quadrangle81", Arity: 81},
	50: {ID: 50, Name: "Quadrangle100", Arity: 100},
	51: {ID: 51, Name: "Quadrangle121", Arity: 121},
	52: {ID: 52, Name: "Triangle18", Arity: 18},
	53: {ID: 53, Name: "Triangle21I", Arity: 21},
	54: {ID: 54, Name: "Triangle24", Arity: 24},
	55: {ID: 55, Name: "Triangle27", Arity: 27},
	56: {ID: 56, Name: "Triangle30", Arity: 30},
	57: {ID: 57, Name: "Quadrangle24", Arity: 24},
	58: {ID: 58, Name: "Quadrangle28", Arity: 28},
	59: {ID: 59, Name: "Quadrangle32", Arity: 32},
	60: {ID: 60, Name: "Quadrangle36I", Arity: 36},
	61: {ID: 61, Name: "Quadrangle40", Arity: 40},
	62: {ID: 62, Name: "Line7", Arity: 7},
	63: {ID: 63, Name: "Line8", Arity: 8},
	64: {ID: 64, Name: "Line9", Arity: 9},
	65: {ID: 65, Name: "Line10", Arity: 10},
	66: {ID: 66, Name: "Line11", Arity: 11},
	67: {ID: 67, Name: "LineB", Variable: true},
	68: {ID: 68, Name: "TriangleB", Variable: true},
	69: {ID: 69, Name: "PolygonB", Variable: true},
	70: {ID: 70, Name: "LineC", Variable: true},
	71: {ID: 71, Name: "Tetrahedron84", Arity: 84},
	72: {ID: 72, Name: "Tetrahedron120", Arity: 120},
	73: {ID: 73, Name: "Tetrahedron165", Arity: 165},
	74: {ID: 74, Name: "Tetrahedron220", Arity: 220},
	75: {ID: 75, Name: "Tetrahedron286", Arity: 286},
	79: {ID: 79, Name: "Tetrahedron34", Arity: 34},
	80: {ID: 80, Name: "Tetrahedron40", Arity: 40},
	81: {ID: 81, Name: "Tetrahedron46", Arity: 46},
	82: {ID: 82, Name: "Tetrahedron52", Arity: 52},
	83: {ID: 83, Name: "Tetrahedron58", Arity: 58},
	84: {ID: 84, Name: "Line1", Arity: 1},
	85: {ID: 85, Name: "Triangle1", Arity: 1},
	86: {ID: 86, Name: "Quadrangle1", Arity: 1},
	87: {ID: 87, Name: "Tetrahedron1", Arity: 1},
	88: {ID: 88, Name: "Hexahedron1", Arity: 1},
	89: {ID: 89, Name: "Prism1", Arity: 1},
	90: {ID: 90, Name: "Prism40", Arity: 40},
	91: {ID: 91, Name: "Prism75", Arity: 75},
	92: {ID: 92, Name: "Hexahedron64", Arity: 64},
	93: {ID: 93, Name: "Hexahedron125", Arity: 125},
	94: {ID: 94, Name: "Hexahedron216", Arity: 216},
	95: {ID: 95, Name: "Hexahedron343", Arity: 343},
	96: {ID: 96, Name: "Hexahedron512", Arity: 512},
	97: {ID: 97, Name: "Hexahedron729", Arity: 729},
	98: {ID: 98, Name: "Hexahedron1000", Arity: 1000},
	99: {ID: 99, Name: "Hexahedron32", Arity: 32},
	100: {ID: 100, Name: "Hexahedron44", Arity: 44},
	101: {ID: 101, Name: "Hexahedron56", Arity: 56},
	102: {ID: 102, Name: "Hexahedron68", Arity: 68},
	103: {ID: 103, Name: "Hexahedron80", Arity: 80},
	104: {ID: 104, Name: "Hexahedron92", Arity: 92},
	105: {ID: 105, Name: "Hexahedron104", Arity: 104},
	106: {ID: 106, Name: "Prism126", Arity: 126},
	107: {ID: 107, Name: "Prism196", Arity: 196},
	108: {ID: 108, Name: "Prism288", Arity: 288},
	109: {ID: 109, Name: "Prism405", Arity: 405},
	110: {ID: 110, Name: "Prism550", Arity: 550},
	111: {ID: 111, Name: "Prism24", Arity: 24},
	112: {ID: 112, Name: "Prism33", Arity: 33},
	113: {ID: 113, Name: "Prism42", Arity: 42},
	114: {ID: 114, Name: "Prism51", Arity: 51},
	115: {ID: 115, Name: "Prism60", Arity: 60},
	116: {ID: 116, Name: "Prism69", Arity: 69},
	117: {ID: 117, Name: "Prism78", Arity: 78},
	118: {ID: 118, Name: "Pyramid30", Arity: 30},
	119: {ID: 119, Name: "Pyramid55", Arity: 55},
	120: {ID: 120, Name: "Pyramid91", Arity: 91},
	121: {ID: 121, Name: "Pyramid140", Arity: 140},
	122: {ID: 122, Name: "Pyramid204", Arity: 204},
	123: {ID: 123, Name: "Pyramid285", Arity: 285},
	124: {ID: 124, Name: "Pyramid385", Arity: 385},
	125: {ID: 125, Name: "Pyramid21", Arity: 21},
	126: {ID: 126, Name: "Pyramid29", Arity: 29},
	127: {ID: 127, Name: "Pyramid37", Arity: 37},
	128: {ID: 128, Name: "Pyramid45", Arity: 45},
	129: {ID: 129, Name: "Pyramid53", Arity: 53},
	130: {ID: 130, Name: "Pyramid61", Arity: 61},
	131: {ID: 131, Name: "Pyramid69", Arity: 69},
	132: {ID: 132, Name: "Pyramid1", Arity: 1},
	133: {ID: 133, Name: "PointSub", Variable: true},
	134: {ID: 134, Name: "LineSub", Variable: true},
	135: {ID: 135, Name: "TriangleSub", Variable: true},
	136: {ID: 136, Name: "TetrahedronSub", Variable: true},
	137: {ID: 137, Name: "Tetrahedron16", Arity: 16},
	138: {ID: 138, Name: "TriangleMini", Variable: true},
	139: {ID: 139, Name: "TetrahedronMini", Variable: true},
	140: {ID: 140, Name: "TriHedron4", Arity: 4},
}

// Lookup returns the descriptor for a Gmsh element type identifier. It
// reports false for identifiers outside [1,140] and for the undefined
// gap at 76-78.
func Lookup(id int) (Descriptor, bool) {
	d, ok := catalogue[id]
	return d, ok
}

// NodeCount returns the fixed arity for a non-variable element type. It
// panics if called on a variable-arity descriptor; callers must check
// Variable first and read the explicit leading count instead.
func (d Descriptor) NodeCount() int {
	if d.Variable {
		panic("elemtype: NodeCount called on variable-arity type " + d.Name)
	}
	return d.Arity
}

