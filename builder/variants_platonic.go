// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go — canonical face lists for the Platonic solids.
//
// Design:
//   • Single source of truth for the five closed Platonic meshes.
//   • Every face is wound counter-clockwise seen from outside, so every
//     edge is traversed once in each direction.
//   • Datasets are built once at package initialization and never mutated.
//
// Labelings:
//   • Tetrahedron: vertices 0..3.
//   • Cube: bottom square 0-1-2-3, top square 4-5-6-7, verticals i-(i+4).
//   • Octahedron: ±x = 0,1; ±y = 2,3; ±z = 4,5.
//   • Dodecahedron: top pentagon 0..4, bottom pentagon 5..9, middle
//     10-cycle 10..19; top i joins 10+2i, bottom j joins 11+2j.
//   • Icosahedron: top pole 0, top ring 1..5, bottom ring 6..10, bottom
//     pole 11; top i joins bottom i+5 and i+6 (mod ring).

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

// platonicVertexCounts maps each solid to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicFaces maps each solid to its outward-wound faces.
var platonicFaces = map[PlatonicName][][]int{
	Tetrahedron: {
		{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0},
	},
	Cube: {
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{2, 3, 7, 6}, {0, 4, 7, 3}, {1, 2, 6, 5},
	},
	Octahedron: {
		{4, 0, 2}, {4, 2, 1}, {4, 1, 3}, {4, 3, 0},
		{5, 2, 0}, {5, 1, 2}, {5, 3, 1}, {5, 0, 3},
	},
	Dodecahedron: dodecahedronFaces(),
	Icosahedron: {
		// top cap
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
		// band, upward-pointing
		{2, 1, 7}, {3, 2, 8}, {4, 3, 9}, {5, 4, 10}, {1, 5, 6},
		// band, downward-pointing
		{7, 1, 6}, {8, 2, 7}, {9, 3, 8}, {10, 4, 9}, {6, 5, 10},
		// bottom cap
		{11, 7, 6}, {11, 8, 7}, {11, 9, 8}, {11, 10, 9}, {11, 6, 10},
	},
}

// dodecahedronFaces derives the twelve pentagons of the labeling above.
func dodecahedronFaces() [][]int {
	mid := func(k int) int { return 10 + k%10 }
	faces := [][]int{{0, 1, 2, 3, 4}, {5, 9, 8, 7, 6}}
	for i := 0; i < 5; i++ {
		faces = append(faces, []int{(i + 1) % 5, i, mid(2 * i), mid(2*i + 1), mid(2*i + 2)})
	}
	for j := 0; j < 5; j++ {
		faces = append(faces, []int{mid(2*j + 1), 5 + j, 5 + (j+1)%5, mid(2*j + 3), mid(2*j + 2)})
	}

	return faces
}
