package grid

import "fmt"

// Cell is one tile of the walkability map.
type Cell uint8

const (
	Floor Cell = iota
	Wall
)

// Grid dimensions are fixed for a session.
const (
	Width  = 18
	Height = 12
)

// Layout runes accepted by Parse.
const (
	floorRune = '.'
	wallRune  = '#'
)

// Grid is the static walkability map for a session. It is immutable after
// Parse and safe to share between collaborators.
type Grid struct {
	cells [Height][Width]Cell
}

// Parse builds a Grid from row strings, one rune per cell:
// '#' is a wall, '.' is floor. The layout must be exactly Width x Height.
func Parse(rows []string) (*Grid, error) {
	if len(rows) != Height {
		return nil, fmt.Errorf("grid layout has %d rows, expected %d", len(rows), Height)
	}

	g := &Grid{}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != Width {
			return nil, fmt.Errorf("grid row %d has %d cells, expected %d", y, len(runes), Width)
		}
		for x, r := range runes {
			switch r {
			case floorRune:
				g.cells[y][x] = Floor
			case wallRune:
				g.cells[y][x] = Wall
			default:
				return nil, fmt.Errorf("grid row %d: unknown cell %q at column %d", y, r, x)
			}
		}
	}
	return g, nil
}

// MustParse is Parse for layouts known at compile time.
func MustParse(rows []string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// IsWalkable reports whether (x, y) is in bounds and floor.
// Out-of-range coordinates are simply not walkable.
func (g *Grid) IsWalkable(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g.cells[y][x] == Floor
}

// Cell returns the cell at (x, y). Out-of-range coordinates read as Wall,
// which keeps rendering code free of bounds checks.
func (g *Grid) Cell(x, y int) Cell {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Wall
	}
	return g.cells[y][x]
}

// defaultRows is the built-in classroom map. The corridor at the top is
// pinched by the wall at (3,1) so the guided tour in the default pack
// funnels new players toward the guide NPC.
var defaultRows = []string{
	"##################",
	"#..#.............#",
	"#................#",
	"#................#",
	"#....####........#",
	"#....#...........#",
	"#....#....#......#",
	"#.........#......#",
	"#......#####.....#",
	"#................#",
	"#................#",
	"##################",
}

// Default returns the built-in map.
func Default() *Grid {
	return MustParse(defaultRows)
}
