package grid

import (
	"strings"
	"testing"
)

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr string
	}{
		{
			name:    "too few rows",
			rows:    []string{"##################"},
			wantErr: "rows",
		},
		{
			name: "short row",
			rows: func() []string {
				rows := make([]string, Height)
				for i := range rows {
					rows[i] = strings.Repeat("#", Width)
				}
				rows[3] = "#####"
				return rows
			}(),
			wantErr: "row 3",
		},
		{
			name: "unknown rune",
			rows: func() []string {
				rows := make([]string, Height)
				for i := range rows {
					rows[i] = strings.Repeat(".", Width)
				}
				rows[5] = strings.Repeat(".", Width-1) + "X"
				return rows
			}(),
			wantErr: "unknown cell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestIsWalkable(t *testing.T) {
	g := Default()

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"open floor", 1, 1, true},
		{"border wall", 0, 0, false},
		{"interior wall", 3, 1, false},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
		{"x past width", Width, 5, false},
		{"y past height", 5, Height, false},
		{"far out of range", 1000, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsWalkable(tt.x, tt.y); got != tt.want {
				t.Errorf("IsWalkable(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCell_OutOfRangeReadsAsWall(t *testing.T) {
	g := Default()
	if g.Cell(-1, 0) != Wall {
		t.Error("Expected out-of-range cell to read as Wall")
	}
	if g.Cell(Width, Height) != Wall {
		t.Error("Expected out-of-range cell to read as Wall")
	}
	if g.Cell(1, 1) != Floor {
		t.Error("Expected (1,1) to be Floor on the default map")
	}
}

func TestDefault_IsBounded(t *testing.T) {
	g := Default()

	// The default map must be fully enclosed so movement can never leave it.
	for x := 0; x < Width; x++ {
		if g.IsWalkable(x, 0) || g.IsWalkable(x, Height-1) {
			t.Fatalf("Expected border wall at x=%d", x)
		}
	}
	for y := 0; y < Height; y++ {
		if g.IsWalkable(0, y) || g.IsWalkable(Width-1, y) {
			t.Fatalf("Expected border wall at y=%d", y)
		}
	}
}
