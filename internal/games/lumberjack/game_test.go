package lumberjack

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestStringToSeed(t *testing.T) {
	tests := []struct {
		input    string
		expected int32
	}{
		{"", 0},
		{"42", 1662},
		{"test", 3556498},
		{"héllo", 103094734},
	}

	for _, tc := range tests {
		if got := stringToSeed(tc.input); got != tc.expected {
			t.Errorf("stringToSeed(%q) = %d, want %d", tc.input, got, tc.expected)
		}
	}
}

func TestXoroshiroSequence(t *testing.T) {
	rng := newXoroshiro128plus(1662)
	expected := []int32{-1663, -2021640515, 10481351, -1193288282, 49512031}

	for i, want := range expected {
		if got := rng.next(); got != want {
			t.Errorf("next() #%d = %d, want %d", i, got, want)
		}
	}
}

func TestUniformIntRange(t *testing.T) {
	rng := newXoroshiro128plus(stringToSeed("range"))
	for range 1000 {
		v := rng.uniformInt(DefaultMinTreeHeight, DefaultMaxTreeHeight)
		if v < DefaultMinTreeHeight || v > DefaultMaxTreeHeight {
			t.Fatalf("uniformInt(2, 6) = %d", v)
		}
	}
}

func TestChooseCountDistinct(t *testing.T) {
	rng := newXoroshiro128plus(7)
	chosen := rng.chooseCount(20, 25)

	seen := make(map[int]bool)
	for _, i := range chosen {
		if i < 0 || i >= 25 || seen[i] {
			t.Fatalf("chooseCount returned %v", chosen)
		}
		seen[i] = true
	}
}

func TestNewGameSeed42(t *testing.T) {
	g, err := NewGame(Init{Seed: "42", Width: 3, Height: 3, Trees: 3})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	expectedGrid := []Tile{
		Empty, Empty, Empty,
		Tree(5), Empty, Empty,
		Tree(5), Tree(2), Empty,
	}
	if !slices.Equal(g.Grid, expectedGrid) {
		t.Errorf("grid = %v, want %v", g.Grid, expectedGrid)
	}
	if g.Width != 3 || g.Height != 3 || g.Score != 0 {
		t.Errorf("Width, Height, Score = %d, %d, %d", g.Width, g.Height, g.Score)
	}
	if g.Plan != nil || g.Prediction != nil {
		t.Errorf("new game has plan %v, prediction %v", g.Plan, g.Prediction)
	}

	expected := "Score: 0\n52.\n5..\n..."
	if got := Present(g); got != expected {
		t.Errorf("Present:\n%s\nwant\n%s", got, expected)
	}
}

func TestNewGameSeedTest(t *testing.T) {
	const width, height, trees = 10, 10, 75
	g, err := NewGame(Init{Seed: "test", Width: width, Height: height, Trees: trees})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if len(g.Grid) != width*height {
		t.Fatalf("len(Grid) = %d, want %d", len(g.Grid), width*height)
	}
	if g.TreeCount() != trees {
		t.Errorf("TreeCount() = %d, want %d", g.TreeCount(), trees)
	}
	for i, tile := range g.Grid {
		switch tile := tile.(type) {
		case TreeTile:
			if tile.Height < 2 || tile.Height > 6 {
				t.Errorf("tree %d has height %d", i, tile.Height)
			}
		case EmptyTile:
		default:
			t.Errorf("cell %d holds %T", i, tile)
		}
	}

	expected := strings.TrimSpace(`
Score: 0
24.5.26344
35245..3.2
224.5362.2
252.643..3
54.4.5.2.4
643632253.
633.6.422.
24..2.4224
32.2346..3
544.434462
`)
	if got := Present(g); got != expected {
		t.Errorf("Present mismatch:\nexpected:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestNewGameDeterministic(t *testing.T) {
	init := Init{Seed: "lumber", Width: 5, Height: 4, Trees: 6}
	a, _ := NewGame(init)
	b, _ := NewGame(init)
	if !slices.Equal(a.Grid, b.Grid) {
		t.Error("same seed produced different boards")
	}

	expected := "Score: 0\n...4.\n.63.3\n.....\n..42."
	if got := Present(a); got != expected {
		t.Errorf("Present:\n%s\nwant\n%s", got, expected)
	}

	c, _ := NewGame(Init{Seed: "other", Width: 5, Height: 4, Trees: 6})
	if slices.Equal(a.Grid, c.Grid) {
		t.Error("different seeds produced the same board")
	}
}

func TestNewGameCustomHeights(t *testing.T) {
	g, err := NewGame(Init{Seed: "tall", Width: 4, Height: 4, Trees: 16, MinTreeHeight: 9, MaxTreeHeight: 9})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for i, tile := range g.Grid {
		if tile != Tree(9) {
			t.Errorf("cell %d = %v, want a height 9 tree", i, tile)
		}
	}
}

func TestNewGameInvalid(t *testing.T) {
	tests := []struct {
		name string
		init Init
	}{
		{"zero width", Init{Width: 0, Height: 3}},
		{"negative height", Init{Width: 3, Height: -1}},
		{"too many trees", Init{Width: 2, Height: 2, Trees: 5}},
		{"negative trees", Init{Width: 2, Height: 2, Trees: -1}},
		{"inverted heights", Init{Width: 2, Height: 2, MinTreeHeight: 6, MaxTreeHeight: 2}},
		{"zero height tree", Init{Width: 2, Height: 2, MinTreeHeight: 0, MaxTreeHeight: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGame(tc.init); !errors.Is(err, ErrInvalidInit) {
				t.Errorf("NewGame(%+v) error = %v, want ErrInvalidInit", tc.init, err)
			}
		})
	}
}

func TestPositionIndexRoundTrip(t *testing.T) {
	const width = 4
	for i := range width * 3 {
		p := PositionFromIndex(width, i)
		if got := IndexFromPosition(width, p); got != i {
			t.Errorf("IndexFromPosition(PositionFromIndex(%d)) = %d", i, got)
		}
	}
	if got := PositionFromIndex(width, 6); got != P(2, 1) {
		t.Errorf("PositionFromIndex(4, 6) = %s, want (2, 1)", got)
	}
}

func TestTileAt(t *testing.T) {
	g := sampleGame()
	if tile, ok := g.TileAt(P(2, 0)); !ok || tile != Tree(2) {
		t.Errorf("TileAt(2, 0) = %v, %v", tile, ok)
	}
	if _, ok := g.TileAt(P(3, 0)); ok {
		t.Error("TileAt off the board should report false")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := PlanAction(sampleGame(), Action{Direction: West, Position: P(2, 0)})
	c := g.Clone()
	c.Grid[0] = Tree(6)
	c.Plan.Direction = North
	c.Prediction[0].Tile = Tree(3)

	if g.Grid[0] != Empty || g.Plan.Direction != West || g.Prediction[0].Tile != Empty {
		t.Error("Clone shares state with the original")
	}
}
