package wallpaper

import (
	"math"
	"testing"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

const eps = 1e-9

func testGeometry(t *testing.T) Geometry {
	t.Helper()
	g, err := NewGeometry(testConfig(), 700, 1100)
	if err != nil {
		t.Fatalf("NewGeometry() failed: %v", err)
	}
	return g
}

func testBoard(t *testing.T) *Board {
	t.Helper()
	cfg := testConfig()
	b, err := NewBoard(cfg.Display, cfg.Colors.Blocks)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

func TestBallAdvance(t *testing.T) {
	b := Ball{X: 10, Y: 20, VX: 0.6, VY: -0.8}
	b.Advance(5)
	if math.Abs(b.X-13) > eps || math.Abs(b.Y-16) > eps {
		t.Errorf("Advance(5) = (%v,%v), expected (13,16)", b.X, b.Y)
	}

	r := b.Bounds(2)
	if r.W != 4 || r.H != 4 || math.Abs(r.X-11) > eps {
		t.Errorf("Bounds(2) = %+v", r)
	}
}

func TestBounceEdges(t *testing.T) {
	g := testGeometry(t)

	tests := []struct {
		name           string
		ball           Ball
		wantVX, wantVY func(j1, j2 float64) float64
	}{
		{
			name:   "left wall",
			ball:   Ball{X: -1, Y: 500, VX: -0.6, VY: 0.8},
			wantVX: func(_, _ float64) float64 { return 0.6 },
			wantVY: func(j, _ float64) float64 { return 0.8 + j },
		},
		{
			name:   "right wall",
			ball:   Ball{X: 700, Y: 500, VX: 0.6, VY: 0.8},
			wantVX: func(_, _ float64) float64 { return -0.6 },
			wantVY: func(j, _ float64) float64 { return 0.8 + j },
		},
		{
			name:   "top wall",
			ball:   Ball{X: 300, Y: -2, VX: 0.6, VY: -0.8},
			wantVX: func(j, _ float64) float64 { return 0.6 + j },
			wantVY: func(_, _ float64) float64 { return 0.8 },
		},
		{
			name:   "bottom wall",
			ball:   Ball{X: 300, Y: 1101, VX: 0.6, VY: 0.8},
			wantVX: func(j, _ float64) float64 { return 0.6 + j },
			wantVY: func(_, _ float64) float64 { return -0.8 },
		},
		{
			name:   "top left corner",
			ball:   Ball{X: 0, Y: 0, VX: -0.6, VY: -0.8},
			wantVX: func(_, j2 float64) float64 { return 0.6 + j2 },
			wantVY: func(j1, _ float64) float64 { return math.Abs(-0.8 + j1) },
		},
		{
			name:   "inside",
			ball:   Ball{X: 300, Y: 500, VX: 0.6, VY: 0.8},
			wantVX: func(_, _ float64) float64 { return 0.6 },
			wantVY: func(_, _ float64) float64 { return 0.8 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const seed = 7
			ref := NewRNG(seed)
			j1, j2 := ref.Float64(), ref.Float64()

			b := tt.ball
			bounceEdges(&b, g, NewRNG(seed))

			if want := tt.wantVX(j1, j2); math.Abs(b.VX-want) > eps {
				t.Errorf("VX = %v, expected %v", b.VX, want)
			}
			if want := tt.wantVY(j1, j2); math.Abs(b.VY-want) > eps {
				t.Errorf("VY = %v, expected %v", b.VY, want)
			}
		})
	}
}

func TestBounceEdgesDoesNotRenormalize(t *testing.T) {
	g := testGeometry(t)
	rng := NewRNG(99)
	ref := NewRNG(99)

	b := Ball{X: -1, Y: 500, VX: -0.6, VY: 0.8}
	bounceEdges(&b, g, rng)

	want := math.Hypot(0.6, 0.8+ref.Float64())
	if got := b.Vel().Len(); math.Abs(got-want) > eps {
		t.Errorf("speed after edge bounce = %v, expected %v", got, want)
	}
}

func TestProbes(t *testing.T) {
	g := testGeometry(t) // 100px cells, radius 37.5

	tests := []struct {
		name string
		ball Ball
		want [3]probe
	}{
		{"moving up from anchor", Ball{X: 150, Y: 250, VX: 0, VY: -1}, [3]probe{{1, 2}, {1, 2}, {1, 2}}},
		{"moving down right", Ball{X: 195, Y: 295, VX: 1, VY: 1}, [3]probe{{1, 3}, {2, 3}, {2, 2}}},
		{"moving up left", Ball{X: 195, Y: 295, VX: -1, VY: -1}, [3]probe{{1, 2}, {2, 2}, {1, 3}}},
		{"truncates toward zero", Ball{X: 10, Y: 10, VX: -1, VY: -1}, [3]probe{{0, 0}, {0, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			if got := probes(&b, g); got != tt.want {
				t.Errorf("probes() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestCollideReflectsToUnitLength(t *testing.T) {
	g := testGeometry(t)

	tests := []struct {
		name string
		ball Ball
		cell probe
	}{
		{"head on", Ball{X: 150, Y: 250, VX: -1, VY: 0}, probe{0, 2}},
		{"oblique", Ball{X: 150, Y: 250, VX: -0.6, VY: 0.8}, probe{0, 3}},
		{"long vector", Ball{X: 150, Y: 250, VX: -3, VY: 4}, probe{0, 3}},
		{"after edge jitter", Ball{X: 150, Y: 250, VX: 0.6, VY: -1.7}, probe{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testBoard(t)
			b := tt.ball

			if !collide(board, &b, g, tt.cell) {
				t.Fatal("collide() = false, expected a hit")
			}
			if l := b.Vel().Len(); math.Abs(l-1) > eps {
				t.Errorf("speed after collision = %v, expected 1", l)
			}
			if board.At(tt.cell.X, tt.cell.Y).State != CellBlank {
				t.Error("hit block should be blank")
			}
			if board.Remaining() != 67 {
				t.Errorf("Remaining() = %d, expected 67", board.Remaining())
			}
			if collide(board, &b, g, tt.cell) {
				t.Error("second collide() on a blank cell should miss")
			}
		})
	}
}

func TestCollideHeadOnReverses(t *testing.T) {
	g := testGeometry(t)
	board := testBoard(t)

	b := Ball{X: 150, Y: 250, VX: -1, VY: 0}
	collide(board, &b, g, probe{0, 2})
	if math.Abs(b.VX-1) > eps || math.Abs(b.VY) > eps {
		t.Errorf("velocity = (%v,%v), expected (1,0)", b.VX, b.VY)
	}
}

func TestCollideDegenerate(t *testing.T) {
	g := testGeometry(t)

	t.Run("ball on block center", func(t *testing.T) {
		board := testBoard(t)
		c := g.CellCenter(0, 0)
		b := Ball{X: c.X, Y: c.Y, VX: 0.6, VY: 0.8}
		collide(board, &b, g, probe{0, 0})
		if math.Abs(b.VX+0.6) > eps || math.Abs(b.VY+0.8) > eps {
			t.Errorf("velocity = (%v,%v), expected (-0.6,-0.8)", b.VX, b.VY)
		}
	})

	t.Run("zero velocity", func(t *testing.T) {
		board := testBoard(t)
		b := Ball{X: 150, Y: 250}
		if !collide(board, &b, g, probe{0, 2}) {
			t.Fatal("collide() = false, expected the block to be consumed")
		}
		if !b.Vel().IsZero() {
			t.Errorf("velocity = %v, expected zero", b.Vel())
		}
		if board.Remaining() != 67 {
			t.Errorf("Remaining() = %d, expected 67", board.Remaining())
		}
	})
}

func TestCollideMisses(t *testing.T) {
	g := testGeometry(t)
	board := testBoard(t)
	b := Ball{X: 150, Y: 250, VX: 1, VY: 0}

	for _, p := range []probe{{1, 2}, {-1, 0}, {7, 0}, {0, 11}} {
		if collide(board, &b, g, p) {
			t.Errorf("collide(%v) = true, expected a miss", p)
		}
	}
	if b.Vel() != core.V(1, 0) || board.Remaining() != 68 {
		t.Error("a miss must not change the ball or the board")
	}
}

func TestRNGDeterminism(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for range 100 {
		if a.Next() != b.Next() {
			t.Fatal("same seed produced different sequences")
		}
	}

	r := NewRNG(0)
	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", f)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn(7) = %d, out of range", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
