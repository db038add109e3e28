package lattice_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/watershed/lattice"
)

func TestNew_RejectsEmptyShape(t *testing.T) {
	if _, err := lattice.New(nil); err != lattice.ErrEmptyShape {
		t.Fatalf("got %v, want ErrEmptyShape", err)
	}
}

func TestNew_RejectsNonPositiveDimension(t *testing.T) {
	if _, err := lattice.New([]int{3, 0, 2}); err == nil {
		t.Fatal("expected error for zero dimension")
	}
}

func TestIndexCoord_RoundTrip(t *testing.T) {
	lat, err := lattice.New([]int{2, 3, 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if lat.NumPixels() != 24 {
		t.Fatalf("NumPixels = %d, want 24", lat.NumPixels())
	}

	dst := make([]int, lat.NDim())
	for idx := 0; idx < lat.NumPixels(); idx++ {
		coord, err := lat.Coord(idx, dst)
		if err != nil {
			t.Fatalf("Coord(%d): %v", idx, err)
		}
		back, err := lat.Index(coord)
		if err != nil {
			t.Fatalf("Index(%v): %v", coord, err)
		}
		if back != idx {
			t.Fatalf("round trip: index %d -> coord %v -> index %d", idx, coord, back)
		}
	}
}

func TestIndex_OutOfRange(t *testing.T) {
	lat, _ := lattice.New([]int{2, 2})
	if _, err := lat.Index([]int{2, 0}); err == nil {
		t.Fatal("expected ErrCoordOutOfRange")
	}
	if _, err := lat.Index([]int{0}); err == nil {
		t.Fatal("expected error on wrong arity")
	}
}

func TestScanner_Face1D(t *testing.T) {
	lat, _ := lattice.New([]int{5})
	sc := lattice.NewScanner(lat, lattice.Face)

	got, err := sc.Neighbors(0, nil)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	want := []int{1} // left (-1) is out of bounds, right (+1) is index 1
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("neighbors of 0 = %v, want %v", got, want)
	}

	got, err = sc.Neighbors(2, nil)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	want = []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("neighbors of 2 = %v, want %v", got, want)
	}
}

func TestScanner_Degree(t *testing.T) {
	lat, _ := lattice.New([]int{3, 3})
	if d := lattice.NewScanner(lat, lattice.Face).Degree(); d != 4 {
		t.Fatalf("Face degree = %d, want 4", d)
	}
	if d := lattice.NewScanner(lat, lattice.Full).Degree(); d != 8 {
		t.Fatalf("Full degree = %d, want 8", d)
	}
}

func TestScanner_Full2DCorner(t *testing.T) {
	lat, _ := lattice.New([]int{3, 3})
	sc := lattice.NewScanner(lat, lattice.Full)

	// Pixel (0,0) = index 0 has 3 in-bounds neighbors under Full connectivity:
	// (0,1), (1,0), (1,1) -> indices 1, 3, 4.
	got, err := sc.Neighbors(0, nil)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("corner pixel under Full = %v, want 3 neighbors", got)
	}
}

func TestScanner_Deterministic(t *testing.T) {
	lat, _ := lattice.New([]int{4, 4})
	sc1 := lattice.NewScanner(lat, lattice.Full)
	sc2 := lattice.NewScanner(lat, lattice.Full)

	for i := 0; i < lat.NumPixels(); i++ {
		a, err := sc1.Neighbors(i, nil)
		if err != nil {
			t.Fatalf("sc1.Neighbors(%d): %v", i, err)
		}
		b, err := sc2.Neighbors(i, nil)
		if err != nil {
			t.Fatalf("sc2.Neighbors(%d): %v", i, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("nondeterministic neighbor order at %d: %v vs %v", i, a, b)
		}
	}
}

func TestBuffer_WrapValidatesLength(t *testing.T) {
	lat, _ := lattice.New([]int{2, 2})
	if _, err := lattice.WrapBuffer[int](lat, []int{1, 2, 3}); !errors.Is(err, lattice.ErrBufferSize) {
		t.Fatalf("got %v, want ErrBufferSize", err)
	}
	buf, err := lattice.WrapBuffer[int](lat, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("WrapBuffer: %v", err)
	}
	if len(buf.Data) != 4 {
		t.Fatalf("buffer len = %d, want 4", len(buf.Data))
	}
}

func TestSameShape(t *testing.T) {
	a, _ := lattice.New([]int{2, 3})
	b, _ := lattice.New([]int{2, 3})
	c, _ := lattice.New([]int{3, 2})
	if !a.SameShape(b) {
		t.Fatal("expected equal shapes to match")
	}
	if a.SameShape(c) {
		t.Fatal("expected different shapes to not match")
	}
}
