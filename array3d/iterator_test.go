package array3d_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DirkChristianBecker/bevy-flat-arrays/array3d"
	"github.com/DirkChristianBecker/bevy-flat-arrays/vec"
)

// pair records one iteration step for order-sensitive comparison.
type pair struct {
	Pos vec.IVec3
	Val int
}

// TestIter_CoversEverySlot walks a 2x2x2 volume and checks the yielded
// pairs: exactly Len() of them, in raw-offset order, coordinates matching
// the inverse mapping.
func TestIter_CoversEverySlot(t *testing.T) {
	a, err := array3d.New[int](2, 2, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i := 0; i < a.Len(); i++ {
		if err = a.SetIndex(i, i*10); err != nil {
			t.Fatalf("SetIndex(%d) error: %v", i, err)
		}
	}

	want := make([]pair, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		want = append(want, pair{Pos: array3d.CoordinateVec(a.Width(), a.Height(), i), Val: i * 10})
	}

	got := make([]pair, 0, a.Len())
	for it := a.Iter(); it.Next(); {
		got = append(got, pair{Pos: it.Pos(), Val: it.Value()})
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Iter mismatch (-want +got):\n%s", diff)
	}
}

// TestIterMut_WritesVisible fills the volume through the mutating iterator
// and verifies each write landed at the slot the coordinate names.
func TestIterMut_WritesVisible(t *testing.T) {
	a, err := array3d.New[int](2, 2, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	steps := 0
	for it := a.IterMut(); it.Next(); {
		*it.Value() = array3d.IndexVec(a.Width(), a.Height(), it.Pos())
		steps++
	}
	if steps != a.Len() {
		t.Fatalf("IterMut visited %d slots; want %d", steps, a.Len())
	}

	for i := 0; i < a.Len(); i++ {
		v, err := a.AtIndex(i)
		if err != nil {
			t.Fatalf("AtIndex(%d) error: %v", i, err)
		}
		if v != i {
			t.Errorf("slot %d = %d; want %d", i, v, i)
		}
	}
}
