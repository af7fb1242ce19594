package compare

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/propcompare/internal/catalog"
	"github.com/jask/propcompare/internal/listing"
)

func testCatalog() *catalog.Catalog {
	var props []listing.Property
	for id := 1; id <= 6; id++ {
		props = append(props, listing.Property{
			ID:        id,
			Title:     "Property " + string(rune('A'+id-1)),
			Location:  "City",
			Price:     int64(id) * 2500000,
			BHK:       id%4 + 1,
			Sqft:      1000 + id*100,
			Amenities: []string{"Gym"},
			Parking:   id % 3,
		})
	}
	return catalog.New(props)
}

func requireInvariants(t *testing.T, s *Store) {
	t.Helper()
	require.LessOrEqual(t, s.Len(), MaxSelected)
	seen := map[int]bool{}
	for _, id := range s.IDs() {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	if s.Len() == 0 {
		require.Equal(t, 0, s.Cursor())
		return
	}
	require.GreaterOrEqual(t, s.Cursor(), 0)
	require.Less(t, s.Cursor(), s.Len())
}

func TestToggleFillsInOrderAndRejectsFourth(t *testing.T) {
	s := NewStore(testCatalog())

	require.Equal(t, Added, s.Toggle(1))
	require.Equal(t, Added, s.Toggle(2))
	require.Equal(t, Added, s.Toggle(3))
	require.Equal(t, []int{1, 2, 3}, s.IDs())

	require.Equal(t, Rejected, s.Toggle(4))
	require.Equal(t, []int{1, 2, 3}, s.IDs())
	require.Equal(t, 0, s.Remaining())
}

func TestToggleUnknownIsNoop(t *testing.T) {
	s := NewStore(testCatalog())
	s.Toggle(2)
	require.Equal(t, Unknown, s.Toggle(42))
	require.Equal(t, []int{2}, s.IDs())
}

func TestToggleTwiceRestoresState(t *testing.T) {
	s := NewStore(testCatalog())
	s.Toggle(5)
	s.Toggle(1)
	before := s.IDs()

	s.Toggle(3)
	s.Toggle(3)
	require.Equal(t, before, s.IDs())

	// Re-adding a removed id appends it at the end.
	s.Toggle(5)
	s.Toggle(5)
	require.Equal(t, []int{1, 5}, s.IDs())
}

func TestRemoveUnknownLeavesStateUnchanged(t *testing.T) {
	s := NewStore(testCatalog())
	s.Toggle(1)
	s.Toggle(2)
	s.SetCursor(1)

	require.False(t, s.Remove(4))
	require.False(t, s.Remove(-1))
	require.Equal(t, []int{1, 2}, s.IDs())
	require.Equal(t, 1, s.Cursor())
}

func TestRemoveClampsCursor(t *testing.T) {
	s := NewStore(testCatalog())
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)
	s.SetCursor(2)

	require.True(t, s.Remove(3))
	require.Equal(t, []int{1, 2}, s.IDs())
	require.Equal(t, 1, s.Cursor())
}

func TestRemoveLastEmptiesSelection(t *testing.T) {
	s := NewStore(testCatalog())
	s.Toggle(5)
	require.True(t, s.Remove(5))
	require.Zero(t, s.Len())
	require.Zero(t, s.Cursor())
	require.True(t, s.Snapshot().Empty)
}

func TestNavigateStopsAtEnds(t *testing.T) {
	s := NewStore(testCatalog())
	s.Navigate(Next)
	require.Zero(t, s.Cursor())

	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)
	s.Navigate(Prev)
	require.Equal(t, 0, s.Cursor())
	s.Navigate(Next)
	s.Navigate(Next)
	s.Navigate(Next)
	require.Equal(t, 2, s.Cursor())
	s.Navigate(Prev)
	require.Equal(t, 1, s.Cursor())
}

func TestSelectedReturnsCopy(t *testing.T) {
	s := NewStore(testCatalog())
	s.Toggle(1)
	sel := s.Selected()
	sel[0].Amenities[0] = "Changed"
	sel[0].ID = 99
	require.Equal(t, []int{1}, s.IDs())
	require.Equal(t, []string{"Gym"}, s.Selected()[0].Amenities)
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewStore(testCatalog())
	for i := 0; i < 5000; i++ {
		id := rng.Intn(9) - 1 // includes unknown ids
		switch rng.Intn(5) {
		case 0, 1:
			before := s.IDs()
			res := s.Toggle(id)
			if res == Rejected || res == Unknown {
				require.Equal(t, before, s.IDs())
			}
		case 2:
			s.Remove(id)
		case 3:
			s.Navigate(Direction(rng.Intn(2)))
		case 4:
			s.SetCursor(rng.Intn(5) - 1)
		}
		requireInvariants(t, s)
	}
}

func TestClear(t *testing.T) {
	s := NewStore(testCatalog())
	s.Toggle(1)
	s.Toggle(2)
	s.SetCursor(1)
	s.Clear()
	requireInvariants(t, s)
	require.Zero(t, s.Len())
	require.Equal(t, MaxSelected, s.Remaining())
}
