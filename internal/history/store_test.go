package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return s
}

func testResult(id string, box model.BoxSize, n int) model.PlacementResult {
	bounds, _ := box.Bounds()
	r := model.PlacementResult{ID: id, Box: box, Bounds: bounds, Fillers: 1}
	for i := 0; i < n; i++ {
		item, _ := model.NewItem("tablet_A_0" + string(rune('1'+i)))
		r.Placements = append(r.Placements, model.Placement{
			Item:     item,
			Position: item.Size.Translate(model.Point3{Z: 40 * i}),
		})
	}
	return r
}

func TestStore_RecordAndListOrders(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.RecordOrder(testResult("aaaa1111", model.BoxSmall, 2), `{"tipo_caja": "S"}`))
	require.NoError(t, s.RecordOrder(testResult("bbbb2222", model.BoxMedium, 3), `{"tipo_caja": "M"}`))
	require.NoError(t, s.RecordOrder(testResult("cccc3333", model.BoxLarge, 1), `{"tipo_caja": "L"}`))

	all, err := s.ListOrders(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "cccc3333", all[0].ResultID, "newest first")
	assert.Equal(t, "aaaa1111", all[2].ResultID)

	latest, err := s.ListOrders(2)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	rec := latest[1]
	assert.Equal(t, model.BoxMedium, rec.Box)
	assert.Equal(t, 3, rec.Items)
	assert.Equal(t, 1, rec.Fillers)
	assert.Equal(t, `{"tipo_caja": "M"}`, rec.Order)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 2, 0, 0, time.UTC), rec.CreatedAt)
	assert.Greater(t, rec.Efficiency, 0.0)
}

func TestStore_FindOrder(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.RecordOrder(testResult("aaaa1111", model.BoxSmall, 1), "one"))

	rec, err := s.FindOrder("aaaa1111")
	require.NoError(t, err)
	assert.Equal(t, "one", rec.Order)

	_, err = s.FindOrder("missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestStore_FillTimes(t *testing.T) {
	s := openTestStore(t)

	for i := 1; i <= 12; i++ {
		require.NoError(t, s.RecordFillTime(model.BoxSmall, time.Duration(i)*time.Second))
	}
	require.NoError(t, s.RecordFillTime(model.BoxLarge, 90*time.Second))
	assert.Error(t, s.RecordFillTime(model.BoxSmall, -time.Second))

	all, err := s.FillTimes(model.BoxSmall, 0)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	assert.Equal(t, time.Second, all[0])

	last, err := s.FillTimes(model.BoxSmall, 3)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{10 * time.Second, 11 * time.Second, 12 * time.Second}, last)

	none, err := s.FillTimes(model.BoxMedium, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_FillTimeBuffer(t *testing.T) {
	s := openTestStore(t)
	for i := 1; i <= 15; i++ {
		require.NoError(t, s.RecordFillTime(model.BoxMedium, time.Duration(i)*time.Second))
	}

	buf, err := s.FillTimeBuffer(model.BoxMedium, DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, buf.Len())
	assert.Zero(t, buf.Dropped())

	sum := buf.Summary()
	assert.Equal(t, 10500*time.Millisecond, sum.Mean)
	assert.Equal(t, 6*time.Second, buf.Snapshot()[0])
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.RecordFillTime(model.BoxSmall, time.Minute))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	times, err := s.FillTimes(model.BoxSmall, 0)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Minute}, times)
}
