package order

import (
	"errors"
	"testing"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTripsGeneratedOrder(t *testing.T) {
	doc, err := Parse(threeTabletOrder)
	require.NoError(t, err)

	assert.Equal(t, model.BoxSmall, doc.Box)
	assert.Equal(t, 3, doc.Count)
	require.Len(t, doc.Entries, 3)
	assert.Equal(t, []string{"tablet_A_01", "tablet_A_01", "tablet_A_01"}, doc.Identifiers())
	assert.Equal(t, Pose{X: 120, Y: 225, Z: 40, Roll: -180, Pitch: 0, Yaw: 0}, doc.Entries[1].Pose)
	assert.Equal(t, 3, doc.Entries[2].Index)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "tipo_caja: S"},
		{"missing box", `{"num_dispositivos": 0}`},
		{"unknown box", `{"tipo_caja": "XL", "num_dispositivos": 0}`},
		{"count mismatch", `{"tipo_caja": "S", "num_dispositivos": 2, "item_1": {"dispositivo": "a", "posicion_place": "1,2,3,4,5,6"}}`},
		{"gap in numbering", `{"tipo_caja": "S", "num_dispositivos": 1, "item_2": {"dispositivo": "a", "posicion_place": "1,2,3,4,5,6"}}`},
		{"short pose", `{"tipo_caja": "S", "num_dispositivos": 1, "item_1": {"dispositivo": "a", "posicion_place": "1,2,3"}}`},
		{"bad number", `{"tipo_caja": "S", "num_dispositivos": 1, "item_1": {"dispositivo": "a", "posicion_place": "1,2,x,4,5,6"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedOrder), "got %v", err)
		})
	}
}

func TestParsePose(t *testing.T) {
	p, err := ParsePose("40.0, 178.5, 60.0, -180.0, 0.0, -90.0")
	require.NoError(t, err)
	assert.InDelta(t, 178.5, p.Y, 1e-9)
	assert.InDelta(t, -90.0, p.Yaw, 1e-9)
}
