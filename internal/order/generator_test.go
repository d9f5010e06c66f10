package order

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/piwi3910/PickPack/internal/engine"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeTabletOrder = `{
  "tipo_caja": "S",
  "num_dispositivos": 3,
  "item_1": {
    "dispositivo": "tablet_A_01",
    "posicion_place": "120.0, 75.0, 40.0, -180.0, 0.0, 180.0"
  },
  "item_2": {
    "dispositivo": "tablet_A_01",
    "posicion_place": "120.0, 225.0, 40.0, -180.0, 0.0, 0.0"
  },
  "item_3": {
    "dispositivo": "tablet_A_01",
    "posicion_place": "120.0, 75.0, 80.0, -180.0, 0.0, 180.0"
  }
}`

func TestGenerate_ThreeTablets(t *testing.T) {
	placer := engine.New(model.DefaultSettings())
	result, err := placer.Place([]string{"tablet_A_01", "tablet_A_01", "tablet_A_01"})
	require.NoError(t, err)

	got := Generate(result)
	assert.Equal(t, threeTabletOrder, got)
	assert.True(t, json.Valid([]byte(got)))
}

func TestGenerate_EmptyOrderIsValidJSON(t *testing.T) {
	r := model.NewPlacementResult(model.BoxMedium, model.Sized(320, 300, 240))
	got := Generate(r)

	assert.Equal(t, "{\n  \"tipo_caja\": \"M\",\n  \"num_dispositivos\": 0\n}", got)
	assert.True(t, json.Valid([]byte(got)))
}

func TestGenerate_UsesExistingTarget(t *testing.T) {
	r := model.NewPlacementResult(model.BoxSmall, smallBounds())
	p := placed(t, "reloj_B_01", 0, 0, 0)
	p.Target = "1.0, 2.0, 3.0, -180.0, 0.0, 90.0"
	r.Placements = []model.Placement{p}

	assert.Contains(t, Generate(r), `"posicion_place": "1.0, 2.0, 3.0, -180.0, 0.0, 90.0"`)
}

func TestWrite(t *testing.T) {
	r := model.NewPlacementResult(model.BoxSmall, smallBounds())
	r.Placements = []model.Placement{placed(t, "tablet_A_01", 0, 0, 0)}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))
	assert.Equal(t, Generate(r), buf.String())
}
