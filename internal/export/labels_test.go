package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PickPack/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult(t)); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.pdf")
	bounds, _ := model.BoxLarge.Bounds()
	if err := ExportLabels(path, model.NewPlacementResult(model.BoxLarge, bounds)); err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult(t))

	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}
	if labels[0].Item != "tablet_A_01" || labels[0].Type != "tablet" {
		t.Errorf("unexpected first label %+v", labels[0])
	}
	if labels[0].Pose != "120.0, 75.0, 40.0, -180.0, 0.0, 180.0" {
		t.Errorf("unexpected pose %q", labels[0].Pose)
	}
	if labels[4].Index != 5 {
		t.Errorf("expected index 5, got %d", labels[4].Index)
	}
	if labels[2].Box != "S" {
		t.Errorf("expected box S, got %q", labels[2].Box)
	}
}

func TestLabelInfo_PayloadKeys(t *testing.T) {
	data, err := json.Marshal(CollectLabelInfos(buildTestResult(t))[2])
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"item", "type", "index", "box", "pose"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("payload missing %q: %s", key, data)
		}
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	result := buildTestResult(t)
	base := result.Placements
	for len(result.Placements) < 35 {
		result.Placements = append(result.Placements, base...)
	}

	path := filepath.Join(t.TempDir(), "many.pdf")
	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
}
