package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/order"
)

// buildTestResult creates a three-layer placement in the small box.
func buildTestResult(t *testing.T) model.PlacementResult {
	t.Helper()
	bounds, _ := model.BoxSmall.Bounds()
	result := model.NewPlacementResult(model.BoxSmall, bounds)

	add := func(id string, x, y, z int) {
		it, err := model.NewItem(id)
		if err != nil {
			t.Fatalf("NewItem(%q): %v", id, err)
		}
		result.Placements = append(result.Placements, model.Placement{
			Item:     it,
			Position: it.Size.Translate(model.Point3{X: x, Y: y, Z: z}),
		})
	}
	add("tablet_A_01", 0, 0, 0)
	add("tablet_B_funda", 0, 150, 0)
	add("reloj_B_01", 0, 0, 40)
	add("pulsera_B_01", 80, 0, 40)
	add("telefono_B_01", 0, 150, 20)
	order.Annotate(&result)
	return result
}

func TestLayerHeights(t *testing.T) {
	got := layerHeights(buildTestResult(t))
	want := []int{0, 20, 40}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("layer %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.pdf")

	if err := ExportPDF(path, buildTestResult(t)); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 1000 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read PDF: %v", err)
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("file does not start with PDF header, got %q", string(data[:5]))
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	bounds, _ := model.BoxSmall.Bounds()
	if err := ExportPDF(path, model.NewPlacementResult(model.BoxSmall, bounds)); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_ManyItemsSpillToSecondSummaryPage(t *testing.T) {
	result := buildTestResult(t)
	base := result.Placements
	for len(result.Placements) < 60 {
		result.Placements = append(result.Placements, base...)
	}

	path := filepath.Join(t.TempDir(), "long.pdf")
	if err := ExportPDF(path, result); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}
