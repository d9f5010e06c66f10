package importer

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Item,Qty\ntablet_A_01,2\nreloj_B_01,1\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Item;Qty\ntablet_A_01;2\nreloj_B_01;1\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Item\tQty\ntablet_A_01\t2\nreloj_B_01\t1\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Item|Qty\ntablet_A_01|2\nreloj_B_01|1\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Item", "Quantity"})
	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Item != 0 || mapping.Quantity != 1 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{" CANTIDAD ", "Dispositivo"})
	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Item != 1 || mapping.Quantity != 0 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"tablet_A_01", "3"})
	if isHeader {
		t.Error("did not expect a header")
	}
	if mapping.Item != 0 || mapping.Quantity != 1 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	input := "Item,Qty\ntablet_A_01,2\nreloj_B_01,1\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := []string{"tablet_A_01", "tablet_A_01", "reloj_B_01"}
	if !reflect.DeepEqual(result.Items, want) {
		t.Errorf("expected %v, got %v", want, result.Items)
	}
}

func TestImportCSVFromReader_SingleColumnList(t *testing.T) {
	input := "telefono_B_01\ntelefono_B_funda\n\npulsera_B_01\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %v", result.Items)
	}
}

func TestImportCSVFromReader_UnrecognizedItem(t *testing.T) {
	input := "Item,Qty\ntablet_A_01,1\ncamara_X_01,2\nreloj_B_01,1\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 3") || !strings.Contains(result.Errors[0], "camara_X_01") {
		t.Errorf("unexpected error message %q", result.Errors[0])
	}
	if len(result.Items) != 2 {
		t.Errorf("expected the valid rows to be kept, got %v", result.Items)
	}
}

func TestImportCSVFromReader_InvalidQuantity(t *testing.T) {
	for _, qty := range []string{"abc", "0", "-2"} {
		input := "Item,Qty\ntablet_A_01," + qty + "\n"
		result := ImportCSVFromReader(strings.NewReader(input), ',')
		if len(result.Errors) == 0 {
			t.Errorf("expected error for quantity %q", qty)
		}
	}
}

func TestImportCSVFromReader_MissingItemColumn(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Qty,Box\n2,S\n"), ',')
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Item") {
		t.Errorf("expected missing column error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_OnlyHeaders(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Item,Qty\n"), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for header-only file")
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.csv")
	if err := os.WriteFile(path, []byte("Dispositivo;Cantidad\nereader_A_funda;2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Errorf("expected 2 items, got %v", result.Items)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	if result := ImportCSV("/nonexistent/file.csv"); len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if result := ImportCSV(path); len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "order.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_ReorderedColumns(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Qty", "Device"},
		{3, "pulsera_B_01"},
		{1, "tablet_C_02"},
	})

	result := ImportFile(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := []string{"pulsera_B_01", "pulsera_B_01", "pulsera_B_01", "tablet_C_02"}
	if !reflect.DeepEqual(result.Items, want) {
		t.Errorf("expected %v, got %v", want, result.Items)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"telefono_B_01", 2},
		{"telefono_B_funda"},
	})

	result := ImportExcel(path)
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %d (errors: %v)", len(result.Items), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	if result := ImportExcel("/nonexistent/file.xlsx"); len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}
