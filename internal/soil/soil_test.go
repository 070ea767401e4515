package soil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"", nil},
		{"   ", nil},
		{"abc", nil},
		{"12", Float(12)},
		{" -3.5 ", Float(-3.5)},
		{"1e2", Float(100)},
	}
	for _, tt := range tests {
		got := ParseNumber(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseNumber(%q) = %v, want nil", tt.in, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, *tt.want)
		}
	}
}

func TestParseLayer(t *testing.T) {
	l, err := ParseLayer("Stiff clay:2.5:45:1800")
	if err != nil {
		t.Fatalf("ParseLayer() error = %v", err)
	}
	if l.Name != "Stiff clay" || *l.Top != 2.5 || *l.SkinFriction != 45 || *l.EndBearing != 1800 {
		t.Errorf("ParseLayer() = %+v", l)
	}

	l, err = ParseLayer(":12::4500")
	if err != nil {
		t.Fatalf("ParseLayer() error = %v", err)
	}
	if l.Name != "" || *l.Top != 12 || l.SkinFriction != nil || *l.EndBearing != 4500 {
		t.Errorf("ParseLayer() = %+v", l)
	}

	l, err = ParseLayer("Fill:0")
	if err != nil {
		t.Fatalf("ParseLayer() error = %v", err)
	}
	if !l.Valid() || l.SkinFriction != nil || l.EndBearing != nil {
		t.Errorf("ParseLayer() = %+v", l)
	}

	l, _ = ParseLayer("Fill:x:10")
	if l.Valid() {
		t.Error("layer with non-numeric top should be invalid")
	}

	if _, err := ParseLayer("a:1:2:3:4"); err == nil {
		t.Error("expected an error for five fields")
	}
}

func TestParseConvention(t *testing.T) {
	for in, want := range map[string]Convention{"": BGL, "mbgl": BGL, "BGL": BGL, "rl": RL, " mRL ": RL} {
		got, err := ParseConvention(in)
		if err != nil || got != want {
			t.Errorf("ParseConvention(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseConvention("feet"); err == nil {
		t.Error("expected an error for an unknown convention")
	}
}

func TestLayerDisplayName(t *testing.T) {
	if got := (Layer{}).DisplayName(2); got != "Layer 3" {
		t.Errorf("DisplayName() = %q, want Layer 3", got)
	}
	if got := (Layer{Name: "Sand"}).DisplayName(0); got != "Sand" {
		t.Errorf("DisplayName() = %q, want Sand", got)
	}
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	data := `{
  "name": "Bridge pier P3",
  "convention": "mRL",
  "pile": {"diameter": 0.9, "depth": 18, "reduction_factor": 0.45},
  "layers": [
    {"name": "Fill", "top": 102.5, "skin_friction": 10},
    {"name": "Sandstone", "top": 90, "skin_friction": 150, "end_bearing": 5000}
  ]
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if p.Name != "Bridge pier P3" || p.Convention != RL {
		t.Errorf("profile = %+v", p)
	}
	if *p.Pile.Diameter != 0.9 || *p.Pile.Depth != 18 || *p.Pile.ReductionFactor != 0.45 || p.Pile.ZoneMultiplier != nil {
		t.Errorf("pile = %+v", p.Pile)
	}
	if len(p.Layers) != 2 || p.Layers[0].EndBearing != nil || *p.Layers[1].EndBearing != 5000 {
		t.Errorf("layers = %+v", p.Layers)
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	data := `name: Tank base
pile:
  diameter: 0.6
  depth: 15
  reduction_factor: 0.5
  zone_multiplier: 3
layers:
  - name: Clay
    top: 0
    skin_friction: 50
    end_bearing: 2000
  - name: Gravel
    top: 8
    end_bearing: 6000
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if p.Convention != "" {
		t.Errorf("Convention = %q, want blank when the file has none", p.Convention)
	}
	if *p.Pile.ZoneMultiplier != 3 {
		t.Errorf("ZoneMultiplier = %v, want 3", *p.Pile.ZoneMultiplier)
	}
	if len(p.Layers) != 2 || p.Layers[1].SkinFriction != nil || *p.Layers[1].Top != 8 {
		t.Errorf("layers = %+v", p.Layers)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0644)
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("expected an error for malformed JSON")
	}

	conv := filepath.Join(dir, "conv.yaml")
	os.WriteFile(conv, []byte("convention: feet\n"), 0644)
	if _, err := LoadFromFile(conv); err == nil {
		t.Error("expected an error for an unknown convention")
	}
}

func TestLoadFromXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.xlsx")

	wb := excelize.NewFile()
	wb.SetSheetName("Sheet1", SheetPile)
	wb.SetSheetRow(SheetPile, "A1", &[]interface{}{"convention", "rl"})
	wb.SetSheetRow(SheetPile, "A2", &[]interface{}{"diameter", 0.75})
	wb.SetSheetRow(SheetPile, "A3", &[]interface{}{"depth", 20})
	wb.NewSheet(SheetLayers)
	wb.SetSheetRow(SheetLayers, "A1", &[]interface{}{"Name", "Top", "Skin friction", "End bearing"})
	wb.SetSheetRow(SheetLayers, "A2", &[]interface{}{"Silt", 50, 20})
	wb.SetSheetRow(SheetLayers, "A3", &[]interface{}{"Rock", 38, 120, 7500})
	if err := wb.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	wb.Close()

	p, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if p.Convention != RL || *p.Pile.Diameter != 0.75 || *p.Pile.Depth != 20 {
		t.Errorf("profile = %+v", p)
	}
	if p.Pile.ReductionFactor != nil {
		t.Errorf("ReductionFactor = %v, want nil", *p.Pile.ReductionFactor)
	}
	if len(p.Layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(p.Layers))
	}
	if p.Layers[0].Name != "Silt" || p.Layers[0].EndBearing != nil {
		t.Errorf("layer 0 = %+v", p.Layers[0])
	}
	if *p.Layers[1].Top != 38 || *p.Layers[1].EndBearing != 7500 {
		t.Errorf("layer 1 = %+v", p.Layers[1])
	}
}
