package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexiusacademia/gopile/internal/pile"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/xuri/excelize/v2"
)

func sampleInput() pile.Input {
	return pile.Input{
		Diameter:        soil.Float(0.6),
		Depth:           soil.Float(15),
		ReductionFactor: soil.Float(0.5),
		ZoneMultiplier:  1,
		Convention:      soil.RL,
		Layers: []soil.Layer{
			{Name: "Clay", Top: soil.Float(100), SkinFriction: soil.Float(50)},
			{Name: "Sand", Top: soil.Float(90), SkinFriction: soil.Float(80), EndBearing: soil.Float(2000)},
		},
	}
}

func sampleReport(t *testing.T) Report {
	t.Helper()

	in := sampleInput()
	res, err := pile.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	points, err := pile.Profile(in, 0, 15, 5)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	return Report{
		Title:  "P1",
		Date:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Result: res,
		Points: points,
	}
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	r := sampleReport(t)
	path := filepath.Join(t.TempDir(), "p1.xlsx")

	if err := Write(r, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	profile, err := soil.LoadFromXLSX(path)
	if err != nil {
		t.Fatalf("LoadFromXLSX() error = %v", err)
	}
	if profile.Name != "P1" || profile.Convention != soil.RL {
		t.Errorf("profile = %q %q, want P1 rl", profile.Name, profile.Convention)
	}
	if len(profile.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(profile.Layers))
	}

	in := pile.Input{
		Diameter:        profile.Pile.Diameter,
		Depth:           profile.Pile.Depth,
		ReductionFactor: profile.Pile.ReductionFactor,
		ZoneMultiplier:  *profile.Pile.ZoneMultiplier,
		Convention:      profile.Convention,
		Layers:          profile.Layers,
	}
	again, err := pile.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() on reloaded profile error = %v", err)
	}
	if again.Total != r.Result.Total {
		t.Errorf("reloaded total = %v, want %v", again.Total, r.Result.Total)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	total, err := f.GetCellValue(sheetResults, "B11")
	if err != nil {
		t.Fatal(err)
	}
	if want := "1131"; total != want {
		t.Errorf("total cell = %q, want %q", total, want)
	}

	rows, err := f.GetRows(sheetDepth)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Errorf("depth profile has %d rows, want 5", len(rows))
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "p1.pdf")
	if err := Write(sampleReport(t), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report is empty")
	}
}

func TestWriteErrors(t *testing.T) {
	dir := t.TempDir()

	if err := Write(Report{}, filepath.Join(dir, "a.pdf")); err == nil {
		t.Error("expected an error without a result")
	}
	if err := Write(sampleReport(t), filepath.Join(dir, "a.docx")); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
