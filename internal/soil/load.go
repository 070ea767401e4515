package soil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Sheet names used by workbook profiles. Reports are written with the same
// names so an exported workbook can be loaded back.
const (
	SheetPile   = "Pile"
	SheetLayers = "Layers"
)

// LoadFromFile loads a soil profile from a JSON, YAML or XLSX file.
// The format is chosen by extension; anything else is read as JSON.
func LoadFromFile(path string) (*Profile, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return LoadFromXLSX(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var profile Profile
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML profile: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse JSON profile: %w", err)
		}
	}

	if err := profile.normalize(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// LoadFromXLSX reads a workbook with a key/value "Pile" sheet and a "Layers"
// sheet (name, top, skin friction, end bearing; first row is a header).
// Without a "Layers" sheet the first sheet is read as the layer table.
func LoadFromXLSX(path string) (*Profile, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var profile Profile
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	layerSheet := ""
	for _, name := range sheets {
		switch name {
		case SheetLayers:
			layerSheet = name
		case SheetPile:
			rows, err := f.GetRows(name)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s sheet: %w", name, err)
			}
			profile.readPileRows(rows)
		default:
			if layerSheet == "" {
				layerSheet = name
			}
		}
	}
	if layerSheet == "" {
		return nil, fmt.Errorf("workbook %s has no layer sheet", path)
	}

	rows, err := f.GetRows(layerSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", layerSheet, err)
	}
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		cell := func(n int) string {
			if n < len(row) {
				return row[n]
			}
			return ""
		}
		profile.Layers = append(profile.Layers, Layer{
			Name:         strings.TrimSpace(cell(0)),
			Top:          ParseNumber(cell(1)),
			SkinFriction: ParseNumber(cell(2)),
			EndBearing:   ParseNumber(cell(3)),
		})
	}

	if err := profile.normalize(); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *Profile) readPileRows(rows [][]string) {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[0]))
		value := row[1]
		switch key {
		case "name":
			p.Name = strings.TrimSpace(value)
		case "convention":
			p.Convention = Convention(strings.TrimSpace(value))
		case "diameter":
			p.Pile.Diameter = ParseNumber(value)
		case "depth":
			p.Pile.Depth = ParseNumber(value)
		case "reduction_factor":
			p.Pile.ReductionFactor = ParseNumber(value)
		case "zone_multiplier":
			p.Pile.ZoneMultiplier = ParseNumber(value)
		}
	}
}

// normalize canonicalises the convention. A blank convention stays blank so
// callers can fall back to their own default.
func (p *Profile) normalize() error {
	if strings.TrimSpace(string(p.Convention)) == "" {
		p.Convention = ""
		return nil
	}
	c, err := ParseConvention(string(p.Convention))
	if err != nil {
		return err
	}
	p.Convention = c
	return nil
}
