// Package report writes capacity calculations to XLSX workbooks and PDF summaries
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/gopile/internal/pile"
	"github.com/alexiusacademia/gopile/internal/soil"
)

// Report is everything written to a report file
type Report struct {
	Title       string
	Description string
	Date        time.Time

	Result *pile.Result
	Points []pile.DepthPoint // optional capacity versus depth
}

// Write saves the report in the format given by the file extension (.xlsx or .pdf)
func Write(r Report, filename string) error {
	if r.Result == nil {
		return fmt.Errorf("report has no result")
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return WriteXLSX(r, filename)
	case ".pdf":
		return WritePDF(r, filename)
	}
	return fmt.Errorf("unsupported report format %q (use .xlsx or .pdf)", filepath.Ext(filename))
}

func (r Report) title() string {
	if r.Title != "" {
		return r.Title
	}
	return "Pile Capacity"
}

func (r Report) date() time.Time {
	if r.Date.IsZero() {
		return time.Now()
	}
	return r.Date
}

func layerName(l pile.LayerResult, i int) string {
	return soil.Layer{Name: l.Name}.DisplayName(i)
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
