// Package export writes the catalog outline in formats course authors
// work with.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/edukit/coursed/internal/catalog"
)

const sheetName = "Outline"

var outlineHeader = []string{
	"Section ID", "Section Title", "Sub-section ID", "Sub-section Title",
	"Duration", "Has Video", "Questions",
}

// OutlineRow is one sub-section of the catalog, flattened for export. A
// section with no sub-sections still yields one row so it is not lost
// from the outline.
type OutlineRow struct {
	SectionID    string
	SectionTitle string
	SubID        string
	SubTitle     string
	Duration     string
	HasVideo     bool
	Questions    int
}

// OutlineRows flattens the catalog into export rows, preserving catalog
// order.
func OutlineRows(c *catalog.Catalog) []OutlineRow {
	var rows []OutlineRow
	for _, s := range c.Sections {
		if len(s.Subsections) == 0 {
			rows = append(rows, OutlineRow{SectionID: s.ID, SectionTitle: s.Title})
			continue
		}
		for _, ss := range s.Subsections {
			rows = append(rows, OutlineRow{
				SectionID:    s.ID,
				SectionTitle: s.Title,
				SubID:        ss.ID,
				SubTitle:     ss.Title,
				Duration:     ss.Duration,
				HasVideo:     ss.VideoURL != "",
				Questions:    len(ss.Questions),
			})
		}
	}
	return rows
}

// WriteCSV writes the outline as CSV with a header row.
func WriteCSV(w io.Writer, rows []OutlineRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(outlineHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.SectionID, row.SectionTitle, row.SubID, row.SubTitle,
			row.Duration, strconv.FormatBool(row.HasVideo), strconv.Itoa(row.Questions),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the outline as a single-sheet XLSX workbook.
func WriteXLSX(path string, rows []OutlineRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for col, title := range outlineHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.SectionID, row.SectionTitle, row.SubID, row.SubTitle,
			row.Duration, row.HasVideo, row.Questions,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
