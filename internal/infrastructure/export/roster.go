package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

const RosterSheet = "Sakinler"

var RosterHeader = []string{
	"Ad Soyad",
	"Telefon",
	"Blok",
	"Daire No",
	"Sakin Tipi",
	"Plaka",
	"Kayıt Tarihi",
}

var rosterColumnWidths = []float64{28, 18, 16, 10, 12, 20, 18}

// RosterWriter renders a site's resident roster as an XLSX workbook.
type RosterWriter struct{}

func NewRosterWriter() *RosterWriter {
	return &RosterWriter{}
}

// Write streams the workbook for entries to w. An empty roster still
// produces the header row.
func (rw *RosterWriter) Write(w io.Writer, entries []*resident.RosterEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(RosterSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, 1, toAny(RosterHeader)); err != nil {
		return err
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(RosterHeader), 1)
	if err := f.SetCellStyle(RosterSheet, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range rosterColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(RosterSheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, entry := range entries {
		r := entry.Resident
		row := []any{
			r.FullName(),
			r.PhoneNumber(),
			entry.BlockName,
			r.ApartmentNo(),
			r.ResidentType().String(),
			r.Plates(),
			r.CreatedAt().In(biztime.Location()).Format("2006-01-02 15:04"),
		}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(RosterSheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
