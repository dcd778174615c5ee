package export

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"legacy-booth/internal/domain"
)

const (
	CoverSheet   = "Resident"
	StoriesSheet = "Stories"
)

var StoriesHeader = []string{
	"Recorded",
	"Type",
	"Prompt",
	"Status",
	"Transcription",
	"AI Summary",
	"Staff Notes",
	"Video",
}

var storiesColumnWidths = []float64{20, 12, 40, 14, 60, 40, 30, 40}

// LegacyBook renders a resident's recordings as an xlsx workbook. Only
// recordings belonging to the resident are included, oldest first.
func LegacyBook(resident domain.Resident, recordings []domain.Recording) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CoverSheet); err != nil {
		return nil, fmt.Errorf("failed to rename cover sheet: %w", err)
	}
	if err := writeCover(f, resident); err != nil {
		return nil, err
	}

	index, err := f.NewSheet(StoriesSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeStories(f, ownRecordings(resident.ID, recordings)); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func ownRecordings(residentID string, recordings []domain.Recording) []domain.Recording {
	own := make([]domain.Recording, 0, len(recordings))
	for _, r := range recordings {
		if r.ResidentID == residentID {
			own = append(own, r)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Timestamp.Before(own[j].Timestamp)
	})
	return own
}

func writeCover(f *excelize.File, r domain.Resident) error {
	rows := [][]any{
		{"Legacy Book", r.Name},
		{"Resident ID", r.ID},
		{"Email", r.Email},
		{"Family Contact", deref(r.FamilyContactName)},
		{"Family Email", deref(r.FamilyContactEmail)},
		{"Family Phone", deref(r.FamilyContactPhone)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(CoverSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write cover row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create label style: %w", err)
	}
	if err := f.SetCellStyle(CoverSheet, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return fmt.Errorf("failed to set label style: %w", err)
	}
	return f.SetColWidth(CoverSheet, "A", "B", 24)
}

func writeStories(f *excelize.File, recordings []domain.Recording) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#F3E9DC"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(StoriesHeader))
	for i, h := range StoriesHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(StoriesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(StoriesHeader))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(StoriesSheet, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range storiesColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(StoriesSheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, r := range recordings {
		video := ""
		if r.Video != nil {
			video = r.Video.URL
		}
		row := []any{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			string(r.Type),
			deref(r.Prompt),
			string(r.Status),
			r.Transcription,
			r.AISummary,
			r.StaffNotes,
			video,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(StoriesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.SetPanes(StoriesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
