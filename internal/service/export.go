// Package service contains logic layered on top of the registers.
// Services orchestrate register calls; the contract rules themselves live
// in the domain types and registers.
package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/tmluong/workout-diary/internal/domain"
	"github.com/tmluong/workout-diary/internal/register"
)

// csvHeaders defines the column names written as the first record of any
// CSV export, in the same order as the fields of domain.ExportRow.
var csvHeaders = []string{
	"author_id", "author_name", "title", "activity",
	"duration_minutes", "intensity_level", "diary_text",
	"created_at", "last_modified",
}

// ExportService assembles a flat, denormalized view of the whole diary:
// one row per entry with the author's fields repeated on each row.
type ExportService struct {
	diary *register.DiaryRegister
}

// NewExportService constructs an ExportService over the given register.
func NewExportService(diary *register.DiaryRegister) *ExportService {
	return &ExportService{diary: diary}
}

// Rows returns one ExportRow per diary entry, newest first.
func (s *ExportService) Rows() []domain.ExportRow {
	entries := s.diary.SortedEntries()
	rows := make([]domain.ExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.ExportRow{
			AuthorID:        e.Author().ID(),
			AuthorName:      e.Author().Name(),
			Title:           e.EntryTitle(),
			Activity:        e.ActivityType(),
			DurationMinutes: e.DurationMinutes(),
			IntensityLevel:  e.IntensityLevel(),
			DiaryText:       e.DiaryText(),
			CreatedAt:       e.CreatedAt().UTC().Format(time.RFC3339),
			LastModified:    e.LastModified().UTC().Format(time.RFC3339),
		})
	}
	return rows
}

// WriteCSV writes the export as CSV: a header record followed by one
// record per entry.
func (s *ExportService) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("service.ExportService.WriteCSV: %w", err)
	}
	for _, r := range s.Rows() {
		record := []string{
			fmt.Sprint(r.AuthorID),
			r.AuthorName,
			r.Title,
			r.Activity,
			fmt.Sprint(r.DurationMinutes),
			fmt.Sprint(r.IntensityLevel),
			r.DiaryText,
			r.CreatedAt,
			r.LastModified,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("service.ExportService.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("service.ExportService.WriteCSV: %w", err)
	}
	return nil
}

// WriteJSON writes the export as an indented JSON array of rows.
func (s *ExportService) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Rows()); err != nil {
		return fmt.Errorf("service.ExportService.WriteJSON: %w", err)
	}
	return nil
}
