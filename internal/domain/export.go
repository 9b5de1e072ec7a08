package domain

// ExportRow is a single row in the flat diary export: one row per entry,
// with the author's fields repeated on every row that author wrote.
// Timestamps are pre-formatted RFC3339 strings so CSV and JSON renderings
// agree on the representation.
type ExportRow struct {
	AuthorID        int    `json:"author_id"`
	AuthorName      string `json:"author_name"`
	Title           string `json:"title"`
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"duration_minutes"`
	IntensityLevel  int    `json:"intensity_level"`
	DiaryText       string `json:"diary_text"`
	CreatedAt       string `json:"created_at"`
	LastModified    string `json:"last_modified"`
}
