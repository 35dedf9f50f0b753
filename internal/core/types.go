// Package core provides the parsing and view logic for the wedding week site.
// This package has no UI dependencies and can be used by any frontend.
package core

// FieldSpec describes one named column of a dataset.
type FieldSpec struct {
	Name       string              // Column header name as it appears in the source
	Normalizer func(string) string // Optional transformation applied after trimming
}

// DatasetInfo contains display information about a dataset.
type DatasetInfo struct {
	Key     string   // Unique identifier: "itinerary"
	Label   string   // Display name: "Itinerary"
	File    string   // Default source file: "wedding_week_itinerary.csv"
	Columns []string // Header column names
}

// DatasetDefinition contains everything needed to read one dataset.
type DatasetDefinition struct {
	Info       DatasetInfo
	FieldSpecs []FieldSpec

	// CaseInsensitive selects first-match, case-insensitive header lookups.
	// The itinerary reads its columns by exact name.
	CaseInsensitive bool
}

// ItineraryItem is one activity inside a day.
type ItineraryItem struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	MapLink     string `json:"mapLink"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// DayGroup holds every activity sharing one day label and date.
type DayGroup struct {
	DayLabel string          `json:"day"`
	DateISO  string          `json:"date"`
	Items    []ItineraryItem `json:"items"`
}

// Place is one Explore entry.
type Place struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Address     string `json:"address"`
	MapLink     string `json:"mapLink"`
}

// ContactRecord is one row of the contacts table. Category decides which
// list it belongs to.
type ContactRecord struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
	Link     string `json:"link"`
}
