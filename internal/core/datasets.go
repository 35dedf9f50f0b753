package core

import "strings"

// Dataset keys.
const (
	DatasetItinerary = "itinerary"
	DatasetExplore   = "explore"
	DatasetContacts  = "contacts"
)

// Itinerary columns.
const (
	ColDay          = "Day"
	ColDate         = "Date"
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColActivityName = "Activity Name"
	ColDescription  = "Description"
	ColLocation     = "Location"
	ColMapLink      = "Map Link"
	ColCategory     = "Category"
	ColImageURL     = "Image URL"
)

// Explore and contacts columns not shared with the itinerary.
const (
	ColName        = "Name"
	ColSubcategory = "Subcategory"
	ColAddress     = "Address"
	ColPhone       = "Phone"
	ColNotes       = "Notes"
	ColWebsite     = "Website/Link"
)

func init() {
	Register(DatasetDefinition{
		Info: DatasetInfo{
			Key:   DatasetItinerary,
			Label: "Itinerary",
			File:  "wedding_week_itinerary.csv",
		},
		FieldSpecs: []FieldSpec{
			{Name: ColDay},
			{Name: ColDate},
			{Name: ColStartTime, Normalizer: PadStartTime},
			{Name: ColEndTime},
			{Name: ColActivityName},
			{Name: ColDescription},
			{Name: ColLocation},
			{Name: ColMapLink},
			{Name: ColCategory},
			{Name: ColImageURL},
		},
	})

	Register(DatasetDefinition{
		Info: DatasetInfo{
			Key:   DatasetExplore,
			Label: "Explore",
			File:  "wedding_week_explore.csv",
		},
		FieldSpecs: []FieldSpec{
			{Name: ColName},
			{Name: ColCategory},
			{Name: ColSubcategory},
			{Name: ColAddress},
			{Name: ColMapLink},
		},
		CaseInsensitive: true,
	})

	Register(DatasetDefinition{
		Info: DatasetInfo{
			Key:   DatasetContacts,
			Label: "Contacts",
			File:  "wedding_week_contacts.csv",
		},
		FieldSpecs: []FieldSpec{
			{Name: ColName},
			{Name: ColCategory},
			{Name: ColPhone},
			{Name: ColNotes},
			{Name: ColWebsite},
		},
		CaseInsensitive: true,
	})
}

// mustGet returns a dataset that init registered.
func mustGet(key string) DatasetDefinition {
	def, ok := Get(key)
	if !ok {
		panic("dataset not registered: " + key)
	}
	return def
}

// PadStartTime left-pads a time with zeros to five characters so "9:30"
// becomes "09:30". Longer or empty values are returned as-is.
func PadStartTime(s string) string {
	if s == "" || len(s) >= 5 {
		return s
	}
	return strings.Repeat("0", 5-len(s)) + s
}

// TemplateCSV returns the header line for a dataset, suitable for a blank
// spreadsheet template.
func TemplateCSV(def DatasetDefinition) string {
	cols := make([]string, len(def.Info.Columns))
	for i, c := range def.Info.Columns {
		if strings.ContainsAny(c, `,"`) {
			c = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		cols[i] = c
	}
	return strings.Join(cols, ",") + "\n"
}
