package core

import (
	"reflect"
	"testing"
)

func TestCheckHeader(t *testing.T) {
	tests := []struct {
		name        string
		dataset     string
		header      []string
		wantMissing []string
		wantExtra   []string
	}{
		{
			name:    "explore complete in any case",
			dataset: DatasetExplore,
			header:  []string{"NAME", "category", "Subcategory", "address", "Map Link"},
		},
		{
			name:        "explore missing address with extra column",
			dataset:     DatasetExplore,
			header:      []string{"Name", "Category", "Subcategory", "Map Link", "Rating"},
			wantMissing: []string{"Address"},
			wantExtra:   []string{"Rating"},
		},
		{
			name:        "itinerary is exact",
			dataset:     DatasetItinerary,
			header:      []string{"day", "Date", "Start Time", "End Time", "Activity Name", "Description", "Location", "Map Link", "Category", "Image URL"},
			wantMissing: []string{"Day"},
			wantExtra:   []string{"day"},
		},
		{
			name:        "empty header misses everything",
			dataset:     DatasetContacts,
			header:      nil,
			wantMissing: []string{"Name", "Category", "Phone", "Notes", "Website/Link"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := Get(tt.dataset)
			if !ok {
				t.Fatalf("dataset %q not registered", tt.dataset)
			}
			got := CheckHeader(def, tt.header)
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
			if !reflect.DeepEqual(got.Extra, tt.wantExtra) {
				t.Errorf("Extra = %v, want %v", got.Extra, tt.wantExtra)
			}
			if got.OK() != (len(tt.wantMissing) == 0) {
				t.Errorf("OK = %v", got.OK())
			}
		})
	}
}
