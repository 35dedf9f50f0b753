package core

// Normalizers turn parsed rows into typed records. Every field defaults to ""
// and nothing is coerced beyond trimming, except the itinerary start time,
// which is zero-padded so it sorts chronologically.

// NormalizeItineraryItem maps one itinerary row to an ItineraryItem.
func NormalizeItineraryItem(row RawRow) ItineraryItem {
	rec := mustGet(DatasetItinerary).Record(row)
	return ItineraryItem{
		StartTime:   rec[ColStartTime],
		EndTime:     rec[ColEndTime],
		Title:       rec[ColActivityName],
		Description: rec[ColDescription],
		Location:    rec[ColLocation],
		MapLink:     rec[ColMapLink],
		Category:    rec[ColCategory],
		ImageURL:    rec[ColImageURL],
	}
}

// NormalizePlaces maps explore rows to places.
func NormalizePlaces(rows []RawRow) []Place {
	def := mustGet(DatasetExplore)
	out := make([]Place, 0, len(rows))
	for _, row := range rows {
		rec := def.Record(row)
		out = append(out, Place{
			Name:        rec[ColName],
			Category:    rec[ColCategory],
			Subcategory: rec[ColSubcategory],
			Address:     rec[ColAddress],
			MapLink:     rec[ColMapLink],
		})
	}
	return out
}

// NormalizeContacts maps contacts rows to contact records.
func NormalizeContacts(rows []RawRow) []ContactRecord {
	def := mustGet(DatasetContacts)
	out := make([]ContactRecord, 0, len(rows))
	for _, row := range rows {
		rec := def.Record(row)
		out = append(out, ContactRecord{
			Name:     rec[ColName],
			Category: rec[ColCategory],
			Phone:    rec[ColPhone],
			Notes:    rec[ColNotes],
			Link:     rec[ColWebsite],
		})
	}
	return out
}

// ParsePlaces parses the explore table.
func ParsePlaces(text string) []Place {
	return NormalizePlaces(ParseTable(text).Rows)
}

// ParseContacts parses the contacts table.
func ParseContacts(text string) []ContactRecord {
	return NormalizeContacts(ParseTable(text).Rows)
}
