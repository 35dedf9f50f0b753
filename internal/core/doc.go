// Package core provides the data logic of the wedding week site.
//
// It is independent of any transport: the web server, tests or a command-line
// tool can use it without modification.
//
// # Pipeline
//
// Every dataset follows the same path:
//
//	raw text -> [ParseTable] -> []RawRow -> normalizer -> typed records
//
// The itinerary is then grouped by day ([GroupItinerary]), Explore places are
// filtered per visitor ([ApplyFilters]) and contacts are split by category
// ([PartitionContacts]).
//
// # Datasets
//
// The three datasets are registered at init time with [Register]. Each
// [DatasetDefinition] lists its columns and whether header lookups are
// case-insensitive:
//
//	core.Register(DatasetDefinition{
//	    Info: DatasetInfo{Key: "explore", Label: "Explore"},
//	    FieldSpecs: []FieldSpec{{Name: "Name"}, {Name: "Category"}},
//	    CaseInsensitive: true,
//	})
//
// # Error Handling
//
// Parsing never fails: missing columns become "" and malformed dates only
// affect ordering. Fetch errors from other packages are mapped to
// guest-facing messages with [MapError].
package core
