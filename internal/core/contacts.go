package core

import (
	"strings"
	"unicode"
)

// Contact categories. Matching is exact and case-insensitive.
const (
	CategoryContacts  = "contacts"
	CategoryEmergency = "emergency"
	CategorySiren     = "siren"
)

// SirenSlot names one civil-alert reference link shown on the contacts page.
type SirenSlot string

const (
	SlotHomeFrontCommand SirenSlot = "home front command"
	SlotRedAlert         SirenSlot = "red alert"
	SlotShelterMap       SirenSlot = "shelter map"
)

// SirenSlots lists the slots in display order.
var SirenSlots = []SirenSlot{SlotHomeFrontCommand, SlotRedAlert, SlotShelterMap}

// sirenAliases are normalized names accepted for each slot, tried in order.
var sirenAliases = map[SirenSlot][]string{
	SlotHomeFrontCommand: {"homefrontcommand", "homefront"},
	SlotRedAlert:         {"redalert"},
	SlotShelterMap:       {"interactivetelavivsheltermap", "telavivsheltermap", "sheltermap"},
}

// ContactBook is the contacts table split by category.
type ContactBook struct {
	All       []ContactRecord      `json:"all"`
	Directory []ContactRecord      `json:"contacts"`
	Emergency []ContactRecord      `json:"emergency"`
	Siren     []ContactRecord      `json:"siren"`
	Links     map[SirenSlot]string `json:"links"`
}

// PartitionContacts splits records into directory, emergency and siren
// views. Records with any other category appear only in All.
func PartitionContacts(all []ContactRecord) ContactBook {
	book := ContactBook{
		All:       append([]ContactRecord{}, all...),
		Directory: []ContactRecord{},
		Emergency: []ContactRecord{},
		Siren:     []ContactRecord{},
	}
	for _, r := range all {
		switch strings.ToLower(strings.TrimSpace(r.Category)) {
		case CategoryContacts:
			book.Directory = append(book.Directory, r)
		case CategoryEmergency:
			book.Emergency = append(book.Emergency, r)
		case CategorySiren:
			book.Siren = append(book.Siren, r)
		}
	}
	return book
}

// NewContactBook partitions records and resolves the siren slots.
func NewContactBook(all []ContactRecord, defaults map[SirenSlot]string) ContactBook {
	book := PartitionContacts(all)
	book.Links = ResolveSirenLinks(book.Siren, defaults)
	return book
}

// NormalizeSirenName lowercases a name and removes all whitespace.
func NormalizeSirenName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveSirenLinks resolves every slot from siren records. A slot takes the
// link of the first alias found; otherwise the default for the slot; otherwise "#".
// Records of other categories and records without a link are ignored.
func ResolveSirenLinks(records []ContactRecord, defaults map[SirenSlot]string) map[SirenSlot]string {
	byName := make(map[string]string)
	for _, r := range records {
		if strings.ToLower(strings.TrimSpace(r.Category)) != CategorySiren || r.Link == "" {
			continue
		}
		byName[NormalizeSirenName(r.Name)] = r.Link
	}

	out := make(map[SirenSlot]string, len(SirenSlots))
	for _, slot := range SirenSlots {
		out[slot] = resolveSlot(slot, byName, defaults)
	}
	return out
}

func resolveSlot(slot SirenSlot, byName map[string]string, defaults map[SirenSlot]string) string {
	for _, alias := range sirenAliases[slot] {
		if link := byName[alias]; link != "" {
			return link
		}
	}
	if d := defaults[slot]; d != "" {
		return d
	}
	return "#"
}
