package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// CoupleConfig names the two people getting married.
type CoupleConfig struct {
	First  string `yaml:"first" json:"first"`
	Second string `yaml:"second" json:"second"`
}

// SirenConfig holds fallback links for the civil-alert slots on the contacts
// page. Rows in the contacts data override them.
type SirenConfig struct {
	HomeFrontCommand string `yaml:"home_front_command" json:"homeFrontCommand"`
	RedAlert         string `yaml:"red_alert" json:"redAlert"`
	ShelterMap       string `yaml:"shelter_map" json:"shelterMap"`
}

// Site is the content profile of the wedding week.
type Site struct {
	Couple CoupleConfig `yaml:"couple" json:"couple"`

	// WeddingDate is the YYYY-MM-DD date the countdown runs to.
	WeddingDate string `yaml:"wedding_date" json:"weddingDate"`

	// VenueMap is the map link behind the venue button.
	VenueMap string `yaml:"venue_map" json:"venueMap"`

	// Timezone is the IANA zone used for calendar events and the countdown.
	Timezone string `yaml:"timezone" json:"timezone"`

	// Locale is the BCP 47 tag used for alphabetical sorting.
	Locale string `yaml:"locale" json:"locale"`

	// ProductID is the PRODID written into calendar files.
	ProductID string `yaml:"product_id" json:"productId"`

	Siren SirenConfig `yaml:"siren" json:"siren"`

	loc *time.Location
	tag language.Tag
}

// Public civil-alert references for a wedding week in Tel Aviv.
const (
	DefaultHomeFrontCommand = "https://www.oref.org.il/en"
	DefaultRedAlert         = "https://play.google.com/store/apps/details?id=com.red.alert"
	DefaultShelterMap       = "https://gisn.tel-aviv.gov.il/iview2js4/index.aspx"
)

// DefaultSite returns the built-in profile.
func DefaultSite() *Site {
	s := &Site{
		Couple:      CoupleConfig{First: "Sean", Second: "Maya"},
		WeddingDate: "2025-08-31",
		VenueMap:    "https://maps.app.goo.gl/njqM2sQ83jtwhUE38",
		Timezone:    "Asia/Jerusalem",
		Locale:      "en",
		ProductID:   "-//Wedding Week//Sean and Maya//EN",
		Siren: SirenConfig{
			HomeFrontCommand: DefaultHomeFrontCommand,
			RedAlert:         DefaultRedAlert,
			ShelterMap:       DefaultShelterMap,
		},
	}
	s.Normalize()
	return s
}

// Normalize fills missing values with defaults and resolves the time zone and
// locale. Unknown zones fall back to UTC and unknown locales to English.
func (s *Site) Normalize() {
	s.Couple.First = strings.TrimSpace(s.Couple.First)
	s.Couple.Second = strings.TrimSpace(s.Couple.Second)
	if s.Timezone == "" {
		s.Timezone = "UTC"
	}
	if s.Locale == "" {
		s.Locale = "en"
	}
	if s.ProductID == "" {
		s.ProductID = fmt.Sprintf("-//Wedding Week//%s//EN", s.CoupleNames())
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		loc = time.UTC
	}
	s.loc = loc

	tag, err := language.Parse(s.Locale)
	if err != nil {
		tag = language.English
	}
	s.tag = tag
}

// Location returns the resolved time zone.
func (s *Site) Location() *time.Location {
	if s.loc == nil {
		return time.UTC
	}
	return s.loc
}

// Language returns the resolved locale.
func (s *Site) Language() language.Tag {
	if s.tag == language.Und {
		return language.English
	}
	return s.tag
}

// CoupleNames joins the couple's names for headings, e.g. "Sean and Maya".
func (s *Site) CoupleNames() string {
	switch {
	case s.Couple.First != "" && s.Couple.Second != "":
		return s.Couple.First + " and " + s.Couple.Second
	case s.Couple.First != "":
		return s.Couple.First
	case s.Couple.Second != "":
		return s.Couple.Second
	default:
		return "Itinerary"
	}
}

// LoadSite reads the profile at path. A missing file yields DefaultSite; a
// file that exists but does not parse is an error.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSite(), nil
		}
		return nil, fmt.Errorf("read site profile %s: %w", path, err)
	}

	s := DefaultSite()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse site profile %s: %w", path, err)
	}
	s.Normalize()
	return s, nil
}
