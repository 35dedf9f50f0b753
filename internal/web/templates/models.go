// Package templates renders the site's HTML views as templ components.
// The .templ files are the source; run `templ generate` after editing them.
package templates

// Tab is one entry of the top navigation.
type Tab struct {
	ID       string
	Label    string
	Href     string
	Selected bool
}

// Page carries what every view shares: header and navigation.
type Page struct {
	Title     string
	Subtitle  string
	Countdown string
	Active    string
	Tabs      []Tab
}

// Notice is an inline message shown in place of a view's content.
type Notice struct {
	Message string
	Action  string
	Code    string
}

func (n Notice) hasDetail() bool {
	return n.Action != "" || n.Code != ""
}

// HomeData is the landing view.
type HomeData struct {
	Couple    string
	DateLabel string
	Countdown string
	VenueMap  string
	Days      int
	Items     int
	Notice    *Notice
}

func (d HomeData) dayUnit() string {
	if d.Days == 1 {
		return "day"
	}
	return "days"
}

// CalendarItem is one activity card.
type CalendarItem struct {
	Time        string
	Title       string
	Description string
	Location    string
	MapURL      string
	Category    string
	Variant     string
	Badge       string
	Icon        string
	ImageURL    string
	GoogleURL   string
	ICSHref     string
}

// label names the item in link descriptions when the title is blank.
func (it CalendarItem) label() string {
	if it.Title == "" {
		return "event"
	}
	return it.Title
}

func (it CalendarItem) hasLinks() bool {
	return it.GoogleURL != "" || it.ICSHref != ""
}

// CalendarDay is one day section.
type CalendarDay struct {
	Heading   string
	DateLabel string
	Items     []CalendarItem
}

// CalendarData is the itinerary view.
type CalendarData struct {
	Days   []CalendarDay
	Notice *Notice
}

// Chip is a selectable filter value.
type Chip struct {
	Value    string
	Selected bool
}

// PlaceCard is one place in the grid.
type PlaceCard struct {
	Name        string
	Category    string
	Subcategory string
	Address     string
	MapURL      string
}

// ExploreData is the filterable places view.
type ExploreData struct {
	Search        string
	SortAZ        bool
	Categories    []Chip
	Subcategories []Chip
	Places        []PlaceCard
	CountLabel    string
	Filtered      bool
	Notice        *Notice
}

// ContactCard is one person or service.
type ContactCard struct {
	FirstName    string
	LastName     string
	Phone        string
	TelHref      string
	WhatsAppHref string
	Notes        string
	Link         string
}

// SirenLink is one civil-alert reference.
type SirenLink struct {
	Label string
	Href  string
}

// ContactsData is the contacts view.
type ContactsData struct {
	Directory []ContactCard
	Emergency []ContactCard
	Siren     []SirenLink
	Notice    *Notice
}
