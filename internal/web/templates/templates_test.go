package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestLayout_MarksActiveTab(t *testing.T) {
	page := Page{
		Title:  "Sean and Maya",
		Active: "explore",
		Tabs: []Tab{
			{ID: "home", Label: "Home", Href: "/home"},
			{ID: "explore", Label: "Explore", Href: "/explore", Selected: true},
		},
	}
	out := render(t, Layout(page, InlineError(Notice{Message: "x"})))

	assert.Contains(t, out, `data-view="explore" href="/explore" aria-selected="true"`)
	assert.Contains(t, out, `data-view="home" href="/home" aria-selected="false"`)
	assert.Contains(t, out, `<main class="view" id="explore">`)
	assert.Contains(t, out, "</html>")
}

func TestCalendar_EscapesContent(t *testing.T) {
	out := render(t, Calendar(CalendarData{Days: []CalendarDay{{
		Heading: "Day 1",
		Items: []CalendarItem{{
			Title:    `<script>alert(1)</script>`,
			Location: "Jaffa",
			MapURL:   "javascript:alert(1)",
			ICSHref:  "/calendar/ics?day=0&item=0",
		}},
	}}}))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `href="/calendar/ics?day=0&amp;item=0"`)
}

func TestCalendar_VariantClasses(t *testing.T) {
	out := render(t, Calendar(CalendarData{Days: []CalendarDay{{Items: []CalendarItem{{
		Title:    "Ceremony",
		Variant:  "wedding",
		Badge:    "wedding",
		Icon:     "💍",
		Category: "Wedding",
		ImageURL: "https://img.example/a.jpg",
	}}}}}))
	assert.Contains(t, out, `<div class="item wedding">`)
	assert.Contains(t, out, `<span class="badge wedding">💍 Wedding</span>`)
	assert.Contains(t, out, `src="https://img.example/a.jpg" alt="Ceremony"`)
}

func TestCalendar_NoLinksMessage(t *testing.T) {
	out := render(t, Calendar(CalendarData{Days: []CalendarDay{{Items: []CalendarItem{{Title: "TBD"}}}}}))
	assert.Contains(t, out, "Calendar links unavailable")
}

func TestExplore_NoticeReplacesGrid(t *testing.T) {
	out := render(t, Explore(ExploreData{Notice: &Notice{Message: "Could not load Explore data.", Code: "FETCH002"}}))
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "FETCH002")
	assert.NotContains(t, out, `class="grid"`)
}

func TestExplore_Chips(t *testing.T) {
	out := render(t, Explore(ExploreData{
		Categories: []Chip{{Value: "Food", Selected: true}, {Value: "Bars"}},
		CountLabel: "1 place",
		Places:     []PlaceCard{{Name: "Cafe", Category: "Food"}},
	}))
	assert.Contains(t, out, `name="value" value="Food"><button type="submit" class="chip" aria-pressed="true"`)
	assert.Contains(t, out, `aria-pressed="false">Bars`)
	assert.Contains(t, out, "1 place")
	assert.NotContains(t, out, "Clear filters")
}

func TestContacts_Tables(t *testing.T) {
	out := render(t, Contacts(ContactsData{
		Directory: []ContactCard{{FirstName: "Dana", LastName: "Levi", Phone: "050 1", TelHref: "tel:0501", WhatsAppHref: "https://wa.me/0501"}},
		Siren:     []SirenLink{{Label: "Red Alert", Href: "#"}},
	}))
	assert.Contains(t, out, `href="tel:0501"`)
	assert.Contains(t, out, `href="https://wa.me/0501"`)
	assert.Contains(t, out, "None listed", "empty emergency table")
	assert.Contains(t, out, `href="#"`)
}

func TestInlineError_Detail(t *testing.T) {
	out := render(t, InlineError(Notice{Message: "Could not load Contacts data.", Action: "Reload the page", Code: "FETCH001"}))
	assert.Contains(t, out, `<p class="notice-detail">Reload the page <code>FETCH001</code></p>`)

	out = render(t, InlineError(Notice{Message: "No data"}))
	assert.NotContains(t, out, "notice-detail")
}

func TestHome_Summary(t *testing.T) {
	out := render(t, Home(HomeData{Couple: "Sean and Maya", Items: 3, Days: 1}))
	assert.Contains(t, out, `<a href="/calendar">3 activities over 1 day</a>`)

	out = render(t, Home(HomeData{Couple: "Sean and Maya", Items: 3, Days: 2, Notice: &Notice{Message: "down"}}))
	assert.Contains(t, out, `role="alert"`)
	assert.NotContains(t, out, "activities over")
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := Home(HomeData{Couple: "x"}).Render(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
