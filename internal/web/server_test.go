package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JonMunkholm/weddingweek/internal/config"
	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itineraryCSV = `Day,Date,Start Time,End Time,Activity Name,Description,Location,Map Link,Category,Image URL
Day 2,2025-08-31,9:00,10:00,Brunch,Eggs & coffee,Jaffa Port,,Food,
Day 2,2025-08-31,19:00,,Ceremony,,Venue,,Wedding,
Day 3,sometime,12:00,,Beach,,,,Leisure,
`

const exploreCSV = `Name,Category,Subcategory,Address,Map Link
Cafe Xoho,Food,Coffee,Gordon St,
Museum,Culture,Art,Rothschild,
`

type stubLoader struct {
	contactsErr error
}

func (l stubLoader) Itinerary(ctx context.Context) ([]core.DayGroup, error) {
	return core.ParseItinerary(itineraryCSV), nil
}

func (l stubLoader) Places(ctx context.Context) ([]core.Place, error) {
	return core.ParsePlaces(exploreCSV), nil
}

func (l stubLoader) Contacts(ctx context.Context) ([]core.ContactRecord, error) {
	if l.contactsErr != nil {
		return nil, l.contactsErr
	}
	return []core.ContactRecord{
		{Name: "Dana Levi", Category: "contacts", Phone: "+972 50-123-4567"},
		{Name: "Police", Category: "emergency", Phone: "100"},
		{Name: "Red Alert", Category: "siren", Link: "https://alerts.example"},
	}, nil
}

// countingLoader counts itinerary loads.
type countingLoader struct {
	stubLoader
	itinerary *atomic.Int32
}

func (l countingLoader) Itinerary(ctx context.Context) ([]core.DayGroup, error) {
	l.itinerary.Add(1)
	return l.stubLoader.Itinerary(ctx)
}

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{RequestTimeout: 5 * time.Second},
		Session: config.SessionConfig{CookieName: "ww_session", IdleTimeout: time.Hour},
	}
}

func newTestServer(t *testing.T, loader session.Loader) *Server {
	t.Helper()
	s := NewServer(testConfig(), config.DefaultSite(), session.NewStore(loader, time.Hour), nil)
	s.now = func() time.Time { return time.Date(2025, 8, 21, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

// client replays the session cookie across requests.
type client struct {
	t      *testing.T
	s      *Server
	cookie *http.Cookie
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.s.Router().ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "ww_session" {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func TestView_HomeSetsSessionCookie(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)

	body := rec.Body.String()
	assert.Contains(t, body, `data-view="home" href="/home" aria-selected="true"`)
	assert.Contains(t, body, `data-view="calendar" href="/calendar" aria-selected="false"`)
	assert.Contains(t, body, "Sean and Maya")
	assert.Contains(t, body, "10 days to go")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestView_UnknownPathFallsBackToHome(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/nowhere")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<main class="view" id="home">`)

	rec = c.get("/site/contacts/")
	assert.Contains(t, rec.Body.String(), `<main class="view" id="contacts">`)
}

func TestView_Calendar(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/calendar")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Eggs &amp; coffee")
	assert.Contains(t, body, "/calendar/ics?day=0&amp;item=0")
	assert.Contains(t, body, "/calendar/ics?day=0&amp;item=1")
	assert.Contains(t, body, "https://www.google.com/calendar/render?action=TEMPLATE")
	// Day 3 has no readable date
	assert.Contains(t, body, "Calendar links unavailable for this date")
	assert.NotContains(t, body, "day=1&amp;item=0")
}

func TestCalendarFile(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/calendar/ics?day=0&item=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=Brunch.ics`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "SUMMARY:Brunch")
	assert.Contains(t, body, "DTSTART:20250831T060000Z")
	assert.Contains(t, body, "DTEND:20250831T070000Z")
}

func TestCalendarFile_Errors(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	tests := []struct {
		query  string
		status int
		code   string
	}{
		{"day=x&item=0", http.StatusBadRequest, "REQ001"},
		{"day=0", http.StatusBadRequest, "REQ001"},
		{"day=0&item=9", http.StatusNotFound, "REQ002"},
		{"day=-1&item=0", http.StatusNotFound, "REQ002"},
		{"day=1&item=0", http.StatusUnprocessableEntity, "REQ001"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/calendar/ics?"+tt.query, nil)
			req.Header.Set("Accept", "application/json")
			rec := c.do(req)

			require.Equal(t, tt.status, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestExplore_FilterActions(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/explore")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Museum")
	assert.Contains(t, rec.Body.String(), "2 places")

	rec = c.post("/explore/search", url.Values{"q": {"  CAF "}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/explore", rec.Header().Get("Location"))

	body := c.get("/explore").Body.String()
	assert.Contains(t, body, "Cafe Xoho")
	assert.NotContains(t, body, "Museum")
	assert.Contains(t, body, "1 place")

	rec = c.post("/explore/clear", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = c.post("/explore/category", url.Values{"value": {"Culture"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	body = c.get("/explore").Body.String()
	assert.Contains(t, body, "1 place")
}

func TestExplore_FiltersArePerSession(t *testing.T) {
	s := newTestServer(t, stubLoader{})
	a := &client{t: t, s: s}
	b := &client{t: t, s: s}

	a.get("/explore")
	b.get("/explore")
	a.post("/explore/search", url.Values{"q": {"museum"}})

	assert.Contains(t, a.get("/explore").Body.String(), "1 place")
	assert.Contains(t, b.get("/explore").Body.String(), "2 places")
}

func TestView_ContactsLoadFailureIsInline(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{contactsErr: errors.New("unexpected status 503 Service Unavailable")})}

	rec := c.get("/contacts")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `role="alert"`)
	assert.Contains(t, body, "FETCH001")
	// Other views are unaffected
	assert.Contains(t, c.get("/calendar").Body.String(), "Brunch")
}

func TestView_LoaderUserErrorKeepsItsCode(t *testing.T) {
	loadErr := core.NewUserError(errors.New("load contacts: fetch data/contacts.csv: too many concurrent fetches"))
	c := &client{t: t, s: newTestServer(t, stubLoader{contactsErr: loadErr})}

	body := c.get("/contacts").Body.String()
	assert.Contains(t, body, "Could not load Contacts data.")
	assert.Contains(t, body, "FETCH005")

	rec := c.get("/api/contacts")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "FETCH005", resp.Code)
	assert.Equal(t, "The data source is busy", resp.Message)
}

func TestView_PrefetchWaitsForCookie(t *testing.T) {
	calls := &atomic.Int32{}
	s := newTestServer(t, countingLoader{itinerary: calls})

	// Cookieless clients get a fresh session each time and trigger no load.
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explore", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		rec = httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/explore", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 6, s.store.Len(), "every cookieless request makes a session")
	assert.Zero(t, calls.Load())

	c := &client{t: t, s: s}
	c.get("/explore")
	assert.Zero(t, calls.Load())
	c.get("/explore")
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	c.get("/contacts")
	assert.EqualValues(t, 1, calls.Load(), "prefetch runs once per session")
}

func TestView_Contacts(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	body := c.get("/contacts").Body.String()
	assert.Contains(t, body, "Dana")
	assert.Contains(t, body, "+972 50-123-4567")
	assert.Contains(t, body, "https://wa.me/972501234567")
	assert.Contains(t, body, "https://alerts.example")
	// Slots without a row fall back to the site defaults.
	assert.Contains(t, body, `href="`+config.DefaultHomeFrontCommand+`"`)
	assert.Contains(t, body, `href="`+config.DefaultShelterMap+`"`)
	assert.NotContains(t, body, `href="#"`)
}

func TestAPI_Explore(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/api/explore?category=Food&sort=az")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp exploreResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Cafe Xoho", resp.Places[0].Name)
	assert.Equal(t, []string{"Culture", "Food"}, resp.Categories)
	assert.True(t, resp.Filters.SortAlphabetically)
}

func TestAPI_ItineraryAndContacts(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	var it itineraryResponse
	rec := c.get("/api/itinerary")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&it))
	assert.Equal(t, 3, it.Items)
	assert.Len(t, it.Days, 2)

	var book core.ContactBook
	rec = c.get("/api/contacts")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&book))
	assert.Len(t, book.Directory, 1)
	assert.Equal(t, "https://alerts.example", book.Links[core.SlotRedAlert])
}

func TestAPI_NotFound(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	rec = c.get("/api/template/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_Template(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/api/template/explore")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Name,"))
}

func TestHealth(t *testing.T) {
	c := &client{t: t, s: newTestServer(t, stubLoader{})}

	rec := c.get("/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Datasets)
	assert.Nil(t, resp.Fetches)
	assert.Nil(t, c.cookie)
}

type fixedSlots struct{ active, capacity int }

func (f fixedSlots) Slots() (int, int) { return f.active, f.capacity }

func TestHealth_FetchSlots(t *testing.T) {
	s := NewServer(testConfig(), config.DefaultSite(), session.NewStore(stubLoader{}, time.Hour), fixedSlots{active: 1, capacity: 4})
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Fetches)
	assert.Equal(t, 1, resp.Fetches.Active)
	assert.Equal(t, 4, resp.Fetches.Capacity)
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	defer rl.stop()

	assert.True(t, rl.allow("1.1.1.1"))
	assert.True(t, rl.allow("1.1.1.1"))
	assert.False(t, rl.allow("1.1.1.1"))
	assert.True(t, rl.allow("2.2.2.2"))
}
