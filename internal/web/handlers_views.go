package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/logging"
	"github.com/JonMunkholm/weddingweek/internal/session"
	"github.com/JonMunkholm/weddingweek/internal/web/templates"
	"github.com/a-h/templ"
)

var sirenLabels = map[core.SirenSlot]string{
	core.SlotHomeFrontCommand: "Home Front Command",
	core.SlotRedAlert:         "Red Alert app",
	core.SlotShelterMap:       "Shelter map",
}

// handleView renders whichever view the path names. A dataset that fails to
// load shows an inline notice in its own view; the page is still a 200.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := sessionFrom(ctx)
	view := session.ViewFromPath(r.URL.Path)

	// Only sessions whose cookie came back are prefetched.
	if !sessionIsNew(ctx) {
		sess.Prefetch(ctx)
	}

	t := sess.Navigate(ctx, view)
	if t.FirstEntry {
		logging.FromContext(ctx).Debug("view entered", "view", view, "from", t.From)
	}

	var body templ.Component
	switch view {
	case session.ViewCalendar:
		body = templates.Calendar(s.calendarData(ctx, sess))
	case session.ViewExplore:
		body = templates.Explore(s.exploreData(ctx, sess))
	case session.ViewContacts:
		body = templates.Contacts(s.contactsData(ctx, sess))
	default:
		body = templates.Home(s.homeData(ctx, sess))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Layout(s.page(view), body).Render(ctx, w); err != nil {
		logging.FromContext(ctx).Error("render failed", "view", view, "error", err)
	}
}

func (s *Server) page(active session.View) templates.Page {
	tabs := make([]templates.Tab, 0, len(session.Views))
	for _, v := range session.Views {
		tabs = append(tabs, templates.Tab{
			ID:       string(v),
			Label:    v.Label(),
			Href:     v.Path(),
			Selected: v == active,
		})
	}
	return templates.Page{
		Title:     s.site.CoupleNames(),
		Subtitle:  "Wedding week",
		Countdown: s.countdown(),
		Active:    string(active),
		Tabs:      tabs,
	}
}

func (s *Server) countdown() string {
	days, ok := core.DaysUntil(s.now(), s.site.WeddingDate, s.site.Location())
	if !ok {
		return ""
	}
	return core.CountdownMessage(days)
}

func datasetLabel(key string) string {
	if def, ok := core.Get(key); ok {
		return def.Info.Label
	}
	return key
}

func loadNotice(dataset string, err error) *templates.Notice {
	msg := core.MessageFor(err)
	return &templates.Notice{
		Message: core.LoadFailedMessage(datasetLabel(dataset)),
		Action:  msg.Action,
		Code:    msg.Code,
	}
}

func emptyNotice(dataset string) *templates.Notice {
	return &templates.Notice{Message: core.EmptyMessage(datasetLabel(dataset))}
}

func (s *Server) homeData(ctx context.Context, sess *session.Session) templates.HomeData {
	d := templates.HomeData{
		Couple:    s.site.CoupleNames(),
		DateLabel: core.DayGroup{DateISO: s.site.WeddingDate}.DateLabel(),
		Countdown: s.countdown(),
		VenueMap:  s.site.VenueMap,
	}

	days, err := sess.Itinerary(ctx)
	switch {
	case err != nil:
		d.Notice = loadNotice(core.DatasetItinerary, err)
	case len(days) == 0:
		d.Notice = emptyNotice(core.DatasetItinerary)
	default:
		d.Days = len(days)
		d.Items = core.ItemCount(days)
	}
	return d
}

func (s *Server) calendarData(ctx context.Context, sess *session.Session) templates.CalendarData {
	days, err := sess.Itinerary(ctx)
	if err != nil {
		return templates.CalendarData{Notice: loadNotice(core.DatasetItinerary, err)}
	}
	if len(days) == 0 {
		return templates.CalendarData{Notice: emptyNotice(core.DatasetItinerary)}
	}

	loc := s.site.Location()
	out := make([]templates.CalendarDay, 0, len(days))
	for di, day := range days {
		cd := templates.CalendarDay{
			Heading:   day.Heading(),
			DateLabel: day.DateLabel(),
			Items:     make([]templates.CalendarItem, 0, len(day.Items)),
		}
		for ii, it := range day.Items {
			ci := templates.CalendarItem{
				Time:        core.TimeRange(it),
				Title:       it.Title,
				Description: it.Description,
				Location:    it.Location,
				MapURL:      core.MapURL(it.MapLink, it.Location),
				Category:    it.Category,
				Variant:     string(core.ClassifyCategory(it.Category)),
				Badge:       string(core.BadgeVariant(it.Category)),
				Icon:        core.CategoryIcon(it.Category),
				ImageURL:    it.ImageURL,
			}
			// Items on an unreadable date keep their card but get no calendar links.
			if ev, err := core.NewCalendarEvent(day.DateISO, it, loc); err == nil {
				ci.GoogleURL = core.GoogleCalendarURL(ev)
				ci.ICSHref = fmt.Sprintf("/calendar/ics?day=%d&item=%d", di, ii)
			}
			cd.Items = append(cd.Items, ci)
		}
		out = append(out, cd)
	}
	return templates.CalendarData{Days: out}
}

func (s *Server) exploreData(ctx context.Context, sess *session.Session) templates.ExploreData {
	places, err := sess.Places(ctx)
	if err != nil {
		return templates.ExploreData{Notice: loadNotice(core.DatasetExplore, err)}
	}
	if len(places) == 0 {
		return templates.ExploreData{Notice: emptyNotice(core.DatasetExplore)}
	}

	st := sess.Filters()
	tag := s.site.Language()
	visible := core.ApplyFilters(places, st, tag)
	cats, subs := core.Facets(places, tag)

	d := templates.ExploreData{
		Search:        st.SearchText,
		SortAZ:        st.SortAlphabetically,
		Categories:    chips(cats, st.SelectedCategories),
		Subcategories: chips(subs, st.SelectedSubcategories),
		CountLabel:    core.PlaceCountLabel(len(visible)),
		Filtered:      !st.IsEmpty(),
		Places:        make([]templates.PlaceCard, 0, len(visible)),
	}
	for _, p := range visible {
		query := p.Address
		if query == "" {
			query = p.Name
		}
		d.Places = append(d.Places, templates.PlaceCard{
			Name:        p.Name,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Address:     p.Address,
			MapURL:      core.MapURL(p.MapLink, query),
		})
	}
	return d
}

func chips(values []string, selected map[string]bool) []templates.Chip {
	out := make([]templates.Chip, len(values))
	for i, v := range values {
		out[i] = templates.Chip{Value: v, Selected: selected[v]}
	}
	return out
}

func (s *Server) sirenDefaults() map[core.SirenSlot]string {
	return map[core.SirenSlot]string{
		core.SlotHomeFrontCommand: s.site.Siren.HomeFrontCommand,
		core.SlotRedAlert:         s.site.Siren.RedAlert,
		core.SlotShelterMap:       s.site.Siren.ShelterMap,
	}
}

func (s *Server) contactsData(ctx context.Context, sess *session.Session) templates.ContactsData {
	var d templates.ContactsData

	records, err := sess.Contacts(ctx)
	switch {
	case err != nil:
		d.Notice = loadNotice(core.DatasetContacts, err)
	case len(records) == 0:
		d.Notice = emptyNotice(core.DatasetContacts)
	}

	// Siren links still resolve to their defaults when the table is missing.
	book := core.NewContactBook(records, s.sirenDefaults())
	d.Directory = contactCards(book.Directory)
	d.Emergency = contactCards(book.Emergency)
	for _, slot := range core.SirenSlots {
		d.Siren = append(d.Siren, templates.SirenLink{Label: sirenLabels[slot], Href: book.Links[slot]})
	}
	return d
}

func contactCards(records []core.ContactRecord) []templates.ContactCard {
	out := make([]templates.ContactCard, 0, len(records))
	for _, c := range records {
		first, last := core.SplitName(c.Name)
		card := templates.ContactCard{
			FirstName: first,
			LastName:  last,
			Phone:     c.Phone,
			Notes:     c.Notes,
			Link:      c.Link,
		}
		if c.Phone != "" {
			card.TelHref = core.TelLink(c.Phone)
			card.WhatsAppHref = core.WhatsAppLink(c.Phone)
		}
		out = append(out, card)
	}
	return out
}
