package web

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/go-chi/chi/v5"
)

type itineraryResponse struct {
	Days  []core.DayGroup `json:"days"`
	Items int             `json:"items"`
}

type exploreResponse struct {
	Places        []core.Place     `json:"places"`
	Count         int              `json:"count"`
	Label         string           `json:"label"`
	Categories    []string         `json:"categories"`
	Subcategories []string         `json:"subcategories"`
	Filters       core.FilterState `json:"filters"`
}

type healthResponse struct {
	Status   string      `json:"status"`
	Sessions int         `json:"sessions"`
	Datasets int         `json:"datasets"`
	Fetches  *fetchSlots `json:"fetches,omitempty"`
}

type fetchSlots struct {
	Active   int `json:"active"`
	Capacity int `json:"capacity"`
}

func (s *Server) handleAPIItinerary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	days, err := sessionFrom(ctx).Itinerary(ctx)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, r, itineraryResponse{Days: days, Items: core.ItemCount(days)})
}

// filtersFromQuery builds a filter selection from query parameters:
// q, repeated category and subcategory, and sort=az.
func filtersFromQuery(q url.Values) core.FilterState {
	st := core.NewFilterState()
	st.SearchText = q.Get("q")
	st.SortAlphabetically = strings.EqualFold(q.Get("sort"), "az")
	for _, v := range q["category"] {
		if v = strings.TrimSpace(v); v != "" {
			st.SelectedCategories[v] = true
		}
	}
	for _, v := range q["subcategory"] {
		if v = strings.TrimSpace(v); v != "" {
			st.SelectedSubcategories[v] = true
		}
	}
	return st
}

// handleAPIExplore filters places by the query alone; it neither reads nor
// changes the session's filter selection.
func (s *Server) handleAPIExplore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	places, err := sessionFrom(ctx).Places(ctx)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}

	st := filtersFromQuery(r.URL.Query())
	tag := s.site.Language()
	visible := core.ApplyFilters(places, st, tag)
	cats, subs := core.Facets(places, tag)

	writeJSON(w, r, exploreResponse{
		Places:        visible,
		Count:         len(visible),
		Label:         core.PlaceCountLabel(len(visible)),
		Categories:    cats,
		Subcategories: subs,
		Filters:       st,
	})
}

func (s *Server) handleAPIContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := sessionFrom(ctx).Contacts(ctx)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, r, core.NewContactBook(records, s.sirenDefaults()))
}

// handleDownloadTemplate serves a header-only CSV for a dataset, for whoever
// maintains the spreadsheets.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "dataset")
	def, ok := core.Get(key)
	if !ok {
		s.respondError(w, r, fmt.Errorf("dataset %q not found", key), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": def.Info.File}))
	_, _ = io.WriteString(w, core.TemplateCSV(def))
}

func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	s.respondError(w, r, fmt.Errorf("route %s not found", r.URL.Path), http.StatusNotFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Sessions: s.store.Len(),
		Datasets: core.DatasetCount(),
	}
	if s.fetches != nil {
		active, capacity := s.fetches.Slots()
		resp.Fetches = &fetchSlots{Active: active, Capacity: capacity}
	}
	writeJSON(w, r, resp)
}
