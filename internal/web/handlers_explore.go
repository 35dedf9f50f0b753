package web

import (
	"fmt"
	"net/http"

	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/session"
)

// maxFormBytes bounds the body of a filter action.
const maxFormBytes = 16 << 10

// postValue parses a small form body and returns one field.
func postValue(w http.ResponseWriter, r *http.Request, key string) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("invalid parameter %s: %w", key, err)
	}
	return r.PostFormValue(key), nil
}

// updateExplore applies a filter action to the session and sends the browser
// back to the Explore view, so a reload never repeats the post.
func (s *Server) updateExplore(w http.ResponseWriter, r *http.Request, fn func(*core.FilterState)) {
	sessionFrom(r.Context()).UpdateFilters(fn)
	http.Redirect(w, r, session.ViewExplore.Path(), http.StatusSeeOther)
}

func (s *Server) handleExploreSearch(w http.ResponseWriter, r *http.Request) {
	q, err := postValue(w, r, "q")
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	s.updateExplore(w, r, func(f *core.FilterState) { f.SearchText = q })
}

func (s *Server) handleExploreCategory(w http.ResponseWriter, r *http.Request) {
	v, err := postValue(w, r, "value")
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	s.updateExplore(w, r, func(f *core.FilterState) { f.ToggleCategory(v) })
}

func (s *Server) handleExploreSubcategory(w http.ResponseWriter, r *http.Request) {
	v, err := postValue(w, r, "value")
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	s.updateExplore(w, r, func(f *core.FilterState) { f.ToggleSubcategory(v) })
}

func (s *Server) handleExploreSort(w http.ResponseWriter, r *http.Request) {
	s.updateExplore(w, r, func(f *core.FilterState) { f.SortAlphabetically = !f.SortAlphabetically })
}

func (s *Server) handleExploreClear(w http.ResponseWriter, r *http.Request) {
	s.updateExplore(w, r, func(f *core.FilterState) { f.Clear() })
}
