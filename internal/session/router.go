package session

import "strings"

// View is one of the four top-level pages.
type View string

const (
	ViewHome     View = "home"
	ViewCalendar View = "calendar"
	ViewExplore  View = "explore"
	ViewContacts View = "contacts"
)

// Views lists the views in tab order.
var Views = []View{ViewHome, ViewCalendar, ViewExplore, ViewContacts}

var viewLabels = map[View]string{
	ViewHome:     "Home",
	ViewCalendar: "Calendar",
	ViewExplore:  "Explore",
	ViewContacts: "Contacts",
}

// ViewFromPath resolves a URL path by its last segment, ignoring trailing
// slashes. Matching is exact; anything else is the home view.
func ViewFromPath(p string) View {
	p = strings.TrimRight(p, "/")
	seg := p[strings.LastIndex(p, "/")+1:]
	for _, v := range Views {
		if seg == string(v) {
			return v
		}
	}
	return ViewHome
}

// Path is the canonical URL path of the view.
func (v View) Path() string {
	return "/" + string(v)
}

// Label is the tab caption.
func (v View) Label() string {
	if l, ok := viewLabels[v]; ok {
		return l
	}
	return viewLabels[ViewHome]
}

// Transition describes one navigation.
type Transition struct {
	From       View
	To         View
	FirstEntry bool
}

// Router tracks the active view and which views have been entered.
// It is not safe for concurrent use; Session guards it.
type Router struct {
	current View
	entered map[View]bool
}

// NewRouter returns a router that has not entered any view yet.
func NewRouter() *Router {
	return &Router{entered: make(map[View]bool, len(Views))}
}

// Navigate makes v the active view.
func (r *Router) Navigate(v View) Transition {
	if _, ok := viewLabels[v]; !ok {
		v = ViewHome
	}
	t := Transition{From: r.current, To: v, FirstEntry: !r.entered[v]}
	r.current = v
	r.entered[v] = true
	return t
}
