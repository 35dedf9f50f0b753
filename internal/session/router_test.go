package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewFromPath(t *testing.T) {
	tests := []struct {
		path string
		want View
	}{
		{"/", ViewHome},
		{"", ViewHome},
		{"/home", ViewHome},
		{"/calendar", ViewCalendar},
		{"/calendar/", ViewCalendar},
		{"/explore", ViewExplore},
		{"/contacts", ViewContacts},
		{"/site/contacts//", ViewContacts},
		{"/Calendar", ViewHome},
		{"/unknown", ViewHome},
		{"/calendar/extra", ViewHome},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ViewFromPath(tt.path))
		})
	}
}

func TestView_PathAndLabel(t *testing.T) {
	assert.Equal(t, "/explore", ViewExplore.Path())
	assert.Equal(t, "Contacts", ViewContacts.Label())
	assert.Equal(t, "Home", View("nope").Label())
}

func TestRouter_Navigate(t *testing.T) {
	r := NewRouter()

	tr := r.Navigate(ViewCalendar)
	assert.Equal(t, Transition{From: "", To: ViewCalendar, FirstEntry: true}, tr)

	tr = r.Navigate(ViewContacts)
	assert.Equal(t, Transition{From: ViewCalendar, To: ViewContacts, FirstEntry: true}, tr)

	tr = r.Navigate(ViewCalendar)
	assert.False(t, tr.FirstEntry)
	assert.False(t, r.Navigate(ViewContacts).FirstEntry)
	assert.True(t, r.Navigate(ViewExplore).FirstEntry)
	assert.Equal(t, ViewExplore, r.current)

	tr = r.Navigate(View("bogus"))
	assert.Equal(t, ViewHome, tr.To)
}
