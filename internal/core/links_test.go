package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTelLink(t *testing.T) {
	assert.Equal(t, "tel:+972501234567", TelLink("+972 50 123 4567"))
	assert.Equal(t, "tel:", TelLink(""))
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/972501234567", WhatsAppLink("+972 (50) 123-4567"))
	assert.Equal(t, "", WhatsAppLink("n/a"))
}

func TestMapURL(t *testing.T) {
	assert.Equal(t, "https://maps.app/x", MapURL("https://maps.app/x", "ignored"))
	assert.Equal(t, "https://maps.google.com/?q=Jaffa+Port", MapURL("", "Jaffa Port"))
	assert.Equal(t, "", MapURL("", "  "))
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Dana  Bar Lev")
	assert.Equal(t, "Dana", first)
	assert.Equal(t, "Bar Lev", last)

	first, last = SplitName("")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
