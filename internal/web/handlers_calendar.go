package web

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/logging"
)

func intParam(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %s: %w", key, err)
	}
	return v, nil
}

// handleCalendarFile serves one activity as an .ics download. The activity
// is addressed by its day and item position in the grouped itinerary.
func (s *Server) handleCalendarFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dayIdx, err := intParam(r, "day")
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	itemIdx, err := intParam(r, "item")
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	days, err := sessionFrom(ctx).Itinerary(ctx)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}
	if dayIdx < 0 || dayIdx >= len(days) || itemIdx < 0 || itemIdx >= len(days[dayIdx].Items) {
		s.respondError(w, r, fmt.Errorf("activity %d on day %d not found", itemIdx, dayIdx), http.StatusNotFound)
		return
	}

	day := days[dayIdx]
	item := day.Items[itemIdx]
	ev, err := core.NewCalendarEvent(day.DateISO, item, s.site.Location())
	if err != nil {
		s.respondError(w, r, fmt.Errorf("invalid parameter: %w", err), http.StatusUnprocessableEntity)
		return
	}

	filename := core.ICSFilename(item.Title)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	if _, err := io.WriteString(w, core.ICSPayload(ev, s.site.ProductID)); err != nil {
		logging.FromContext(ctx).Error("calendar file write failed", "error", err)
		return
	}
	logging.FromContext(ctx).Info("calendar file served", "file", filename, "date", day.DateISO)
}
