package export

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/noticeboard-dev/noticeboard/internal/domain"
)

// Calendar serializes events into an iCalendar document with one all-day
// VEVENT per record, plus one per application deadline. UIDs are
// deterministic so a re-export updates in place when imported again.
func Calendar(events []domain.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//noticeboard//feed export//EN")

	now := time.Now().UTC()
	for i := range events {
		addEvent(cal, &events[i], now)
	}
	return cal.Serialize()
}

func addEvent(cal *ics.Calendar, e *domain.Event, stamp time.Time) {
	uid := eventUID(e)

	ev := cal.AddEvent(uid)
	ev.SetDtStampTime(stamp)
	ev.SetAllDayStartAt(e.Date)
	ev.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
	ev.SetSummary(e.Title)
	ev.SetDescription(e.Description)
	ev.SetProperty(ics.ComponentPropertyCategories, string(e.Category))
	if e.Location != nil {
		ev.SetLocation(*e.Location)
	}

	if e.ApplyDeadline != nil {
		d := cal.AddEvent(uid + "-deadline")
		d.SetDtStampTime(stamp)
		d.SetAllDayStartAt(*e.ApplyDeadline)
		d.SetAllDayEndAt(e.ApplyDeadline.AddDate(0, 0, 1))
		d.SetSummary("Apply by: " + e.Title)
	}
}

// eventUID derives a stable UID from the fields that identify a record.
// Store documents carry no native ID, so title plus date stands in.
func eventUID(e *domain.Event) string {
	seed := e.Title + "|" + e.Date.Format("2006-01-02")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String() + "@noticeboard"
}
