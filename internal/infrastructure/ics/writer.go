package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchcal/internal/domain/fixture"
	idgen "github.com/riskibarqy/matchcal/internal/platform/id"
	"github.com/valyala/bytebufferpool"
)

const productID = "-//matchcal//fixture calendar//EN"

// Writer turns filtered fixtures into iCalendar payloads.
type Writer struct {
	ids idgen.Generator
}

func NewWriter(ids idgen.Generator) *Writer {
	if ids == nil {
		ids = idgen.NewRandomGenerator()
	}
	return &Writer{ids: ids}
}

// Build assembles a calendar with one VEVENT per fixture: summary
// "home vs away", start at the kickoff time, description set to the
// competition label when present.
func (w *Writer) Build(fixtures []fixture.Fixture) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	now := time.Now().UTC()
	for _, f := range fixtures {
		uid, err := w.ids.NewID()
		if err != nil {
			return nil, crerr.Wrap(err, "generate event uid")
		}

		event := cal.AddEvent(uid + "@matchcal")
		event.SetDtStampTime(now)
		event.SetStartAt(f.KickoffAt)
		event.SetSummary(f.Title())
		if f.Competition != "" {
			event.SetDescription(f.Competition)
		}
	}

	return cal, nil
}

// Serialize renders a calendar built from the fixtures. Buffers are pooled;
// the returned slice is a copy and safe to retain.
func (w *Writer) Serialize(fixtures []fixture.Fixture) ([]byte, error) {
	cal, err := w.Build(fixtures)
	if err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := cal.SerializeTo(buf); err != nil {
		return nil, crerr.Wrap(err, "serialize calendar")
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)

	return out, nil
}
