package section

import (
	"bytes"
	"encoding/json"
)

// Event is one dated line of the holiday panel.
type Event struct {
	Date string
	Text string
}

// Events is a date → event mapping that keeps page order. It marshals as a
// JSON object.
type Events []Event

// Set records text under date. An existing date keeps its position and
// takes the new text.
func (e Events) Set(date, text string) Events {
	for i := range e {
		if e[i].Date == date {
			e[i].Text = text
			return e
		}
	}
	return append(e, Event{Date: date, Text: text})
}

// MarshalJSON writes the events as an object in page order.
func (e Events) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ev := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(ev.Date)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(ev.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
