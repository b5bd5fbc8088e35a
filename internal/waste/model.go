package waste

import (
	"encoding/json"
	"time"
)

// Event is one recorded disposal. Events are immutable and append-only;
// nothing in the system updates or deletes them.
type Event struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	AmountGrams int       `json:"amount_g"`
}

// MarshalJSON renders the date as a plain YYYY-MM-DD, the same format
// recording requests use.
func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(e), e.Date.Format("2006-01-02")})
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", aux.Date)
	if err != nil {
		return err
	}
	e.Date = d
	return nil
}
