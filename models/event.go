package models

type EventType string

const (
	EventWedding    EventType = "wedding"
	EventEngagement EventType = "engagement"
	EventBirthday   EventType = "birthday"
	EventGraduation EventType = "graduation"
	EventBaby       EventType = "baby"
	EventCorporate  EventType = "corporate"
	EventOther      EventType = "other"
)

// EventTypes lists every occasion type in display order.
var EventTypes = []EventType{
	EventWedding,
	EventEngagement,
	EventBirthday,
	EventGraduation,
	EventBaby,
	EventCorporate,
	EventOther,
}

type RSVPStatus string

const (
	RSVPYes   RSVPStatus = "yes"
	RSVPNo    RSVPStatus = "no"
	RSVPMaybe RSVPStatus = "maybe"
)

// RSVP is a single guest response. Entries are append-only: once added to an
// event they are never edited or removed.
type RSVP struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	Name      string     `json:"name"`
	Status    RSVPStatus `json:"status"`
	Count     int        `json:"count"` // party size, ignored for "no"
	Notes     string     `json:"notes,omitempty"`
	Timestamp string     `json:"timestamp,omitempty"`
}

type EventModel struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Title         string    `json:"title"`
	HostName      string    `json:"host_name"`
	Type          EventType `json:"type"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Region        Region    `json:"region"`
	City          string    `json:"city"`
	AddressText   string    `json:"address_text"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	WazeURL       string    `json:"waze_url"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"cover_image_url"`
	TemplateType  string    `json:"template_type"`
	IsPublic      bool      `json:"is_public"`
	Attendees     []RSVP    `json:"attendees"`
}

// RSVPSummary holds the attendance counts derived from an event's attendee
// list. Yes/Maybe sum the party sizes; No counts entries (a decline is one
// person regardless of its count field). Percentages are rounded per bucket
// against the number of responses, so they need not sum to 100.
type RSVPSummary struct {
	YesCount     int `json:"yes_count"`
	NoCount      int `json:"no_count"`
	MaybeCount   int `json:"maybe_count"`
	Total        int `json:"total_responses"`
	YesPercent   int `json:"yes_percent"`
	NoPercent    int `json:"no_percent"`
	MaybePercent int `json:"maybe_percent"`
}
