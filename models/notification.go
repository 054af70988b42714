package models

type NotificationKind string

const (
	NotificationOffer   NotificationKind = "offer"
	NotificationMessage NotificationKind = "message"
	NotificationBooking NotificationKind = "booking"
	NotificationGeneral NotificationKind = "general"
)

type NotificationItem struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt string           `json:"created_at"`
	Read      bool             `json:"read"`
	Category  EventType        `json:"category"`
}

type QuietHours struct {
	Enabled  bool `json:"enabled"`
	FromHour int  `json:"from_hour"` // 0-23
	ToHour   int  `json:"to_hour"`   // 0-23
}

type NotificationSettings struct {
	Enabled      bool        `json:"enabled"`
	PushEnabled  bool        `json:"push_enabled"`
	EmailEnabled bool        `json:"email_enabled"`
	SoundEnabled bool        `json:"sound_enabled"`
	Categories   []EventType `json:"categories"`
	QuietHours   QuietHours  `json:"quiet_hours"`
}

// DefaultNotificationSettings returns the settings used until the user saves
// their own: all channels except email on, every category subscribed, quiet
// hours off (23:00-08:00 when enabled).
func DefaultNotificationSettings() NotificationSettings {
	categories := make([]EventType, len(EventTypes))
	copy(categories, EventTypes)

	return NotificationSettings{
		Enabled:      true,
		PushEnabled:  true,
		EmailEnabled: false,
		SoundEnabled: true,
		Categories:   categories,
		QuietHours: QuietHours{
			Enabled:  false,
			FromHour: 23,
			ToHour:   8,
		},
	}
}
