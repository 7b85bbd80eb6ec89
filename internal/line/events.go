package line

// Webhook request shapes, trimmed to what the bot consumes: text message
// events with a reply token and a user source.

type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

type Event struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Source     EventSource  `json:"source"`
	Message    EventMessage `json:"message"`
}

type EventSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// IsTextMessage reports whether the event is a user text message the bot
// should dispatch.
func (e Event) IsTextMessage() bool {
	return e.Type == "message" && e.Message.Type == "text" && e.Source.UserID != ""
}
