package line

// Outbound message payloads. Three kinds cover the whole bot: plain text,
// text with quick-reply buttons, and a flex carousel of product cards.

type Message interface {
	isMessage()
}

type TextMessage struct {
	Type       string      `json:"type"`
	Text       string      `json:"text"`
	QuickReply *QuickReply `json:"quickReply,omitempty"`
}

func (TextMessage) isMessage() {}

func NewText(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

func NewTextWithQuickReply(text string, qr *QuickReply) TextMessage {
	return TextMessage{Type: "text", Text: text, QuickReply: qr}
}

type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

type QuickReplyItem struct {
	Type   string        `json:"type"`
	Action MessageAction `json:"action"`
}

type MessageAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// NewQuickReply builds a quick-reply menu where each button sends its label
// back verbatim, the way every menu in this bot behaves.
func NewQuickReply(labels ...string) *QuickReply {
	items := make([]QuickReplyItem, 0, len(labels))
	for _, l := range labels {
		items = append(items, QuickReplyItem{
			Type:   "action",
			Action: MessageAction{Type: "message", Label: l, Text: l},
		})
	}
	return &QuickReply{Items: items}
}

type FlexMessage struct {
	Type     string   `json:"type"`
	AltText  string   `json:"altText"`
	Contents Carousel `json:"contents"`
}

func (FlexMessage) isMessage() {}

func NewCarousel(altText string, bubbles []Bubble) FlexMessage {
	return FlexMessage{
		Type:     "flex",
		AltText:  altText,
		Contents: Carousel{Type: "carousel", Contents: bubbles},
	}
}

type Carousel struct {
	Type     string   `json:"type"`
	Contents []Bubble `json:"contents"`
}

type Bubble struct {
	Type   string     `json:"type"`
	Hero   *HeroImage `json:"hero,omitempty"`
	Body   *FlexBox   `json:"body,omitempty"`
	Footer *FlexBox   `json:"footer,omitempty"`
}

type HeroImage struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Size        string `json:"size"`
	AspectRatio string `json:"aspectRatio"`
	AspectMode  string `json:"aspectMode"`
}

type FlexBox struct {
	Type     string `json:"type"`
	Layout   string `json:"layout"`
	Spacing  string `json:"spacing,omitempty"`
	Contents []any  `json:"contents"`
	Flex     *int   `json:"flex,omitempty"`
}

type FlexText struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

type FlexButton struct {
	Type   string    `json:"type"`
	Style  string    `json:"style,omitempty"`
	Height string    `json:"height,omitempty"`
	Color  string    `json:"color,omitempty"`
	Action URIAction `json:"action"`
}

type URIAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}
