package bot

import (
	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/line"
)

// maxCards caps the carousel regardless of how many products matched.
const maxCards = 6

func mainMenu() *line.QuickReply {
	return line.NewQuickReply(labelRecommend, labelNVIDIA, labelAMD)
}

func priceMenu() *line.QuickReply {
	return line.NewQuickReply(priceLabels...)
}

func memoryMenu() *line.QuickReply {
	return line.NewQuickReply(memoryLabels...)
}

// productCarousel builds the card sequence for a non-empty product list,
// truncated to maxCards in input order. Callers must never pass an empty
// list; empty results render as plain text + menu instead.
func productCarousel(products []catalog.Product) line.FlexMessage {
	if len(products) > maxCards {
		products = products[:maxCards]
	}

	bubbles := make([]line.Bubble, 0, len(products))
	for _, p := range products {
		bubbles = append(bubbles, productBubble(p))
	}
	return line.NewCarousel("Product List", bubbles)
}

func productBubble(p catalog.Product) line.Bubble {
	b := line.Bubble{
		Type: "bubble",
		Body: &line.FlexBox{
			Type:   "box",
			Layout: "vertical",
			Contents: []any{
				line.FlexText{Type: "text", Text: p.Name, Weight: "bold", Size: "md", Wrap: true},
				line.FlexText{Type: "text", Text: "Price: " + p.Price, Size: "sm", Color: "#999999"},
			},
		},
		Footer: &line.FlexBox{
			Type:    "box",
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []any{
				line.FlexButton{
					Type:   "button",
					Style:  "primary",
					Height: "sm",
					Color:  "#992c34",
					Action: line.URIAction{Type: "uri", Label: "More Details", URI: p.URL},
				},
			},
			Flex: intPtr(0),
		},
	}

	// scraped records may carry "N/A" for a missing image; LINE rejects
	// bubbles with a non-URL hero, so leave it out
	if p.Image != "" && p.Image != "N/A" {
		b.Hero = &line.HeroImage{
			Type:        "image",
			URL:         p.Image,
			Size:        "full",
			AspectRatio: "20:13",
			AspectMode:  "cover",
		}
	}
	return b
}

// resultMessages renders a ranked product list as a turn's outbound bundle:
// carousel + follow-up menu, or the given empty-text + menu when nothing
// matched. A zero-card carousel is never produced.
func resultMessages(products []catalog.Product, emptyText string) []line.Message {
	if len(products) == 0 {
		return []line.Message{line.NewTextWithQuickReply(emptyText, mainMenu())}
	}
	return []line.Message{
		productCarousel(products),
		line.NewTextWithQuickReply(textFollowUp, mainMenu()),
	}
}

func intPtr(n int) *int { return &n }
