package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Product is one scraped catalog entry. Name is the natural key: the scraper
// upserts by name and replaces every other field. Price stays in display form
// (e.g. "12,500 บาท"); SpecText is the raw "Key: Value" block from the
// product page.
type Product struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Price     string    `gorm:"type:varchar(64);not null" json:"price"`
	Image     string    `gorm:"type:varchar(1024)" json:"image"`
	URL       string    `gorm:"type:varchar(1024)" json:"url"`
	SpecText  string    `gorm:"column:additional_data;type:text" json:"additional_data"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Product) TableName() string { return "products" }

var (
	nonNumericRe = regexp.MustCompile(`[^\d.]`)
	memorySizeRe = regexp.MustCompile(`(?i)Memory Size\s*(\d+)\s*GB`)
)

// NumericPrice strips everything but digits and periods from a display price
// and parses the rest. Malformed prices report ok=false and value 0; the
// matching engine still uses that 0 in its price comparisons.
func NumericPrice(display string) (float64, bool) {
	cleaned := nonNumericRe.ReplaceAllString(display, "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MemorySizeGB extracts the first "Memory Size <N>GB" match from a spec text
// block. Products without the pattern are excluded from filtered search.
func MemorySizeGB(specText string) (int, bool) {
	m := memorySizeRe.FindStringSubmatch(specText)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil {
		return 0, false
	}
	return n, true
}
