package scraper

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/gocolly/colly/v2"

	"github.com/suphakit/gpu-advisor/internal/catalog"
)

const (
	listingPath = "/category/graphic-card"
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// the storefront uses generated class names; these break when the site
	// redeploys its frontend and need re-checking
	listingCardSelector = "a.sc-499601bf-0.sc-a93f122a-0"
	nameSelector        = "h3.sc-96a18268-0"
	priceSelector       = "span.sc-96a18268-0.cDBdbZ"
	imageSelector       = "div.sc-499601bf-0.edAFiM img"
	specTableSelector   = "div.sc-86152792-0"
)

// specPairRe captures "Key: Value" runs inside the flattened spec table text.
var specPairRe = regexp.MustCompile(`([A-Za-z®™ ]+):? ([\w®™\s.,:-]+)`)

type Scraper struct {
	BaseURL string
}

func New(baseURL string) *Scraper {
	if baseURL == "" {
		baseURL = "https://ihavecpu.com"
	}
	return &Scraper{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Scrape walks the graphics-card listing page by page, visits each product's
// detail page for its image and spec table, and returns the collected
// records. Missing fields come back as "N/A", matching what the rest of the
// system expects from the catalog.
func (s *Scraper) Scrape() ([]catalog.Product, error) {
	host := strings.TrimPrefix(strings.TrimPrefix(s.BaseURL, "https://"), "http://")

	listC := colly.NewCollector(
		colly.AllowedDomains(host),
		colly.UserAgent(userAgent),
	)
	detailC := listC.Clone()

	var products []catalog.Product
	pageHadProducts := false

	listC.OnHTML(listingCardSelector, func(e *colly.HTMLElement) {
		pageHadProducts = true

		name := strings.TrimSpace(e.ChildText(nameSelector))
		if name == "" {
			name = "N/A"
		}
		price := strings.TrimSpace(e.ChildText(priceSelector))
		if price == "" {
			price = "N/A"
		}

		href := e.Attr("href")
		if href == "" {
			return
		}
		url := e.Request.AbsoluteURL(href)

		p := catalog.Product{
			Name:     name,
			Price:    price,
			Image:    "N/A",
			URL:      url,
			SpecText: "N/A",
		}

		ctx := colly.NewContext()
		ctx.Put("product", &p)
		if err := detailC.Request("GET", url, nil, ctx, nil); err != nil {
			log.Printf("scraper: detail request failed url=%s err=%v", url, err)
		}
		detailC.Wait()

		products = append(products, p)
	})

	detailC.OnHTML(imageSelector, func(e *colly.HTMLElement) {
		p := e.Request.Ctx.GetAny("product").(*catalog.Product)
		if src := e.Attr("src"); src != "" {
			p.Image = src
		}
	})

	detailC.OnHTML(specTableSelector, func(e *colly.HTMLElement) {
		p := e.Request.Ctx.GetAny("product").(*catalog.Product)
		if raw := strings.TrimSpace(e.Text); raw != "" {
			p.SpecText = FormatSpecText(raw)
		}
	})

	detailC.OnError(func(r *colly.Response, err error) {
		log.Printf("scraper: detail fetch failed url=%s err=%v", r.Request.URL, err)
	})

	// walk pages until one comes back empty
	for page := 1; ; page++ {
		pageHadProducts = false
		url := fmt.Sprintf("%s%s?page=%d", s.BaseURL, listingPath, page)
		if err := listC.Visit(url); err != nil {
			if page == 1 {
				return nil, err
			}
			break
		}
		listC.Wait()
		if !pageHadProducts {
			break
		}
		log.Printf("scraper: page %d done, %d products so far", page, len(products))
	}

	return products, nil
}

// FormatSpecText normalizes a flattened spec table into "Key: Value" lines.
// Text with no recognizable pairs is returned as-is.
func FormatSpecText(raw string) string {
	matches := specPairRe.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return raw
	}

	var b strings.Builder
	for _, m := range matches {
		b.WriteString(strings.TrimSpace(m[1]))
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(m[2]))
		b.WriteString("\n")
	}
	return b.String()
}
