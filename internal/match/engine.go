package match

import (
	"math"
	"sort"
	"strings"

	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/session"
)

// DefaultCeilings are the fixed price brackets for the no-filter
// recommendation flow, in ascending บาท.
var DefaultCeilings = []int{5000, 10000, 15000, 20000, 35000, 50000, 100000}

// Vendor markers: a brand substring in the product name stands in for a
// structured vendor field.
const (
	markerNVIDIA = "GEFORCE"
	markerAMD    = "RADEON"
)

// ClosestUnder picks, for each ceiling, the single product with numeric
// price <= ceiling that minimizes ceiling-price. Ceilings with no eligible
// product are skipped; the same product may represent several ceilings.
// Products whose price does not parse are ineligible here.
func ClosestUnder(products []catalog.Product, ceilings []int) []catalog.Product {
	out := make([]catalog.Product, 0, len(ceilings))
	for _, ceiling := range ceilings {
		best := -1
		bestDiff := math.Inf(1)
		for i, p := range products {
			price, ok := catalog.NumericPrice(p.Price)
			if !ok || price > float64(ceiling) {
				continue
			}
			diff := float64(ceiling) - price
			if diff < bestDiff {
				best = i
				bestDiff = diff
			}
		}
		if best >= 0 {
			out = append(out, products[best])
		}
	}
	return out
}

// Constraints are the three user-supplied filters of the guided flow.
type Constraints struct {
	MaxPrice    int
	MinMemoryGB int
	Vendor      string // session.VendorNVIDIA or session.VendorAMD
}

// Filter returns every product satisfying the constraints, ranked by
// absolute distance from the target price, closest first. Inclusion already
// requires price <= MaxPrice, so distance is always from below; the abs is
// kept to match the original ranking rule. Products lacking a Memory Size
// pattern in their spec text are excluded outright. A malformed price parses
// to 0 and trivially passes the price ceiling.
func Filter(products []catalog.Product, c Constraints) []catalog.Product {
	type ranked struct {
		product catalog.Product
		diff    float64
	}

	matches := make([]ranked, 0)
	for _, p := range products {
		price, _ := catalog.NumericPrice(p.Price)
		if price > float64(c.MaxPrice) {
			continue
		}

		mem, ok := catalog.MemorySizeGB(p.SpecText)
		if !ok || mem < c.MinMemoryGB {
			continue
		}

		if !vendorMatches(c.Vendor, p.Name) {
			continue
		}

		matches = append(matches, ranked{
			product: p,
			diff:    math.Abs(price - float64(c.MaxPrice)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].diff < matches[j].diff
	})

	out := make([]catalog.Product, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.product)
	}
	return out
}

func vendorMatches(vendor, name string) bool {
	upper := strings.ToUpper(name)
	switch vendor {
	case session.VendorNVIDIA:
		return strings.Contains(upper, markerNVIDIA)
	case session.VendorAMD:
		return strings.Contains(upper, markerAMD)
	default:
		return false
	}
}
