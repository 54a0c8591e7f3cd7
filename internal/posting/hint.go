// Package posting pulls a job-category hint out of an external job
// posting so the category browser can open on relevant facets. The
// hint is advisory: anything unrecognized falls through to the facet
// browser's default.
package posting

import "strings"

// Canonical job-category labels, matching the facet browser's table.
const (
	IndustryConstruction   = "Construction"
	IndustryTransportation = "Transportation"
	IndustryLogistics      = "Logistics"
	IndustryRetail         = "Retail"
	IndustryHospitality    = "Hospitality"
	IndustryHealthcare     = "Healthcare"
	IndustryService        = "Service Industry"
	IndustryMaintenance    = "Maintenance"
	IndustryAgriculture    = "Agriculture"
	IndustryManufacturing  = "Manufacturing"
)

// Ordered so the most specific cues are tried first; the first label
// with a matching cue wins, keeping extraction deterministic.
var industryCues = []struct {
	label string
	cues  []string
}{
	{IndustryConstruction, []string{"construction", "building site", "groundworker", "bricklayer", "labourer", "cscs"}},
	{IndustryLogistics, []string{"logistics", "warehouse", "supply chain", "distribution centre", "order picker", "forklift"}},
	{IndustryTransportation, []string{"hgv", "lgv", "driver", "haulage", "courier", "delivery"}},
	{IndustryHealthcare, []string{"healthcare", "care home", "care assistant", "support worker", "nursing"}},
	{IndustryHospitality, []string{"hospitality", "chef", "kitchen", "restaurant", "hotel", "bar staff", "catering"}},
	{IndustryRetail, []string{"retail", "shop floor", "store assistant", "cashier", "checkout"}},
	{IndustryManufacturing, []string{"manufacturing", "production line", "factory", "assembly operative", "machine operator"}},
	{IndustryMaintenance, []string{"maintenance", "handyman", "facilities", "repair technician"}},
	{IndustryAgriculture, []string{"agriculture", "farm", "harvest", "horticulture", "picker packer fruit"}},
	{IndustryService, []string{"cleaning", "cleaner", "janitorial", "security officer", "customer service"}},
}

// ExtractIndustry scans posting text for industry cues and returns the
// canonical label, or "" when nothing matches.
func ExtractIndustry(text string) string {
	t := strings.ToLower(text)
	if strings.TrimSpace(t) == "" {
		return ""
	}
	for _, entry := range industryCues {
		for _, cue := range entry.cues {
			if strings.Contains(t, cue) {
				return entry.label
			}
		}
	}
	return ""
}
