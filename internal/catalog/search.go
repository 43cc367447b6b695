package catalog

import (
	"strings"

	"github.com/citizenhub/backend/internal/db/models"
)

// MaxSearchResults caps how many suggestions one query returns.
const MaxSearchResults = 8

// searchItems is the predictive-search catalog, in fixed insertion
// order. Results preserve this order; there is no relevance ranking.
var searchItems = []models.SearchItem{
	{Key: "aadhaar", Label: "Apply for Aadhaar", Category: "Identity", URL: "/guide/aadhaar", Keywords: []string{"uidai", "uid", "identity", "proof"}},
	{Key: "pan", Label: "Apply for PAN", Category: "Tax", URL: "/guide/pan", Keywords: []string{"income tax", "form 49a", "epan"}},
	{Key: "dl", Label: "Apply for Driving Licence", Category: "Transport", URL: "/guide/driving-licence", Keywords: []string{"sarathi", "rto", "learner", "dl"}},
	{Key: "voter", Label: "Register Voter ID", Category: "Elections", URL: "/guide/voter", Keywords: []string{"epic", "eci", "form 6"}},
	{Key: "passport", Label: "Apply for Passport", Category: "Travel", URL: "/guide/passport", Keywords: []string{"psk", "tatkaal", "seva"}},
}

// Search returns up to MaxSearchResults items matching query. A query
// matches when it is a substring of the item's label, category and
// keywords joined together, or a prefix of the item's key or of any
// keyword. Matching is case-insensitive; the empty query matches every
// item.
func Search(query string) []models.SearchItem {
	q := strings.ToLower(strings.TrimSpace(query))

	results := make([]models.SearchItem, 0, MaxSearchResults)
	for _, item := range searchItems {
		if matches(item, q) {
			results = append(results, item)
			if len(results) == MaxSearchResults {
				break
			}
		}
	}
	return results
}

func matches(item models.SearchItem, q string) bool {
	hay := strings.ToLower(strings.Join(append([]string{item.Label, item.Category}, item.Keywords...), " "))
	if strings.Contains(hay, q) {
		return true
	}
	if strings.HasPrefix(strings.ToLower(item.Key), q) {
		return true
	}
	for _, kw := range item.Keywords {
		if strings.HasPrefix(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}
