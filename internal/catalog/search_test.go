package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultKeys(query string) []string {
	items := Search(query)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Key)
	}
	return out
}

func TestSearchKeyPrefix(t *testing.T) {
	assert.Equal(t, []string{"aadhaar"}, resultKeys("aad"))
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	// The empty string is a prefix of every key, so the whole catalog
	// comes back in insertion order.
	assert.Equal(t, []string{"aadhaar", "pan", "dl", "voter", "passport"}, resultKeys(""))
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search("zzz-nomatch"))
}

func TestSearchSubstring(t *testing.T) {
	// "income tax" is a pan keyword; a substring anywhere in the
	// joined label/category/keywords text matches.
	assert.Contains(t, resultKeys("income"), "pan")
	assert.Contains(t, resultKeys("tax"), "pan")
}

func TestSearchKeywordPrefix(t *testing.T) {
	assert.Contains(t, resultKeys("uid"), "aadhaar")
	assert.Contains(t, resultKeys("sarathi"), "dl")
}

func TestSearchNormalization(t *testing.T) {
	assert.Equal(t, resultKeys("aad"), resultKeys("  AAD  "))
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	// "apply" appears in the labels of aadhaar, pan, dl and passport.
	got := resultKeys("apply")
	require.Equal(t, []string{"aadhaar", "pan", "dl", "passport"}, got)
}

func TestSearchCap(t *testing.T) {
	assert.LessOrEqual(t, len(Search("")), MaxSearchResults)
}
