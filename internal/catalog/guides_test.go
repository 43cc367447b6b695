package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGuideKnownKeys(t *testing.T) {
	for _, key := range []string{"aadhaar", "pan", "dl", "voter", "passport"} {
		guide, err := GetGuide(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, guide.Title, key)
		assert.NotEmpty(t, guide.Official, key)
		assert.NotEmpty(t, guide.Steps, key)
	}
}

func TestGetGuidePAN(t *testing.T) {
	guide, err := GetGuide("pan")
	require.NoError(t, err)

	assert.Equal(t, "Get your PAN", guide.Title)
	assert.Equal(t, "https://www.incometax.gov.in/", guide.Official)
	assert.Len(t, guide.Steps, 6)
}

func TestGetGuideUnknownKey(t *testing.T) {
	_, err := GetGuide("ration-card")
	assert.ErrorIs(t, err, ErrGuideNotFound)

	_, err = GetGuide("")
	assert.ErrorIs(t, err, ErrGuideNotFound)
}
