package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airsight/airsight/internal/station"
)

func TestCatalog_HasEighteenStations(t *testing.T) {
	catalog := station.Catalog()
	assert.Len(t, catalog, 18)
}

func TestCatalog_IDsAreUniqueAndComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, st := range station.Catalog() {
		assert.NotEmpty(t, st.ID)
		assert.NotEmpty(t, st.Label)
		assert.False(t, seen[st.ID], "duplicate station id %q", st.ID)
		seen[st.ID] = true
	}

	ids := station.IDs()
	assert.Len(t, ids, 18)
	for _, id := range ids {
		assert.True(t, seen[id])
	}
}
