package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDemoCatalog_IsConsistent(t *testing.T) {
	catalog := DemoCatalog()
	require.NotEmpty(t, catalog.Colleges)

	ids := map[string]bool{}
	for _, c := range catalog.Colleges {
		assert.True(t, primitive.IsValidObjectID(c.ID), c.ID)
		ids[c.ID] = true
	}
	for _, c := range catalog.Courses {
		assert.True(t, primitive.IsValidObjectID(c.ID), c.ID)
		assert.True(t, ids[c.CollegeID], "course %s references unknown college", c.ID)
		assert.NotEmpty(t, c.HTML)
	}
	for _, s := range catalog.Scholarships {
		assert.True(t, ids[s.CollegeID], "scholarship %s references unknown college", s.ID)
	}
}

func TestDemoCatalog_FilterOptions(t *testing.T) {
	opts := DemoCatalog().FilterOptions

	assert.Equal(t, []string{"Canada", "India", "USA"}, opts.Countries)
	assert.Equal(t, []string{"B.Sc", "B.Tech", "M.Tech", "MBA"}, opts.Programs)
	assert.Equal(t, []string{"Full Time", "Part Time"}, opts.Types)
}

func TestSeedID(t *testing.T) {
	assert.Equal(t, "000000000000000000000001", seedID(1))
	assert.Len(t, seedID(300), 24)
}
