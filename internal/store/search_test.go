package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricofeng/agent-recall/internal/model"
)

func TestSearchExperiences(t *testing.T) {
	s := newTestStore(t)

	disk := model.NewExperience("disk full error", []string{"clean /var/log"})
	disk.Tags = []string{"disk", "linux"}
	require.NoError(t, s.SaveExperience(disk))

	wifi := model.NewExperience("wifi keeps dropping", []string{"replace router"})
	wifi.Tags = []string{"hardware"}
	require.NoError(t, s.SaveExperience(wifi))

	// Case-insensitive tag match.
	results, err := s.SearchExperiences("LINUX")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, disk.ExpID, results[0]["exp_id"])

	// Solution line match.
	results, err = s.SearchExperiences("router")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, wifi.ExpID, results[0]["exp_id"])

	// Problem text match.
	results, err = s.SearchExperiences("error")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// No match at all.
	results, err = s.SearchExperiences("network")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptyStore(t *testing.T) {
	s := newTestStore(t)

	results, err := s.SearchExperiences("anything")
	require.NoError(t, err)
	assert.Empty(t, results)
}
