package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsConstruct(t *testing.T) {
	mockLLM := &MockLLM{}

	geo, err := NewGeographyTeacher(mockLLM)
	require.NoError(t, err)
	assert.NotNil(t, geo)

	soil, err := NewSoilScientist(mockLLM)
	require.NoError(t, err)
	assert.NotNil(t, soil)

	weather, err := NewWeatherAgent(mockLLM)
	require.NoError(t, err)
	assert.NotNil(t, weather)

	wiki, err := NewWikipediaAnimalQA(mockLLM)
	require.NoError(t, err)
	assert.NotNil(t, wiki)
}

func TestGeographyTeacherWithMapKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "test-key")

	geo, err := NewGeographyTeacher(&MockLLM{})
	require.NoError(t, err)
	assert.NotNil(t, geo)
}
