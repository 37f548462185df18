package agent

import (
	"os"

	"github.com/smallnest/langgraphgo/prebuilt"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/smallnest/geoagents/tool"
)

// NewGeographyTeacher creates the geography-teacher agent with elevation,
// geocoding and, when GOOGLE_MAPS_API_KEY is set, the static map tool.
func NewGeographyTeacher(model llms.Model) (*Agent, error) {
	inputTools := []tools.Tool{
		tool.NewElevation(),
		tool.NewGeocode(),
	}
	if os.Getenv("GOOGLE_MAPS_API_KEY") != "" {
		mapTool, err := tool.NewStaticMap("")
		if err != nil {
			return nil, err
		}
		inputTools = append(inputTools, mapTool)
	}
	return New(model, GeographyTeacherPrompt, inputTools)
}

// NewSoilScientist creates the soil-science agent with the SoilGrids tool.
func NewSoilScientist(model llms.Model) (*Agent, error) {
	return New(model, SoilScientistPrompt, []tools.Tool{tool.NewSoilGrids()})
}

// NewWeatherAgent creates the historical-weather agent. The geocoder is
// registered both as a tool and as the weather tool's place resolver.
func NewWeatherAgent(model llms.Model) (*Agent, error) {
	geocoder := tool.NewGeocode()
	return New(model, GeographyTeacherPrompt, []tools.Tool{
		geocoder,
		tool.NewWeather(tool.WithWeatherGeocoder(geocoder)),
	})
}

// NewWikipediaAnimalQA creates the Wikipedia animal QA agent. It returns a
// chat agent so callers can stream the answer chunk by chunk.
func NewWikipediaAnimalQA(model llms.Model) (*prebuilt.ChatAgent, error) {
	return prebuilt.NewChatAgent(model,
		[]tools.Tool{tool.NewWikipedia()},
		prebuilt.WithSystemMessage(WikipediaAnimalPrompt),
	)
}
