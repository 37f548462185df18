package main

import (
	"context"
	"fmt"
	stdlog "log"

	"github.com/kataras/golog"
	langlog "github.com/smallnest/langgraphgo/log"

	"github.com/smallnest/geoagents/agent"
)

func main() {
	glogger := golog.New()
	glogger.SetPrefix("[soilagent] ")
	langlog.SetDefaultLogger(langlog.NewGologLogger(glogger))

	model, err := agent.NewModelFromEnv()
	if err != nil {
		stdlog.Fatal(err)
	}

	soilAgent, err := agent.NewSoilScientist(model)
	if err != nil {
		stdlog.Fatal(err)
	}

	query := "Get the soil pH image for the region with west=-1784000, south=1356000, east=-1140000, north=1863000 and tell me about it."
	fmt.Printf("User: %s\n", query)

	answer, err := soilAgent.Ask(context.Background(), query)
	if err != nil {
		stdlog.Fatal(err)
	}
	fmt.Printf("Agent: %s\n", answer)
}
