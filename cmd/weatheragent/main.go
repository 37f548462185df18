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
	glogger.SetPrefix("[weatheragent] ")
	langlog.SetDefaultLogger(langlog.NewGologLogger(glogger))

	model, err := agent.NewModelFromEnv()
	if err != nil {
		stdlog.Fatal(err)
	}

	weatherAgent, err := agent.NewWeatherAgent(model)
	if err != nil {
		stdlog.Fatal(err)
	}

	query := "What was the weather in Kalamazoo for the 7 days starting from February 14, 2024?"
	fmt.Printf("User: %s\n", query)

	answer, err := weatherAgent.Ask(context.Background(), query)
	if err != nil {
		stdlog.Fatal(err)
	}
	fmt.Printf("Agent: %s\n", answer)
}
