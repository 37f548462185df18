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
	glogger.SetPrefix("[geoagent] ")
	langlog.SetDefaultLogger(langlog.NewGologLogger(glogger))

	model, err := agent.NewModelFromEnv()
	if err != nil {
		stdlog.Fatal(err)
	}

	geoAgent, err := agent.NewGeographyTeacher(model)
	if err != nil {
		stdlog.Fatal(err)
	}

	query := "How high is the location on earth with lat=27.9881 and long=86.9250"
	fmt.Printf("User: %s\n", query)

	answer, err := geoAgent.Ask(context.Background(), query)
	if err != nil {
		stdlog.Fatal(err)
	}
	fmt.Printf("Agent: %s\n", answer)
}
