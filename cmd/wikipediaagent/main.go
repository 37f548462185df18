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
	glogger.SetPrefix("[wikipediaagent] ")
	langlog.SetDefaultLogger(langlog.NewGologLogger(glogger))

	model, err := agent.NewModelFromEnv()
	if err != nil {
		stdlog.Fatal(err)
	}

	chatAgent, err := agent.NewWikipediaAnimalQA(model)
	if err != nil {
		stdlog.Fatal(err)
	}

	query := "Tell me about the emperor penguin. Where does it live and what does it eat?"
	fmt.Printf("User: %s\n", query)

	chunks, err := chatAgent.AsyncChatWithChunks(context.Background(), query)
	if err != nil {
		stdlog.Fatal(err)
	}

	fmt.Print("Agent: ")
	for chunk := range chunks {
		fmt.Print(chunk)
	}
	fmt.Println()
}
