package main

import (
	"context"
	"fmt"
	"log"

	"github.com/smallnest/geoagents/agent"
)

func main() {
	model, err := agent.NewModelFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	helloAgent, err := agent.New(model, agent.ConcisePrompt, nil)
	if err != nil {
		log.Fatal(err)
	}

	query := `Where does "hello world" come from?`
	fmt.Printf("User: %s\n", query)

	answer, err := helloAgent.Ask(context.Background(), query)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Agent: %s\n", answer)
}
