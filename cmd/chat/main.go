package main

import (
	"context"
	stdlog "log"
	"os"
	"time"

	"github.com/kataras/golog"
	"github.com/redis/go-redis/v9"
	langlog "github.com/smallnest/langgraphgo/log"
	"github.com/smallnest/langgraphgo/prebuilt"
	"github.com/tmc/langchaingo/tools"

	"github.com/smallnest/geoagents/agent"
	"github.com/smallnest/geoagents/chat"
	"github.com/smallnest/geoagents/history"
	"github.com/smallnest/geoagents/tool"
)

const systemPrompt = "You are an awesome geography teacher. " +
	"Use your tools to look up elevations, locations, historical weather, " +
	"soil data and background information before answering."

func main() {
	glogger := golog.New()
	glogger.SetPrefix("[chat] ")
	langlog.SetDefaultLogger(langlog.NewGologLogger(glogger))

	ctx := context.Background()

	model, err := agent.NewModelFromEnv()
	if err != nil {
		stdlog.Fatal(err)
	}

	chatAgent, err := prebuilt.NewChatAgent(model, buildTools(),
		prebuilt.WithSystemMessage(systemPrompt),
	)
	if err != nil {
		stdlog.Fatal(err)
	}

	store, err := buildStore(ctx)
	if err != nil {
		stdlog.Fatal(err)
	}
	defer store.Close()

	opts := []chat.SessionOption{}
	if os.Getenv("CBORG_API_KEY") != "" {
		gw, err := agent.NewGatewayFromEnv()
		if err != nil {
			stdlog.Fatal(err)
		}
		opts = append(opts, chat.WithGateway(gw))
	}

	session := chat.NewSession(chatAgent, store, opts...)
	if err := session.Run(ctx); err != nil {
		stdlog.Fatal(err)
	}
}

// buildTools assembles every available tool. Tools that need their own
// credentials are only included when those are configured, and all tools
// are memoized through redis when REDIS_ADDR is set.
func buildTools() []tools.Tool {
	geocoder := tool.NewGeocode()
	inputTools := []tools.Tool{
		tool.NewElevation(),
		geocoder,
		tool.NewWeather(tool.WithWeatherGeocoder(geocoder)),
		tool.NewSoilGrids(),
		tool.NewWikipedia(),
		tool.NewWebPage(),
	}

	if os.Getenv("GOOGLE_MAPS_API_KEY") != "" {
		mapTool, err := tool.NewStaticMap("")
		if err != nil {
			stdlog.Fatal(err)
		}
		inputTools = append(inputTools, mapTool)
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		for i, t := range inputTools {
			inputTools[i] = tool.Cached(t, client, time.Hour)
		}
	}
	return inputTools
}

// buildStore picks a transcript backend from the environment:
// DATABASE_URL for postgres, GEOAGENTS_DB for sqlite, memory otherwise.
func buildStore(ctx context.Context) (history.Store, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return history.NewPostgresStore(ctx, history.PostgresOptions{ConnString: dsn})
	}
	if path := os.Getenv("GEOAGENTS_DB"); path != "" {
		return history.NewSqliteStore(history.SqliteOptions{Path: path})
	}
	return history.NewMemoryStore(), nil
}
