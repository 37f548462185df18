package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/smallnest/langgraphgo/prebuilt"

	"github.com/smallnest/geoagents/agent"
	"github.com/smallnest/geoagents/history"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Session is one interactive conversation with an agent.
type Session struct {
	agent   *prebuilt.ChatAgent
	store   history.Store
	gateway *agent.Gateway
	in      io.Reader
	out     io.Writer
}

type SessionOption func(*Session)

// WithInput sets the reader user input comes from.
func WithInput(in io.Reader) SessionOption {
	return func(s *Session) {
		s.in = in
	}
}

// WithOutput sets the writer the session renders to.
func WithOutput(out io.Writer) SessionOption {
	return func(s *Session) {
		s.out = out
	}
}

// WithGateway enables the /models command.
func WithGateway(gw *agent.Gateway) SessionOption {
	return func(s *Session) {
		s.gateway = gw
	}
}

// NewSession creates a session over the given chat agent. Transcript
// messages are appended to store under the agent's thread ID.
func NewSession(chatAgent *prebuilt.ChatAgent, store history.Store, opts ...SessionOption) *Session {
	s := &Session{
		agent: chatAgent,
		store: store,
		in:    os.Stdin,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads user input until EOF or /quit, streaming each agent response
// as it arrives.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, infoStyle.Render(fmt.Sprintf("session %s — /history, /export <path>, /models, /quit", s.agent.ThreadID())))

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, promptStyle.Render("You> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, err := s.command(ctx, line)
			if err != nil {
				fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
			}
			if quit {
				break
			}
			continue
		}

		if err := s.turn(ctx, line); err != nil {
			fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
		}
	}
	return scanner.Err()
}

// turn runs one user message through the agent, streaming the reply.
func (s *Session) turn(ctx context.Context, message string) error {
	if err := s.store.Append(ctx, s.agent.ThreadID(), history.Message{Role: "user", Content: message}); err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}

	chunks, err := s.agent.AsyncChatWithChunks(ctx, message)
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, promptStyle.Render("Agent> "))
	var full strings.Builder
	for chunk := range chunks {
		full.WriteString(chunk)
		fmt.Fprint(s.out, agentStyle.Render(chunk))
	}
	fmt.Fprintln(s.out)

	response := full.String()
	if response == "" {
		return fmt.Errorf("the agent returned no response")
	}
	return s.store.Append(ctx, s.agent.ThreadID(), history.Message{Role: "assistant", Content: response})
}

func (s *Session) command(ctx context.Context, line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		return true, nil

	case "/history":
		msgs, err := s.store.List(ctx, s.agent.ThreadID())
		if err != nil {
			return false, err
		}
		if len(msgs) == 0 {
			fmt.Fprintln(s.out, infoStyle.Render("(empty transcript)"))
			return false, nil
		}
		for _, m := range msgs {
			fmt.Fprintf(s.out, "%s %s\n", promptStyle.Render(m.Role+":"), m.Content)
		}
		return false, nil

	case "/export":
		if arg == "" {
			return false, fmt.Errorf("usage: /export <path>")
		}
		msgs, err := s.store.List(ctx, s.agent.ThreadID())
		if err != nil {
			return false, err
		}
		f, err := os.Create(arg)
		if err != nil {
			return false, fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		if err := ExportHTML(msgs, f); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, infoStyle.Render(fmt.Sprintf("exported %d messages to %s", len(msgs), arg)))
		return false, nil

	case "/models":
		if s.gateway == nil {
			return false, fmt.Errorf("no gateway configured")
		}
		models, err := s.gateway.ListModels(ctx)
		if err != nil {
			return false, err
		}
		for _, id := range models {
			fmt.Fprintln(s.out, id)
		}
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
}
