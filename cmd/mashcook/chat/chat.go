package chat

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mashcook/internal/agent"
	"mashcook/internal/config"
	"mashcook/internal/history"
	"mashcook/internal/llm"
	"mashcook/internal/persona"
	"mashcook/internal/tools"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	profileName string
	sessionID   string
)

var Cmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to MashCook; no message starts an interactive session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		provider, err := llm.New(cfg)
		if err != nil {
			return err
		}

		registry := agent.NewRegistry()
		tools.Register(registry)
		store := history.NewStore()

		factory := agent.NewRunnerFactory(provider, store, registry, profiles(cfg))
		runner, err := factory.Build(profileName)
		if err != nil {
			return err
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		if len(args) == 1 {
			return runOnce(cmd, runner, args[0])
		}
		return runInteractive(cmd, runner)
	},
}

func init() {
	Cmd.Flags().StringVar(&profileName, "profile", "mashcook", "agent profile to use")
	Cmd.Flags().StringVar(&sessionID, "session", "", "session id (defaults to a fresh one)")
}

// profiles returns the built-in agent profiles.
func profiles(cfg *config.Config) map[string]*agent.Profile {
	return map[string]*agent.Profile{
		"mashcook": {
			Name:          "mashcook",
			SystemPrompt:  persona.Instructions(),
			MaxToolRounds: cfg.MaxToolRounds,
		},
		"visualizer": {
			Name:          "visualizer",
			SystemPrompt:  persona.Instructions(),
			Tools:         []string{"generate_persian_prompt", "optimize_photography"},
			MaxToolRounds: cfg.MaxToolRounds,
		},
	}
}

func runOnce(cmd *cobra.Command, runner agent.Runner, message string) error {
	return runner.Run(cmd.Context(), sessionID, message, printEvent(cmd))
}

func runInteractive(cmd *cobra.Command, runner agent.Runner) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s - type a message, or 'exit' to quit\n", persona.Name, persona.Version)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := runner.Run(cmd.Context(), sessionID, line, printEvent(cmd)); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
}

func printEvent(cmd *cobra.Command) func(agent.Event) {
	out := cmd.OutOrStdout()
	return func(ev agent.Event) {
		switch ev.Type {
		case agent.EventToken:
			fmt.Fprint(out, ev.Data)
		case agent.EventToolCall:
			if data, ok := ev.Data.(map[string]string); ok {
				fmt.Fprintf(out, "[tool: %s]\n", data["name"])
			}
		case agent.EventDone:
			fmt.Fprintln(out)
		}
	}
}
