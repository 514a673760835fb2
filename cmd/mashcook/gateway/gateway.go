package gateway

import (
	"context"
	"log/slog"

	"mashcook/internal/agent"
	"mashcook/internal/config"
	"mashcook/internal/gateway"
	"mashcook/internal/history"
	"mashcook/internal/llm"
	"mashcook/internal/persona"
	"mashcook/internal/tools"
	"mashcook/internal/trace"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "gateway",
	Short: "Serve the agent over HTTP with SSE streaming",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if cfg.Trace.Endpoint != "" {
			shutdown, err := trace.Init(cmd.Context(), trace.Config{
				Endpoint: cfg.Trace.Endpoint,
				URLPath:  cfg.Trace.URLPath,
				APIKey:   cfg.Trace.APIKey,
			})
			if err != nil {
				return err
			}
			defer shutdown(context.Background())
		}

		provider, err := llm.New(cfg)
		if err != nil {
			return err
		}

		registry := agent.NewRegistry()
		tools.Register(registry)
		store := history.NewStore()

		runner := agent.NewDispatchRunner(provider, store, registry,
			agent.WithSystemPrompt(persona.Instructions()),
			agent.WithMaxToolRounds(cfg.MaxToolRounds),
		)

		srv := gateway.NewServer(runner, store)
		slog.Info("gateway listening", "addr", cfg.Gateway.Addr)
		return srv.ListenAndServe(cfg.Gateway.Addr)
	},
}
