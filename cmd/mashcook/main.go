package main

import (
	"os"

	"mashcook/cmd/mashcook/chat"
	"mashcook/cmd/mashcook/gateway"
	"mashcook/cmd/mashcook/pulse"
	"mashcook/cmd/mashcook/setup"
	"mashcook/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.Init()
	rootCmd := &cobra.Command{
		Use:   "mashcook",
		Short: "MashCook is a Persian culinary chat agent",
	}

	rootCmd.AddCommand(chat.Cmd)
	rootCmd.AddCommand(gateway.Cmd)
	rootCmd.AddCommand(pulse.Cmd)
	rootCmd.AddCommand(setup.Cmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
