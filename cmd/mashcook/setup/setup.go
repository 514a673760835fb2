package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configTemplate = `# MashCook configuration. Environment variables override these values.
provider = "openai" # openai | anthropic | azure
model = "gpt-4o-mini"
temperature = 0.7
max_output_tokens = 4000
max_tool_rounds = 8

[openai]
# api_key = "" # or set OPENAI_API_KEY

[anthropic]
# api_key = "" # or set ANTHROPIC_API_KEY
base_url = "https://api.anthropic.com/v1"

[azure]
# api_key = ""     # or set AZURE_OPENAI_API_KEY
# endpoint = ""    # or set AZURE_OPENAI_ENDPOINT
api_version = "2024-10-21"

[gateway]
addr = ":8585"

[trace]
# endpoint = "" # OTLP traces endpoint, e.g. localhost:4318
`

var Cmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a config.toml template",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.UserConfigDir()
		if err != nil {
			return err
		}
		path := filepath.Join(dir, "mashcook", "config.toml")

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "config already exists at %s\n", path)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "set OPENAI_API_KEY (or ANTHROPIC_API_KEY / AZURE_OPENAI_*) before running 'mashcook chat'")
		return nil
	},
}
