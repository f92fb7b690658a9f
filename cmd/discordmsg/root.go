package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	discord "github.com/oklahomer/discord-builder"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "discordmsg",
		Short: "Validate and send Discord messages defined in YAML",
		Long: `discordmsg reads messages and embeds written in YAML or JSON, checks them against
Discord's length and count limits, and prints or sends the resulting payload.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newValidateCmd())
	root.AddCommand(newSendCmd())

	return root
}

func readMessage(path string) (*discord.Message, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	message, err := discord.ParseMessage(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return message, nil
}
