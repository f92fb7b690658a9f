package main

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/spf13/cobra"

	discord "github.com/oklahomer/discord-builder"
)

// sender is the part of *discordgo.Session the send command needs.
type sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func newSendCmd() *cobra.Command {
	var (
		cfgFile   string
		channelID string
	)

	cmd := &cobra.Command{
		Use:   "send FILE",
		Short: "Convert a message file and post it to a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := discord.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if config.Token == "" {
				return discord.ErrEmptyToken
			}

			session, err := discordgo.New("Bot " + config.Token)
			if err != nil {
				return fmt.Errorf("failed to create Discord session: %w", err)
			}

			return send(session, channelID, args[0])
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	cmd.Flags().StringVar(&channelID, "channel", "", "destination channel ID")
	_ = cmd.MarkFlagRequired("channel")

	return cmd
}

func send(s sender, channelID string, path string) error {
	message, err := readMessage(path)
	if err != nil {
		return err
	}

	data, err := message.Convert()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	sent, err := s.ChannelMessageSendComplex(channelID, data)
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", channelID, err)
	}

	logger.Infof("Sent message %s to %s", sent.ID, channelID)
	return nil
}
