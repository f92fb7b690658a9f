package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Mention decides who is actually notified by the mentions in a Message.
// Use one of MentionEveryone, MentionHere, MentionUsers, MentionRoles or MentionReply.
type Mention interface {
	apply(message *discordgo.MessageSend)
}

// MentionEveryone allows @everyone to notify all members of the guild.
type MentionEveryone struct{}

var _ Mention = MentionEveryone{}

func (MentionEveryone) apply(message *discordgo.MessageSend) {
	message.AllowedMentions = &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone},
	}
}

// MentionHere allows every user and role mentioned in the content to be notified.
type MentionHere struct{}

var _ Mention = MentionHere{}

func (MentionHere) apply(message *discordgo.MessageSend) {
	message.AllowedMentions = &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{
			discordgo.AllowedMentionTypeUsers,
			discordgo.AllowedMentionTypeRoles,
		},
	}
}

// MentionUsers restricts notification to the given user IDs.
type MentionUsers []string

var _ Mention = MentionUsers(nil)

func (m MentionUsers) apply(message *discordgo.MessageSend) {
	message.AllowedMentions = &discordgo.MessageAllowedMentions{
		Users: append([]string(nil), m...),
	}
}

// MentionRoles notifies the given role IDs along with any mentioned user.
type MentionRoles []string

var _ Mention = MentionRoles(nil)

func (m MentionRoles) apply(message *discordgo.MessageSend) {
	message.AllowedMentions = &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
		Roles: append([]string(nil), m...),
	}
}

// MentionReply sends the message as a reply to the referenced message and notifies its author.
// A nil *MentionReply leaves the message untouched.
type MentionReply struct {
	MessageID string
	ChannelID string
	GuildID   string
}

var _ Mention = (*MentionReply)(nil)

func (m *MentionReply) apply(message *discordgo.MessageSend) {
	if m == nil {
		return
	}
	message.Reference = &discordgo.MessageReference{
		MessageID: m.MessageID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
	}
	message.AllowedMentions = &discordgo.MessageAllowedMentions{
		RepliedUser: true,
	}
}

// mentionDef is the declarative form of Mention.
//
//	mention:
//	  type: users
//	  ids: ["123", "456"]
type mentionDef struct {
	Type      string   `yaml:"type"`
	IDs       []string `yaml:"ids,omitempty"`
	MessageID string   `yaml:"message_id,omitempty"`
	ChannelID string   `yaml:"channel_id,omitempty"`
	GuildID   string   `yaml:"guild_id,omitempty"`
}

func (s *mentionDef) mention() (Mention, error) {
	switch s.Type {
	case "everyone":
		return MentionEveryone{}, nil

	case "here":
		return MentionHere{}, nil

	case "users":
		return MentionUsers(s.IDs), nil

	case "roles":
		return MentionRoles(s.IDs), nil

	case "reply":
		return &MentionReply{
			MessageID: s.MessageID,
			ChannelID: s.ChannelID,
			GuildID:   s.GuildID,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMentionType, s.Type)
	}
}
