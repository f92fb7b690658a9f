package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gopkg.in/yaml.v3"
)

// MaxContentLength is the maximum length of message content in UTF-16 code units.
const MaxContentLength = 2000

// Message holds the values of a message to be sent.
// Only text, embeds and stickers are supported; components and attachments are not.
type Message struct {
	// Content is limited to MaxContentLength UTF-16 code units.
	// Convert returns ErrTooLongContent when the limit is exceeded.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	Embeds []*Embed `json:"embeds,omitempty" yaml:"embeds,omitempty"`

	// TTS sends the message as text-to-speech.
	TTS bool `json:"tts,omitempty" yaml:"tts,omitempty"`

	// Mention controls who gets notified. When nil, Discord's default applies.
	Mention Mention `json:"-" yaml:"-"`

	StickerIDs []string `json:"sticker_ids,omitempty" yaml:"sticker_ids,omitempty"`
}

// Convert validates the Message against Discord's limits and converts it to *discordgo.MessageSend.
//
// This returns ErrTooLongContent when the content is too long.
// Each embed is converted with Embed.Convert, and its error is returned wrapped so errors.Is still matches.
func (m *Message) Convert() (*discordgo.MessageSend, error) {
	message := &discordgo.MessageSend{
		TTS: m.TTS,
	}

	if m.Content != "" {
		if utf16Len(m.Content) > MaxContentLength {
			return nil, ErrTooLongContent
		}
		message.Content = m.Content
	}

	for i, e := range m.Embeds {
		if e == nil {
			continue
		}
		embed, err := e.Convert()
		if err != nil {
			return nil, fmt.Errorf("failed to convert embed at index %d: %w", i, err)
		}
		message.Embeds = append(message.Embeds, embed)
	}

	if m.Mention != nil {
		m.Mention.apply(message)
	}

	if len(m.StickerIDs) > 0 {
		message.StickerIDs = append([]string(nil), m.StickerIDs...)
	}

	return message, nil
}

// UnmarshalYAML decodes a Message including its Mention.
// See mentionDef for the mention format.
func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Content    string      `yaml:"content"`
		Embeds     []*Embed    `yaml:"embeds"`
		TTS        bool        `yaml:"tts"`
		Mention    *mentionDef `yaml:"mention"`
		StickerIDs []string    `yaml:"sticker_ids"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	m.Content = raw.Content
	m.Embeds = raw.Embeds
	m.TTS = raw.TTS
	m.StickerIDs = raw.StickerIDs
	m.Mention = nil

	if raw.Mention != nil {
		mention, err := raw.Mention.mention()
		if err != nil {
			return err
		}
		m.Mention = mention
	}

	return nil
}

// ParseMessage decodes a YAML or JSON document into *Message.
// The returned Message is not validated; call Convert to check the limits.
func ParseMessage(data []byte) (*Message, error) {
	message := &Message{}
	if err := yaml.Unmarshal(data, message); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return message, nil
}

// MessageBuilder helps to construct a Message.
// Call Build at the end to retrieve the constructed *Message.
type MessageBuilder struct {
	message *Message
}

// NewMessageBuilder creates a new MessageBuilder with no value set.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{message: &Message{}}
}

// Content sets the text content.
func (b *MessageBuilder) Content(content string) *MessageBuilder {
	b.message.Content = content
	return b
}

// Embeds replaces the embeds with the given ones.
func (b *MessageBuilder) Embeds(embeds ...*Embed) *MessageBuilder {
	b.message.Embeds = embeds
	return b
}

// AddEmbed appends an embed.
func (b *MessageBuilder) AddEmbed(embed *Embed) *MessageBuilder {
	b.message.Embeds = append(b.message.Embeds, embed)
	return b
}

// TTS sets whether the message is read aloud.
func (b *MessageBuilder) TTS(tts bool) *MessageBuilder {
	b.message.TTS = tts
	return b
}

// Mention sets who gets notified.
func (b *MessageBuilder) Mention(mention Mention) *MessageBuilder {
	b.message.Mention = mention
	return b
}

// StickerIDs sets the stickers to send.
func (b *MessageBuilder) StickerIDs(ids ...string) *MessageBuilder {
	b.message.StickerIDs = ids
	return b
}

// Build returns the constructed *Message.
// The builder must not be used after this call.
func (b *MessageBuilder) Build() *Message {
	return b.message
}
