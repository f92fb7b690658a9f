package discord

import (
	"time"
	"unicode/utf16"

	"github.com/bwmarrin/discordgo"
)

const (
	// MaxDescriptionLength is the maximum length of an embed description in UTF-16 code units.
	MaxDescriptionLength = 4096

	// MaxEmbedFields is the maximum number of fields an embed can have.
	MaxEmbedFields = 25
)

// Embed holds the values of a rich embed.
// Every value is optional; a zero value is left out of the converted embed.
//
// Footer and author are flattened into separate values.
// FooterIconURL is only used when FooterText is given, and AuthorURL and AuthorIconURL are only used when AuthorName is given.
// Video and provider are not supported because Discord ignores them on rich embeds sent by bots.
type Embed struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Description is limited to MaxDescriptionLength UTF-16 code units.
	// Convert returns ErrTooLongDescription when the limit is exceeded.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Timestamp is displayed at the bottom of the embed.
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Color is given as a color code such as 0xff0000.
	// Zero is treated as unset since Discord can not distinguish it from the default color.
	Color int `json:"color,omitempty" yaml:"color,omitempty"`

	FooterText    string `json:"footer_text,omitempty" yaml:"footer_text,omitempty"`
	FooterIconURL string `json:"footer_icon_url,omitempty" yaml:"footer_icon_url,omitempty"`
	ImageURL      string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	AuthorName    string `json:"author_name,omitempty" yaml:"author_name,omitempty"`
	AuthorURL     string `json:"author_url,omitempty" yaml:"author_url,omitempty"`
	AuthorIconURL string `json:"author_icon_url,omitempty" yaml:"author_icon_url,omitempty"`

	// Fields is limited to MaxEmbedFields elements.
	// Convert returns ErrTooManyFields when the limit is exceeded.
	Fields []*EmbedField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// EmbedField is a name-value pair displayed in an Embed.
type EmbedField struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty"`
}

// NewEmbedField creates a new *EmbedField.
func NewEmbedField(name, value string, inline bool) *EmbedField {
	return &EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

// Convert validates the Embed against Discord's limits and converts it to *discordgo.MessageEmbed.
//
// This returns ErrTooLongDescription or ErrTooManyFields when the corresponding limit is exceeded.
// discordgo itself sends whatever is given and leaves the validation to Discord.
func (e *Embed) Convert() (*discordgo.MessageEmbed, error) {
	embed := &discordgo.MessageEmbed{
		Type:  discordgo.EmbedTypeRich,
		Title: e.Title,
		URL:   e.URL,
		Color: e.Color,
	}

	if e.Description != "" {
		if utf16Len(e.Description) > MaxDescriptionLength {
			return nil, ErrTooLongDescription
		}
		embed.Description = e.Description
	}

	if e.Timestamp != nil {
		embed.Timestamp = e.Timestamp.Format(time.RFC3339)
	}

	if e.FooterText != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text:    e.FooterText,
			IconURL: e.FooterIconURL,
		}
	}

	if e.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}

	if e.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.ThumbnailURL}
	}

	if e.AuthorName != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    e.AuthorName,
			URL:     e.AuthorURL,
			IconURL: e.AuthorIconURL,
		}
	}

	if len(e.Fields) > 0 {
		if len(e.Fields) > MaxEmbedFields {
			return nil, ErrTooManyFields
		}

		fields := make([]*discordgo.MessageEmbedField, 0, len(e.Fields))
		for _, f := range e.Fields {
			if f == nil {
				continue
			}
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   f.Name,
				Value:  f.Value,
				Inline: f.Inline,
			})
		}
		embed.Fields = fields
	}

	return embed, nil
}

// EmbedBuilder helps to construct an Embed.
// Call Build at the end to retrieve the constructed *Embed.
type EmbedBuilder struct {
	embed *Embed
}

// NewEmbedBuilder creates a new EmbedBuilder with no value set.
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{embed: &Embed{}}
}

// Title sets the title.
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the description.
// See MaxDescriptionLength for the limitation.
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// URL sets the URL the title links to.
func (b *EmbedBuilder) URL(url string) *EmbedBuilder {
	b.embed.URL = url
	return b
}

// Timestamp sets the timestamp displayed in the footer area.
func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = &timestamp
	return b
}

// Color sets the color code of the left border, e.g. 0xff0000 for red.
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// FooterText sets the footer text.
func (b *EmbedBuilder) FooterText(text string) *EmbedBuilder {
	b.embed.FooterText = text
	return b
}

// FooterIconURL sets the footer icon.
// This is ignored on conversion unless FooterText is also set.
func (b *EmbedBuilder) FooterIconURL(url string) *EmbedBuilder {
	b.embed.FooterIconURL = url
	return b
}

// ImageURL sets the image.
func (b *EmbedBuilder) ImageURL(url string) *EmbedBuilder {
	b.embed.ImageURL = url
	return b
}

// ThumbnailURL sets the thumbnail.
func (b *EmbedBuilder) ThumbnailURL(url string) *EmbedBuilder {
	b.embed.ThumbnailURL = url
	return b
}

// AuthorName sets the author name.
func (b *EmbedBuilder) AuthorName(name string) *EmbedBuilder {
	b.embed.AuthorName = name
	return b
}

// AuthorURL sets the author link.
// This is ignored on conversion unless AuthorName is also set.
func (b *EmbedBuilder) AuthorURL(url string) *EmbedBuilder {
	b.embed.AuthorURL = url
	return b
}

// AuthorIconURL sets the author icon.
// This is ignored on conversion unless AuthorName is also set.
func (b *EmbedBuilder) AuthorIconURL(url string) *EmbedBuilder {
	b.embed.AuthorIconURL = url
	return b
}

// Fields replaces the fields with the given ones.
func (b *EmbedBuilder) Fields(fields ...*EmbedField) *EmbedBuilder {
	b.embed.Fields = fields
	return b
}

// AddField appends a field.
func (b *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, NewEmbedField(name, value, inline))
	return b
}

// Build returns the constructed *Embed.
// The builder must not be used after this call.
func (b *EmbedBuilder) Build() *Embed {
	return b.embed
}

// utf16Len counts the string length the way Discord does, in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
