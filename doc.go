// Package discord builds Discord messages and embeds and converts them into discordgo structures.
//
// Embed and Message hold optional values and are created either directly, with EmbedBuilder and
// MessageBuilder, or from YAML with ParseMessage. Convert validates the values against Discord's
// limits before discordgo sends anything:
//
//	embed := discord.NewEmbedBuilder().
//		Title("Deploy finished").
//		Description("All services are up.").
//		Color(0x57F287).
//		AddField("Duration", "42s", true).
//		Build()
//
//	data, err := discord.NewMessageBuilder().
//		Content("<@&123456789012345678> heads up").
//		AddEmbed(embed).
//		Mention(discord.MentionRoles{"123456789012345678"}).
//		Build().
//		Convert()
//
// The package also provides a sarah.Adapter implementation, so go-sarah commands can respond
// with *Message and *Embed. See NewMessageResponse.
package discord
