package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Replier is the slice of the interaction lifecycle the orchestrator needs:
// immediate reply, deferred acknowledgement, edits against the deferred
// placeholder, follow-ups, and direct messages.
type Replier interface {
	Respond(content string) error
	RespondEmbed(embed *discordgo.MessageEmbed) error
	Defer() error
	Edit(content string) error
	EditEmbed(embed *discordgo.MessageEmbed) error
	FollowUp(embed *discordgo.MessageEmbed) error
	Delete() error
	DirectMessage(content string) error
}

type interactionReplier struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
}

func (r *interactionReplier) userID() string {
	if r.interaction.Member != nil && r.interaction.Member.User != nil {
		return r.interaction.Member.User.ID
	}
	if r.interaction.User != nil {
		return r.interaction.User.ID
	}
	return ""
}

func (r *interactionReplier) Respond(content string) error {
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func (r *interactionReplier) RespondEmbed(embed *discordgo.MessageEmbed) error {
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func (r *interactionReplier) Defer() error {
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func (r *interactionReplier) Edit(content string) error {
	_, err := r.session.InteractionResponseEdit(r.interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

func (r *interactionReplier) EditEmbed(embed *discordgo.MessageEmbed) error {
	embeds := []*discordgo.MessageEmbed{embed}
	_, err := r.session.InteractionResponseEdit(r.interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &embeds,
	})
	return err
}

func (r *interactionReplier) FollowUp(embed *discordgo.MessageEmbed) error {
	_, err := r.session.FollowupMessageCreate(r.interaction.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	return err
}

func (r *interactionReplier) Delete() error {
	return r.session.InteractionResponseDelete(r.interaction.Interaction)
}

func (r *interactionReplier) DirectMessage(content string) error {
	channel, err := r.session.UserChannelCreate(r.userID())
	if err != nil {
		return err
	}
	_, err = r.session.ChannelMessageSend(channel.ID, content)
	return err
}
