package roles

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/constants"
	"github.com/harvey-bot/harvey/database/models"
	"github.com/harvey-bot/harvey/platform"
)

const (
	postTitle  = "Reaction Roles"
	postFooter = "React to grab a role, unreact to drop it."
	emptyBody  = "No roles configured yet. This post fills up as admins add bindings."

	// Discord caps embed descriptions at 4096; long binding descriptions get
	// clamped per line so one verbose binding cannot eat the whole post.
	maxLineDescription = 200
	maxBody            = 4096
)

// PostManager creates and repaints reaction-role posts and reconciles the
// recorded post set against what still exists on the platform.
type PostManager struct {
	store Store
	chat  platform.Client
}

func NewPostManager(store Store, chat platform.Client) *PostManager {
	return &PostManager{store: store, chat: chat}
}

// BindingLines renders one post/list line per binding: emoji, role mention
// and the optional description.
func BindingLines(bindings []models.ReactionRole) []string {
	lines := make([]string, 0, len(bindings))
	for i := range bindings {
		rr := &bindings[i]

		line := fmt.Sprintf("%v %v", rr.EmojiMention(), rr.RoleMention())
		if rr.Description != "" {
			line += " - " + truncate(rr.Description, maxLineDescription)
		}

		lines = append(lines, line)
	}

	return lines
}

func renderPost(bindings []models.ReactionRole) platform.PostContent {
	content := platform.PostContent{
		Title:  postTitle,
		Color:  constants.Colors.Main,
		Footer: postFooter,
	}

	if len(bindings) == 0 {
		content.Description = emptyBody
		return content
	}

	content.Description = truncate(strings.Join(BindingLines(bindings), "\n"), maxBody)

	return content
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}

func marker(rr *models.ReactionRole) platform.Emoji {
	return platform.Emoji{ID: rr.EmojiId, Name: rr.EmojiName}
}

// CreatePost renders the guild's bindings into a new post in channelID,
// attaches one marker reaction per binding and records the post. A guild
// without bindings still gets a post, ready for bindings added later.
func (p *PostManager) CreatePost(guildID, channelID string) (*models.ReactionRolePost, error) {
	bindings, err := p.store.ListReactionRoles(guildID)
	if err != nil {
		return nil, err
	}

	msg, err := p.chat.SendPost(channelID, renderPost(bindings))
	if err != nil {
		return nil, err
	}

	post := &models.ReactionRolePost{
		GuildId:   guildID,
		ChannelId: channelID,
		MessageId: msg.ID,
	}
	if err := p.store.AddPost(post); err != nil {
		return nil, err
	}

	for i := range bindings {
		rr := &bindings[i]
		if err := p.chat.AddReaction(post.ChannelId, post.MessageId, marker(rr)); err != nil {
			log.Warn().
				Err(err).
				Msgf("Could not attach %v to new post %v", rr.EmojiMention(), post.MessageId)
		}
	}

	return post, nil
}

// SyncNewBinding pushes a fresh binding onto every surviving post: repaint
// plus the new marker reaction. Posts that no longer resolve are pruned on
// the way. The marker is the contract; a failed repaint only warns.
func (p *PostManager) SyncNewBinding(guildID string, rr *models.ReactionRole) error {
	kept, _, err := p.Check(guildID)
	if err != nil {
		return err
	}

	bindings, err := p.store.ListReactionRoles(guildID)
	if err != nil {
		return err
	}

	content := renderPost(bindings)
	for i := range kept {
		post := &kept[i]

		if err := p.chat.UpdatePost(post.ChannelId, post.MessageId, content); err != nil {
			log.Warn().
				Err(err).
				Msgf("Could not repaint post %v in guild %v", post.MessageId, guildID)
		}

		if err := p.chat.AddReaction(post.ChannelId, post.MessageId, marker(rr)); err != nil {
			log.Warn().
				Err(err).
				Msgf("Could not attach %v to post %v", rr.EmojiMention(), post.MessageId)
		}
	}

	return nil
}

// PruneOnRemove repaints every surviving post without the removed binding
// and strips its marker reaction from them.
func (p *PostManager) PruneOnRemove(guildID string, rr *models.ReactionRole) error {
	kept, _, err := p.Check(guildID)
	if err != nil {
		return err
	}

	bindings, err := p.store.ListReactionRoles(guildID)
	if err != nil {
		return err
	}

	content := renderPost(bindings)
	for i := range kept {
		post := &kept[i]

		if err := p.chat.UpdatePost(post.ChannelId, post.MessageId, content); err != nil {
			log.Warn().
				Err(err).
				Msgf("Could not repaint post %v in guild %v", post.MessageId, guildID)
		}

		if err := p.chat.ClearReaction(post.ChannelId, post.MessageId, marker(rr)); err != nil {
			log.Warn().
				Err(err).
				Msgf("Could not strip %v from post %v", rr.EmojiMention(), post.MessageId)
		}
	}

	return nil
}

// Check fetches every recorded post once. A definitive NotFound or Forbidden
// answer deletes the record and reports it pruned; a transient or rate-limit
// failure keeps the record for a later run. Running Check again with no
// platform change in between prunes nothing more.
func (p *PostManager) Check(guildID string) (kept, pruned []models.ReactionRolePost, err error) {
	posts, err := p.store.ListPosts(guildID)
	if err != nil {
		return nil, nil, err
	}

	for _, post := range posts {
		_, fetchErr := p.chat.FetchMessage(post.ChannelId, post.MessageId)
		if fetchErr == nil {
			kept = append(kept, post)
			continue
		}

		if !platform.Definitive(fetchErr) {
			log.Warn().
				Err(fetchErr).
				Msgf("Keeping post %v in guild %v, fetch did not settle", post.MessageId, guildID)
			kept = append(kept, post)
			continue
		}

		if err := p.store.RemovePost(guildID, post.MessageId); err != nil {
			return kept, pruned, err
		}

		pruned = append(pruned, post)
	}

	return kept, pruned, nil
}
