package roles

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harvey-bot/harvey/database/models"
	"github.com/harvey-bot/harvey/platform"
)

type EventKind int

const (
	ReactionAdded EventKind = iota
	ReactionRemoved
)

// Event is one gateway reaction, already reduced to plain IDs.
type Event struct {
	Kind      EventKind
	GuildID   string
	ChannelID string
	MessageID string
	EmojiID   string
	UserID    string
}

// consequence is one thing that can happen in response to a reaction on a
// recorded post.
type consequence interface {
	Handles(ev Event) bool
	Apply(ev Event, rr *models.ReactionRole) error
	Audit(ev Event, rr *models.ReactionRole) string
}

type grantOnAdd struct {
	chat platform.Client
}

func (g *grantOnAdd) Handles(ev Event) bool {
	return ev.Kind == ReactionAdded
}

func (g *grantOnAdd) Apply(ev Event, rr *models.ReactionRole) error {
	return g.chat.GrantRole(ev.GuildID, ev.UserID, rr.RoleId)
}

func (g *grantOnAdd) Audit(ev Event, rr *models.ReactionRole) string {
	return fmt.Sprintf(
		"<t:%v:t> Assigned role %v to <@%v> via %v.",
		time.Now().Unix(), rr.RoleMention(), ev.UserID, rr.EmojiMention(),
	)
}

type revokeOnRemove struct {
	chat platform.Client
}

func (r *revokeOnRemove) Handles(ev Event) bool {
	return ev.Kind == ReactionRemoved
}

func (r *revokeOnRemove) Apply(ev Event, rr *models.ReactionRole) error {
	return r.chat.RevokeRole(ev.GuildID, ev.UserID, rr.RoleId)
}

func (r *revokeOnRemove) Audit(ev Event, rr *models.ReactionRole) string {
	return fmt.Sprintf(
		"<t:%v:t> Removed role %v from <@%v> via %v.",
		time.Now().Unix(), rr.RoleMention(), ev.UserID, rr.EmojiMention(),
	)
}

// Router resolves reaction events against the recorded posts and bindings
// and applies every consequence that claims them. It holds no state between
// events; each dispatch re-reads the store.
type Router struct {
	store    Store
	registry *Registry
	chat     platform.Client
	table    []consequence
}

func NewRouter(store Store, registry *Registry, chat platform.Client) *Router {
	return &Router{
		store:    store,
		registry: registry,
		chat:     chat,
		table: []consequence{
			&grantOnAdd{chat: chat},
			&revokeOnRemove{chat: chat},
		},
	}
}

// Dispatch never returns an error: most reactions in a server are unrelated
// traffic, and one failed grant must not take the listener down. Failures
// are logged and mirrored to the guild's log channel when one is set.
func (r *Router) Dispatch(ev Event) {
	_, err := r.store.GetPost(ev.GuildID, ev.MessageID)
	if err == mongo.ErrNoDocuments {
		return
	} else if err != nil {
		log.Error().
			Err(err).
			Msgf("Could not look up post %v in guild %v", ev.MessageID, ev.GuildID)
		return
	}

	rr, err := r.registry.Resolve(ev.GuildID, ev.EmojiID)
	if err != nil {
		log.Error().
			Err(err).
			Msgf("Could not resolve emoji %v in guild %v", ev.EmojiID, ev.GuildID)
		return
	}
	if rr == nil {
		// A marker whose binding was removed before the post got repainted.
		return
	}

	for _, c := range r.table {
		if !c.Handles(ev) {
			continue
		}

		if err := c.Apply(ev, rr); err != nil {
			log.Error().
				Err(err).
				Msgf("Could not change role %v for user %v in guild %v", rr.RoleId, ev.UserID, ev.GuildID)
			r.audit(ev.GuildID, fmt.Sprintf(
				"Could not change role %v for <@%v>: %v",
				rr.RoleMention(), ev.UserID, err,
			))
			continue
		}

		r.audit(ev.GuildID, c.Audit(ev, rr))
	}
}

// audit writes a line to the guild's log channel when one is set. The log
// channel is a sink, never a dependency: every failure here is swallowed
// after a diagnostic.
func (r *Router) audit(guildID, line string) {
	channelID, err := r.store.GetLogChannel(guildID)
	if err != nil {
		log.Warn().Err(err).Msgf("Could not read log channel for guild %v", guildID)
		return
	}
	if channelID == "" {
		log.Info().Msgf("No log channel in guild %v: %v", guildID, line)
		return
	}

	if err := r.chat.SendLine(channelID, line); err != nil {
		log.Warn().Err(err).Msgf("Could not write to log channel %v", channelID)
	}
}
