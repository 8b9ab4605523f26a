package roles

import (
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harvey-bot/harvey/database/models"
	"github.com/harvey-bot/harvey/platform"
)

// memStore is an in-memory Store with the same absence and ordering contract
// as the Mongo-backed one.
type memStore struct {
	mu          sync.Mutex
	bindings    map[string][]models.ReactionRole
	posts       map[string][]models.ReactionRolePost
	logChannels map[string]string

	upsertErr     error
	getBindingErr error
	listBindErr   error
	addPostErr    error
	getPostErr    error
	removePostErr error
	listPostsErr  error
	logChannelErr error
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		bindings:    map[string][]models.ReactionRole{},
		posts:       map[string][]models.ReactionRolePost{},
		logChannels: map[string]string{},
	}
}

func (s *memStore) UpsertReactionRole(rr *models.ReactionRole) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bindings[rr.GuildId] {
		if s.bindings[rr.GuildId][i].EmojiId == rr.EmojiId {
			s.bindings[rr.GuildId][i] = *rr
			return nil
		}
	}

	s.bindings[rr.GuildId] = append(s.bindings[rr.GuildId], *rr)

	return nil
}

func (s *memStore) DeleteReactionRole(guildID, emojiID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bindings[guildID][:0]
	for _, rr := range s.bindings[guildID] {
		if rr.EmojiId != emojiID {
			kept = append(kept, rr)
		}
	}
	s.bindings[guildID] = kept

	return nil
}

func (s *memStore) GetReactionRole(guildID, emojiID string) (*models.ReactionRole, error) {
	if s.getBindingErr != nil {
		return nil, s.getBindingErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bindings[guildID] {
		if s.bindings[guildID][i].EmojiId == emojiID {
			rr := s.bindings[guildID][i]
			return &rr, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (s *memStore) ListReactionRoles(guildID string) ([]models.ReactionRole, error) {
	if s.listBindErr != nil {
		return nil, s.listBindErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.ReactionRole{}, s.bindings[guildID]...), nil
}

func (s *memStore) AddPost(post *models.ReactionRolePost) error {
	if s.addPostErr != nil {
		return s.addPostErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts[post.GuildId] = append(s.posts[post.GuildId], *post)

	return nil
}

func (s *memStore) GetPost(guildID, messageID string) (*models.ReactionRolePost, error) {
	if s.getPostErr != nil {
		return nil, s.getPostErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts[guildID] {
		if s.posts[guildID][i].MessageId == messageID {
			post := s.posts[guildID][i]
			return &post, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (s *memStore) RemovePost(guildID, messageID string) error {
	if s.removePostErr != nil {
		return s.removePostErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[guildID][:0]
	for _, post := range s.posts[guildID] {
		if post.MessageId != messageID {
			kept = append(kept, post)
		}
	}
	s.posts[guildID] = kept

	return nil
}

func (s *memStore) ListPosts(guildID string) ([]models.ReactionRolePost, error) {
	if s.listPostsErr != nil {
		return nil, s.listPostsErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.ReactionRolePost{}, s.posts[guildID]...), nil
}

func (s *memStore) SetLogChannel(guildID, channelID string) error {
	if s.logChannelErr != nil {
		return s.logChannelErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logChannels[guildID] = channelID

	return nil
}

func (s *memStore) GetLogChannel(guildID string) (string, error) {
	if s.logChannelErr != nil {
		return "", s.logChannelErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.logChannels[guildID], nil
}

// fakeChat is an in-memory platform.Client that records the calls the domain
// code makes against it.
type fakeChat struct {
	mu     sync.Mutex
	nextID int

	messages  map[string]platform.Message
	sent      map[string]platform.PostContent
	updated   map[string]platform.PostContent
	reactions map[string][]string
	lines     map[string][]string
	granted   []string
	revoked   []string
	emojis    map[string]platform.Emoji
	roles     map[string]platform.Role

	fetchErr    map[string]error
	sendErr     error
	updateErr   error
	sendLineErr error
	reactErr    error
	clearErr    error
	grantErr    error
	revokeErr   error
	emojiErr    error
	roleErr     error
}

var _ platform.Client = (*fakeChat)(nil)

func newFakeChat() *fakeChat {
	return &fakeChat{
		messages:  map[string]platform.Message{},
		sent:      map[string]platform.PostContent{},
		updated:   map[string]platform.PostContent{},
		reactions: map[string][]string{},
		lines:     map[string][]string{},
		emojis:    map[string]platform.Emoji{},
		roles:     map[string]platform.Role{},
		fetchErr:  map[string]error{},
	}
}

func chatKey(channelID, messageID string) string {
	return channelID + "/" + messageID
}

func (f *fakeChat) addEmoji(guildID string, em platform.Emoji) {
	f.emojis[guildID+"/"+em.ID] = em
}

func (f *fakeChat) addRole(guildID string, role platform.Role) {
	f.roles[guildID+"/"+role.ID] = role
}

func (f *fakeChat) addMessage(channelID, messageID string) {
	f.messages[chatKey(channelID, messageID)] = platform.Message{
		ID:        messageID,
		ChannelID: channelID,
		AuthorID:  "bot",
	}
}

func (f *fakeChat) FetchMessage(channelID, messageID string) (*platform.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fetchErr[chatKey(channelID, messageID)]; err != nil {
		return nil, err
	}

	msg, ok := f.messages[chatKey(channelID, messageID)]
	if !ok {
		return nil, &platform.Error{Op: "fetch message", Kind: platform.ErrNotFound}
	}

	return &msg, nil
}

func (f *fakeChat) SendPost(channelID string, content platform.PostContent) (*platform.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	msg := platform.Message{
		ID:        fmt.Sprintf("msg-%d", f.nextID),
		ChannelID: channelID,
		AuthorID:  "bot",
	}
	f.messages[chatKey(channelID, msg.ID)] = msg
	f.sent[chatKey(channelID, msg.ID)] = content

	return &msg, nil
}

func (f *fakeChat) UpdatePost(channelID, messageID string, content platform.PostContent) error {
	if f.updateErr != nil {
		return f.updateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.messages[chatKey(channelID, messageID)]; !ok {
		return &platform.Error{Op: "update post", Kind: platform.ErrNotFound}
	}

	f.updated[chatKey(channelID, messageID)] = content

	return nil
}

func (f *fakeChat) SendLine(channelID, content string) error {
	if f.sendLineErr != nil {
		return f.sendLineErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.lines[channelID] = append(f.lines[channelID], content)

	return nil
}

func (f *fakeChat) AddReaction(channelID, messageID string, emoji platform.Emoji) error {
	if f.reactErr != nil {
		return f.reactErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := chatKey(channelID, messageID)
	f.reactions[key] = append(f.reactions[key], emoji.Reaction())

	return nil
}

func (f *fakeChat) ClearReaction(channelID, messageID string, emoji platform.Emoji) error {
	if f.clearErr != nil {
		return f.clearErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := chatKey(channelID, messageID)
	kept := f.reactions[key][:0]
	for _, r := range f.reactions[key] {
		if r != emoji.Reaction() {
			kept = append(kept, r)
		}
	}
	f.reactions[key] = kept

	return nil
}

func (f *fakeChat) GrantRole(guildID, userID, roleID string) error {
	if f.grantErr != nil {
		return f.grantErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.granted = append(f.granted, guildID+"/"+userID+"/"+roleID)

	return nil
}

func (f *fakeChat) RevokeRole(guildID, userID, roleID string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.revoked = append(f.revoked, guildID+"/"+userID+"/"+roleID)

	return nil
}

func (f *fakeChat) GuildEmoji(guildID, emojiID string) (*platform.Emoji, error) {
	if f.emojiErr != nil {
		return nil, f.emojiErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	em, ok := f.emojis[guildID+"/"+emojiID]
	if !ok {
		return nil, &platform.Error{Op: "guild emoji", Kind: platform.ErrNotFound}
	}

	return &em, nil
}

func (f *fakeChat) GuildRole(guildID, roleID string) (*platform.Role, error) {
	if f.roleErr != nil {
		return nil, f.roleErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	role, ok := f.roles[guildID+"/"+roleID]
	if !ok {
		return nil, &platform.Error{Op: "guild role", Kind: platform.ErrNotFound}
	}

	return &role, nil
}

func (f *fakeChat) CreateRole(guildID, name string) (*platform.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++

	return &platform.Role{ID: fmt.Sprintf("role-%d", f.nextID), Name: name}, nil
}
