package roles

import "sync"

// guildLocks hands out one mutex per guild so mutations inside a guild
// serialize while different guilds never contend.
type guildLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newGuildLocks() *guildLocks {
	return &guildLocks{m: map[string]*sync.Mutex{}}
}

func (l *guildLocks) get(guildID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.m[guildID]
	if !ok {
		lock = &sync.Mutex{}
		l.m[guildID] = lock
	}

	return lock
}
