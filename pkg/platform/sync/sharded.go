package sync

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shardCount is the number of independent locks in a ShardedMutex.
const shardCount = 32

// ShardedMutex serializes work per key (a citizen ID) without a global lock.
// Keys are spread across shardCount mutexes by hash, so two different keys may
// share a shard but one key always maps to the same shard.
type ShardedMutex struct {
	shards [shardCount]sync.Mutex
}

// NewShardedMutex creates a new ShardedMutex.
func NewShardedMutex() *ShardedMutex {
	return &ShardedMutex{}
}

// Lock acquires the lock for the given key's shard.
// Empty keys default to shard 0.
func (m *ShardedMutex) Lock(key string) {
	m.shards[m.shardFor(key)].Lock()
}

// Unlock releases the lock for the given key's shard.
func (m *ShardedMutex) Unlock(key string) {
	m.shards[m.shardFor(key)].Unlock()
}

// With runs fn while holding the key's shard lock.
func (m *ShardedMutex) With(key string, fn func() error) error {
	m.Lock(key)
	defer m.Unlock(key)
	return fn()
}

func (m *ShardedMutex) shardFor(key string) int {
	if key == "" {
		return 0
	}
	return int(xxhash.Sum64String(key) % shardCount)
}
