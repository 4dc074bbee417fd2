package lexicon

import (
	"os"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// Tries are large and immutable, so we keep a process-wide cache of them;
// servers solving many boards against the same wordlist should not pay the
// construction cost more than once. Entries are keyed by a content hash of
// the word file, so a rewritten file is reloaded rather than served stale.
type trieCache struct {
	sync.Mutex
	tries map[uint64]*Trie
}

var globalTrieCache = &trieCache{tries: make(map[uint64]*Trie)}

// CachedTrie loads the word list at path, consulting the global cache
// first. The alphabet must match between cache hits; callers normally
// derive both from the same letter distribution.
func CachedTrie(path string, tm *tilemapping.TileMapping) (*Trie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := xxhash.Sum64(data)

	globalTrieCache.Lock()
	defer globalTrieCache.Unlock()
	if t, ok := globalTrieCache.tries[key]; ok && t.GetAlphabet() == tm {
		log.Debug().Uint64("key", key).Str("path", path).Msg("lexicon cache hit")
		return t, nil
	}
	t, err := LoadTrie(path, tm)
	if err != nil {
		return nil, err
	}
	globalTrieCache.tries[key] = t
	return t, nil
}
