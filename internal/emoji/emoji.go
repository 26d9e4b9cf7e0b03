package emoji

import "sync"

// [emoji, fallback]
var emojiMap = map[string][2]string{
	"definition":  {"📘", "[DEF]"},
	"explanation": {"🧠", "[EXP]"},
	"reason":      {"❓", "[WHY]"},
	"comparison":  {"🔍", "[CMP]"},
	"general":     {"🤖", "[BOT]"},
	"unsure":      {"🤔", "[?]"},
	"book":        {"📚", "[SUBJ]"},
	"user":        {"🧑", "[Q]"},
	"bot":         {"🤖", "[A]"},
	"tip":         {"👉", "[TIP]"},
}

var (
	mu       sync.RWMutex
	disabled bool
)

// SetDisabled switches every label to its plain-text fallback.
func SetDisabled(d bool) {
	mu.Lock()
	defer mu.Unlock()
	disabled = d
}

// IsDisabled returns the current emoji state.
func IsDisabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return disabled
}

// Get returns the emoji for key, or its fallback when emoji are disabled.
func Get(key string) string {
	mapping, ok := emojiMap[key]
	if !ok {
		return "[?]"
	}
	if IsDisabled() {
		return mapping[1]
	}
	return mapping[0]
}
