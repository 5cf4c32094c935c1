package chat

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Transcript is the append-only ordered message sequence. Clear
// replaces it with the empty sequence.
type Transcript struct {
	mu       sync.RWMutex
	messages []ChatMessage
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds one message and returns it with its assigned ID.
func (t *Transcript) Append(role Role, content, persona string) ChatMessage {
	msg := ChatMessage{
		ID:        ulid.Make().String(),
		Role:      role,
		Content:   content,
		Persona:   persona,
		Timestamp: time.Now().UTC(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)

	return msg
}

// Messages returns a snapshot of the transcript in append order.
func (t *Transcript) Messages() []ChatMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Clear empties the transcript.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}
