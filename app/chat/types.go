package chat

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in the append-only transcript. Persona is
// empty for user messages and for plain error entries.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Persona   string    `json:"persona,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Persona is a named analytical viewpoint. The catalog is immutable;
// Active is the only field the user toggles.
type Persona struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Pillar string `json:"pillar"`
	Active bool   `json:"active"`
	Color  string `json:"color"`
}
