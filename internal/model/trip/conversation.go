package trip

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message persists individual turns for re-extraction and audit.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// History is the append-only record of a conversation.
type History struct {
	messages []Message
}

// Append records a turn. Timestamps default to now.
func (h *History) Append(role Role, content string) {
	h.messages = append(h.messages, Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}

// UserContents returns the content of every user turn in order. The
// extractor re-derives trip state from this full sequence so facts stated
// early are never lost.
func (h *History) UserContents() []string {
	var out []string
	for _, m := range h.messages {
		if m.Role == RoleUser {
			out = append(out, m.Content)
		}
	}
	return out
}

// Messages returns a copy of the transcript.
func (h *History) Messages() []Message {
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

// Len returns the number of recorded turns.
func (h *History) Len() int {
	return len(h.messages)
}
