package domain

import "time"

// ChatExchange is one stored question/answer pair. Append-only.
type ChatExchange struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatContext is the preference snapshot that was embedded in a prompt.
type ChatContext struct {
	PreferredStyles string `json:"preferredStyles"`
	PreferredColors string `json:"preferredColors"`
}

// ChatReply is what the assistant returns for one message.
type ChatReply struct {
	Response string      `json:"response"`
	Context  ChatContext `json:"context"`
}
