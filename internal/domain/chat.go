package domain

import "time"

// ChatMessage is one entry of the stored conversation transcript.
type ChatMessage struct {
	ID        string
	Sender    Sender
	Text      string
	CreatedAt time.Time
}
