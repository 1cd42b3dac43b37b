package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bot - тип чат-бота
type Bot string

const (
	BotSimple   Bot = "simple"
	BotAdvanced Bot = "advanced"
)

const (
	RoleUser    = "user"
	RoleChatbot = "chatbot"
)

// ChatTurn - одна реплика в истории чата
type ChatTurn struct {
	Role    string    `json:"role"`
	Message string    `json:"message"`
	Bot     Bot       `json:"bot,omitempty"`
	At      time.Time `json:"at"`
}

// ChatSession - история чата одной сессии
type ChatSession struct {
	ID    uuid.UUID  `json:"id"`
	Turns []ChatTurn `json:"turns"`
}
