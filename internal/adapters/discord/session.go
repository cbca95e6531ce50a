package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// NewSession creates a bot session. The view only uses REST calls, so the
// gateway is never opened.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return s, nil
}
