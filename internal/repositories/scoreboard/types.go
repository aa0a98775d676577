package scoreboard

import "github.com/KirkDiggler/everdell-tracker/internal/scoresession"

type SaveSessionInput struct {
	ChannelID string
	Session   *scoresession.Session
}

type GetSessionInput struct {
	ChannelID string
}

type DeleteSessionInput struct {
	ChannelID string
}

type GetActiveChannelsInput struct {
}

type GetActiveChannelsOutput struct {
	ChannelIDs []string
}
