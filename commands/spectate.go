package commands

import (
	"context"
	"log"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/pong/api"
	"github.com/wricardo/pong/game/config"
	"github.com/wricardo/pong/game/engine"
	"github.com/wricardo/pong/transport/spectate"
	"github.com/wricardo/pong/transport/websocket"
)

// startSpectating serves the spectator API when --spectate is set and
// returns the feed to observe frames with. Everything stops when ctx is done.
func startSpectating(ctx context.Context, cmd *cli.Command, rules *engine.GameConfig, manager *config.Manager) *spectate.Feed {
	addr := cmd.String("spectate")
	if addr == "" {
		return nil
	}

	hub := websocket.NewHub()
	go hub.Run(ctx)

	feed := spectate.NewFeed(hub, int(cmd.Int("spectate-every")))
	server := api.NewServer(feed, hub, rules, manager)

	go func() {
		if err := server.ListenAndServe(ctx, addr); err != nil {
			log.Printf("Spectator API stopped: %v", err)
		}
	}()

	log.Printf("Spectating match %s: http://%s/api/state", feed.MatchID(), addr)
	return feed
}
