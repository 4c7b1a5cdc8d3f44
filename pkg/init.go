package pkg

import (
	"github.com/zuchzub/GroupGuard/pkg/handlers"
	"github.com/zuchzub/GroupGuard/pkg/pipeline"
	"github.com/zuchzub/GroupGuard/pkg/vc"

	tg "github.com/amarnathcjd/gogram/telegram"
)

// Init wires the enforcement pipeline, the command handlers, and the music
// player onto the client. The pipeline is registered before the command
// handlers so that a deleted message never reaches command dispatch.
func Init(client *tg.Client) error {
	pipeline.Register(client)
	handlers.LoadModules(client)
	vc.Player.Attach(client)
	return nil
}
