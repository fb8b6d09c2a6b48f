// Command cli runs the emotion display controller against an in-process
// console display, useful for trying the module without a robot.
package main

import (
	"context"

	genericComponent "go.viam.com/rdk/components/generic"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	generic "go.viam.com/rdk/services/generic"

	"emotiondisplay/models"
)

func main() {
	err := realMain()
	if err != nil {
		panic(err)
	}
}

type consoleDisplay struct {
	resource.Named
	resource.TriviallyReconfigurable
	resource.TriviallyCloseable
	logger logging.Logger
}

func (d *consoleDisplay) DoCommand(ctx context.Context, cmd map[string]any) (map[string]any, error) {
	if layout, ok := cmd["init_layout"].(map[string]any); ok {
		d.logger.Infof("display layout created: %v", layout["title"])
	}
	if src, ok := cmd["set_src"].(map[string]any); ok {
		d.logger.Infof("display source: %v (%v frames)", src["name"], src["frames"])
	}
	return map[string]any{}, nil
}

func realMain() error {
	ctx := context.Background()
	logger := logging.NewLogger("cli")

	dispName := genericComponent.Named("display")
	deps := resource.Dependencies{
		dispName: &consoleDisplay{Named: dispName.AsNamed(), logger: logger},
	}

	cfg := models.Config{DisplayComponent: "display"}

	thing, err := models.NewEmotionDisplay(ctx, deps, generic.Named("emotions"), &cfg, logger)
	if err != nil {
		return err
	}
	defer thing.Close(ctx)

	// The constructor starts the auto cycle; stop it so the demo output
	// stays in order.
	if _, err := thing.DoCommand(ctx, map[string]any{"state": "stop"}); err != nil {
		return err
	}
	_, err = thing.DoCommand(ctx, map[string]any{"demo": true})
	return err
}
