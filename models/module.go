// Package models implements the Otto emotion display controller: a generic
// Viam service that drives an external display component through DoCommand,
// cycling an animated emoji face through a fixed emotion rotation.
package models

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	genericComponent "go.viam.com/rdk/components/generic"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	"go.viam.com/rdk/services/generic"
	goutils "go.viam.com/utils"
	"go.viam.com/utils/rpc"

	"emotiondisplay/gifs"
)

const (
	defaultCycleInterval = 3 * time.Second
	demoStepPause        = 2 * time.Second

	gifWidth  = 200
	gifHeight = 200
	titleText = "Otto Robot Emotions"
)

var (
	EmotionDisplay = resource.NewModel("otto", "emotion-display", "controller")

	// DefaultSequence is the fixed emotion rotation used by the auto cycle
	// and the demo command.
	DefaultSequence = []string{"staticstate", "happy", "sad", "anger", "scare", "buxue"}
)

func init() {
	resource.RegisterService(generic.API, EmotionDisplay,
		resource.Registration[resource.Resource, *Config]{
			Constructor: newEmotionDisplay,
		},
	)
}

type Config struct {
	DisplayComponent  string `json:"display-component"`
	CycleIntervalSecs int    `json:"cycle-interval-secs,omitempty"`
	Playlist          string `json:"playlist,omitempty"`
}

// Validate ensures all parts of the config are valid and important fields exist.
// Returns implicit required (first return) and optional (second return) dependencies based on the config.
func (cfg *Config) Validate(path string) ([]string, []string, error) {
	if cfg.DisplayComponent == "" {
		return nil, nil, fmt.Errorf(`expected "display-component" attribute for emotion display service`)
	}
	if cfg.CycleIntervalSecs < 0 {
		return nil, nil, fmt.Errorf(`"cycle-interval-secs" must not be negative`)
	}
	return []string{cfg.DisplayComponent}, nil, nil
}

type emotionDisplay struct {
	name resource.Name

	logger logging.Logger
	clk    clock.Clock

	demoPause time.Duration

	cancelCtx  context.Context
	cancelFunc func()

	// mu guards the display, sequence, and cycle handles so the ticker
	// callback and DoCommand entry points never touch them concurrently.
	mu            sync.Mutex
	cfg           *Config
	display       resource.Resource
	seq           *Sequence
	cycleInterval time.Duration

	cycleCtx    context.Context
	cycleCancel func()
	cycleWg     sync.WaitGroup
}

func newEmotionDisplay(ctx context.Context, deps resource.Dependencies, rawConf resource.Config, logger logging.Logger) (resource.Resource, error) {
	conf, err := resource.NativeConfig[*Config](rawConf)
	if err != nil {
		return nil, err
	}

	return NewEmotionDisplay(ctx, deps, rawConf.ResourceName(), conf, logger)
}

func NewEmotionDisplay(ctx context.Context, deps resource.Dependencies, name resource.Name, conf *Config, logger logging.Logger) (resource.Resource, error) {
	cancelCtx, cancelFunc := context.WithCancel(context.Background())

	s := &emotionDisplay{
		name:       name,
		logger:     logger,
		clk:        clock.New(),
		demoPause:  demoStepPause,
		cancelCtx:  cancelCtx,
		cancelFunc: cancelFunc,
	}
	if err := s.applyConfig(ctx, deps, conf); err != nil {
		cancelFunc()
		return nil, err
	}
	return s, nil
}

func (s *emotionDisplay) Name() resource.Name {
	return s.name
}

func (s *emotionDisplay) Reconfigure(ctx context.Context, deps resource.Dependencies, conf resource.Config) error {
	config, err := resource.NativeConfig[*Config](conf)
	if err != nil {
		return err
	}
	return s.applyConfig(ctx, deps, config)
}

func (s *emotionDisplay) applyConfig(ctx context.Context, deps resource.Dependencies, config *Config) error {
	display, err := genericComponent.FromDependencies(deps, config.DisplayComponent)
	if err != nil {
		return errors.Wrapf(err, "unable to get display component %v for service", config.DisplayComponent)
	}

	interval := defaultCycleInterval
	if config.CycleIntervalSecs > 0 {
		interval = time.Second * time.Duration(config.CycleIntervalSecs)
	}

	names := DefaultSequence
	if config.Playlist != "" {
		names, err = loadPlaylist(config.Playlist)
		if err != nil {
			return err
		}
	}

	s.stopAutoCycle()

	s.mu.Lock()
	s.cfg = config
	s.display = display
	s.cycleInterval = interval
	s.seq = NewSequence(names)
	s.mu.Unlock()

	if err := s.initDisplay(ctx); err != nil {
		return err
	}
	s.startAutoCycle()
	return nil
}

// initDisplay pushes the widget layout (black fullscreen background, title,
// centered gif widget, caption) and the initial resting face.
func (s *emotionDisplay) initDisplay(ctx context.Context) error {
	s.logger.Infof("emoji asset table version: %s", gifs.Version())
	s.logger.Infof("supported emotions: %d", gifs.Count())

	layout := map[string]any{
		"init_layout": map[string]any{
			"background": "black",
			"title":      titleText,
			"gif":        map[string]any{"width": gifWidth, "height": gifHeight, "align": "center"},
			"caption":    gifs.Default().Name,
		},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.display.DoCommand(ctx, layout); err != nil {
		return errors.Wrap(err, "unable to initialize display layout")
	}
	if err := s.pushSource(ctx, gifs.Default()); err != nil {
		return errors.Wrap(err, "unable to set initial emotion")
	}
	s.logger.Info("emotion display initialized")
	return nil
}

func (s *emotionDisplay) NewClientFromConn(ctx context.Context, conn rpc.ClientConn, remoteName string, name resource.Name, logger logging.Logger) (resource.Resource, error) {
	panic("not implemented")
}

// Command format, one key per call:
//
//	{"state": "start"|"stop"}  start or stop the auto cycle (idempotent)
//	{"set_emotion": <name>}    show one emotion by name
//	{"demo": true}             show every emotion once, pausing between them
func (s *emotionDisplay) DoCommand(ctx context.Context, cmd map[string]any) (map[string]any, error) {
	if state, ok := cmd["state"].(string); ok {
		switch state {
		case "start":
			if !s.startAutoCycle() {
				return map[string]any{"warning": "already running"}, nil
			}
			s.logger.Info("started automatic emotion cycling")
			return map[string]any{"started": "true"}, nil
		case "stop":
			if !s.stopAutoCycle() {
				return map[string]any{"warning": "no running auto cycle to stop"}, nil
			}
			s.logger.Info("stopped automatic emotion cycling")
			return map[string]any{"stopped": "true"}, nil
		}
	}
	if name, ok := cmd["set_emotion"].(string); ok {
		return s.setEmotion(ctx, name), nil
	}
	if _, ok := cmd["demo"]; ok {
		return s.demoAll(ctx)
	}
	return map[string]any{}, nil
}

// setEmotion is the manual path. A lookup miss leaves the display unchanged;
// it does not fall back to the default face the way the ticker does. That
// asymmetry matches the embedded demo this controller replaces.
func (s *emotionDisplay) setEmotion(ctx context.Context, name string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.display == nil {
		s.logger.Error("display not initialized")
		return map[string]any{"error": "display not initialized"}
	}

	img, ok := gifs.GetByName(name)
	if !ok {
		s.logger.Warnf("emotion not found: %s", name)
		return map[string]any{"warning": fmt.Sprintf("emotion %q not found", name)}
	}
	if err := s.pushSource(ctx, img); err != nil {
		s.logger.Errorf("error pushing emotion %s to display: %v", name, err)
		return map[string]any{"error": err.Error()}
	}
	s.logger.Infof("set emotion: %s", name)
	return map[string]any{"emotion": name}
}

// advance is the ticker callback: show the emotion at the cursor, falling
// back to the default face when the name is missing, and move the cursor on.
func (s *emotionDisplay) advance(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.display == nil {
		return
	}

	name := s.seq.Next()
	img, ok := gifs.GetByName(name)
	if !ok {
		s.logger.Warnf("emotion not found: %s, using default", name)
		img = gifs.Default()
	}
	if err := s.pushSource(ctx, img); err != nil {
		s.logger.Errorf("error pushing emotion %s to display: %v", name, err)
		return
	}
	if ok {
		s.logger.Infof("switched to emotion: %s", name)
	}
}

// pushSource assigns an animation as the display object's image source.
func (s *emotionDisplay) pushSource(ctx context.Context, img *gifs.Image) error {
	cmd := map[string]any{
		"set_src": map[string]any{
			"name":   img.Name,
			"width":  img.Width,
			"height": img.Height,
			"frames": img.FrameCount,
			"data":   img.Data,
		},
	}
	_, err := s.display.DoCommand(ctx, cmd)
	return err
}

// startAutoCycle launches the cycle goroutine unless one is already running.
// Returns false when it was already running.
func (s *emotionDisplay) startAutoCycle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycleCancel != nil {
		return false
	}
	s.cycleCtx, s.cycleCancel = context.WithCancel(s.cancelCtx)
	s.cycleWg.Add(1)
	go s.runAutoCycle(s.cycleCtx, s.cycleInterval)
	return true
}

// stopAutoCycle cancels the cycle goroutine and waits for it. Returns false
// when no cycle was running.
func (s *emotionDisplay) stopAutoCycle() bool {
	s.mu.Lock()
	cancel := s.cycleCancel
	s.cycleCancel = nil
	s.cycleCtx = nil
	s.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	s.cycleWg.Wait()
	return true
}

func (s *emotionDisplay) runAutoCycle(ctx context.Context, interval time.Duration) {
	defer s.cycleWg.Done()
	t := s.clk.Ticker(interval)
	defer t.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.advance(ctx)
		}
	}
}

// demoAll shows every emotion in the fixed rotation once, pausing between
// steps. It blocks the calling DoCommand but honors ctx cancellation.
func (s *emotionDisplay) demoAll(ctx context.Context) (map[string]any, error) {
	s.logger.Info("starting demo of all emotions")
	for _, name := range DefaultSequence {
		s.setEmotion(ctx, name)
		if !goutils.SelectContextOrWait(ctx, s.demoPause) {
			return nil, ctx.Err()
		}
	}
	s.logger.Info("emotion demo complete")
	return map[string]any{"demoed": len(DefaultSequence)}, nil
}

func (s *emotionDisplay) Close(context.Context) error {
	s.cancelFunc()
	s.stopAutoCycle()
	return nil
}
