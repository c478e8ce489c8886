package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/oxidian/sandpit/audio"
	"github.com/oxidian/sandpit/config"
	"github.com/oxidian/sandpit/engine"
	"github.com/oxidian/sandpit/input"
	"github.com/oxidian/sandpit/render"
	"github.com/oxidian/sandpit/world"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS presentation

type session struct {
	screen    tcell.Screen
	runner    *engine.Runner
	tiles     *world.TileMap
	collector *input.Collector
	renderer  *render.Renderer
	sound     *audio.SoundManager
}

func newSession(cfg config.Config) (*session, error) {
	tiles := world.NewGenerator(cfg.World.Seed).Generate(cfg.World.Width, cfg.World.Height)
	sx, sy := world.SpawnColumn(tiles, 4)
	player := engine.NewPlayer(tiles, world.NewCooldownTable(), sx, sy, tiles.SpanX(), tiles.SpanY())

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	s := &session{
		screen:    screen,
		runner:    engine.NewRunner(player),
		tiles:     tiles,
		collector: input.NewCollector(),
		renderer:  render.NewRenderer(screen, cfg.Render.HUD),
		sound:     audio.NewSoundManager(cfg.Audio.Muted),
	}

	if err := s.sound.Initialize(); err != nil {
		// Headless hosts have no device; play on without sound
		log.Printf("audio unavailable: %v", err)
	}
	return s, nil
}

func (s *session) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	player := s.runner.Player()
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.collector.HandleKey(ev, player.TickCount())
				if s.collector.QuitRequested() {
					return
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}

		case now := <-ticker.C:
			in := s.collector.Snapshot(player.TickCount())
			evs := s.runner.Advance(now.Sub(last), in)
			last = now

			s.sound.Dispatch(evs)
			s.renderer.Draw(s.tiles, player)
		}
	}
}

func (s *session) cleanup() {
	s.sound.Cleanup()
	s.screen.Fini()
}

func main() {
	configPath := flag.String("config", "sandpit.yaml", "path to the session config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer s.cleanup()

	s.run()
}
