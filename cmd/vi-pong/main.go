package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/system"
)

var (
	configPath    = flag.String("config", "", "Path to a TOML match configuration")
	keymapPath    = flag.String("keymap", "", "Path to a TOML keymap override")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/vi-pong.log")
	muteFlag      = flag.Bool("mute", false, "Start with sound off")
	musicFlag     = flag.Bool("music", false, "Play the background music loop")
	fpsFlag       = flag.Int("fps", parameter.TickRate, "Simulation ticks per second")
	statsviewAddr = flag.String("statsview", "", "Serve runtime charts at this address, e.g. localhost:18066")
	sentryDSN     = flag.String("sentry-dsn", os.Getenv("SENTRY_DSN"), "Report halted systems to Sentry")
)

func main() {
	// Panic Recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *musicFlag {
		cfg.Audio.Music = true
	}

	keys, err := loadKeyTable(*keymapPath, cfg.Bindings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load keymap: %v\n", err)
		os.Exit(1)
	}

	if *sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: *sentryDSN, Release: "vi-pong"}); err != nil {
			logger.WithError(err).Warn("sentry disabled")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if *statsviewAddr != "" {
		// Configuration must be set before statsview.New()
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(*statsviewAddr))
		mgr := statsview.New()
		core.Go(func() {
			if err := mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Warn("statsview stopped")
			}
		})
		defer mgr.Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	// Crashes on any goroutine restore the terminal first
	core.SetCrashCleanup(screen.Fini)

	player := audio.NewPlayer(cfg, logger)
	if err := player.Start(); err != nil {
		logger.WithError(err).Warn("audio unavailable, running silent")
	}
	defer player.Stop()

	world := engine.NewWorld(cfg)
	world.Resources.Log = logger

	keyboard := input.NewKeyboard(keys)
	scores := render.NewScoreText()
	match := system.Setup(world, engine.NewTimeProvider(), system.Sinks{
		Input:     keyboard,
		Sound:     player,
		ScoreText: scores,
	})

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(render.NewFieldRenderer(), render.PriorityField)
	orchestrator.Register(render.NewPaddleRenderer(), render.PriorityEntities)
	orchestrator.Register(render.NewBallRenderer(), render.PriorityEntities)
	orchestrator.Register(scores, render.PriorityUI)
	orchestrator.Register(&render.StatusRenderer{
		Countdown: match.Lifecycle.Countdown,
		Muted:     func() bool { return !player.IsEnabled() },
	}, render.PriorityUI)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var resized atomic.Bool
	core.Go(func() {
		pollEvents(screen, keyboard, func(intent input.Intent) {
			switch {
			case intent.Type == input.IntentResize:
				resized.Store(true)
			case intent.Type == input.IntentAction && intent.Name == cfg.Bindings.Mute:
				on := player.ToggleMute()
				logger.WithField("sound", on).Debug("mute toggled")
			}
		})
		cancel()
	})

	interval := time.Second / time.Duration(max(*fpsFlag, 1))
	lastFrame := time.Time{}
	err = match.Scheduler.Run(ctx, interval, func() {
		if resized.Swap(false) {
			orchestrator.Resize()
		}
		if now := time.Now(); now.Sub(lastFrame) >= parameter.FrameUpdateInterval {
			orchestrator.RenderFrame(world)
			lastFrame = now
		}
	})

	logger.WithFields(logrus.Fields{
		"left":  world.Resources.Score.Get(core.SideLeft),
		"right": world.Resources.Score.Get(core.SideRight),
		"cause": err,
	}).Info("match ended")
}

// pollEvents feeds terminal events to the keyboard until the screen is finalized
func pollEvents(screen tcell.Screen, keyboard *input.Keyboard, onIntent func(input.Intent)) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		onIntent(keyboard.HandleEvent(ev))
	}
}

// loadKeyTable merges an optional keymap file over the default bindings
func loadKeyTable(path string, bindings config.BindingsConfig) (*input.KeyTable, error) {
	table := input.DefaultKeyTable(bindings)
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(table, override), nil
}
