package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/tickblend/assets"
	"github.com/automoto/tickblend/config"
	"github.com/automoto/tickblend/fonts"
	"github.com/automoto/tickblend/scenes"
	"github.com/automoto/tickblend/shared/carsim"
	"github.com/automoto/tickblend/shared/interp"
	"github.com/automoto/tickblend/shared/logger"
	"github.com/automoto/tickblend/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Path to a .toml or .yaml config file")
	level := flag.String("level", "", "Level to load (overrides config)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *level != "" {
		config.Assets.Level = *level
	}

	zlog, err := logger.New(config.Logging.Level, config.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(zlog); err != nil {
		zlog.Error("tickblend exited", zap.Error(err))
		_ = zlog.Sync()
		os.Exit(1)
	}
}

func run(zlog *zap.Logger) error {
	if err := fonts.LoadDefaults(config.Render.FontSize); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Saved preferences overlay the config before anything reads it.
	if err := systems.InitPersistence(config.Assets.AppName, zlog); err == nil {
		systems.ApplySavedSettingsGlobal(systems.LoadSettings())
	}

	arena, err := carsim.Load(assets.FS(), config.Assets.Level, config.Assets.ScriptsDir, zlog)
	if err != nil {
		return err
	}
	defer arena.Close()

	if _, err := arena.SpawnLevel(); err != nil {
		return fmt.Errorf("spawn level cars: %w", err)
	}
	arena.Interp().Blend().SetEnabled(config.Interp.Enabled)

	levelImage, err := assets.LevelImage(config.Assets.Level)
	if err != nil {
		return err
	}
	scale := arena.WorldScale()

	stepper := interp.NewStepper(config.Sim.TickRate, interp.MonotonicTime{})
	stepper.SetMaxFrame(config.Interp.MaxFrame)

	scene := scenes.NewArenaScene(systems.SessionData{
		Arena:   arena,
		Stepper: stepper,
		Log:     zlog,
		Level:   ebiten.NewImageFromImage(levelImage),
		Car:     systems.NewCarImage(int(config.Sim.CarWidth/scale), int(config.Sim.CarLength/scale)),
	})

	// One Update per displayed frame; the stepper decides how many ticks run.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	zlog.Info("starting",
		zap.String("level", config.Assets.Level),
		zap.Int("tick_rate", config.Sim.TickRate),
		zap.Bool("interpolation", config.Interp.Enabled),
	)
	return ebiten.RunGame(&Game{scene: scene})
}
