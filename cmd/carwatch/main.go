// Command carwatch runs the car arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/tickblend/assets"
	"github.com/automoto/tickblend/config"
	"github.com/automoto/tickblend/shared/carsim"
	"github.com/automoto/tickblend/shared/interp"
	"github.com/automoto/tickblend/shared/logger"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a .toml or .yaml config file")
	level := flag.String("level", "", "Level to load (overrides config)")
	logPath := flag.String("log", "carwatch.log", "Log file; the terminal is used for drawing")
	cellPx := flag.Int("cell", 0, "Level pixels per character cell (overrides config)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *level != "" {
		config.Assets.Level = *level
	}
	if *cellPx > 0 {
		config.Render.GridCellPx = *cellPx
	}

	log, err := logger.New(config.Logging.Level, config.Logging.Format, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Error("carwatch exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "carwatch: %v\n", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	arena, err := carsim.Load(assets.FS(), config.Assets.Level, config.Assets.ScriptsDir, log)
	if err != nil {
		return err
	}
	defer arena.Close()

	if _, err := arena.SpawnLevel(); err != nil {
		return fmt.Errorf("spawn level cars: %w", err)
	}
	arena.Interp().Blend().SetEnabled(config.Interp.Enabled)

	stepper := interp.NewStepper(config.Sim.TickRate, interp.MonotonicTime{})
	stepper.SetMaxFrame(config.Interp.MaxFrame)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	log.Info("watching",
		zap.String("level", arena.Level().Name),
		zap.Int("cars", len(arena.ActiveSlots())),
		zap.Int("tick_rate", stepper.TickRate()),
	)
	newWatcher(screen, arena, stepper, config.Render.GridCellPx, log).run()
	return nil
}
