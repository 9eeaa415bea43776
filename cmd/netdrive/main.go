// Command netdrive joins a running car server and drives a car with fixed
// controls, logging how many world snapshots arrive.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/tickblend/config"
	"github.com/automoto/tickblend/network"
	"github.com/automoto/tickblend/shared/logger"
	"github.com/automoto/tickblend/shared/protocol"
	"go.uber.org/zap"
)

const reportInterval = time.Second

func main() {
	address := flag.String("addr", fmt.Sprintf("localhost:%d", config.Server.Port), "Server host:port")
	name := flag.String("name", "netdrive", "Player name")
	version := flag.String("version", "", "Client version sent with the join request")
	throttle := flag.Float64("throttle", 1, "Throttle in [-1, 1]")
	steer := flag.Float64("steer", 0.3, "Steer in [-1, 1]; positive turns anticlockwise")
	rate := flag.Duration("rate", 100*time.Millisecond, "Interval between drive messages")
	duration := flag.Duration("for", 0, "Stop after this long (0 = until interrupted)")
	flag.Parse()

	log, err := logger.New(config.Logging.Level, config.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatal("register components", zap.Error(err))
	}

	client := network.NewClient(log)
	client.Connect(*address, *version, *name)
	defer client.Disconnect()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	drive := time.NewTicker(*rate)
	defer drive.Stop()
	report := time.NewTicker(reportInterval)
	defer report.Stop()

	for {
		select {
		case <-drive.C:
			if client.State() != network.StateJoined {
				continue
			}
			if err := client.Drive(*throttle, *steer); err != nil {
				log.Warn("drive", zap.Error(err))
			}
		case <-report.C:
			log.Info("status",
				zap.Stringer("state", client.State()),
				zap.Uint64("snapshots", client.Snapshots()),
			)
			if client.State() == network.StateError {
				log.Error("giving up", zap.Error(client.LastError()))
				return
			}
		case <-deadline:
			leave(client, log)
			return
		case <-stop:
			leave(client, log)
			return
		}
	}
}

func leave(client *network.Client, log *zap.Logger) {
	if client.State() != network.StateJoined {
		return
	}
	if err := client.Leave(); err != nil {
		log.Warn("leave", zap.Error(err))
	}
}
