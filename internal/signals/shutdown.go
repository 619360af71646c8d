package signals

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

func SetupSignals(runManager ports.RunManagerInterface, app *fiber.App, waitSeconds int) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		os.Interrupt,
	)

	go func() {
		s := <-sigc

		logger.Log().Info("Received shutdown signal", zap.String("signal", s.String()))

		GracefulShutdown(runManager, app, waitSeconds)
	}()
}

// GracefulShutdown lets in-flight runs drain before stopping the API. Runs
// past the deadline are abandoned, a half-pushed tag set is recoverable by
// re-running the pipeline.
func GracefulShutdown(runManager ports.RunManagerInterface, app *fiber.App, waitSeconds int) {
	deadline := time.After(time.Duration(waitSeconds) * time.Second)

	for {
		active := runManager.ActiveCount()
		if active == 0 {
			logger.Log().Info("No active runs")
			break
		}

		logger.Log().Info(fmt.Sprintf("Waiting for %d active runs to finish...", active))

		select {
		case <-deadline:
			logger.Log().Warn("Shutdown deadline reached, abandoning active runs", zap.Int("active", active))
			app.Shutdown()
			os.Exit(1)
		case <-time.After(time.Second):
		}
	}

	logger.Log().Info("Quitting...")
	app.Shutdown()
	os.Exit(0)
}
