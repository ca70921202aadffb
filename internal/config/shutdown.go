package config

import (
	"os"
	"os/signal"
	"syscall"
)

// StartListeningForShutdownSignal exits the process on a second
// interrupt so a hanging graceful shutdown can be skipped by hand.
func StartListeningForShutdownSignal() {
	go func() {
		quit := make(chan os.Signal, 2)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		<-quit
		<-quit

		log.Warn("Second shutdown signal received, exiting immediately")
		os.Exit(1)
	}()
}
