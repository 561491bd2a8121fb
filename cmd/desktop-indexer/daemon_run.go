package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	idaemon "github.com/Jeremis70/desktop-indexer/internal/daemon"
	"github.com/Jeremis70/desktop-indexer/internal/filelock"
	"github.com/Jeremis70/desktop-indexer/internal/xdg"
)

func daemonRunMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	if idaemon.AlreadyRunning(cmdContext(), xdg.SocketPath()) {
		return errors.New("another daemon instance is already running")
	}

	lock, err := filelock.Acquire(xdg.LockPath(), 0o600)
	if err != nil {
		return errors.Wrap(err, "unable to acquire daemon lock")
	}
	defer lock.Release()

	if err := os.MkdirAll(xdg.CacheDir(), 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(xdg.DataDir(), 0o755); err != nil {
		return err
	}

	cfg := loadConfig()

	server := idaemon.NewServer(idaemon.Options{
		SocketPath:     xdg.SocketPath(),
		CacheDir:       xdg.CacheDir(),
		UsagePath:      usagePath(),
		RespectTryExec: respectTryExec(cfg),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	return server.Run(ctx)
}

var daemonRunCommand = &cobra.Command{
	Use:    "run-daemon",
	Short:  "Runs the daemon in the foreground",
	Hidden: true,
	Run:    cmdutil.Mainify(daemonRunMain),
}
