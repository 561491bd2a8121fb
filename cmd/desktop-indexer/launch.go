package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
	"github.com/Jeremis70/desktop-indexer/internal/launcher"
	"github.com/Jeremis70/desktop-indexer/internal/usage"
)

var launchConfiguration struct {
	action string
}

func launchMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errors.New("expected exactly one application id")
	}
	id := arguments[0]

	cfg := loadConfig()
	roots := scanRoots(cfg)

	var action *string
	if launchConfiguration.action != "" {
		action = &launchConfiguration.action
	}

	req := ipc.Request{Cmd: ipc.CmdLaunch, Roots: roots, DesktopID: id, Action: action}
	if resp, ok := tryDaemon(req); ok {
		if resp.Type == ipc.TypeError {
			return errors.New(resp.Message)
		}
		return nil
	}

	idx, err := localIndex(roots)
	if err != nil {
		log.Warn(errors.Wrap(err, "index build failed"))
		return errors.New("failed to build index")
	}

	normalizedID := id
	if len(normalizedID) > len(".desktop") && normalizedID[len(normalizedID)-len(".desktop"):] == ".desktop" {
		normalizedID = normalizedID[:len(normalizedID)-len(".desktop")]
	}

	var target *entry.EntryRecord
	for _, e := range idx.Entries {
		if e.ID == normalizedID {
			target = e
			break
		}
	}
	if target == nil {
		return errors.Errorf("Unknown desktop-id: %s", normalizedID)
	}
	if respectTryExec(cfg) && !launcher.TryExecAvailable(target) {
		return errors.Errorf("application's try_exec binary is unavailable: %s", target.ID)
	}

	if err := launcher.Launch(target, action); err != nil {
		if errors.Is(err, launcher.ErrActionNotFound) {
			return errors.Errorf("Unknown action '%s' for id=%s", *action, normalizedID)
		}
		return err
	}

	store := usage.Load(usagePath())
	store.Increment(target.ID, time.Now())
	store.Flush()

	return nil
}

var launchCommand = &cobra.Command{
	Use:   "launch <id>",
	Short: "Launch an application by its id",
	Run:   cmdutil.Mainify(launchMain),
}

func init() {
	flags := launchCommand.Flags()
	flags.SortFlags = false
	flags.StringVar(&launchConfiguration.action, "action", "", "Desktop action id to launch instead of the default Exec")
}
