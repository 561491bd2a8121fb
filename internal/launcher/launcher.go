// Package launcher turns a resolved entry.EntryRecord (or one of its
// actions) into a spawned process, tokenizing its Exec line the way a
// shell would and stripping freedesktop field codes, grounded on the
// teacher's use of mattn/go-shellwords for exec-line tokenizing elsewhere
// in the example pack.
package launcher

import (
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
)

// terminalCandidates is the ordered list of terminal emulators tried when
// an entry requests Terminal=true, falling back to xterm.
var terminalCandidates = []string{"foot", "kitty", "alacritty", "wezterm", "xterm"}

// fieldCodes are the freedesktop Exec key placeholders that must be
// stripped (we never substitute file/URL arguments; launches are
// argument-less).
var fieldCodes = map[string]bool{
	"%f": true, "%F": true, "%u": true, "%U": true,
	"%i": true, "%c": true, "%k": true, "%d": true, "%D": true,
	"%n": true, "%N": true, "%v": true, "%m": true,
}

// ErrActionNotFound indicates the requested action id does not exist on the
// entry. Callers format the user-facing message themselves (it needs the
// normalized desktop id, which this package does not know), so this is a
// bare sentinel rather than a pre-formatted error.
var ErrActionNotFound = errors.New("unknown action")

// ResolveExec picks the exec line to run for e, optionally overridden by
// the named action, and returns the argv to execute with field codes
// stripped.
func ResolveExec(e *entry.EntryRecord, actionID *string) ([]string, error) {
	execLine := e.Exec

	if actionID != nil {
		var action *entry.ActionRecord
		for i := range e.Actions {
			if e.Actions[i].ID == *actionID {
				action = &e.Actions[i]
				break
			}
		}
		if action == nil {
			return nil, ErrActionNotFound
		}
		if action.Exec != nil {
			execLine = action.Exec
		}
	}

	if execLine == nil || strings.TrimSpace(*execLine) == "" {
		return nil, errors.Errorf("entry %q has no exec command", e.ID)
	}

	argv, err := shellwords.Parse(*execLine)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to tokenize exec line %q", *execLine)
	}

	out := argv[:0:0]
	for _, tok := range argv {
		if fieldCodes[tok] {
			continue
		}
		tok = strings.ReplaceAll(tok, "%%", "%")
		out = append(out, tok)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("exec line %q tokenized to nothing", *execLine)
	}
	return out, nil
}

// pickTerminal returns the first available terminal emulator binary found
// on PATH.
func pickTerminal() string {
	for _, candidate := range terminalCandidates {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return "xterm"
}

// Launch spawns e (or one of its actions), detached from the launching
// process, and returns once the process has started (it does not wait for
// completion).
func Launch(e *entry.EntryRecord, actionID *string) error {
	argv, err := ResolveExec(e, actionID)
	if err != nil {
		return err
	}

	var cmd *exec.Cmd
	if e.Terminal {
		term := pickTerminal()
		args := append([]string{"-e"}, argv...)
		cmd = exec.Command(term, args...)
	} else {
		cmd = exec.Command(argv[0], argv[1:]...)
	}

	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Dir = os.Getenv("HOME")

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "unable to start %q", strings.Join(argv, " "))
	}

	// Detach: reap the process asynchronously without blocking the caller.
	go func() { _ = cmd.Wait() }()

	return nil
}

// TryExecAvailable reports whether e's TryExec binary (if any) is present
// on PATH. An empty TryExec is always considered available.
func TryExecAvailable(e *entry.EntryRecord) bool {
	if e.TryExec == nil || strings.TrimSpace(*e.TryExec) == "" {
		return true
	}
	_, err := exec.LookPath(*e.TryExec)
	return err == nil
}
