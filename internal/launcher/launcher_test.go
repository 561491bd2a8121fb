package launcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
)

func TestResolveExecStripsFieldCodes(t *testing.T) {
	execLine := "firefox %U --new-window"
	e := &entry.EntryRecord{ID: "firefox", Exec: &execLine}

	argv, err := ResolveExec(e, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"firefox", "--new-window"}, argv)
}

func TestResolveExecUsesActionOverride(t *testing.T) {
	mainExec := "editor %F"
	actionExec := "editor --new-window"
	e := &entry.EntryRecord{
		ID:   "editor",
		Exec: &mainExec,
		Actions: []entry.ActionRecord{
			{ID: "new-window", Exec: &actionExec},
		},
	}

	aid := "new-window"
	argv, err := ResolveExec(e, &aid)
	require.NoError(t, err)
	require.Equal(t, []string{"editor", "--new-window"}, argv)
}

func TestResolveExecUnknownActionErrors(t *testing.T) {
	mainExec := "editor"
	e := &entry.EntryRecord{ID: "editor", Exec: &mainExec}
	aid := "missing"
	_, err := ResolveExec(e, &aid)
	require.ErrorIs(t, err, ErrActionNotFound)
}

func TestTryExecAvailableEmptyIsTrue(t *testing.T) {
	e := &entry.EntryRecord{ID: "x"}
	require.True(t, TryExecAvailable(e))
}

func TestTryExecAvailableMissingBinary(t *testing.T) {
	bogus := "definitely-not-a-real-binary-xyz"
	e := &entry.EntryRecord{ID: "x", TryExec: &bogus}
	require.False(t, TryExecAvailable(e))
}
