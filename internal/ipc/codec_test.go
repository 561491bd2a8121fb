package ipc

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadMessageRoundTrip(t *testing.T) {
	limit := 10
	mode := EmptyModeFrequency
	req := Request{Cmd: CmdSearch, Roots: []string{"/a", "/b"}, Query: "term", Limit: &limit, EmptyMode: &mode}

	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, req))
	require.Contains(t, buf.String(), "\n")

	var decoded Request
	require.NoError(t, ReadMessage(bufio.NewReader(&buf), &decoded))
	require.Equal(t, req.Cmd, decoded.Cmd)
	require.Equal(t, req.Roots, decoded.Roots)
	require.Equal(t, req.Query, decoded.Query)
	require.NotNil(t, decoded.Limit)
	require.Equal(t, *req.Limit, *decoded.Limit)
	require.NotNil(t, decoded.EmptyMode)
	require.Equal(t, *req.EmptyMode, *decoded.EmptyMode)
}

func TestWriteReadMessageMultipleLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, Request{Cmd: CmdStatus}))
	require.NoError(t, WriteMessage(&buf, Request{Cmd: CmdShutdown}))

	reader := bufio.NewReader(&buf)
	var first, second Request
	require.NoError(t, ReadMessage(reader, &first))
	require.NoError(t, ReadMessage(reader, &second))
	require.Equal(t, CmdStatus, first.Cmd)
	require.Equal(t, CmdShutdown, second.Cmd)
}

func TestReadMessageOnEmptyReaderErrors(t *testing.T) {
	var buf bytes.Buffer
	var decoded Request
	require.Error(t, ReadMessage(bufio.NewReader(&buf), &decoded))
}

func TestResponseConstructors(t *testing.T) {
	require.Equal(t, TypeOk, OkResponse().Type)

	err := ErrorResponse("boom")
	require.Equal(t, TypeError, err.Type)
	require.Equal(t, "boom", err.Message)

	entries := EntriesResponse(nil)
	require.Equal(t, TypeEntries, entries.Type)

	status := StatusResponse(3)
	require.Equal(t, TypeStatus, status.Type)
	require.Equal(t, 3, status.HasIndexCount)
}
