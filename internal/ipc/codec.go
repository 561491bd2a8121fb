package ipc

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// WriteMessage encodes v as one line of JSON terminated by '\n'.
func WriteMessage(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "unable to encode message")
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadMessage reads one newline-delimited JSON line from r and decodes it
// into v.
func ReadMessage(r *bufio.Reader, v any) error {
	line, err := r.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return err
	}
	if err := json.Unmarshal(line, v); err != nil {
		return errors.Wrap(err, "unable to decode message")
	}
	return nil
}
