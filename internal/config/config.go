// Package config loads the optional on-disk JSONC configuration file,
// validating it against an embedded JSON Schema before use. Grounded on
// the jsonc-decode-then-schema-validate pattern used elsewhere in the
// example pack (apps/cli/internal/jsonc + apps/cli/schemas).
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"sync"

	jsonc "github.com/muhammadmuzzammil1998/jsonc"
	"github.com/pkg/errors"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Jeremis70/desktop-indexer/internal/logging"
)

var log = logging.Root.Sublogger("config")

//go:embed schema.json
var schemaData []byte

const schemaURL = "mem://desktop-indexer/config.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = errors.Wrap(err, "unable to decode embedded config schema")
			return
		}
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = errors.Wrap(err, "unable to register embedded config schema")
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Config is the optional, user-editable indexer configuration.
type Config struct {
	ExtraRoots     []string `json:"extra_roots,omitempty"`
	EmptyMode      string   `json:"empty_mode,omitempty"`
	RespectTryExec bool     `json:"respect_try_exec,omitempty"`
	Timing         bool     `json:"timing,omitempty"`
}

// Default returns the configuration used when no config file is present or
// the file fails to validate: empty-query mode "recency", everything else
// at its zero value.
func Default() Config {
	return Config{EmptyMode: "recency"}
}

// Load reads and validates the JSONC configuration file at path. Any
// failure yields Default(): a missing or unreadable file silently, invalid
// JSONC or a schema violation with a logged warning, per the "transient
// I/O silently ignored" policy applied throughout this indexer.
func Load(path string) Config {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	clean := jsonc.ToJSON(raw)

	var decoded map[string]any
	if err := json.Unmarshal(clean, &decoded); err != nil {
		log.Warn(errors.Wrapf(err, "parsing config %s", path))
		return Default()
	}

	s, err := schema()
	if err != nil {
		log.Warn(errors.Wrap(err, "compiling config schema"))
		return Default()
	}
	if err := s.Validate(decoded); err != nil {
		log.Warn(errors.Wrapf(err, "config %s failed validation", path))
		return Default()
	}

	cfg := Default()
	if err := json.Unmarshal(clean, &cfg); err != nil {
		log.Warn(errors.Wrapf(err, "decoding config %s", path))
		return Default()
	}
	if cfg.EmptyMode != "recency" && cfg.EmptyMode != "frequency" {
		cfg.EmptyMode = "recency"
	}
	return cfg
}
