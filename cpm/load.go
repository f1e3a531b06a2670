// This file implements the TOML job-file loader.
package cpm

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// ErrEmptyJobFile indicates a job file that declares no [[job]] tables.
var ErrEmptyJobFile = errors.New("cpm: job file declares no jobs")

// jobFile mirrors the TOML document layout: a list of [[job]] tables.
type jobFile struct {
	Jobs []Job `toml:"job"`
}

// Load decodes a TOML job file into the job list Plan consumes.
// Durations and successor ranges are validated by Plan, not here.
func Load(r io.Reader) ([]Job, error) {
	var f jobFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("cpm: decoding job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrEmptyJobFile
	}

	return f.Jobs, nil
}
