// Copyright 2025 Oleh Yurkevych
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sync/atomic"

	"github.com/yurkevych/parafii/core"
	"github.com/yurkevych/parafii/storage"
)

// State is the current phase of a sync run.
type State int32

const (
	// StateIdle means no run is in progress.
	StateIdle State = iota
	// StateFetching means the archive pages are being downloaded and parsed.
	StateFetching
	// StateReconciling means the extracted listing is being compared against
	// the stored artifact and written if it changed.
	StateReconciling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateReconciling:
		return "reconciling"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// CaseFetcher extracts the current case listing from the archive.
type CaseFetcher interface {
	FetchCases(ctx context.Context) ([]core.ArchiveCase, error)
}

// Job reconciles the scraped case listing with the stored artifact.
// A Job is reusable but runs at most once at a time.
type Job struct {
	fetcher CaseFetcher
	store   storage.FondStore
	path    string
	logger  *slog.Logger
	state   atomic.Int32
}

// JobOption configures a Job.
type JobOption func(*Job) error

// WithJobLogger sets a custom logger.
// Default is slog.Default().
func WithJobLogger(logger *slog.Logger) JobOption {
	return func(j *Job) error {
		if logger == nil {
			logger = slog.Default()
		}
		j.logger = logger
		return nil
	}
}

// NewJob creates a sync job writing the listing to storePath in the store.
func NewJob(fetcher CaseFetcher, store storage.FondStore, storePath string, opts ...JobOption) (*Job, error) {
	if fetcher == nil {
		return nil, errors.New("scrape: fetcher is required")
	}
	if store == nil {
		return nil, errors.New("scrape: store is required")
	}
	if storePath == "" {
		return nil, storage.ErrEmptyPath
	}

	j := &Job{
		fetcher: fetcher,
		store:   store,
		path:    storePath,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(j); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// State reports the current phase of the job.
func (j *Job) State() State {
	return State(j.state.Load())
}

// EncodeListing serializes cases into the canonical artifact form. The
// encoding is byte-stable for a given listing, which is what lets the job
// detect no-op runs by comparing bytes.
func EncodeListing(cases []core.ArchiveCase) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cases); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Run performs one fetch-and-reconcile cycle. It returns ErrJobRunning if
// a run is already in progress, ErrEmptyExtraction when the archive
// yielded no cases, and storage.ErrRevisionConflict when the artifact was
// modified concurrently; a conflicting run is not retried, the next
// scheduled run picks up the fresh revision.
func (j *Job) Run(ctx context.Context) error {
	if !j.state.CompareAndSwap(int32(StateIdle), int32(StateFetching)) {
		return ErrJobRunning
	}
	defer j.state.Store(int32(StateIdle))

	cases, err := j.fetcher.FetchCases(ctx)
	if err != nil {
		return fmt.Errorf("fetch cases: %w", err)
	}
	if len(cases) == 0 {
		j.logger.Error("sync aborted, extraction produced no cases", "path", j.path)
		return ErrEmptyExtraction
	}
	for i := range cases {
		if err := core.ValidateCase(&cases[i]); err != nil {
			return fmt.Errorf("extracted case %d: %w", i, err)
		}
	}

	content, err := EncodeListing(cases)
	if err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}

	j.state.Store(int32(StateReconciling))

	revision := ""
	existing, rev, err := j.store.Get(ctx, j.path)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		j.logger.Info("artifact not found, will create", "path", j.path)
	case err != nil:
		return fmt.Errorf("read artifact: %w", err)
	default:
		if bytes.Equal(existing, content) {
			j.logger.Info("no changes, skipping update", "path", j.path, "caseCount", len(cases))
			return nil
		}
		revision = rev
	}

	verb := "update"
	if revision == "" {
		verb = "create"
	}
	message := fmt.Sprintf("chore: %s %s (automated)", verb, path.Base(j.path))

	newRevision, err := j.store.Put(ctx, j.path, content, revision, message)
	if err != nil {
		if errors.Is(err, storage.ErrRevisionConflict) {
			j.logger.Warn("artifact changed concurrently, leaving it for the next run",
				"path", j.path, "revision", revision)
		}
		return fmt.Errorf("write artifact: %w", err)
	}

	j.logger.Info("artifact synced",
		"path", j.path, "caseCount", len(cases), "revision", newRevision)
	return nil
}
