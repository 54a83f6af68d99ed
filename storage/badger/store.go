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


// Package badger implements storage.FondStore on BadgerDB for local and
// offline use. The revision token is a hash of the artifact content.
package badger

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-crypt/x/blake2b"

	"github.com/yurkevych/parafii/storage"
)

// storedArtifact is the value persisted per artifact path.
type storedArtifact struct {
	Content   []byte    `json:"content"`
	Revision  string    `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a FondStore keeping artifacts in a BadgerDB database.
type Store struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.FondStore = (*Store)(nil)

// NewStore creates a store over an open backend. The caller keeps
// ownership of the backend; closing the store closes it.
func NewStore(backend *Backend) (storage.FondStore, error) {
	if backend == nil {
		return nil, errors.New("badger: backend is required")
	}
	return &Store{
		backend: backend,
		logger:  slog.Default(),
	}, nil
}

// contentRevision derives the revision token from the artifact bytes.
// Identical content always yields the same token.
func contentRevision(content []byte) string {
	h, _ := blake2b.New(16, nil)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves an artifact and its revision by path.
func (s *Store) Get(ctx context.Context, path string) ([]byte, string, error) {
	if s.backend.IsClosed() {
		return nil, "", storage.ErrStorageClosed
	}
	if path == "" {
		return nil, "", storage.ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	var artifact storedArtifact
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeArtifactKey(path))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("get %s: %w", path, storage.ErrNotFound)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &artifact)
		})
	}, false)
	if err != nil {
		return nil, "", err
	}

	return artifact.Content, artifact.Revision, nil
}

// Put creates or updates an artifact. The revision check and the write
// happen in one transaction. message is logged but not persisted, as the
// backend keeps no change history.
func (s *Store) Put(ctx context.Context, path string, content []byte, revision, message string) (string, error) {
	if s.backend.IsClosed() {
		return "", storage.ErrStorageClosed
	}
	if path == "" {
		return "", storage.ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := makeArtifactKey(path)
	newRevision := contentRevision(content)

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			if revision != "" {
				return fmt.Errorf("put %s: %w", path, storage.ErrNotFound)
			}
		case err != nil:
			return err
		default:
			if revision == "" {
				return fmt.Errorf("put %s: %w", path, storage.ErrAlreadyExists)
			}
			var existing storedArtifact
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &existing)
			}); err != nil {
				return err
			}
			if existing.Revision != revision {
				return fmt.Errorf("put %s: %w", path, storage.ErrRevisionConflict)
			}
		}

		value, err := json.Marshal(storedArtifact{
			Content:   content,
			Revision:  newRevision,
			UpdatedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		return tx.Set(key, value)
	}, true)
	if err != nil {
		return "", err
	}

	s.logger.Debug("stored artifact", "path", path, "revision", newRevision, "message", message)
	return newRevision, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
