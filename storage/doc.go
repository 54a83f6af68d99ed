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


// Package storage provides the artifact storage abstraction for parafii.
//
// The sync job persists scraped archive listings as versioned artifacts.
// This package defines the FondStore interface that decouples the job from
// the concrete store, so a GitHub-backed repository file and a local
// BadgerDB database are interchangeable.
//
// # Revisions
//
// Every stored artifact carries an opaque revision token. Get returns the
// current token alongside the content; Put takes the token the caller read
// and fails with ErrRevisionConflict when the artifact changed underneath
// it. An empty token on Put means "create", and fails if the artifact
// already exists. What the token actually is depends on the backend (a git
// blob SHA for GitHub, a content hash for BadgerDB) and callers must not
// interpret it.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.FondStore interface rather than
// the concrete type, so consumers cannot couple to backend specifics and
// tests can substitute fakes without modification.
//
// # Thread Safety
//
// All store implementations must be safe for concurrent use.
package storage
