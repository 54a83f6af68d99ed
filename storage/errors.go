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


package storage

import "errors"

var (
	// ErrNotFound indicates that the requested artifact does not exist.
	ErrNotFound = errors.New("artifact not found")

	// ErrRevisionConflict indicates that the artifact changed since the
	// revision the caller read.
	ErrRevisionConflict = errors.New("revision conflict")

	// ErrAlreadyExists indicates a create of an artifact that is already
	// present.
	ErrAlreadyExists = errors.New("artifact already exists")

	// ErrEmptyPath indicates an empty artifact path.
	ErrEmptyPath = errors.New("artifact path is empty")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")
)
