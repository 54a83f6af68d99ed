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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidParish indicates a parish record failed validation.
	ErrInvalidParish = errors.New("invalid parish record")

	// ErrEmptyParishID indicates the parish ID field is empty.
	ErrEmptyParishID = errors.New("parish id cannot be empty")

	// ErrEmptyParishTitle indicates the parish display name is empty.
	ErrEmptyParishTitle = errors.New("parish title cannot be empty")

	// ErrInvalidCase indicates an archive case failed validation.
	ErrInvalidCase = errors.New("invalid archive case")

	// ErrEmptyCaseOpys indicates the case inventory number is empty.
	ErrEmptyCaseOpys = errors.New("case opys cannot be empty")

	// ErrEmptyCaseSprava indicates the case number is empty.
	ErrEmptyCaseSprava = errors.New("case sprava cannot be empty")

	// ErrEmptyCaseName indicates the case title is empty.
	ErrEmptyCaseName = errors.New("case name cannot be empty")

	// ErrRelativeCaseURL indicates the case document URL is not absolute.
	ErrRelativeCaseURL = errors.New("case url must be absolute")

	// ErrParishNotFound indicates a requested parish id has no match.
	ErrParishNotFound = errors.New("parish not found")
)
