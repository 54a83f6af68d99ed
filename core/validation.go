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

import (
	"fmt"
	"net/url"
)

// ValidateParishRecord validates a flattened parish record.
//
// Validation rules:
//   - ID must not be empty
//   - DisplayName must not be empty
//
// NOT validated:
//   - Religion (unknown confessions are indexed as-is)
//   - Settlements (an all-qualifier raw value legitimately yields none)
//   - Location names (empty for the OtherSentinel hierarchy)
func ValidateParishRecord(record *ParishRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidParish)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidParish, ErrEmptyParishID)
	}

	if record.DisplayName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidParish, ErrEmptyParishTitle)
	}

	return nil
}

// ValidateCase validates a scraped archive case.
//
// Validation rules:
//   - Opys, Sprava and Name must not be empty
//   - URL must parse as an absolute URL
func ValidateCase(c *ArchiveCase) error {
	if c == nil {
		return fmt.Errorf("%w: case is nil", ErrInvalidCase)
	}

	if c.Opys == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCase, ErrEmptyCaseOpys)
	}

	if c.Sprava == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCase, ErrEmptyCaseSprava)
	}

	if c.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCase, ErrEmptyCaseName)
	}

	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidCase, ErrRelativeCaseURL, c.URL)
	}

	return nil
}
