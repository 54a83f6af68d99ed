// Copyright 2025 Oleh Yurkevych
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import "errors"

var (
	// ErrNegativeLimit is returned by WithLimit for limits below zero.
	ErrNegativeLimit = errors.New("search: result limit must not be negative")

	// ErrNilCorpus is returned by NewSearcher when no records are supplied.
	ErrNilCorpus = errors.New("search: corpus must not be nil")

	// ErrNilMonitor is returned by WithMonitor for a nil monitor.
	ErrNilMonitor = errors.New("search: monitor must not be nil")

	// ErrNilLogger is returned by WithLogger for a nil logger.
	ErrNilLogger = errors.New("search: logger must not be nil")
)
