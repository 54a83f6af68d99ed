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


// Package scrape fetches the digitized case listing from the regional
// archive site and syncs it into a FondStore as a canonical JSON artifact.
//
// The sync job is independent of the search path: it runs on a schedule,
// fetches the opys index page, walks each opys to collect its cases, and
// writes the listing only when the extracted content actually changed.
// An extraction that yields no cases aborts the run without touching the
// stored artifact, so a broken page layout never erases a good listing.
package scrape
