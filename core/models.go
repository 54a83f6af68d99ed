package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// OtherSentinel is the name of the synthetic hierarchy node that holds
// parishes outside the normal administrative hierarchy. It is excluded from
// region-based navigation but its parishes are still indexed for search.
const OtherSentinel = "Інші"

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. Used for parish records that come without a stable identifier, so
// that identical content always produces the same ID.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Region is the top level of the parish tree artifact.
type Region struct {
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

// District is the second level of the parish tree artifact.
type District struct {
	Name     string    `json:"name"`
	Hromadas []Hromada `json:"hromadas"`
}

// Hromada is the modern community level of the parish tree artifact.
type Hromada struct {
	Name        string       `json:"name"`
	Settlements []Settlement `json:"settlements"`
}

// Settlement is a modern settlement node holding the parishes scoped to it.
type Settlement struct {
	Name    string   `json:"name"`
	Parafii []Parish `json:"parafii"`
}

// Parish is a leaf of the parish tree artifact as stored on disk.
// Settlements is the raw, delimiter-separated list of historical settlements
// the parish served.
type Parish struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ChurchSettlement string `json:"church_settlement"`
	Religion         string `json:"religion"`
	Settlements      string `json:"settlements"`
}

// ParishRecord is a flattened, search-facing parish. It is an immutable
// value: Settlements is always derived from SettlementsRaw by the settlement
// normalizer and never stored independently, and the location names are
// empty when the source node is the OtherSentinel.
type ParishRecord struct {
	ID                string
	DisplayName       string
	Religion          Religion
	ChurchSettlement  string
	SettlementsRaw    string
	Settlements       []string
	PrimarySettlement string
	RegionName        string
	DistrictName      string
	HromadaName       string
}

// MatchField identifies which searchable field produced a match.
type MatchField string

const (
	// MatchFieldChurchSettlement is the parish's church settlement name.
	MatchFieldChurchSettlement MatchField = "church_settlement"
	// MatchFieldSettlement is the enclosing modern settlement name.
	MatchFieldSettlement MatchField = "settlement"
	// MatchFieldSettlements is an entry of the derived settlements list.
	MatchFieldSettlements MatchField = "settlements"
)

// SearchMatch is a single field-level match produced by the fuzzy engine.
// A parish may contribute several of these, one per matching field.
// RawScore is distance-like: 0 is a perfect match, 1 the worst accepted.
type SearchMatch struct {
	Parish          ParishRecord
	Field           MatchField
	MatchedValue    string
	RawScore        float64
	StartsWithQuery bool
}

// SearchResult is the deduplicated, ranked output unit: one per unique
// parish. FinalScore is distance-like; lower is better.
type SearchResult struct {
	Parish          ParishRecord
	FinalScore      float64
	MatchedField    MatchField
	MatchedValue    string
	StartsWithQuery bool
}

// ArchiveCase is one digitized case discovered by the archive scraper.
// The JSON field order is part of the canonical serialization the sync job
// compares byte-for-byte against the persisted artifact.
type ArchiveCase struct {
	Opys   string `json:"opys"`
	Sprava string `json:"sprava"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}
