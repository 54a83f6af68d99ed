package core

import "encoding/json"

// BookCategory names a class of archival record books kept by a parish.
type BookCategory string

const (
	BookBirths              BookCategory = "births"
	BookMarriages           BookCategory = "marriages"
	BookDeaths              BookCategory = "deaths"
	BookParishLists         BookCategory = "parish_lists"
	BookDivorces            BookCategory = "divorces"
	BookMarriageInspections BookCategory = "marriage_inspections"
)

// BookCategories lists the categories in their display order.
var BookCategories = []BookCategory{
	BookBirths,
	BookMarriages,
	BookDeaths,
	BookParishLists,
	BookDivorces,
	BookMarriageInspections,
}

// legacyBookCategories maps category names found in older catalog exports
// to their current equivalents. Applied at load time only.
var legacyBookCategories = map[string]BookCategory{
	"marriage_terminations": BookDivorces,
	"marriage_inquiries":    BookMarriageInspections,
}

// BookRecord locates a single record book within the archive's
// fond/opys/sprava classification. URL and Title are filled in when the
// book can be joined against the scraped case listing.
type BookRecord struct {
	Fond  string `json:"fond"`
	Opys  string `json:"opys"`
	Book  string `json:"book"`
	Years string `json:"years"`
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
}

// Books holds a parish's record books keyed by category.
type Books map[BookCategory][]BookRecord

// UnmarshalJSON decodes the books object, remapping legacy category names
// to their current equivalents.
func (b *Books) UnmarshalJSON(data []byte) error {
	var raw map[string][]BookRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	books := make(Books, len(raw))
	for name, records := range raw {
		category := BookCategory(name)
		if remapped, ok := legacyBookCategories[name]; ok {
			category = remapped
		}
		books[category] = append(books[category], records...)
	}
	*b = books
	return nil
}

// CatalogParish is a parish entry of the flat catalog artifact, carrying
// the per-category book records and the denormalized location names.
type CatalogParish struct {
	ID               string `json:"id"`
	Title            string `json:"parafiya"`
	Religion         string `json:"religion"`
	Settlements      string `json:"settlements"`
	ChurchSettlement string `json:"church_settlement"`
	HromadaName      string `json:"hromada_name,omitempty"`
	DistrictName     string `json:"district_name,omitempty"`
	RegionName       string `json:"region_name,omitempty"`
	ModernSettlement string `json:"modern_settlement_name,omitempty"`
	Books            Books  `json:"books,omitempty"`
}
