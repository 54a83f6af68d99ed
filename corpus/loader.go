package corpus

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yurkevych/parafii/core"
)

// DefaultMatchFond is the fond whose catalog books are joined against the
// scraped case listing. Books of other fonds have no digitized documents
// in the listing and are left untouched.
const DefaultMatchFond = "Р–740"

// LoadTree decodes the nested parish tree artifact. Malformed input is an
// error at this boundary; callers that want the fail-soft behavior degrade
// to an empty corpus themselves.
func LoadTree(r io.Reader) ([]core.Region, error) {
	var tree []core.Region
	if err := json.NewDecoder(r).Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode parish tree: %w", err)
	}
	return tree, nil
}

// LoadCatalog decodes the flat parish catalog artifact. Legacy book
// category names are remapped during decoding.
func LoadCatalog(r io.Reader) ([]core.CatalogParish, error) {
	var catalog []core.CatalogParish
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}

// LoadFondListing decodes the scraped case listing artifact.
func LoadFondListing(r io.Reader) ([]core.ArchiveCase, error) {
	var listing []core.ArchiveCase
	if err := json.NewDecoder(r).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode fond listing: %w", err)
	}
	return listing, nil
}

// Matcher joins catalog book records against the scraped case listing,
// filling in the viewable document URL and the case title for books of the
// designated fond.
type Matcher struct {
	// Fond designates which books are eligible for enrichment.
	// Defaults to DefaultMatchFond when empty.
	Fond string
}

// Enrich sets URL and Title on every book of the designated fond whose
// (opys, book) pair matches a listing entry's (opys, sprava). Books with
// no match are left as they are.
func (m Matcher) Enrich(parish *core.CatalogParish, listing []core.ArchiveCase) {
	if parish == nil || len(listing) == 0 {
		return
	}
	fond := m.Fond
	if fond == "" {
		fond = DefaultMatchFond
	}

	for category, books := range parish.Books {
		for i := range books {
			if books[i].Fond != fond {
				continue
			}
			for _, c := range listing {
				if c.Opys == books[i].Opys && c.Sprava == books[i].Book {
					books[i].URL = c.URL
					books[i].Title = c.Name
					break
				}
			}
		}
		parish.Books[category] = books
	}
}
