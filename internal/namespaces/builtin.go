package namespaces

import "github.com/custodia-labs/hgurn/internal/core/domain"

// Builtin returns the definitions of the built-in namespaces in
// registration order. Order matters: URL matching takes the first hit.
func Builtin() []domain.NamespaceDefinition {
	return []domain.NamespaceDefinition{
		{
			ID:      "geonames",
			Kind:    domain.KindNumeric,
			BaseURL: "http://sws.geonames.org/",
			Hosts:   []string{"sws.geonames.org", "www.geonames.org", "geonames.org"},
		},
		{
			ID:      "tgn",
			Kind:    domain.KindHierarchical,
			BaseURL: "http://vocab.getty.edu/tgn/",
			Segment: "term",
		},
		{
			ID:      "dbpedia",
			Kind:    domain.KindResourcePath,
			BaseURL: "http://dbpedia.org/",
			Markers: []string{"resource/", "page/"},
		},
		{
			ID:      "wikidata",
			Kind:    domain.KindResourcePath,
			BaseURL: "http://www.wikidata.org/",
			Markers: []string{"entity/", "wiki/"},
		},
		{
			ID:      "pleiades",
			Kind:    domain.KindResourcePath,
			BaseURL: "http://pleiades.stoa.org/",
			Markers: []string{"places/"},
		},
		{
			ID:      "kloeke",
			Kind:    domain.KindQueryParam,
			BaseURL: "http://www.meertens.knaw.nl/kloeke/index.php",
			Param:   "kloekenummer",
		},
		{
			ID:      "gemeentegeschiedenis",
			Kind:    domain.KindResourcePath,
			BaseURL: "http://www.gemeentegeschiedenis.nl/",
			Markers: []string{"gemeentenaam/"},
		},
	}
}
