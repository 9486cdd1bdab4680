package namespaces

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

func builtinHandler(t *testing.T, id string) driven.NamespaceHandler {
	t.Helper()
	for _, def := range Builtin() {
		if def.ID == id {
			h, err := FromDefinition(def)
			require.NoError(t, err)
			return h
		}
	}
	t.Fatalf("no built-in namespace %q", id)
	return nil
}

func TestBuiltin_RoundTrip(t *testing.T) {
	tests := []struct {
		namespace string
		url       string
		suffix    string
	}{
		{"geonames", "http://sws.geonames.org/2758064/", "2758064"},
		{"tgn", "http://vocab.getty.edu/tgn/7006952", "7006952"},
		{"tgn", "http://vocab.getty.edu/tgn/term/352466", "term:352466"},
		{"dbpedia", "http://dbpedia.org/resource/Bussum", "Bussum"},
		{"wikidata", "http://www.wikidata.org/entity/Q47887", "Q47887"},
		{"pleiades", "http://pleiades.stoa.org/places/99003/lugdunum", "99003/lugdunum"},
		{"kloeke", "http://www.meertens.knaw.nl/kloeke/index.php?kloekenummer=A001a", "A001a"},
		{"gemeentegeschiedenis", "http://www.gemeentegeschiedenis.nl/gemeentenaam/Adorp", "Adorp"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			h := builtinHandler(t, tt.namespace)
			require.True(t, h.Matches(tt.url))

			nss, err := h.ToURNSuffix(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.suffix, nss)

			url, err := h.FromURNSuffix(nss)
			require.NoError(t, err)
			assert.Equal(t, tt.url, url)
		})
	}
}

func TestBuiltin_NonCanonicalURLs(t *testing.T) {
	tests := []struct {
		namespace string
		url       string
		suffix    string
	}{
		{"geonames", "http://sWS.geonames.org/2758064/about.rdf", "2758064"},
		{"geonames", "http://www.geonames.org/2758064/", "2758064"},
		{"geonames", "hTTp://sws.geonAmEs.org/2758064", "2758064"},
		{"geonames", "https://geonames.org/2758064/", "2758064"},
		{"tgn", "HTTP://VOCAB.GETTY.EDU/TGN/TERM/352466", "term:352466"},
		{"dbpedia", "http://dbpedia.org/page/Bussum", "Bussum"},
		{"wikidata", "http://www.wikidata.org/wiki/Q47887", "Q47887"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			h := builtinHandler(t, tt.namespace)
			assert.True(t, h.Matches(tt.url))

			nss, err := h.ToURNSuffix(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.suffix, nss)
		})
	}
}

func TestBuiltin_Matches_Rejects(t *testing.T) {
	tests := []struct {
		namespace string
		url       string
	}{
		{"geonames", "http://example.org/2758064/"},
		{"geonames", "ftp://www.geonames.org/2758064/"},
		{"tgn", "http://vocab.getty.edu/aat/300011727"},
		{"dbpedia", "http://dbpedia.org/ontology/Place"},
		{"kloeke", "http://www.meertens.knaw.nl/other"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.False(t, builtinHandler(t, tt.namespace).Matches(tt.url))
		})
	}
}

func TestNumeric_Errors(t *testing.T) {
	h := NewNumeric("http://sws.geonames.org/")

	_, err := h.ToURNSuffix("http://sws.geonames.org/about.rdf")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	_, err = h.FromURNSuffix("27a")
	assert.ErrorIs(t, err, domain.ErrInvalidURN)
}

func TestNumeric_IgnoresDigitsInBaseURL(t *testing.T) {
	h := NewNumeric("http://example.org/v2")
	assert.Equal(t, "http://example.org/v2/", h.BaseURL())

	nss, err := h.ToURNSuffix("http://example.org/v2/123")
	require.NoError(t, err)
	assert.Equal(t, "123", nss)
}

func TestHierarchical_WithoutSegment(t *testing.T) {
	h := NewHierarchical("http://vocab.getty.edu/aat/", "")

	nss, err := h.ToURNSuffix("http://vocab.getty.edu/aat/300011727")
	require.NoError(t, err)
	assert.Equal(t, "300011727", nss)

	_, err = h.ToURNSuffix("http://vocab.getty.edu/aat/")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	_, err = h.FromURNSuffix("term::1")
	assert.ErrorIs(t, err, domain.ErrInvalidURN)
}

func TestHierarchical_SegmentMustBeWholePathPart(t *testing.T) {
	h := NewHierarchical("http://vocab.getty.edu/tgn/", "term")

	tests := []struct {
		url string
		nss string
	}{
		{"http://vocab.getty.edu/tgn/xterm/352466", "352466"},
		{"http://vocab.getty.edu/tgn/terms/352466", "352466"},
		{"http://vocab.getty.edu/tgn/term/352466", "term:352466"},
		{"http://vocab.getty.edu/tgn/Term/352466", "term:352466"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			nss, err := h.ToURNSuffix(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.nss, nss)
		})
	}
}

func TestHierarchical_ExplicitOnMirror(t *testing.T) {
	h := NewHierarchical("http://vocab.getty.edu/tgn/", "term")

	nss, err := h.ToURNSuffix("https://mirror.example/tgn/term/352466")
	require.NoError(t, err)
	assert.Equal(t, "term:352466", nss)
}

func TestResourcePath(t *testing.T) {
	h := NewResourcePath("http://dbpedia.org", "resource", "page")

	assert.Equal(t, "http://dbpedia.org/resource/", h.BaseURL())
	assert.Equal(t, "http://dbpedia.org/", h.Root())

	_, err := h.ToURNSuffix("http://dbpedia.org/resource/")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	nss, err := h.ToURNSuffix("https://nl.dbpedia.org/page/Naarden")
	require.NoError(t, err)
	assert.Equal(t, "Naarden", nss)

	_, err = h.ToURNSuffix("http://dbpedia.org/ontology/Place")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	_, err = h.FromURNSuffix("")
	assert.ErrorIs(t, err, domain.ErrInvalidURN)
}

func TestQueryParam(t *testing.T) {
	h := NewQueryParam("http://www.meertens.knaw.nl/kloeke/index.php", "kloekenummer")

	_, err := h.ToURNSuffix("http://www.meertens.knaw.nl/kloeke/index.php?other=1")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	tests := []struct {
		name string
		url  string
		nss  string
		back string
	}{
		{"plain code", "http://www.meertens.knaw.nl/kloeke/index.php?kloekenummer=L029p", "L029p", ""},
		{"percent-encoded space", "http://www.meertens.knaw.nl/kloeke/index.php?kloekenummer=a%20b", "a%20b", ""},
		{"plus stays a plus", "http://www.meertens.knaw.nl/kloeke/index.php?kloekenummer=A+1", "A+1", ""},
		{
			"other parameters are dropped",
			"http://www.meertens.knaw.nl/kloeke/index.php?lang=nl&kloekenummer=Q001",
			"Q001",
			"http://www.meertens.knaw.nl/kloeke/index.php?kloekenummer=Q001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nss, err := h.ToURNSuffix(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.nss, nss)
			assert.NotContains(t, nss, " ")

			back, err := h.FromURNSuffix(nss)
			require.NoError(t, err)
			want := tt.back
			if want == "" {
				want = tt.url
			}
			assert.Equal(t, want, back)
		})
	}
}

func TestFunc(t *testing.T) {
	t.Run("default match uses base URL", func(t *testing.T) {
		f := &Func{URL: "http://example.com/"}
		assert.True(t, f.Matches("HTTP://EXAMPLE.COM/x"))
		assert.False(t, f.Matches("http://example.org/x"))
	})

	t.Run("custom match", func(t *testing.T) {
		f := &Func{URL: "http://example.com/", Match: func(string) bool { return true }}
		assert.True(t, f.Matches("anything"))
	})

	t.Run("missing functions break the contract", func(t *testing.T) {
		f := &Func{URL: "http://example.com/", FromSuffix: func(nss string) (string, error) { return nss, nil }}
		assert.ErrorIs(t, f.CheckContract(), domain.ErrInvalidHandlerContract)

		_, err := f.ToURNSuffix("http://example.com/1")
		assert.ErrorIs(t, err, domain.ErrInvalidHandlerContract)

		f = &Func{URL: "http://example.com/", ToSuffix: func(u string) (string, error) { return u, nil }}
		assert.ErrorIs(t, f.CheckContract(), domain.ErrInvalidHandlerContract)

		_, err = f.FromURNSuffix("1")
		assert.ErrorIs(t, err, domain.ErrInvalidHandlerContract)
	})

	t.Run("complete handler delegates", func(t *testing.T) {
		f := &Func{
			URL:        "http://example.com/",
			ToSuffix:   func(string) (string, error) { return "", errors.New("boom") },
			FromSuffix: func(nss string) (string, error) { return "http://example.com/" + nss, nil },
		}
		assert.NoError(t, f.CheckContract())

		_, err := f.ToURNSuffix("http://example.com/1")
		assert.EqualError(t, err, "boom")

		url, err := f.FromURNSuffix("1")
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/1", url)
	})
}
