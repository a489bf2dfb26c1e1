package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoarc/marvel-go/internal/analyzer"
	"github.com/chronoarc/marvel-go/internal/generator"
	"github.com/chronoarc/marvel-go/internal/parser"
)

func TestIntegration_ParserAnalyzerGeneratorFormatter(t *testing.T) {
	jsonInput := `{
		"id": 1009610,
		"name": "Spider-Man",
		"modified": "2013-10-24T14:32:08-04:00",
		"resourceURI": "http://gateway.marvel.com/v1/public/characters/1009610",
		"thumbnail": {"path": "http://i.annihil.us/u/prod/marvel/i/mg/3/50/526548a343e4b", "extension": "jpg"},
		"urls": [{"type": "detail", "url": "http://marvel.com/characters/54/spider-man"}],
		"comics": {
			"available": 3,
			"items": [{"resourceURI": "http://gateway.marvel.com/v1/public/comics/1", "name": "Amazing Spider-Man"}]
		}
	}`

	ir, err := parser.ParseString(jsonInput)
	require.NoError(t, err)

	defs, err := analyzer.NewAnalyzer().Analyze(ir, "Character")
	require.NoError(t, err)

	code, err := generator.NewGenerator().Generate(defs, "catalog")
	require.NoError(t, err)

	formatted, err := NewFormatter().Format(code)
	require.NoError(t, err)

	assert.Contains(t, formatted, "package catalog")
	assert.Contains(t, formatted, "import (\n\t\"time\"\n\n\t\"github.com/chronoarc/marvel-go/marvel\"\n)")
	assert.Contains(t, formatted, "type Character struct {")
	assert.Contains(t, formatted, "\tModified    *time.Time\n")
	assert.Contains(t, formatted, "\tResourceURI *string\n")
	assert.Contains(t, formatted, "\tThumbnail   *CharacterThumbnail\n")
	assert.Contains(t, formatted, "\tURLs        []*CharacterURL\n")
	assert.Contains(t, formatted, "type CharacterComics struct {")
	assert.Contains(t, formatted, "\tItems     []*CharacterComicsItem\n")
	assert.Contains(t, formatted, `"resourceUri": "resourceURI",`)
	assert.Contains(t, formatted, `func (*CharacterURL) TypeName() string { return "CharacterUrl" }`)
}
