package generator

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/schema"
)

const seriesDefinitions = `
enums:
  - name: SeriesType
    values: [collection, one shot, limited, ongoing, ""]
types:
  - name: Series
    fields:
      - {name: id, type: int}
      - {name: title, type: string}
      - {name: rating, type: float}
      - {name: seriesType, type: string}
      - {name: modified, type: datetime}
      - {name: urls, type: array}
      - {name: tags, type: array}
      - {name: extra, type: mixed}
      - {name: resourceUri, type: string}
      - {name: thumbnail, type: Image}
      - {name: active, type: bool}
    attribute_map:
      resourceUri: resourceURI
    complex_array_types:
      urls: Url
      tags: string
    enum_types:
      seriesType: SeriesType
  - name: Url
    fields:
      - {name: type, type: string}
      - {name: url, type: string}
  - name: Image
    fields:
      - {name: path, type: string}
      - {name: extension, type: string}
`

func parse(t *testing.T, doc string) *schema.DefinitionFile {
	t.Helper()
	file, err := schema.ParseDefinitions([]byte(doc))
	require.NoError(t, err)
	return file
}

func TestGenerate_Series(t *testing.T) {
	code, err := NewGenerator().Generate(parse(t, seriesDefinitions), "catalog")
	require.NoError(t, err)

	expected := []string{
		"// Code generated by marvel-go generate. DO NOT EDIT.",
		"package catalog",
		"\t\"time\"\n\n\t\"github.com/chronoarc/marvel-go/marvel\"",
		"type SeriesType string",
		"\tSeriesTypeOneShot SeriesType = \"one shot\"",
		"\tSeriesTypeEmpty SeriesType = \"\"",
		"type Series struct {",
		"\tID *int\n",
		"\tSeriesType *SeriesType\n",
		"\tModified *time.Time\n",
		"\tURLs []*URL\n",
		"\tTags any\n",
		"\tResourceURI *string\n",
		"\tThumbnail *Image\n",
		"func (*Series) TypeName() string { return \"Series\" }",
		"type URL struct {",
		"func (*URL) TypeName() string { return \"Url\" }",
		`marvel.Int("id", func(o *Series) **int { return &o.ID })`,
		`marvel.EnumOf("seriesType", "SeriesType", func(o *Series) **SeriesType { return &o.SeriesType })`,
		`marvel.Date("modified", func(o *Series) **time.Time { return &o.Modified })`,
		`marvel.ObjectsOf("urls", func(o *Series) *[]*URL { return &o.URLs })`,
		`marvel.Raw("tags", "array", func(o *Series) *any { return &o.Tags })`,
		`marvel.Raw("extra", "mixed", func(o *Series) *any { return &o.Extra })`,
		`marvel.ObjectOf("thumbnail", func(o *Series) **Image { return &o.Thumbnail })`,
		`marvel.Bool("active", func(o *Series) **bool { return &o.Active })`,
		"AttributeMap: map[string]string{\n\t\t\t\t\"resourceUri\": \"resourceURI\",",
		"ComplexArrayTypes: map[string]string{\n\t\t\t\t\"tags\": \"string\",",
		`{Name: "SeriesType", Values: []string{"collection", "one shot", "limited", "ongoing", ""}},`,
	}
	for _, want := range expected {
		assert.Contains(t, code, want)
	}
	// object arrays bind through ObjectsOf and need no side table entry
	assert.NotContains(t, code, `"urls": "Url"`)
}

func TestGenerate_WithoutDates(t *testing.T) {
	code, err := NewGenerator().Generate(parse(t, `
types:
  - name: Url
    fields:
      - {name: type, type: string}
      - {name: url, type: string}
`), "catalog")
	require.NoError(t, err)
	assert.NotContains(t, code, `"time"`)
	assert.Contains(t, code, "func Enums() []marvel.Enum {\n\treturn []marvel.Enum{\n\t}\n}")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		pkg     string
		wantMsg string
	}{
		{
			name:    "empty file",
			doc:     "types: []",
			pkg:     "catalog",
			wantMsg: "declares no types",
		},
		{
			name:    "bad package",
			doc:     "types: [{name: Url, fields: []}]",
			pkg:     "my-pkg",
			wantMsg: "invalid package name",
		},
		{
			name:    "package shadows import",
			doc:     "types: [{name: Url, fields: []}]",
			pkg:     "catalog",
			wantMsg: "invalid package name",
		},
		{
			name:    "undeclared object",
			doc:     "types: [{name: Comic, fields: [{name: series, type: SeriesSummary}]}]",
			pkg:     "catalog",
			wantMsg: "`SeriesSummary`",
		},
		{
			name:    "undeclared enum",
			doc:     "types: [{name: Comic, fields: [{name: format, type: string}], enum_types: {format: ComicFormat}}]",
			pkg:     "catalog",
			wantMsg: "`ComicFormat`",
		},
		{
			name:    "duplicate type",
			doc:     "types: [{name: Url, fields: []}, {name: Url, fields: []}]",
			pkg:     "catalog",
			wantMsg: "declared twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator().Generate(parse(t, tt.doc), tt.pkg)
			require.Error(t, err)

			var appErr *errors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, errors.ErrorTypeInput, appErr.Type)
			assert.Contains(t, appErr.Message, tt.wantMsg)
		})
	}

	_, err := NewGenerator().Generate(nil, "catalog")
	require.Error(t, err)
}

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"id":              "ID",
		"digitalId":       "DigitalID",
		"resourceURI":     "ResourceURI",
		"resourceUri":     "ResourceURI",
		"urls":            "URLs",
		"attributionHTML": "AttributionHTML",
		"isbn":            "ISBN",
		"issueNumber":     "IssueNumber",
		"thumbnail_url":   "ThumbnailURL",
		"3d":              "X3D",
		"Url":             "URL",
		"ComicPrice":      "ComicPrice",
	}
	for in, want := range tests {
		assert.Equal(t, want, goName(in), in)
	}
}

func TestConstName(t *testing.T) {
	assert.Equal(t, "OneShot", constName("one shot"))
	assert.Equal(t, "TradePaperback", constName("trade paperback"))
	assert.Equal(t, "Empty", constName(""))
	assert.Equal(t, "Value2099", constName("2099"))
	assert.Equal(t, "T", constName("T+"))
}
