package schema

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
)

type testFormat string

type testImage struct {
	Path      *string
	Extension *string
}

func (*testImage) TypeName() string { return "Image" }

type testComic struct {
	ID          *int
	Title       *string
	Price       *float64
	Digital     *bool
	Modified    *time.Time
	Format      *testFormat
	Thumbnail   *testImage
	Images      []*testImage
	TextObjects any
	Extra       any
	ResourceURI *string
}

func (*testComic) TypeName() string { return "Comic" }

func imageDefinition() Definition {
	return Definition{
		Name: "Image",
		New:  func() Object { return &testImage{} },
		Fields: []Field{
			String("path", func(i *testImage) **string { return &i.Path }),
			String("extension", func(i *testImage) **string { return &i.Extension }),
		},
	}
}

func comicDefinition() Definition {
	return Definition{
		Name: "Comic",
		New:  func() Object { return &testComic{} },
		Fields: []Field{
			Int("id", func(c *testComic) **int { return &c.ID }),
			String("title", func(c *testComic) **string { return &c.Title }),
			Float("price", func(c *testComic) **float64 { return &c.Price }),
			Bool("digital", func(c *testComic) **bool { return &c.Digital }),
			Date("modified", func(c *testComic) **time.Time { return &c.Modified }),
			EnumOf("format", "ComicFormat", func(c *testComic) **testFormat { return &c.Format }),
			ObjectOf("thumbnail", func(c *testComic) **testImage { return &c.Thumbnail }),
			ObjectsOf("images", func(c *testComic) *[]*testImage { return &c.Images }),
			Raw("textObjects", "array", func(c *testComic) *any { return &c.TextObjects }),
			Raw("extra", "mixed", func(c *testComic) *any { return &c.Extra }),
			String("resourceUri", func(c *testComic) **string { return &c.ResourceURI }),
		},
		AttributeMap: map[string]string{"resourceUri": "resourceURI"},
	}
}

func TestResolve(t *testing.T) {
	def := withFieldTables(comicDefinition())
	kinds, err := Resolve(def)
	require.NoError(t, err)

	expected := []models.TypeInfo{
		{Kind: models.Int},
		{Kind: models.String},
		{Kind: models.Float},
		{Kind: models.Bool},
		{Kind: models.Date},
		{Kind: models.Enum, Name: "ComicFormat"},
		{Kind: models.Object, Name: "Image"},
		models.ArrayOf(models.TypeInfo{Kind: models.Object, Name: "Image"}),
		{Kind: models.UntypedArray},
		{Kind: models.Mixed},
		{Kind: models.String},
	}
	require.Len(t, kinds, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(kinds[i]), "field %s: expected %s, got %s", def.Fields[i].Name, expected[i], kinds[i])
	}
}

func TestResolve_SideTables(t *testing.T) {
	def := RecordDefinition("Series", []Field{
		RecordField("urls", "array"),
		RecordField("tags", "array"),
		RecordField("seriesType", "string"),
		RecordField("title", "string"),
		RecordField("next", "SeriesSummary"),
		RecordField("nothing", "null"),
		RecordField("startDate", "date"),
	})
	def.ComplexArrayTypes = map[string]string{"urls": "Url"}
	def.EnumTypes = map[string]string{"seriesType": "SeriesType", "next": "Ignored"}

	kinds, err := Resolve(def)
	require.NoError(t, err)

	assert.Equal(t, "array<Url>", kinds[0].String())
	assert.Equal(t, models.UntypedArray, kinds[1].Kind)
	assert.Equal(t, "enum<SeriesType>", kinds[2].String())
	assert.Equal(t, models.String, kinds[3].Kind)
	assert.Equal(t, models.TypeInfo{Kind: models.Object, Name: "SeriesSummary"}, kinds[4])
	assert.Equal(t, models.Null, kinds[5].Kind)
	assert.Equal(t, models.Date, kinds[6].Kind)
}

func TestResolve_MissingConstructor(t *testing.T) {
	_, err := Resolve(Definition{Name: "Opaque"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrMissingConstructor))
	assert.Contains(t, err.Error(), "Opaque")
}

func TestResolveToken(t *testing.T) {
	tests := []struct {
		token    string
		expected models.TypeInfo
	}{
		{"int", models.TypeInfo{Kind: models.Int}},
		{"float", models.TypeInfo{Kind: models.Float}},
		{"bool", models.TypeInfo{Kind: models.Bool}},
		{"string", models.TypeInfo{Kind: models.String}},
		{"date", models.TypeInfo{Kind: models.Date}},
		{"datetime", models.TypeInfo{Kind: models.Date}},
		{"array", models.TypeInfo{Kind: models.UntypedArray}},
		{"mixed", models.TypeInfo{Kind: models.Mixed}},
		{"null", models.TypeInfo{Kind: models.Null}},
		{"ComicSummary", models.TypeInfo{Kind: models.Object, Name: "ComicSummary"}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveToken(tt.token))
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(imageDefinition()))
	require.NoError(t, reg.Register(comicDefinition()))

	assert.Equal(t, []string{"Comic", "Image"}, reg.Types())

	desc, ok := reg.Lookup("Comic")
	require.True(t, ok)
	assert.Equal(t, "Comic", desc.Name())
	assert.Equal(t, map[string]string{"images": "Image"}, desc.Definition.ComplexArrayTypes)
	assert.Equal(t, map[string]string{"format": "ComicFormat"}, desc.Definition.EnumTypes)
	assert.IsType(t, &testComic{}, desc.New())

	fields, err := reg.Resolve("Comic")
	require.NoError(t, err)
	assert.Equal(t, "resourceURI", fields[len(fields)-1].WireName)
	assert.Equal(t, "id", fields[0].WireName)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(imageDefinition()))

	err := reg.Register(imageDefinition())
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAttributeType))

	err = reg.Register(Definition{Name: "Opaque", New: func() Object { return NewRecord("Opaque") }})
	assert.True(t, stderrors.Is(err, errors.ErrMissingConstructor))

	err = reg.Register(Definition{Name: "NoConstructor", Fields: []Field{}})
	assert.True(t, stderrors.Is(err, errors.ErrMissingConstructor))

	err = reg.Register(Definition{New: func() Object { return NewRecord("") }, Fields: []Field{}})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAttributeType))

	dup := RecordDefinition("Dup", []Field{RecordField("a", "int"), RecordField("a", "string")})
	err = reg.Register(dup)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAttributeType))

	require.NoError(t, reg.RegisterEnum(Enum{Name: "ComicFormat", Values: []string{"Comic"}}))
	err = reg.Register(RecordDefinition("ComicFormat", []Field{}))
	assert.Error(t, err)
	err = reg.RegisterEnum(Enum{Name: "Image"})
	assert.Error(t, err)

	_, ok := reg.Lookup("Opaque")
	assert.False(t, ok)
}

func TestRegistry_ResolveUnregistered(t *testing.T) {
	_, err := NewRegistry().Resolve("Missing")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrMissingConstructor))
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() {
		reg.MustRegister(Definition{Name: "Opaque", New: func() Object { return NewRecord("Opaque") }})
	})
	assert.Panics(t, func() {
		reg.MustRegisterEnum(Enum{})
	})
}

func TestRegistry_Enums(t *testing.T) {
	reg := NewRegistry()
	values := []string{"collection", "one shot", "limited", "ongoing"}
	reg.MustRegisterEnum(Enum{Name: "SeriesType", Values: values})
	values[0] = "mutated"

	e, ok := reg.LookupEnum("SeriesType")
	require.True(t, ok)
	assert.True(t, e.Has("collection"))
	assert.True(t, e.Has("one shot"))
	assert.False(t, e.Has("One Shot"))
	assert.False(t, e.Has("mutated"))
	assert.Equal(t, []string{"SeriesType"}, reg.Enums())
}

func TestDescriptor_Lookup(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(imageDefinition(), comicDefinition())
	desc, _ := reg.Lookup("Comic")

	f, ok := desc.Lookup("resourceURI")
	require.True(t, ok)
	assert.Equal(t, "resourceUri", f.Name)

	f, ok = desc.Lookup("resourceUri")
	require.True(t, ok)
	assert.Equal(t, "resourceUri", f.Name)

	_, ok = desc.Lookup("unknownKey")
	assert.False(t, ok)
}

func TestField_SetGet(t *testing.T) {
	def := comicDefinition()
	comic := &testComic{}
	byName := map[string]Field{}
	for _, f := range def.Fields {
		byName[f.Name] = f
	}

	modified := time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)
	thumb := &testImage{}

	require.NoError(t, byName["id"].Set(comic, 82967))
	require.NoError(t, byName["title"].Set(comic, "Marvel Previews (2017)"))
	require.NoError(t, byName["price"].Set(comic, 3.99))
	require.NoError(t, byName["digital"].Set(comic, true))
	require.NoError(t, byName["modified"].Set(comic, modified))
	require.NoError(t, byName["format"].Set(comic, "Comic"))
	require.NoError(t, byName["thumbnail"].Set(comic, thumb))
	require.NoError(t, byName["images"].Set(comic, []any{thumb, nil}))
	require.NoError(t, byName["extra"].Set(comic, map[string]any{"a": 1}))

	assert.Equal(t, 82967, *comic.ID)
	assert.Equal(t, testFormat("Comic"), *comic.Format)
	assert.Same(t, thumb, comic.Thumbnail)
	assert.Equal(t, []*testImage{thumb, nil}, comic.Images)

	assert.Equal(t, 82967, byName["id"].Get(comic))
	assert.Equal(t, 3.99, byName["price"].Get(comic))
	assert.Equal(t, true, byName["digital"].Get(comic))
	assert.Equal(t, modified, byName["modified"].Get(comic))
	assert.Equal(t, "Comic", byName["format"].Get(comic))
	assert.Equal(t, thumb, byName["thumbnail"].Get(comic))
	assert.Equal(t, []any{thumb, nil}, byName["images"].Get(comic))
	assert.Equal(t, map[string]any{"a": 1}, byName["extra"].Get(comic))

	assert.Nil(t, byName["resourceUri"].Get(comic))
	assert.Nil(t, byName["textObjects"].Get(comic))

	require.NoError(t, byName["id"].Set(comic, nil))
	assert.Nil(t, comic.ID)
	assert.Nil(t, byName["id"].Get(comic))

	require.NoError(t, byName["images"].Set(comic, nil))
	assert.Nil(t, comic.Images)
	assert.Nil(t, byName["images"].Get(comic))
}

func TestField_SetMismatch(t *testing.T) {
	def := comicDefinition()
	comic := &testComic{}

	tests := []struct {
		field int
		value any
	}{
		{field: 0, value: "82967"},
		{field: 5, value: 12},
		{field: 6, value: "not an image"},
		{field: 7, value: "not an array"},
		{field: 7, value: []any{"not an image"}},
	}

	for _, tt := range tests {
		err := def.Fields[tt.field].Set(comic, tt.value)
		require.Error(t, err, "field %s", def.Fields[tt.field].Name)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidAttributeType))
	}

	err := def.Fields[0].Set(&testImage{}, 1)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAttributeType))
	assert.Nil(t, def.Fields[0].Get(&testImage{}))

	err = Field{Name: "bare"}.Set(comic, 1)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAttributeType))
	assert.Nil(t, Field{Name: "bare"}.Get(comic))
}

func TestRecord(t *testing.T) {
	def := RecordDefinition("Url", []Field{RecordField("type", "string"), RecordField("url", "string")})
	obj := def.New()
	rec, ok := obj.(*Record)
	require.True(t, ok)
	assert.Equal(t, "Url", rec.TypeName())

	require.NoError(t, def.Fields[0].Set(rec, "detail"))
	assert.Equal(t, "detail", def.Fields[0].Get(rec))
	assert.Equal(t, map[string]any{"type": "detail"}, rec.Values())

	require.NoError(t, def.Fields[0].Set(rec, nil))
	assert.Empty(t, rec.Values())

	err := def.Fields[0].Set(&testImage{}, "detail")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAttributeType))

	var nilRecord *Record
	assert.Equal(t, "", nilRecord.TypeName())
}

const definitionsYAML = `
enums:
  - name: SeriesType
    values: [collection, one shot, limited, ongoing]
types:
  - name: Url
    fields:
      - {name: type, type: string}
      - {name: url, type: string}
  - name: Series
    fields:
      - {name: id, type: int}
      - {name: resourceUri, type: string}
      - {name: seriesType, type: string}
      - {name: urls, type: array}
      - {name: modified, type: date}
    attribute_map:
      resourceUri: resourceURI
    complex_array_types:
      urls: Url
    enum_types:
      seriesType: SeriesType
  - name: Opaque
`

func TestParseDefinitions(t *testing.T) {
	file, err := ParseDefinitions([]byte(definitionsYAML))
	require.NoError(t, err)
	require.Len(t, file.Types, 3)
	require.Len(t, file.Enums, 1)

	assert.Nil(t, file.Types[2].Definition().Fields)

	reg := NewRegistry()
	err = file.RegisterInto(reg)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrMissingConstructor))

	desc, ok := reg.Lookup("Series")
	require.True(t, ok)
	kinds := make([]string, 0, len(desc.Fields))
	for _, f := range desc.Fields {
		kinds = append(kinds, f.Kind.String())
	}
	assert.Equal(t, []string{"int", "string", "enum<SeriesType>", "array<Url>", "date"}, kinds)
	assert.Equal(t, "resourceURI", desc.Fields[1].WireName)
}

func TestParseDefinitions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "types: [unclosed"},
		{name: "unnamed type", yaml: "types:\n  - fields: []"},
		{name: "field without type", yaml: "types:\n  - name: A\n    fields:\n      - name: id"},
		{name: "unnamed enum", yaml: "enums:\n  - values: [a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinitions([]byte(tt.yaml))
			require.Error(t, err)
			var appErr *errors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, errors.ErrorTypeConfig, appErr.Type)
		})
	}
}

func TestLoadDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definitionsYAML), 0o644))

	file, err := LoadDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, "Url", file.Types[0].Name)

	_, err = LoadDefinitions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeConfig, appErr.Type)
}
