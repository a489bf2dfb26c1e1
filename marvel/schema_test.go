package marvel_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoarc/marvel-go/marvel"
)

type badgeLevel string

type badge struct {
	Name      *string
	Level     *badgeLevel
	Points    *int
	Ratio     *float64
	Active    *bool
	AwardedOn *time.Time
	Image     *marvel.Image
	Comics    []*marvel.ComicSummary
	Extra     any
}

func (*badge) TypeName() string { return "Badge" }

func badgeDefinitions() []marvel.Definition {
	return []marvel.Definition{
		{
			Name: "Badge",
			New:  func() marvel.Object { return new(badge) },
			Fields: []marvel.Field{
				marvel.String("name", func(o *badge) **string { return &o.Name }),
				marvel.EnumOf("level", "BadgeLevel", func(o *badge) **badgeLevel { return &o.Level }),
				marvel.Int("points", func(o *badge) **int { return &o.Points }),
				marvel.Float("ratio", func(o *badge) **float64 { return &o.Ratio }),
				marvel.Bool("active", func(o *badge) **bool { return &o.Active }),
				marvel.Date("awardedOn", func(o *badge) **time.Time { return &o.AwardedOn }),
				marvel.ObjectOf("image", func(o *badge) **marvel.Image { return &o.Image }),
				marvel.ObjectsOf("comics", func(o *badge) *[]*marvel.ComicSummary { return &o.Comics }),
				marvel.Raw("extra", "mixed", func(o *badge) *any { return &o.Extra }),
			},
			AttributeMap: map[string]string{"awardedOn": "awarded_on"},
		},
	}
}

func TestExternalDefinitions(t *testing.T) {
	reg := marvel.NewRegistry()
	require.NoError(t, reg.RegisterEnum(marvel.Enum{Name: "BadgeLevel", Values: []string{"bronze", "gold"}}))
	for _, def := range badgeDefinitions() {
		require.NoError(t, reg.Register(def))
	}
	cd := marvel.NewCodec(reg)

	input := `{
		"name": "Hero",
		"level": "gold",
		"points": "010",
		"ratio": 0.5,
		"active": true,
		"awarded_on": "2020-01-02T03:04:05+00:00",
		"image": {"path": "http://i.annihil.us/u/prod/marvel/i/mg/3/40/4bb4680432f73", "extension": "jpg"},
		"comics": [{"resourceURI": "http://gateway.marvel.com/v1/public/comics/21464", "name": "Powerman"}]
	}`

	obj, err := cd.Unmarshal([]byte(input), "Badge")
	require.NoError(t, err)
	b := obj.(*badge)

	assert.Equal(t, "Hero", *b.Name)
	assert.Equal(t, badgeLevel("gold"), *b.Level)
	assert.Equal(t, 10, *b.Points)
	assert.Equal(t, "jpg", *b.Image.Extension)
	require.Len(t, b.Comics, 1)
	assert.Equal(t, "Powerman", *b.Comics[0].Name)
	assert.Nil(t, b.Extra)

	out, err := cd.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Hero",
		"level": "gold",
		"points": 10,
		"ratio": 0.5,
		"active": true,
		"awarded_on": "2020-01-02T03:04:05+00:00",
		"image": {"path": "http://i.annihil.us/u/prod/marvel/i/mg/3/40/4bb4680432f73", "extension": "jpg"},
		"comics": [{"resourceURI": "http://gateway.marvel.com/v1/public/comics/21464", "name": "Powerman"}]
	}`, string(out))

	_, err = cd.Unmarshal([]byte(`{"level": "silver"}`), "Badge")
	assert.True(t, stderrors.Is(err, marvel.ErrUnknownEnumValue))
}
