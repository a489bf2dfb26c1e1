package marvel

import (
	"net/url"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/chronoarc/marvel-go/internal/errors"
)

// Query structs hold the filters of a collection endpoint. Nil pointers and
// empty slices are left out of the request, slices are sent comma separated
// and dates use the wire date layout.

// CharacterQuery filters character listings.
type CharacterQuery struct {
	Name           *string    `url:"name,omitempty"`
	NameStartsWith *string    `url:"nameStartsWith,omitempty"`
	ModifiedSince  *time.Time `url:"modifiedSince,omitempty" layout:"2006-01-02T15:04:05-07:00"`
	Comics         []int      `url:"comics,comma,omitempty"`
	Series         []int      `url:"series,comma,omitempty"`
	Events         []int      `url:"events,comma,omitempty"`
	Stories        []int      `url:"stories,comma,omitempty"`
	OrderBy        []OrderBy  `url:"orderBy,comma,omitempty"`
	Limit          *int       `url:"limit,omitempty"`
	Offset         *int       `url:"offset,omitempty"`
}

// ComicQuery filters comic listings.
type ComicQuery struct {
	Format            *Format         `url:"format,omitempty"`
	FormatType        *FormatType     `url:"formatType,omitempty"`
	NoVariants        *bool           `url:"noVariants,omitempty"`
	DateDescriptor    *DateDescriptor `url:"dateDescriptor,omitempty"`
	DateRange         []string        `url:"dateRange,comma,omitempty"`
	Title             *string         `url:"title,omitempty"`
	TitleStartsWith   *string         `url:"titleStartsWith,omitempty"`
	StartYear         *int            `url:"startYear,omitempty"`
	IssueNumber       *int            `url:"issueNumber,omitempty"`
	DiamondCode       *string         `url:"diamondCode,omitempty"`
	DigitalID         *int            `url:"digitalId,omitempty"`
	UPC               *string         `url:"upc,omitempty"`
	ISBN              *string         `url:"isbn,omitempty"`
	EAN               *string         `url:"ean,omitempty"`
	ISSN              *string         `url:"issn,omitempty"`
	HasDigitalIssue   *bool           `url:"hasDigitalIssue,omitempty"`
	ModifiedSince     *time.Time      `url:"modifiedSince,omitempty" layout:"2006-01-02T15:04:05-07:00"`
	Creators          []int           `url:"creators,comma,omitempty"`
	Characters        []int           `url:"characters,comma,omitempty"`
	Series            []int           `url:"series,comma,omitempty"`
	Events            []int           `url:"events,comma,omitempty"`
	Stories           []int           `url:"stories,comma,omitempty"`
	SharedAppearances []int           `url:"sharedAppearances,comma,omitempty"`
	Collaborators     []int           `url:"collaborators,comma,omitempty"`
	OrderBy           []OrderBy       `url:"orderBy,comma,omitempty"`
	Limit             *int            `url:"limit,omitempty"`
	Offset            *int            `url:"offset,omitempty"`
}

// CreatorQuery filters creator listings.
type CreatorQuery struct {
	FirstName            *string    `url:"firstName,omitempty"`
	MiddleName           *string    `url:"middleName,omitempty"`
	LastName             *string    `url:"lastName,omitempty"`
	Suffix               *string    `url:"suffix,omitempty"`
	NameStartsWith       *string    `url:"nameStartsWith,omitempty"`
	FirstNameStartsWith  *string    `url:"firstNameStartsWith,omitempty"`
	MiddleNameStartsWith *string    `url:"middleNameStartsWith,omitempty"`
	LastNameStartsWith   *string    `url:"lastNameStartsWith,omitempty"`
	ModifiedSince        *time.Time `url:"modifiedSince,omitempty" layout:"2006-01-02T15:04:05-07:00"`
	Comics               []int      `url:"comics,comma,omitempty"`
	Series               []int      `url:"series,comma,omitempty"`
	Events               []int      `url:"events,comma,omitempty"`
	Stories              []int      `url:"stories,comma,omitempty"`
	OrderBy              []OrderBy  `url:"orderBy,comma,omitempty"`
	Limit                *int       `url:"limit,omitempty"`
	Offset               *int       `url:"offset,omitempty"`
}

// EventQuery filters event listings.
type EventQuery struct {
	Name           *string    `url:"name,omitempty"`
	NameStartsWith *string    `url:"nameStartsWith,omitempty"`
	ModifiedSince  *time.Time `url:"modifiedSince,omitempty" layout:"2006-01-02T15:04:05-07:00"`
	Creators       []int      `url:"creators,comma,omitempty"`
	Characters     []int      `url:"characters,comma,omitempty"`
	Series         []int      `url:"series,comma,omitempty"`
	Comics         []int      `url:"comics,comma,omitempty"`
	Stories        []int      `url:"stories,comma,omitempty"`
	OrderBy        []OrderBy  `url:"orderBy,comma,omitempty"`
	Limit          *int       `url:"limit,omitempty"`
	Offset         *int       `url:"offset,omitempty"`
}

// SeriesQuery filters series listings.
type SeriesQuery struct {
	Title           *string     `url:"title,omitempty"`
	TitleStartsWith *string     `url:"titleStartsWith,omitempty"`
	StartYear       *int        `url:"startYear,omitempty"`
	ModifiedSince   *time.Time  `url:"modifiedSince,omitempty" layout:"2006-01-02T15:04:05-07:00"`
	Comics          []int       `url:"comics,comma,omitempty"`
	Stories         []int       `url:"stories,comma,omitempty"`
	Events          []int       `url:"events,comma,omitempty"`
	Creators        []int       `url:"creators,comma,omitempty"`
	Characters      []int       `url:"characters,comma,omitempty"`
	SeriesType      *SeriesType `url:"seriesType,omitempty"`
	Contains        []Format    `url:"contains,comma,omitempty"`
	OrderBy         []OrderBy   `url:"orderBy,comma,omitempty"`
	Limit           *int        `url:"limit,omitempty"`
	Offset          *int        `url:"offset,omitempty"`
}

// StoryQuery filters story listings.
type StoryQuery struct {
	ModifiedSince *time.Time `url:"modifiedSince,omitempty" layout:"2006-01-02T15:04:05-07:00"`
	Comics        []int      `url:"comics,comma,omitempty"`
	Series        []int      `url:"series,comma,omitempty"`
	Events        []int      `url:"events,comma,omitempty"`
	Creators      []int      `url:"creators,comma,omitempty"`
	Characters    []int      `url:"characters,comma,omitempty"`
	OrderBy       []OrderBy  `url:"orderBy,comma,omitempty"`
	Limit         *int       `url:"limit,omitempty"`
	Offset        *int       `url:"offset,omitempty"`
}

// Ptr returns a pointer to v, for filling optional query fields.
func Ptr[T any](v T) *T {
	return &v
}

// Values encodes a query struct. A nil query encodes to no parameters.
func Values(q any) (url.Values, error) {
	v, err := query.Values(q)
	if err != nil {
		return nil, errors.NewInputError("failed to encode query parameters", err)
	}
	return v, nil
}
