package marvel

// Every field is a pointer or slice so that values absent from a response
// stay nil. Date-like fields such as Modified are kept as the raw strings the
// API returns.

// Envelope is the response metadata shared by every data wrapper.
type Envelope struct {
	Code            *int
	Status          *string
	Copyright       *string
	AttributionText *string
	AttributionHTML *string
	Etag            *string
}

func (e *Envelope) envelope() *Envelope { return e }

// Page describes the slice of a collection held by a data container.
type Page struct {
	Offset *int
	Limit  *int
	Total  *int
	Count  *int
}

func (p *Page) page() *Page { return p }

// ListInfo is the header of a resource list embedded in an entity.
type ListInfo struct {
	Available     *int
	Returned      *int
	CollectionURI *string
}

func (l *ListInfo) list() *ListInfo { return l }

// Reference points at another resource by URI.
type Reference struct {
	ResourceURI *string
	Name        *string
}

func (r *Reference) reference() *Reference { return r }

// Image is a path/extension pair; the full URL is Path + "." + Extension.
type Image struct {
	Path      *string
	Extension *string
}

func (*Image) TypeName() string { return "Image" }

// URL is a public web link for a resource.
type URL struct {
	Type *string
	URL  *string
}

func (*URL) TypeName() string { return "Url" }

// TextObject is a descriptive text block attached to a comic.
type TextObject struct {
	Type     *string
	Language *string
	Text     *string
}

func (*TextObject) TypeName() string { return "TextObject" }

// ComicPrice is one price point of a comic.
type ComicPrice struct {
	Type  *string
	Price *float64
}

func (*ComicPrice) TypeName() string { return "ComicPrice" }

// ComicDate is one key date of a comic, e.g. its on-sale date.
type ComicDate struct {
	Type *string
	Date *string
}

func (*ComicDate) TypeName() string { return "ComicDate" }

type ComicSummary struct {
	Reference
}

func (*ComicSummary) TypeName() string { return "ComicSummary" }

type CharacterSummary struct {
	Reference
	Role *string
}

func (*CharacterSummary) TypeName() string { return "CharacterSummary" }

type CreatorSummary struct {
	Reference
	Role *string
}

func (*CreatorSummary) TypeName() string { return "CreatorSummary" }

type EventSummary struct {
	Reference
}

func (*EventSummary) TypeName() string { return "EventSummary" }

type SeriesSummary struct {
	Reference
}

func (*SeriesSummary) TypeName() string { return "SeriesSummary" }

type StorySummary struct {
	Reference
	Type *string
}

func (*StorySummary) TypeName() string { return "StorySummary" }

type ComicList struct {
	ListInfo
	Items []*ComicSummary
}

func (*ComicList) TypeName() string { return "ComicList" }

type CharacterList struct {
	ListInfo
	Items []*CharacterSummary
}

func (*CharacterList) TypeName() string { return "CharacterList" }

type CreatorList struct {
	ListInfo
	Items []*CreatorSummary
}

func (*CreatorList) TypeName() string { return "CreatorList" }

type EventList struct {
	ListInfo
	Items []*EventSummary
}

func (*EventList) TypeName() string { return "EventList" }

type SeriesList struct {
	ListInfo
	Items []*SeriesSummary
}

func (*SeriesList) TypeName() string { return "SeriesList" }

type StoryList struct {
	ListInfo
	Items []*StorySummary
}

func (*StoryList) TypeName() string { return "StoryList" }

// Comic is a single issue, collection or graphic novel.
type Comic struct {
	ID                 *int
	DigitalID          *int
	Title              *string
	IssueNumber        *float64
	VariantDescription *string
	Description        *string
	Modified           *string
	ISBN               *string
	UPC                *string
	DiamondCode        *string
	EAN                *string
	ISSN               *string
	Format             *ComicFormat
	PageCount          *int
	TextObjects        []*TextObject
	ResourceURI        *string
	URLs               []*URL
	Series             *SeriesSummary
	Variants           []*ComicSummary
	Collections        []*ComicSummary
	CollectedIssues    []*ComicSummary
	Dates              []*ComicDate
	Prices             []*ComicPrice
	Thumbnail          *Image
	Images             []*Image
	Creators           *CreatorList
	Characters         *CharacterList
	Stories            *StoryList
	Events             *EventList
}

func (*Comic) TypeName() string { return "Comic" }

// Character is a person or being in the catalog.
type Character struct {
	ID          *int
	Name        *string
	Description *string
	Modified    *string
	ResourceURI *string
	URLs        []*URL
	Thumbnail   *Image
	Comics      *ComicList
	Stories     *StoryList
	Events      *EventList
	Series      *SeriesList
}

func (*Character) TypeName() string { return "Character" }

// Creator is a person who worked on comics.
type Creator struct {
	ID          *int
	FirstName   *string
	MiddleName  *string
	LastName    *string
	Suffix      *string
	FullName    *string
	Modified    *string
	ResourceURI *string
	URLs        []*URL
	Thumbnail   *Image
	Series      *SeriesList
	Stories     *StoryList
	Comics      *ComicList
	Events      *EventList
}

func (*Creator) TypeName() string { return "Creator" }

// Event is a storyline spanning several series.
type Event struct {
	ID          *int
	Title       *string
	Description *string
	ResourceURI *string
	URLs        []*URL
	Modified    *string
	Start       *string
	End         *string
	Thumbnail   *Image
	Comics      *ComicList
	Stories     *StoryList
	Series      *SeriesList
	Characters  *CharacterList
	Creators    *CreatorList
	Next        *EventSummary
	Previous    *EventSummary
}

func (*Event) TypeName() string { return "Event" }

// Series is a sequentially numbered run of comics.
type Series struct {
	ID          *int
	Title       *string
	Description *string
	ResourceURI *string
	URLs        []*URL
	StartYear   *int
	EndYear     *int
	Rating      *string
	Modified    *string
	Thumbnail   *Image
	Comics      *ComicList
	Stories     *StoryList
	Events      *EventList
	Characters  *CharacterList
	Creators    *CreatorList
	Next        *SeriesSummary
	Previous    *SeriesSummary
}

func (*Series) TypeName() string { return "Series" }

// Story is an indivisible, reusable unit of comic content.
type Story struct {
	ID            *int
	Title         *string
	Description   *string
	ResourceURI   *string
	Type          *string
	Modified      *string
	Thumbnail     *Image
	Comics        *ComicList
	Series        *SeriesList
	Events        *EventList
	Characters    *CharacterList
	Creators      *CreatorList
	OriginalIssue *ComicSummary
}

func (*Story) TypeName() string { return "Story" }

type ComicDataContainer struct {
	Page
	Results []*Comic
}

func (*ComicDataContainer) TypeName() string { return "ComicDataContainer" }

type CharacterDataContainer struct {
	Page
	Results []*Character
}

func (*CharacterDataContainer) TypeName() string { return "CharacterDataContainer" }

type CreatorDataContainer struct {
	Page
	Results []*Creator
}

func (*CreatorDataContainer) TypeName() string { return "CreatorDataContainer" }

type EventDataContainer struct {
	Page
	Results []*Event
}

func (*EventDataContainer) TypeName() string { return "EventDataContainer" }

type SeriesDataContainer struct {
	Page
	Results []*Series
}

func (*SeriesDataContainer) TypeName() string { return "SeriesDataContainer" }

type StoryDataContainer struct {
	Page
	Results []*Story
}

func (*StoryDataContainer) TypeName() string { return "StoryDataContainer" }

type ComicDataWrapper struct {
	Envelope
	Data *ComicDataContainer
}

func (*ComicDataWrapper) TypeName() string { return "ComicDataWrapper" }

type CharacterDataWrapper struct {
	Envelope
	Data *CharacterDataContainer
}

func (*CharacterDataWrapper) TypeName() string { return "CharacterDataWrapper" }

type CreatorDataWrapper struct {
	Envelope
	Data *CreatorDataContainer
}

func (*CreatorDataWrapper) TypeName() string { return "CreatorDataWrapper" }

type EventDataWrapper struct {
	Envelope
	Data *EventDataContainer
}

func (*EventDataWrapper) TypeName() string { return "EventDataWrapper" }

type SeriesDataWrapper struct {
	Envelope
	Data *SeriesDataContainer
}

func (*SeriesDataWrapper) TypeName() string { return "SeriesDataWrapper" }

type StoryDataWrapper struct {
	Envelope
	Data *StoryDataContainer
}

func (*StoryDataWrapper) TypeName() string { return "StoryDataWrapper" }
