package marvel

import (
	"github.com/chronoarc/marvel-go/internal/schema"
)

type ptrObject[T any] interface {
	*T
	schema.Object
}

type envelopeHolder[T any] interface {
	ptrObject[T]
	envelope() *Envelope
}

type pageHolder[T any] interface {
	ptrObject[T]
	page() *Page
}

type listHolder[T any] interface {
	ptrObject[T]
	list() *ListInfo
}

type referenceHolder[T any] interface {
	ptrObject[T]
	reference() *Reference
}

var resourceURI = map[string]string{"resourceUri": "resourceURI"}

func newOf[T any, PT ptrObject[T]]() func() schema.Object {
	return func() schema.Object { return PT(new(T)) }
}

func wrapperDefinition[T any, PT envelopeHolder[T], C any, PC ptrObject[C]](data func(PT) *PC) schema.Definition {
	return schema.Definition{
		Name: PT(new(T)).TypeName(),
		New:  newOf[T, PT](),
		Fields: []schema.Field{
			schema.Int[T, PT]("code", func(w PT) **int { return &w.envelope().Code }),
			schema.String[T, PT]("status", func(w PT) **string { return &w.envelope().Status }),
			schema.String[T, PT]("copyright", func(w PT) **string { return &w.envelope().Copyright }),
			schema.String[T, PT]("attributionText", func(w PT) **string { return &w.envelope().AttributionText }),
			schema.String[T, PT]("attributionHtml", func(w PT) **string { return &w.envelope().AttributionHTML }),
			schema.ObjectOf[T, PT, C, PC]("data", data),
			schema.String[T, PT]("etag", func(w PT) **string { return &w.envelope().Etag }),
		},
		AttributeMap: map[string]string{"attributionHtml": "attributionHTML"},
	}
}

func containerDefinition[T any, PT pageHolder[T], R any, PR ptrObject[R]](results func(PT) *[]PR) schema.Definition {
	return schema.Definition{
		Name: PT(new(T)).TypeName(),
		New:  newOf[T, PT](),
		Fields: []schema.Field{
			schema.Int[T, PT]("offset", func(c PT) **int { return &c.page().Offset }),
			schema.Int[T, PT]("limit", func(c PT) **int { return &c.page().Limit }),
			schema.Int[T, PT]("total", func(c PT) **int { return &c.page().Total }),
			schema.Int[T, PT]("count", func(c PT) **int { return &c.page().Count }),
			schema.ObjectsOf[T, PT, R, PR]("results", results),
		},
	}
}

func listDefinition[T any, PT listHolder[T], S any, PS ptrObject[S]](items func(PT) *[]PS) schema.Definition {
	return schema.Definition{
		Name: PT(new(T)).TypeName(),
		New:  newOf[T, PT](),
		Fields: []schema.Field{
			schema.Int[T, PT]("available", func(l PT) **int { return &l.list().Available }),
			schema.Int[T, PT]("returned", func(l PT) **int { return &l.list().Returned }),
			schema.String[T, PT]("collectionUri", func(l PT) **string { return &l.list().CollectionURI }),
			schema.ObjectsOf[T, PT, S, PS]("items", items),
		},
		AttributeMap: map[string]string{"collectionUri": "collectionURI"},
	}
}

func summaryDefinition[T any, PT referenceHolder[T]](extra ...schema.Field) schema.Definition {
	fields := []schema.Field{
		schema.String[T, PT]("resourceUri", func(s PT) **string { return &s.reference().ResourceURI }),
		schema.String[T, PT]("name", func(s PT) **string { return &s.reference().Name }),
	}
	return schema.Definition{
		Name:         PT(new(T)).TypeName(),
		New:          newOf[T, PT](),
		Fields:       append(fields, extra...),
		AttributeMap: resourceURI,
	}
}

func comicDefinition() schema.Definition {
	return schema.Definition{
		Name: "Comic",
		New:  newOf[Comic](),
		Fields: []schema.Field{
			schema.Int("id", func(c *Comic) **int { return &c.ID }),
			schema.Int("digitalId", func(c *Comic) **int { return &c.DigitalID }),
			schema.String("title", func(c *Comic) **string { return &c.Title }),
			schema.Float("issueNumber", func(c *Comic) **float64 { return &c.IssueNumber }),
			schema.String("variantDescription", func(c *Comic) **string { return &c.VariantDescription }),
			schema.String("description", func(c *Comic) **string { return &c.Description }),
			schema.String("modified", func(c *Comic) **string { return &c.Modified }),
			schema.String("isbn", func(c *Comic) **string { return &c.ISBN }),
			schema.String("upc", func(c *Comic) **string { return &c.UPC }),
			schema.String("diamondCode", func(c *Comic) **string { return &c.DiamondCode }),
			schema.String("ean", func(c *Comic) **string { return &c.EAN }),
			schema.String("issn", func(c *Comic) **string { return &c.ISSN }),
			schema.EnumOf("format", "ComicFormat", func(c *Comic) **ComicFormat { return &c.Format }),
			schema.Int("pageCount", func(c *Comic) **int { return &c.PageCount }),
			schema.ObjectsOf("textObjects", func(c *Comic) *[]*TextObject { return &c.TextObjects }),
			schema.String("resourceUri", func(c *Comic) **string { return &c.ResourceURI }),
			schema.ObjectsOf("urls", func(c *Comic) *[]*URL { return &c.URLs }),
			schema.ObjectOf("series", func(c *Comic) **SeriesSummary { return &c.Series }),
			schema.ObjectsOf("variants", func(c *Comic) *[]*ComicSummary { return &c.Variants }),
			schema.ObjectsOf("collections", func(c *Comic) *[]*ComicSummary { return &c.Collections }),
			schema.ObjectsOf("collectedIssues", func(c *Comic) *[]*ComicSummary { return &c.CollectedIssues }),
			schema.ObjectsOf("dates", func(c *Comic) *[]*ComicDate { return &c.Dates }),
			schema.ObjectsOf("prices", func(c *Comic) *[]*ComicPrice { return &c.Prices }),
			schema.ObjectOf("thumbnail", func(c *Comic) **Image { return &c.Thumbnail }),
			schema.ObjectsOf("images", func(c *Comic) *[]*Image { return &c.Images }),
			schema.ObjectOf("creators", func(c *Comic) **CreatorList { return &c.Creators }),
			schema.ObjectOf("characters", func(c *Comic) **CharacterList { return &c.Characters }),
			schema.ObjectOf("stories", func(c *Comic) **StoryList { return &c.Stories }),
			schema.ObjectOf("events", func(c *Comic) **EventList { return &c.Events }),
		},
		AttributeMap: resourceURI,
	}
}

func characterDefinition() schema.Definition {
	return schema.Definition{
		Name: "Character",
		New:  newOf[Character](),
		Fields: []schema.Field{
			schema.Int("id", func(c *Character) **int { return &c.ID }),
			schema.String("name", func(c *Character) **string { return &c.Name }),
			schema.String("description", func(c *Character) **string { return &c.Description }),
			schema.String("modified", func(c *Character) **string { return &c.Modified }),
			schema.String("resourceUri", func(c *Character) **string { return &c.ResourceURI }),
			schema.ObjectsOf("urls", func(c *Character) *[]*URL { return &c.URLs }),
			schema.ObjectOf("thumbnail", func(c *Character) **Image { return &c.Thumbnail }),
			schema.ObjectOf("comics", func(c *Character) **ComicList { return &c.Comics }),
			schema.ObjectOf("stories", func(c *Character) **StoryList { return &c.Stories }),
			schema.ObjectOf("events", func(c *Character) **EventList { return &c.Events }),
			schema.ObjectOf("series", func(c *Character) **SeriesList { return &c.Series }),
		},
		AttributeMap: resourceURI,
	}
}

func creatorDefinition() schema.Definition {
	return schema.Definition{
		Name: "Creator",
		New:  newOf[Creator](),
		Fields: []schema.Field{
			schema.Int("id", func(c *Creator) **int { return &c.ID }),
			schema.String("firstName", func(c *Creator) **string { return &c.FirstName }),
			schema.String("middleName", func(c *Creator) **string { return &c.MiddleName }),
			schema.String("lastName", func(c *Creator) **string { return &c.LastName }),
			schema.String("suffix", func(c *Creator) **string { return &c.Suffix }),
			schema.String("fullName", func(c *Creator) **string { return &c.FullName }),
			schema.String("modified", func(c *Creator) **string { return &c.Modified }),
			schema.String("resourceUri", func(c *Creator) **string { return &c.ResourceURI }),
			schema.ObjectsOf("urls", func(c *Creator) *[]*URL { return &c.URLs }),
			schema.ObjectOf("thumbnail", func(c *Creator) **Image { return &c.Thumbnail }),
			schema.ObjectOf("series", func(c *Creator) **SeriesList { return &c.Series }),
			schema.ObjectOf("stories", func(c *Creator) **StoryList { return &c.Stories }),
			schema.ObjectOf("comics", func(c *Creator) **ComicList { return &c.Comics }),
			schema.ObjectOf("events", func(c *Creator) **EventList { return &c.Events }),
		},
		AttributeMap: resourceURI,
	}
}

func eventDefinition() schema.Definition {
	return schema.Definition{
		Name: "Event",
		New:  newOf[Event](),
		Fields: []schema.Field{
			schema.Int("id", func(e *Event) **int { return &e.ID }),
			schema.String("title", func(e *Event) **string { return &e.Title }),
			schema.String("description", func(e *Event) **string { return &e.Description }),
			schema.String("resourceUri", func(e *Event) **string { return &e.ResourceURI }),
			schema.ObjectsOf("urls", func(e *Event) *[]*URL { return &e.URLs }),
			schema.String("modified", func(e *Event) **string { return &e.Modified }),
			schema.String("start", func(e *Event) **string { return &e.Start }),
			schema.String("end", func(e *Event) **string { return &e.End }),
			schema.ObjectOf("thumbnail", func(e *Event) **Image { return &e.Thumbnail }),
			schema.ObjectOf("comics", func(e *Event) **ComicList { return &e.Comics }),
			schema.ObjectOf("stories", func(e *Event) **StoryList { return &e.Stories }),
			schema.ObjectOf("series", func(e *Event) **SeriesList { return &e.Series }),
			schema.ObjectOf("characters", func(e *Event) **CharacterList { return &e.Characters }),
			schema.ObjectOf("creators", func(e *Event) **CreatorList { return &e.Creators }),
			schema.ObjectOf("next", func(e *Event) **EventSummary { return &e.Next }),
			schema.ObjectOf("previous", func(e *Event) **EventSummary { return &e.Previous }),
		},
		AttributeMap: resourceURI,
	}
}

func seriesDefinition() schema.Definition {
	return schema.Definition{
		Name: "Series",
		New:  newOf[Series](),
		Fields: []schema.Field{
			schema.Int("id", func(s *Series) **int { return &s.ID }),
			schema.String("title", func(s *Series) **string { return &s.Title }),
			schema.String("description", func(s *Series) **string { return &s.Description }),
			schema.String("resourceUri", func(s *Series) **string { return &s.ResourceURI }),
			schema.ObjectsOf("urls", func(s *Series) *[]*URL { return &s.URLs }),
			schema.Int("startYear", func(s *Series) **int { return &s.StartYear }),
			schema.Int("endYear", func(s *Series) **int { return &s.EndYear }),
			schema.String("rating", func(s *Series) **string { return &s.Rating }),
			schema.String("modified", func(s *Series) **string { return &s.Modified }),
			schema.ObjectOf("thumbnail", func(s *Series) **Image { return &s.Thumbnail }),
			schema.ObjectOf("comics", func(s *Series) **ComicList { return &s.Comics }),
			schema.ObjectOf("stories", func(s *Series) **StoryList { return &s.Stories }),
			schema.ObjectOf("events", func(s *Series) **EventList { return &s.Events }),
			schema.ObjectOf("characters", func(s *Series) **CharacterList { return &s.Characters }),
			schema.ObjectOf("creators", func(s *Series) **CreatorList { return &s.Creators }),
			schema.ObjectOf("next", func(s *Series) **SeriesSummary { return &s.Next }),
			schema.ObjectOf("previous", func(s *Series) **SeriesSummary { return &s.Previous }),
		},
		AttributeMap: resourceURI,
	}
}

func storyDefinition() schema.Definition {
	return schema.Definition{
		Name: "Story",
		New:  newOf[Story](),
		Fields: []schema.Field{
			schema.Int("id", func(s *Story) **int { return &s.ID }),
			schema.String("title", func(s *Story) **string { return &s.Title }),
			schema.String("description", func(s *Story) **string { return &s.Description }),
			schema.String("resourceUri", func(s *Story) **string { return &s.ResourceURI }),
			schema.String("type", func(s *Story) **string { return &s.Type }),
			schema.String("modified", func(s *Story) **string { return &s.Modified }),
			schema.ObjectOf("thumbnail", func(s *Story) **Image { return &s.Thumbnail }),
			schema.ObjectOf("comics", func(s *Story) **ComicList { return &s.Comics }),
			schema.ObjectOf("series", func(s *Story) **SeriesList { return &s.Series }),
			schema.ObjectOf("events", func(s *Story) **EventList { return &s.Events }),
			schema.ObjectOf("characters", func(s *Story) **CharacterList { return &s.Characters }),
			schema.ObjectOf("creators", func(s *Story) **CreatorList { return &s.Creators }),
			schema.ObjectOf("originalissue", func(s *Story) **ComicSummary { return &s.OriginalIssue }),
		},
		AttributeMap: resourceURI,
	}
}

// definitions returns every type of the package in dependency-free order;
// references between types are resolved when values are decoded.
func definitions() []schema.Definition {
	return []schema.Definition{
		{
			Name: "Image",
			New:  newOf[Image](),
			Fields: []schema.Field{
				schema.String("path", func(i *Image) **string { return &i.Path }),
				schema.String("extension", func(i *Image) **string { return &i.Extension }),
			},
		},
		{
			Name: "Url",
			New:  newOf[URL](),
			Fields: []schema.Field{
				schema.String("type", func(u *URL) **string { return &u.Type }),
				schema.String("url", func(u *URL) **string { return &u.URL }),
			},
		},
		{
			Name: "TextObject",
			New:  newOf[TextObject](),
			Fields: []schema.Field{
				schema.String("type", func(t *TextObject) **string { return &t.Type }),
				schema.String("language", func(t *TextObject) **string { return &t.Language }),
				schema.String("text", func(t *TextObject) **string { return &t.Text }),
			},
		},
		{
			Name: "ComicPrice",
			New:  newOf[ComicPrice](),
			Fields: []schema.Field{
				schema.String("type", func(p *ComicPrice) **string { return &p.Type }),
				schema.Float("price", func(p *ComicPrice) **float64 { return &p.Price }),
			},
		},
		{
			Name: "ComicDate",
			New:  newOf[ComicDate](),
			Fields: []schema.Field{
				schema.String("type", func(d *ComicDate) **string { return &d.Type }),
				schema.String("date", func(d *ComicDate) **string { return &d.Date }),
			},
		},

		summaryDefinition[ComicSummary](),
		summaryDefinition[CharacterSummary](
			schema.String("role", func(s *CharacterSummary) **string { return &s.Role }),
		),
		summaryDefinition[CreatorSummary](
			schema.String("role", func(s *CreatorSummary) **string { return &s.Role }),
		),
		summaryDefinition[EventSummary](),
		summaryDefinition[SeriesSummary](),
		summaryDefinition[StorySummary](
			schema.String("type", func(s *StorySummary) **string { return &s.Type }),
		),

		listDefinition(func(l *ComicList) *[]*ComicSummary { return &l.Items }),
		listDefinition(func(l *CharacterList) *[]*CharacterSummary { return &l.Items }),
		listDefinition(func(l *CreatorList) *[]*CreatorSummary { return &l.Items }),
		listDefinition(func(l *EventList) *[]*EventSummary { return &l.Items }),
		listDefinition(func(l *SeriesList) *[]*SeriesSummary { return &l.Items }),
		listDefinition(func(l *StoryList) *[]*StorySummary { return &l.Items }),

		comicDefinition(),
		characterDefinition(),
		creatorDefinition(),
		eventDefinition(),
		seriesDefinition(),
		storyDefinition(),

		containerDefinition(func(c *ComicDataContainer) *[]*Comic { return &c.Results }),
		containerDefinition(func(c *CharacterDataContainer) *[]*Character { return &c.Results }),
		containerDefinition(func(c *CreatorDataContainer) *[]*Creator { return &c.Results }),
		containerDefinition(func(c *EventDataContainer) *[]*Event { return &c.Results }),
		containerDefinition(func(c *SeriesDataContainer) *[]*Series { return &c.Results }),
		containerDefinition(func(c *StoryDataContainer) *[]*Story { return &c.Results }),

		wrapperDefinition(func(w *ComicDataWrapper) **ComicDataContainer { return &w.Data }),
		wrapperDefinition(func(w *CharacterDataWrapper) **CharacterDataContainer { return &w.Data }),
		wrapperDefinition(func(w *CreatorDataWrapper) **CreatorDataContainer { return &w.Data }),
		wrapperDefinition(func(w *EventDataWrapper) **EventDataContainer { return &w.Data }),
		wrapperDefinition(func(w *SeriesDataWrapper) **SeriesDataContainer { return &w.Data }),
		wrapperDefinition(func(w *StoryDataWrapper) **StoryDataContainer { return &w.Data }),
	}
}

func enums() []schema.Enum {
	return []schema.Enum{
		{Name: "ComicFormat", Values: enumValues(ComicFormats)},
	}
}
