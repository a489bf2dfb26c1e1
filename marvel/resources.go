package marvel

import "context"

// Every listing accepts a nil query.

// CharacterResource serves /characters.
type CharacterResource struct{ c *Client }

// List fetches characters.
func (r *CharacterResource) List(ctx context.Context, q *CharacterQuery) (*CharacterDataWrapper, error) {
	return fetch[CharacterDataWrapper](ctx, r.c, "/characters", q)
}

// Get fetches a single character by id.
func (r *CharacterResource) Get(ctx context.Context, id int) (*CharacterDataWrapper, error) {
	return fetch[CharacterDataWrapper](ctx, r.c, path("characters", id), nil)
}

// Comics lists comics featuring a character.
func (r *CharacterResource) Comics(ctx context.Context, id int, q *ComicQuery) (*ComicDataWrapper, error) {
	return fetch[ComicDataWrapper](ctx, r.c, path("characters", id, "comics"), q)
}

// Events lists events in which a character appears.
func (r *CharacterResource) Events(ctx context.Context, id int, q *EventQuery) (*EventDataWrapper, error) {
	return fetch[EventDataWrapper](ctx, r.c, path("characters", id, "events"), q)
}

// Series lists series in which a character appears.
func (r *CharacterResource) Series(ctx context.Context, id int, q *SeriesQuery) (*SeriesDataWrapper, error) {
	return fetch[SeriesDataWrapper](ctx, r.c, path("characters", id, "series"), q)
}

// Stories lists stories featuring a character.
func (r *CharacterResource) Stories(ctx context.Context, id int, q *StoryQuery) (*StoryDataWrapper, error) {
	return fetch[StoryDataWrapper](ctx, r.c, path("characters", id, "stories"), q)
}

// ComicResource serves /comics.
type ComicResource struct{ c *Client }

// List fetches comics.
func (r *ComicResource) List(ctx context.Context, q *ComicQuery) (*ComicDataWrapper, error) {
	return fetch[ComicDataWrapper](ctx, r.c, "/comics", q)
}

// Get fetches a single comic by id.
func (r *ComicResource) Get(ctx context.Context, id int) (*ComicDataWrapper, error) {
	return fetch[ComicDataWrapper](ctx, r.c, path("comics", id), nil)
}

// Characters lists characters appearing in a comic.
func (r *ComicResource) Characters(ctx context.Context, id int, q *CharacterQuery) (*CharacterDataWrapper, error) {
	return fetch[CharacterDataWrapper](ctx, r.c, path("comics", id, "characters"), q)
}

// Creators lists creators who worked on a comic.
func (r *ComicResource) Creators(ctx context.Context, id int, q *CreatorQuery) (*CreatorDataWrapper, error) {
	return fetch[CreatorDataWrapper](ctx, r.c, path("comics", id, "creators"), q)
}

// Events lists events a comic takes place in.
func (r *ComicResource) Events(ctx context.Context, id int, q *EventQuery) (*EventDataWrapper, error) {
	return fetch[EventDataWrapper](ctx, r.c, path("comics", id, "events"), q)
}

// Stories lists stories contained in a comic.
func (r *ComicResource) Stories(ctx context.Context, id int, q *StoryQuery) (*StoryDataWrapper, error) {
	return fetch[StoryDataWrapper](ctx, r.c, path("comics", id, "stories"), q)
}

// CreatorResource serves /creators.
type CreatorResource struct{ c *Client }

// List fetches creators.
func (r *CreatorResource) List(ctx context.Context, q *CreatorQuery) (*CreatorDataWrapper, error) {
	return fetch[CreatorDataWrapper](ctx, r.c, "/creators", q)
}

// Get fetches a single creator by id.
func (r *CreatorResource) Get(ctx context.Context, id int) (*CreatorDataWrapper, error) {
	return fetch[CreatorDataWrapper](ctx, r.c, path("creators", id), nil)
}

// Comics lists comics a creator worked on.
func (r *CreatorResource) Comics(ctx context.Context, id int, q *ComicQuery) (*ComicDataWrapper, error) {
	return fetch[ComicDataWrapper](ctx, r.c, path("creators", id, "comics"), q)
}

// Events lists events featuring a creator's work.
func (r *CreatorResource) Events(ctx context.Context, id int, q *EventQuery) (*EventDataWrapper, error) {
	return fetch[EventDataWrapper](ctx, r.c, path("creators", id, "events"), q)
}

// Series lists series a creator worked on.
func (r *CreatorResource) Series(ctx context.Context, id int, q *SeriesQuery) (*SeriesDataWrapper, error) {
	return fetch[SeriesDataWrapper](ctx, r.c, path("creators", id, "series"), q)
}

// Stories lists stories a creator worked on.
func (r *CreatorResource) Stories(ctx context.Context, id int, q *StoryQuery) (*StoryDataWrapper, error) {
	return fetch[StoryDataWrapper](ctx, r.c, path("creators", id, "stories"), q)
}

// EventResource serves /events.
type EventResource struct{ c *Client }

// List fetches events.
func (r *EventResource) List(ctx context.Context, q *EventQuery) (*EventDataWrapper, error) {
	return fetch[EventDataWrapper](ctx, r.c, "/events", q)
}

// Get fetches a single event by id.
func (r *EventResource) Get(ctx context.Context, id int) (*EventDataWrapper, error) {
	return fetch[EventDataWrapper](ctx, r.c, path("events", id), nil)
}

// Characters lists characters appearing in an event.
func (r *EventResource) Characters(ctx context.Context, id int, q *CharacterQuery) (*CharacterDataWrapper, error) {
	return fetch[CharacterDataWrapper](ctx, r.c, path("events", id, "characters"), q)
}

// Comics lists comics that are part of an event.
func (r *EventResource) Comics(ctx context.Context, id int, q *ComicQuery) (*ComicDataWrapper, error) {
	return fetch[ComicDataWrapper](ctx, r.c, path("events", id, "comics"), q)
}

// Creators lists creators whose work appears in an event.
func (r *EventResource) Creators(ctx context.Context, id int, q *CreatorQuery) (*CreatorDataWrapper, error) {
	return fetch[CreatorDataWrapper](ctx, r.c, path("events", id, "creators"), q)
}

// Series lists series that are part of an event.
func (r *EventResource) Series(ctx context.Context, id int, q *SeriesQuery) (*SeriesDataWrapper, error) {
	return fetch[SeriesDataWrapper](ctx, r.c, path("events", id, "series"), q)
}

// Stories lists stories that are part of an event.
func (r *EventResource) Stories(ctx context.Context, id int, q *StoryQuery) (*StoryDataWrapper, error) {
	return fetch[StoryDataWrapper](ctx, r.c, path("events", id, "stories"), q)
}

// SeriesResource serves /series.
type SeriesResource struct{ c *Client }

// List fetches series.
func (r *SeriesResource) List(ctx context.Context, q *SeriesQuery) (*SeriesDataWrapper, error) {
	return fetch[SeriesDataWrapper](ctx, r.c, "/series", q)
}

// Get fetches a single series by id.
func (r *SeriesResource) Get(ctx context.Context, id int) (*SeriesDataWrapper, error) {
	return fetch[SeriesDataWrapper](ctx, r.c, path("series", id), nil)
}

// Characters lists characters appearing in a series.
func (r *SeriesResource) Characters(ctx context.Context, id int, q *CharacterQuery) (*CharacterDataWrapper, error) {
	return fetch[CharacterDataWrapper](ctx, r.c, path("series", id, "characters"), q)
}

// Comics lists comics in a series.
func (r *SeriesResource) Comics(ctx context.Context, id int, q *ComicQuery) (*ComicDataWrapper, error) {
	return fetch[ComicDataWrapper](ctx, r.c, path("series", id, "comics"), q)
}

// Creators lists creators who worked on a series.
func (r *SeriesResource) Creators(ctx context.Context, id int, q *CreatorQuery) (*CreatorDataWrapper, error) {
	return fetch[CreatorDataWrapper](ctx, r.c, path("series", id, "creators"), q)
}

// Events lists events that involve a series.
func (r *SeriesResource) Events(ctx context.Context, id int, q *EventQuery) (*EventDataWrapper, error) {
	return fetch[EventDataWrapper](ctx, r.c, path("series", id, "events"), q)
}

// Stories lists stories in a series.
func (r *SeriesResource) Stories(ctx context.Context, id int, q *StoryQuery) (*StoryDataWrapper, error) {
	return fetch[StoryDataWrapper](ctx, r.c, path("series", id, "stories"), q)
}

// StoryResource serves /stories.
type StoryResource struct{ c *Client }

// List fetches stories.
func (r *StoryResource) List(ctx context.Context, q *StoryQuery) (*StoryDataWrapper, error) {
	return fetch[StoryDataWrapper](ctx, r.c, "/stories", q)
}

// Get fetches a single story by id.
func (r *StoryResource) Get(ctx context.Context, id int) (*StoryDataWrapper, error) {
	return fetch[StoryDataWrapper](ctx, r.c, path("stories", id), nil)
}

// Characters lists characters appearing in a story.
func (r *StoryResource) Characters(ctx context.Context, id int, q *CharacterQuery) (*CharacterDataWrapper, error) {
	return fetch[CharacterDataWrapper](ctx, r.c, path("stories", id, "characters"), q)
}

// Comics lists comics a story appears in.
func (r *StoryResource) Comics(ctx context.Context, id int, q *ComicQuery) (*ComicDataWrapper, error) {
	return fetch[ComicDataWrapper](ctx, r.c, path("stories", id, "comics"), q)
}

// Creators lists creators who worked on a story.
func (r *StoryResource) Creators(ctx context.Context, id int, q *CreatorQuery) (*CreatorDataWrapper, error) {
	return fetch[CreatorDataWrapper](ctx, r.c, path("stories", id, "creators"), q)
}

// Events lists events a story takes place in.
func (r *StoryResource) Events(ctx context.Context, id int, q *EventQuery) (*EventDataWrapper, error) {
	return fetch[EventDataWrapper](ctx, r.c, path("stories", id, "events"), q)
}

// Series lists series a story appears in.
func (r *StoryResource) Series(ctx context.Context, id int, q *SeriesQuery) (*SeriesDataWrapper, error) {
	return fetch[SeriesDataWrapper](ctx, r.c, path("stories", id, "series"), q)
}
