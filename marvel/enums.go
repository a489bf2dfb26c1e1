package marvel

// ComicFormat is the publication format reported on a comic.
type ComicFormat string

const (
	ComicFormatComic          ComicFormat = "Comic"
	ComicFormatMagazine       ComicFormat = "Magazine"
	ComicFormatTradePaperback ComicFormat = "Trade Paperback"
	ComicFormatHardcover      ComicFormat = "Hardcover"
	ComicFormatDigest         ComicFormat = "Digest"
	ComicFormatGraphicNovel   ComicFormat = "Graphic Novel"
	ComicFormatDigitalComic   ComicFormat = "Digital Comic"
	ComicFormatInfiniteComic  ComicFormat = "Infinite Comic"
)

// ComicFormats lists every ComicFormat in declaration order.
var ComicFormats = []ComicFormat{
	ComicFormatComic,
	ComicFormatMagazine,
	ComicFormatTradePaperback,
	ComicFormatHardcover,
	ComicFormatDigest,
	ComicFormatGraphicNovel,
	ComicFormatDigitalComic,
	ComicFormatInfiniteComic,
}

// Format filters comics by issue format. Values are lower case on the wire.
type Format string

const (
	FormatComic          Format = "comic"
	FormatMagazine       Format = "magazine"
	FormatTradePaperback Format = "trade paperback"
	FormatHardcover      Format = "hardcover"
	FormatDigest         Format = "digest"
	FormatGraphicNovel   Format = "graphic novel"
	FormatDigitalComic   Format = "digital comic"
	FormatInfiniteComic  Format = "infinite comic"
	FormatCollection     Format = "collection"
)

// FormatType filters comics by format type.
type FormatType string

const (
	FormatTypeComic      FormatType = "comic"
	FormatTypeCollection FormatType = "collection"
)

// DateDescriptor selects a predefined date range.
type DateDescriptor string

const (
	LastWeek  DateDescriptor = "lastWeek"
	ThisWeek  DateDescriptor = "thisWeek"
	NextWeek  DateDescriptor = "nextWeek"
	ThisMonth DateDescriptor = "thisMonth"
)

// OrderBy orders a result set. Descending variants carry a leading "-".
type OrderBy string

const (
	OrderByID              OrderBy = "id"
	OrderByIDDesc          OrderBy = "-id"
	OrderByName            OrderBy = "name"
	OrderByNameDesc        OrderBy = "-name"
	OrderByTitle           OrderBy = "title"
	OrderByTitleDesc       OrderBy = "-title"
	OrderByModified        OrderBy = "modified"
	OrderByModifiedDesc    OrderBy = "-modified"
	OrderByStartDate       OrderBy = "startDate"
	OrderByStartDateDesc   OrderBy = "-startDate"
	OrderByStartYear       OrderBy = "startYear"
	OrderByStartYearDesc   OrderBy = "-startYear"
	OrderByLastName        OrderBy = "lastName"
	OrderByLastNameDesc    OrderBy = "-lastName"
	OrderByFirstName       OrderBy = "firstName"
	OrderByFirstNameDesc   OrderBy = "-firstName"
	OrderByMiddleName      OrderBy = "middleName"
	OrderByMiddleNameDesc  OrderBy = "-middleName"
	OrderBySuffix          OrderBy = "suffix"
	OrderBySuffixDesc      OrderBy = "-suffix"
	OrderByFocDate         OrderBy = "focDate"
	OrderByFocDateDesc     OrderBy = "-focDate"
	OrderByOnsaleDate      OrderBy = "onsaleDate"
	OrderByOnsaleDateDesc  OrderBy = "-onsaleDate"
	OrderByIssueNumber     OrderBy = "issueNumber"
	OrderByIssueNumberDesc OrderBy = "-issueNumber"
)

// SeriesType filters series by publication type.
type SeriesType string

const (
	SeriesTypeCollection SeriesType = "collection"
	SeriesTypeOneShot    SeriesType = "one shot"
	SeriesTypeLimited    SeriesType = "limited"
	SeriesTypeOngoing    SeriesType = "ongoing"
)

func enumValues[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
