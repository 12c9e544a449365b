package content

// ContentType identifies the source family of a normalized item.
type ContentType string

const (
	TypeNews   ContentType = "news"
	TypeMovie  ContentType = "movie"
	TypeSocial ContentType = "social"
)

// TypeFilter narrows a projection to a single content type. FilterAll
// disables type filtering.
type TypeFilter string

const (
	FilterAll    TypeFilter = "all"
	FilterNews   TypeFilter = "news"
	FilterMovie  TypeFilter = "movie"
	FilterSocial TypeFilter = "social"
)

// Valid reports whether f is one of the recognized filter values.
func (f TypeFilter) Valid() bool {
	switch f {
	case FilterAll, FilterNews, FilterMovie, FilterSocial:
		return true
	}
	return false
}

// Meta carries optional display attributes. Zero values mean "absent".
type Meta struct {
	Source string  `json:"source,omitempty"`
	Rating float64 `json:"rating,omitempty"` // 0-10 scale
	Author string  `json:"author,omitempty"`
	Date   string  `json:"date,omitempty"` // ISO-8601
}

// NormalizedContent is the canonical content shape every provider record is
// converted into. IDs are globally unique across sources: movie and social
// ids carry a source prefix, news items use the provider's native article id.
type NormalizedContent struct {
	ID          string      `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image,omitempty"`
	Meta        Meta        `json:"meta"`
	URL         string      `json:"url,omitempty"`
}

// Raw provider record shapes. Field names mirror the provider payloads so the
// rest of the application never sees provider schemas.

// NewsArticle is a raw record from the newsdata.io response.
type NewsArticle struct {
	ArticleID   string `json:"article_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ImageURL    string `json:"image_url"`
	SourceName  string `json:"source_name"`
	PubDate     string `json:"pubDate"`
}

// Movie is a raw record from the TMDB popular/trending responses.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}
