package content

import "fmt"

const (
	posterBaseURL     = "https://image.tmdb.org/t/p/w500"
	movieDetailURL    = "https://www.themoviedb.org/movie/%d"
	maxMoviesPerBatch = 10
)

// NormalizeNews converts raw newsdata.io articles into canonical items.
// Provider data is uncontrolled input: missing display fields degrade to
// empty strings, a bad record never rejects the batch.
func NormalizeNews(articles []NewsArticle) []NormalizedContent {
	items := make([]NormalizedContent, 0, len(articles))
	for _, article := range articles {
		if article.ArticleID == "" {
			continue
		}
		items = append(items, NormalizedContent{
			ID:          article.ArticleID,
			Type:        TypeNews,
			Title:       article.Title,
			Description: article.Description,
			Image:       article.ImageURL,
			Meta: Meta{
				Source: article.SourceName,
				Date:   article.PubDate,
			},
			URL: article.Link,
		})
	}
	return items
}

// NormalizeMovies converts raw TMDB records into canonical items. Only the
// first 10 records of a response are kept. Trending batches additionally
// carry the release date in meta.
func NormalizeMovies(movies []Movie, trending bool) []NormalizedContent {
	if len(movies) > maxMoviesPerBatch {
		movies = movies[:maxMoviesPerBatch]
	}

	items := make([]NormalizedContent, 0, len(movies))
	for _, movie := range movies {
		item := NormalizedContent{
			ID:          fmt.Sprintf("movie-%d", movie.ID),
			Type:        TypeMovie,
			Title:       movie.Title,
			Description: movie.Overview,
			Meta: Meta{
				Rating: movie.VoteAverage,
			},
			URL: fmt.Sprintf(movieDetailURL, movie.ID),
		}

		if movie.PosterPath != "" {
			item.Image = posterBaseURL + movie.PosterPath
		}

		if trending {
			item.Meta.Date = movie.ReleaseDate
		}

		items = append(items, item)
	}
	return items
}
