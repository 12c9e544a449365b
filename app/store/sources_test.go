package store

import (
	"testing"

	"github.com/dailydash/dailydash/app/content"
)

func TestSourceCache_MergedOrder(t *testing.T) {
	c := NewSourceCache()

	c.SetNews([]content.NormalizedContent{
		testItem("n1", content.TypeNews, "News"),
	})
	c.SetMovies([]content.NormalizedContent{
		testItem("movie-1", content.TypeMovie, "Movie"),
	})

	merged := c.Merged()
	if len(merged) != 6 {
		t.Fatalf("Expected news + movies + 4 social posts = 6 items, got %d", len(merged))
	}
	if merged[0].ID != "n1" {
		t.Errorf("Expected news first in merge order, got '%s'", merged[0].ID)
	}
	if merged[1].ID != "movie-1" {
		t.Errorf("Expected movies after news, got '%s'", merged[1].ID)
	}
	if merged[2].Type != content.TypeSocial {
		t.Errorf("Expected social posts last, got type '%s'", merged[2].Type)
	}
}

func TestSourceCache_EmptySourcesYieldSocialOnly(t *testing.T) {
	c := NewSourceCache()

	merged := c.Merged()
	if len(merged) != 4 {
		t.Fatalf("With no provider data only the 4 social posts remain, got %d", len(merged))
	}
}

func TestSourceCache_TrendingIsSeparateFromMovies(t *testing.T) {
	c := NewSourceCache()

	c.SetMovies([]content.NormalizedContent{
		testItem("movie-1", content.TypeMovie, "Popular"),
	})
	c.SetTrending([]content.NormalizedContent{
		testItem("movie-2", content.TypeMovie, "Trending"),
	})

	trending := c.Trending()
	if len(trending) != 1 || trending[0].ID != "movie-2" {
		t.Errorf("Expected trending batch [movie-2], got %v", trending)
	}

	merged := c.Merged()
	for _, item := range merged {
		if item.ID == "movie-2" {
			t.Error("Trending batch must not leak into the merged set")
		}
	}
}

func TestSourceCache_ReturnsCopies(t *testing.T) {
	c := NewSourceCache()

	c.SetNews([]content.NormalizedContent{
		testItem("n1", content.TypeNews, "News"),
	})

	news := c.News()
	news[0].ID = "mutated"

	if c.News()[0].ID != "n1" {
		t.Error("Mutating a returned batch must not affect the cache")
	}
}
