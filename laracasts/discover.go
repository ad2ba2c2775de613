package laracasts

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/log"
	"github.com/samber/lo"
)

const (
	browsePath    = "/browse/all"
	seriesAnchors = `a:not([class])[href^="/series/"]`
	playerFrame   = `iframe[src*="player.vimeo.com"]`
)

// Topics lists every topic of the browse page.
func (l *Laracasts) Topics(ctx context.Context) ([]*catalog.Topic, error) {
	doc, err := l.document(ctx, l.resolve(browsePath))
	if err != nil {
		return nil, err
	}

	selector := fmt.Sprintf(`[href^='%s/topics/'], [href^='/topics/']`, l.BaseURL())

	var topics []*catalog.Topic
	doc.Find(selector).Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		title := strings.TrimSpace(anchor.Find("h2").First().Text())
		if title == "" {
			return
		}

		topics = append(topics, &catalog.Topic{
			Title: title,
			Slug:  slug(href),
			URL:   l.resolve(href),
		})
	})

	log.Debugf("found %d topics", len(topics))
	return lo.UniqBy(topics, func(t *catalog.Topic) string { return t.URL }), nil
}

// Series lists the series linked from a topic page.
func (l *Laracasts) Series(ctx context.Context, topic *catalog.Topic) ([]*catalog.Series, error) {
	doc, err := l.document(ctx, topic.URL)
	if err != nil {
		return nil, err
	}

	var series []*catalog.Series
	doc.Find(seriesAnchors).Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		title := strings.TrimSpace(anchor.Text())
		if title == "" {
			return
		}

		series = append(series, &catalog.Series{
			Title: title,
			Slug:  slug(href),
			URL:   l.resolve(href),
			Topic: topic,
		})
	})

	log.Debugf("found %d series in %s", len(series), topic.Title)
	return lo.UniqBy(series, func(s *catalog.Series) string { return s.URL }), nil
}

// Episodes lists the episodes of a series page.
func (l *Laracasts) Episodes(ctx context.Context, series *catalog.Series) ([]*catalog.Episode, error) {
	doc, err := l.document(ctx, series.URL)
	if err != nil {
		return nil, err
	}

	selector := fmt.Sprintf(`h4 > a[href^='/series/%s/episodes/']`, series.Slug)

	var episodes []*catalog.Episode
	doc.Find(selector).Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		title, ok := anchor.Attr("title")
		if !ok || strings.TrimSpace(title) == "" {
			title = anchor.Text()
		}

		episodes = append(episodes, &catalog.Episode{
			ID:     slug(href),
			Title:  strings.TrimSpace(title),
			URL:    l.resolve(href),
			Series: series,
		})
	})

	log.Debugf("found %d episodes in %s", len(episodes), series.Title)
	return lo.UniqBy(episodes, func(e *catalog.Episode) string { return e.URL }), nil
}

// EpisodePageURL returns the player page embedded in the episode page.
// A page without a player means the session cannot watch the episode.
func (l *Laracasts) EpisodePageURL(ctx context.Context, episode *catalog.Episode) (string, error) {
	doc, err := l.document(ctx, episode.URL)
	if err != nil {
		return "", err
	}

	src, ok := doc.Find(playerFrame).First().Attr("src")
	if !ok || src == "" {
		return "", catalog.ErrEpisodePageUnavailable
	}
	return l.resolve(src), nil
}
