package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/laradl/laradl/catalog"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeCatalog struct {
	tree map[string][]string
}

func (f fakeCatalog) Topics(context.Context) ([]*catalog.Topic, error) {
	return []*catalog.Topic{{Title: "Laravel", Slug: "laravel"}, {Title: "Testing", Slug: "testing"}}, nil
}

func (f fakeCatalog) Series(_ context.Context, topic *catalog.Topic) ([]*catalog.Series, error) {
	var series []*catalog.Series
	for _, title := range f.tree[topic.Title] {
		series = append(series, &catalog.Series{Title: title})
	}
	return series, nil
}

func (f fakeCatalog) Episodes(context.Context, *catalog.Series) ([]*catalog.Episode, error) {
	return []*catalog.Episode{{ID: "1", Title: "Intro"}, {ID: "2", Title: "Setup"}}, nil
}

func (f fakeCatalog) EpisodePageURL(context.Context, *catalog.Episode) (string, error) {
	panic("listing never resolves players")
}

func (f fakeCatalog) BaseURL() string {
	return "https://laracasts.com"
}

func newFake() fakeCatalog {
	return fakeCatalog{tree: map[string][]string{
		"Laravel": {"Laravel From Scratch", "Queues in Action"},
		"Testing": {"Husband", "Pest Driven Laravel"},
	}}
}

func TestRun(t *testing.T) {
	Convey("Given a catalog", t, func() {
		var out bytes.Buffer
		options := &Options{Out: &out, Discoverer: newFake()}

		Convey("Listing everything as text should print topics and series", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			So(out.String(), ShouldEqual, "Laravel\n  Laravel From Scratch\n  Queues in Action\nTesting\n  Husband\n  Pest Driven Laravel\n")
		})

		Convey("Filters should narrow the tree", func() {
			options.TopicFilter = "test"
			options.SeriesFilter = "hsbnd"
			options.Episodes = true

			So(Run(context.Background(), options), ShouldBeNil)
			So(out.String(), ShouldEqual, "Testing\n  Husband\n    1. Intro\n    2. Setup\n")
		})

		Convey("An episode filter should imply episodes", func() {
			filter, err := catalog.ParseEpisodesFilter("last")
			So(err, ShouldBeNil)
			options.SeriesFilter = "husband"
			options.EpisodesFilter = mo.Some(filter)

			topics, err := Collect(context.Background(), options)
			So(err, ShouldBeNil)
			So(topics, ShouldHaveLength, 2)
			So(topics[0].Series, ShouldBeEmpty)
			So(topics[1].Series[0].Episodes, ShouldHaveLength, 1)
			So(topics[1].Series[0].Episodes[0].Series, ShouldEqual, topics[1].Series[0])
		})

		Convey("JSON output should carry the site and the tree", func() {
			options.Json = true
			options.TopicFilter = "laravel"

			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Site, ShouldEqual, "https://laracasts.com")
			So(output.Topics, ShouldHaveLength, 1)
			So(output.Topics[0].Series, ShouldHaveLength, 2)
		})
	})

	Convey("Given no topics", t, func() {
		var out bytes.Buffer

		Convey("JSON output should still be a valid empty document", func() {
			So(writeJson(&out, "", nil), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Topics, ShouldNotBeNil)
			So(output.Topics, ShouldHaveLength, 0)
		})
	})
}
