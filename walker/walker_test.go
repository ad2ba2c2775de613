package walker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/manifest"
	"github.com/laradl/laradl/transfer"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// fakeCatalog serves a fixed tree. Episodes listed in unavailable have no player page.
type fakeCatalog struct {
	topics      []*catalog.Topic
	pages       map[string]string
	unavailable map[string]bool
	visited     []string
}

func (f *fakeCatalog) Topics(context.Context) ([]*catalog.Topic, error) {
	return f.topics, nil
}

func (f *fakeCatalog) Series(_ context.Context, topic *catalog.Topic) ([]*catalog.Series, error) {
	return topic.Series, nil
}

func (f *fakeCatalog) Episodes(_ context.Context, series *catalog.Series) ([]*catalog.Episode, error) {
	return series.Episodes, nil
}

func (f *fakeCatalog) EpisodePageURL(_ context.Context, episode *catalog.Episode) (string, error) {
	f.visited = append(f.visited, episode.Name())
	if f.unavailable[episode.Name()] {
		return "", catalog.ErrEpisodePageUnavailable
	}
	return f.pages[episode.Name()], nil
}

func site(media []byte) *httptest.Server {
	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/player/good", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `<html><script>var config = {"request":{"files":{"progressive":[{"height":1080,"url":"%s/u1"}]}}}; if (!config.request) {}</script></html>`, server.URL)
	})
	mux.HandleFunc("/player/empty", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>nothing to see</html>`))
	})
	mux.HandleFunc("/u1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Length", strconv.Itoa(len(media)))
		_, _ = w.Write(media)
	})

	server = httptest.NewServer(mux)
	return server
}

func tree(topics ...*catalog.Topic) []*catalog.Topic {
	for _, topic := range topics {
		for _, series := range topic.Series {
			series.Topic = topic
			for _, episode := range series.Episodes {
				episode.Series = series
			}
		}
	}
	return topics
}

func TestWalk(t *testing.T) {
	Convey("Given a catalog with one episode", t, func() {
		filesystem.SetMemMapFs()

		media := bytes.Repeat([]byte{'x'}, 1000)
		server := site(media)
		defer server.Close()

		discoverer := &fakeCatalog{
			topics: tree(&catalog.Topic{
				Title: "Testing",
				Series: []*catalog.Series{{
					Title:    "Husband",
					Episodes: []*catalog.Episode{{ID: "1", Title: "Intro"}},
				}},
			}),
			pages: map[string]string{"1. Intro": server.URL + "/player/good"},
		}

		resolver := manifest.New(server.Client(), manifest.WithMaxQuality(2160))
		engine := transfer.New(resolver, transfer.WithClient(server.Client()))

		var (
			received int64
			recorded []string
		)
		walker := New(discoverer, engine,
			WithRoot("./laracasts"),
			WithSinks(func(*catalog.Episode) transfer.Sink {
				return transfer.SinkFunc(func(e transfer.Event) {
					received += e.Delta
				})
			}),
			WithRecorder(func(_ *catalog.Episode, path string, size int64) error {
				recorded = append(recorded, fmt.Sprintf("%s:%d", path, size))
				return nil
			}),
		)

		Convey("When walking", func() {
			report, err := walker.Walk(context.Background())

			Convey("Then the episode should be downloaded into its topic and series", func() {
				So(err, ShouldBeNil)
				So(report.Downloaded, ShouldEqual, 1)
				So(report.Failed, ShouldEqual, 0)

				info, err := filesystem.API().Stat("laracasts/Testing/Husband/1. Intro.mp4")
				So(err, ShouldBeNil)
				So(info.Size(), ShouldEqual, int64(1000))
				So(received, ShouldEqual, int64(1000))
				So(recorded, ShouldResemble, []string{"laracasts/Testing/Husband/1. Intro.mp4:1000"})
			})

			Convey("And walking again should skip it", func() {
				report, err := walker.Walk(context.Background())
				So(err, ShouldBeNil)
				So(report.Downloaded, ShouldEqual, 0)
				So(report.Skipped, ShouldEqual, 1)
				So(recorded, ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given a catalog where one episode has no manifest", t, func() {
		filesystem.SetMemMapFs()

		server := site([]byte("video"))
		defer server.Close()

		discoverer := &fakeCatalog{
			topics: tree(&catalog.Topic{
				Title: "Laravel",
				Series: []*catalog.Series{{
					Title: "Laravel 11 from Scratch",
					Episodes: []*catalog.Episode{
						{ID: "1", Title: "Broken"},
						{ID: "2", Title: "Works"},
					},
				}},
			}),
			pages: map[string]string{
				"1. Broken": server.URL + "/player/empty",
				"2. Works":  server.URL + "/player/good",
			},
		}

		engine := transfer.New(manifest.New(server.Client()), transfer.WithClient(server.Client()))
		walker := New(discoverer, engine, WithRoot("/root"))

		Convey("Then the failure should be counted and the walk should go on", func() {
			report, err := walker.Walk(context.Background())
			So(err, ShouldBeNil)
			So(report.Failed, ShouldEqual, 1)
			So(report.Downloaded, ShouldEqual, 1)
			So(report.Errors, ShouldHaveLength, 1)
			So(errors.Is(report.Errors[0], manifest.ErrManifestNotFound), ShouldBeTrue)

			exists, _ := filesystem.API().Exists("/root/Laravel/Laravel 11 from Scratch/2. Works.mp4")
			So(exists, ShouldBeTrue)
		})
	})

	Convey("Given a catalog with an unavailable episode page", t, func() {
		filesystem.SetMemMapFs()

		server := site([]byte("video"))
		defer server.Close()

		discoverer := &fakeCatalog{
			topics: tree(&catalog.Topic{
				Title: "PHP",
				Series: []*catalog.Series{{
					Title: "Object-Oriented Principles",
					Episodes: []*catalog.Episode{
						{ID: "1", Title: "Classes"},
						{ID: "2", Title: "Objects"},
					},
				}},
			}),
			unavailable: map[string]bool{"1. Classes": true},
		}

		engine := transfer.New(manifest.New(server.Client()), transfer.WithClient(server.Client()))
		walker := New(discoverer, engine, WithRoot("/root"))

		Convey("Then the walk should stop", func() {
			_, err := walker.Walk(context.Background())
			So(errors.Is(err, catalog.ErrEpisodePageUnavailable), ShouldBeTrue)
			So(discoverer.visited, ShouldResemble, []string{"1. Classes"})
		})
	})

	Convey("Given filters", t, func() {
		filesystem.SetMemMapFs()

		server := site([]byte("video"))
		defer server.Close()

		page := server.URL + "/player/good"
		discoverer := &fakeCatalog{
			topics: tree(
				&catalog.Topic{
					Title: "Laravel",
					Series: []*catalog.Series{
						{Title: "Laravel Queues in Action", Episodes: []*catalog.Episode{{ID: "1", Title: "Jobs"}}},
						{Title: "Eloquent Performance Patterns", Episodes: []*catalog.Episode{{ID: "1", Title: "Indexes"}}},
					},
				},
				&catalog.Topic{
					Title:  "Vue",
					Series: []*catalog.Series{{Title: "Learn Vue 3", Episodes: []*catalog.Episode{{ID: "1", Title: "Setup"}}}},
				},
			),
			pages: map[string]string{"1. Jobs": page, "1. Indexes": page, "1. Setup": page},
		}

		engine := transfer.New(manifest.New(server.Client()), transfer.WithClient(server.Client()))

		Convey("Then only matching topics and series should be walked", func() {
			walker := New(discoverer, engine, WithRoot("/root"), WithTopicFilter("larvl"), WithSeriesFilter("queues"))
			report, err := walker.Walk(context.Background())
			So(err, ShouldBeNil)
			So(report.Downloaded, ShouldEqual, 1)
			So(discoverer.visited, ShouldResemble, []string{"1. Jobs"})

			exists, _ := filesystem.API().DirExists("/root/Vue")
			So(exists, ShouldBeFalse)
		})
	})

	Convey("Given an episodes filter", t, func() {
		filesystem.SetMemMapFs()

		server := site([]byte("video"))
		defer server.Close()

		page := server.URL + "/player/good"
		discoverer := &fakeCatalog{
			topics: tree(&catalog.Topic{
				Title: "Testing",
				Series: []*catalog.Series{{
					Title: "Pest",
					Episodes: []*catalog.Episode{
						{ID: "1", Title: "Install"},
						{ID: "2", Title: "Expectations"},
						{ID: "3", Title: "Datasets"},
					},
				}},
			}),
			pages: map[string]string{"1. Install": page, "2. Expectations": page, "3. Datasets": page},
		}

		filter, err := catalog.ParseEpisodesFilter("2-3")
		So(err, ShouldBeNil)

		engine := transfer.New(manifest.New(server.Client()), transfer.WithClient(server.Client()))
		report, err := New(discoverer, engine, WithRoot("/root"), WithEpisodesFilter(filter)).Walk(context.Background())

		Convey("Then only the selected episodes should be downloaded", func() {
			So(err, ShouldBeNil)
			So(report.Downloaded, ShouldEqual, 2)
			So(discoverer.visited, ShouldResemble, []string{"2. Expectations", "3. Datasets"})
		})
	})

	Convey("Given a cancelled context", t, func() {
		filesystem.SetMemMapFs()

		discoverer := &fakeCatalog{
			topics: tree(&catalog.Topic{
				Title:  "Testing",
				Series: []*catalog.Series{{Title: "Pest", Episodes: []*catalog.Episode{{ID: "1", Title: "Intro"}}}},
			}),
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Then no episode should be visited", func() {
			_, err := New(discoverer, nil).Walk(ctx)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(discoverer.visited, ShouldBeEmpty)
		})
	})
}

func TestWalkHostileTitles(t *testing.T) {
	Convey("Given titles that resolve to relative directories", t, func() {
		filesystem.SetMemMapFs()

		server := site([]byte("video"))
		defer server.Close()

		discoverer := &fakeCatalog{
			topics: tree(&catalog.Topic{
				Title: "..",
				Slug:  "testing",
				Series: []*catalog.Series{{
					Title:    "..",
					Episodes: []*catalog.Episode{{ID: "1", Title: "Intro"}},
				}},
			}),
			pages: map[string]string{"1. Intro": server.URL + "/player/good"},
		}

		engine := transfer.New(manifest.New(server.Client()), transfer.WithClient(server.Client()))
		report, err := New(discoverer, engine, WithRoot("/home/u/laracasts")).Walk(context.Background())

		Convey("Then the file should stay two levels below the root", func() {
			So(err, ShouldBeNil)
			So(report.Downloaded, ShouldEqual, 1)

			exists, _ := filesystem.API().Exists("/home/u/laracasts/testing/_/1. Intro.mp4")
			So(exists, ShouldBeTrue)

			escaped, _ := filesystem.API().Exists("/home/1. Intro.mp4")
			So(escaped, ShouldBeFalse)
		})
	})
}

// streamer emits a transfer of unknown length and returns err.
type streamer struct {
	err error
}

func (s streamer) Download(_ context.Context, req transfer.Request, sink transfer.Sink) error {
	sink.Accept(transfer.Event{Delta: 512, Total: -1, FileName: req.TargetBaseName + ".mp4"})
	return s.err
}

// endingSink counts how each transfer was closed.
type endingSink struct {
	finished, failed int
}

func (e *endingSink) Accept(transfer.Event) {}
func (e *endingSink) Finish()               { e.finished++ }
func (e *endingSink) Fail(error)            { e.failed++ }

func TestEpisodeEndsSink(t *testing.T) {
	Convey("Given an episode streamed without a known length", t, func() {
		episode := tree(&catalog.Topic{
			Title:  "Testing",
			Series: []*catalog.Series{{Title: "Husband", Episodes: []*catalog.Episode{{ID: "1", Title: "Intro"}}}},
		})[0].Series[0].Episodes[0]
		discoverer := &fakeCatalog{pages: map[string]string{"1. Intro": "https://player.test/1"}}
		sink := &endingSink{}
		sinks := WithSinks(func(*catalog.Episode) transfer.Sink { return sink })

		Convey("When the download returns cleanly", func() {
			report := &Report{}
			err := New(discoverer, streamer{}, sinks).Episode(context.Background(), episode, "out", report)

			Convey("Then the sink should be finished once", func() {
				So(err, ShouldBeNil)
				So(report.Downloaded, ShouldEqual, 1)
				So(sink.finished, ShouldEqual, 1)
				So(sink.failed, ShouldEqual, 0)
			})
		})

		Convey("When the download fails", func() {
			err := New(discoverer, streamer{err: errors.New("connection reset")}, sinks).
				Episode(context.Background(), episode, "out", &Report{})

			Convey("Then the sink should be failed instead", func() {
				So(err, ShouldNotBeNil)
				So(sink.finished, ShouldEqual, 0)
				So(sink.failed, ShouldEqual, 1)
			})
		})
	})
}

func TestSeriesDir(t *testing.T) {
	Convey("Directory names should be sanitized", t, func() {
		w := New(nil, nil, WithRoot("out"))
		series := &catalog.Series{Title: "Input/Output", Topic: &catalog.Topic{Title: "PHP: The Right Way"}}
		So(w.seriesDir(series), ShouldEqual, "out/PHP The Right Way/InputOutput")

		dotted := &catalog.Series{Title: ".", Slug: "pest", Topic: &catalog.Topic{Title: "", Slug: "testing"}}
		So(w.seriesDir(dotted), ShouldEqual, "out/testing/pest")
	})
}
