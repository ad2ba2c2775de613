package manifest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func playerPage(config string) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><body><script>
(function(document, player) { var config = %s; if (!config.request) { return; } player.init(config); })(document, window.player);
</script></body></html>`, config)
}

const progressiveConfig = `{"request":{"files":{"progressive":[
	{"profile":164,"width":640,"height":360,"url":"https://cdn.example/360.mp4"},
	{"profile":174,"width":1280,"height":720,"url":"https://cdn.example/720.mp4"},
	{"profile":175,"width":1920,"height":1080,"url":"https://cdn.example/1080.mp4"},
	{"profile":172,"width":3840,"height":2160,"url":"https://cdn.example/2160.mp4"}
]}},"video":{"title":"It's {braced}"}}`

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should list renditions in page order", func() {
			variants, err := Parse([]byte(playerPage(progressiveConfig)))
			So(err, ShouldBeNil)
			So(variants, ShouldHaveLength, 4)
			So(variants[0], ShouldResemble, Variant{Height: 360, URL: "https://cdn.example/360.mp4"})
			So(variants[3].Height, ShouldEqual, 2160)
		})

		Convey("Should fail without a config object", func() {
			_, err := Parse([]byte(`<html><iframe></iframe></html>`))
			So(err, ShouldEqual, ErrManifestNotFound)
		})

		Convey("Should fail when the object is not followed by the player guard", func() {
			_, err := Parse([]byte(`<script>var config = {"request":{"files":{"progressive":[{"quality":"720p","url":"https://cdn/v.mp4"}]}}};</script>`))
			So(err, ShouldEqual, ErrManifestNotFound)
		})

		Convey("Should fail on invalid JSON", func() {
			_, err := Parse([]byte(playerPage(`{request: {files: 1}}`)))
			So(err, ShouldEqual, ErrManifestMalformed)
		})

		Convey("Should fail when the progressive list is missing", func() {
			_, err := Parse([]byte(playerPage(`{"request":{"files":{"hls":{}}}}`)))
			So(err, ShouldEqual, ErrNoVariants)
		})

		Convey("Should fail when the progressive list is empty", func() {
			_, err := Parse([]byte(playerPage(`{"request":{"files":{"progressive":[]}}}`)))
			So(err, ShouldEqual, ErrNoVariants)
		})
	})
}

func TestResolver(t *testing.T) {
	Convey("Given a player server", t, func() {
		var referer string
		mux := http.NewServeMux()
		mux.HandleFunc("/video/1", func(w http.ResponseWriter, r *http.Request) {
			referer = r.Header.Get("Referer")
			fmt.Fprint(w, playerPage(progressiveConfig))
		})
		mux.HandleFunc("/video/broken", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>Sorry, this video does not exist.</html>")
		})
		server := httptest.NewServer(mux)
		Reset(server.Close)

		ctx := context.Background()

		Convey("The best rendition under the ceiling is returned", func() {
			resolver := New(server.Client(), WithReferer("https://laracasts.com"), WithMaxQuality(1080))
			url, err := resolver.Resolve(ctx, server.URL+"/video/1")
			So(err, ShouldBeNil)
			So(url.OrEmpty(), ShouldEqual, "https://cdn.example/1080.mp4")
			So(referer, ShouldEqual, "https://laracasts.com")
		})

		Convey("The default ceiling accepts 2160p", func() {
			resolver := New(server.Client(), WithMaxQuality(0))
			So(resolver.MaxQuality(), ShouldEqual, 2160)
			url, err := resolver.Resolve(ctx, server.URL+"/video/1")
			So(err, ShouldBeNil)
			So(url.OrEmpty(), ShouldEqual, "https://cdn.example/2160.mp4")
		})

		Convey("A ceiling below every rendition resolves to nothing", func() {
			resolver := New(server.Client(), WithMaxQuality(200))
			url, err := resolver.Resolve(ctx, server.URL+"/video/1")
			So(err, ShouldBeNil)
			So(url.IsAbsent(), ShouldBeTrue)
		})

		Convey("A page without a manifest fails with ErrManifestNotFound", func() {
			resolver := New(server.Client())
			_, err := resolver.Resolve(ctx, server.URL+"/video/broken")
			So(errors.Is(err, ErrManifestNotFound), ShouldBeTrue)
		})

		Convey("A missing page reports the status", func() {
			resolver := New(server.Client())
			_, err := resolver.Resolve(ctx, server.URL+"/video/404")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
		})
	})
}
