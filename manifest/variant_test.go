package manifest

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelect(t *testing.T) {
	Convey("Given variants in discovery order", t, func() {
		variants := []Variant{
			{Height: 360, URL: "a"},
			{Height: 720, URL: "b"},
			{Height: 1080, URL: "c"},
			{Height: 2160, URL: "d"},
		}

		Convey("A ceiling matching a variant picks it", func() {
			So(Select(variants, 1080).OrEmpty(), ShouldEqual, "c")
		})

		Convey("A ceiling above every variant picks the tallest", func() {
			So(Select(variants, 4000).OrEmpty(), ShouldEqual, "d")
		})

		Convey("A ceiling below every variant yields nothing", func() {
			So(Select(variants, 200).IsAbsent(), ShouldBeTrue)
		})

		Convey("A ceiling between heights picks the next lower one", func() {
			So(Select(variants, 1000).OrEmpty(), ShouldEqual, "b")
		})
	})

	Convey("Given unsorted variants", t, func() {
		variants := []Variant{
			{Height: 2160, URL: "too-tall"},
			{Height: 540, URL: "low"},
			{Height: 1440, URL: "too-tall-too"},
			{Height: 720, URL: "fit"},
		}

		Convey("A lower variant after a disqualified one is still found", func() {
			So(Select(variants, 1080).OrEmpty(), ShouldEqual, "fit")
		})
	})

	Convey("Given variants with equal heights", t, func() {
		variants := []Variant{
			{Height: 720, URL: "first"},
			{Height: 720, URL: "second"},
		}

		Convey("The first one seen is kept", func() {
			So(Select(variants, 2160).OrEmpty(), ShouldEqual, "first")
		})
	})

	Convey("Given no variants", t, func() {
		Convey("Nothing is selected", func() {
			So(Select(nil, 2160).IsPresent(), ShouldBeFalse)
		})
	})
}
