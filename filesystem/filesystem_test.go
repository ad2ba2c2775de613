package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept a custom backend", func() {
			SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			fs := API()
			So(fs.Name(), ShouldEqual, "ReadOnlyFilter")
			So(fs.WriteFile("/file", []byte("x"), 0o644), ShouldNotBeNil)
			SetMemMapFs()
		})
	})
}
