package config

import (
	"testing"

	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.DownloadsMaxQuality), ShouldEqual, constant.DefaultMaxQuality)
			So(viper.GetString(key.DownloadsPath), ShouldEqual, constant.DefaultDownloadPath)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("downloads.max_quality")
			So(result, ShouldEqual, "downloads_max_quality")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the max quality field", t, func() {
		field := Default[key.DownloadsMaxQuality]

		Convey("Env should be prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "LARADL_DOWNLOADS_MAX_QUALITY")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.DownloadsMaxQuality)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse should follow the type of the default", t, func() {
		quality := Default[key.DownloadsMaxQuality]
		v, err := quality.Parse([]string{"1080"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 1080)

		_, err = quality.Parse([]string{"hd"})
		So(err, ShouldNotBeNil)

		force := Default[key.DownloadsForce]
		v, err = force.Parse([]string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		path := Default[key.DownloadsPath]
		v, err = path.Parse([]string{"/media/laracasts", "ignored"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "/media/laracasts")

		_, err = path.Parse(nil)
		So(err, ShouldNotBeNil)
	})

	Convey("Only the password should be secret", t, func() {
		password := Default[key.LaracastsPassword]
		email := Default[key.LaracastsEmail]
		So(password.Secret(), ShouldBeTrue)
		So(email.Secret(), ShouldBeFalse)
	})

	Convey("Closest should suggest a registered key", t, func() {
		So(Closest("downloads.max_qualty"), ShouldEqual, key.DownloadsMaxQuality)

		_, ok := Lookup("downloads.max_qualty")
		So(ok, ShouldBeFalse)
	})
}
