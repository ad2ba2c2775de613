package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestPassword(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		So(DeletePassword("taylor@laravel.com"), ShouldBeNil)

		Convey("Reading the password should report it missing", func() {
			_, err := GetPassword("taylor@laravel.com")
			So(err, ShouldEqual, ErrNoPassword)
		})

		Convey("When a password is stored", func() {
			So(SetPassword("taylor@laravel.com", "secret"), ShouldBeNil)

			Convey("Then it should be read back", func() {
				password, err := GetPassword("taylor@laravel.com")
				So(err, ShouldBeNil)
				So(password, ShouldEqual, "secret")
			})

			Convey("Then deleting it twice should succeed", func() {
				So(DeletePassword("taylor@laravel.com"), ShouldBeNil)
				So(DeletePassword("taylor@laravel.com"), ShouldBeNil)
			})
		})
	})
}
