package clock_test

import (
	"testing"

	"github.com/okian/courtside/internal/domain/clock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given heterogeneous clock values", t, func() {
		Convey("When the value is an ISO-8601 duration", func() {
			So(clock.Normalize("PT11M30.00S"), ShouldEqual, "11:30")
			So(clock.Normalize("PT00M05.90S"), ShouldEqual, "0:05")
			So(clock.Normalize("PT12M"), ShouldEqual, "12:00")
			So(clock.Normalize("PT45S"), ShouldEqual, "0:45")
			So(clock.Normalize("PT1H2M3S"), ShouldEqual, "62:03")
			So(clock.Normalize("pt3m07s"), ShouldEqual, "3:07")
		})

		Convey("When the value is already minutes and seconds", func() {
			So(clock.Normalize("5:07"), ShouldEqual, "5:07")
			So(clock.Normalize("11:30"), ShouldEqual, "11:30")
			So(clock.Normalize("05:07"), ShouldEqual, "5:07")
		})

		Convey("When the value is a count of seconds", func() {
			So(clock.Normalize(65), ShouldEqual, "1:05")
			So(clock.Normalize(float64(720)), ShouldEqual, "12:00")
			So(clock.Normalize("65"), ShouldEqual, "1:05")
			So(clock.Normalize(59.9), ShouldEqual, "0:59")
			So(clock.Normalize(0), ShouldEqual, "0:00")
		})

		Convey("When the value is absent", func() {
			So(clock.Normalize(nil), ShouldEqual, clock.Missing)
			So(clock.Normalize(""), ShouldEqual, "-")
			So(clock.Normalize("   "), ShouldEqual, "-")
		})

		Convey("When the value is unrecognized", func() {
			So(clock.Normalize("halftime"), ShouldEqual, "halftime")
			So(clock.Normalize("PT-1M"), ShouldEqual, "PT-1M")
			So(func() { clock.Normalize(struct{}{}) }, ShouldNotPanic)
		})

		Convey("When the value is a boolean", func() {
			So(clock.Normalize(true), ShouldEqual, "true")
			So(clock.Normalize(false), ShouldEqual, "false")
		})

		Convey("When the seconds are negative", func() {
			So(clock.Normalize(-5), ShouldEqual, "-5")
			So(clock.Normalize(-0.5), ShouldEqual, "-0.5")
			So(clock.Normalize("-5"), ShouldEqual, "-5")
		})
	})
}
