package normalize_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/okian/courtside/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNumber(t *testing.T) {
	Convey("Given loosely typed numeric values", t, func() {
		cases := []struct {
			in   any
			want float64
			ok   bool
		}{
			{float64(3), 3, true},
			{7, 7, true},
			{int64(-2), -2, true},
			{" 12.5 ", 12.5, true},
			{json.Number("4"), 4, true},
			{true, 1, true},
			{false, 0, true},
			{"", 0, false},
			{"abc", 0, false},
			{nil, 0, false},
			{math.NaN(), 0, false},
			{[]int{1}, 0, false},
		}

		Convey("Then each normalizes to its numeric value or not-ok", func() {
			for _, tc := range cases {
				got, ok := normalize.Number(tc.in)
				So(ok, ShouldEqual, tc.ok)
				So(got, ShouldEqual, tc.want)
			}
		})
	})
}

func TestFlag(t *testing.T) {
	Convey("Given field-goal style flags", t, func() {
		Convey("Then 1-equivalent values are true", func() {
			So(normalize.Flag(1), ShouldBeTrue)
			So(normalize.Flag(float64(1)), ShouldBeTrue)
			So(normalize.Flag("1"), ShouldBeTrue)
			So(normalize.Flag(true), ShouldBeTrue)
			So(normalize.Flag("true"), ShouldBeTrue)
		})

		Convey("And everything else is false", func() {
			So(normalize.Flag(0), ShouldBeFalse)
			So(normalize.Flag("0"), ShouldBeFalse)
			So(normalize.Flag(false), ShouldBeFalse)
			So(normalize.Flag(nil), ShouldBeFalse)
			So(normalize.Flag(""), ShouldBeFalse)
			So(normalize.Flag("yes please"), ShouldBeFalse)
			So(normalize.Flag(2), ShouldBeFalse)
		})
	})
}

func TestPositiveAndInt(t *testing.T) {
	Convey("Given identifier values", t, func() {
		So(normalize.Positive(1627783), ShouldBeTrue)
		So(normalize.Positive("203999"), ShouldBeTrue)
		So(normalize.Positive(0), ShouldBeFalse)
		So(normalize.Positive(nil), ShouldBeFalse)
		So(normalize.Positive("x"), ShouldBeFalse)
		So(normalize.Int("1610612747"), ShouldEqual, int64(1610612747))
		So(normalize.Int(3.9), ShouldEqual, int64(3))
		So(normalize.Int(nil), ShouldEqual, int64(0))
	})
}

func TestText(t *testing.T) {
	Convey("Given mixed values", t, func() {
		So(normalize.Text("LAL"), ShouldEqual, "LAL")
		So(normalize.Text(float64(102)), ShouldEqual, "102")
		So(normalize.Text(1.5), ShouldEqual, "1.5")
		So(normalize.Text(nil), ShouldEqual, "")
		So(normalize.Text(map[string]any{}), ShouldEqual, "")
		So(normalize.Strings([]any{"2ndchance", 3, nil}), ShouldResemble, []string{"2ndchance", "3"})
		So(normalize.Strings("nope"), ShouldBeNil)
	})
}

func TestTimestamp(t *testing.T) {
	Convey("Given wall-clock strings", t, func() {
		Convey("When the value is RFC3339 with fractional seconds", func() {
			ts, ok := normalize.Timestamp("2024-01-16T00:40:31.3Z")
			So(ok, ShouldBeTrue)
			So(ts.Second(), ShouldEqual, 31)
		})

		Convey("When the value is malformed or empty", func() {
			_, ok := normalize.Timestamp("yesterday")
			So(ok, ShouldBeFalse)
			_, ok = normalize.Timestamp("  ")
			So(ok, ShouldBeFalse)
		})
	})
}
