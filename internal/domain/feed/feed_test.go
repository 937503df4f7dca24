package feed_test

import (
	"testing"

	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRows(t *testing.T) {
	Convey("Given events out of sequence order", t, func() {
		events := []model.Event{
			{Sequence: 3, Clock: "11:02", Period: 1, PlayerName: "James", Description: "James 3PT", ScoreHome: "3", ScoreAway: "0"},
			{Sequence: 1, Clock: "12:00", Period: 1, Description: "Period Start", ScoreHome: "0", ScoreAway: "0"},
			{Sequence: 2, Period: 1, Description: "Jump Ball", ScoreHome: "0", ScoreAway: "0"},
			{Sequence: 2, Period: 1, PlayerName: "Davis", Description: "Tip", ScoreHome: "0", ScoreAway: "0"},
		}

		Convey("When rendering the feed", func() {
			rows := feed.Rows(events)

			Convey("Then rows follow sequence order and ties keep input order", func() {
				So(len(rows), ShouldEqual, 4)
				So(rows[0].Description, ShouldEqual, "Period Start")
				So(rows[1].Description, ShouldEqual, "Jump Ball")
				So(rows[2].Description, ShouldEqual, "Tip")
				So(rows[3].Score, ShouldEqual, "3-0")
			})

			Convey("Then missing player and clock render as a dash", func() {
				So(rows[0].Player, ShouldEqual, "-")
				So(rows[1].Clock, ShouldEqual, "-")
				So(rows[3].Player, ShouldEqual, "James")
			})

			Convey("Then the input is untouched", func() {
				So(events[0].Sequence, ShouldEqual, 3)
			})
		})
	})

	Convey("Given no events", t, func() {
		Convey("Then the feed is empty", func() {
			So(feed.Rows(nil), ShouldBeEmpty)
		})
	})
}
