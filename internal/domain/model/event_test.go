package model_test

import (
	"testing"

	model "github.com/okian/courtside/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestFromRaw(t *testing.T) {
	convey.Convey("Given a vendor action with typed fields", t, func() {
		raw := model.RawEvent{
			OrderNumber:    float64(40),
			ActionNumber:   float64(12),
			Clock:          "PT11M30.00S",
			TimeActual:     "2024-01-16T00:40:31.3Z",
			Period:         float64(1),
			TeamID:         float64(1610612747),
			TeamTricode:    "LAL",
			ActionType:     "3pt",
			SubType:        "Jump Shot",
			PlayerName:     "James",
			ShotResult:     "Made",
			X:              float64(61.5),
			Y:              float64(12.0),
			IsFieldGoal:    float64(1),
			PointsTotal:    float64(3),
			AssistPersonID: float64(1629029),
			Qualifiers:     []any{"fastbreak"},
		}

		convey.Convey("When normalizing it", func() {
			e := model.FromRaw(raw, 0)

			convey.Convey("Then every field is coerced to its canonical type", func() {
				convey.So(e.Sequence, convey.ShouldEqual, int64(40))
				convey.So(e.Clock, convey.ShouldEqual, "11:30")
				convey.So(e.HasTime, convey.ShouldBeTrue)
				convey.So(e.Period, convey.ShouldEqual, 1)
				convey.So(e.TeamID, convey.ShouldEqual, int64(1610612747))
				convey.So(e.TeamTricode, convey.ShouldEqual, "LAL")
				convey.So(e.FieldGoal, convey.ShouldBeTrue)
				convey.So(e.AssistPersonID, convey.ShouldEqual, int64(1629029))
				convey.So(*e.X, convey.ShouldEqual, 61.5)
				convey.So(*e.PointsTotal, convey.ShouldEqual, 3.0)
				convey.So(e.Qualifiers, convey.ShouldResemble, []string{"fastbreak"})
			})
		})
	})

	convey.Convey("Given a vendor action with string-typed and missing fields", t, func() {
		raw := model.RawEvent{
			ActionNumber:   "7",
			Clock:          nil,
			TimeActual:     "not a time",
			TeamID:         "1610612738",
			TeamTricode:    nil,
			ActionType:     "jumpball",
			PlayerName:     "  ",
			IsFieldGoal:    "0",
			AssistPersonID: "",
		}

		convey.Convey("When normalizing it", func() {
			e := model.FromRaw(raw, 3)

			convey.Convey("Then absent values degrade to zero values", func() {
				convey.So(e.Sequence, convey.ShouldEqual, int64(7))
				convey.So(e.Clock, convey.ShouldEqual, "-")
				convey.So(e.TimeActual, convey.ShouldEqual, "not a time")
				convey.So(e.HasTime, convey.ShouldBeFalse)
				convey.So(e.TeamID, convey.ShouldEqual, int64(1610612738))
				convey.So(e.TeamTricode, convey.ShouldEqual, "")
				convey.So(e.PlayerName, convey.ShouldEqual, "")
				convey.So(e.FieldGoal, convey.ShouldBeFalse)
				convey.So(e.AssistPersonID, convey.ShouldEqual, int64(0))
				convey.So(e.X, convey.ShouldBeNil)
				convey.So(e.PointsTotal, convey.ShouldBeNil)
			})
		})

		convey.Convey("When neither order field is present", func() {
			e := model.FromRaw(model.RawEvent{}, 3)

			convey.Convey("Then the array position defines the sequence", func() {
				convey.So(e.Sequence, convey.ShouldEqual, int64(4))
			})
		})
	})
}

func TestFromRawGame(t *testing.T) {
	convey.Convey("Given a raw game document", t, func() {
		raw := model.RawGame{
			GameID: "0022300061",
			Actions: []model.RawEvent{
				{ActionNumber: float64(2), ActionType: "period"},
				{ActionNumber: float64(1), ActionType: "jumpball"},
			},
		}

		convey.Convey("When normalizing it", func() {
			g := model.FromRawGame(raw)

			convey.Convey("Then input order is preserved", func() {
				convey.So(g.GameID, convey.ShouldEqual, "0022300061")
				convey.So(len(g.Events), convey.ShouldEqual, 2)
				convey.So(g.Events[0].Sequence, convey.ShouldEqual, int64(2))
				convey.So(g.Events[1].ActionType, convey.ShouldEqual, "jumpball")
			})
		})
	})
}
