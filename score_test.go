package trueskill_test

import (
	"testing"

	trueskill "github.com/okian/trueskill"
	"github.com/smartystreets/goconvey/convey"
)

func TestScoreString(t *testing.T) {
	convey.Convey("Given the three match outcomes", t, func() {
		convey.Convey("Then each should name itself", func() {
			convey.So(trueskill.Win.String(), convey.ShouldEqual, "win")
			convey.So(trueskill.Loss.String(), convey.ShouldEqual, "loss")
			convey.So(trueskill.Draw.String(), convey.ShouldEqual, "draw")
		})

		convey.Convey("Then an out-of-range value should not panic", func() {
			convey.So(trueskill.Score(42).String(), convey.ShouldEqual, "unknown")
		})
	})
}
