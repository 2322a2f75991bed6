package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/losslog"
)

func TestSummaryWriter(t *testing.T) {
	Convey("While writing curve summaries as JSON lines", t, func() {
		path := filepath.Join(t.TempDir(), "loss_summaries.jsonl")

		w, err := NewSummaryWriter(path)
		So(err, ShouldBeNil)

		So(w.Write("D1", losslog.Summary{Rows: 2, FinalEpoch: 1, FinalLossG: 1.2}), ShouldBeNil)
		So(w.Write("D2", losslog.Summary{Rows: 1}), ShouldBeNil)
		So(w.Close(), ShouldBeNil)

		data, err := os.ReadFile(path)
		So(err, ShouldBeNil)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

		Convey("One line lands per dataset", func() {
			So(lines, ShouldHaveLength, 2)
		})

		Convey("Each line holds the dataset id next to its summary fields", func() {
			var row map[string]any
			So(json.Unmarshal([]byte(lines[0]), &row), ShouldBeNil)
			So(row["dataset"], ShouldEqual, "D1")
			So(row["rows"], ShouldEqual, 2.0)
			So(row["final_epoch"], ShouldEqual, 1.0)
			So(row["final_loss_g"], ShouldEqual, 1.2)

			So(json.Unmarshal([]byte(lines[1]), &row), ShouldBeNil)
			So(row["dataset"], ShouldEqual, "D2")
		})
	})
}
