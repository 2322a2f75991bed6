package output

import (
	"bytes"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/artifact"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/dataset"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/losslog"
)

func TestRenderLossTable(t *testing.T) {
	Convey("While rendering a full loss table", t, func() {
		var buf bytes.Buffer
		RenderLossTable(&buf, "D1", losslog.Table{
			{Epoch: 0, LossG: 1.5, LossD: 0.9},
			{Epoch: 1, LossG: 1.2, LossD: 0.8},
		})
		out := buf.String()

		Convey("The dataset heading and every row are present", func() {
			So(out, ShouldContainSubstring, "Dataset: D1")
			So(out, ShouldContainSubstring, "1.5000")
			So(out, ShouldContainSubstring, "0.9000")
			So(out, ShouldContainSubstring, "1.2000")
			So(out, ShouldContainSubstring, "0.8000")
		})
	})
}

func TestRenderSummaries(t *testing.T) {
	Convey("While rendering the summary overview", t, func() {
		var buf bytes.Buffer
		RenderSummaries(&buf, []SummaryRow{
			{Dataset: "D1", Summary: losslog.Summary{Rows: 3, FirstEpoch: 0, FinalEpoch: 2, FinalLossG: 0.5, FinalLossD: 0.25, MeanLossG: 0.75, MeanLossD: 0.5}},
			{Dataset: "D2", Summary: losslog.Summary{Rows: 1}},
		})
		out := buf.String()

		Convey("Both datasets land in the table with their span and values", func() {
			So(out, ShouldContainSubstring, "D1")
			So(out, ShouldContainSubstring, "D2")
			So(out, ShouldContainSubstring, "0-2")
			So(out, ShouldContainSubstring, "0.7500")
		})
	})
}

func TestRenderArtifacts(t *testing.T) {
	Convey("While rendering an artifact listing", t, func() {
		var buf bytes.Buffer
		RenderArtifacts(&buf, []artifact.Artifact{
			{
				Name:      "ctgan-D1",
				Dataset:   "D1",
				Method:    "ctgan",
				CreatedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
				Params:    map[string]string{"epochs": "300", "ignored": "", "extra": "{}"},
				Metrics:   map[string]float64{"accuracy": 0.91, "f1": 0.88},
			},
		})
		out := buf.String()

		Convey("Identity columns come straight from the artifact", func() {
			So(out, ShouldContainSubstring, "ctgan-D1")
			So(out, ShouldContainSubstring, "D1")
			So(out, ShouldContainSubstring, "2024-03-01 12:30")
		})

		Convey("Params counts only entries that survive cleaning", func() {
			So(out, ShouldContainSubstring, "1")
			So(out, ShouldContainSubstring, "2")
		})
	})
}

func TestRenderDatasetInfo(t *testing.T) {
	Convey("While rendering a dataset overview", t, func() {
		var buf bytes.Buffer
		RenderDatasetInfo(&buf, "data/original/D1.csv", &dataset.Dataset{
			Columns: []string{"age", "income"},
			Kinds:   map[string]dataset.Kind{"age": dataset.KindInt, "income": dataset.KindFloat},
			Rows:    [][]any{{34, 51000.5}, {29, 43250.0}},
		})
		out := buf.String()

		Convey("The heading carries the path and row count", func() {
			So(out, ShouldContainSubstring, "data/original/D1.csv")
			So(out, ShouldContainSubstring, "2 rows")
		})

		Convey("Every column appears with its kind", func() {
			So(out, ShouldContainSubstring, "age")
			So(out, ShouldContainSubstring, "int")
			So(out, ShouldContainSubstring, "income")
			So(out, ShouldContainSubstring, "float")
		})
	})
}
