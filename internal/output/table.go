package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/artifact"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/dataset"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/losslog"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/params"
)

// SummaryRow pairs a dataset identifier with its curve summary for
// rendering; callers control the row order.
type SummaryRow struct {
	Dataset string
	Summary losslog.Summary
}

// RenderLossTable draws one dataset's full loss table.
func RenderLossTable(w io.Writer, id string, t losslog.Table) {
	fmt.Fprintf(w, "\nDataset: %s\n", id)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Epoch", "Loss G", "Loss D"})
	for _, r := range t {
		table.Append([]string{
			strconv.Itoa(r.Epoch),
			fmt.Sprintf("%.4f", r.LossG),
			fmt.Sprintf("%.4f", r.LossD),
		})
	}
	table.Render()
}

// RenderSummaries draws the per-dataset summary overview.
func RenderSummaries(w io.Writer, rows []SummaryRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Dataset", "Rows", "Epochs", "Final Loss G", "Final Loss D", "Mean Loss G", "Mean Loss D"})
	for _, row := range rows {
		s := row.Summary
		table.Append([]string{
			row.Dataset,
			strconv.Itoa(s.Rows),
			fmt.Sprintf("%d-%d", s.FirstEpoch, s.FinalEpoch),
			fmt.Sprintf("%.4f", s.FinalLossG),
			fmt.Sprintf("%.4f", s.FinalLossD),
			fmt.Sprintf("%.4f", s.MeanLossG),
			fmt.Sprintf("%.4f", s.MeanLossD),
		})
	}
	table.Render()
}

// RenderArtifacts draws the artifact listing. The params column counts the
// entries that survive cleaning, not the raw strings.
func RenderArtifacts(w io.Writer, arts []artifact.Artifact) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Dataset", "Method", "Params", "Metrics", "Created"})
	for _, a := range arts {
		table.Append([]string{
			a.Name,
			a.Dataset,
			a.Method,
			strconv.Itoa(len(params.Clean(a.Params))),
			strconv.Itoa(len(a.Metrics)),
			a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

// RenderDatasetInfo draws a dataset's column/dtype overview.
func RenderDatasetInfo(w io.Writer, path string, ds *dataset.Dataset) {
	fmt.Fprintf(w, "\nDataset: %s (%d rows)\n", path, ds.Len())

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Column", "Kind"})
	for _, col := range ds.Columns {
		table.Append([]string{col, string(ds.Kinds[col])})
	}
	table.Render()
}
