package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/vburojevic/benchconv/internal/domain"
)

// WriteSummary prints a table of converted records followed by a count line
func WriteSummary(w io.Writer, records []domain.BenchmarkRecord, styles SummaryStyles) error {
	if _, err := fmt.Fprintln(w, styles.Header.Render("Benchmark results")); err != nil {
		return err
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, styles.Muted.Render("No benchmarks found"))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Name", "Mean (ns)", "Mean")
	for _, r := range records {
		if err := table.Append([]string{r.Name, strconv.FormatInt(r.MeanNs, 10), r.Mean().String()}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Benchmarks:"), styles.Value.Render(strconv.Itoa(len(records))))
	return err
}
