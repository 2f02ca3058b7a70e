package app

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vk/perdiem/internal/reimburse"
)

type reportJSON struct {
	Total int            `json:"total"`
	Trips []lineItemJSON `json:"trips"`
}

type lineItemJSON struct {
	Index              int    `json:"index"`
	Tier               string `json:"tier"`
	Start              string `json:"start"`
	End                string `json:"end"`
	Span               int    `json:"span"`
	AdjacentToPrevious bool   `json:"adjacent_to_previous"`
	AdjacentToNext     bool   `json:"adjacent_to_next"`
	StartCharge        int    `json:"start_charge"`
	FullDays           int    `json:"full_days"`
	FullDayCharge      int    `json:"full_day_charge"`
	EndCharge          int    `json:"end_charge"`
	Subtotal           int    `json:"subtotal"`
}

// writeReport renders report to w in the requested output format.
func writeReport(w io.Writer, format string, report reimburse.Report) error {
	if format == OutputJSON {
		return writeJSON(w, report)
	}
	return writeText(w, report)
}

func writeJSON(w io.Writer, report reimburse.Report) error {
	out := reportJSON{Total: report.Total, Trips: make([]lineItemJSON, 0, len(report.Trips))}
	for _, li := range report.Trips {
		out.Trips = append(out.Trips, lineItemJSON{
			Index:              li.Index,
			Tier:               li.Tier.String(),
			Start:              li.Start,
			End:                li.End,
			Span:               li.Span,
			AdjacentToPrevious: li.AdjacentToPrevious,
			AdjacentToNext:     li.AdjacentToNext,
			StartCharge:        li.StartCharge,
			FullDays:           li.FullDays,
			FullDayCharge:      li.FullDayCharge,
			EndCharge:          li.EndCharge,
			Subtotal:           li.Subtotal,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, report reimburse.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRIP\tTIER\tSTART\tEND\tSTART DAY\tFULL DAYS\tEND DAY\tSUBTOTAL")
	for _, li := range report.Trips {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d x %d = %d\t%d\t%d\n",
			li.Index+1, li.Tier, li.Start, li.End,
			li.StartCharge,
			li.FullDays, li.FullDayRate, li.FullDayCharge,
			li.EndCharge, li.Subtotal,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total reimbursement: %d\n", report.Total)
	return err
}
