package collections

import (
	"fmt"
	"io"

	"github.com/smk-chits/smk-chits/internal/shared"
)

func writePaymentsCSV(w io.Writer, rows []ExportRow, filters ListFilters) error {
	streamer := shared.NewCSVStreamer(w)
	if err := streamer.WriteComment("# Report: Payments"); err != nil {
		return err
	}
	scope := "All"
	if filters.GroupID != "" {
		scope = "Group " + filters.GroupID
	}
	window := "All dates"
	if !filters.From.IsZero() || !filters.To.IsZero() {
		window = filters.From.Format("2006-01-02") + " to " + filters.To.Format("2006-01-02")
	}
	if err := streamer.WriteComment(fmt.Sprintf("# Scope: %s | Window: %s", scope, window)); err != nil {
		return err
	}
	if err := streamer.WriteRow([]string{"Receipt", "Date", "Member", "Group", "Amount", "Type", "Notes"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := streamer.WriteRow([]string{
			row.ReceiptNumber,
			row.PaymentDate.Format("2006-01-02"),
			row.MemberName,
			row.GroupName,
			shared.FormatDecimal(row.Amount),
			row.CollectionType,
			row.Notes,
		}); err != nil {
			return err
		}
	}
	return streamer.Close()
}
