package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/chit"
)

func TestReceiptHTML(t *testing.T) {
	html, err := ReceiptHTML(
		chit.Payment{
			ReceiptNumber:  "SMK-240605-A1B2",
			Amount:         5000,
			PaymentDate:    time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			CollectionType: chit.CollectionMonthly,
			AuctionMonth:   3,
		},
		chit.Member{Name: "Ravi Kumar"},
		chit.Group{Name: "Lakshmi 1L"},
		chit.Settings{BusinessName: "SMK Chits", BusinessPhone: "9876543210"},
	)
	require.NoError(t, err)
	require.Contains(t, html, "SMK-240605-A1B2")
	require.Contains(t, html, "Ravi Kumar")
	require.Contains(t, html, "Lakshmi 1L")
	require.Contains(t, html, "₹5,000")
	require.Contains(t, html, "SMK Chits")
}

func TestReceiptHTMLDefaultsBusinessName(t *testing.T) {
	html, err := ReceiptHTML(chit.Payment{}, chit.Member{}, chit.Group{}, chit.Settings{})
	require.NoError(t, err)
	require.Contains(t, html, "SMK Chits")
}
