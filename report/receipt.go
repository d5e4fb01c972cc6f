package report

import (
	"bytes"
	"html/template"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/money"
)

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: sans-serif; margin: 2em; color: #222; }
  .header { text-align: center; border-bottom: 2px solid #222; padding-bottom: 1em; }
  .header h1 { margin: 0; }
  table { width: 100%; border-collapse: collapse; margin-top: 1.5em; }
  td { padding: 0.4em 0; }
  td.label { color: #666; width: 40%; }
  .amount { font-size: 1.4em; font-weight: bold; }
  .footer { margin-top: 3em; font-size: 0.8em; color: #666; text-align: center; }
</style>
</head>
<body>
<div class="header">
  <h1>{{.BusinessName}}</h1>
  {{if .BusinessAddress}}<p>{{.BusinessAddress}}</p>{{end}}
  {{if .BusinessPhone}}<p>Ph: {{.BusinessPhone}}</p>{{end}}
</div>
<table>
  <tr><td class="label">Receipt No</td><td>{{.ReceiptNumber}}</td></tr>
  <tr><td class="label">Date</td><td>{{.Date}}</td></tr>
  <tr><td class="label">Member</td><td>{{.MemberName}}</td></tr>
  <tr><td class="label">Group</td><td>{{.GroupName}}</td></tr>
  {{if .AuctionMonth}}<tr><td class="label">Month</td><td>{{.AuctionMonth}}</td></tr>{{end}}
  <tr><td class="label">Collection</td><td>{{.CollectionType}}</td></tr>
  <tr><td class="label">Amount</td><td class="amount">{{.Amount}}</td></tr>
  {{if .Notes}}<tr><td class="label">Notes</td><td>{{.Notes}}</td></tr>{{end}}
</table>
<div class="footer">This is a computer generated receipt.</div>
</body>
</html>`))

type receiptView struct {
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	ReceiptNumber   string
	Date            string
	MemberName      string
	GroupName       string
	AuctionMonth    int
	CollectionType  string
	Amount          string
	Notes           string
}

// ReceiptHTML renders the printable receipt for one payment.
func ReceiptHTML(p chit.Payment, m chit.Member, g chit.Group, s chit.Settings) (string, error) {
	name := s.BusinessName
	if name == "" {
		name = "SMK Chits"
	}
	view := receiptView{
		BusinessName:    name,
		BusinessAddress: s.BusinessAddress,
		BusinessPhone:   s.BusinessPhone,
		ReceiptNumber:   p.ReceiptNumber,
		Date:            p.PaymentDate.Format("02 Jan 2006"),
		MemberName:      m.Name,
		GroupName:       g.Name,
		AuctionMonth:    p.AuctionMonth,
		CollectionType:  string(p.CollectionType),
		Amount:          money.Format(p.Amount),
		Notes:           p.Notes,
	}
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
