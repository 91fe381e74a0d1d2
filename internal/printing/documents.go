package printing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

var docFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "R$ " + d.StringFixed(2)
	},
	"date": func(t time.Time) string {
		return t.Format("02/01/2006")
	},
	"dateptr": func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("02/01/2006")
	},
}

const baseStyle = `
	body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; }
	h1 { font-size: 18px; margin-bottom: 2px; }
	h2 { font-size: 14px; margin-top: 18px; }
	.muted { color: #777; }
	table { width: 100%; border-collapse: collapse; margin-top: 8px; }
	th, td { border: 1px solid #ccc; padding: 5px 8px; text-align: left; }
	th { background: #f2f2f2; }
	td.num, th.num { text-align: right; }
	.totals { margin-top: 10px; text-align: right; font-size: 13px; }
	.totals strong { font-size: 15px; }
`

var orderTemplate = template.Must(template.New("order").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><style>` + baseStyle + `</style></head>
<body>
	<h1>Service Order {{.Order.OrderID}}</h1>
	<p class="muted">Opened {{date .Order.OpenedAt}}{{if .Order.ClosedAt}} &middot; Closed {{dateptr .Order.ClosedAt}}{{end}} &middot; Status {{.Order.Status}}</p>

	<h2>Client</h2>
	<p>{{.Client.DisplayName}}<br>
	{{with .Client.Document}}{{.}}<br>{{end}}
	{{with .Client.Phone}}{{.}}<br>{{end}}
	{{with .Client.City}}{{.}}{{with $.Client.State}} - {{.}}{{end}}{{end}}</p>

	<h2>Reported problem</h2>
	<p>{{.Order.ProblemDescription}}</p>

	{{if .Order.PartLines}}
	<h2>Parts</h2>
	<table>
		<tr><th>Description</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Total</th></tr>
		{{range .Order.PartLines}}
		<tr><td>{{.Description}}</td><td class="num">{{.Quantity}}</td><td class="num">{{money .UnitPrice}}</td><td class="num">{{money .Total}}</td></tr>
		{{end}}
	</table>
	{{end}}

	<div class="totals">
		Services: {{money .Order.ServiceValue}}<br>
		Parts: {{money .Order.PartsTotal}}<br>
		<strong>Total: {{money .Order.TotalValue}}</strong>
	</div>
</body></html>`))

var invoiceTemplate = template.Must(template.New("invoice").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><style>` + baseStyle + `</style></head>
<body>
	<h1>Invoice {{.Invoice.InvoiceID}}</h1>
	<p class="muted">Issued {{date .Invoice.IssuedAt}}</p>

	<h2>Client</h2>
	<p>{{.Client.DisplayName}}{{with .Client.Document}}<br>{{.}}{{end}}</p>

	<h2>Orders</h2>
	<table>
		<tr><th>Order</th><th>Problem</th><th class="num">Services</th><th class="num">Parts</th><th class="num">Total</th></tr>
		{{range .Orders}}
		<tr><td>{{.OrderID}}</td><td>{{.ProblemDescription}}</td><td class="num">{{money .ServiceValue}}</td><td class="num">{{money .PartsTotal}}</td><td class="num">{{money .TotalValue}}</td></tr>
		{{end}}
	</table>

	<h2>Payments</h2>
	<table>
		<tr><th>Method</th><th>Due date</th><th class="num">Amount</th><th>Status</th></tr>
		{{range .Invoice.Payments}}
		<tr><td>{{.Method}}{{if gt .InstallmentCount 1}} ({{.InstallmentCount}}x){{end}}</td><td>{{date .DueDate}}</td><td class="num">{{money .Amount}}</td><td>{{.Status}}</td></tr>
		{{end}}
	</table>

	<div class="totals">
		<strong>Total: {{money .Invoice.PaymentsTotal}}</strong>
	</div>
</body></html>`))

var ordersReportTemplate = template.Must(template.New("ordersReport").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><style>` + baseStyle + `</style></head>
<body>
	<h1>Service Orders Report</h1>
	<p class="muted">{{date .From}} to {{date .To}}</p>

	<table>
		<tr><th>Order</th><th>Client</th><th>Status</th><th>Opened</th><th class="num">Services</th><th class="num">Parts</th><th class="num">Total</th></tr>
		{{range .Orders}}
		<tr><td>{{.OrderID}}</td><td>{{.ClientID}}</td><td>{{.Status}}</td><td>{{date .OpenedAt}}</td><td class="num">{{money .ServiceValue}}</td><td class="num">{{money .PartsTotal}}</td><td class="num">{{money .TotalValue}}</td></tr>
		{{end}}
	</table>

	<div class="totals">
		{{len .Orders}} orders<br>
		<strong>Total: {{money .Total}}</strong>
	</div>
</body></html>`))

// Printer builds the printable documents and hands them to the renderer.
type Printer struct {
	renderer PDFRenderer
}

// NewPrinter creates a Printer on top of the given renderer.
func NewPrinter(renderer PDFRenderer) *Printer {
	return &Printer{renderer: renderer}
}

// OrderPDF renders a single service order document.
func (p *Printer) OrderPDF(ctx context.Context, order *domain.ServiceOrder, client *domain.Client) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Order  *domain.ServiceOrder
		Client *domain.Client
	}{order, client}
	if err := orderTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to build order document: %w", err)
	}
	return p.renderer.Render(ctx, buf.String())
}

// InvoicePDF renders an invoice document with its orders and payments.
func (p *Printer) InvoicePDF(ctx context.Context, invoice *domain.Invoice, client *domain.Client, orders []domain.ServiceOrder) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Invoice *domain.Invoice
		Client  *domain.Client
		Orders  []domain.ServiceOrder
	}{invoice, client, orders}
	if err := invoiceTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to build invoice document: %w", err)
	}
	return p.renderer.Render(ctx, buf.String())
}

// OrdersReportPDF renders the period orders report.
func (p *Printer) OrdersReportPDF(ctx context.Context, orders []domain.ServiceOrder, from, to time.Time) ([]byte, error) {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalValue())
	}

	var buf bytes.Buffer
	data := struct {
		Orders []domain.ServiceOrder
		From   time.Time
		To     time.Time
		Total  decimal.Decimal
	}{orders, from, to, total}
	if err := ordersReportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to build orders report document: %w", err)
	}
	return p.renderer.Render(ctx, buf.String())
}
