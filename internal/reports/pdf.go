package reports

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/LorenzoMarty/FinLovi/internal/api"
)

// MonthlyPDF renders the same report as Monthly into a PDF table.
func (h *Handler) MonthlyPDF(c *fiber.Ctx) error {
	from, to, errs := h.resolveRange(c)
	if !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid query", api.CodeValidation, errs)
	}

	items, err := h.Store.Monthly(c.UserContext(), from, to)
	if err != nil {
		return api.DBError(c, "could not build monthly report", err)
	}

	var totalIncome, totalExpense decimal.Decimal
	for _, m := range items {
		totalIncome = totalIncome.Add(m.TotalIncome)
		totalExpense = totalExpense.Add(m.TotalExpense)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FinLovi Monthly Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+from+" to "+to)
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Net", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, totalIncome.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, totalExpense.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, totalIncome.Sub(totalExpense).StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)

	colW := []float64{46, 46, 46, 48}
	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "MONTH", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "INCOME", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colW[2], 8, "EXPENSE", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colW[3], 8, "NET", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	pdf.SetTextColor(30, 30, 30)
	for _, m := range items {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
		}
		pdf.CellFormat(colW[0], 8, m.Month, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, m.TotalIncome.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 8, m.TotalExpense.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 8, m.TotalIncome.Sub(m.TotalExpense).StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated by FinLovi at "+time.Now().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "pdf build failed: "+err.Error())
	}

	filename := "finlovi-report-" + from + "-to-" + to + ".pdf"
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
