package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePlanPDF renders a plan as an A4 document and returns the raw bytes.
// Core PDF fonts are cp1252, so the rupee sign is written as "Rs.".
func GeneratePlanPDF(plan *Plan, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(strings.ReplaceAll(s, "₹", "Rs. "))
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Plan Your Trip India - estimates only, not a booking - page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(19, 78, 74)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, text(plan.Destination), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(250, 204, 21)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, fmt.Sprintf("%d-day %s itinerary", plan.Days, text(plan.Style)), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	if plan.Source == SourceGenerated {
		pdf.SetFillColor(255, 248, 225)
		pdf.SetDrawColor(212, 168, 67)
		pdf.SetTextColor(130, 90, 20)
		pdf.SetFont("Helvetica", "I", 8)
		y := pdf.GetY()
		pdf.Rect(20, y, 170, 10, "FD")
		pdf.SetXY(23, y+2)
		pdf.MultiCell(164, 4, "We do not have curated data for this destination yet. Places and prices below are generic suggestions.", "", "C", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(0, 0, 0)
		pdf.Ln(6)
	}

	sectionHeader := func(title string) {
		pdf.SetFillColor(19, 78, 74)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(125, 7, text(value), "", "L", false)
	}

	rupees := func(v int) string {
		return fmt.Sprintf("Rs. %d", v)
	}

	sectionHeader("Trip Overview")
	row("Generated", generatedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	row("Duration", fmt.Sprintf("%d days", plan.Days))
	row("Style", plan.Style)
	row("Budget", rupees(plan.BudgetTotal))
	pdf.Ln(4)

	sectionHeader("Day by Day")
	for _, d := range plan.DayPlan {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(19, 78, 74)
		pdf.CellFormat(170, 7, fmt.Sprintf("Day %d", d.Day), "", 1, "L", false, 0, "")
		row("Morning", d.Morning)
		row("Afternoon", d.Afternoon)
		row("Evening", d.Evening)
		row("Food", d.FoodRecommendation)
		pdf.Ln(2)
	}
	pdf.Ln(2)

	sectionHeader("Cost Estimate")
	row("Per day", rupees(plan.CostPerDay))
	row("Accommodation", rupees(plan.Breakdown.Accommodation))
	row("Food", rupees(plan.Breakdown.Food))
	row("Transport", rupees(plan.Breakdown.Transport))
	row("Activities", rupees(plan.Breakdown.Activities))

	pdf.SetFillColor(250, 204, 21)
	pdf.SetTextColor(19, 78, 74)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(45, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(125, 9, rupees(plan.EstimatedCost), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	balance := fmt.Sprintf("%s under budget", rupees(plan.Surplus))
	if plan.Surplus < 0 {
		balance = fmt.Sprintf("%s over budget", rupees(-plan.Surplus))
	}
	row("Balance", balance)
	pdf.Ln(4)

	sectionHeader("Must-See Places")
	row("Famous", strings.Join(plan.FamousPlaces, ", "))
	row("Hidden gems", strings.Join(plan.HiddenGems, ", "))
	row("Street food", strings.Join(plan.StreetFood, ", "))
	pdf.Ln(4)

	if plan.Tips != "" {
		sectionHeader("Tips")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, text(plan.Tips), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
