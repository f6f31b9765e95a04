package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"tripindia/errx"
	"tripindia/services"
	"tripindia/store"
)

type GeneratePDFResponse struct {
	ItineraryID string `json:"itinerary_id"`
	PDFURL      string `json:"pdf_url"`
	Message     string `json:"message"`
}

// GeneratePDF handles POST /planner/pdf. It builds the same plan as
// /planner, renders it and keeps the PDF for later download.
func (h *Handler) GeneratePDF(c *gin.Context) {
	ctx, span := otel.Tracer("handlers").Start(c.Request.Context(), "GeneratePDF")
	defer span.End()

	in, err := bindPlanInput(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	plan, err := h.planner.Plan(ctx, in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	pdfBytes, err := services.GeneratePlanPDF(plan, h.now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "PDF generation failed")
		respondError(c, h.logger, errx.New(err, http.StatusInternalServerError, "Failed to generate PDF"))
		return
	}

	id := uuid.New().String()
	if err := h.itineraries.Save(&store.Itinerary{
		ID:          id,
		Destination: plan.Destination,
		Days:        plan.Days,
		PDFData:     pdfBytes,
		CreatedAt:   h.now(),
	}); err != nil {
		respondError(c, h.logger, errx.New(err, http.StatusInternalServerError, "Failed to save generated PDF"))
		return
	}

	h.metrics.ItineraryPDFs.Inc()
	h.logger.Info().Str("itinerary_id", id).Int("bytes", len(pdfBytes)).Msg("PDF generated")

	c.JSON(http.StatusOK, GeneratePDFResponse{
		ItineraryID: id,
		PDFURL:      "/planner/download/" + id,
		Message:     "PDF generated successfully",
	})
}

// Download handles GET /planner/download/:id.
func (h *Handler) Download(c *gin.Context) {
	itinerary, err := h.itineraries.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, h.logger, errx.NotFound(err, "Itinerary not found"))
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFilename(itinerary)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", itinerary.PDFData)
}

func pdfFilename(i *store.Itinerary) string {
	name := make([]rune, 0, len(i.Destination))
	for _, r := range i.Destination {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			name = append(name, r)
		case r == ' ' || r == '-' || r == '_':
			name = append(name, '-')
		}
	}
	if len(name) == 0 {
		return "itinerary.pdf"
	}
	return fmt.Sprintf("%s-%d-days.pdf", string(name), i.Days)
}
