package handlers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/http"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Zumgugger/vielseitig/internal/service"
)

// A4 landscape in millimeters
const (
	pdfPageWidth   = 297.0
	pdfPageHeight  = 210.0
	pdfMargin      = 15.0
	pdfFooterSpace = 10.0
)

// PDFHandler renders the pupil's sorting result as a PDF. The frontend sends
// a PNG snapshot of the board (WYSIWYG) which is placed on a landscape page.
type PDFHandler struct {
	analyticsService *service.AnalyticsService
}

// NewPDFHandler creates a new PDF handler
func NewPDFHandler(analyticsService *service.AnalyticsService) *PDFHandler {
	return &PDFHandler{analyticsService: analyticsService}
}

type pdfSnapshotRequest struct {
	ImageDataURL string `json:"image_data_url"`
}

// ExportSessionPDF handles POST /api/sessions/{sessionId}/pdf
func (h *PDFHandler) ExportSessionPDF(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	var req pdfSnapshotRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	imageBytes, err := decodeImageDataURL(req.ImageDataURL)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	pdfBytes, err := renderSnapshotPDF(imageBytes)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "image could not be rendered", err)
		return
	}

	// Marking the export also verifies the session exists
	if _, err := h.analyticsService.MarkPDFExport(sessionID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="ich-bin-vielseitig.pdf"`)
	w.Write(pdfBytes)
}

func decodeImageDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, fmt.Errorf("image_data_url is required and must be a data URL")
	}
	_, b64data, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, fmt.Errorf("image_data_url could not be decoded")
	}
	imageBytes, err := base64.StdEncoding.DecodeString(b64data)
	if err != nil {
		return nil, fmt.Errorf("image_data_url could not be decoded")
	}
	return imageBytes, nil
}

// renderSnapshotPDF centers the PNG snapshot on a landscape A4 page, scaled
// to fit while keeping its aspect ratio, with the export date as footer
func renderSnapshotPDF(imageBytes []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("snapshot is not a valid PNG: %w", err)
	}

	contentWidth := pdfPageWidth - 2*pdfMargin
	contentHeight := pdfPageHeight - 2*pdfMargin - pdfFooterSpace

	imgRatio := float64(cfg.Width) / float64(cfg.Height)
	boxRatio := contentWidth / contentHeight

	var drawWidth, drawHeight float64
	if imgRatio >= boxRatio {
		drawWidth = contentWidth
		drawHeight = contentWidth / imgRatio
	} else {
		drawHeight = contentHeight
		drawWidth = contentHeight * imgRatio
	}

	x := (pdfPageWidth - drawWidth) / 2
	y := (pdfPageHeight - pdfFooterSpace - drawHeight) / 2

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("snapshot", opts, bytes.NewReader(imageBytes))
	if pdf.Err() {
		return nil, fmt.Errorf("failed to embed snapshot: %v", pdf.Error())
	}
	pdf.ImageOptions("snapshot", x, y, drawWidth, drawHeight, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(0, pdfPageHeight-pdfMargin/2-3)
	pdf.CellFormat(pdfPageWidth, 6, time.Now().UTC().Format("02.01.2006"), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
