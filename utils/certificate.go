package utils

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderCertificatePDF generates a fixed-layout completion certificate in
// memory: landscape letter page with a double border, the student's full
// name, the course title and the completion date.
func RenderCertificatePDF(studentName, courseTitle string, completionDate time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.AddPage()

	width, height := pdf.GetPageSize()
	inch := 72.0

	// Outer border
	pdf.SetDrawColor(0, 0, 139) // dark blue
	pdf.SetLineWidth(5)
	pdf.Rect(0.5*inch, 0.5*inch, width-1*inch, height-1*inch, "D")

	// Inner border
	pdf.SetDrawColor(218, 165, 32) // gold
	pdf.SetLineWidth(2)
	pdf.Rect(0.6*inch, 0.6*inch, width-1.2*inch, height-1.2*inch, "D")

	centered := func(y float64, text string) {
		pdf.Text((width-pdf.GetStringWidth(text))/2, y, text)
	}

	pdf.SetFont("Helvetica", "B", 40)
	pdf.SetTextColor(0, 0, 139)
	centered(2.2*inch, "Certificate of Completion")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(0, 0, 0)
	centered(2.9*inch, "This certificate is awarded to:")

	pdf.SetFont("Helvetica", "B", 30)
	centered(3.6*inch, studentName)

	pdf.SetFont("Helvetica", "", 14)
	centered(4.5*inch, "For successfully completing the course:")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 0, 139)
	centered(5.2*inch, courseTitle)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(128, 128, 128)
	centered(6.2*inch, "Date: "+completionDate.Format("January 2, 2006"))

	// Signature line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Line(width/2-1.5*inch, height-1.5*inch, width/2+1.5*inch, height-1.5*inch)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(0, 0, 0)
	centered(height-1.25*inch, "APPRENDE LMS")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
