package invoice

import (
	"bytes"
	"fmt"

	"doctorsportal/cmd/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

// Render produces the PDF receipt attached to the payment confirmation
// mail.
func Render(booking *entity.Booking, payment *entity.Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Doctors Portal - Payment Receipt")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	lines := []string{
		fmt.Sprintf("Patient: %s", booking.PatientName),
		fmt.Sprintf("Treatment: %s", booking.Treatment),
		fmt.Sprintf("Date: %s", booking.AppointmentDate),
		fmt.Sprintf("Slot: %s", booking.Slot),
		fmt.Sprintf("Amount paid: %.2f", payment.Amount),
		fmt.Sprintf("Transaction: %s", payment.TransactionID),
		fmt.Sprintf("Booking reference: %s", booking.ID),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
