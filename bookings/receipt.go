package bookings

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bhromon/middleware"
	"bhromon/models"
	"bhromon/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

// receiptPayload builds the HMAC-signed QR content for a booking:
// bookingID|paymentID|timestamp|signature.
func receiptPayload(secret []byte, bookingID, paymentID string, ts int64) string {
	data := fmt.Sprintf("%s|%s|%d", bookingID, paymentID, ts)
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return data + "|" + sig
}

// VerifyReceiptPayload checks a scanned QR payload's signature.
func VerifyReceiptPayload(secret []byte, payload string) bool {
	i := strings.LastIndex(payload, "|")
	if i < 0 {
		return false
	}
	data, sig := payload[:i], payload[i+1:]
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(expected))
}

// Receipt renders a paid booking as a PDF with a signed QR code. Owner or
// admin only.
// GET /bookings/:id/receipt
func (s *Service) Receipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ident, _ := middleware.IdentityFromRequest(r)
	id := ps.ByName("id")

	ctx := r.Context()
	var booking models.Booking
	err := s.bookings.FindOne(ctx, utils.IDFilter(id)).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	if !CanDelete(booking, ident.Email, s.isAdmin(ctx, ident.Email)) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	payload := receiptPayload(s.qrSecret, booking.ID.String(), booking.PaymentID, time.Now().Unix())
	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Item: %s (%s)", booking.ItemTitle, booking.ItemType))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booked by: %s", booking.UserEmail))
	pdf.Ln(8)
	if booking.StartDate != nil {
		pdf.Cell(0, 10, fmt.Sprintf("Start date: %s", booking.StartDate.Format("2006-01-02")))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Guests: %d", booking.Guests))
	pdf.Ln(8)
	if booking.Nights > 0 {
		pdf.Cell(0, 10, fmt.Sprintf("Nights: %d", booking.Nights))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Paid: %.2f %s", booking.Amount, strings.ToUpper(booking.Currency)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Payment ref: %s", booking.PaymentID))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+booking.ID.String()+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
