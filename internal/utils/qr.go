package utils

import (
	qrcode "github.com/skip2/go-qrcode"
)

// GeneratePaymentQR encodes the hosted invoice URL as a QR PNG so the barista
// can show it at the counter for customers paying by phone.
func GeneratePaymentQR(invoiceURL string) ([]byte, error) {
	return qrcode.Encode(invoiceURL, qrcode.Medium, 256)
}
