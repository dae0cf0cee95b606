package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// UPIQRGenerator renders a UPI deep link as a QR code PNG for the
// payment step. Amounts are in paise.
type UPIQRGenerator struct {
	PayeeVPA  string
	PayeeName string
}

func (g UPIQRGenerator) PaymentQR(note string, amount int) ([]byte, error) {
	link := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d.%02d&cu=INR&tn=%s",
		url.QueryEscape(g.PayeeVPA),
		url.QueryEscape(g.PayeeName),
		amount/100, amount%100,
		url.QueryEscape(note))
	return qrcode.Encode(link, qrcode.Medium, 256)
}

var _ QRGenerator = UPIQRGenerator{}
