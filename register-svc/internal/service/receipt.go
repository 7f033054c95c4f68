package service

import (
	"fmt"
	"time"

	"autobus-caisse/register-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type ReceiptGenerator interface {
	Generate(tx domain.Transaction) ([]byte, error)
}

type QRReceiptGenerator struct {
	Shop string
	Size int
}

func (g QRReceiptGenerator) Generate(tx domain.Transaction) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(ReceiptPayload(g.Shop, tx), qrcode.Medium, size)
}

// ReceiptPayload is the text carried by a receipt QR code.
func ReceiptPayload(shop string, tx domain.Transaction) string {
	status := "paid"
	if tx.Cancelled {
		status = "cancelled"
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d|%s",
		shop, tx.ID, tx.Total.StringFixed(2), tx.PaymentMethod,
		tx.Timestamp.UTC().Format(time.RFC3339), len(tx.Items), status)
}
