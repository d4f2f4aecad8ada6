package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// DefaultQRGenerator encodes a link to the reviews section for a delivered order.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := ReviewLink(g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, qrSize)
}

func ReviewLink(baseURL, orderID string) string {
	return fmt.Sprintf("%s/#reviews?order=%s", strings.TrimRight(baseURL, "/"), url.QueryEscape(orderID))
}
