// Package whatsapp builds the storefront's inquiry deep links.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"catalog-service/internal/models"
)

// Inquiry builds wa.me links pre-filled with a product inquiry message.
// Purely derived from the product; no state beyond the configured phone.
type Inquiry struct {
	phone string // digits only, as wa.me requires
}

func New(phone string) *Inquiry {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return &Inquiry{phone: digits.String()}
}

// Link returns the wa.me URL encoding category, brand, model and price as a
// pre-filled text message.
func (i *Inquiry) Link(p models.Product) string {
	message := fmt.Sprintf(
		"Hola! Estoy interesado en el siguiente producto: %s - %s - %s - Precio: U$D %s",
		p.Category, p.Brand, p.Model, FormatPrice(p.Price),
	)
	return "https://wa.me/" + i.phone + "?text=" + url.QueryEscape(message)
}

// FormatPrice renders a price the way the storefront displays it: dot
// thousands separators and a comma decimal point, with up to three decimals
// and no trailing zeros.
func FormatPrice(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, frac := parts[0], strings.TrimRight(parts[1], "0")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var grouped strings.Builder
	for pos, digit := range intPart {
		if pos > 0 && (len(intPart)-pos)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String()
	if negative {
		out = "-" + out
	}
	if frac != "" {
		out += "," + frac
	}
	return out
}
