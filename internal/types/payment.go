package types

import (
	"strings"
	"unicode"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// swagger:enum PaymentMethod
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "CREDIT"
	PaymentDebit  PaymentMethod = "DEBIT"
	PaymentPix    PaymentMethod = "PIX"
	PaymentCash   PaymentMethod = "CASH"
	PaymentOther  PaymentMethod = "OTHER"
)

// PaymentMethods lists all valid payment methods.
var PaymentMethods = []PaymentMethod{PaymentCredit, PaymentDebit, PaymentPix, PaymentCash, PaymentOther}

// DefaultCreditPatterns are the glob patterns matched against folded payment
// type labels to classify them as credit card payments.
var DefaultCreditPatterns = []string{"*credito*", "cartao"}

// CreditPatterns is the active list of credit card patterns.
var CreditPatterns = DefaultCreditPatterns

// Fold lowercases s, strips diacritics and collapses whitespace so that
// "Cartão de  Crédito" and "cartao de credito" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// ClassifyPayment maps a free text payment type label to its PaymentMethod.
func ClassifyPayment(label string) PaymentMethod {
	folded := Fold(label)
	if folded == "" {
		return PaymentOther
	}

	for _, pattern := range CreditPatterns {
		if glob.Glob(pattern, folded) {
			return PaymentCredit
		}
	}

	switch {
	case strings.Contains(folded, "debito"):
		return PaymentDebit
	case strings.Contains(folded, "pix"):
		return PaymentPix
	case strings.Contains(folded, "dinheiro"), strings.Contains(folded, "especie"):
		return PaymentCash
	}

	return PaymentOther
}

// Valid reports whether p is one of the defined payment methods.
func (p PaymentMethod) Valid() bool {
	return slices.Contains(PaymentMethods, p)
}
