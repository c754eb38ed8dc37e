package service

import (
	"regexp"
	"strings"

	"vineyard/internal/model"
)

// cardBrands is checked in order; the first matching prefix wins.
var cardBrands = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{"Visa", regexp.MustCompile(`^4`)},
	{"Mastercard", regexp.MustCompile(`^5[1-5]`)},
	{"American Express", regexp.MustCompile(`^3[47]`)},
	{"Discover", regexp.MustCompile(`^6(?:011|5)`)},
	{"Diners Club", regexp.MustCompile(`^3(?:0[0-5]|[68])`)},
	{"JCB", regexp.MustCompile(`^(?:2131|1800|35)`)},
}

var (
	cardDigits = regexp.MustCompile(`^\d{12,19}$`)
	cardExpiry = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// detectCardBrand names the card network from the number's prefix.
func detectCardBrand(number string) string {
	for _, b := range cardBrands {
		if b.pattern.MatchString(number) {
			return b.brand
		}
	}
	return model.PaymentCreditCard
}

// summariseCard validates card details and keeps only what may be stored.
func summariseCard(req *model.PurchaseRequest) (*model.CardSummary, error) {
	number := strings.NewReplacer(" ", "", "-", "").Replace(req.CardNumber)
	expiry := strings.TrimSpace(req.CardExpiry)
	name := strings.TrimSpace(req.NameOnCard)

	if !cardDigits.MatchString(number) || !cardExpiry.MatchString(expiry) || name == "" {
		return nil, model.ErrInvalidPayment
	}

	return &model.CardSummary{
		Brand:      detectCardBrand(number),
		Last4:      number[len(number)-4:],
		Expiry:     expiry,
		NameOnCard: name,
	}, nil
}

func isCardPayment(paymentType string) bool {
	return paymentType == model.PaymentCreditCard || paymentType == model.PaymentDebitCard
}
