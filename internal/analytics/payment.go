package analytics

import (
	"strings"

	"github.com/ds124wfegd/car-rental/internal/entity"
)

// paymentRules are checked in order; the first hit wins.
var paymentRules = []struct {
	method   entity.PaymentMethod
	keywords []string
}{
	{entity.PaymentMTN, []string{"mtn"}},
	{entity.PaymentAirtel, []string{"airtel"}},
	{entity.PaymentCard, []string{"card", "credit", "debit"}},
}

// ClassifyPayment infers the payment method from free-text booking notes.
func ClassifyPayment(notes *string) entity.PaymentMethod {
	if notes == nil {
		return entity.PaymentUnknown
	}
	text := strings.ToLower(*notes)
	for _, rule := range paymentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.method
			}
		}
	}
	return entity.PaymentUnknown
}
