package models

// PaymentMethod is a selectable way of paying a bill.
type PaymentMethod struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var paymentMethods = []PaymentMethod{
	{Key: "fpx", Label: "FPX Online Banking"},
	{Key: "card", Label: "Credit/Debit Card"},
	{Key: "credit_card", Label: "Credit Card"},
	{Key: "bank_transfer", Label: "Bank Transfer"},
	{Key: "e_wallet", Label: "E-Wallet"},
	{Key: "check", Label: "Check"},
	{Key: "cash", Label: "Cash"},
}

// PaymentMethods returns the supported payment methods in display order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// PaymentMethodLabel returns the display label for key.
// Unknown keys are returned unchanged.
func PaymentMethodLabel(key string) string {
	for _, m := range paymentMethods {
		if m.Key == key {
			return m.Label
		}
	}
	return key
}
