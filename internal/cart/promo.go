package cart

import "strings"

// PromoRules is the configured discount rule set.
type PromoRules struct {
	Code        string
	MinSubtotal int64
	Discount    int64
}

// Promo rejection reasons.
const (
	ReasonCodeMismatch  = "code mismatch"
	ReasonMinimumNotMet = "minimum not met"
)

// PromoError reports why a promo code was rejected.
type PromoError struct {
	Reason string
}

func (e *PromoError) Error() string {
	return "promo rejected: " + e.Reason
}

// ApplyPromo validates code against rules and the current subtotal.
// The input is trimmed and matched case-insensitively. On success the
// discount amount is returned; nothing is subtracted from the ledger.
// The caller computes the payable via Payable.
func (l *Ledger) ApplyPromo(code string, rules PromoRules) (int64, error) {
	if !strings.EqualFold(strings.TrimSpace(code), rules.Code) {
		return 0, &PromoError{Reason: ReasonCodeMismatch}
	}
	if l.Total() < rules.MinSubtotal {
		return 0, &PromoError{Reason: ReasonMinimumNotMet}
	}
	return rules.Discount, nil
}

// Payable is the cart total minus the applied discount, floored at
// zero.
func Payable(total, discount int64) int64 {
	if payable := total - discount; payable > 0 {
		return payable
	}
	return 0
}
