package model

// Status pembayaran internal. Status dari gateway dipetakan ke salah satu
// dari ini oleh service webhook.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusPaid      = "PAID"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusCanceled  = "CANCELED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

var ValidPaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusCompleted,
	PaymentStatusCanceled,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

func IsValidPaymentStatus(s string) bool {
	for _, v := range ValidPaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}
