package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	paymentModel "schoolpayment_backend/internals/features/finance/payments/model"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		transactionStatus string
		fraudStatus       string
		want              string
	}{
		{"settlement", "", paymentModel.PaymentStatusPaid},
		{"capture", "accept", paymentModel.PaymentStatusPaid},
		{"capture", "challenge", paymentModel.PaymentStatusPending},
		{"pending", "", paymentModel.PaymentStatusPending},
		{"expire", "", paymentModel.PaymentStatusCanceled},
		{"cancel", "", paymentModel.PaymentStatusFailed},
		{"deny", "", paymentModel.PaymentStatusFailed},
		{"refund", "", paymentModel.PaymentStatusRefunded},
		{"partial_refund", "", paymentModel.PaymentStatusRefunded},
		{"authorize", "", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		got := MapGatewayStatus(tc.transactionStatus, tc.fraudStatus)
		assert.Equal(t, tc.want, got, "status=%s fraud=%s", tc.transactionStatus, tc.fraudStatus)
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	serverKey := "SB-Mid-server-test"
	orderID := "PAY-123"
	statusCode := "200"
	grossAmount := "150000.00"

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	valid := hex.EncodeToString(sum[:])

	assert.True(t, VerifyWebhookSignature(serverKey, orderID, statusCode, grossAmount, valid))
	assert.False(t, VerifyWebhookSignature(serverKey, orderID, statusCode, grossAmount, "deadbeef"))
	assert.False(t, VerifyWebhookSignature("other-key", orderID, statusCode, grossAmount, valid))
	assert.False(t, VerifyWebhookSignature(serverKey, "PAY-999", statusCode, grossAmount, valid))
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range paymentModel.ValidPaymentStatuses {
		assert.True(t, paymentModel.IsValidPaymentStatus(s))
	}
	assert.False(t, paymentModel.IsValidPaymentStatus("paid"))
	assert.False(t, paymentModel.IsValidPaymentStatus("UNKNOWN"))
	assert.False(t, paymentModel.IsValidPaymentStatus(""))
}
