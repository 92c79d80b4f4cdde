package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	paymentModel "schoolpayment_backend/internals/features/finance/payments/model"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// VerifyWebhookSignature mencocokkan signature_key notifikasi Midtrans:
// sha512(order_id + status_code + gross_amount + serverKey).
func VerifyWebhookSignature(serverKey, orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signature
}

// MapGatewayStatus memetakan transaction_status Midtrans ke status internal.
// Status yang tidak dikenal dibiarkan apa adanya (return "").
func MapGatewayStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return paymentModel.PaymentStatusPending
		}
		return paymentModel.PaymentStatusPaid
	case "settlement":
		return paymentModel.PaymentStatusPaid
	case "pending":
		return paymentModel.PaymentStatusPending
	case "expire":
		return paymentModel.PaymentStatusCanceled
	case "cancel", "deny":
		return paymentModel.PaymentStatusFailed
	case "refund", "partial_refund":
		return paymentModel.PaymentStatusRefunded
	}
	return ""
}

// HandlePaymentNotification dipanggil saat menerima notifikasi dari Midtrans.
func HandlePaymentNotification(db *gorm.DB, serverKey string, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	transactionStatus, ok2 := body["transaction_status"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signature, _ := body["signature_key"].(string)
	fraudStatus, _ := body["fraud_status"].(string)
	transactionID, _ := body["transaction_id"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	if !VerifyWebhookSignature(serverKey, orderID, statusCode, grossAmount, signature) {
		log.Println("[ERROR] Signature webhook tidak valid, order:", orderID)
		return ErrInvalidSignature
	}

	var payment paymentModel.PaymentModel
	if err := db.Where("order_id = ? AND deleted_at IS NULL", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Payment tidak ditemukan:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	newStatus := MapGatewayStatus(transactionStatus, fraudStatus)
	if newStatus == "" {
		log.Println("[INFO] Status tidak diproses:", transactionStatus)
		return nil
	}

	payment.Status = newStatus
	if newStatus == paymentModel.PaymentStatusPaid {
		now := time.Now()
		payment.PaidAt = &now
	}
	if transactionID != "" {
		payment.TransactionID = &transactionID
	}
	payment.GatewayMeta = datatypes.JSONMap(body)

	if err := db.Save(&payment).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status payment:", err)
		return err
	}

	log.Printf("✅ Payment %s → %s", orderID, newStatus)
	return nil
}
