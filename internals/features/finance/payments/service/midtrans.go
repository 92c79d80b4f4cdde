package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	paymentModel "schoolpayment_backend/internals/features/finance/payments/model"
	userModel "schoolpayment_backend/internals/features/users/user/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken membuat transaksi Snap untuk satu tagihan.
// Return: (snap token, redirect URL, error).
func GenerateSnapToken(p paymentModel.PaymentModel, u userModel.UserModel) (string, string, error) {
	if p.Amount <= 0 {
		return "", "", errors.New("invalid amount")
	}
	if p.OrderID == "" {
		return "", "", errors.New("order_id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.OrderID,
			GrossAmt: p.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: u.Name,
			Email: u.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    p.PaymentTypeID.String(),
				Name:  p.PaymentName,
				Price: p.Amount,
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
