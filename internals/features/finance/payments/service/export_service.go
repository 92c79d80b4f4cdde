package service

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	paymentModel "schoolpayment_backend/internals/features/finance/payments/model"
)

const exportSheet = "Payments"

var exportHeaders = []string{
	"No", "Order ID", "Payment Name", "Payment Type", "Student", "User",
	"Amount (IDR)", "Status", "Paid At", "Created At",
}

// ExportPaymentsToExcel menulis daftar pembayaran (hasil filter yang sama
// dengan listing admin) ke workbook Excel.
func ExportPaymentsToExcel(payments []paymentModel.PaymentModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, p := range payments {
		row := i + 2
		values := []interface{}{
			i + 1,
			p.OrderID,
			p.PaymentName,
			"",
			"",
			"",
			p.Amount,
			p.Status,
			"",
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if p.PaymentType != nil {
			values[3] = p.PaymentType.Name
		}
		if p.Student != nil {
			values[4] = fmt.Sprintf("%s (%s)", p.Student.Name, strconv.FormatInt(p.Student.NIS, 10))
		}
		if p.User != nil {
			values[5] = p.User.Name
		}
		if p.PaidAt != nil {
			values[8] = p.PaidAt.Format("2006-01-02 15:04:05")
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
