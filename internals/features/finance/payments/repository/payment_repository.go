package repository

import (
	"gorm.io/gorm"

	"schoolpayment_backend/internals/features/finance/payments/model"
)

// FindPayments mengeksekusi rencana filter: hitung total lalu ambil satu
// halaman, lengkap dengan relasi untuk response.
func FindPayments(db *gorm.DB, plan *FilterPlan, page, size int) ([]model.PaymentModel, int64, error) {
	countQuery := db.Model(&model.PaymentModel{})
	for _, j := range plan.joins {
		countQuery = countQuery.Joins(j)
	}
	for _, c := range plan.conds {
		countQuery = countQuery.Where(c.expr, c.args...)
	}
	if plan.distinct {
		countQuery = countQuery.Distinct("payments.payment_id")
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []model.PaymentModel
	err := plan.Apply(db).
		Preload("User").
		Preload("Student").
		Preload("PaymentType").
		Order(plan.OrderClause()).
		Limit(size).
		Offset(page * size).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
