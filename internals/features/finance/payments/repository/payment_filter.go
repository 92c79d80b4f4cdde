package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"schoolpayment_backend/internals/features/finance/payments/dto"
	"schoolpayment_backend/internals/features/finance/payments/model"
	helper "schoolpayment_backend/internals/helpers"
)

var ErrInvalidSortField = errors.New("invalid sort field")

// Kolom sorting yang diizinkan. Kunci = nama field di query param,
// nilai = ekspresi kolom SQL. Di luar daftar ini ditolak, bukan di-default,
// supaya typo klien tidak diam-diam berubah makna.
var sortableColumns = map[string]string{
	"createdAt":     "payments.created_at",
	"updatedAt":     "payments.updated_at",
	"paymentName":   "payments.payment_name",
	"amount":        "payments.amount",
	"paymentStatus": "payments.payment_status",
}

// Join yang mungkin dibutuhkan rencana filter, dalam urutan dependensinya.
const (
	joinUsers       = "LEFT JOIN users ON users.user_id = payments.user_id"
	joinStudents    = "LEFT JOIN students ON students.student_id = payments.student_id"
	joinClasses     = "LEFT JOIN classes ON classes.class_id = students.class_id"
	joinSchoolYears = "LEFT JOIN school_years ON school_years.school_year_id = classes.school_year_id"
)

type cond struct {
	expr string
	args []interface{}
}

// FilterPlan adalah hasil kompilasi kriteria: daftar join + predikat +
// order yang sudah final, belum menyentuh database sama sekali.
type FilterPlan struct {
	joins    []string
	conds    []cond
	distinct bool
	orderBy  string
	desc     bool
}

func (p *FilterPlan) Joins() []string { return p.joins }

func (p *FilterPlan) Distinct() bool { return p.distinct }

func (p *FilterPlan) OrderColumn() string { return p.orderBy }

func (p *FilterPlan) OrderDesc() bool { return p.desc }

// Conditions mengembalikan pasangan (expr, args) untuk inspeksi di test.
func (p *FilterPlan) Conditions() []string {
	out := make([]string, 0, len(p.conds))
	for _, c := range p.conds {
		out = append(out, c.expr)
	}
	return out
}

// addJoin menambahkan join sekali saja, mempertahankan urutan pemanggilan.
func (p *FilterPlan) addJoin(j string) {
	for _, existing := range p.joins {
		if existing == j {
			return
		}
	}
	p.joins = append(p.joins, j)
	p.distinct = true
}

func (p *FilterPlan) where(expr string, args ...interface{}) {
	p.conds = append(p.conds, cond{expr: expr, args: args})
}

// BuildFilterPlan mengompilasi kriteria menjadi rencana query.
// Join hanya ditambahkan bila ada filter yang membutuhkannya; begitu ada
// join, hasil di-DISTINCT supaya baris payment tidak terduplikasi.
func BuildFilterPlan(crit dto.FilterCriteria) (*FilterPlan, error) {
	plan := &FilterPlan{}

	// Baris terhapus tidak pernah ikut.
	plan.where("payments.deleted_at IS NULL")

	if crit.PaymentName != "" {
		plan.where("LOWER(payments.payment_name) LIKE ?", likePattern(crit.PaymentName))
	}

	// Status dibandingkan apa adanya, tanpa normalisasi case.
	if crit.PaymentStatus != "" {
		plan.where("payments.payment_status = ?", crit.PaymentStatus)
	}

	if crit.UserName != "" {
		plan.addJoin(joinUsers)
		plan.where("LOWER(users.name) LIKE ?", likePattern(crit.UserName))
	}

	if crit.StudentName != "" {
		plan.addJoin(joinStudents)
		plan.where("LOWER(students.student_name) LIKE ?", likePattern(crit.StudentName))
	}

	// Filter tahun ajaran: overlap rentang, kedua tanggal wajib terisi.
	if crit.SchoolYearStart != nil && crit.SchoolYearEnd != nil {
		plan.addJoin(joinStudents)
		plan.addJoin(joinClasses)
		plan.addJoin(joinSchoolYears)
		plan.where("school_years.start_date <= ?", *crit.SchoolYearEnd)
		plan.where("school_years.end_date >= ?", *crit.SchoolYearStart)
	}

	sortBy := crit.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	column, ok := sortableColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, sortBy)
	}
	plan.orderBy = column
	plan.desc = helper.NormalizeSortDirection(crit.SortDirection) == "desc"

	return plan, nil
}

// Apply menempelkan rencana ke query GORM.
func (p *FilterPlan) Apply(db *gorm.DB) *gorm.DB {
	query := db.Model(&model.PaymentModel{})
	for _, j := range p.joins {
		query = query.Joins(j)
	}
	for _, c := range p.conds {
		query = query.Where(c.expr, c.args...)
	}
	if p.distinct {
		query = query.Distinct("payments.*")
	}
	return query
}

// OrderClause menghasilkan klausa ORDER BY final.
func (p *FilterPlan) OrderClause() string {
	dir := "ASC"
	if p.desc {
		dir = "DESC"
	}
	return p.orderBy + " " + dir
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
