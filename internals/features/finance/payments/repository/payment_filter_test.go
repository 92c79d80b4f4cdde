package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolpayment_backend/internals/features/finance/payments/dto"
)

func mustPlan(t *testing.T, crit dto.FilterCriteria) *FilterPlan {
	t.Helper()
	plan, err := BuildFilterPlan(crit)
	require.NoError(t, err)
	return plan
}

func TestStatusOnlyFilterNeedsNoJoin(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{PaymentStatus: "PAID"})

	assert.Empty(t, plan.Joins())
	assert.False(t, plan.Distinct())
	assert.Contains(t, plan.Conditions(), "payments.payment_status = ?")
}

func TestDeletedRowsAlwaysExcluded(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{})
	assert.Contains(t, plan.Conditions(), "payments.deleted_at IS NULL")
}

func TestUserNameFilterJoinsUsers(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{UserName: "Budi"})

	require.Len(t, plan.Joins(), 1)
	assert.Contains(t, plan.Joins()[0], "JOIN users")
	assert.True(t, plan.Distinct())
}

func TestStudentNameFilterJoinsStudents(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{StudentName: "Ani"})

	require.Len(t, plan.Joins(), 1)
	assert.Contains(t, plan.Joins()[0], "JOIN students")
	assert.True(t, plan.Distinct())
}

func TestSchoolYearFilterJoinsFullChain(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	plan := mustPlan(t, dto.FilterCriteria{SchoolYearStart: &start, SchoolYearEnd: &end})

	joins := plan.Joins()
	require.Len(t, joins, 3)
	assert.Contains(t, joins[0], "JOIN students")
	assert.Contains(t, joins[1], "JOIN classes")
	assert.Contains(t, joins[2], "JOIN school_years")
	assert.True(t, plan.Distinct())
}

func TestSchoolYearFilterRequiresBothDates(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	plan := mustPlan(t, dto.FilterCriteria{SchoolYearStart: &start})
	assert.Empty(t, plan.Joins())

	plan = mustPlan(t, dto.FilterCriteria{SchoolYearEnd: &start})
	assert.Empty(t, plan.Joins())
}

func TestStudentJoinNotDuplicated(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	plan := mustPlan(t, dto.FilterCriteria{
		StudentName:     "Ani",
		SchoolYearStart: &start,
		SchoolYearEnd:   &end,
	})

	// students dibutuhkan dua filter tapi join-nya satu
	count := 0
	for _, j := range plan.Joins() {
		if j == joinStudents {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, plan.Joins(), 3)
}

func TestDefaultSortIsCreatedAtDesc(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{})
	assert.Equal(t, "payments.created_at", plan.OrderColumn())
	assert.True(t, plan.OrderDesc())
	assert.Equal(t, "payments.created_at DESC", plan.OrderClause())
}

func TestBogusSortDirectionFallsToDesc(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{SortBy: "amount", SortDirection: "sideways"})
	assert.Equal(t, "payments.amount DESC", plan.OrderClause())
}

func TestAscSortDirection(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{SortBy: "paymentName", SortDirection: "ASC"})
	assert.Equal(t, "payments.payment_name ASC", plan.OrderClause())
}

func TestUnknownSortFieldRejected(t *testing.T) {
	_, err := BuildFilterPlan(dto.FilterCriteria{SortBy: "password"})
	assert.ErrorIs(t, err, ErrInvalidSortField)

	_, err = BuildFilterPlan(dto.FilterCriteria{SortBy: "created_at"})
	assert.ErrorIs(t, err, ErrInvalidSortField, "nama kolom SQL bukan nama field yang diizinkan")
}

func TestNameFiltersAreLowercasedSubstring(t *testing.T) {
	plan := mustPlan(t, dto.FilterCriteria{PaymentName: "  SPP Maret "})

	found := false
	for _, c := range plan.conds {
		if c.expr == "LOWER(payments.payment_name) LIKE ?" {
			found = true
			require.Len(t, c.args, 1)
			assert.Equal(t, "%spp maret%", c.args[0])
		}
	}
	assert.True(t, found)
}
