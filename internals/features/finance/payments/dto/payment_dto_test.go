package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFor(t *testing.T, target string) FilterCriteria {
	t.Helper()

	var got FilterCriteria
	app := fiber.New()
	app.Get("/payments", func(c *fiber.Ctx) error {
		got = ParseFilterCriteria(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	return got
}

func TestParseFilterCriteriaDefaults(t *testing.T) {
	crit := parseFor(t, "/payments")

	assert.Empty(t, crit.StudentName)
	assert.Empty(t, crit.PaymentStatus)
	assert.Empty(t, crit.SortBy)
	assert.Nil(t, crit.SchoolYearStart)
	assert.Nil(t, crit.SchoolYearEnd)
	assert.Equal(t, 0, crit.Page)
	assert.Equal(t, 10, crit.Size)
}

func TestParseFilterCriteriaFull(t *testing.T) {
	crit := parseFor(t, "/payments?studentName=Ani&paymentName=SPP&userName=budi"+
		"&paymentStatus=PAID&schoolYearStartDate=2025-07-01&schoolYearEndDate=2026-06-30"+
		"&sortBy=amount&sortDirection=asc&page=1&size=20")

	assert.Equal(t, "Ani", crit.StudentName)
	assert.Equal(t, "SPP", crit.PaymentName)
	assert.Equal(t, "budi", crit.UserName)
	assert.Equal(t, "PAID", crit.PaymentStatus)
	assert.Equal(t, "amount", crit.SortBy)
	assert.Equal(t, "asc", crit.SortDirection)
	assert.Equal(t, 1, crit.Page)
	assert.Equal(t, 20, crit.Size)

	require.NotNil(t, crit.SchoolYearStart)
	require.NotNil(t, crit.SchoolYearEnd)
	assert.Equal(t, "2025-07-01", crit.SchoolYearStart.Format("2006-01-02"))
	assert.Equal(t, "2026-06-30", crit.SchoolYearEnd.Format("2006-01-02"))
}

func TestParseFilterCriteriaBadDatesIgnored(t *testing.T) {
	crit := parseFor(t, "/payments?schoolYearStartDate=yesterday&schoolYearEndDate=2026-13-99")

	assert.Nil(t, crit.SchoolYearStart)
	assert.Nil(t, crit.SchoolYearEnd)
}
