package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestOverlaps(t *testing.T) {
	year := SchoolYearModel{StartDate: d("2025-07-01"), EndDate: d("2026-06-30")}

	// rentang di tengah tahun ajaran
	assert.True(t, year.Overlaps(d("2025-09-01"), d("2025-12-31")))
	// rentang menyelimuti seluruh tahun ajaran
	assert.True(t, year.Overlaps(d("2025-01-01"), d("2027-01-01")))
	// irisan di ujung
	assert.True(t, year.Overlaps(d("2026-06-30"), d("2026-12-31")))
	assert.True(t, year.Overlaps(d("2025-01-01"), d("2025-07-01")))

	// sepenuhnya sebelum / sesudah
	assert.False(t, year.Overlaps(d("2025-01-01"), d("2025-06-30")))
	assert.False(t, year.Overlaps(d("2026-07-01"), d("2026-12-31")))
}
