package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveFor(t, "/x")
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 10, p.Limit)
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveFor(t, "/x?page=2&size=25")
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.Size)
	assert.Equal(t, 50, p.Offset)
}

func TestResolvePagingBogusValues(t *testing.T) {
	p := resolveFor(t, "/x?page=-3&size=abc")
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 10, p.Size)

	p = resolveFor(t, "/x?size=5000")
	assert.Equal(t, MaxPageSize, p.Size)
}

func TestBuildPagination(t *testing.T) {
	// 25 baris, size 10 → 3 halaman
	pg := BuildPagination(25, 0, 10, 10)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, int64(25), pg.Total)
	assert.Equal(t, 10, pg.Count)

	// pas habis dibagi
	pg = BuildPagination(30, 2, 10, 10)
	assert.Equal(t, 3, pg.TotalPages)

	// kosong
	pg = BuildPagination(0, 0, 10, 0)
	assert.Equal(t, 0, pg.TotalPages)
	assert.Equal(t, 0, pg.Count)
}

func TestNormalizeSortDirection(t *testing.T) {
	assert.Equal(t, "asc", NormalizeSortDirection("asc"))
	assert.Equal(t, "asc", NormalizeSortDirection(" ASC "))
	assert.Equal(t, "desc", NormalizeSortDirection("desc"))
	assert.Equal(t, "desc", NormalizeSortDirection(""))
	assert.Equal(t, "desc", NormalizeSortDirection("sideways"))
}
