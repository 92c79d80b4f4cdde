// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage     = 0 // 0-indexed
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Paging struct {
	Page   int
	Size   int
	Offset int
	Limit  int
}

// ResolvePaging membaca ?page= & ?size= dan normalisasi.
// Page 0-indexed (default 0), size default 10 dengan hard cap.
func ResolvePaging(c *fiber.Ctx) Paging {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 0 {
		page = DefaultPage
	}

	size := atoiDefault(strings.TrimSpace(c.Query("size")), DefaultPageSize)
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Paging{
		Page:   page,
		Size:   size,
		Offset: page * size,
		Limit:  size,
	}
}

// NormalizeSortDirection: asc|desc case-insensitive, nilai lain jatuh ke desc.
func NormalizeSortDirection(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "asc") {
		return "asc"
	}
	return "desc"
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
