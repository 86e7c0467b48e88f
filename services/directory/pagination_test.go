package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaging_Defaults(t *testing.T) {
	page, limit := normalizePaging(0, 0)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	page, limit = normalizePaging(-3, -1)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	page, limit = normalizePaging(4, 25)
	assert.Equal(t, int64(4), page)
	assert.Equal(t, int64(25), limit)
}

func TestPaginate_TotalPagesRoundsUp(t *testing.T) {
	assert.Equal(t, int64(0), paginate(1, 10, 0).TotalPages)
	assert.Equal(t, int64(1), paginate(1, 10, 1).TotalPages)
	assert.Equal(t, int64(1), paginate(1, 10, 10).TotalPages)
	assert.Equal(t, int64(2), paginate(1, 10, 11).TotalPages)
	assert.Equal(t, int64(3), paginate(2, 7, 15).TotalPages)
}

func TestPaginate_EchoesPageAndLimit(t *testing.T) {
	p := paginate(3, 20, 55)
	assert.Equal(t, int64(3), p.Page)
	assert.Equal(t, int64(20), p.Limit)
	assert.Equal(t, int64(55), p.Total)
	assert.Equal(t, int64(3), p.TotalPages)
}
