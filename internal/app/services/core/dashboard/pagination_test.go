package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 2, ClampPage(1, 2, 3))
	assert.Equal(t, 3, ClampPage(3, 4, 3))
	assert.Equal(t, 1, ClampPage(1, 0, 3))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Paginate(items, 1, 3))
	assert.Equal(t, []int{7}, Paginate(items, 3, 3))
	assert.Equal(t, []int{}, Paginate(items, 4, 3))
	assert.Equal(t, []int{}, Paginate(items, 0, 3))
}
