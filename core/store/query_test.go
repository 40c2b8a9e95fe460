package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Query_filterChangesResetPage(t *testing.T) {
	q := NewQuery(DefaultPerPage)
	q.SetPage(4)
	assert.Equal(t, 4, q.Page())

	q.Set("q", "ali")
	assert.Equal(t, 1, q.Page())

	q.SetPage(3)
	q.Set("q", "") // clearing a filter is still a filter change
	assert.Equal(t, 1, q.Page())

	q.SetPage(2)
	q.SetInt("level_id", 7)
	assert.Equal(t, 1, q.Page())

	q.SetPage(5)
	q.Del("level_id")
	assert.Equal(t, 1, q.Page())

	q.SetPage(5)
	q.SetPerPage(50)
	assert.Equal(t, 1, q.Page())
}

func Test_Query_Values(t *testing.T) {
	q := NewQuery(10)
	q.Set("q", "omar")
	q.Set("status", "active")
	q.SetPage(3)

	values := q.Values()
	assert.Equal(t, "omar", values.Get("q"))
	assert.Equal(t, "active", values.Get("status"))
	assert.Equal(t, "3", values.Get("page"))
	assert.Equal(t, "10", values.Get("per_page"))
}

func Test_Query_Reset(t *testing.T) {
	q := NewQuery(10)
	q.Set("q", "x")
	q.SetPerPage(100)
	q.SetPage(9)

	q.Reset()
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, 10, q.PerPage())
	assert.Empty(t, q.Get("q"))
}

func Test_Query_pageFloor(t *testing.T) {
	q := NewQuery(0)
	assert.Equal(t, DefaultPerPage, q.PerPage())

	q.SetPage(-3)
	assert.Equal(t, 1, q.Page())
}
