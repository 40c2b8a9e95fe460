package store

import (
	"net/url"
	"strconv"
)

// DefaultPerPage matches the backend's default list page size.
const DefaultPerPage = 25

// Query is the filter/pagination state a store serializes into list
// requests. Changing any filter dimension invalidates the current page
// position, so every setter except SetPage resets page to 1.
type Query struct {
	page       int
	perPage    int
	defPerPage int
	fields     url.Values
}

func NewQuery(perPage int) Query {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Query{
		page:       1,
		perPage:    perPage,
		defPerPage: perPage,
		fields:     make(url.Values),
	}
}

func (q *Query) Page() int    { return q.page }
func (q *Query) PerPage() int { return q.perPage }

func (q *Query) Get(field string) string {
	return q.fields.Get(field)
}

// Set changes a filter dimension and resets the page position. An empty
// value clears the dimension (also a filter change).
func (q *Query) Set(field, value string) {
	if value == "" {
		q.fields.Del(field)
	} else {
		q.fields.Set(field, value)
	}
	q.page = 1
}

func (q *Query) SetInt(field string, value int) {
	q.Set(field, strconv.Itoa(value))
}

func (q *Query) Del(field string) {
	q.fields.Del(field)
	q.page = 1
}

// SetPage moves within the current filter set; it does not reset anything.
func (q *Query) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.page = page
}

func (q *Query) SetPerPage(perPage int) {
	if perPage < 1 {
		perPage = 1
	}
	q.perPage = perPage
	q.page = 1
}

// Reset restores defaults and clears every filter dimension.
func (q *Query) Reset() {
	q.page = 1
	q.perPage = q.defPerPage
	q.fields = make(url.Values)
}

// Values serializes the query for a list request.
func (q *Query) Values() url.Values {
	values := make(url.Values, len(q.fields)+2)
	for field, vals := range q.fields {
		for _, val := range vals {
			values.Add(field, val)
		}
	}
	values.Set("page", strconv.Itoa(q.page))
	values.Set("per_page", strconv.Itoa(q.perPage))
	return values
}
