// Package store implements the resource store pattern shared by every EMS
// collection the portal edits: one page of items, an optional single
// "current" item, filter/pagination state mirroring the last server
// response, and CRUD operations that keep the local copy in sync.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/services/emsapi"
)

// Entity is any backend resource with a numeric identifier.
type Entity interface {
	EntityID() int
}

// Pagination mirrors the last list response verbatim; it is never computed
// locally.
type Pagination struct {
	Page     int `json:"current_page"`
	PerPage  int `json:"per_page"`
	Total    int `json:"total"`
	LastPage int `json:"last_page"`
}

type listResponse struct {
	Data        json.RawMessage `json:"data"`
	CurrentPage int             `json:"current_page"`
	PerPage     int             `json:"per_page"`
	Total       int             `json:"total"`
	LastPage    int             `json:"last_page"`
}

// Store holds the transient, most-recently-fetched copy of one backend
// collection. All state is owned by the backend; local mutations are
// whole-object replacements synced from responses, never merges.
//
// A Store belongs to a single navigation/request and is not safe for
// concurrent use: overlapping fetches race and the last response wins.
type Store[T Entity] struct {
	client   *emsapi.Client
	endpoint string
	plural   string // error noun: "students"
	singular string // error noun: "student"

	Query      Query
	Items      []T
	Current    *T
	Pagination Pagination

	Loading  bool
	Saving   bool
	Removing bool
	Err      string
}

func New[T Entity](client *emsapi.Client, endpoint, plural, singular string) *Store[T] {
	return &Store[T]{
		client:   client,
		endpoint: endpoint,
		plural:   plural,
		singular: singular,
		Query:    NewQuery(DefaultPerPage),
	}
}

// Client exposes the underlying API client for resource-specific
// operations layered on top of the generic CRUD set.
func (s *Store[T]) Client() *emsapi.Client { return s.client }

func (s *Store[T]) Endpoint() string { return s.endpoint }

func (s *Store[T]) ItemPath(id int) string {
	return fmt.Sprintf("%s/%d", s.endpoint, id)
}

// Fail records the display message for err and re-raises it unchanged so
// the caller can still react to the original error.
func (s *Store[T]) Fail(err error, fallback string) error {
	s.Err = core.UserMessage(err, fallback)
	return err
}

// FetchList loads the page selected by Query, replacing Items and
// mirroring the response pagination fields verbatim.
func (s *Store[T]) FetchList(ctx context.Context) ([]T, error) {
	s.Loading = true
	s.Err = ""
	defer func() { s.Loading = false }()

	var res listResponse
	if err := s.client.Get(ctx, s.endpoint, s.Query.Values(), &res); err != nil {
		return nil, s.Fail(err, "Failed to load "+s.plural)
	}

	items := []T{}
	if len(res.Data) > 0 {
		if err := json.Unmarshal(res.Data, &items); err != nil {
			return nil, s.Fail(errors.Wrap(err, "decoding list data"), "Failed to load "+s.plural)
		}
	}
	s.Items = items

	s.Pagination = Pagination{
		Page:     res.CurrentPage,
		PerPage:  res.PerPage,
		Total:    res.Total,
		LastPage: res.LastPage,
	}
	if s.Pagination.Page == 0 {
		s.Pagination.Page = 1
	}
	if s.Pagination.PerPage == 0 {
		s.Pagination.PerPage = s.Query.PerPage()
	}
	if s.Pagination.LastPage == 0 {
		s.Pagination.LastPage = 1
	}
	s.Query.SetPage(s.Pagination.Page)
	return s.Items, nil
}

// FetchOne loads a single resource into Current. Show endpoints may return
// the bare object or a {data: object} envelope; both are handled.
func (s *Store[T]) FetchOne(ctx context.Context, id int) (T, error) {
	s.Loading = true
	s.Err = ""
	defer func() { s.Loading = false }()

	var zero T
	var raw json.RawMessage
	if err := s.client.Get(ctx, s.ItemPath(id), nil, &raw); err != nil {
		return zero, s.Fail(err, "Failed to load "+s.singular)
	}
	var obj T
	if err := emsapi.DecodeEntity(raw, &obj); err != nil {
		return zero, s.Fail(err, "Failed to load "+s.singular)
	}

	s.Current = &obj
	return obj, nil
}

// Create posts a new resource. When the view is on page 1 the created
// object is prepended to Items (optimistic, not a refetch); on any other
// page Items stays untouched but the created object is still returned.
func (s *Store[T]) Create(ctx context.Context, payload interface{}) (T, error) {
	s.Saving = true
	s.Err = ""
	defer func() { s.Saving = false }()

	var zero T
	var raw json.RawMessage
	if err := s.client.Post(ctx, s.endpoint, payload, &raw); err != nil {
		return zero, s.Fail(err, "Failed to create "+s.singular)
	}
	var created T
	if err := emsapi.DecodeEntity(raw, &created); err != nil {
		return zero, s.Fail(err, "Failed to create "+s.singular)
	}

	if s.Query.Page() == 1 {
		s.Items = append([]T{created}, s.Items...)
	}
	return created, nil
}

// Update patches a resource and replaces the matching entry in Items (and
// Current) wholesale with the response object; fields are never merged.
func (s *Store[T]) Update(ctx context.Context, id int, payload interface{}) (T, error) {
	s.Saving = true
	s.Err = ""
	defer func() { s.Saving = false }()

	var zero T
	var raw json.RawMessage
	if err := s.client.Patch(ctx, s.ItemPath(id), payload, &raw); err != nil {
		return zero, s.Fail(err, "Failed to update "+s.singular)
	}
	var updated T
	if err := emsapi.DecodeEntity(raw, &updated); err != nil {
		return zero, s.Fail(err, "Failed to update "+s.singular)
	}

	for i := range s.Items {
		if s.Items[i].EntityID() == id {
			s.Items[i] = updated
			break
		}
	}
	if s.Current != nil && (*s.Current).EntityID() == id {
		s.Current = &updated
	}
	return updated, nil
}

// Remove deletes a resource and splices it out of Items, clearing Current
// when it matched.
func (s *Store[T]) Remove(ctx context.Context, id int) error {
	s.Removing = true
	s.Err = ""
	defer func() { s.Removing = false }()

	if err := s.client.Delete(ctx, s.ItemPath(id), nil, nil); err != nil {
		return s.Fail(err, "Failed to delete "+s.singular)
	}

	kept := s.Items[:0]
	for _, item := range s.Items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	s.Items = kept
	if s.Current != nil && (*s.Current).EntityID() == id {
		s.Current = nil
	}
	return nil
}

// ReplaceItem syncs a single entry of Items (and Current) with obj, used
// by action endpoints that return an updated resource.
func (s *Store[T]) ReplaceItem(obj T) {
	for i := range s.Items {
		if s.Items[i].EntityID() == obj.EntityID() {
			s.Items[i] = obj
			break
		}
	}
	if s.Current != nil && (*s.Current).EntityID() == obj.EntityID() {
		s.Current = &obj
	}
}

// ListQuery serializes extra ad hoc parameters on top of the current
// filter set, for endpoints that take the list filters plus their own.
func (s *Store[T]) ListQuery(extra map[string]string) url.Values {
	values := s.Query.Values()
	for key, val := range extra {
		if val != "" {
			values.Set(key, val)
		}
	}
	return values
}
