package ems

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/services/emsapi"
)

type (
	Division struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		ENName string `json:"en_name,omitempty"`
	}

	District struct {
		ID         int    `json:"id"`
		DivisionID int    `json:"division_id"`
		Name       string `json:"name"`
		ENName     string `json:"en_name,omitempty"`
	}

	Area struct {
		ID         int    `json:"id"`
		DistrictID int    `json:"district_id"`
		Name       string `json:"name"`
		ENName     string `json:"en_name,omitempty"`
	}

	// AddressJSON is the nested address blob carried by students and
	// admission applications.
	AddressJSON struct {
		DivisionID          int    `json:"division_id,omitempty"`
		DistrictID          int    `json:"district_id,omitempty"`
		AreaID              int    `json:"area_id,omitempty"`
		VillageHouseHolding string `json:"village_house_holding,omitempty"`
	}
)

// AddressStore serves the division/district/area cascade behind the
// admission and student address forms. The lists are read-only lookups:
// divisions load once, districts and areas reload per selected parent.
type AddressStore struct {
	client *emsapi.Client

	Divisions []Division
	Districts []District
	Areas     []Area
	Err       string
}

func NewAddressStore(c *emsapi.Client) *AddressStore {
	return &AddressStore{client: c}
}

func (s *AddressStore) FetchDivisions(ctx context.Context) ([]Division, error) {
	if len(s.Divisions) > 0 {
		return s.Divisions, nil
	}
	divisions := []Division{}
	if err := s.fetch(ctx, "/v1/divisions", nil, &divisions, "Failed to load divisions"); err != nil {
		return nil, err
	}
	s.Divisions = divisions
	return divisions, nil
}

// FetchDistricts loads the districts of a division; a zero divisionID
// clears the list instead. Already-loaded districts of the same division
// are served from memory unless forced.
func (s *AddressStore) FetchDistricts(ctx context.Context, divisionID int, force bool) ([]District, error) {
	if divisionID == 0 {
		s.Districts = nil
		return nil, nil
	}
	if !force {
		for _, d := range s.Districts {
			if d.DivisionID == divisionID {
				return s.DistrictsByDivision(divisionID), nil
			}
		}
	}
	query := url.Values{"division_id": {strconv.Itoa(divisionID)}}
	districts := []District{}
	if err := s.fetch(ctx, "/v1/districts", query, &districts, "Failed to load districts"); err != nil {
		return nil, err
	}
	s.Districts = districts
	return districts, nil
}

// FetchAreas mirrors FetchDistricts one level down the cascade.
func (s *AddressStore) FetchAreas(ctx context.Context, districtID int, force bool) ([]Area, error) {
	if districtID == 0 {
		s.Areas = nil
		return nil, nil
	}
	if !force {
		for _, a := range s.Areas {
			if a.DistrictID == districtID {
				return s.AreasByDistrict(districtID), nil
			}
		}
	}
	query := url.Values{"district_id": {strconv.Itoa(districtID)}}
	areas := []Area{}
	if err := s.fetch(ctx, "/v1/areas", query, &areas, "Failed to load areas"); err != nil {
		return nil, err
	}
	s.Areas = areas
	return areas, nil
}

func (s *AddressStore) DistrictsByDivision(divisionID int) []District {
	var out []District
	for _, d := range s.Districts {
		if d.DivisionID == divisionID {
			out = append(out, d)
		}
	}
	return out
}

func (s *AddressStore) AreasByDistrict(districtID int) []Area {
	var out []Area
	for _, a := range s.Areas {
		if a.DistrictID == districtID {
			out = append(out, a)
		}
	}
	return out
}

func (s *AddressStore) ClearDistricts() { s.Districts = nil }

func (s *AddressStore) ClearAreas() { s.Areas = nil }

// fetch decodes either a bare array or a {data: [...]} envelope, like the
// single-entity endpoints.
func (s *AddressStore) fetch(ctx context.Context, path string, query url.Values, out interface{}, fallback string) error {
	var raw json.RawMessage
	if err := s.client.Get(ctx, path, query, &raw); err != nil {
		s.Err = core.UserMessage(err, fallback)
		return err
	}
	if err := emsapi.DecodeEntity(raw, out); err != nil {
		s.Err = core.UserMessage(err, fallback)
		return err
	}
	return nil
}
