package http

import (
	"net/url"

	"harbor/internal/core/application/usecases/queries"
	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/domain/model/vessel"

	"github.com/labstack/echo/v4"
)

type createVesselRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Length int    `json:"length"`
}

type updateVesselRequest struct {
	Name   *string `json:"name"`
	Type   *string `json:"type"`
	Length *int    `json:"length"`
}

type createCargoRequest struct {
	Item         string `json:"item"`
	CreationDate string `json:"creation_date"`
	Volume       int    `json:"volume"`
}

type updateCargoRequest struct {
	Item         *string `json:"item"`
	CreationDate *string `json:"creation_date"`
	Volume       *int    `json:"volume"`
}

type cargoRefResponse struct {
	ID   int64  `json:"id"`
	Self string `json:"self"`
}

type vesselResponse struct {
	ID     int64              `json:"id"`
	Name   string             `json:"name"`
	Type   string             `json:"type"`
	Length int                `json:"length"`
	Owner  string             `json:"owner"`
	Cargo  []cargoRefResponse `json:"cargo"`
	Self   string             `json:"self"`
}

type vesselListResponse struct {
	Vessels []vesselResponse `json:"vessels"`
	Total   int              `json:"total"`
	Next    string           `json:"next,omitempty"`
}

type carrierResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Self string `json:"self"`
}

type cargoResponse struct {
	ID           int64            `json:"id"`
	Item         string           `json:"item"`
	CreationDate string           `json:"creation_date"`
	Volume       int              `json:"volume"`
	Carrier      *carrierResponse `json:"carrier"`
	Self         string           `json:"self"`
}

type cargoListResponse struct {
	Cargo []cargoResponse `json:"cargo"`
	Total int             `json:"total"`
	Next  string          `json:"next,omitempty"`
}

// baseURL reconstructs the externally visible scheme and host of the request,
// the root every self link is built from.
func baseURL(ctx echo.Context) string {
	return ctx.Scheme() + "://" + ctx.Request().Host
}

func vesselSelfLink(base string, id kernel.ID) string {
	return base + "/vessels/" + id.String()
}

func cargoSelfLink(base string, id kernel.ID) string {
	return base + "/cargo/" + id.String()
}

// nextPageLink appends the continuation cursor to the current list path, or
// returns an empty string on the final page.
func nextPageLink(ctx echo.Context, cursor string) string {
	if cursor == "" {
		return ""
	}
	return baseURL(ctx) + ctx.Request().URL.Path + "?cursor=" + url.QueryEscape(cursor)
}

func vesselToResponse(base string, v queries.VesselResponse) vesselResponse {
	refs := make([]cargoRefResponse, 0, len(v.CargoIDs))
	for _, cargoID := range v.CargoIDs {
		refs = append(refs, cargoRefResponse{
			ID:   cargoID.Int64(),
			Self: cargoSelfLink(base, cargoID),
		})
	}

	return vesselResponse{
		ID:     v.ID.Int64(),
		Name:   v.Name,
		Type:   v.Type,
		Length: v.Length,
		Owner:  v.Owner,
		Cargo:  refs,
		Self:   vesselSelfLink(base, v.ID),
	}
}

func cargoToResponse(base string, c queries.CargoResponse) cargoResponse {
	var carrier *carrierResponse
	if c.Carrier != nil {
		carrier = &carrierResponse{
			ID:   c.Carrier.VesselID.Int64(),
			Name: c.Carrier.VesselName,
			Self: vesselSelfLink(base, c.Carrier.VesselID),
		}
	}

	return cargoResponse{
		ID:           c.ID.Int64(),
		Item:         c.Item,
		CreationDate: c.CreationDate,
		Volume:       c.Volume,
		Carrier:      carrier,
		Self:         cargoSelfLink(base, c.ID),
	}
}

// vesselAggregateToResponse builds the write-path response body straight from
// the aggregate the command handler returns.
func vesselAggregateToResponse(base string, v *vessel.Vessel) vesselResponse {
	return vesselToResponse(base, queries.VesselResponse{
		ID:       v.ID(),
		Name:     v.Name(),
		Type:     v.VesselType(),
		Length:   v.Length(),
		Owner:    v.Owner(),
		CargoIDs: v.CargoRefs(),
	})
}

// cargoAggregateToResponse builds the write-path response body straight from
// the aggregate the command handler returns.
func cargoAggregateToResponse(base string, c *cargo.Cargo) cargoResponse {
	var carrier *queries.CarrierResponse
	if loaded := c.Carrier(); loaded != nil {
		carrier = &queries.CarrierResponse{
			VesselID:   loaded.VesselID(),
			VesselName: loaded.VesselName(),
		}
	}

	return cargoToResponse(base, queries.CargoResponse{
		ID:           c.ID(),
		Item:         c.Item(),
		CreationDate: c.CreationDate(),
		Volume:       c.Volume(),
		Carrier:      carrier,
	})
}
