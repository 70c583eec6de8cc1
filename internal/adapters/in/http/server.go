package http

import (
	"net/http"

	"harbor/internal/core/application/usecases/commands"
	"harbor/internal/core/application/usecases/queries"
	"harbor/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server wires the REST routes to the application command and query handlers.
type Server struct {
	// Command handlers
	createVesselHandler commands.CreateVesselCommandHandler
	updateVesselHandler commands.UpdateVesselCommandHandler
	deleteVesselHandler commands.DeleteVesselCommandHandler
	createCargoHandler  commands.CreateCargoCommandHandler
	updateCargoHandler  commands.UpdateCargoCommandHandler
	deleteCargoHandler  commands.DeleteCargoCommandHandler
	assignCargoHandler  commands.AssignCargoCommandHandler
	releaseCargoHandler commands.ReleaseCargoCommandHandler

	// Query handlers
	getVesselHandler   queries.GetVesselQueryHandler
	listVesselsHandler queries.ListVesselsQueryHandler
	getCargoHandler    queries.GetCargoQueryHandler
	listCargoHandler   queries.ListCargoQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createVesselHandler commands.CreateVesselCommandHandler,
	updateVesselHandler commands.UpdateVesselCommandHandler,
	deleteVesselHandler commands.DeleteVesselCommandHandler,
	createCargoHandler commands.CreateCargoCommandHandler,
	updateCargoHandler commands.UpdateCargoCommandHandler,
	deleteCargoHandler commands.DeleteCargoCommandHandler,
	assignCargoHandler commands.AssignCargoCommandHandler,
	releaseCargoHandler commands.ReleaseCargoCommandHandler,
	getVesselHandler queries.GetVesselQueryHandler,
	listVesselsHandler queries.ListVesselsQueryHandler,
	getCargoHandler queries.GetCargoQueryHandler,
	listCargoHandler queries.ListCargoQueryHandler,
) *Server {
	return &Server{
		createVesselHandler: createVesselHandler,
		updateVesselHandler: updateVesselHandler,
		deleteVesselHandler: deleteVesselHandler,
		createCargoHandler:  createCargoHandler,
		updateCargoHandler:  updateCargoHandler,
		deleteCargoHandler:  deleteCargoHandler,
		assignCargoHandler:  assignCargoHandler,
		releaseCargoHandler: releaseCargoHandler,
		getVesselHandler:    getVesselHandler,
		listVesselsHandler:  listVesselsHandler,
		getCargoHandler:     getCargoHandler,
		listCargoHandler:    listCargoHandler,
	}
}

// RegisterRoutes attaches all routes to the echo instance. Vessel routes and
// the assign/release routes sit behind the auth middleware; cargo routes are
// public.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.Use(RequestID)

	vessels := e.Group("/vessels", auth.RequirePrincipal)
	vessels.POST("", s.CreateVessel)
	vessels.GET("", s.ListVessels)
	vessels.GET("/:vessel_id", s.GetVessel)
	vessels.PATCH("/:vessel_id", s.UpdateVessel)
	vessels.PUT("/:vessel_id", s.ReplaceVessel)
	vessels.DELETE("/:vessel_id", s.DeleteVessel)
	vessels.PUT("/:vessel_id/cargo/:cargo_id", s.AssignCargo)
	vessels.DELETE("/:vessel_id/cargo/:cargo_id", s.ReleaseCargo)

	cargoGroup := e.Group("/cargo")
	cargoGroup.POST("", s.CreateCargo)
	cargoGroup.GET("", s.ListCargo)
	cargoGroup.GET("/:cargo_id", s.GetCargo)
	cargoGroup.PATCH("/:cargo_id", s.UpdateCargo)
	cargoGroup.PUT("/:cargo_id", s.ReplaceCargo)
	cargoGroup.DELETE("/:cargo_id", s.DeleteCargo)
}

// CreateVessel handles POST /vessels - registers a vessel for the caller.
func (s *Server) CreateVessel(ctx echo.Context) error {
	var body createVesselRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateVesselCommand(body.Name, body.Type, body.Length, principalFrom(ctx))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	created, err := s.createVesselHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vesselAggregateToResponse(baseURL(ctx), created))
}

// ListVessels handles GET /vessels - one page of the caller's vessels.
func (s *Server) ListVessels(ctx echo.Context) error {
	query, err := queries.NewListVesselsQuery(principalFrom(ctx), ctx.QueryParam("cursor"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	page, err := s.listVesselsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	base := baseURL(ctx)
	response := vesselListResponse{
		Vessels: make([]vesselResponse, 0, len(page.Vessels)),
		Total:   page.Total,
	}
	for _, v := range page.Vessels {
		response.Vessels = append(response.Vessels, vesselToResponse(base, v))
	}
	if page.HasMore {
		response.Next = nextPageLink(ctx, page.NextCursor)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVessel handles GET /vessels/:vessel_id.
func (s *Server) GetVessel(ctx echo.Context) error {
	vesselID, err := kernel.ParseID(ctx.Param("vessel_id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetVesselQuery(vesselID, principalFrom(ctx))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	found, err := s.getVesselHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vesselToResponse(baseURL(ctx), found))
}

// UpdateVessel handles PATCH /vessels/:vessel_id - updates the provided
// fields and leaves the rest untouched.
func (s *Server) UpdateVessel(ctx echo.Context) error {
	var body updateVesselRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	return s.updateVessel(ctx, body)
}

// ReplaceVessel handles PUT /vessels/:vessel_id - a full replacement, so
// every mutable field must be present.
func (s *Server) ReplaceVessel(ctx echo.Context) error {
	var body createVesselRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	return s.updateVessel(ctx, updateVesselRequest{
		Name:   &body.Name,
		Type:   &body.Type,
		Length: &body.Length,
	})
}

func (s *Server) updateVessel(ctx echo.Context, body updateVesselRequest) error {
	vesselID, err := kernel.ParseID(ctx.Param("vessel_id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateVesselCommand(vesselID, principalFrom(ctx), body.Name, body.Type, body.Length)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	updated, err := s.updateVesselHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vesselAggregateToResponse(baseURL(ctx), updated))
}

// DeleteVessel handles DELETE /vessels/:vessel_id - unloads any cargo still
// aboard, then removes the record.
func (s *Server) DeleteVessel(ctx echo.Context) error {
	vesselID, err := kernel.ParseID(ctx.Param("vessel_id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteVesselCommand(vesselID, principalFrom(ctx))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.deleteVesselHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCargo handles PUT /vessels/:vessel_id/cargo/:cargo_id - loads the
// cargo item onto the caller's vessel.
func (s *Server) AssignCargo(ctx echo.Context) error {
	vesselID, cargoID, err := relationshipIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignCargoCommand(vesselID, cargoID, principalFrom(ctx))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.assignCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseCargo handles DELETE /vessels/:vessel_id/cargo/:cargo_id - unloads
// the cargo item from the caller's vessel.
func (s *Server) ReleaseCargo(ctx echo.Context) error {
	vesselID, cargoID, err := relationshipIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReleaseCargoCommand(vesselID, cargoID, principalFrom(ctx))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.releaseCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func relationshipIDs(ctx echo.Context) (kernel.ID, kernel.ID, error) {
	vesselID, err := kernel.ParseID(ctx.Param("vessel_id"))
	if err != nil {
		return kernel.ID{}, kernel.ID{}, err
	}

	cargoID, err := kernel.ParseID(ctx.Param("cargo_id"))
	if err != nil {
		return kernel.ID{}, kernel.ID{}, err
	}

	return vesselID, cargoID, nil
}

// CreateCargo handles POST /cargo - registers a new cargo item.
func (s *Server) CreateCargo(ctx echo.Context) error {
	var body createCargoRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCargoCommand(body.Item, body.CreationDate, body.Volume)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	created, err := s.createCargoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, cargoAggregateToResponse(baseURL(ctx), created))
}

// ListCargo handles GET /cargo - one page of all cargo items.
func (s *Server) ListCargo(ctx echo.Context) error {
	query := queries.NewListCargoQuery(ctx.QueryParam("cursor"))

	page, err := s.listCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	base := baseURL(ctx)
	response := cargoListResponse{
		Cargo: make([]cargoResponse, 0, len(page.Cargo)),
		Total: page.Total,
	}
	for _, c := range page.Cargo {
		response.Cargo = append(response.Cargo, cargoToResponse(base, c))
	}
	if page.HasMore {
		response.Next = nextPageLink(ctx, page.NextCursor)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCargo handles GET /cargo/:cargo_id.
func (s *Server) GetCargo(ctx echo.Context) error {
	cargoID, err := kernel.ParseID(ctx.Param("cargo_id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCargoQuery(cargoID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	found, err := s.getCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cargoToResponse(baseURL(ctx), found))
}

// UpdateCargo handles PATCH /cargo/:cargo_id - updates the provided fields.
// The carrier is never touched here; only assign and release move cargo.
func (s *Server) UpdateCargo(ctx echo.Context) error {
	var body updateCargoRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	return s.updateCargo(ctx, body)
}

// ReplaceCargo handles PUT /cargo/:cargo_id - a full replacement of the
// mutable fields.
func (s *Server) ReplaceCargo(ctx echo.Context) error {
	var body createCargoRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	return s.updateCargo(ctx, updateCargoRequest{
		Item:         &body.Item,
		CreationDate: &body.CreationDate,
		Volume:       &body.Volume,
	})
}

func (s *Server) updateCargo(ctx echo.Context, body updateCargoRequest) error {
	cargoID, err := kernel.ParseID(ctx.Param("cargo_id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateCargoCommand(cargoID, body.Item, body.CreationDate, body.Volume)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	updated, err := s.updateCargoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cargoAggregateToResponse(baseURL(ctx), updated))
}

// DeleteCargo handles DELETE /cargo/:cargo_id - detaches the item from its
// carrier if loaded, then removes the record.
func (s *Server) DeleteCargo(ctx echo.Context) error {
	cargoID, err := kernel.ParseID(ctx.Param("cargo_id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteCargoCommand(cargoID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.deleteCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
