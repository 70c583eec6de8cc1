package cmd

import (
	"log/slog"
	"os"

	harborhttp "harbor/internal/adapters/in/http"
	"harbor/internal/adapters/out/docstore/cargorepo"
	"harbor/internal/adapters/out/docstore/postgres"
	"harbor/internal/adapters/out/docstore/vesselrepo"
	"harbor/internal/core/application/usecases/commands"
	"harbor/internal/core/application/usecases/queries"
	"harbor/internal/core/domain/services"
	"harbor/internal/core/ports"
	"harbor/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	vessels     ports.VesselRepository
	cargo       ports.CargoRepository
	coordinator *services.RelationshipCoordinator
	logger      *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store, err := postgres.NewGormDocumentStore(gormDB)
	if err != nil {
		return CompositionRoot{}, err
	}

	vessels, err := vesselrepo.NewRepository(store)
	if err != nil {
		return CompositionRoot{}, err
	}

	cargoRepo, err := cargorepo.NewRepository(store)
	if err != nil {
		return CompositionRoot{}, err
	}

	coordinator, err := services.NewRelationshipCoordinator(vessels, cargoRepo, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		vessels:     vessels,
		cargo:       cargoRepo,
		coordinator: coordinator,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateVesselCommandHandler() commands.CreateVesselCommandHandler {
	return commands.NewCreateVesselCommandHandler(c.vessels)
}

func (c *CompositionRoot) CreateUpdateVesselCommandHandler() commands.UpdateVesselCommandHandler {
	return commands.NewUpdateVesselCommandHandler(c.vessels, c.coordinator)
}

func (c *CompositionRoot) CreateDeleteVesselCommandHandler() commands.DeleteVesselCommandHandler {
	return commands.NewDeleteVesselCommandHandler(c.vessels, c.coordinator)
}

func (c *CompositionRoot) CreateCreateCargoCommandHandler() commands.CreateCargoCommandHandler {
	return commands.NewCreateCargoCommandHandler(c.cargo)
}

func (c *CompositionRoot) CreateUpdateCargoCommandHandler() commands.UpdateCargoCommandHandler {
	return commands.NewUpdateCargoCommandHandler(c.cargo)
}

func (c *CompositionRoot) CreateDeleteCargoCommandHandler() commands.DeleteCargoCommandHandler {
	return commands.NewDeleteCargoCommandHandler(c.cargo, c.coordinator)
}

func (c *CompositionRoot) CreateAssignCargoCommandHandler() commands.AssignCargoCommandHandler {
	return commands.NewAssignCargoCommandHandler(c.vessels, c.cargo, c.coordinator)
}

func (c *CompositionRoot) CreateReleaseCargoCommandHandler() commands.ReleaseCargoCommandHandler {
	return commands.NewReleaseCargoCommandHandler(c.vessels, c.cargo, c.coordinator)
}

func (c *CompositionRoot) CreateReconcileRelationshipsCommandHandler() commands.ReconcileRelationshipsCommandHandler {
	return commands.NewReconcileRelationshipsCommandHandler(c.vessels, c.cargo, c.logger)
}

func (c *CompositionRoot) CreateGetVesselQueryHandler() queries.GetVesselQueryHandler {
	return queries.NewGetVesselQueryHandler(c.vessels)
}

func (c *CompositionRoot) CreateListVesselsQueryHandler() queries.ListVesselsQueryHandler {
	return queries.NewListVesselsQueryHandler(c.vessels)
}

func (c *CompositionRoot) CreateGetCargoQueryHandler() queries.GetCargoQueryHandler {
	return queries.NewGetCargoQueryHandler(c.cargo)
}

func (c *CompositionRoot) CreateListCargoQueryHandler() queries.ListCargoQueryHandler {
	return queries.NewListCargoQueryHandler(c.cargo)
}

func (c *CompositionRoot) CreateHTTPServer() *harborhttp.Server {
	return harborhttp.NewServer(
		c.CreateCreateVesselCommandHandler(),
		c.CreateUpdateVesselCommandHandler(),
		c.CreateDeleteVesselCommandHandler(),
		c.CreateCreateCargoCommandHandler(),
		c.CreateUpdateCargoCommandHandler(),
		c.CreateDeleteCargoCommandHandler(),
		c.CreateAssignCargoCommandHandler(),
		c.CreateReleaseCargoCommandHandler(),
		c.CreateGetVesselQueryHandler(),
		c.CreateListVesselsQueryHandler(),
		c.CreateGetCargoQueryHandler(),
		c.CreateListCargoQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(reconciliationSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileRelationshipsCommandHandler(),
		reconciliationSchedule,
		c.logger,
	)
}
