package cargorepo

import (
	"context"

	"harbor/internal/adapters/out/docstore"
	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// Repository implements CargoRepository over a document store.
type Repository struct {
	store ports.DocumentStore
}

// NewRepository creates a new cargo repository.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &Repository{store: store}, nil
}

// Add saves a new cargo document and assigns the store-generated id to the
// aggregate.
func (r *Repository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	data, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	id, err := r.store.Save(ctx, ports.KindCargo, data)
	if err != nil {
		return err
	}

	assigned, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	return aggregate.AssignID(assigned)
}

// Update replaces the stored document of an existing cargo record.
func (r *Repository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	data, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.store.Update(ctx, ports.KindCargo, aggregate.ID().Int64(), data)
}

// Delete removes a cargo document.
func (r *Repository) Delete(ctx context.Context, cargoID kernel.ID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, ports.KindCargo, cargoID.Int64())
}

// Get loads a cargo record by id.
func (r *Repository) Get(ctx context.Context, cargoID kernel.ID) (*cargo.Cargo, error) {
	if err := cargoID.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, ports.KindCargo, cargoID.Int64())
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errs.NewObjectNotFoundError("cargoId", cargoID.String())
	}

	return toDomain(*doc)
}

// GetAll returns one page of all cargo records plus the total count.
func (r *Repository) GetAll(ctx context.Context, page ports.PageRequest) (ports.CargoPage, error) {
	result, err := r.store.Query(ctx, ports.KindCargo, nil, docstore.PageSize, page.Cursor)
	if err != nil {
		return ports.CargoPage{}, err
	}

	total, err := r.store.Count(ctx, ports.KindCargo, nil)
	if err != nil {
		return ports.CargoPage{}, err
	}

	records := make([]*cargo.Cargo, 0, len(result.Documents))
	for _, doc := range result.Documents {
		c, docErr := toDomain(doc)
		if docErr != nil {
			return ports.CargoPage{}, docErr
		}
		records = append(records, c)
	}

	return ports.CargoPage{
		Cargo: records,
		PageInfo: ports.PageInfo{
			Total:      total,
			HasMore:    result.HasMore,
			NextCursor: result.NextCursor,
		},
	}, nil
}
