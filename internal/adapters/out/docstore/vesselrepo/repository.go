package vesselrepo

import (
	"context"

	"harbor/internal/adapters/out/docstore"
	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// Repository implements VesselRepository over a document store.
type Repository struct {
	store ports.DocumentStore
}

// NewRepository creates a new vessel repository.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &Repository{store: store}, nil
}

// Add saves a new vessel document and assigns the store-generated id to the
// aggregate.
func (r *Repository) Add(ctx context.Context, aggregate *vessel.Vessel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	data, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	id, err := r.store.Save(ctx, ports.KindVessel, data)
	if err != nil {
		return err
	}

	assigned, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	return aggregate.AssignID(assigned)
}

// Update replaces the stored document of an existing vessel.
func (r *Repository) Update(ctx context.Context, aggregate *vessel.Vessel) error {
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

	return r.store.Update(ctx, ports.KindVessel, aggregate.ID().Int64(), data)
}

// Delete removes a vessel document.
func (r *Repository) Delete(ctx context.Context, vesselID kernel.ID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, ports.KindVessel, vesselID.Int64())
}

// Get loads a vessel by id.
func (r *Repository) Get(ctx context.Context, vesselID kernel.ID) (*vessel.Vessel, error) {
	if err := vesselID.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, ports.KindVessel, vesselID.Int64())
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errs.NewObjectNotFoundError("vesselId", vesselID.String())
	}

	return toDomain(*doc)
}

// GetByOwner returns one page of the owner's vessels plus the owner's total
// vessel count.
func (r *Repository) GetByOwner(ctx context.Context, owner string, page ports.PageRequest) (ports.VesselPage, error) {
	if owner == "" {
		return ports.VesselPage{}, errs.NewValueIsRequiredError("owner")
	}

	filter := &ports.Filter{Attribute: "owner", Value: owner}
	result, err := r.store.Query(ctx, ports.KindVessel, filter, docstore.PageSize, page.Cursor)
	if err != nil {
		return ports.VesselPage{}, err
	}

	total, err := r.store.Count(ctx, ports.KindVessel, filter)
	if err != nil {
		return ports.VesselPage{}, err
	}

	vessels := make([]*vessel.Vessel, 0, len(result.Documents))
	for _, doc := range result.Documents {
		v, docErr := toDomain(doc)
		if docErr != nil {
			return ports.VesselPage{}, docErr
		}
		vessels = append(vessels, v)
	}

	return ports.VesselPage{
		Vessels: vessels,
		PageInfo: ports.PageInfo{
			Total:      total,
			HasMore:    result.HasMore,
			NextCursor: result.NextCursor,
		},
	}, nil
}

// GetAll returns one page of all vessels plus the total vessel count.
func (r *Repository) GetAll(ctx context.Context, page ports.PageRequest) (ports.VesselPage, error) {
	result, err := r.store.Query(ctx, ports.KindVessel, nil, docstore.PageSize, page.Cursor)
	if err != nil {
		return ports.VesselPage{}, err
	}

	total, err := r.store.Count(ctx, ports.KindVessel, nil)
	if err != nil {
		return ports.VesselPage{}, err
	}

	vessels := make([]*vessel.Vessel, 0, len(result.Documents))
	for _, doc := range result.Documents {
		v, docErr := toDomain(doc)
		if docErr != nil {
			return ports.VesselPage{}, docErr
		}
		vessels = append(vessels, v)
	}

	return ports.VesselPage{
		Vessels: vessels,
		PageInfo: ports.PageInfo{
			Total:      total,
			HasMore:    result.HasMore,
			NextCursor: result.NextCursor,
		},
	}, nil
}

// IsDuplicateName reports whether any vessel already uses the given name.
// The scan asks for a single matching document; it does not guard against a
// concurrent create of the same name.
func (r *Repository) IsDuplicateName(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, errs.NewValueIsRequiredError("name")
	}

	filter := &ports.Filter{Attribute: "name", Value: name}
	result, err := r.store.Query(ctx, ports.KindVessel, filter, 1, "")
	if err != nil {
		return false, err
	}
	return len(result.Documents) > 0, nil
}
