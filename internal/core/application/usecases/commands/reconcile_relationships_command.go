package commands

import (
	"errors"

	"harbor/internal/pkg/guard"
)

var ErrReconcileRelationshipsCommandIsNotConstructed = errors.New(
	"ReconcileRelationshipsCommand must be created via NewReconcileRelationshipsCommand constructor",
)

// ReconcileRelationshipsCommand triggers one sweep over all vessel and cargo
// records to repair disagreements between the two sides of the association.
// Disagreements appear when the second write of an assign or release fails;
// the sweep settles every such pair back to the unloaded state and refreshes
// stale carrier names.
type ReconcileRelationshipsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRelationshipsCommand creates a reconciliation sweep command.
func NewReconcileRelationshipsCommand() ReconcileRelationshipsCommand {
	return ReconcileRelationshipsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileRelationshipsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRelationshipsCommandIsNotConstructed)
}
