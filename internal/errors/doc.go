// Package errors provides structured error handling for the loadout API.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the API layer
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("loadout not found")
//	err := errors.InvalidArgumentf("invalid slot level: %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("loadout not found").
//	    WithMeta("loadout_id", loadoutID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get loadout")
//	}
//
// Wrap preserves the code of an existing *Error; plain errors become
// Internal.
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // handle missing record
//	}
//
//	code := errors.GetCode(err)
//	status := code.HTTPStatus()
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("ownerID", input.OwnerID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Map codes to HTTP statuses via Code.HTTPStatus
//   - Extract user-facing messages with GetMessage
package errors
