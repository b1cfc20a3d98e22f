// Package serialization converts resolved builds and loadouts to their
// compact serialized forms and back.
//
// Serialized forms reference catalog entities by ID; resolved forms embed
// the catalog record. Deserialization resolves IDs against caller-supplied
// catalog snapshots and never fails on missing references: spirit and skill
// lookups degrade to a nil reference, unknown engraving shapes degrade to
// an inactive cell, and missing builds are replaced by a placeholder. Every
// silent recovery emits a warning log carrying the offending ID.
//
// All functions are pure over their inputs. Catalog maps are treated as
// read-only snapshots for the duration of a call.
package serialization

// valueOr unwraps an optional serialized scalar, substituting the slot
// default when the payload omitted it.
func valueOr(v *int32, def int32) int32 {
	if v == nil {
		return def
	}
	return *v
}

func ptr[T any](v T) *T {
	return &v
}
