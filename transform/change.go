package transform

// ChangeType identifies the type of rewrite applied
type ChangeType string

const (
	// ChangeTypeEnumPromoted indicates a string enum was promoted to a oneOf
	// of labeled constant choices
	ChangeTypeEnumPromoted ChangeType = "enum-promoted"
	// ChangeTypeUnevaluatedPropertiesRemoved indicates an unevaluatedProperties
	// keyword was deleted
	ChangeTypeUnevaluatedPropertiesRemoved ChangeType = "unevaluated-properties-removed"
	// ChangeTypeFormatRemoved indicates a non-standard format value was deleted
	ChangeTypeFormatRemoved ChangeType = "format-removed"
	// ChangeTypeChoiceBranchOpened indicates additionalProperties: false was
	// deleted from an immediate oneOf/anyOf member
	ChangeTypeChoiceBranchOpened ChangeType = "choice-branch-opened"
	// ChangeTypeSentinelBranchRemoved indicates an uninstantiable sentinel
	// branch was filtered out of a oneOf/anyOf
	ChangeTypeSentinelBranchRemoved ChangeType = "sentinel-branch-removed"
	// ChangeTypeTitleFilled indicates a missing title was synthesized
	ChangeTypeTitleFilled ChangeType = "title-filled"
	// ChangeTypeDescriptionFilled indicates a missing description was filled
	// from the well-known field table
	ChangeTypeDescriptionFilled ChangeType = "description-filled"
)

// Change represents a single rewrite applied to a schema fragment
type Change struct {
	// Type identifies the category of rewrite
	Type ChangeType
	// Path is the dotted path to the rewritten location
	// (e.g., "$.$defs.TLSConfig.properties.mode.oneOf[0]")
	Path string
	// Description is a human-readable description of the rewrite
	Description string
	// Before is the state before the rewrite (nil if adding a new value)
	Before any
	// After is the value that was set (nil if the keyword was deleted)
	After any
}

// Result contains the changes recorded by one or more transformation passes
type Result struct {
	// Changes contains all rewrites in application order
	Changes []Change
}

// HasChanges returns true if any rewrites were applied
func (r *Result) HasChanges() bool {
	return len(r.Changes) > 0
}

// Count returns the total number of rewrites applied
func (r *Result) Count() int {
	return len(r.Changes)
}

// Merge appends another result's changes, preserving order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Changes = append(r.Changes, other.Changes...)
}

// add records a single change.
func (r *Result) add(t ChangeType, path, description string, before, after any) {
	r.Changes = append(r.Changes, Change{
		Type:        t,
		Path:        path,
		Description: description,
		Before:      before,
		After:       after,
	})
}
