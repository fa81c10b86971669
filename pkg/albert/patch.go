package albert

// PatchOperation is the kind of change carried by one patch instruction.
type PatchOperation string

// Patch operations.
const (
	PatchAdd    PatchOperation = "add"
	PatchUpdate PatchOperation = "update"
	PatchDelete PatchOperation = "delete"
)

// PatchDatum is a single change instruction inside a PATCH payload. An "add"
// never carries OldValue and a "delete" never carries NewValue; EntityID keys
// instructions against one member of a linked-entity set. Min and Max are the
// sub-attribute extras used by CAS amount instructions.
type PatchDatum struct {
	Operation PatchOperation `json:"operation"          yaml:"operation"`
	Attribute string         `json:"attribute"          yaml:"attribute"`
	NewValue  any            `json:"newValue,omitempty" yaml:"newValue,omitempty"`
	OldValue  any            `json:"oldValue,omitempty" yaml:"oldValue,omitempty"`
	EntityID  string         `json:"entityId,omitempty" yaml:"entityId,omitempty"`
	Min       *float64       `json:"min,omitempty"      yaml:"min,omitempty"`
	Max       *float64       `json:"max,omitempty"      yaml:"max,omitempty"`
}

// PatchPayload is the request body for PATCH endpoints.
type PatchPayload struct {
	Data []PatchDatum `json:"data" yaml:"data"`
}

// Empty reports whether the payload carries no instructions.
func (p *PatchPayload) Empty() bool {
	return len(p.Data) == 0
}

// Value converts a scalar into its diffable form: the zero value maps to nil,
// meaning "unset". Optional scalar fields on resource models use their zero
// value as absence, matching the wire format's omitted keys.
func Value[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}

	return v
}

// RangedValue is the diffable form of a value-object set member carrying
// independent min/max sub-attributes (e.g. a CAS amount).
type RangedValue struct {
	ID  string
	Min *float64
	Max *float64
}

// PatchBuilder accumulates patch instructions for one resource. Fields are
// appended in call order, so a fixed per-resource allowlist order yields a
// deterministic payload.
type PatchBuilder struct {
	data []PatchDatum
}

// NewPatchBuilder creates an empty PatchBuilder.
func NewPatchBuilder() *PatchBuilder {
	return &PatchBuilder{}
}

// Scalar diffs a plain attribute. A nil old with a non-nil new emits an add;
// differing non-nil values emit an update; a non-nil old with a nil new emits
// nothing, since the instruction format cannot express unsetting a scalar.
func (b *PatchBuilder) Scalar(attribute string, oldValue, newValue any) *PatchBuilder {
	switch {
	case oldValue == nil && newValue != nil:
		b.data = append(b.data, PatchDatum{
			Operation: PatchAdd,
			Attribute: attribute,
			NewValue:  newValue,
		})
	case oldValue != nil && newValue != nil && oldValue != newValue:
		b.data = append(b.data, PatchDatum{
			Operation: PatchUpdate,
			Attribute: attribute,
			OldValue:  oldValue,
			NewValue:  newValue,
		})
	}

	return b
}

// Reference diffs a singular linked-entity attribute by identity. Values on
// the wire are the referenced ids, never the full nested object.
func (b *PatchBuilder) Reference(attribute string, oldRef, newRef *EntityLink) *PatchBuilder {
	switch {
	case oldRef == nil && newRef != nil:
		b.data = append(b.data, PatchDatum{
			Operation: PatchAdd,
			Attribute: attribute,
			NewValue:  newRef.ID,
		})
	case oldRef != nil && newRef == nil:
		b.data = append(b.data, PatchDatum{
			Operation: PatchDelete,
			Attribute: attribute,
			OldValue:  oldRef.ID,
		})
	case oldRef != nil && newRef != nil && oldRef.ID != newRef.ID:
		b.data = append(b.data, PatchDatum{
			Operation: PatchUpdate,
			Attribute: attribute,
			OldValue:  oldRef.ID,
			NewValue:  newRef.ID,
		})
	}

	return b
}

// ReferenceSet diffs a set of linked entities by id: one add per id present
// only in new, one delete per id present only in old. Ids present in both are
// left untouched even if other attributes of the referenced object differ.
func (b *PatchBuilder) ReferenceSet(attribute string, oldIDs, newIDs []string) *PatchBuilder {
	oldSet := make(map[string]struct{}, len(oldIDs))
	for _, id := range oldIDs {
		oldSet[id] = struct{}{}
	}

	newSet := make(map[string]struct{}, len(newIDs))
	for _, id := range newIDs {
		newSet[id] = struct{}{}
	}

	for _, id := range newIDs {
		if _, ok := oldSet[id]; !ok {
			b.data = append(b.data, PatchDatum{
				Operation: PatchAdd,
				Attribute: attribute,
				NewValue:  id,
				EntityID:  id,
			})
		}
	}

	for _, id := range oldIDs {
		if _, ok := newSet[id]; !ok {
			b.data = append(b.data, PatchDatum{
				Operation: PatchDelete,
				Attribute: attribute,
				OldValue:  id,
				EntityID:  id,
			})
		}
	}

	return b
}

// RangeSet diffs a set of value objects carrying min/max sub-attributes,
// keyed by id. Ids present in both sets get per-sub-attribute updates keyed
// by EntityID; ids only in new emit an add carrying min/max; ids only in old
// emit a delete keyed by the removed entity's id.
func (b *PatchBuilder) RangeSet(attribute string, oldValues, newValues []RangedValue) *PatchBuilder {
	oldByID := make(map[string]RangedValue, len(oldValues))
	for _, val := range oldValues {
		oldByID[val.ID] = val
	}

	newByID := make(map[string]RangedValue, len(newValues))
	for _, val := range newValues {
		newByID[val.ID] = val
	}

	for _, newVal := range newValues {
		oldVal, ok := oldByID[newVal.ID]
		if !ok {
			b.data = append(b.data, PatchDatum{
				Operation: PatchAdd,
				Attribute: attribute,
				NewValue:  newVal.ID,
				EntityID:  newVal.ID,
				Min:       newVal.Min,
				Max:       newVal.Max,
			})

			continue
		}

		if !floatEqual(oldVal.Min, newVal.Min) {
			b.data = append(b.data, PatchDatum{
				Operation: PatchUpdate,
				Attribute: "min",
				EntityID:  newVal.ID,
				OldValue:  floatValue(oldVal.Min),
				NewValue:  floatValue(newVal.Min),
			})
		}

		if !floatEqual(oldVal.Max, newVal.Max) {
			b.data = append(b.data, PatchDatum{
				Operation: PatchUpdate,
				Attribute: "max",
				EntityID:  newVal.ID,
				OldValue:  floatValue(oldVal.Max),
				NewValue:  floatValue(newVal.Max),
			})
		}
	}

	for _, oldVal := range oldValues {
		if _, ok := newByID[oldVal.ID]; !ok {
			b.data = append(b.data, PatchDatum{
				Operation: PatchDelete,
				Attribute: attribute,
				EntityID:  oldVal.ID,
			})
		}
	}

	return b
}

// Payload returns the accumulated instructions. A no-op diff yields a payload
// with an empty (non-nil) data list.
func (b *PatchBuilder) Payload() *PatchPayload {
	if b.data == nil {
		return &PatchPayload{Data: []PatchDatum{}}
	}

	return &PatchPayload{Data: b.data}
}

func floatEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func floatValue(f *float64) any {
	if f == nil {
		return nil
	}

	return *f
}
