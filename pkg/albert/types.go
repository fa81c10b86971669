package albert

import (
	"encoding/json"
	"time"
)

// Status represents the lifecycle status of an Albert entity.
type Status string

// Entity statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// OrderBy represents the sort direction accepted by list endpoints.
type OrderBy string

// Sort directions.
const (
	OrderDescending OrderBy = "desc"
	OrderAscending  OrderBy = "asc"
)

// AuditFields records who touched an entity and when. The API returns these
// under the "Created" and "Updated" envelope keys.
type AuditFields struct {
	By     string     `json:"by,omitempty"     yaml:"by,omitempty"`
	ByName string     `json:"byName,omitempty" yaml:"byName,omitempty"`
	At     *time.Time `json:"at,omitempty"     yaml:"at,omitempty"`
}

// EntityLink is the minimal {id, name} reference form used when one resource
// embeds another without inlining the full object.
type EntityLink struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Linkable is implemented by resources that can serialize as an EntityLink.
type Linkable interface {
	ToEntityLink() EntityLink
}

// Page is the raw list-response envelope shared by all Albert list and search
// endpoints. Items are left undecoded so each collection can apply its own
// deserialization (which may involve further API calls).
type Page struct {
	Items   []json.RawMessage `json:"Items"`
	LastKey string            `json:"lastKey,omitempty"`
	Offset  json.Number       `json:"offset,omitempty"`
}
