package albert

// SecurityClass controls the visibility of an entity on the platform.
type SecurityClass string

// Security classes.
const (
	SecurityShared       SecurityClass = "shared"
	SecurityRestricted   SecurityClass = "restricted"
	SecurityConfidential SecurityClass = "confidential"
	SecurityPrivate      SecurityClass = "private"
	SecurityPublic       SecurityClass = "public"
)

// Tag is a free-form label attachable to inventory items, projects, and
// tasks. The wire uses "name" for the tag text and "albertId" for the id.
type Tag struct {
	Name    string       `json:"name"               yaml:"name"`
	ID      string       `json:"albertId,omitempty" yaml:"albertId,omitempty"`
	Status  Status       `json:"status,omitempty"   yaml:"status,omitempty"`
	Created *AuditFields `json:"Created,omitempty"  yaml:"Created,omitempty"`
	Updated *AuditFields `json:"Updated,omitempty"  yaml:"Updated,omitempty"`
}

// ToEntityLink implements Linkable.
func (t Tag) ToEntityLink() EntityLink {
	return EntityLink{ID: t.ID, Name: t.Name}
}

// Company represents a manufacturer or vendor.
type Company struct {
	Name     string       `json:"name"               yaml:"name"`
	ID       string       `json:"albertId,omitempty" yaml:"albertId,omitempty"`
	Distance float64      `json:"distance,omitempty" yaml:"distance,omitempty"`
	Status   Status       `json:"status,omitempty"   yaml:"status,omitempty"`
	Created  *AuditFields `json:"Created,omitempty"  yaml:"Created,omitempty"`
	Updated  *AuditFields `json:"Updated,omitempty"  yaml:"Updated,omitempty"`
}

// ToEntityLink implements Linkable.
func (c Company) ToEntityLink() EntityLink {
	return EntityLink{ID: c.ID, Name: c.Name}
}

// CasCategory classifies the provenance of a CAS record.
type CasCategory string

// CAS categories.
const (
	CasCategoryUser        CasCategory = "User"
	CasCategoryVerisk      CasCategory = "Verisk"
	CasCategoryTSCAPublic  CasCategory = "TSCA - Public"
	CasCategoryTSCAPrivate CasCategory = "TSCA - Private"
	CasCategoryNotTSCA     CasCategory = "not TSCA"
	CasCategoryExternal    CasCategory = "CAS linked to External Database"
	CasCategoryUnknown     CasCategory = "Unknown (Trade Secret)"
)

// Hazard is a GHS hazard entry attached to a CAS record.
type Hazard struct {
	SubCategory string `json:"subCategory,omitempty" yaml:"subCategory,omitempty"`
	HCode       string `json:"hCode,omitempty"       yaml:"hCode,omitempty"`
	Category    string `json:"category,omitempty"    yaml:"category,omitempty"`
	Class       string `json:"class,omitempty"       yaml:"class,omitempty"`
	HCodeText   string `json:"hCodeText,omitempty"   yaml:"hCodeText,omitempty"`
}

// Cas represents a CAS registry entry.
type Cas struct {
	Number             string      `json:"number"                       yaml:"number"`
	Name               string      `json:"name,omitempty"               yaml:"name,omitempty"`
	Description        string      `json:"description,omitempty"        yaml:"description,omitempty"`
	Notes              string      `json:"notes,omitempty"              yaml:"notes,omitempty"`
	Category           CasCategory `json:"category,omitempty"           yaml:"category,omitempty"`
	Smiles             string      `json:"casSmiles,omitempty"          yaml:"casSmiles,omitempty"`
	InchiKey           string      `json:"inchiKey,omitempty"           yaml:"inchiKey,omitempty"`
	IUPACName          string      `json:"iUpacName,omitempty"          yaml:"iUpacName,omitempty"`
	ID                 string      `json:"albertId,omitempty"           yaml:"albertId,omitempty"`
	Hazards            []Hazard    `json:"hazards,omitempty"            yaml:"hazards,omitempty"`
	WGK                string      `json:"wgk,omitempty"                yaml:"wgk,omitempty"`
	ECNumber           string      `json:"ecListNo,omitempty"           yaml:"ecListNo,omitempty"`
	Type               string      `json:"type,omitempty"               yaml:"type,omitempty"`
	ClassificationType string      `json:"classificationType,omitempty" yaml:"classificationType,omitempty"`
	Order              string      `json:"order,omitempty"              yaml:"order,omitempty"`
	Status             Status      `json:"status,omitempty"             yaml:"status,omitempty"`
}

// ToEntityLink implements Linkable.
func (c Cas) ToEntityLink() EntityLink {
	return EntityLink{ID: c.ID, Name: c.Number}
}

// CasAmount binds a CAS id to the min/max fraction it occupies in an
// inventory item's composition.
type CasAmount struct {
	ID  string   `json:"id"            yaml:"id"`
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// ToRangedValue converts the amount to its diffable form.
func (a CasAmount) ToRangedValue() RangedValue {
	return RangedValue{ID: a.ID, Min: a.Min, Max: a.Max}
}

// ProjectCategory classifies a project.
type ProjectCategory string

// Project categories.
const (
	ProjectDevelopment ProjectCategory = "Development"
	ProjectResearch    ProjectCategory = "Research"
	ProjectProduction  ProjectCategory = "Production"
)

// Project represents a project entity.
type Project struct {
	Name          string          `json:"name"                yaml:"name"`
	Description   string          `json:"description"         yaml:"description"`
	Category      ProjectCategory `json:"category"            yaml:"category"`
	SecurityClass SecurityClass   `json:"class,omitempty"     yaml:"class,omitempty"`
	Tags          []Tag           `json:"tags,omitempty"      yaml:"tags,omitempty"`
	ID            string          `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	Company       *Company        `json:"company,omitempty"   yaml:"company,omitempty"`
	Status        Status          `json:"status,omitempty"    yaml:"status,omitempty"`
	Created       *AuditFields    `json:"Created,omitempty"   yaml:"Created,omitempty"`
	Updated       *AuditFields    `json:"Updated,omitempty"   yaml:"Updated,omitempty"`
}

// InventoryCategory classifies an inventory item.
type InventoryCategory string

// Inventory categories.
const (
	InventoryRawMaterials InventoryCategory = "RawMaterials"
	InventoryConsumables  InventoryCategory = "Consumables"
	InventoryEquipment    InventoryCategory = "Equipment"
	InventoryFormulas     InventoryCategory = "Formulas"
)

// InventoryUnitCategory is the measurement dimension an item is tracked in.
type InventoryUnitCategory string

// Inventory unit categories.
const (
	UnitCategoryMass     InventoryUnitCategory = "mass"
	UnitCategoryVolume   InventoryUnitCategory = "volume"
	UnitCategoryLength   InventoryUnitCategory = "length"
	UnitCategoryPressure InventoryUnitCategory = "pressure"
	UnitCategoryUnits    InventoryUnitCategory = "units"
)

// InventoryItem represents a raw material, consumable, or piece of equipment.
// Company serializes as an entity link inside the item envelope; Cas carries
// the per-CAS composition ranges.
type InventoryItem struct {
	ID            string                `json:"albertId,omitempty"     yaml:"albertId,omitempty"`
	Name          string                `json:"name,omitempty"         yaml:"name,omitempty"`
	Description   string                `json:"description,omitempty"  yaml:"description,omitempty"`
	Category      InventoryCategory     `json:"category"               yaml:"category"`
	UnitCategory  InventoryUnitCategory `json:"unitCategory,omitempty" yaml:"unitCategory,omitempty"`
	SecurityClass SecurityClass         `json:"class,omitempty"        yaml:"class,omitempty"`
	Company       *Company              `json:"Company,omitempty"      yaml:"Company,omitempty"`
	Alias         string                `json:"alias,omitempty"        yaml:"alias,omitempty"`
	Cas           []CasAmount           `json:"Cas,omitempty"          yaml:"Cas,omitempty"`
	Tags          []Tag                 `json:"tags,omitempty"         yaml:"tags,omitempty"`
	Status        Status                `json:"status,omitempty"       yaml:"status,omitempty"`
	Created       *AuditFields          `json:"Created,omitempty"      yaml:"Created,omitempty"`
	Updated       *AuditFields          `json:"Updated,omitempty"      yaml:"Updated,omitempty"`
}

// TaskCategory classifies a task.
type TaskCategory string

// Task categories.
const (
	TaskProperty    TaskCategory = "Property"
	TaskBatch       TaskCategory = "Batch"
	TaskGeneral     TaskCategory = "General"
	TaskBatchWithQC TaskCategory = "BatchWithQC"
)

// TaskPriority is the scheduling priority of a task.
type TaskPriority string

// Task priorities.
const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// TaskInventory names the inventory (and optionally lot and batch size) a
// task operates on.
type TaskInventory struct {
	InventoryID string   `json:"id"                  yaml:"id"`
	LotID       string   `json:"lotId,omitempty"     yaml:"lotId,omitempty"`
	BatchSize   *float64 `json:"batchSize,omitempty" yaml:"batchSize,omitempty"`
}

// Task represents a unit of lab work tied to a project.
type Task struct {
	ID            string          `json:"albertId,omitempty"   yaml:"albertId,omitempty"`
	Name          string          `json:"name"                 yaml:"name"`
	Category      TaskCategory    `json:"category"             yaml:"category"`
	ParentID      string          `json:"parentId,omitempty"   yaml:"parentId,omitempty"`
	Priority      TaskPriority    `json:"priority,omitempty"   yaml:"priority,omitempty"`
	SecurityClass SecurityClass   `json:"class,omitempty"      yaml:"class,omitempty"`
	Notes         string          `json:"notes,omitempty"      yaml:"notes,omitempty"`
	StartDate     string          `json:"startDate,omitempty"  yaml:"startDate,omitempty"`
	DueDate       string          `json:"dueDate,omitempty"    yaml:"dueDate,omitempty"`
	Project       *EntityLink     `json:"Project,omitempty"    yaml:"Project,omitempty"`
	AssignedTo    *EntityLink     `json:"assignedTo,omitempty" yaml:"assignedTo,omitempty"`
	Location      *EntityLink     `json:"Location,omitempty"   yaml:"Location,omitempty"`
	Inventories   []TaskInventory `json:"Inventories,omitempty" yaml:"Inventories,omitempty"`
	Tags          []Tag           `json:"tags,omitempty"       yaml:"tags,omitempty"`
	Status        Status          `json:"status,omitempty"     yaml:"status,omitempty"`
	Created       *AuditFields    `json:"Created,omitempty"    yaml:"Created,omitempty"`
	Updated       *AuditFields    `json:"Updated,omitempty"    yaml:"Updated,omitempty"`
}

// Location represents a physical site.
type Location struct {
	Name      string       `json:"name"                yaml:"name"`
	ID        string       `json:"albertId,omitempty"  yaml:"albertId,omitempty"`
	Latitude  *float64     `json:"latitude,omitempty"  yaml:"latitude,omitempty"`
	Longitude *float64     `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Address   string       `json:"address,omitempty"   yaml:"address,omitempty"`
	Country   string       `json:"country,omitempty"   yaml:"country,omitempty"`
	Status    Status       `json:"status,omitempty"    yaml:"status,omitempty"`
	Created   *AuditFields `json:"Created,omitempty"   yaml:"Created,omitempty"`
	Updated   *AuditFields `json:"Updated,omitempty"   yaml:"Updated,omitempty"`
}

// ToEntityLink implements Linkable.
func (l Location) ToEntityLink() EntityLink {
	return EntityLink{ID: l.ID, Name: l.Name}
}

// Unit represents a measurement unit.
type Unit struct {
	ID       string `json:"albertId,omitempty" yaml:"albertId,omitempty"`
	Name     string `json:"name"               yaml:"name"`
	Symbol   string `json:"symbol,omitempty"   yaml:"symbol,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Verified bool   `json:"verified,omitempty" yaml:"verified,omitempty"`
	Status   Status `json:"status,omitempty"   yaml:"status,omitempty"`
}

// User represents a platform user.
type User struct {
	ID       string `json:"albertId,omitempty" yaml:"albertId,omitempty"`
	Name     string `json:"name"               yaml:"name"`
	Email    string `json:"email,omitempty"    yaml:"email,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Status   Status `json:"status,omitempty"   yaml:"status,omitempty"`
}

// TagIDs projects a tag list onto the id set used by the patch engine.
func TagIDs(tags []Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}

	return ids
}

// CasRanges projects a CAS amount list onto the ranged-value set used by the
// patch engine.
func CasRanges(amounts []CasAmount) []RangedValue {
	values := make([]RangedValue, 0, len(amounts))
	for _, amount := range amounts {
		values = append(values, amount.ToRangedValue())
	}

	return values
}

// CompanyLink converts an optional company to its reference form for the
// patch engine.
func CompanyLink(company *Company) *EntityLink {
	if company == nil {
		return nil
	}

	link := company.ToEntityLink()

	return &link
}
