package globe

// Entity is one labeled participant supplied by the host
type Entity struct {
	ID          string
	DisplayName string
	GroupLabel  string
}

// SpherePoint is an entity's sphere-local position at the base radius
// Entity is a back-reference for labeling, the distribution owns the storage
type SpherePoint struct {
	BaseX, BaseY, BaseZ float64
	Entity              *Entity
}
