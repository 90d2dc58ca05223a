// internal/types/types.go
package types

// EntityID identifies an entity in the ECS roster. Zero is never issued.
type EntityID uint64
