// internal/types/entity.go
package types

// EntityID — стабильный дескриптор сущности в хранилище.
// Ноль никогда не выдаётся и означает "нет сущности".
type EntityID uint64
