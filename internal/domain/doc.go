// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/epic,
// domain/event). This root package holds the sentinel error taxonomy and the
// field-level validation error type shared across all entities.
package domain
