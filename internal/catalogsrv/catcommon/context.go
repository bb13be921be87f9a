// Package catcommon provides context management utilities for the catalog
// service. It carries the authenticated actor through request handling so
// the generation engine can stamp createdBy/updatedBy.
package catcommon

import (
	"context"
)

// ctxKeyType represents the type for all context keys
type ctxKeyType string

const (
	ctxUserContextKey ctxKeyType = "CatalogUserContext"
	ctxTestContextKey ctxKeyType = "CatalogTestContext"
)

// Role is the coarse authorization level carried by a token.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// CanWrite reports whether the role may mutate catalog state.
func (r Role) CanWrite() bool {
	return r == RoleEditor || r == RoleAdmin
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// UserContext represents the context of an authenticated user in the system.
type UserContext struct {
	// Subject is the actor identity, typically an email. It is used
	// verbatim as createdBy/updatedBy on generated entries.
	Subject string
	// Role is the authorization level of the actor.
	Role Role
}

// SetUserContext sets the user context in the provided context.
func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, ctxUserContextKey, user)
}

// GetUserContext retrieves the user context from the provided context.
// Returns nil if no user context is set.
func GetUserContext(ctx context.Context) *UserContext {
	if user, ok := ctx.Value(ctxUserContextKey).(*UserContext); ok {
		return user
	}
	return nil
}

// GetActorIdentity returns the subject of the current user context, or "".
func GetActorIdentity(ctx context.Context) string {
	if user := GetUserContext(ctx); user != nil {
		return user.Subject
	}
	return ""
}

// SetTestContext marks the context as belonging to a test run.
func SetTestContext(ctx context.Context, b bool) context.Context {
	return context.WithValue(ctx, ctxTestContextKey, b)
}

// IsTestContext reports whether the context belongs to a test run.
func IsTestContext(ctx context.Context) bool {
	if b, ok := ctx.Value(ctxTestContextKey).(bool); ok {
		return b
	}
	return false
}
