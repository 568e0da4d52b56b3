// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity represents the authenticated Clerk user behind a request.
// Handlers read it without depending on how the token was verified.
type Identity interface {
	// ClerkID returns the Clerk user ID (the token subject).
	ClerkID() string
	// SessionID returns the Clerk session ID, if present.
	SessionID() string
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

type identity struct {
	clerkID   string
	sessionID string
}

func (i *identity) ClerkID() string       { return i.clerkID }
func (i *identity) SessionID() string     { return i.sessionID }
func (i *identity) IsAuthenticated() bool { return i.clerkID != "" }

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	clerkID := c.GetString(ContextClerkIDKey)
	if clerkID == "" {
		return &identity{}
	}
	return &identity{
		clerkID:   clerkID,
		sessionID: c.GetString(ContextSessionIDKey),
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
