package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
)

const identityKey = "identity"

func SetIdentity(c *gin.Context, id identity.Identity) {
	c.Set(identityKey, id)
}

// CurrentIdentity returns the identity stored by the auth middleware. For
// requests that went through OptionalAuth without a valid token it falls
// back to a guest identity built from the tableNumber query parameter.
func CurrentIdentity(c *gin.Context) identity.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(identity.Identity); ok {
			return id
		}
	}
	return identity.Guest(c.Query("tableNumber"))
}
