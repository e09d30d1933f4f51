package services

import (
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
)

// ResolveTenant picks the one restaurant id every data operation must be
// confined to. An authenticated account's own restaurant always beats an
// explicit parameter, so a staff token can never be pointed at another
// restaurant by guessing an id.
func ResolveTenant(id identity.Identity, explicit uint) (uint, error) {
	if id.Authenticated && id.RestaurantID != 0 {
		return id.RestaurantID, nil
	}
	if explicit != 0 {
		return explicit, nil
	}
	return 0, ErrMissingTenant
}
