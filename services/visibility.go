package services

import (
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
)

// ResolveOrderFilter computes the list-orders predicate for one caller
// inside one already-resolved restaurant. Priority ordered, first match
// wins:
//  1. staff/admin see every order in the restaurant
//  2. an authenticated email sees its own orders
//  3. a guest with a table number sees that table's orders
//  4. anyone else has no safe scope at all
func ResolveOrderFilter(id identity.Identity) (repository.OrderFilter, error) {
	if id.IsStaff() {
		return repository.OrderFilter{All: true}, nil
	}
	if id.Authenticated && id.Email != "" {
		return repository.OrderFilter{CustomerEmail: id.Email}, nil
	}
	if id.TableNumber != "" {
		return repository.OrderFilter{TableNumber: id.TableNumber}, nil
	}
	return repository.OrderFilter{}, ErrForbidden
}

// ResolveMyOrdersFilter scopes the "my orders" view. It never widens to
// the whole restaurant, not even for staff: staff browsing their own
// order history get exactly that.
func ResolveMyOrdersFilter(id identity.Identity) (repository.OrderFilter, error) {
	if id.Authenticated {
		if id.UserID != 0 {
			return repository.OrderFilter{CustomerID: id.UserID}, nil
		}
		if id.Email != "" {
			return repository.OrderFilter{CustomerEmail: id.Email}, nil
		}
	}
	if id.TableNumber != "" {
		return repository.OrderFilter{TableNumber: id.TableNumber}, nil
	}
	return repository.OrderFilter{}, ErrUnauthenticated
}
