// Package authz centralizes the ownership and admin checks that the
// lifecycle services share. Services load the resource, then ask Can
// with the acting identity instead of re-implementing the comparison.
package authz

import "hotelbooking/internal/domain"

type Action string

const (
	ActionBookForOther  Action = "booking:create_for_other"
	ActionModifyBooking Action = "booking:modify"
	ActionDeleteBooking Action = "booking:delete"
	ActionManageRooms   Action = "room:manage"
	ActionManageHotel   Action = "hotel:manage"
	ActionRateBooking   Action = "rating:create"
)

// Actor is the authenticated caller, resolved from the JWT claims.
type Actor struct {
	ID       int64
	Username string
	IsAdmin  bool
}

// Can reports whether the actor may perform action on resource.
// Resource may be nil for actions that are not tied to a record.
func Can(actor Actor, action Action, resource any) bool {
	switch action {
	case ActionBookForOther:
		return actor.IsAdmin

	case ActionModifyBooking, ActionRateBooking:
		b, ok := resource.(*domain.Booking)
		return ok && b.ClientID == actor.ID

	case ActionDeleteBooking:
		if actor.IsAdmin {
			return true
		}
		b, ok := resource.(*domain.Booking)
		return ok && b.ClientID == actor.ID

	case ActionManageRooms:
		// Rooms are strictly owner-managed; even admins go through the owner.
		h, ok := resource.(*domain.Hotel)
		if !ok || h.Owner == nil {
			return false
		}
		return h.Owner.Username == actor.Username

	case ActionManageHotel:
		if actor.IsAdmin {
			return true
		}
		h, ok := resource.(*domain.Hotel)
		if !ok || h.Owner == nil {
			return false
		}
		return h.Owner.Username == actor.Username

	default:
		return false
	}
}
