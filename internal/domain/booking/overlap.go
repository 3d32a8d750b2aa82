package booking

// FindConflict returns the first active booking whose slot intersects candidate.
// Completed and cancelled bookings never conflict, whatever their slot.
func FindConflict(candidate TimeSlot, existing []*Booking) *Booking {
	for _, b := range existing {
		if b == nil || !b.Status().IsActive() {
			continue
		}
		if b.TimeSlot().Overlaps(candidate) {
			return b
		}
	}
	return nil
}

// CheckConflict returns a ConflictError naming the first active booking that holds
// part of candidate, or nil when the slot is free.
func CheckConflict(candidate TimeSlot, existing []*Booking) error {
	if b := FindConflict(candidate, existing); b != nil {
		return NewConflictError(b.ID())
	}
	return nil
}
