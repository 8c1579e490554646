package reservation

import "time"

// overlaps reports whether the half-open intervals [a1, d1) and [a2, d2)
// share at least one day of occupancy. Departure day is excluded, so a
// departure and an arrival on the same day never conflict (same-day
// turnover is legal).
func overlaps(a1, d1, a2, d2 time.Time) bool {
	return a1.Before(d2) && a2.Before(d1)
}

// conflicts reports whether r blocks the requested interval.
// Cancelled reservations never block; pending ones hold the room.
func conflicts(r *Reservation, arrival, departure time.Time) bool {
	if r.Status == StatusCancelled {
		return false
	}
	return overlaps(arrival, departure, r.ArrivalDate, r.DepartureDate)
}
