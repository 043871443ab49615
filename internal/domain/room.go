package domain

// Room represents a bookable meeting room. Bookings reference rooms by
// ID; deleting a room cascades deletion of its bookings (an explicit
// rule applied by the room service, not a storage constraint).
type Room struct {
	ID        string
	Name      string
	Capacity  int
	Amenities []string
	PhotoURL  string
}

// HasAmenity reports whether the room advertises the given amenity.
func (r *Room) HasAmenity(amenity string) bool {
	for _, a := range r.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}
