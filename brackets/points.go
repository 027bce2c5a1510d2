package brackets

// placementPoints is the points schedule for placements 1-16 used by event rankings.
var placementPoints = [...]int{30, 22, 16, 12, 9, 7, 5, 3, 2, 2, 2, 2, 1, 1, 1, 1}

// PointsForPlacement returns event points for a 1-based placement.
// Every placement beyond the schedule earns one point.
func PointsForPlacement(placement int) int {
	if placement >= 1 && placement <= len(placementPoints) {
		return placementPoints[placement-1]
	}
	return 1
}
