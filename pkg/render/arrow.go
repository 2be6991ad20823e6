package render

import "math"

// arrowAngle is the half angle of the arrowhead wedge in radians.
const arrowAngle = 0.5

// ArrowPoints returns the three corners of a solid arrowhead whose tip sits
// at (x2, y2) pointing away from (x1, y1). Size is the edge length in
// pixels. Both backends draw arrowheads from these points so raster and
// vector output agree exactly.
func ArrowPoints(x1, y1, x2, y2, size float64) [3][2]float64 {
	angle := math.Atan2(y2-y1, x2-x1)
	return [3][2]float64{
		{x2, y2},
		{x2 - size*math.Cos(angle-arrowAngle), y2 - size*math.Sin(angle-arrowAngle)},
		{x2 - size*math.Cos(angle+arrowAngle), y2 - size*math.Sin(angle+arrowAngle)},
	}
}
