package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

type Point struct {
	Lat float64
	Lng float64
}

type Method string

const (
	MethodRadius Method = "radius"
	MethodManual Method = "manual"
	MethodNone   Method = "none"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodRadius, MethodManual, MethodNone:
		return true
	}
	return false
}

// Zone is a store's delivery region. Static per store; evaluated against a
// single customer coordinate at a point in time.
type Zone struct {
	method   Method
	center   Point
	radiusKm float64
	polygon  []Point
}

func NewRadiusZone(center Point, radiusKm float64) Zone {
	return Zone{method: MethodRadius, center: center, radiusKm: radiusKm}
}

// NewPolygonZone builds a manual zone from ordered vertices. A polygon with
// fewer than 3 vertices cannot enclose anything; rather than crash on
// misdrawn merchant data it degrades to an unrestricted zone.
func NewPolygonZone(polygon []Point) Zone {
	if len(polygon) < 3 {
		return NewUnrestrictedZone()
	}
	copied := make([]Point, len(polygon))
	copy(copied, polygon)
	return Zone{method: MethodManual, polygon: copied}
}

func NewUnrestrictedZone() Zone {
	return Zone{method: MethodNone}
}

func (z Zone) Method() Method    { return z.method }
func (z Zone) Center() Point     { return z.center }
func (z Zone) RadiusKm() float64 { return z.radiusKm }

func (z Zone) Polygon() []Point {
	copied := make([]Point, len(z.polygon))
	copy(copied, z.polygon)
	return copied
}

// Contains reports whether p lies inside the delivery region. Pure; never
// blocks. Points exactly on a polygon edge may resolve either way.
func (z Zone) Contains(p Point) bool {
	switch z.method {
	case MethodNone:
		return true
	case MethodRadius:
		return HaversineKm(p, z.center) <= z.radiusKm
	case MethodManual:
		return pointInPolygon(p, z.polygon)
	}
	panic("geo: unknown zone method " + string(z.method))
}

// HaversineKm is the great-circle distance between two coordinates in
// kilometres.
func HaversineKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// pointInPolygon is the classic ray-casting test, treating (lat,lng) as a
// planar coordinate pair. Acceptable approximation at city scale.
func pointInPolygon(p Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		vi, vj := polygon[i], polygon[j]
		if (vi.Lng > p.Lng) != (vj.Lng > p.Lng) &&
			p.Lat < (vj.Lat-vi.Lat)*(p.Lng-vi.Lng)/(vj.Lng-vi.Lng)+vi.Lat {
			inside = !inside
		}
		j = i
	}
	return inside
}
