// Package geo provides the geographic primitives shared by the rest of
// shaperun: coordinates, bounding boxes, and the two distance functions the
// cost kernel and the A* heuristic both depend on.
//
// Distances use the spherical haversine formula with EarthRadiusKm = 6371.
// Point-to-segment distance approximates the sphere as a local Cartesian
// plane (x=lng, y=lat), projects the point onto the segment with the
// parameter clamped to [0,1], and takes the haversine distance to the
// projection. This is accepted only because callers operate over a
// bounding-box-small search area (a few kilometers across); it would not
// hold up over country-scale distances.
package geo
