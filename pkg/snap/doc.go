// Package snap finds the points an interactive cursor can lock onto when it
// hovers over a triangle mesh.
//
// Given the triangle under the cursor, Detect grows the flat face containing
// it, extracts the face outline and returns either the cardinal points and
// center of a circular face or the outline's vertices, edge midpoints and
// centroid. SelectClosest then picks the candidate nearest the cursor in
// screen space.
//
// All functions are pure over caller-owned mesh data. A Detector keeps
// scratch buffers between calls and must not be shared between goroutines.
package snap
