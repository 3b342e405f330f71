// Package floorplan loads floor documents and resolves what a user names
// into grid cells.
//
// A floor is described by two documents. The plan carries the occupancy
// matrix and the named nodes (offices, rooms, ...):
//
//	{"rows": 3, "cols": 3, "grid": [[1,1,0],[1,1,1],[0,1,1]],
//	 "nodes": [{"id": 1, "name": "Reception", "type": "office", "row": 0, "col": 0}]}
//
// The roof references document lists the codes printed on ceiling tags:
//
//	{"roofRefs": [{"code": "A101", "row": 2, "col": 2}]}
//
// Both may also be written as YAML with the same keys. Node ids may be
// numbers or strings; they are normalised to strings.
//
// A Directory indexes both documents and resolves free-form queries
// (roof code, node id or name, "B3" style labels, or "row,col") into a
// Location. Location is a closed set: GridPoint, Node and RoofReference.
package floorplan
