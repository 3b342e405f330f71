package floorplan

import "errors"

var (
	// ErrInvalidPlan indicates a floor document that cannot be turned into a grid.
	ErrInvalidPlan = errors.New("floorplan: invalid floor plan")
	// ErrUnknownFormat indicates a file extension with no matching decoder.
	ErrUnknownFormat = errors.New("floorplan: unknown document format")
	// ErrLocationNotFound indicates a query that matches no location on the floor.
	ErrLocationNotFound = errors.New("floorplan: location not found")
	// ErrScanPayload indicates a malformed scan payload.
	ErrScanPayload = errors.New("floorplan: malformed scan payload")
)
