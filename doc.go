// Package pathgeom extracts closed, consistently oriented boundary loops
// from soups of curve entities connected at shared vertices, discretizes
// the loops into seamless polylines, and resamples polylines at uniform
// arc-length intervals.
//
// # Entities and vertices
//
// Geometry is split into a shared [Vertices] pool and vertex-indexed
// [Curve] entities referencing it. The package ships [Line], [Arc], and
// [CubicBezier] entities; anything satisfying Curve participates in loop
// extraction.
//
// # Loop extraction
//
// [BuildVertexGraph] turns open entities into an undirected graph over
// vertex indices with entity-labeled edges. [ClosedPaths] enumerates a
// cycle basis of that graph and resolves each cycle to an ordered entity
// path via [ResolveVertexCycle], reversing entity point order in place so
// consecutive entities share endpoints. Self-closed entities become
// single-entity paths directly. [VertexGraph.ConnectedOpen] reports which
// graph regions cannot yield simple loops.
//
// # Discretization and resampling
//
// [DiscretizePath] concatenates an entity path's point approximations
// into one polyline, normalized to counter-clockwise order for planar
// data. [PathSample] answers arc-length queries over a polyline and
// [Resample] redistributes its points at a fixed count or physical step.
//
// Entity reorientation during extraction is an in-place mutation;
// extraction over the same entities must not run concurrently. Sampling
// and resampling are pure.
package pathgeom
