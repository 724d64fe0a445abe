// Package polypart partitions simple 2D polygons into triangles.
//
// Three triangulation strategies are provided: ear clipping
// (TriangulateEC), minimum-total-edge-length dynamic programming
// (TriangulateOpt) and monotone decomposition (MonotonePartition) followed
// by a linear stack scan of each y-monotone piece (TriangulateMono), the two
// combined in TriangulateMonoList. Polygon sets containing holes are first flattened
// with RemoveHoles, which bridges every hole into its enclosing outer
// polygon.
//
// Outer polygons must wind counter-clockwise and holes clockwise, which
// callers can enforce with Polygon.SetOrientation. All operations are
// synchronous, allocate only for the duration of the call and return either
// their result or an error, never both.
package polypart
