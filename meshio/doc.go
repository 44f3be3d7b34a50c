// Package meshio reads and writes meshes in the Wavefront OBJ format.
//
// Loading creates one vertex per "v" record, stores its coordinates in the
// mesh.PositionName column as r3.Vec, then adds one face per "f" record in
// file order. Texture and normal indices ("a/t", "a//n", "a/t/n") are
// accepted and ignored; negative indices count back from the last vertex
// read so far. Unknown record types are skipped. Tokenizing is done by the
// go-data-front OBJ scanner, so "\" line continuations are honoured.
//
// Writing emits every position followed by one "f" record per face, with
// corners in circulator order and 1-based indices.
//
// Errors:
//
//	ErrNoExtension      - Load/Save path has no extension.
//	ErrUnknownExtension - the extension names no supported format.
//	ErrSyntax           - a malformed "v" or "f" record.
//	ErrBadIndex         - a face index is zero or outside the vertex range.
//	ErrTopology         - the mesh rejected a face; wraps the mesh error.
//	ErrMissingPosition  - the mesh to write has no position column.
//
// Errors name the offending face by its 1-based position among the "f"
// records, or the number of vertices read before a malformed record.
package meshio
