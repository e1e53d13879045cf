// Package pointio reads and writes point sets as whitespace-separated
// (id, x, y) records.
//
// Records may span lines; tokens are read until EOF. The id is advisory and
// kept in geom.PointSet.IDs; points are addressed by their read position.
// Open and Create pick a codec from the file extension: ".zst" (zstd),
// ".lz4" (lz4 frame) or plain text.
package pointio
