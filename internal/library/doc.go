// Package library handles the file-system side of mosaic building:
// loading candidate images from a directory tree into a long-lived
// library, snapshotting that library into consumable per-run pools, and
// encoding the finished mosaic to a format inferred from the output
// path's extension.
package library
