// Package discovery locates the project manifest pnpmsync operates on. The
// search starts in a directory and ascends towards the filesystem root,
// stopping at the first directory that holds the manifest file.
package discovery
