// Package refbook holds module-level metadata.
package refbook

// Version is the refbook release version.
const Version = "v0.1.0"
