// Package types defines the Game record, backend configuration, the Store
// interface shared by the JSON and SQL variants, and the standard errors for
// the refbook data layer.
package types
