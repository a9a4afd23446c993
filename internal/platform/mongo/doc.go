// Package mongo implements the store interfaces on top of MongoDB using the
// official Go driver. One Client is created at startup and shared by every
// store; the driver's connection pool is safe for concurrent use.
package mongo
