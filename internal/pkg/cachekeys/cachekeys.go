// Package cachekeys is the single source of the redis key scheme. Every
// service that reads or invalidates cached event state goes through it, so
// the reader and the invalidators cannot drift apart.
package cachekeys

import "fmt"

// EventDetails keys the cached event aggregate (details plus participants).
func EventDetails(eventID string) string {
	return fmt.Sprintf("event:%s", eventID)
}
