// Package domain defines the marketplace entities (services, reviews and
// users) together with the typed partial-update payloads used to modify
// them. Identifiers are MongoDB ObjectIDs assigned by the store on insert.
package domain
