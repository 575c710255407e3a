// Package storage declares persistence interfaces for web-owned session data.
//
// The web service only stores session, cooldown, and consumed-token state.
// Account data remains owned by the account service and is cached here per
// session purely for page rendering.
package storage
