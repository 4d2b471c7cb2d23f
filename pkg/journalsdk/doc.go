// Package journalsdk holds the request and response types of the arcana
// journal API. Keeping them in a public package lets Go clients share the
// exact wire types the server uses.
package journalsdk
