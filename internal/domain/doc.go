// Package domain contains the core entities of the application: users and the
// posts they write. It is independent of any specific storage or transport.
package domain
