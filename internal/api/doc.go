// Package api handles the /users and /posts HTTP routes. Each route is a
// chain of validators followed by a handler: existence validators resolve the
// {id} path parameter through a store, shape validators decode and check the
// JSON body, and handlers make exactly one store call and write the response
// envelope.
package api
