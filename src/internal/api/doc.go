// Package api provides the REST API of spp-ctl.
//
// The API is a thin layer over the worker registry: every request resolves
// a worker by id, checks that it is of the type the route serves, decodes
// and validates the JSON body, sends one command to the worker and shapes
// the reply.
//
// # Routes
//
//	GET    /v1/processes
//	GET    /v1/vfs/{id}
//	POST   /v1/vfs/{id}/components
//	DELETE /v1/vfs/{id}/components/{name}
//	PUT    /v1/vfs/{id}/components/{name}/ports
//	PUT    /v1/vfs/{id}/classifier_table
//	GET    /v1/nfvs/{id}
//	PUT    /v1/nfvs/{id}/forward
//	PUT    /v1/nfvs/{id}/ports
//	PUT    /v1/nfvs/{id}/patches
//	DELETE /v1/nfvs/{id}/patches
//	GET    /v1/primary/status
//	DELETE /v1/primary/status
//	GET    /metrics
//
// # Response Format
//
// Successful reads answer 200 with the JSON document itself, without an
// envelope. Successful commands answer 204 with an empty body.
//
// Errors are plain text carrying the error message:
//
//	400  key(name) required.
//	400  invalid key(port): phy0.
//	404  sec_id 3 not found.
//	500  failed to send command: broken pipe
//
// An id that belongs to a worker of another type is reported exactly like
// an unknown id.
package api
