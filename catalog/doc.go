// Package catalog defines the entities mirrored from the remote book
// catalog and the validated input payloads used to mutate them.
//
// Entity structs are plain data: they carry the server's JSON field names
// and hold whatever the last successful fetch returned. Input structs are
// the write-side counterparts; each implements Input and is validated
// client-side before a request is issued, so a payload the server would
// reject for shape never leaves the process. The server remains the
// authority on content: a client-valid payload it dislikes still comes
// back as a validation error through the gateway.
package catalog
