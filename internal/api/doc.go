// Package api talks to the transfer server: a multipart POST to /upload and
// a GET to /download/{name}. Failures are classified into *StatusError (the
// server answered with an error status) and ErrNoResponse (nothing came back).
package api
