// Package transfer implements the upload/download window logic independent of
// any toolkit. It owns the selected file, the typed download name and the
// outcome and error messages, runs one action at a time against the API
// client, and hands downloaded bytes to a FileSaver.
package transfer
