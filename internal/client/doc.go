// Package client assembles the local-first sync engine into a runnable
// process: local storage, the remote store adapter, the connectivity gate
// and the background sync job.
package client
