// Package gdrive implements remote.BlobStore on top of the Google Drive v3 API.
//
// The store only sees files created by this application (drive.file scope).
// Every request passes through a token-bucket limiter and Google API errors
// are mapped to the remote package sentinels.
package gdrive
