// Package publish turns a captured receipt into a social post: compose a
// caption, upload the image, publish, and classify whatever goes wrong.
package publish

import "context"

// Poster is the opaque posting capability. UploadMedia exchanges image bytes
// for a media reference; Publish attaches that reference to a text post.
type Poster interface {
	UploadMedia(ctx context.Context, image []byte) (string, error)
	Publish(ctx context.Context, text string, mediaRef string) error
}

// Result classifies the outcome of publishing one receipt.
type Result int

const (
	// Posted means the receipt went out (or would have, in dry run).
	Posted Result = iota
	// Skipped means history already contained the identity; no network call.
	Skipped
	// FailedAuth is a credential/permission failure. The posting loop must
	// stop on it: every later attempt would burn the same failure.
	FailedAuth
	// FailedTransient covers everything else (rate limits, network,
	// malformed requests). Independent receipts continue.
	FailedTransient
)

func (r Result) String() string {
	switch r {
	case Posted:
		return "posted"
	case Skipped:
		return "skipped"
	case FailedAuth:
		return "failed_auth"
	case FailedTransient:
		return "failed_transient"
	default:
		return "unknown"
	}
}
