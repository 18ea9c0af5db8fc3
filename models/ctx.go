package models

import "context"

// ResolveContext is owned by a single webhook invocation.
type ResolveContext struct {
	Context    context.Context
	ContentURL string
	Client     HTTPClient
}
