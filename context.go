package simpledi

import (
	"context"
)

type containerCtxKey struct{}

// WithContainer returns a copy of ctx carrying c.
//
// Example:
//
//	func middleware(c *simpledi.Container, next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        next.ServeHTTP(w, r.WithContext(simpledi.WithContainer(r.Context(), c)))
//	    })
//	}
func WithContainer(ctx context.Context, c *Container) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, containerCtxKey{}, c)
}

// FromContext returns the container attached with WithContainer.
func FromContext(ctx context.Context) (*Container, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(containerCtxKey{}).(*Container)
	return c, ok && c != nil
}

// ProviderFromContext is GetProvider on the container carried by ctx.
// It returns (nil, nil) when ctx carries no container.
func ProviderFromContext[T any](ctx context.Context) (*Provider[T], error) {
	c, ok := FromContext(ctx)
	if !ok {
		return nil, nil
	}
	return GetProvider[T](c)
}
