package tenant

import (
	"context"

	"github.com/ihsanems/portal/core"
)

// Resolver derives the tenant domain for a request. The portal resolves it
// from the inbound Host header (stashed in the context by the guard); the
// CLI pins it statically.
type Resolver interface {
	Resolve(ctx context.Context) string
}

type domainKey struct{}

// WithDomain stashes the tenant domain in ctx, lower-cased.
func WithDomain(ctx context.Context, domain string) context.Context {
	return context.WithValue(ctx, domainKey{}, core.CleanString(domain, true /* lower */))
}

// DomainFrom returns the tenant domain stashed in ctx, or "".
func DomainFrom(ctx context.Context) string {
	domain, _ := ctx.Value(domainKey{}).(string)
	return domain
}

// HostResolver reads the tenant domain from the request context.
type HostResolver struct{}

func (HostResolver) Resolve(ctx context.Context) string {
	return DomainFrom(ctx)
}

// StaticResolver always yields the same tenant domain.
type StaticResolver struct {
	Domain string
}

func (r StaticResolver) Resolve(context.Context) string {
	return core.CleanString(r.Domain, true /* lower */)
}
