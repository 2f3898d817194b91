package gateway

import "context"

// TokenProvider supplies a bearer credential for authenticated calls.
// Credential acquisition (login flows, refresh, storage) lives outside
// this module; the gateway only consumes the result.
type TokenProvider interface {
	// Token returns the current bearer token, or an empty string when no
	// credential is available. The gateway treats "no token" as a request
	// to proceed unauthenticated and let the server answer 401.
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to the TokenProvider interface.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken returns a provider that always yields the given token.
// Useful for tests and service-to-service credentials.
func StaticToken(token string) TokenProvider {
	return TokenFunc(func(context.Context) (string, error) {
		return token, nil
	})
}
