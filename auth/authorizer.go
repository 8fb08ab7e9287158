// api/auth/authorizer.go

package auth

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/adaptivsec/vigil/api/logging"
	"github.com/adaptivsec/vigil/api/util"
)

// Outcome is the terminal authorization verdict for one request.
type Outcome int

const (
	Unauthorized Outcome = iota
	Authorized
)

// Checker decides whether a bearer token is authorized. Controllers depend
// on this interface, not on the concrete Authorizer.
type Checker interface {
	Check(ctx context.Context, token, baseURLOverride string) Outcome
}

// TokenValidator performs one upstream validation round-trip. It returns
// (true, nil) for a definitive valid verdict, (false, nil) for a definitive
// invalid one (any non-2xx status), and a non-nil error only for transport
// failures whose verdict is unknown.
type TokenValidator interface {
	Validate(ctx context.Context, baseURL, token string) (bool, error)
}

// Authorizer resolves bearer tokens against the cache first and the
// upstream validation service on a miss. All failure modes normalize to
// Unauthorized; the reason is never exposed to callers.
type Authorizer struct {
	cache     *TokenCache
	validator TokenValidator
	policy    util.RetryPolicy
}

func NewAuthorizer(cache *TokenCache, validator TokenValidator, policy util.RetryPolicy) *Authorizer {
	return &Authorizer{
		cache:     cache,
		validator: validator,
		policy:    policy,
	}
}

// Check runs the flow: cache lookup, then retry-wrapped upstream check on a
// miss. Definitive upstream verdicts are cached (negative ones with the
// shorter window via Set's polarity rule). An upstream transport failure is
// indeterminate: it must not poison the cache, and it fails closed.
func (a *Authorizer) Check(ctx context.Context, token, baseURLOverride string) Outcome {
	if valid, ok := a.cache.Get(token); ok {
		if valid {
			return Authorized
		}
		return Unauthorized
	}

	valid, err := util.Retry(ctx, a.policy, func(attemptCtx context.Context) (bool, error) {
		return a.validator.Validate(attemptCtx, baseURLOverride, token)
	})
	if err != nil {
		logger.Warn("Token validation unreachable, failing closed", zap.Error(err))
		return Unauthorized
	}

	a.cache.Set(token, valid)
	if valid {
		return Authorized
	}
	return Unauthorized
}
