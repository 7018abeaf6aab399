package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/angelmondragon/tienda-backend/api/responses"
	"github.com/angelmondragon/tienda-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

// maxPeekBytes bounds how much of a login body is buffered to find the email.
const maxPeekBytes = 64 << 10

// FixedWindowLimiter counts attempts per scope inside a fixed window.
type FixedWindowLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// LoginRateLimitPolicy holds the per-IP and per-email fixed-window limits.
type LoginRateLimitPolicy struct {
	window      time.Duration
	ipLimit     int
	emailLimit  int
	trustedHops int
}

// NewLoginRateLimitPolicy maps the auth rate limit configuration onto a policy.
func NewLoginRateLimitPolicy(cfg config.AuthRateLimitConfig) LoginRateLimitPolicy {
	return LoginRateLimitPolicy{
		window:      cfg.LoginWindow,
		ipLimit:     cfg.LoginIPLimit,
		emailLimit:  cfg.LoginEmailLimit,
		trustedHops: max(cfg.TrustedProxyHops, 0),
	}
}

func (p LoginRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.emailLimit > 0)
}

// LoginRateLimit throttles login attempts per client IP and per email hash.
// A nil limiter disables throttling. Limiter failures are logged and the request proceeds.
func LoginRateLimit(policy LoginRateLimitPolicy, limiter FixedWindowLimiter, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if policy.ipLimit > 0 {
				if ip := clientIP(r, policy.trustedHops); ip != "" {
					if blocked := check(ctx, logg, limiter, "login:ip:"+ip, policy.ipLimit, policy.window); blocked {
						respondRateLimited(ctx, logg, w, policy, "ip", map[string]any{"ip": ip})
						return
					}
				}
			}

			if policy.emailLimit > 0 && r.Body != nil {
				body, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body"))
					return
				}
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), r.Body))

				if email := normalizeEmail(extractEmail(body)); email != "" {
					hash := hashValue(email)
					if blocked := check(ctx, logg, limiter, "login:email:"+hash, policy.emailLimit, policy.window); blocked {
						respondRateLimited(ctx, logg, w, policy, "email", map[string]any{"email_hash": hash})
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func check(ctx context.Context, logg *logger.Logger, limiter FixedWindowLimiter, scope string, limit int, window time.Duration) bool {
	allowed, _, err := limiter.FixedWindowAllow(ctx, scope, int64(limit), window)
	if err != nil {
		if logg != nil {
			logg.WarnErr(logg.WithField(ctx, "scope", scope), "login.rate_limit.unavailable", err)
		}
		return false
	}
	return !allowed
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, policy LoginRateLimitPolicy, scope string, fields map[string]any) {
	if logg != nil {
		fields["scope"] = scope
		fields["window_seconds"] = int(policy.window.Seconds())
		logg.Warn(logg.WithFields(ctx, fields), "login.rate_limit.blocked")
	}
	retry := int(policy.window.Seconds())
	if retry > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retry))
	}
	responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "demasiados intentos, intenta más tarde"))
}

// clientIP keys on the peer address. Behind trustedHops proxies it takes the
// X-Forwarded-For entry the outermost trusted proxy appended; entries left of
// it are client-controlled.
func clientIP(r *http.Request, trustedHops int) string {
	if trustedHops > 0 {
		var hops []string
		for _, header := range r.Header.Values("X-Forwarded-For") {
			for _, part := range strings.Split(header, ",") {
				if ip := strings.TrimSpace(part); ip != "" {
					hops = append(hops, ip)
				}
			}
		}
		if len(hops) > 0 {
			return hops[max(len(hops)-trustedHops, 0)]
		}
		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func extractEmail(payload []byte) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Email
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:16])
}
