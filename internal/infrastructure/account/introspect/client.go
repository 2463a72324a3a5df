package introspect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/scoutbook/scoutbook/internal/domain/user"
	"github.com/scoutbook/scoutbook/internal/platform/resilience"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

var errIdentityTransient = crerr.New("identity provider transient failure")

type Config struct {
	BaseURL         string
	IntrospectPath  string
	Timeout         time.Duration
	CacheTTL        time.Duration
	CacheMaxEntries int
	CircuitBreaker  resilience.CircuitBreakerConfig
}

// Client verifies access tokens against the identity provider's introspect
// endpoint. Verified principals are cached by token hash, and a circuit
// breaker sheds calls while the provider is failing.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	path       string
	timeout    time.Duration
	breaker    *resilience.CircuitBreaker
	cache      *principalCache
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("identity provider base url is required")
	}
	if cfg.IntrospectPath == "" {
		cfg.IntrospectPath = "/v1/auth/introspect"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		path:    cfg.IntrospectPath,
		timeout: cfg.Timeout,
		breaker: resilience.NewCircuitBreaker(
			breakerCfg.FailureThreshold,
			breakerCfg.OpenTimeout,
			breakerCfg.HalfOpenMaxReq,
		),
		cache:  newPrincipalCache(cfg.CacheTTL, cfg.CacheMaxEntries),
		logger: logger,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: empty access token", usecase.ErrUnauthorized)
	}

	cacheKey := hashToken(token)
	if principal, ok := c.cache.Get(cacheKey); ok {
		return principal, nil
	}

	if err := c.breaker.Allow(); err != nil {
		return user.Principal{}, fmt.Errorf("%w: identity provider circuit open", usecase.ErrDependencyUnavailable)
	}

	principal, err := c.introspect(ctx, token)
	if err != nil {
		if isTransient(err) {
			c.breaker.RecordFailure()
			c.logger.WarnContext(ctx, "identity introspection failed", "error", err)
			return user.Principal{}, fmt.Errorf("%w: identity provider unreachable", usecase.ErrDependencyUnavailable)
		}
		c.breaker.RecordSuccess()
		return user.Principal{}, err
	}
	c.breaker.RecordSuccess()

	c.cache.Set(cacheKey, principal)

	return principal, nil
}

func (c *Client) introspect(_ context.Context, token string) (user.Principal, error) {
	body := bytebufferpool.Get()
	defer bytebufferpool.Put(body)

	payload, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}
	if _, err := body.Write(payload); err != nil {
		return user.Principal{}, crerr.Wrap(err, "buffer introspect request")
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(buildURL(c.baseURL, c.path))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body.B)

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return user.Principal{}, crerr.Mark(crerr.Wrap(err, "call identity provider"), errIdentityTransient)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusOK:
	case status == fasthttp.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	case status >= 500:
		return user.Principal{}, crerr.Mark(crerr.Newf("identity provider returned status %d", status), errIdentityTransient)
	default:
		return user.Principal{}, crerr.Newf("identity provider returned status %d", status)
	}

	var parsed introspectResponse
	if err := sonic.Unmarshal(resp.Body(), &parsed); err != nil {
		return user.Principal{}, crerr.Wrap(err, "decode introspect response")
	}
	if !parsed.Active || parsed.UserID == "" {
		return user.Principal{}, fmt.Errorf("%w: token is not active", usecase.ErrUnauthorized)
	}

	role := user.Role(parsed.Role)
	if !role.Valid() {
		return user.Principal{}, fmt.Errorf("%w: unknown role %q", usecase.ErrUnauthorized, parsed.Role)
	}

	return user.Principal{
		UserID: parsed.UserID,
		Email:  parsed.Email,
		Role:   role,
	}, nil
}
