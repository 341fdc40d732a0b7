package services

import (
	stdctx "context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/rehab_api/dto"
	"github.com/lac-hong-legacy/rehab_api/shared"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RateLimitPolicy caps requests per client address for one endpoint type
// within a fixed window.
type RateLimitPolicy struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Message      string
}

type RateLimitService struct {
	context.DefaultService

	policies map[string]*RateLimitPolicy
	mutex    sync.RWMutex

	storeKind string
	store     CounterStore
	clock     shared.Clock
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

// NewRateLimitService builds a limiter with an explicit store. Policies not
// given fall back to the defaults.
func NewRateLimitService(store CounterStore, clock shared.Clock, policies ...RateLimitPolicy) *RateLimitService {
	svc := &RateLimitService{store: store, clock: clock}
	svc.initDefaultPolicies(time.Minute)
	for _, p := range policies {
		svc.SetPolicy(p)
	}
	return svc
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	if svc.clock == nil {
		svc.clock = shared.RealClock{}
	}

	window := time.Minute
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_WINDOW %q", v)
		}
		window = d
	}
	svc.initDefaultPolicies(window)

	overrides := map[string]string{
		shared.EndpointCreatePlayer:      "RATE_LIMIT_CREATE_PLAYER",
		shared.EndpointCreateGameSession: "RATE_LIMIT_CREATE_GAME_SESSION",
	}
	for endpointType, env := range overrides {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid %s %q", env, v)
		}
		svc.policies[endpointType].MaxRequests = n
	}

	kind, err := rateLimitStoreKind()
	if err != nil {
		return err
	}
	svc.storeKind = kind

	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	if svc.store != nil {
		return nil
	}

	var client *redis.Client
	if svc.storeKind == RateLimitStoreRedis {
		client = svc.Service(REDIS_SVC).(*RedisService).GetClient()
	}

	store, err := newCounterStore(svc.storeKind, client, svc.clock)
	if err != nil {
		return err
	}
	svc.store = store

	log.WithField("store", svc.storeKind).Info("Rate limiter ready")
	return nil
}

func (svc *RateLimitService) Shutdown() {}

func (svc *RateLimitService) initDefaultPolicies(window time.Duration) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.policies = map[string]*RateLimitPolicy{
		shared.EndpointCreatePlayer: {
			EndpointType: shared.EndpointCreatePlayer,
			MaxRequests:  5,
			WindowSize:   window,
			Message:      "Too many registration attempts. Please try again later.",
		},
		shared.EndpointCreateGameSession: {
			EndpointType: shared.EndpointCreateGameSession,
			MaxRequests:  10,
			WindowSize:   window,
			Message:      "Too many session creation attempts. Please try again later.",
		},
	}
}

func (svc *RateLimitService) SetPolicy(policy RateLimitPolicy) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	if existing, ok := svc.policies[policy.EndpointType]; ok && policy.Message == "" {
		policy.Message = existing.Message
	}
	svc.policies[policy.EndpointType] = &policy
}

func (svc *RateLimitService) Policy(endpointType string) (RateLimitPolicy, bool) {
	svc.mutex.RLock()
	defer svc.mutex.RUnlock()

	p, ok := svc.policies[endpointType]
	if !ok {
		return RateLimitPolicy{}, false
	}
	return *p, true
}

// IsAllowed counts one request from identifier against the endpoint's
// policy. Endpoint types without a policy are always allowed.
func (svc *RateLimitService) IsAllowed(ctx stdctx.Context, identifier, endpointType string) (bool, *dto.RateLimitInfo, error) {
	policy, ok := svc.Policy(endpointType)
	if !ok {
		return true, &dto.RateLimitInfo{Allowed: true, Remaining: -1}, nil
	}

	now := svc.clock.Now()
	windowIndex := now.UnixNano() / int64(policy.WindowSize)
	windowEnd := time.Unix(0, (windowIndex+1)*int64(policy.WindowSize)).UTC()
	key := fmt.Sprintf("%s:%s:%d", endpointType, identifier, windowIndex)

	count, err := svc.store.Increment(ctx, key, windowEnd.Sub(now))
	if err != nil {
		return false, nil, err
	}

	remaining := policy.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	allowed := int(count) <= policy.MaxRequests
	return allowed, &dto.RateLimitInfo{
		Allowed:   allowed,
		Limit:     policy.MaxRequests,
		Remaining: remaining,
		ResetTime: &windowEnd,
	}, nil
}

// RateLimit rejects requests over the endpoint's policy before the handler
// parses anything. A failing counter store rejects the request.
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := c.IP()

		allowed, info, err := svc.IsAllowed(c.UserContext(), identifier, endpointType)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"endpoint": endpointType,
				"client":   identifier,
			}).Error("Rate limit check failed")
			admissionRejectionsTotal.WithLabelValues(reasonLimiterFailed).Inc()
			return shared.NewServiceUnavailableError(err, "Rate limit service unavailable")
		}

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			admissionRejectionsTotal.WithLabelValues(reasonAddressLimit).Inc()
			log.WithFields(log.Fields{
				"endpoint": endpointType,
				"client":   identifier,
			}).Warn("Rate limit exceeded")
			return shared.NewTooManyRequestsError(nil, svc.getRateLimitMessage(endpointType))
		}

		return c.Next()
	}
}

func (svc *RateLimitService) addRateLimitHeaders(c *fiber.Ctx, info *dto.RateLimitInfo) {
	if info == nil || info.Remaining < 0 {
		return
	}

	c.Set(shared.HeaderRateLimitLimit, strconv.Itoa(info.Limit))
	c.Set(shared.HeaderRateLimitRemaining, strconv.Itoa(info.Remaining))
	if info.ResetTime != nil {
		c.Set(shared.HeaderRateLimitReset, strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (svc *RateLimitService) getRateLimitMessage(endpointType string) string {
	if policy, ok := svc.Policy(endpointType); ok && policy.Message != "" {
		return policy.Message
	}
	return "Too many requests. Please try again later."
}
