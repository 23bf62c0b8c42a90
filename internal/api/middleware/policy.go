package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

// Rule grants access to a method and path pattern. An empty Method matches
// any method. In Pattern, a ":name" segment matches exactly one path segment
// and a trailing "*" matches the rest of the path.
type Rule struct {
	Method  string
	Pattern string
	Roles   []string
}

// Policy is an ordered rule table. The first matching rule decides.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{
		rules: rules,
	}
}

// DefaultPolicy is the route permission table of the API, relative to /api.
func DefaultPolicy() *Policy {
	planner := []string{domain.RolePlanner}
	staff := []string{domain.RoleStaff}
	client := []string{domain.RoleClient}
	staffOrPlanner := []string{domain.RoleStaff, domain.RolePlanner}
	clientOrPlanner := []string{domain.RoleClient, domain.RolePlanner}

	return NewPolicy(
		Rule{Pattern: "/api/planner/*", Roles: planner},
		Rule{Method: "GET", Pattern: "/api/staff/event-details/:eventId", Roles: staffOrPlanner},
		Rule{Method: "GET", Pattern: "/api/staff/event-detailsbyTitle/:title", Roles: staffOrPlanner},
		Rule{Pattern: "/api/staff/*", Roles: staff},
		Rule{Pattern: "/api/client/*", Roles: client},
		Rule{Method: "POST", Pattern: "/api/payment/create-order", Roles: client},
		Rule{Method: "POST", Pattern: "/api/payment/verify", Roles: client},
		Rule{Method: "GET", Pattern: "/api/payment/status/*", Roles: client},
		Rule{Method: "GET", Pattern: "/api/payment/booking/*", Roles: clientOrPlanner},
	)
}

// Allowed reports whether role may call method on path. Paths no rule covers
// are open to any authenticated role.
func (p *Policy) Allowed(role, method, path string) bool {
	for _, rule := range p.rules {
		if rule.Method != "" && !strings.EqualFold(rule.Method, method) {
			continue
		}
		if !matchPattern(rule.Pattern, path) {
			continue
		}

		for _, r := range rule.Roles {
			if r == role {
				return true
			}
		}
		return false
	}

	return true
}

func matchPattern(pattern, path string) bool {
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range patternSegs {
		if seg == "*" && i == len(patternSegs)-1 {
			return len(pathSegs) >= i
		}
		if i >= len(pathSegs) {
			return false
		}
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}

	return len(pathSegs) == len(patternSegs)
}

// RequireRoles enforces the policy for the matched route. It must run after VerifyJWT.
func RequireRoles(policy *Policy) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}

		role := ctx.GetString(ContextKeyRole)
		if !policy.Allowed(role, ctx.Request.Method, path) {
			response.RenderErr(ctx, response.ErrPermissionDenied(
				fmt.Errorf("role %q may not access %s %s", role, ctx.Request.Method, ctx.Request.URL.Path)))
			return
		}

		ctx.Next()
	}
}
