package backoffice

// RouteRequirement is the access level a route demands.
type RouteRequirement int

const (
	// RequireNone marks public routes such as the login view.
	RequireNone RouteRequirement = iota
	// RequireAuthenticated marks routes for any signed-in administrator.
	RequireAuthenticated
	// RequireSuperAdmin marks the user-administration routes.
	RequireSuperAdmin
)

// Route maps a navigable path to the access it requires. The table is static
// configuration; the guard consults it and never mutates it.
type Route struct {
	Path     string
	Requires RouteRequirement
	// Menu is the sidebar label, empty for routes not shown in the menu.
	Menu string
}

// Routes returns the route table of the back office.
func Routes() []Route {
	return []Route{
		{Path: LoginPath, Requires: RequireNone},
		{Path: DashboardPath, Requires: RequireAuthenticated, Menu: "Dashboard"},
		{Path: "/books", Requires: RequireAuthenticated, Menu: "Books"},
		{Path: "/books/add", Requires: RequireAuthenticated},
		{Path: "/purchases", Requires: RequireAuthenticated, Menu: "Purchases"},
		{Path: "/purchases/add", Requires: RequireAuthenticated},
		{Path: "/sales", Requires: RequireAuthenticated, Menu: "Sales"},
		{Path: "/sales/add", Requires: RequireAuthenticated},
		{Path: "/finance", Requires: RequireAuthenticated, Menu: "Finance"},
		{Path: "/users", Requires: RequireSuperAdmin, Menu: "Users"},
		{Path: "/users/add", Requires: RequireSuperAdmin},
		{Path: "/profile", Requires: RequireAuthenticated},
	}
}

// Decision is the guard's answer kind for one navigation.
type Decision int

const (
	// DecisionHold means bootstrap has not finished; render nothing protected yet.
	DecisionHold Decision = iota
	// DecisionAllow renders the requested view.
	DecisionAllow
	// DecisionRedirect sends the user to Verdict.Target instead.
	DecisionRedirect
)

// Verdict is the guard's full answer for one navigation.
type Verdict struct {
	Decision Decision
	Target   string
}

// RouteGuard gates navigation on session state and a route's requirement. It
// holds no verdict state; every navigation is evaluated fresh.
type RouteGuard struct {
	session *SessionController
}

func NewRouteGuard(session *SessionController) *RouteGuard {
	return &RouteGuard{session: session}
}

// Authorize decides whether the route may render for the current session.
func (g *RouteGuard) Authorize(route Route) Verdict {
	return Evaluate(g.session.Snapshot(), route.Requires)
}

// Evaluate is the pure guard check. Unauthenticated sessions are redirected to
// the login view; an authenticated ordinary admin hitting a super-admin route
// is silently sent to the dashboard, not to login and not to an error page.
func Evaluate(snap SessionSnapshot, requires RouteRequirement) Verdict {
	if requires == RequireNone {
		return Verdict{Decision: DecisionAllow}
	}

	switch snap.State {
	case StateBootstrapping:
		return Verdict{Decision: DecisionHold}
	case StateUnauthenticated:
		return Verdict{Decision: DecisionRedirect, Target: LoginPath}
	}

	if requires == RequireSuperAdmin {
		if snap.Principal == nil || !snap.Principal.IsSuperAdmin {
			return Verdict{Decision: DecisionRedirect, Target: DashboardPath}
		}
	}

	return Verdict{Decision: DecisionAllow}
}

// VisibleMenu filters the route table down to the menu entries the current
// session may see. Ordinary admins see every section except Users; only the
// super-admin flag is ever checked, matching the backend's role model.
func VisibleMenu(snap SessionSnapshot, routes []Route) []Route {
	var visible []Route
	for _, route := range routes {
		if route.Menu == "" {
			continue
		}
		if Evaluate(snap, route.Requires).Decision == DecisionAllow {
			visible = append(visible, route)
		}
	}
	return visible
}
