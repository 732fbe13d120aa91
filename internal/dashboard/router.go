package dashboard

import (
	"errors"
	"fmt"
	"sync"
)

// ProductName is appended to every page title.
const ProductName = "MinIO Lite Admin"

// ErrRouteNotFound is returned by Navigate for paths with no route.
var ErrRouteNotFound = errors.New("route not found")

// View identifies the screen a route renders.
type View int

const (
	ViewNone View = iota
	ViewDashboard
	ViewAccessKeys
	ViewSiteReplication
)

// Route maps a path to a view. A route with Redirect set renders nothing
// and forwards to another path.
type Route struct {
	Path     string
	Name     string
	Title    string
	View     View
	Redirect string
}

// Hook runs before a navigation completes.
type Hook func(to, from Route)

// DefaultRoutes is the dashboard's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Redirect: "/dashboard"},
		{Path: "/dashboard", Name: "Dashboard", Title: "Dashboard", View: ViewDashboard},
		{Path: "/access-keys", Name: "AccessKeys", Title: "Access Keys", View: ViewAccessKeys},
		{Path: "/site-replication", Name: "SiteReplication", Title: "Site Replication", View: ViewSiteReplication},
	}
}

// Router resolves paths against a static table. It is safe for concurrent
// use.
type Router struct {
	mu      sync.Mutex
	routes  []Route
	byPath  map[string]Route
	hooks   []Hook
	current Route
}

func NewRouter(routes []Route) *Router {
	r := &Router{
		routes: routes,
		byPath: make(map[string]Route, len(routes)),
	}
	for _, rt := range routes {
		r.byPath[rt.Path] = rt
	}
	return r
}

// BeforeEach registers a hook that runs on every successful navigation,
// in registration order.
func (r *Router) BeforeEach(h Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, h)
}

// Navigate resolves path, follows redirects, runs the hooks and makes the
// resolved route current.
func (r *Router) Navigate(path string) (Route, error) {
	r.mu.Lock()
	to, err := r.resolveLocked(path)
	if err != nil {
		r.mu.Unlock()
		return Route{}, err
	}
	from := r.current
	hooks := append([]Hook(nil), r.hooks...)
	r.mu.Unlock()

	for _, h := range hooks {
		h(to, from)
	}

	r.mu.Lock()
	r.current = to
	r.mu.Unlock()
	return to, nil
}

func (r *Router) resolveLocked(path string) (Route, error) {
	seen := map[string]bool{}
	for {
		rt, ok := r.byPath[path]
		if !ok {
			return Route{}, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
		}
		if rt.Redirect == "" {
			return rt, nil
		}
		if seen[path] {
			return Route{}, fmt.Errorf("redirect loop at %s", path)
		}
		seen[path] = true
		path = rt.Redirect
	}
}

// Current returns the most recently navigated route.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Pages returns the routes that render a view, in table order.
func (r *Router) Pages() []Route {
	var out []Route
	for _, rt := range r.routes {
		if rt.View != ViewNone {
			out = append(out, rt)
		}
	}
	return out
}

// Document holds the window title written by TitleHook.
type Document struct {
	mu    sync.Mutex
	title string
}

func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	d.title = title
	d.mu.Unlock()
}

func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// TitleHook sets doc's title to "<title> - MinIO Lite Admin" when the target
// route has a title, and leaves it unchanged otherwise.
func TitleHook(doc *Document) Hook {
	return func(to, _ Route) {
		if to.Title != "" {
			doc.SetTitle(to.Title + " - " + ProductName)
		}
	}
}
