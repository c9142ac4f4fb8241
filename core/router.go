package core

import (
	"net/http"
	"strings"
	"sync/atomic"
)

type Route struct {
	Method  string
	Path    string
	Name    string
	Handler http.HandlerFunc
}

type RuntimeContext struct {
	Env      string
	Reloader LiveReloaderInterface
}

const ReloadPath = "/__wildrydes_reload"

type Router struct {
	config atomic.Pointer[Config]
	routes []Route
	mux    *http.ServeMux
}

func NewRouter(config Config, ctx RuntimeContext) *Router {
	r := &Router{mux: http.NewServeMux()}
	r.config.Store(&config)

	r.routes = append(r.routes, Route{
		Method:  http.MethodGet,
		Path:    "/",
		Name:    "index",
		Handler: GreetingHandler,
	})

	if ctx.Env == "dev" && ctx.Reloader != nil {
		r.routes = append(r.routes, Route{
			Method:  http.MethodGet,
			Path:    ReloadPath,
			Name:    "reload",
			Handler: ctx.Reloader.Handler,
		})
	}

	for _, route := range r.routes {
		r.mux.Handle(pattern(route), r.wrap(route))
	}

	return r
}

// pattern turns a route into a ServeMux pattern. "/" is matched exactly,
// and a GET pattern also answers HEAD.
func pattern(route Route) string {
	path := route.Path
	if strings.HasSuffix(path, "/") {
		path += "{$}"
	}
	if route.Method == "" {
		return path
	}
	return route.Method + " " + path
}

func (r *Router) wrap(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r.Config().DebugHeaders {
			w.Header().Set("X-Wildrydes-Route", route.Name)
		}
		route.Handler(w, req)
	})
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) Config() Config {
	return *r.config.Load()
}

func (r *Router) SetConfig(config Config) {
	r.config.Store(&config)
}

func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}
