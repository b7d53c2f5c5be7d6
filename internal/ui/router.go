package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoRoute is returned when a path has no registered route.
var ErrNoRoute = errors.New("no route")

// Route binds a path to a named view factory.
type Route struct {
	Path string
	Name string
	New  func() View
}

// Router dispatches paths to views. Each Navigate mounts a fresh view and
// pushes it onto the history; Back unmounts the current one.
type Router struct {
	routes  map[string]Route
	history ViewStack
	names   []string
}

// NewRouter creates a router over routes. Later routes win on duplicate paths.
func NewRouter(routes ...Route) *Router {
	r := &Router{routes: make(map[string]Route, len(routes))}
	for _, rt := range routes {
		r.routes[rt.Path] = rt
	}
	return r
}

// Resolve returns the route registered for path.
func (r *Router) Resolve(path string) (Route, error) {
	rt, ok := r.routes[path]
	if !ok || rt.New == nil {
		return Route{}, fmt.Errorf("%w for %q", ErrNoRoute, path)
	}
	return rt, nil
}

// Navigate mounts the view for path and returns its Init command.
func (r *Router) Navigate(path string) (tea.Cmd, error) {
	rt, err := r.Resolve(path)
	if err != nil {
		return nil, err
	}
	v := rt.New()
	r.history.Push(v)
	r.names = append(r.names, rt.Name)
	return v.Init(), nil
}

// Back unmounts the current view. The last view is never popped; it
// reports false in that case.
func (r *Router) Back() bool {
	if r.history.Len() <= 1 {
		return false
	}
	r.history.Pop()
	r.names = r.names[:len(r.names)-1]
	return true
}

// Current returns the mounted view, or nil before the first Navigate.
func (r *Router) Current() View {
	return r.history.Peek()
}

// CurrentName returns the route name of the mounted view.
func (r *Router) CurrentName() string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[len(r.names)-1]
}

// Update forwards msg to the mounted view and stores the view it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	cur := r.history.Peek()
	if cur == nil {
		return nil
	}
	next, cmd := cur.Update(msg)
	r.history.Replace(next)
	return cmd
}
