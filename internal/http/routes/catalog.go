// Package routes describes the endpoints each demo server registers.
//
// It is a read-only listing used for start-up logs and by the probe; the
// servers still own their routers.
package routes

import (
	"net/http"
	"slices"
	"strings"
)

// Endpoint is one registered route of one server.
type Endpoint struct {
	Framework string `json:"framework"`
	Method    string `json:"method"`
	// Path uses the framework's own parameter syntax, e.g. /gin/user/:id.
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

// Param reports the name of the first path parameter, if any. Both the
// "{name}" and ":name" styles are understood.
func (e Endpoint) Param() (string, bool) {
	for _, seg := range strings.Split(e.Path, "/") {
		switch {
		case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
			return seg[1 : len(seg)-1], true
		case strings.HasPrefix(seg, ":"):
			return seg[1:], true
		}
	}
	return "", false
}

// Expand substitutes value for the first path parameter. value must already
// be escaped for use in a path.
func (e Endpoint) Expand(value string) string {
	segs := strings.Split(e.Path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") || (strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")) {
			segs[i] = value
			break
		}
	}
	return strings.Join(segs, "/")
}

// Catalog is an immutable, ordered set of endpoints.
type Catalog struct {
	endpoints []Endpoint
}

var methodOrder = map[string]int{
	http.MethodGet:    0,
	http.MethodPost:   1,
	http.MethodPut:    2,
	http.MethodPatch:  3,
	http.MethodDelete: 4,
}

// NewCatalog copies and sorts the given endpoints by framework, path, then method.
func NewCatalog(groups ...[]Endpoint) Catalog {
	var all []Endpoint
	for _, g := range groups {
		all = append(all, g...)
	}
	slices.SortStableFunc(all, func(a, b Endpoint) int {
		if c := strings.Compare(a.Framework, b.Framework); c != 0 {
			return c
		}
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return methodRank(a.Method) - methodRank(b.Method)
	})
	return Catalog{endpoints: all}
}

func methodRank(m string) int {
	if r, ok := methodOrder[m]; ok {
		return r
	}
	return len(methodOrder)
}

// Endpoints returns a copy of the catalog contents.
func (c Catalog) Endpoints() []Endpoint {
	return slices.Clone(c.endpoints)
}

func (c Catalog) Len() int { return len(c.endpoints) }
