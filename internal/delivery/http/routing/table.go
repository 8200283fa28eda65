// Package routing holds the route table: an immutable set of
// (method, pattern) -> handler bindings and the matcher that resolves a request
// against it.
package routing

import (
	"maps"
	"net/url"
	"slices"
	"strings"

	"bizdesk/internal/errors"
)

// Placeholder types accepted in patterns.
const (
	ParamInt    = "int"
	ParamString = "string"
)

// Route binds a method and a path pattern to a handler.
//
// Patterns are absolute paths made of static segments and placeholders:
// {id:int} matches a decimal integer segment, {email} or {email:string}
// matches any non-empty segment.
type Route struct {
	Method  string
	Pattern string
	Handler HandlerID
}

// Kind tags a MatchResult.
type Kind uint8

const (
	NotFound Kind = iota
	Matched
	MethodNotAllowed
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case MethodNotAllowed:
		return "method_not_allowed"
	default:
		return "not_found"
	}
}

// Param is one decoded path parameter.
type Param struct {
	Name  string
	Value string
}

// Params are path parameters in the order the pattern declares them.
type Params []Param

// Get returns the value of the named parameter.
func (p Params) Get(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}

	return "", false
}

// Names returns the parameter names in declaration order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}

	return names
}

// Values returns the parameter values in declaration order.
func (p Params) Values() []string {
	values := make([]string, len(p))
	for i, param := range p {
		values[i] = param.Value
	}

	return values
}

// MatchResult is the outcome of Table.Match. Handler, Pattern and Params are
// set for Matched; Allowed is set for MethodNotAllowed.
type MatchResult struct {
	Kind    Kind
	Handler HandlerID
	Pattern string
	Params  Params
	Allowed []string
}

type segmentKind uint8

const (
	segmentStatic segmentKind = iota
	segmentInt
	segmentString
)

type segment struct {
	kind  segmentKind
	value string // literal for static segments, parameter name otherwise
}

type endpoint struct {
	route      Route
	paramNames []string
}

type node struct {
	static    map[string]*node
	intChild  *node
	strChild  *node
	endpoints map[string]endpoint // by method
}

func newNode() *node {
	return &node{static: make(map[string]*node)}
}

// Table is the immutable route table. It is safe for concurrent use.
type Table struct {
	root   *node
	routes []Route
}

// NewTable builds a table from routes. It fails on malformed patterns and on
// two routes sharing a method and a path shape.
func NewTable(routes ...Route) (*Table, error) {
	table := &Table{root: newNode()}

	for _, route := range routes {
		if err := table.add(route); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []Route {
	return slices.Clone(t.routes)
}

func (t *Table) add(route Route) error {
	method := strings.ToUpper(strings.TrimSpace(route.Method))
	if method == "" {
		return errors.Errorf("route %q: empty method", route.Pattern)
	}
	if !route.Handler.Controller.IsValid() || !route.Handler.Operation.IsValid() {
		return errors.Errorf("route %s %s: invalid handler %s", method, route.Pattern, route.Handler)
	}

	segments, err := parsePattern(route.Pattern)
	if err != nil {
		return err
	}

	current := t.root
	var paramNames []string
	for _, seg := range segments {
		switch seg.kind {
		case segmentStatic:
			next, ok := current.static[seg.value]
			if !ok {
				next = newNode()
				current.static[seg.value] = next
			}
			current = next
		case segmentInt:
			if current.intChild == nil {
				current.intChild = newNode()
			}
			current = current.intChild
			paramNames = append(paramNames, seg.value)
		case segmentString:
			if current.strChild == nil {
				current.strChild = newNode()
			}
			current = current.strChild
			paramNames = append(paramNames, seg.value)
		}
	}

	if current.endpoints == nil {
		current.endpoints = make(map[string]endpoint)
	}
	if existing, ok := current.endpoints[method]; ok {
		return errors.Errorf("route %s %s conflicts with %s %s", method, route.Pattern, method, existing.route.Pattern)
	}

	route.Method = method
	current.endpoints[method] = endpoint{route: route, paramNames: paramNames}
	t.routes = append(t.routes, route)

	return nil
}

func parsePattern(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, errors.Errorf("pattern %q: must start with /", pattern)
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(pattern, "/"), "/")
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{})
	for _, part := range parts {
		if part == "" {
			return nil, errors.Errorf("pattern %q: empty segment", pattern)
		}

		if !strings.HasPrefix(part, "{") {
			if strings.ContainsAny(part, "{}") {
				return nil, errors.Errorf("pattern %q: malformed segment %q", pattern, part)
			}
			segments = append(segments, segment{kind: segmentStatic, value: part})

			continue
		}

		if !strings.HasSuffix(part, "}") {
			return nil, errors.Errorf("pattern %q: unterminated placeholder %q", pattern, part)
		}

		name, typ, _ := strings.Cut(part[1:len(part)-1], ":")
		if !isIdentifier(name) {
			return nil, errors.Errorf("pattern %q: invalid placeholder name %q", pattern, name)
		}
		if _, dup := seen[name]; dup {
			return nil, errors.Errorf("pattern %q: duplicate placeholder %q", pattern, name)
		}
		seen[name] = struct{}{}

		switch typ {
		case ParamInt:
			segments = append(segments, segment{kind: segmentInt, value: name})
		case "", ParamString:
			segments = append(segments, segment{kind: segmentString, value: name})
		default:
			return nil, errors.Errorf("pattern %q: unknown placeholder type %q", pattern, typ)
		}
	}

	return segments, nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// candidate is a node whose path shape matches the request path.
type candidate struct {
	node   *node
	values []string
}

// Match resolves method and rawPath against the table. rawPath is the escaped
// request target: a query string is dropped, a trailing slash ignored and each
// segment percent-decoded before matching. Static segments win over
// placeholders, and int placeholders over string placeholders, at every
// position; a later alternative is only used when an earlier one has no
// route for the method.
func (t *Table) Match(method, rawPath string) MatchResult {
	segments, ok := splitPath(rawPath)
	if !ok {
		return MatchResult{Kind: NotFound}
	}

	var candidates []candidate
	collect(t.root, segments, nil, &candidates)
	if len(candidates) == 0 {
		return MatchResult{Kind: NotFound}
	}

	method = strings.ToUpper(method)
	for _, cand := range candidates {
		ep, ok := cand.node.endpoints[method]
		if !ok {
			continue
		}

		params := make(Params, len(ep.paramNames))
		for i, name := range ep.paramNames {
			params[i] = Param{Name: name, Value: cand.values[i]}
		}

		return MatchResult{
			Kind:    Matched,
			Handler: ep.route.Handler,
			Pattern: ep.route.Pattern,
			Params:  params,
		}
	}

	allowed := make(map[string]struct{})
	for _, cand := range candidates {
		for m := range cand.node.endpoints {
			allowed[m] = struct{}{}
		}
	}

	return MatchResult{
		Kind:    MethodNotAllowed,
		Allowed: slices.Sorted(maps.Keys(allowed)),
	}
}

// collect appends every endpoint-bearing node reachable along segments, in precedence order.
func collect(n *node, segments []string, values []string, out *[]candidate) {
	if len(segments) == 0 {
		if len(n.endpoints) > 0 {
			*out = append(*out, candidate{node: n, values: slices.Clone(values)})
		}

		return
	}

	seg, rest := segments[0], segments[1:]

	if next, ok := n.static[seg]; ok {
		collect(next, rest, values, out)
	}
	if n.intChild != nil && isInt(seg) {
		collect(n.intChild, rest, append(values, seg), out)
	}
	if n.strChild != nil && seg != "" {
		collect(n.strChild, rest, append(values, seg), out)
	}
}

func splitPath(rawPath string) ([]string, bool) {
	if i := strings.IndexAny(rawPath, "?#"); i >= 0 {
		rawPath = rawPath[:i]
	}
	if !strings.HasPrefix(rawPath, "/") {
		return nil, false
	}

	trimmed := strings.TrimPrefix(rawPath, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	if trimmed == "" {
		return nil, true
	}

	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		decoded, err := url.PathUnescape(part)
		if err != nil {
			return nil, false
		}
		parts[i] = decoded
	}

	return parts, true
}

// isInt reports whether segment is made of ASCII digits only. Range is not
// checked here; handlers parse the value and answer out-of-range ids with 404.
func isInt(segment string) bool {
	if segment == "" {
		return false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}

	return true
}
