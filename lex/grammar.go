package lex

// Grammar is one lexical state: a named, ordered list of rules plus
// fallback behavior. When asked to scan, a grammar tries its own rules in
// declaration order, then its parents' rules in Inherit order, then its
// else-pop/else-push defaults. The first rule whose pattern matches wins,
// even if a later rule would match more text.
//
// Grammars form a shared graph through push targets and inheritance; cycles
// are legal and common (a grammar may push into itself or back into an
// ancestor). Build the graph once, then treat it as read-only: scanning
// never mutates grammar state.
type Grammar[T comparable] struct {
	name     string
	rules    []qualifiedRule[T]
	parents  []*Grammar[T]
	elsePop  *Rule[T]
	elsePush *Rule[T]
	subs     []*Grammar[T]
	isSub    bool
}

// NewGrammar creates an empty root grammar.
func NewGrammar[T comparable]() *Grammar[T] {
	return &Grammar[T]{name: "?"}
}

// Def appends a rule to the grammar, optionally tagging it with a token
// type. Untyped rules are silent. Returns the grammar for chaining.
func (g *Grammar[T]) Def(r *Rule[T], typ ...T) *Grammar[T] {
	q := qualifiedRule[T]{rule: r}
	if len(typ) > 0 {
		q.typed = true
		q.typ = typ[0]
	}
	g.rules = append(g.rules, q)
	return g
}

// Named sets the grammar's diagnostic name, reported in the grammar stack
// of a NoMatchError. The default name is "?".
func (g *Grammar[T]) Named(name string) *Grammar[T] {
	g.name = name
	return g
}

// Name returns the grammar's diagnostic name.
func (g *Grammar[T]) Name() string {
	return g.name
}

// Inherit adds parent to the grammar's fallback chain. Parents are
// consulted after all of the grammar's own rules fail, in the order Inherit
// was called; each parent recurses fully through its own rules and parents
// before the next parent is tried.
func (g *Grammar[T]) Inherit(parent *Grammar[T]) *Grammar[T] {
	g.parents = append(g.parents, parent)
	return g
}

// ElsePop makes the grammar pop itself off the stack when no rule matches,
// without consuming any input. Checked after all rules and parents, before
// ElsePush.
func (g *Grammar[T]) ElsePop() *Grammar[T] {
	g.elsePop = &Rule[T]{action: ActionPop, stay: true}
	return g
}

// ElsePush makes the grammar push target when no rule matches, without
// consuming any input.
func (g *Grammar[T]) ElsePush(target *Grammar[T]) *Grammar[T] {
	g.elsePush = &Rule[T]{action: ActionPush, stay: true, target: target}
	return g
}

// Sub creates a child grammar anchored to this grammar's lifetime. The
// child starts empty and unnamed; it participates in the same graph and is
// typically used as a push target.
func (g *Grammar[T]) Sub() *Grammar[T] {
	child := &Grammar[T]{name: "?", isSub: true}
	g.subs = append(g.subs, child)
	return child
}

// Scan tries the grammar against buf at loc and reports the first rule that
// applies. The lookup order is fixed: own rules in declaration order, then
// parents in Inherit order, then else-pop, then else-push. ok is false when
// nothing in the reachable graph matches.
//
// The result's Loc is the location scanning resumes at: past the matched
// text for consuming rules, unchanged for Stay rules and the else defaults.
func (g *Grammar[T]) Scan(loc Location, buf string) (res ScanResult[T], ok bool) {
	for i := range g.rules {
		q := &g.rules[i]
		c := q.rule.pattern.MatchAt(buf, loc.Offset)
		if c == nil {
			continue
		}
		next := loc
		if !q.rule.stay {
			next = advance(loc, buf, c.Length())
		}
		res = ScanResult[T]{Rule: q.rule, Loc: next}
		if q.typed {
			res.Token = &Token[T]{typ: q.typ, groups: c.Groups(), start: loc, loc: next}
		}
		return res, true
	}
	for _, p := range g.parents {
		if res, ok = p.Scan(loc, buf); ok {
			return res, true
		}
	}
	if g.elsePop != nil {
		return ScanResult[T]{Rule: g.elsePop, Loc: loc}, true
	}
	if g.elsePush != nil {
		return ScanResult[T]{Rule: g.elsePush, Loc: loc}, true
	}
	return ScanResult[T]{}, false
}

// TokenTypes returns every token type reachable from the grammar, walking
// inherited grammars and push targets. Types appear once each, in
// first-encountered order; the walk tolerates cycles.
func (g *Grammar[T]) TokenTypes() []T {
	var types []T
	seen := make(map[T]bool)
	visited := make(map[*Grammar[T]]bool)
	g.collectTypes(&types, seen, visited)
	return types
}

func (g *Grammar[T]) collectTypes(types *[]T, seen map[T]bool, visited map[*Grammar[T]]bool) {
	if visited[g] {
		return
	}
	visited[g] = true
	for i := range g.rules {
		q := &g.rules[i]
		if q.typed && !seen[q.typ] {
			seen[q.typ] = true
			*types = append(*types, q.typ)
		}
		if q.rule.target != nil {
			q.rule.target.collectTypes(types, seen, visited)
		}
	}
	for _, p := range g.parents {
		p.collectTypes(types, seen, visited)
	}
	if g.elsePush != nil && g.elsePush.target != nil {
		g.elsePush.target.collectTypes(types, seen, visited)
	}
}
