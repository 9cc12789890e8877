// Package combinator implements a two-dimensional parser-combinator
// engine: a small set of composable functions over a token cursor that
// build a parsetree.Node forest as a side
// effect of matching, backtrack on failure, and record the furthest
// point of failure for diagnostics.
//
// Design Philosophy:
//   - Combinators are plain Go functions (ParseFn), not an interface
//     hierarchy: composition is just passing one closure to another.
//   - A ParseFn never panics on a failed match; it returns ok=false,
//     and every combinator here returns its entry position with it, so
//     a failed step never moves its caller's cursor.
//   - A successful match returns the node (or sibling chain) it built.
//     A Discard-based step participates in sequencing but contributes
//     no node.
//
// Common Usage Patterns:
//
//  1. Sequencing:
//     All(Match(parsetree.IDENTIFIER, token.IDENTIFIER), Discard(token.COLON))
//
//  2. Backtracking choice:
//     Any(parseRecordDecl, parseObjectDecl, parseEnumDecl)
//
//  3. Indentation-bounded blocks:
//     BoundedGroup(parsetree.CLASS_DECL, parseHeader, OneOrMore(Bound(parseMember)))
package combinator

import (
	"github.com/basis-lang/basis/internal/parsetree"
	"github.com/basis-lang/basis/internal/token"
)

// NoLimit is used as the limit index when a production is not bounded
// by an enclosing token's bound.
const NoLimit = -1

const noLimit = NoLimit

// lastOf walks to the final sibling of a chain returned by a step. A
// single step can itself be a repetition or list combinator that
// produced several sibling nodes (e.g. a Separated list embedded as
// one element of an All sequence); appending the next step after just
// the chain's head would silently drop everything after it, so every
// combinator that links chains together must anchor on the true tail.
func lastOf(n *parsetree.Node) *parsetree.Node {
	for n.Next != nil {
		n = n.Next
	}
	return n
}

// Furthest tracks the deepest point in the token stream any alternative
// managed to reach before failing, together with the token found there
// (nil at end of input). The parser driver surfaces this as the diagnostic location
// when every top-level alternative fails.
type Furthest struct {
	Pos   int
	Token *token.Token
}

// note records a failure at pos. Only the deepest failure survives;
// ties keep the first one recorded, matching the grammar's declared
// alternative order. A zero Furthest has recorded nothing yet, so a
// failure at position 0 is still recorded.
func (f *Furthest) note(toks []*token.Token, pos int) {
	if pos < f.Pos || (pos == f.Pos && f.Token != nil) {
		return
	}
	f.Pos = pos
	if pos < len(toks) {
		f.Token = toks[pos]
	} else {
		f.Token = nil
	}
}

// ParseFn is a single step of the grammar. toks is the full token
// stream; pos is the current cursor; limit is an exclusive upper bound
// index, or noLimit when unbounded. On success it returns the advanced
// cursor, any parse-tree node it produced (nil for Discard-style
// steps), and ok=true. On failure it returns ok=false; the returned
// position is meaningless and must not be used by the caller.
type ParseFn func(toks []*token.Token, pos, limit int, far *Furthest) (next int, node *parsetree.Node, ok bool)

func atLimit(toks []*token.Token, pos, limit int) bool {
	return pos >= len(toks) || (limit != noLimit && pos >= limit)
}

// Discard matches a single token of kind k and advances past it without
// producing a parse-tree node.
func Discard(k token.Kind) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		if atLimit(toks, pos, limit) || toks[pos].Kind != k {
			far.note(toks, pos)
			return pos, nil, false
		}
		return pos + 1, nil, true
	}
}

// Match matches a single token of kind k and wraps it as a leaf node
// tagged prod.
func Match(prod parsetree.Production, k token.Kind) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		if atLimit(toks, pos, limit) || toks[pos].Kind != k {
			far.note(toks, pos)
			return pos, nil, false
		}
		return pos + 1, parsetree.Leaf(prod, toks[pos]), true
	}
}

// Maybe runs fn once; if it fails the cursor is restored and Maybe
// still succeeds with no node, so it can be embedded anywhere a
// mandatory step is expected.
func Maybe(fn ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		if next, node, ok := fn(toks, pos, limit, far); ok {
			return next, node, true
		}
		return pos, nil, true
	}
}

// Any tries each alternative in order, restoring the cursor between
// attempts, and returns the first one that succeeds. It fails only if
// every alternative fails.
func Any(fns ...ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		for _, fn := range fns {
			if next, node, ok := fn(toks, pos, limit, far); ok {
				return next, node, true
			}
		}
		return pos, nil, false
	}
}

// All runs every step in sequence, threading the cursor through each
// and chaining the nodes they produce as siblings. Steps that yield no
// node (Discard, a failed Maybe) contribute nothing to the chain. If
// any step fails, All fails and returns its entry position with no
// node, dropping whatever the earlier steps had consumed.
func All(fns ...ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		var head, tail *parsetree.Node
		cur := pos
		for _, fn := range fns {
			next, node, ok := fn(toks, cur, limit, far)
			if !ok {
				return pos, nil, false
			}
			cur = next
			if node != nil {
				if head == nil {
					head = node
				} else {
					tail.Next = node
				}
				tail = lastOf(node)
			}
		}
		return cur, head, true
	}
}

// OneOrMore applies fn repeatedly until it fails, requiring at least
// one success, and chains the resulting nodes as siblings.
func OneOrMore(fn ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		cur, node, ok := fn(toks, pos, limit, far)
		if !ok {
			return pos, nil, false
		}
		head := node
		var tail *parsetree.Node
		if node != nil {
			tail = lastOf(node)
		}
		for {
			next, n, ok := fn(toks, cur, limit, far)
			if !ok {
				break
			}
			cur = next
			if n != nil {
				if head == nil {
					head = n
				} else if tail != nil {
					tail.Next = n
				}
				tail = lastOf(n)
			}
		}
		return cur, head, true
	}
}

// Any0 applies fn repeatedly until it fails, succeeding even with zero
// matches (the "Many" shape used by list tails and optional sections).
func Any0(fn ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		var head, tail *parsetree.Node
		cur := pos
		for {
			next, n, ok := fn(toks, cur, limit, far)
			if !ok {
				break
			}
			cur = next
			if n != nil {
				if head == nil {
					head = n
				} else {
					tail.Next = n
				}
				tail = lastOf(n)
			}
		}
		return cur, head, true
	}
}

// Separated matches elem, then as many (sep elem) pairs as it can.
// Once a separator is consumed the following elem is mandatory: a
// dangling separator is a hard parse failure, not a successful partial
// list.
func Separated(elem, sep ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		cur, node, ok := elem(toks, pos, limit, far)
		if !ok {
			return pos, nil, false
		}
		head := node
		var tail *parsetree.Node
		if node != nil {
			tail = lastOf(node)
		}
		for {
			sepNext, sepNode, ok := sep(toks, cur, limit, far)
			if !ok {
				break
			}
			elemNext, elemNode, ok := elem(toks, sepNext, limit, far)
			if !ok {
				return pos, nil, false
			}
			if sepNode != nil {
				if head == nil {
					head = sepNode
				} else {
					tail.Next = sepNode
				}
				tail = lastOf(sepNode)
			}
			if elemNode != nil {
				if head == nil {
					head = elemNode
				} else {
					tail.Next = elemNode
				}
				tail = lastOf(elemNode)
			}
			cur = elemNext
		}
		return cur, head, true
	}
}

// Prefix treats its first step as a lookahead tag: if it fails, Prefix
// succeeds without consuming anything; if it matches, every remaining
// step becomes mandatory.
func Prefix(fns ...ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		if len(fns) == 0 {
			return pos, nil, true
		}
		cur, head, ok := fns[0](toks, pos, limit, far)
		if !ok {
			return pos, nil, true
		}
		var tail *parsetree.Node
		if head != nil {
			tail = lastOf(head)
		}
		for _, fn := range fns[1:] {
			next, node, ok := fn(toks, cur, limit, far)
			if !ok {
				return pos, nil, false
			}
			cur = next
			if node != nil {
				if head == nil {
					head = node
				} else {
					tail.Next = node
				}
				tail = lastOf(node)
			}
		}
		return cur, head, true
	}
}

// Bound runs fn with the limit narrowed to the current token's Bound:
// the first later token at or before the current token's indentation
// column. A nil Bound keeps the enclosing limit.
func Bound(fn ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		if pos >= len(toks) {
			return pos, nil, false
		}
		newLimit := limit
		if b := toks[pos].Bound; b != nil {
			for i := pos; i < len(toks); i++ {
				if toks[i] == b {
					newLimit = i
					break
				}
			}
		}
		return fn(toks, pos, newLimit, far)
	}
}

// Group runs fn and, on success, wraps whatever nodes it produced as
// the children of a single node tagged prod. On failure nothing is
// produced and the cursor is left at pos.
func Group(prod parsetree.Production, fn ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		next, down, ok := fn(toks, pos, limit, far)
		if !ok {
			return pos, nil, false
		}
		return next, parsetree.Group(prod, down), true
	}
}

// BoundedGroup is Group(prod, Bound(All(fns...))) with one additional,
// strict requirement: the sequence must consume every token up to the
// bound (or the enclosing limit) to succeed. A production that stops
// short of its bound — e.g. a class body that parses two members but
// leaves a third, malformed one dangling before the next sibling at
// the same indentation — is a parse failure, not a short match,
// because every left-over token before the bound is indented past the
// header and so could only belong to this block.
func BoundedGroup(prod parsetree.Production, fns ...ParseFn) ParseFn {
	seq := All(fns...)
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		if pos >= len(toks) {
			return pos, nil, false
		}
		newLimit := limit
		if b := toks[pos].Bound; b != nil {
			for i := pos; i < len(toks); i++ {
				if toks[i] == b {
					newLimit = i
					break
				}
			}
		}
		next, down, ok := seq(toks, pos, newLimit, far)
		if !ok {
			return pos, nil, false
		}
		if newLimit != noLimit && next != newLimit {
			far.note(toks, next)
			return pos, nil, false
		}
		return next, parsetree.Group(prod, down), true
	}
}

// Forward returns a ParseFn that dereferences ref at call time rather
// than at construction time, breaking the initialization cycle that
// otherwise arises when two productions refer to each other (e.g. a
// type expression that can itself contain a type expression).
func Forward(ref *ParseFn) ParseFn {
	return func(toks []*token.Token, pos, limit int, far *Furthest) (int, *parsetree.Node, bool) {
		return (*ref)(toks, pos, limit, far)
	}
}
