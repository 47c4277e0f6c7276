package argbind

import (
	"fmt"
	"strings"
)

// node is a single level of the active command chain: a configuration object and the roles it declares. Only
// one subcommand may be active per level, so the chain is a simple path from the root to the leaf.
type node struct {
	name   string
	help   string
	target any
	roles  []Role
	child  *node
}

// buildTree collects the roles of the given target and, if the token at position "depth" of the original input
// names one of its subcommands, activates that subcommand and recurses into it.
//
// Matching is positional: for example, given this hierarchy:
//
//	root -> sub1 -> sub2
//
// The input "sub1 sub2 --x" activates both subcommands, whereas "--x sub1" activates neither, since "sub1" is not
// the first token. Positional roles are only collected by the leaf, which is the node without an active child.
func buildTree(name, help string, target any, tokens []string, depth int) (*node, error) {
	roles, err := collectRoles(target)
	if err != nil {
		return nil, err
	}

	n := &node{name: name, help: help, target: target}

	// Flags and named arguments come first, in declaration order
	for _, r := range roles {
		switch r.(type) {
		case *FlagRole, *NamedRole:
			n.roles = append(n.roles, r)
		}
	}

	// Subcommands are all registered (for usage rendering), but only the first one matching the token at this
	// depth is activated
	for _, r := range roles {
		sub, ok := r.(*SubcommandRole)
		if !ok {
			continue
		}
		n.roles = append(n.roles, sub)
		if n.child != nil || depth >= len(tokens) || sub.name != tokens[depth] {
			continue
		}
		child, err := buildTree(sub.name, sub.help, sub.activate(), tokens, depth+1)
		if err != nil {
			return nil, fmt.Errorf("failed building subcommand '%s': %w", sub.name, err)
		}
		n.child = child
	}

	// This is the leaf - positionals belong to it
	if n.child == nil {
		for _, r := range roles {
			if p, ok := r.(*PositionalRole); ok {
				n.roles = append(n.roles, p)
			}
		}
	}
	return n, nil
}

// chain returns the nodes of the active command chain, starting at this node and ending at the leaf.
func (n *node) chain() []*node {
	var chain []*node
	for c := n; c != nil; c = c.child {
		chain = append(chain, c)
	}
	return chain
}

func (n *node) leaf() *node {
	c := n
	for c.child != nil {
		c = c.child
	}
	return c
}

// fullName returns the names of all commands in the chain, joined by spaces, e.g. "app sub1 sub2".
func (n *node) fullName() string {
	var names []string
	for _, c := range n.chain() {
		names = append(names, c.name)
	}
	return strings.Join(names, " ")
}
