package service

import (
	"strings"

	"gigportal_backend/internal/categories/repository"

	"github.com/google/uuid"
)

const (
	// IndentUnit is one level-width of dropdown indentation: two non-breaking spaces.
	IndentUnit = "\u00a0\u00a0"
	// BranchGlyph marks a nested entry after its indentation.
	BranchGlyph = "└ "
	// MaxDepth bounds the walk so a malformed tree cannot recurse forever.
	MaxDepth = 32
)

// Node is one category with its ordered children.
type Node struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
	Children []Node     `json:"children,omitempty"`
}

// FlatCategory is a node placed in a single-level list with its indentation prefix.
type FlatCategory struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Prefix string    `json:"prefix"`
	Depth  int       `json:"depth"`
}

// Label is the text shown for the entry in a dropdown.
func (fc FlatCategory) Label() string {
	return fc.Prefix + fc.Name
}

// Flatten walks nodes in pre-order and returns them as a flat, depth-annotated list.
// Input order is kept at every level. The result is never nil.
func Flatten(nodes []Node) []FlatCategory {
	out := make([]FlatCategory, 0, len(nodes))
	return flatten(nodes, 0, out)
}

func flatten(nodes []Node, depth int, out []FlatCategory) []FlatCategory {
	for _, node := range nodes {
		out = append(out, FlatCategory{
			ID:     node.ID,
			Name:   node.Name,
			Prefix: Prefix(depth),
			Depth:  depth,
		})
		if len(node.Children) > 0 && depth+1 < MaxDepth {
			out = flatten(node.Children, depth+1, out)
		}
	}
	return out
}

// Prefix returns the indentation for an entry at depth. Depth 0 has no prefix.
func Prefix(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(IndentUnit, depth*2) + BranchGlyph
}

// BuildTree nests parent-pointer rows into a tree for the given locale.
// Row order is kept among siblings. Rows whose parent is not in the set become roots.
func BuildTree(rows []repository.Category, locale string) []Node {
	present := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		present[row.ID] = struct{}{}
	}

	children := make(map[uuid.UUID][]int, len(rows))
	roots := make([]int, 0)
	for i, row := range rows {
		if row.ParentID != nil {
			if _, ok := present[*row.ParentID]; ok {
				children[*row.ParentID] = append(children[*row.ParentID], i)
				continue
			}
		}
		roots = append(roots, i)
	}

	var build func(idx []int, depth int) []Node
	build = func(idx []int, depth int) []Node {
		nodes := make([]Node, 0, len(idx))
		for _, i := range idx {
			row := rows[i]
			node := Node{
				ID:       row.ID,
				Name:     localizedName(row, locale),
				Slug:     row.Slug,
				ParentID: row.ParentID,
			}
			if kids := children[row.ID]; len(kids) > 0 && depth+1 < MaxDepth {
				node.Children = build(kids, depth+1)
			}
			nodes = append(nodes, node)
		}
		return nodes
	}

	return build(roots, 0)
}

func localizedName(row repository.Category, locale string) string {
	if locale == "nl" && row.NameNL != nil && strings.TrimSpace(*row.NameNL) != "" {
		return *row.NameNL
	}
	return row.NameEN
}
