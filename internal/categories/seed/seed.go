// Package seed holds the bundled bilingual category tree.
package seed

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var bundled []byte

// Node is one category of the seed file.
type Node struct {
	Slug     string `yaml:"slug"`
	NameEN   string `yaml:"en"`
	NameNL   string `yaml:"nl"`
	Children []Node `yaml:"children"`
}

type document struct {
	Categories []Node `yaml:"categories"`
}

// Bundled parses the embedded category tree.
func Bundled() ([]Node, error) {
	return Parse(bundled)
}

// Parse decodes a seed document and checks that every node has a slug and an
// English name and that slugs are unique across the tree.
func Parse(data []byte) ([]Node, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode category seed: %w", err)
	}

	seen := make(map[string]struct{})
	if err := check(doc.Categories, seen); err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

func check(nodes []Node, seen map[string]struct{}) error {
	for _, n := range nodes {
		slug := strings.TrimSpace(n.Slug)
		if slug == "" {
			return fmt.Errorf("category %q has no slug", n.NameEN)
		}
		if strings.TrimSpace(n.NameEN) == "" {
			return fmt.Errorf("category %s has no english name", slug)
		}
		if _, dup := seen[slug]; dup {
			return fmt.Errorf("duplicate category slug %s", slug)
		}
		seen[slug] = struct{}{}
		if err := check(n.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of nodes in the tree.
func Count(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		total += 1 + Count(n.Children)
	}
	return total
}
