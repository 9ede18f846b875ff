// Package inspect renders tagged values and type descriptors as trees for
// debugging and CLI output.
package inspect

import (
	"fmt"
	"sort"

	"github.com/xlab/treeprint"

	adt "github.com/blaster151/adt"
)

// Tree renders a tagged value: the tag as the root, payload fields as
// branches, nested maps and slices as subtrees. Fields print in sorted order
// so output is deterministic.
func Tree(v adt.Value) string {
	root := treeprint.NewWithRoot(rootLabel(v))
	addFields(root, map[string]any(v.Fields()))
	return root.String()
}

// TypeTree renders a sum-type descriptor: the type name as the root and one
// branch per variant in declaration order.
func TypeTree(t *adt.SumType) string {
	root := treeprint.NewWithRoot(fmt.Sprintf("%s [%s]", t.Name, t.Effect))
	for _, tag := range t.Tags() {
		root.AddNode(tag)
	}
	return root.String()
}

// ProductTree renders a product-type descriptor: the type name as the root
// and one branch per declared field.
func ProductTree(t *adt.ProductType) string {
	root := treeprint.NewWithRoot(fmt.Sprintf("%s [%s]", t.Name, t.Effect))
	for _, f := range t.Keys() {
		root.AddNode(f)
	}
	return root.String()
}

func rootLabel(v adt.Value) string {
	if tag := v.Tag(); tag != "" {
		return tag
	}
	return "{}"
}

func addFields(branch treeprint.Tree, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		addNode(branch, k, fields[k])
	}
}

func addNode(branch treeprint.Tree, label string, v any) {
	switch x := v.(type) {
	case map[string]any:
		sub := branch.AddBranch(label)
		addFields(sub, x)
	case adt.Fields:
		sub := branch.AddBranch(label)
		addFields(sub, x)
	case adt.Value:
		sub := branch.AddBranch(label)
		addFields(sub, x)
	case []any:
		sub := branch.AddBranch(label)
		for i, item := range x {
			addNode(sub, fmt.Sprintf("[%d]", i), item)
		}
	default:
		branch.AddNode(fmt.Sprintf("%s: %v", label, v))
	}
}
