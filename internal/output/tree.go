package output

import (
	"fmt"
	"strings"

	"github.com/marcus/shopdesk/internal/models"
)

// TreeNode represents a node in the catalog tree: a product with its reviews
// as children
type TreeNode struct {
	ID       string
	Label    string
	Status   string
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowStatus bool // Whether to show the status badge and mark
}

// statusMark returns a status indicator symbol
func statusMark(status string) string {
	switch status {
	case string(models.ReviewPublished), string(models.TicketSolved):
		return " ✓" // ✓
	case string(models.ReviewPending):
		return " ⧗" // ⧗
	case string(models.ReviewRejected):
		return " ✗" // ✗
	case string(models.ProductDiscontinued):
		return " ✗"
	default:
		return ""
	}
}

// RenderTree renders a tree starting from a single root node.
// Returns the complete tree as a string (without the root, just children).
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines.
// Useful for embedding trees in other output.
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── " // ├──
		if isLast {
			connector = "└── " // └──
		}

		var parts []string
		parts = append(parts, node.ID+":")
		parts = append(parts, node.Label)
		if opts.ShowStatus && node.Status != "" {
			parts = append(parts, "["+node.Status+"]"+statusMark(node.Status))
		}

		line := prefix + connector + strings.Join(parts, " ")
		lines = append(lines, line)

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   " // │
		}

		childLines := renderTreeNodes(node.Children, opts, depth+1, childPrefix)
		lines = append(lines, childLines...)
	}

	return lines
}

// ProductTree builds tree nodes for products with their reviews as children
func ProductTree(products []models.Product, reviewsByProduct map[string][]models.Review) []TreeNode {
	nodes := make([]TreeNode, 0, len(products))
	for _, p := range products {
		node := TreeNode{
			ID:     p.ID,
			Label:  fmt.Sprintf("%s %s", p.SKU, p.Name),
			Status: string(p.Status),
		}
		for _, r := range reviewsByProduct[p.ID] {
			node.Children = append(node.Children, TreeNode{
				ID:     r.ID,
				Label:  fmt.Sprintf("%s (%d/5)", r.Author, r.Rating),
				Status: string(r.Status),
			})
		}
		nodes = append(nodes, node)
	}
	return nodes
}
