package graph

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Overlay marks the progress of a run on the rendered graph.
type Overlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart for a dialogue tree.
// Shapes follow the node kind:
//   - start node: ((circle))
//   - choice: {rhombus}
//   - end: ([stadium])
//   - text: [rectangle]
//
// Choice edges are labelled with the option number and any variable deltas.
// References to missing nodes are drawn and styled as missing.
func GenerateMermaid(tree *domain.Tree, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if tree == nil {
		return sb.String()
	}

	known := make(map[string]bool, tree.Len())
	for _, n := range tree.Nodes() {
		known[n.ID] = true
	}
	missing := make(map[string]bool)

	for _, node := range tree.Nodes() {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == tree.Start():
			opener, closer = "((", "))"
		case node.Type == domain.NodeTypeChoice:
			opener, closer = "{", "}"
		case node.Type == domain.NodeTypeEnd:
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label(tree, node), closer)

		switch node.Type {
		case domain.NodeTypeText:
			if node.Next != "" {
				fmt.Fprintf(&sb, "    %s --> %s\n", safeID, sanitizeMermaidID(node.Next))
				if !known[node.Next] {
					missing[node.Next] = true
				}
			}
		case domain.NodeTypeChoice:
			for i, c := range node.Choices {
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, edgeLabel(i, c), sanitizeMermaidID(c.Target))
				if !known[c.Target] {
					missing[c.Target] = true
				}
			}
		}
	}

	if len(missing) > 0 {
		sb.WriteString("\n    classDef missing fill:#ffcdd2,stroke:#b71c1c,stroke-dasharray:4,color:#000;\n")
		for _, id := range slices.Sorted(maps.Keys(missing)) {
			fmt.Fprintf(&sb, "    class %s missing;\n", sanitizeMermaidID(id))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on light fills under both themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if safeID == "" || seen[safeID] {
				continue
			}
			seen[safeID] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
		}
		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func label(tree *domain.Tree, n domain.Node) string {
	text := n.ID
	if n.Type == domain.NodeTypeText && n.Speaker != "" {
		who := n.Speaker
		if s, ok := tree.Speaker(n.Speaker); ok && s.DisplayName != "" {
			who = s.DisplayName
		}
		text += " <br/> " + escape(who)
	}
	return text
}

func edgeLabel(i int, c domain.ChoiceOption) string {
	parts := []string{fmt.Sprintf("%d. %s", i+1, escape(truncate(c.Text, 24)))}
	for _, k := range slices.Sorted(maps.Keys(c.Deltas)) {
		parts = append(parts, fmt.Sprintf("%s %+d", k, c.Deltas[k]))
	}
	return strings.Join(parts, " <br/> ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
	// "end" is a Mermaid keyword.
	if strings.EqualFold(s, "end") {
		s += "_"
	}
	return s
}
