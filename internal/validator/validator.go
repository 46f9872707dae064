package validator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// ErrUnreachable marks a node that no path from the start node visits.
var ErrUnreachable = errors.New("unreachable node")

// ErrDeadEnd marks a choice node without options, which strands the player.
var ErrDeadEnd = errors.New("choice without options")

// Issue is one finding of Lint.
type Issue struct {
	NodeID string
	Err    error
	// Fatal issues break a conversation at runtime; the rest are style problems.
	Fatal bool
}

func (i Issue) Error() string {
	var gerr *domain.GraphError
	if i.NodeID == "" || errors.As(i.Err, &gerr) {
		return i.Err.Error()
	}
	return fmt.Sprintf("node %q: %v", i.NodeID, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }

// Lint inspects a built tree. Besides the referential checks of domain.Validate it reports
// nodes unreachable from the start, choice nodes without options and unknown speakers.
func Lint(tree *domain.Tree) []Issue {
	var issues []Issue

	if err := domain.Validate(tree.Start(), tree.Speakers(), tree.Nodes()); err != nil {
		for _, e := range flatten(err) {
			issue := Issue{Err: e, Fatal: true}
			var gerr *domain.GraphError
			if errors.As(e, &gerr) {
				issue.NodeID = gerr.NodeID
			}
			issues = append(issues, issue)
		}
	}

	visited := make(map[string]bool, tree.Len())
	queue := []string{tree.Start()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		node, ok := tree.Node(id)
		if !ok {
			continue
		}
		for _, target := range node.Targets() {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	for _, node := range tree.Nodes() {
		if !visited[node.ID] {
			issues = append(issues, Issue{NodeID: node.ID, Err: ErrUnreachable})
		}
		if node.Type == domain.NodeTypeChoice && len(node.Choices) == 0 {
			issues = append(issues, Issue{NodeID: node.ID, Err: ErrDeadEnd})
		}
		if node.Type == domain.NodeTypeText && node.Speaker != "" {
			if _, ok := tree.Speaker(node.Speaker); !ok {
				issues = append(issues, Issue{
					NodeID: node.ID,
					Err:    fmt.Errorf("%w %q", domain.ErrUnknownSpeaker, node.Speaker),
				})
			}
		}
	}
	return issues
}

// HasFatal reports whether any issue breaks the conversation.
func HasFatal(issues []Issue) bool {
	return slices.ContainsFunc(issues, func(i Issue) bool { return i.Fatal })
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
