package sim

import "github.com/quadroom/vscene/node"

// BindableCategory identifies one of the four bindable-node kinds whose
// activation is managed via a LIFO stack (spec.md §4.H, glossary).
type BindableCategory int

const (
	Viewpoint BindableCategory = iota
	NavigationInfo
	Background
	Fog
	numBindableCategories
)

// bindableStack is a LIFO stack of bound nodes that nonetheless permits
// removal from the middle (spec.md §4.H): set_bind true pushes and
// notifies the old/new top via is_bound events; set_bind false removes
// the node from wherever it sits, re-notifying the new top only if the
// removed node was on top.
type bindableStack struct {
	nodes []*node.Node
}

// Bind pushes n to the top of the stack. If n is already present it is
// first removed (re-binding moves it to the top). Returns the node that
// lost the top position (nil if none) and the node that gained it.
func (s *bindableStack) Bind(n *node.Node) (lostTop, gainedTop *node.Node) {
	prevTop := s.top()
	s.remove(n)
	s.nodes = append(s.nodes, n)
	if prevTop != n {
		lostTop = prevTop
	}
	gainedTop = n
	return
}

// Unbind removes n from the stack, wherever it sits. If n was on top,
// gainedTop reports the node that becomes the new top (nil if the stack
// is now empty).
func (s *bindableStack) Unbind(n *node.Node) (wasTop bool, gainedTop *node.Node) {
	prevTop := s.top()
	if !s.remove(n) {
		return false, nil
	}
	wasTop = prevTop == n
	if wasTop {
		gainedTop = s.top()
	}
	return
}

func (s *bindableStack) top() *node.Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}

func (s *bindableStack) remove(n *node.Node) bool {
	for i, cur := range s.nodes {
		if cur == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// Top returns the currently bound node for category, or nil.
func (s *Simulator) Top(category BindableCategory) *node.Node {
	return s.bindables[category].top()
}
