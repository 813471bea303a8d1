package girder

import "github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"

// ResolveNodes walks a girder's ordered element list and returns the node
// sequence from one physical end of the girder to the other. The configured
// element order is trusted; each step only verifies that the next element
// connects to the chain tail. An element stored with reversed orientation
// (its J node touching the chain) is followed backwards without modifying
// the element itself.
//
// The returned sequence always has len(g.Elements)+1 nodes. A consecutive
// pair of elements that shares no node makes the girder definition
// malformed and yields a MalformedGirderError naming the element.
func ResolveNodes(g Girder, conn model.ConnectivityTable) ([]model.NodeID, error) {
	if len(g.Elements) == 0 {
		return nil, &MalformedGirderError{Girder: g.Name, Reason: "empty element list"}
	}

	first, err := conn.Connectivity(g.Elements[0])
	if err != nil {
		return nil, err
	}
	if len(g.Elements) == 1 {
		return []model.NodeID{first.I, first.J}, nil
	}

	// Orient the first element so that its far node touches the second.
	second, err := conn.Connectivity(g.Elements[1])
	if err != nil {
		return nil, err
	}
	head, tail := first.I, first.J
	if !touches(second, tail) {
		head, tail = tail, head
		if !touches(second, tail) {
			return nil, &MalformedGirderError{
				Girder:  g.Name,
				Element: g.Elements[1],
				Reason:  "does not share a node with the previous element",
			}
		}
	}

	nodes := make([]model.NodeID, 0, len(g.Elements)+1)
	nodes = append(nodes, head, tail)

	prev := tail
	for _, eid := range g.Elements[1:] {
		c, err := conn.Connectivity(eid)
		if err != nil {
			return nil, err
		}
		var next model.NodeID
		switch prev {
		case c.I:
			next = c.J
		case c.J:
			next = c.I
		default:
			return nil, &MalformedGirderError{
				Girder:  g.Name,
				Element: eid,
				Reason:  "does not share a node with the previous element",
			}
		}
		nodes = append(nodes, next)
		prev = next
	}

	return nodes, nil
}

func touches(c model.Connectivity, n model.NodeID) bool {
	return c.I == n || c.J == n
}
