package smi

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

// NodeID identifies an element within a Tree.
type NodeID int

// Document is the lookup capability extraction needs from a parsed report.
type Document interface {
	// Lookup returns the first element named name in document order.
	Lookup(name string) (NodeID, error)
	// LookupChild returns the first direct child of parent named name.
	LookupChild(parent NodeID, name string) (NodeID, error)
	// Text returns the element's character data with surrounding whitespace
	// removed. Text split by child elements is concatenated, so <b>x<c/>y</b>
	// yields "xy".
	Text(id NodeID) (string, error)
}

// Node is a hand-buildable XML element.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

type treeNode struct {
	name     string
	text     string
	children []NodeID
}

// Tree is an immutable, pre-order flattened element tree.
type Tree struct {
	nodes []treeNode
}

var _ Document = (*Tree)(nil)

// NewTree flattens root and its descendants into a Tree.
func NewTree(root *Node) *Tree {
	t := &Tree{}
	if root != nil {
		t.add(root)
	}
	return t
}

func (t *Tree) add(n *Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{name: n.Name, text: n.Text})
	for _, c := range n.Children {
		child := t.add(c)
		t.nodes[id].children = append(t.nodes[id].children, child)
	}
	return id
}

// ParseXML parses a well-formed XML document with a single root element.
func ParseXML(data []byte) (*Tree, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node
	var text []*strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeXMLParse, "malformed XML", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.NewWithContext(errors.ErrCodeXMLParse,
						"multiple root elements", map[string]any{"element": n.Name})
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			top := len(stack) - 1
			stack[top].Text = text[top].String()
			stack, text = stack[:top], text[:top]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, errors.New(errors.ErrCodeXMLParse, "content outside root element")
				}
				continue
			}
			text[len(text)-1].Write(t)
		}
	}

	if root == nil {
		return nil, errors.New(errors.ErrCodeXMLParse, "document has no root element")
	}

	return NewTree(root), nil
}

// Lookup implements Document.
func (t *Tree) Lookup(name string) (NodeID, error) {
	for i, n := range t.nodes {
		if n.name == name {
			return NodeID(i), nil
		}
	}
	return 0, fieldNotFound(name)
}

// LookupChild implements Document.
func (t *Tree) LookupChild(parent NodeID, name string) (NodeID, error) {
	p, err := t.node(parent)
	if err != nil {
		return 0, err
	}
	for _, c := range p.children {
		if t.nodes[c].name == name {
			return c, nil
		}
	}
	return 0, errors.NewWithContext(errors.ErrCodeFieldNotFound,
		fmt.Sprintf("no element %s under %s in the XML", name, p.name),
		map[string]any{"field": name, "parent": p.name})
}

// Text implements Document.
func (t *Tree) Text(id NodeID) (string, error) {
	n, err := t.node(id)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(n.text)
	if text == "" {
		return "", errors.NewWithContext(errors.ErrCodeEmptyField,
			fmt.Sprintf("element %s has no text", n.name),
			map[string]any{"field": n.name})
	}
	return text, nil
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) node(id NodeID) (*treeNode, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, errors.NewWithContext(errors.ErrCodeFieldNotFound,
			fmt.Sprintf("no node %d in the XML", id), map[string]any{"node": int(id)})
	}
	return &t.nodes[id], nil
}

func fieldNotFound(name string) error {
	return errors.NewWithContext(errors.ErrCodeFieldNotFound,
		fmt.Sprintf("no element %s in the XML", name),
		map[string]any{"field": name})
}
