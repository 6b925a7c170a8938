package tree

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// JSON bridge errors.
var (
	// ErrInvalidJSON indicates the input is not a valid JSON document.
	ErrInvalidJSON = errors.New("invalid JSON document")

	// ErrUnsupportedKind indicates a node kind outside the JSON kind set.
	ErrUnsupportedKind = errors.New("node kind has no JSON form")
)

// FromJSON decodes an arbitrary JSON document into a tree. Arrays and
// objects become branches (an empty container is an empty branch, not a
// leaf); scalars become leaves. Object members carry their key in the
// PropKey property.
func FromJSON(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(result gjson.Result) *Node {
	switch {
	case result.IsArray():
		children := []*Node{}

		for _, item := range result.Array() {
			children = append(children, fromResult(item))
		}

		return NewBranch(KindArray, children...)
	case result.IsObject():
		children := []*Node{}

		result.ForEach(func(key, value gjson.Result) bool {
			children = append(children, fromResult(value).WithProp(PropKey, key.String()))

			return true
		})

		return NewBranch(KindObject, children...)
	default:
		return fromScalar(result)
	}
}

func fromScalar(result gjson.Result) *Node {
	switch result.Type {
	case gjson.String:
		return NewLeaf(KindString, result.Str)
	case gjson.Number:
		// Raw text preserves the document's number formatting.
		return NewLeaf(KindNumber, result.Raw)
	case gjson.True:
		return NewLeaf(KindBool, "true")
	case gjson.False:
		return NewLeaf(KindBool, "false")
	case gjson.Null, gjson.JSON:
		return NewLeaf(KindNull, "null")
	default:
		return NewLeaf(KindNull, "null")
	}
}

// ToJSON serializes a tree decoded by FromJSON (or built from the JSON
// kind set) back to JSON text. Fails with ErrUnsupportedKind for nodes
// outside that set.
func ToJSON(targetNode *Node) ([]byte, error) {
	var buf strings.Builder

	err := writeJSON(&buf, targetNode)
	if err != nil {
		return nil, err
	}

	return []byte(buf.String()), nil
}

func writeJSON(buf *strings.Builder, targetNode *Node) error {
	switch targetNode.Kind {
	case KindArray:
		return writeJSONArray(buf, targetNode)
	case KindObject:
		return writeJSONObject(buf, targetNode)
	case KindString:
		return writeJSONString(buf, targetNode.Value)
	case KindNumber, KindBool, KindNull:
		buf.WriteString(targetNode.Value)

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, targetNode.Kind)
	}
}

func writeJSONArray(buf *strings.Builder, targetNode *Node) error {
	buf.WriteByte('[')

	for idx, child := range targetNode.Children {
		if idx > 0 {
			buf.WriteByte(',')
		}

		err := writeJSON(buf, child)
		if err != nil {
			return err
		}
	}

	buf.WriteByte(']')

	return nil
}

func writeJSONObject(buf *strings.Builder, targetNode *Node) error {
	buf.WriteByte('{')

	for idx, child := range targetNode.Children {
		if idx > 0 {
			buf.WriteByte(',')
		}

		err := writeJSONString(buf, child.Prop(PropKey))
		if err != nil {
			return err
		}

		buf.WriteByte(':')

		err = writeJSON(buf, child)
		if err != nil {
			return err
		}
	}

	buf.WriteByte('}')

	return nil
}

func writeJSONString(buf *strings.Builder, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode string: %w", err)
	}

	buf.Write(encoded)

	return nil
}
