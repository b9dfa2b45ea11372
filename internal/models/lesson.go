package models

import (
	"encoding/json"
	"fmt"
)

type Lesson struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
}

// Section titles are not unique; navigation identifies sections by index.
type Section struct {
	Title   string `json:"title"`
	Content Blocks `json:"content"`
}

type BlockType string

const (
	BlockText    BlockType = "text"
	BlockList    BlockType = "list"
	BlockHeading BlockType = "heading"
	BlockCode    BlockType = "code"
)

const (
	HeadingDo   = "do"
	HeadingDont = "dont"
)

// Block is one unit of lesson content. The set of implementations is closed
// to this package.
type Block interface {
	Type() BlockType
	isBlock()
}

type TextBlock struct {
	Content string `json:"content"`
}

type ListBlock struct {
	Items []string `json:"items"`
}

type HeadingBlock struct {
	Content string `json:"content"`
	Variant string `json:"variant,omitempty"`
}

type CodeBlock struct {
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

// UnknownBlock keeps a block whose type this version does not understand so
// documents round-trip unchanged. Renderers skip it.
type UnknownBlock struct {
	Kind string
	Raw  json.RawMessage
}

func (TextBlock) Type() BlockType      { return BlockText }
func (ListBlock) Type() BlockType      { return BlockList }
func (HeadingBlock) Type() BlockType   { return BlockHeading }
func (CodeBlock) Type() BlockType      { return BlockCode }
func (b UnknownBlock) Type() BlockType { return BlockType(b.Kind) }

func (TextBlock) isBlock()    {}
func (ListBlock) isBlock()    {}
func (HeadingBlock) isBlock() {}
func (CodeBlock) isBlock()    {}
func (UnknownBlock) isBlock() {}

func (b TextBlock) MarshalJSON() ([]byte, error) {
	type plain TextBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		plain
	}{BlockText, plain(b)})
}

func (b ListBlock) MarshalJSON() ([]byte, error) {
	type plain ListBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		plain
	}{BlockList, plain(b)})
}

func (b HeadingBlock) MarshalJSON() ([]byte, error) {
	type plain HeadingBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		plain
	}{BlockHeading, plain(b)})
}

func (b CodeBlock) MarshalJSON() ([]byte, error) {
	type plain CodeBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		plain
	}{BlockCode, plain(b)})
}

func (b UnknownBlock) MarshalJSON() ([]byte, error) {
	if len(b.Raw) > 0 {
		return b.Raw, nil
	}
	return json.Marshal(map[string]string{"type": b.Kind})
}

// Blocks decodes the tagged union by its "type" field.
type Blocks []Block

func (bs *Blocks) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Blocks, 0, len(raws))
	for i, raw := range raws {
		b, err := decodeBlock(raw)
		if err != nil {
			return fmt.Errorf("content block %d: %w", i, err)
		}
		out = append(out, b)
	}
	*bs = out
	return nil
}

func decodeBlock(raw json.RawMessage) (Block, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	switch BlockType(head.Type) {
	case BlockText:
		var b TextBlock
		err := json.Unmarshal(raw, &b)
		return b, err
	case BlockList:
		var b ListBlock
		err := json.Unmarshal(raw, &b)
		return b, err
	case BlockHeading:
		var b HeadingBlock
		err := json.Unmarshal(raw, &b)
		return b, err
	case BlockCode:
		var b CodeBlock
		err := json.Unmarshal(raw, &b)
		return b, err
	default:
		return UnknownBlock{Kind: head.Type, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}
