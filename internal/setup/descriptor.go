package setup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kindling-dev/kindling/internal/config"
	"github.com/kindling-dev/kindling/internal/errors"
)

// UpdateDescriptor personalizes the project descriptor at root. The
// name is set unconditionally; description and author only when
// non-empty, so blank input never clears an existing value. All other
// keys, their order, and their comments are preserved by editing the
// yaml node tree in place rather than round-tripping through a struct.
func UpdateDescriptor(root string, input SetupInput) error {
	path := filepath.Join(root, config.DescriptorFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO(err, errors.ErrCodeDescriptorRead,
			"failed to read project descriptor").WithPath(path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.WrapIO(err, errors.ErrCodeDescriptorParse,
			"failed to parse project descriptor").WithPath(path)
	}

	mapping, err := documentMapping(&doc)
	if err != nil {
		return errors.WrapIO(err, errors.ErrCodeDescriptorParse,
			"failed to parse project descriptor").WithPath(path)
	}

	setMappingValue(mapping, "name", input.ProjectName)
	if input.Description != "" {
		setMappingValue(mapping, "description", input.Description)
	}
	if input.Author != "" {
		setMappingValue(mapping, "author", input.Author)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.WrapIO(err, errors.ErrCodeDescriptorWrite,
			"failed to serialize project descriptor").WithPath(path)
	}
	if err := enc.Close(); err != nil {
		return errors.WrapIO(err, errors.ErrCodeDescriptorWrite,
			"failed to serialize project descriptor").WithPath(path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.WrapIO(err, errors.ErrCodeDescriptorWrite,
			"failed to write project descriptor").WithPath(path)
	}

	return nil
}

// documentMapping unwraps a parsed document down to its root mapping,
// creating one for an empty file.
func documentMapping(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		doc.Kind = yaml.DocumentNode
		doc.Content = []*yaml.Node{mapping}
		return mapping, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("descriptor root must be a mapping, got %s", nodeKind(root))
	}

	return root, nil
}

// setMappingValue updates the value for key in a mapping node, or
// appends the pair when the key is absent.
func setMappingValue(mapping *yaml.Node, key, value string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			valueNode := mapping.Content[i+1]
			valueNode.Kind = yaml.ScalarNode
			valueNode.Tag = "!!str"
			valueNode.Value = value
			valueNode.Content = nil
			return
		}
	}

	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
