// Package yamlgenerator renders models as commented YAML documents.
package yamlgenerator

import (
	"bytes"
	"fmt"

	"github.com/uelms/dbsetup/pkg/fsutil"
	"github.com/uelms/dbsetup/pkg/io/generator"
	"gopkg.in/yaml.v3"
)

const indent = 2

// Options controls rendering and where the document is written.
type Options struct {
	// Output is the destination file. Empty means render only.
	Output string
	// Force overwrites an existing Output.
	Force bool
	// HeadComment is placed above the first key of the document.
	HeadComment string
	// FieldComments maps top-level keys to the comment shown above them.
	FieldComments map[string]string
}

// Generator renders T as YAML.
type Generator[T any] struct{}

// Compile-time interface compliance verification.
var _ generator.Generator[any, Options] = (*Generator[any])(nil)

// NewGenerator creates a YAML generator for T.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{}
}

// Generate renders model and writes it to opts.Output when set.
func (g *Generator[T]) Generate(model T, opts Options) (string, error) {
	var doc yaml.Node

	err := doc.Encode(model)
	if err != nil {
		return "", fmt.Errorf("encode model: %w", err)
	}

	annotate(&doc, opts)

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)

	err = encoder.Encode(&doc)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return "", fmt.Errorf("flush yaml: %w", err)
	}

	content := buf.String()

	if opts.Output == "" {
		return content, nil
	}

	err = fsutil.WriteFile(content, opts.Output, opts.Force)
	if err != nil {
		return "", fmt.Errorf("write %s: %w", opts.Output, err)
	}

	return content, nil
}

// annotate attaches comments to a mapping node produced by Encode.
func annotate(doc *yaml.Node, opts Options) {
	if doc.Kind != yaml.MappingNode {
		doc.HeadComment = opts.HeadComment

		return
	}

	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]

		comment := opts.FieldComments[key.Value]
		if i == 0 && opts.HeadComment != "" {
			if comment != "" {
				comment = opts.HeadComment + "\n\n" + comment
			} else {
				comment = opts.HeadComment
			}
		}

		key.HeadComment = comment
	}
}
