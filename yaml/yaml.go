// Package yaml reads and writes stylesheet resources as YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fwojciec/mdview"
	"gopkg.in/yaml.v3"
)

// envelope is the v1 file format for a stylesheet.
type envelope struct {
	Version int                `yaml:"version"`
	Name    string             `yaml:"name,omitempty"`
	Rules   map[string]ruleDTO `yaml:"rules"`
}

type ruleDTO struct {
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Faint        bool   `yaml:"faint,omitempty"`
	PaddingLeft  int    `yaml:"padding_left,omitempty"`
	MarginBottom int    `yaml:"margin_bottom,omitempty"`
	BorderLeft   bool   `yaml:"border_left,omitempty"`
}

// UnmarshalStylesheet parses a v1 stylesheet. Unknown keys are rejected
// so typos surface instead of silently doing nothing.
func UnmarshalStylesheet(data []byte) (*mdview.Stylesheet, error) {
	var env envelope
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal stylesheet: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported stylesheet version: %d", env.Version)
	}
	sheet := &mdview.Stylesheet{Name: env.Name, Rules: make(map[string]mdview.Rule, len(env.Rules))}
	for class, dto := range env.Rules {
		if !strings.HasPrefix(class, "mdv-") {
			return nil, fmt.Errorf("rule %q: class must start with mdv-", class)
		}
		if dto.PaddingLeft < 0 || dto.MarginBottom < 0 {
			return nil, fmt.Errorf("rule %q: spacing must be non-negative", class)
		}
		sheet.Rules[class] = mdview.Rule(dto)
	}
	return sheet, nil
}

// MarshalStylesheet serializes a stylesheet in v1 format with classes in
// sorted order.
func MarshalStylesheet(s *mdview.Stylesheet) ([]byte, error) {
	classes := make([]string, 0, len(s.Rules))
	for class := range s.Rules {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	// Build the mapping node by hand to keep the class order stable.
	rules := &yaml.Node{Kind: yaml.MappingNode}
	for _, class := range classes {
		var value yaml.Node
		if err := value.Encode(ruleDTO(s.Rules[class])); err != nil {
			return nil, fmt.Errorf("rule %q: %w", class, err)
		}
		rules.Content = append(rules.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: class}, &value)
	}
	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "version"}, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: "1"},
	)
	if s.Name != "" {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "name"}, &yaml.Node{Kind: yaml.ScalarNode, Value: s.Name},
		)
	}
	doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "rules"}, rules)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshal stylesheet: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal stylesheet: %w", err)
	}
	return buf.Bytes(), nil
}
