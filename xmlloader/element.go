// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xmlloader

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Attr is one element attribute with its resolved namespace URI.
// Unqualified attributes have an empty Space.
type Attr struct {
	Space string
	Local string
	Value string
}

// Element is a parsed XML element: resolved namespace URI, local name,
// attributes, direct element children in document order, and the text
// directly under the element. The loader only needs this minimal view, so
// any XML parser able to resolve namespaces could produce it.
type Element struct {
	Space    string
	Local    string
	Attrs    []Attr
	Children []*Element

	text strings.Builder
}

// Text returns the element's direct text content with surrounding
// whitespace trimmed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.text.String())
}

// Attribute returns the value of an unqualified attribute, or "".
func (e *Element) Attribute(name string) string {
	for _, a := range e.Attrs {
		if a.Space == "" && a.Local == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether an unqualified attribute is present.
func (e *Element) HasAttribute(name string) bool {
	for _, a := range e.Attrs {
		if a.Space == "" && a.Local == name {
			return true
		}
	}
	return false
}

// AttributeNS returns the value of a namespace-qualified attribute, or "".
func (e *Element) AttributeNS(space, local string) string {
	for _, a := range e.Attrs {
		if a.Space == space && a.Local == local {
			return a.Value
		}
	}
	return ""
}

// ParseDocument reads an XML document into an element tree and returns its
// root element. Namespace prefixes are resolved to URIs by the decoder;
// namespace declaration attributes themselves are dropped.
func ParseDocument(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Space: t.Name.Space, Local: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}
