// SPDX-License-Identifier: MIT
// Package: truck/exchange
//
// document.go — the flat record model and its JSON entry points.

package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the document format revision this package reads and writes.
const Version = 1

// Sentinel errors. Branch with errors.Is.
var (
	// ErrVersion marks a document written by an incompatible revision.
	ErrVersion = errors.New("exchange: unsupported document version")

	// ErrMalformed marks a structurally broken document: an index out of
	// range, an empty boundary, a solid without shells.
	ErrMalformed = errors.New("exchange: malformed document")

	// ErrUnknownKind marks a GeomSpec whose kind the codec cannot decode.
	ErrUnknownKind = errors.New("exchange: unknown geometry kind")

	// ErrUnsupportedGeometry marks a curve or surface type the codec
	// cannot encode.
	ErrUnsupportedGeometry = errors.New("exchange: geometry type not encodable")
)

// GeomSpec is a tagged, codec-owned geometry payload.
type GeomSpec struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// VertexRec records one vertex.
type VertexRec struct {
	ID    string     `json:"id"`
	Point [3]float64 `json:"point"`
}

// EdgeRec records one edge core in its forward orientation. Degenerate
// edges collapse onto one vertex (Front == Back) and carry the marker.
type EdgeRec struct {
	ID         string   `json:"id"`
	Front      int      `json:"front"`
	Back       int      `json:"back"`
	Degenerate bool     `json:"degenerate,omitempty"`
	Curve      GeomSpec `json:"curve"`
}

// EdgeRef is an oriented reference to an edge record.
type EdgeRef struct {
	Edge    int  `json:"edge"`
	Forward bool `json:"forward"`
}

// WireRec records one boundary loop as oriented edge references. Wires
// are values, so they are stored inline on their face, never shared.
type WireRec struct {
	Edges []EdgeRef `json:"edges"`
}

// FaceRec records one face core in its forward orientation: a surface
// and its boundaries, outer loop first.
type FaceRec struct {
	ID      string    `json:"id"`
	Surface GeomSpec  `json:"surface"`
	Outer   WireRec   `json:"outer"`
	Inners  []WireRec `json:"inners,omitempty"`
}

// FaceRef is an oriented reference to a face record.
type FaceRef struct {
	Face    int  `json:"face"`
	Forward bool `json:"forward"`
}

// ShellRec records one shell as oriented face references.
type ShellRec struct {
	Faces []FaceRef `json:"faces"`
}

// SolidRec records one solid: the outer shell index plus void indices.
type SolidRec struct {
	Outer int   `json:"outer"`
	Voids []int `json:"voids,omitempty"`
}

// Document is a flat, index-linked record set holding any number of
// shells and solids over shared vertex/edge/face tables.
type Document struct {
	Version  int         `json:"version"`
	Vertices []VertexRec `json:"vertices"`
	Edges    []EdgeRec   `json:"edges"`
	Faces    []FaceRec   `json:"faces"`
	Shells   []ShellRec  `json:"shells"`
	Solids   []SolidRec  `json:"solids,omitempty"`
}

// NewDocument returns an empty document at the current version.
func NewDocument() *Document {
	return &Document{Version: Version}
}

// Marshal renders the document as indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses a document and checks its version.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("exchange: parse: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("document version %d, want %d: %w", doc.Version, Version, ErrVersion)
	}

	return &doc, nil
}
