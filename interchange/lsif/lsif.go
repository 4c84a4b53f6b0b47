// Package lsif is the reference implementation for the L-System Interchange Format
package lsif

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Format is one YAML document: the axiom text, an optional eager
// iteration count and the rule lines, all in the textual grammar.
type Format struct {
	Axiom string   `yaml:"axiom"`
	Count int      `yaml:"count"`
	Rules []string `yaml:"rules"`
}

type Decoder struct {
	in          io.Reader
	yamlDecoder *yaml.Decoder
}

func NewDecoder(in io.Reader) *Decoder {
	return &Decoder{
		in:          in,
		yamlDecoder: yaml.NewDecoder(in),
	}
}

// Decode reads one Format per call, stopping at the yaml multi-document
// delimiter. It returns io.EOF once the stream is exhausted.
func (dec *Decoder) Decode() (*Format, error) {
	format := &Format{}
	err := dec.yamlDecoder.Decode(format)
	return format, err
}
