package source

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/dialects/attrmap"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// XML element names.
const (
	xmlRoot    = "nuclear_data_table"
	xmlNuclide = "nuclide"
)

type xmlBlock struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlIsomer struct {
	Attrs    []xml.Attr `xml:",any,attr"`
	HalfLife *xmlBlock  `xml:"half_life"`
	Decays   []xmlBlock `xml:"decay_modes>decay"`
	Comment  string     `xml:"comment"`
}

type xmlNuclideElem struct {
	XMLName    xml.Name    `xml:"nuclide"`
	Z          string      `xml:"Z,attr"`
	A          string      `xml:"A,attr"`
	ID         string      `xml:"id,attr,omitempty"`
	Element    string      `xml:"element,attr,omitempty"`
	MassDefect *xmlBlock   `xml:"mass_defect"`
	HalfLife   *xmlBlock   `xml:"half_life"`
	Spin       *xmlBlock   `xml:"spin"`
	Decays     []xmlBlock  `xml:"decay_modes>decay"`
	Isomers    []xmlIsomer `xml:"isomers>isomer"`
	Comment    string      `xml:"comment"`
}

// ReadXML reads a nuclear_data_table document into attribute-map entries,
// one per nuclide element, in document order.
func ReadXML(r io.Reader, name string) ([]dialect.Entry, error) {
	dec := xml.NewDecoder(r)
	var entries []dialect.Entry
	sawRoot := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case xmlRoot:
			sawRoot = true
		case xmlNuclide:
			line, _ := dec.InputPos()
			var elem xmlNuclideElem
			if err := dec.DecodeElement(&elem, &start); err != nil {
				return nil, fmt.Errorf("reading %s: %w", name, err)
			}
			entries = append(entries, elem.entry(dialect.Position{Source: name, Line: line}))
		}
	}
	if !sawRoot {
		return nil, fmt.Errorf("reading %s: no <%s> element", name, xmlRoot)
	}
	return entries, nil
}

func (n xmlNuclideElem) entry(pos dialect.Position) dialect.Entry {
	e := dialect.Entry{
		Pos:     pos,
		Z:       n.Z,
		A:       n.A,
		Attrs:   make(map[string]dialect.Attributes, 3),
		Decays:  blocks(n.Decays),
		Comment: strings.TrimSpace(n.Comment),
	}
	setBlock(e.Attrs, attrmap.BlockMassDefect, n.MassDefect)
	setBlock(e.Attrs, attrmap.BlockHalfLife, n.HalfLife)
	setBlock(e.Attrs, attrmap.BlockSpin, n.Spin)

	for _, iso := range n.Isomers {
		ie := dialect.Entry{
			Pos:     pos,
			Attrs:   map[string]dialect.Attributes{attrmap.BlockIsomer: attributes(iso.Attrs)},
			Decays:  blocks(iso.Decays),
			Comment: strings.TrimSpace(iso.Comment),
		}
		setBlock(ie.Attrs, attrmap.BlockHalfLife, iso.HalfLife)
		e.Isomers = append(e.Isomers, ie)
	}
	return e
}

func setBlock(dst map[string]dialect.Attributes, key string, b *xmlBlock) {
	if b != nil {
		dst[key] = attributes(b.Attrs)
	}
}

func attributes(attrs []xml.Attr) dialect.Attributes {
	out := make(dialect.Attributes, len(attrs))
	for _, a := range attrs {
		out[a.Name.Local] = a.Value
	}
	return out
}

func blocks(bs []xmlBlock) []dialect.Attributes {
	out := make([]dialect.Attributes, 0, len(bs))
	for _, b := range bs {
		out = append(out, attributes(b.Attrs))
	}
	return out
}

// WriteXML writes records as a nuclear_data_table document. Attributes are
// written in name order so output is stable.
func WriteXML(w io.Writer, nuclides []*nuclide.Nuclide) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, n := range nuclides {
		if err := enc.Encode(element(n)); err != nil {
			return fmt.Errorf("writing %s: %w", n, err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(n *nuclide.Nuclide) xmlNuclideElem {
	e := attrmap.Entry(n)
	sym, _ := n.Element()
	elem := xmlNuclideElem{
		Z:          e.Z,
		A:          e.A,
		ID:         n.String(),
		Element:    sym,
		MassDefect: block(e.Attrs[attrmap.BlockMassDefect]),
		HalfLife:   block(e.Attrs[attrmap.BlockHalfLife]),
		Spin:       block(e.Attrs[attrmap.BlockSpin]),
		Decays:     xmlBlocks(e.Decays),
		Comment:    e.Comment,
	}
	for _, ie := range e.Isomers {
		elem.Isomers = append(elem.Isomers, xmlIsomer{
			Attrs:    xmlAttrs(ie.Attrs[attrmap.BlockIsomer]),
			HalfLife: block(ie.Attrs[attrmap.BlockHalfLife]),
			Decays:   xmlBlocks(ie.Decays),
			Comment:  ie.Comment,
		})
	}
	return elem
}

func block(attrs dialect.Attributes) *xmlBlock {
	if attrs == nil {
		return nil
	}
	return &xmlBlock{Attrs: xmlAttrs(attrs)}
}

func xmlBlocks(list []dialect.Attributes) []xmlBlock {
	out := make([]xmlBlock, 0, len(list))
	for _, attrs := range list {
		out = append(out, xmlBlock{Attrs: xmlAttrs(attrs)})
	}
	return out
}

func xmlAttrs(attrs dialect.Attributes) []xml.Attr {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]xml.Attr, 0, len(keys))
	for _, k := range keys {
		out = append(out, xml.Attr{Name: xml.Name{Local: k}, Value: attrs[k]})
	}
	return out
}
