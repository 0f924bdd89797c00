package tsp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// DataFileArchive is one entry of the package's data-file registry: the
// logical identifier an image/movie/3D-object record points at, and the two
// candidate filenames under Data/ that may back it.
type DataFileArchive struct {
	Identifier        *uint64
	PreferredFilename *string
	Filename          *string
}

func (d *DataFileArchive) GetIdentifier() uint64 {
	if d != nil && d.Identifier != nil {
		return *d.Identifier
	}
	return 0
}

func (d *DataFileArchive) GetPreferredFilename() string {
	if d != nil && d.PreferredFilename != nil {
		return *d.PreferredFilename
	}
	return ""
}

func (d *DataFileArchive) GetFilename() string {
	if d != nil && d.Filename != nil {
		return *d.Filename
	}
	return ""
}

func (d *DataFileArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			d.Identifier = pbdecode.Uint64Ptr(v)
			return n, nil
		case 2:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			d.PreferredFilename = pbdecode.StringPtr(string(v))
			return n, nil
		case 3:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			d.Filename = pbdecode.StringPtr(string(v))
			return n, nil
		}
		return 0, nil
	})
}

func (d *DataFileArchive) Marshal() []byte {
	var out []byte
	if d.Identifier != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, *d.Identifier)
	}
	if d.PreferredFilename != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendString(out, *d.PreferredFilename)
	}
	if d.Filename != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendString(out, *d.Filename)
	}
	return out
}

// ComponentArchive is one package component: a sub-document identified by a
// preferred locator string ("Slide", "Sheet", ...) used to enumerate the
// ordered record set for presentations.
type ComponentArchive struct {
	Identifier       *uint64
	PreferredLocator *string
}

func (c *ComponentArchive) GetIdentifier() uint64 {
	if c != nil && c.Identifier != nil {
		return *c.Identifier
	}
	return 0
}

func (c *ComponentArchive) GetPreferredLocator() string {
	if c != nil && c.PreferredLocator != nil {
		return *c.PreferredLocator
	}
	return ""
}

func (c *ComponentArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			c.Identifier = pbdecode.Uint64Ptr(v)
			return n, nil
		case 2:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			c.PreferredLocator = pbdecode.StringPtr(string(v))
			return n, nil
		}
		return 0, nil
	})
}

func (c *ComponentArchive) Marshal() []byte {
	var out []byte
	if c.Identifier != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, *c.Identifier)
	}
	if c.PreferredLocator != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendString(out, *c.PreferredLocator)
	}
	return out
}

// PropertyArchive is one package-level metadata key/value pair.
type PropertyArchive struct {
	Key   *string
	Value *string
}

func (p *PropertyArchive) GetKey() string {
	if p != nil && p.Key != nil {
		return *p.Key
	}
	return ""
}

func (p *PropertyArchive) GetValue() string {
	if p != nil && p.Value != nil {
		return *p.Value
	}
	return ""
}

func (p *PropertyArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			p.Key = pbdecode.StringPtr(string(v))
			return n, nil
		case 2:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			p.Value = pbdecode.StringPtr(string(v))
			return n, nil
		}
		return 0, nil
	})
}

func (p *PropertyArchive) Marshal() []byte {
	var out []byte
	if p.Key != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendString(out, *p.Key)
	}
	if p.Value != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendString(out, *p.Value)
	}
	return out
}

// MetadataArchive is the package's top-level metadata record: the data-file
// registry, component list, and arbitrary property bag.
type MetadataArchive struct {
	DataFiles  []*DataFileArchive
	Components []*ComponentArchive
	Properties []*PropertyArchive
}

func (m *MetadataArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			d := &DataFileArchive{}
			if err := d.Unmarshal(raw); err != nil {
				return 0, err
			}
			m.DataFiles = append(m.DataFiles, d)
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			c := &ComponentArchive{}
			if err := c.Unmarshal(raw); err != nil {
				return 0, err
			}
			m.Components = append(m.Components, c)
			return n, nil
		case 3:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			p := &PropertyArchive{}
			if err := p.Unmarshal(raw); err != nil {
				return 0, err
			}
			m.Properties = append(m.Properties, p)
			return n, nil
		}
		return 0, nil
	})
}

func (m *MetadataArchive) Marshal() []byte {
	var out []byte
	for _, d := range m.DataFiles {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, d.Marshal())
	}
	for _, c := range m.Components {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, c.Marshal())
	}
	for _, p := range m.Properties {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, p.Marshal())
	}
	return out
}
