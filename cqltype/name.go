package cqltype

import (
	"strings"

	"github.com/wippyai/cql-codec/errors"
)

// ParseTypeName parses CQL name notation into a Type, e.g. "int",
// "list<text>", "map<uuid, frozen<list<int>>>". frozen<> wrappers are
// transparent at the codec level and are unwrapped.
func ParseTypeName(s string) (*Type, error) {
	p := &nameParser{src: s}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.src) {
		return nil, badTypeName(s, "trailing characters")
	}
	return t, nil
}

type nameParser struct {
	src string
	pos int
}

func badTypeName(s, why string) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Detail("invalid type name %q: %s", s, why).
		Build()
}

func (p *nameParser) skipSpaces() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *nameParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '<' || c == '>' || c == ',' || c == ' ' {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *nameParser) expect(c byte) error {
	p.skipSpaces()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return badTypeName(p.src, "expected '"+string(c)+"'")
	}
	p.pos++
	return nil
}

func (p *nameParser) parse() (*Type, error) {
	p.skipSpaces()
	name := strings.ToLower(p.ident())

	switch name {
	case "frozen":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		inner, err := p.parse()
		if err != nil {
			return nil, err
		}
		return inner, p.expect('>')

	case "list", "set":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		if name == "list" {
			return ListOf(elem), nil
		}
		return SetOf(elem), nil

	case "map":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		key, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parse()
		if err != nil {
			return nil, err
		}
		return MapOf(key, value), p.expect('>')

	case "tuple":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		var elems []*Type
		for {
			elem, err := p.parse()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			p.skipSpaces()
			if p.pos < len(p.src) && p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
		return TupleOf(elems...), p.expect('>')

	case "ascii":
		return TypeAscii, nil
	case "bigint":
		return TypeBigInt, nil
	case "blob":
		return TypeBlob, nil
	case "boolean":
		return TypeBoolean, nil
	case "counter":
		return TypeCounter, nil
	case "decimal":
		return TypeDecimal, nil
	case "double":
		return TypeDouble, nil
	case "float":
		return TypeFloat, nil
	case "int":
		return TypeInt, nil
	case "text":
		return TypeText, nil
	case "timestamp":
		return TypeTimestamp, nil
	case "uuid":
		return TypeUUID, nil
	case "varchar":
		return TypeVarchar, nil
	case "varint":
		return TypeVarint, nil
	case "timeuuid":
		return TypeTimeUUID, nil
	case "inet":
		return TypeInet, nil
	case "date":
		return TypeDate, nil
	case "time":
		return TypeTime, nil
	case "smallint":
		return TypeSmallInt, nil
	case "tinyint":
		return TypeTinyInt, nil
	case "duration":
		return TypeDuration, nil
	default:
		if name == "" {
			return nil, badTypeName(p.src, "empty type name")
		}
		return nil, badTypeName(p.src, "unknown type "+name)
	}
}
