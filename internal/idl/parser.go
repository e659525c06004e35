package idl

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

var (
	reInterface = regexp.MustCompile(`^interface\s+([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)\s*$`)
	reMethod    = regexp.MustCompile(`^method\s+([A-Za-z0-9_]+)\s*\(([^)]*)\)\s*->\s*\(([^)]*)\)\s*$`)
	reType      = regexp.MustCompile(`^type\s+([A-Za-z0-9_]+)\s*\(([^)]*)\)\s*$`)
	reError     = regexp.MustCompile(`^error\s+([A-Za-z0-9_]+)\s*\(([^)]*)\)\s*$`)
	reField     = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*:\s*(\[string\])?\s*([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)(\[\])?(\?)?$`)
)

var scalarKinds = map[string]bool{
	"bool": true, "int": true, "float": true, "string": true, "object": true,
}

// Parse parses a complete interface description document.
func Parse(src string) (*Interface, error) {
	scanner := bufio.NewScanner(strings.NewReader(src))

	iface := &Interface{}
	var pendingDoc []string
	haveHeader := false

	flushDoc := func() string {
		if len(pendingDoc) == 0 {
			return ""
		}
		doc := strings.Join(pendingDoc, "\n")
		pendingDoc = nil
		return doc
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			pendingDoc = append(pendingDoc, strings.TrimSpace(strings.TrimPrefix(line, "#")))
			continue
		}

		switch {
		case reInterface.MatchString(line):
			if haveHeader {
				return nil, fmt.Errorf("idl: line %d: duplicate interface declaration", lineNo)
			}
			m := reInterface.FindStringSubmatch(line)
			iface.Name = m[1]
			iface.Doc = flushDoc()
			haveHeader = true

		case reMethod.MatchString(line):
			m := reMethod.FindStringSubmatch(line)
			in, err := parseFields(m[2])
			if err != nil {
				return nil, fmt.Errorf("idl: line %d: method %s input: %w", lineNo, m[1], err)
			}
			out, err := parseFields(m[3])
			if err != nil {
				return nil, fmt.Errorf("idl: line %d: method %s output: %w", lineNo, m[1], err)
			}
			iface.Members = append(iface.Members, Member{
				Kind: MemberMethod,
				Doc:  flushDoc(),
				Name: m[1],
				In:   in,
				Out:  out,
			})

		case reType.MatchString(line):
			m := reType.FindStringSubmatch(line)
			fields, err := parseFields(m[2])
			if err != nil {
				return nil, fmt.Errorf("idl: line %d: type %s: %w", lineNo, m[1], err)
			}
			iface.Members = append(iface.Members, Member{
				Kind:   MemberType,
				Doc:    flushDoc(),
				Name:   m[1],
				Fields: fields,
			})

		case reError.MatchString(line):
			m := reError.FindStringSubmatch(line)
			fields, err := parseFields(m[2])
			if err != nil {
				return nil, fmt.Errorf("idl: line %d: error %s: %w", lineNo, m[1], err)
			}
			iface.Members = append(iface.Members, Member{
				Kind:   MemberError,
				Doc:    flushDoc(),
				Name:   m[1],
				Fields: fields,
			})

		default:
			return nil, fmt.Errorf("idl: line %d: unrecognised declaration: %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, fmt.Errorf("idl: missing interface declaration")
	}
	return iface, nil
}

func parseFields(body string) ([]Field, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	fields := make([]Field, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m := reField.FindStringSubmatch(p)
		if m == nil {
			return nil, fmt.Errorf("malformed field %q", p)
		}
		ft := FieldType{
			Map:      m[2] != "",
			List:     m[4] != "",
			Optional: m[5] != "",
		}
		if scalarKinds[m[3]] {
			ft.Scalar = m[3]
		} else {
			ft.TypeName = m[3]
		}
		fields = append(fields, Field{Name: m[1], Type: ft})
	}
	return fields, nil
}
