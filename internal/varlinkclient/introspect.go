package varlinkclient

import (
	"fmt"

	"vsh/internal/idl"
	"vsh/internal/record"
)

// GetInfo calls the well-known org.varlink.service.GetInfo method and
// returns the list of interface names it advertises.
func (c *Client) GetInfo() ([]string, error) {
	replies, err := c.Call("org.varlink.service.GetInfo", nil)
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 {
		return nil, fmt.Errorf("varlinkclient: GetInfo returned no reply")
	}
	reply := replies[0]
	if reply.Error != "" {
		return nil, fmt.Errorf("varlinkclient: GetInfo: %s", reply.Error)
	}
	v, ok := reply.Parameters.Get("interfaces")
	if !ok || v.Kind() != record.KindList {
		return nil, fmt.Errorf("varlinkclient: GetInfo reply missing interfaces list")
	}
	names := make([]string, 0, len(v.List()))
	for _, e := range v.List() {
		if e.Kind() == record.KindString {
			names = append(names, e.Str())
		}
	}
	return names, nil
}

// GetInterfaceDescription calls org.varlink.service.GetInterfaceDescription
// for the named interface and parses the returned IDL text.
func (c *Client) GetInterfaceDescription(name string) (*idl.Interface, error) {
	params := record.New()
	params.Set("interface", record.String(name))
	replies, err := c.Call("org.varlink.service.GetInterfaceDescription", params)
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 {
		return nil, fmt.Errorf("varlinkclient: GetInterfaceDescription(%s) returned no reply", name)
	}
	reply := replies[0]
	if reply.Error != "" {
		return nil, fmt.Errorf("varlinkclient: GetInterfaceDescription(%s): %s", name, reply.Error)
	}
	v, ok := reply.Parameters.Get("description")
	if !ok || v.Kind() != record.KindString {
		return nil, fmt.Errorf("varlinkclient: GetInterfaceDescription(%s) reply missing description", name)
	}
	return idl.Parse(v.Str())
}

// ResolveMethod finds which interface among the peer's advertised
// interfaces defines the given unqualified method name. It returns an
// error if none does or if more than one does.
func (c *Client) ResolveMethod(method string) (string, error) {
	names, err := c.GetInfo()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, n := range names {
		if n == "org.varlink.service" {
			continue
		}
		desc, err := c.GetInterfaceDescription(n)
		if err != nil {
			continue
		}
		if _, ok := desc.Method(method); ok {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("varlinkclient: no interface defines method %q", method)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("varlinkclient: method %q is ambiguous across interfaces %v", method, matches)
	}
}
