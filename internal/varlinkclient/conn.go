package varlinkclient

import (
	"bufio"
	"fmt"
	"net"

	"github.com/segmentio/encoding/json"

	"vsh/internal/record"
)

// Client holds one socket opened for a single "varlink" pipeline stage
// (opened on stage entry, closed on exit of that stage
// regardless of outcome).
type Client struct {
	conn net.Conn
	r    *bufio.Reader
}

// Open dials addr and returns a ready Client. The caller owns the
// returned Client and must Close it.
func Open(addr string) (*Client, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, r: bufio.NewReader(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

type callFrame struct {
	Method     string          `json:"method"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
	More       bool            `json:"more,omitempty"`
	Oneway     bool            `json:"oneway,omitempty"`
	Upgrade    bool            `json:"upgrade,omitempty"`
}

type replyFrame struct {
	Parameters json.RawMessage `json:"parameters,omitempty"`
	Error      string          `json:"error,omitempty"`
	Continues  *bool           `json:"continues,omitempty"`
}

// Reply is one decoded varlink reply.
type Reply struct {
	Parameters *record.Record
	Error      string
}

// writeFrame marshals v and writes it NUL-terminated to the wire.
func (c *Client) writeFrame(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, 0)
	_, err = c.conn.Write(data)
	return err
}

// readFrame reads one NUL-terminated JSON frame from the wire.
func (c *Client) readFrame() (replyFrame, error) {
	data, err := c.r.ReadBytes(0)
	if err != nil {
		return replyFrame{}, fmt.Errorf("varlinkclient: read: %w", err)
	}
	data = data[:len(data)-1]
	var rf replyFrame
	if err := json.Unmarshal(data, &rf); err != nil {
		return replyFrame{}, fmt.Errorf("varlinkclient: decode reply: %w", err)
	}
	return rf, nil
}

// decodeParams decodes a possibly-empty reply parameters field into a
// *Record, treating an absent field as an empty record rather than an
// error.
func decodeParams(raw json.RawMessage) (*record.Record, error) {
	if len(raw) == 0 {
		return record.New(), nil
	}
	return record.DecodeRecord(raw)
}

// Call issues method with params (may be nil), requesting streaming
// replies (more: true), and collects every reply until the peer sets
// continues: false or omits continues entirely.
func (c *Client) Call(method string, params *record.Record) ([]Reply, error) {
	var raw json.RawMessage
	if params != nil {
		data, err := record.RecordToJSON(params)
		if err != nil {
			return nil, fmt.Errorf("varlinkclient: encode parameters: %w", err)
		}
		raw = data
	}

	if err := c.writeFrame(callFrame{Method: method, Parameters: raw, More: true}); err != nil {
		return nil, fmt.Errorf("varlinkclient: write call: %w", err)
	}

	var out []Reply
	for {
		rf, err := c.readFrame()
		if err != nil {
			return nil, err
		}
		if rf.Error != "" {
			params, _ := decodeParams(rf.Parameters)
			return append(out, Reply{Error: rf.Error, Parameters: params}), nil
		}
		rec, err := decodeParams(rf.Parameters)
		if err != nil {
			return nil, fmt.Errorf("varlinkclient: decode reply parameters: %w", err)
		}
		out = append(out, Reply{Parameters: rec})
		if rf.Continues == nil || !*rf.Continues {
			break
		}
	}
	return out, nil
}
