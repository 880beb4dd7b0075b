package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rook-computer/streamclock/internal/codec"
)

// DecodeCmd resolves a clock URL to its settings.
type DecodeCmd struct {
	URL       string `arg:"" help:"Clock URL or query string"`
	Canonical bool   `help:"Print the canonical query string instead of JSON"`
}

func (c *DecodeCmd) Run(g *Globals) error {
	s, err := codec.Parse(c.URL)
	if err != nil {
		return err
	}
	if c.Canonical {
		fmt.Fprintln(g.out(), codec.Encode(s))
		return nil
	}
	enc := json.NewEncoder(g.out())
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
