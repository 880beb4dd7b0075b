package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/settings"
)

// PushCmd sends settings to a running device.
type PushCmd struct {
	SettingsFlags `embed:""`

	Device  string        `help:"Device base URL" default:"http://localhost" env:"STREAMCLOCK_DEVICE"`
	Timeout time.Duration `help:"Request timeout" default:"10s"`

	client *http.Client `kong:"-"`
}

type pushResult struct {
	Settings settings.Settings `json:"settings"`
	Query    string            `json:"query"`
	Revision uint64            `json:"revision"`
	Error    string            `json:"error"`
	Message  string            `json:"message"`
}

func (c *PushCmd) Run(g *Globals) error {
	s, err := c.Resolve()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(c.Device, "/") + "/api/v1/display"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, strings.NewReader(codec.Encode(s)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("push to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	var result pushResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return fmt.Errorf("push to %s: %s", endpoint, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push to %s: %s: %s", endpoint, result.Error, result.Message)
	}

	g.log().Infof("cli", "pushed revision %d to %s", result.Revision, endpoint)
	fmt.Fprintf(g.out(), "revision %d: %s\n", result.Revision, result.Query)
	return nil
}
