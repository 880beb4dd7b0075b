// Package configurator turns user input into Settings, previews them and
// produces the shareable clock URL.
package configurator

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
)

// ErrEmptyURL is returned when a copy is requested before a URL was generated.
var ErrEmptyURL = errors.New("generate a URL first")

var boolKeys = map[string]bool{
	settings.KeyShowYear:   true,
	settings.KeyShowDate:   true,
	settings.KeyShowDay:    true,
	settings.KeyTextStroke: true,
}

// ReadForm reads a submitted settings form. Checkboxes follow HTML semantics: an
// unchecked box is simply absent and reads as false. Every other field goes
// through the same per-field fallback as a decoded query.
func ReadForm(form url.Values) settings.Settings {
	src := make(map[string]string, len(settings.Keys()))
	for _, key := range settings.Keys() {
		if boolKeys[key] {
			src[key] = "false"
			if v, ok := form[key]; ok && len(v) > 0 && v[0] != "false" {
				src[key] = "true"
			}
			continue
		}
		if v, ok := form[key]; ok && len(v) > 0 {
			src[key] = v[0]
		}
	}
	return settings.Load(src)
}

// Preview renders the frame the configurator page shows for now.
func Preview(now time.Time, s settings.Settings) render.Frame {
	return render.NewFrame(now, s)
}

// Share is a generated clock link.
type Share struct {
	URL   string `json:"url"`
	Query string `json:"query"`
	QR    []byte `json:"-"`
}

const qrSizePx = 256

// NewShare builds the clock URL under base with a PNG QR code of it.
func NewShare(base string, s settings.Settings) (Share, error) {
	share := Share{URL: codec.ShareURL(base, s), Query: codec.Encode(s)}
	qr, err := render.GenerateQRCodePNG(share.URL, qrSizePx)
	if err != nil {
		return Share{}, fmt.Errorf("qr code: %w", err)
	}
	share.QR = qr
	return share, nil
}

// QRDataURI returns the QR code as an inline image URI, or "" without one.
func (s Share) QRDataURI() string {
	if len(s.QR) == 0 {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(s.QR)
}

// CopyMethod records which path delivered a copied URL.
type CopyMethod string

const (
	CopyClipboard CopyMethod = "clipboard"
	CopyOSC52     CopyMethod = "osc52"
)

var writeClipboard = clipboard.WriteAll

// CopyURL places u on the system clipboard. When no clipboard is reachable it
// writes an OSC 52 sequence to term so the terminal emulator does the copy.
func CopyURL(u string, term io.Writer) (CopyMethod, error) {
	if u == "" {
		return "", ErrEmptyURL
	}
	if !clipboard.Unsupported {
		if err := writeClipboard(u); err == nil {
			return CopyClipboard, nil
		}
	}
	if term == nil {
		return "", errors.New("no clipboard and no terminal to copy through")
	}
	if _, err := osc52.New(u).WriteTo(term); err != nil {
		return "", fmt.Errorf("osc52 copy: %w", err)
	}
	return CopyOSC52, nil
}
