package ui

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/DaanHessen/gembooth-dash/internal/content"
	"github.com/DaanHessen/gembooth-dash/internal/envfile"
)

// PrintOptions controls non-interactive output.
type PrintOptions struct {
	// Raw writes the Markdown source without terminal styling.
	Raw   bool
	Plain bool
	Width int
	Now   time.Time
}

// Print writes one page, or every page when target is "all", to w.
func Print(w io.Writer, target string, env envfile.Map, opts PrintOptions) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	var (
		md  string
		err error
	)
	switch t := strings.ToLower(strings.TrimSpace(target)); t {
	case "", "all", "0":
		md, err = content.AllMarkdown(env, now)
	default:
		p, ok := content.Lookup(t)
		if !ok {
			return errors.Wrapf(content.ErrUnknownPage, "%q", target)
		}
		md, err = content.Markdown(p.ID, env, now)
	}
	if err != nil {
		return err
	}
	if !opts.Raw {
		width := opts.Width
		if width <= 0 {
			width = 80
		}
		md = renderMarkdown(md, width, opts.Plain)
	}
	_, err = io.WriteString(w, md)
	return errors.Wrap(err, "write output")
}
