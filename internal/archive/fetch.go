package archive

import (
	"context"
	"net/url"
	"path"
	"strings"
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/parser"
	"github.com/levigross/grequests"
	"github.com/pkg/errors"
)

const fetchTimeout = 10 * time.Minute

func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// nameFromURL uses the last path element, "download" style endpoints get a
// generic name.
func nameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if nil != err || u.Path == "" || u.Path == "/" {
		return "download.osz"
	}
	return path.Base(u.Path)
}

// Fetch downloads and extracts an archive over HTTP.
func Fetch(ctx context.Context, rawURL string, p parser.Parser) (*game.ChartSet, error) {
	resp, err := grequests.Get(rawURL, &grequests.RequestOptions{
		Context:        ctx,
		RequestTimeout: fetchTimeout,
		UserAgent:      "fourk",
	})
	if nil != err {
		return nil, &Error{Source: rawURL, Err: errors.Wrap(err, "download")}
	}
	defer resp.Close()
	if !resp.Ok {
		return nil, &Error{Source: rawURL, Err: errors.Errorf("download: status %d", resp.StatusCode)}
	}
	return Extract(nameFromURL(rawURL), resp.Bytes(), p)
}
