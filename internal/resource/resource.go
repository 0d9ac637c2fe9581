// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package resource loads the documents compared by the htmldiff command. A resource is either a
// URL with a host, fetched over HTTP, or a path in a file system.
package resource

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"gitlab.com/tozd/go/errors"
)

// Loader loads resources. The zero value reads from the OS file system and uses
// http.DefaultClient.
type Loader struct {
	// File system for local resources, nil means the OS file system.
	FS afero.Fs

	// Client for remote resources, nil means http.DefaultClient.
	Client *http.Client

	// If set, resources are treated as Markdown and rendered to HTML.
	Markdown bool
}

// Load returns the contents of resource. Resources with a network location are fetched with an
// HTTP GET request, a response with a status other than 2xx is an error. "file" URLs and
// everything else are read from the file system.
func (l *Loader) Load(ctx context.Context, resource string) ([]byte, error) {
	var data []byte
	var err error
	u, perr := url.Parse(resource)
	switch {
	case perr == nil && u.Host != "" && u.Scheme != "file":
		data, err = l.fetch(ctx, u)
	case perr == nil && u.Scheme == "file":
		data, err = l.read(u.Path)
	default:
		data, err = l.read(resource)
	}
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("resource", resource).Int("bytes", len(data)).Msg("loaded resource")

	if !l.Markdown {
		return data, nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(data, &buf); err != nil {
		return nil, errors.Errorf("rendering %s as markdown: %w", resource, err)
	}
	return buf.Bytes(), nil
}

func (l *Loader) fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Errorf("creating request for %s: %w", u, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetching %s: unexpected status %s", u, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Errorf("reading response from %s: %w", u, err)
	}
	return data, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	fs := l.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
