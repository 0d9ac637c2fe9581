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

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"znkr.io/htmldiff"
	"znkr.io/htmldiff/internal/render"
)

type scenario struct {
	name string
	x, y string
	opts []htmldiff.Option
	want string
}

var scenarios = []scenario{
	{
		name: "changed word",
		x:    "test1",
		y:    "test2",
		want: `<span class="delete">test1</span><span class="insert">test2</span>`,
	},
	{
		name: "no change",
		x:    "test1",
		y:    "test1",
		want: "test1",
	},
	{
		name: "changed tags",
		x:    "<b>test1</b>",
		y:    "<i>test1</i>",
		opts: []htmldiff.Option{htmldiff.Tags()},
		want: `<span class="tagDelete">delete: <tt>&lt;b&gt;</tt></span><span class="tagInsert">insert: <tt>&lt;i&gt;</tt></span><i>test1<span class="tagDelete">delete: <tt>&lt;/b&gt;</tt></span><span class="tagInsert">insert: <tt>&lt;/i&gt;</tt></span></i>`,
	},
	{
		name: "inserted element",
		x:    "<b>test1</b>",
		y:    "<b>test1</b><x>test1</x>",
		opts: []htmldiff.Option{htmldiff.Tags()},
		want: `<b>test1</b><span class="tagInsert">insert: <tt>&lt;x&gt;</tt></span><x><span class="insert">test1</span><span class="tagInsert">insert: <tt>&lt;/x&gt;</tt></span></x>`,
	},
	{
		name: "simple",
		x:    "test1",
		y:    "test2",
		opts: []htmldiff.Option{htmldiff.Simple()},
		want: `-[test1]+[test2]`,
	},
	{
		name: "simple with tags",
		x:    "<b>Hello world!</b>",
		y:    "<i>Hello you!</i>",
		opts: []htmldiff.Option{htmldiff.Simple()},
		want: `-[<b>]+[<i>]<i>Hello -[world!]-[</b>]+[you!]+[</i>]</i>`,
	},
	{
		name: "stylesheet without head",
		x:    "test1",
		y:    "test2",
		opts: []htmldiff.Option{htmldiff.Stylesheet()},
		want: render.StyleBlock(htmldiff.TagSuppressed.Stylesheet) +
			`<span class="delete">test1</span><span class="insert">test2</span>`,
	},
}

// selfTest runs all scenarios and reports the number of passed scenarios to w. Failures are
// logged, the returned error only has the count.
func selfTest(ctx context.Context, w io.Writer) error {
	logger := zerolog.Ctx(ctx)
	failed := 0
	for _, sc := range scenarios {
		got := htmldiff.Diff(sc.x, sc.y, sc.opts...)
		if got != sc.want {
			failed++
			logger.Error().Str("scenario", sc.name).Str("got", got).Str("want", sc.want).Msg("self-test failed")
			continue
		}
		logger.Debug().Str("scenario", sc.name).Msg("self-test passed")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d self-tests failed", failed, len(scenarios))
	}
	fmt.Fprintf(w, "%d self-tests passed\n", len(scenarios))
	return nil
}
