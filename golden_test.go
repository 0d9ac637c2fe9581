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

package htmldiff

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					t.Parallel()
					got := Diff(tt.x, tt.y, st.opts...)
					if diff := cmp.Diff(st.want, got); diff != "" {
						t.Errorf("Diff(...) result are different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", got, st.want, diff)
					}
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to makes sure to runs after the subtests have finished.
			t.Cleanup(func() {
				if !*update {
					return
				}
				f, err := os.CreateTemp("", "test-golden-*")
				if err != nil {
					t.Fatalf("failed to create temporary file: %v", err)
				}
				defer f.Close()

				write := func(b []byte) {
					t.Helper()
					if _, err := f.Write(b); err != nil {
						t.Fatalf("error writing golden file: %v", err)
					}
				}

				write(tt.comment)
				write([]byte("-- x --\n"))
				write(tt.x)
				write([]byte("-- y --\n"))
				write(tt.y)
				for _, st := range tt.subtests {
					write([]byte("-- diff --\n"))
					write(st.pragmas)
					write(st.want)
				}

				if err := f.Close(); err != nil {
					t.Fatalf("error closing golden file: %v", err)
				}
				if err := os.Rename(f.Name(), tt.filename); err != nil {
					t.Fatalf("error renaming golden file: %v", err)
				}
			})
		})
	}
}

type test struct {
	name     string
	filename string
	comment  []byte
	x, y     []byte
	subtests []subtest
}

type subtest struct {
	name    string
	opts    []Option
	pragmas []byte
	want    []byte
}

// parseTests reads all golden files in testdata. Every file is a txtar archive with the files x, y
// and one or more diff files. A diff file starts with a number of pragma lines of the form
// "# key: value" that select the options, followed by the expected output.
func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimPrefix(filename, "testdata/"),
			filename: filename,
			comment:  ar.Comment,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = f.Data
			case "y":
				test.y = f.Data
			case "diff":
				data := f.Data
				var st subtest
				var name []string
				i := 0
				for ; i < len(data); i++ {
					if data[i] != '#' {
						break
					}
					i++
					eol := i + bytes.IndexByte(data[i:], '\n')
					if eol < i {
						t.Fatal("failed to parse test case: missing newline after pragma line")
					}
					k, v, found := bytes.Cut(data[i:eol], []byte{':'})
					if !found {
						t.Fatal("failed to parse test case: missing ':' in pragma line")
					}
					switch k, v := strings.TrimSpace(string(k)), strings.TrimSpace(string(v)); k {
					case "style":
						switch v {
						case "tags":
							st.opts = append(st.opts, Tags())
						case "simple":
							st.opts = append(st.opts, Simple())
						case "default":
							// do nothing
						default:
							t.Fatalf("invalid value for style: %q", v)
						}
						name = append(name, v)
					case "stylesheet", "tidy", "boundaries":
						switch v {
						case "true":
							st.opts = append(st.opts, pragmaOptions[k])
						case "false":
							// do nothing
						default:
							t.Fatalf("invalid value for %s: %q", k, v)
						}
						name = append(name, k)
					default:
						t.Fatalf("unknown option: %q", k)
					}
					i = eol
				}
				if len(name) == 0 {
					name = append(name, "default")
				}
				st.name = strings.Join(name, ":")
				st.pragmas = data[:i]
				st.want = data[i:]
				test.subtests = append(test.subtests, st)
			default:
				t.Fatalf("unknown file in archive: %v", f)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

var pragmaOptions = map[string]Option{
	"stylesheet": Stylesheet(),
	"tidy":       Tidy(),
	"boundaries": BoundaryHeuristic(),
}
