// Copyright 2025 walteh LLC
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

package rebrand

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Outcome classifies what happened to a single file
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeUpdated
	OutcomeBinary
	OutcomeSelf
	OutcomeIrregular
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeUpdated:
		return "updated"
	case OutcomeBinary:
		return "binary"
	case OutcomeSelf:
		return "self"
	case OutcomeIrregular:
		return "irregular"
	default:
		return "unknown"
	}
}

// 🖼️ FileVisit is the result of processing one file
type FileVisit struct {
	Path         string
	Outcome      Outcome
	Replacements int
}

// 📊 Summary counts visits by outcome for one run
type Summary struct {
	Updated   int
	Unchanged int
	Binary    int
	Self      int
	Irregular int
	Pruned    int // excluded directories not descended into
}

func (s *Summary) record(v FileVisit) {
	switch v.Outcome {
	case OutcomeUpdated:
		s.Updated++
	case OutcomeUnchanged:
		s.Unchanged++
	case OutcomeBinary:
		s.Binary++
	case OutcomeSelf:
		s.Self++
	case OutcomeIrregular:
		s.Irregular++
	}
}

// 🔧 Options contains configuration for the rebrander
type Options struct {
	// Table is the ordered rule list; DefaultTable when nil
	Table text.Table
	// ExcludedDirs are directory names pruned at any depth; DefaultExcludedDirs when nil
	ExcludedDirs []string
	// Self lists paths of the tool itself; missing paths are ignored
	Self []string
	// Replacer applies the table; a SimpleReplacer when nil
	Replacer text.Replacer
	// Logger receives update notices; taken from the context when nil
	Logger *log.Logger
}

// 🎮 Rebrander walks a tree and applies a replacement table to every text file
type Rebrander struct {
	table    text.Table
	excluded map[string]struct{}
	self     []fs.FileInfo
	replacer text.Replacer
	logger   *log.Logger
}

// 🏭 New creates a rebrander with the given options
func New(opts Options) (*Rebrander, error) {
	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewSimpleReplacer()
	}

	table := DefaultTable()
	if opts.Table != nil {
		table = make(text.Table, len(opts.Table))
		copy(table, opts.Table)
	}
	if err := replacer.ValidateTable(table); err != nil {
		return nil, errors.Errorf("validating table: %w", err)
	}

	dirs := opts.ExcludedDirs
	if dirs == nil {
		dirs = DefaultExcludedDirs()
	}
	excluded := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		excluded[d] = struct{}{}
	}

	var self []fs.FileInfo
	for _, p := range opts.Self {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Errorf("stat self path %s: %w", p, err)
		}
		self = append(self, info)
	}

	return &Rebrander{
		table:    table,
		excluded: excluded,
		self:     self,
		replacer: replacer,
		logger:   opts.Logger,
	}, nil
}

// 🏃 Run processes every eligible file under root, top-down
func (r *Rebrander) Run(ctx context.Context, root string) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("opening root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", root)
	}

	summary := &Summary{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}

		if d.IsDir() {
			// Prune before the directory is read
			if path != root && r.isExcluded(d.Name()) {
				logger.Debug().Str("dir", path).Msg("pruning excluded directory")
				summary.Pruned++
				return fs.SkipDir
			}
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return errors.Errorf("stat %s: %w", path, err)
		}

		visit, err := r.visit(ctx, path, fi)
		if err != nil {
			return err
		}
		summary.record(visit)
		return nil
	})
	if err != nil {
		return summary, err
	}

	logger.Debug().
		Str("root", root).
		Int("updated", summary.Updated).
		Int("unchanged", summary.Unchanged).
		Int("binary", summary.Binary).
		Int("self", summary.Self).
		Int("irregular", summary.Irregular).
		Int("pruned", summary.Pruned).
		Msg("rebrand complete")

	return summary, nil
}

// 📄 Visit processes a single file outside of a walk
func (r *Rebrander) Visit(ctx context.Context, path string) (FileVisit, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return FileVisit{Path: path}, errors.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return FileVisit{Path: path}, errors.Errorf("%s is a directory", path)
	}
	return r.visit(ctx, path, info)
}

func (r *Rebrander) visit(ctx context.Context, path string, info fs.FileInfo) (FileVisit, error) {
	v := FileVisit{Path: path}

	// Symlinks, devices, pipes and sockets are never opened
	if !info.Mode().IsRegular() {
		zerolog.Ctx(ctx).Debug().Str("file", path).Str("mode", info.Mode().Type().String()).Msg("skipping irregular file")
		v.Outcome = OutcomeIrregular
		return v, nil
	}

	if r.isSelf(info) {
		zerolog.Ctx(ctx).Debug().Str("file", path).Msg("skipping self")
		v.Outcome = OutcomeSelf
		return v, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return v, errors.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(raw) {
		v.Outcome = OutcomeBinary
		return v, nil
	}

	res, err := r.replacer.ReplaceText(ctx, bytes.NewReader(raw), r.table)
	if err != nil {
		return v, errors.Errorf("replacing text in %s: %w", path, err)
	}
	if !res.WasModified {
		v.Outcome = OutcomeUnchanged
		return v, nil
	}

	if err := os.WriteFile(path, []byte(res.Modified), info.Mode().Perm()); err != nil {
		return v, errors.Errorf("writing %s: %w", path, err)
	}

	v.Outcome = OutcomeUpdated
	v.Replacements = res.Replacements

	r.notices(ctx).LogFileOperation(ctx, log.FileOperation{
		Path:         path,
		Replacements: res.Replacements,
	})

	return v, nil
}

func (r *Rebrander) notices(ctx context.Context) *log.Logger {
	if r.logger != nil {
		return r.logger
	}
	return log.FromContext(ctx)
}

func (r *Rebrander) isExcluded(name string) bool {
	_, ok := r.excluded[name]
	return ok
}

func (r *Rebrander) isSelf(info fs.FileInfo) bool {
	for _, s := range r.self {
		if os.SameFile(s, info) {
			return true
		}
	}
	return false
}
