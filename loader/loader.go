// SPDX-License-Identifier: MIT

// Package loader reads a filmography directory into a core.Dataset.
//
// A directory holds three CSV files with a header row:
//
//	people.csv  id,name,birth
//	movies.csv  id,title,year
//	stars.csv   person_id,movie_id
//
// Columns are located by header name, so their order is free and extra
// columns are ignored. Cast rows that reference an unknown person or movie
// are skipped and counted.
//
// Repeated people or movies keep the FIRST row and count the rest in
// Report.Duplicates. This is not an overwrite: a later row with the same id
// does not replace the name, birth, title or year, and the person is not
// indexed under the later name.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/logging"
)

// File names inside a data directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("loader: missing required column")

// Report summarises one load.
type Report struct {
	People     int           `json:"people"`
	Movies     int           `json:"movies"`
	Stars      int           `json:"stars"`
	Dropped    int           `json:"dropped"`
	Duplicates int           `json:"duplicates"`
	Duration   time.Duration `json:"duration"`
}

// Option configures Load.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for progress and skipped rows.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Load reads dir and returns the frozen dataset with a load report.
// ctx is checked between rows.
func Load(ctx context.Context, dir string, opts ...Option) (*core.Dataset, Report, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.OrDefault(o.logger).With(slog.String("dir", dir))

	start := time.Now()
	b := core.NewBuilder()
	var rep Report

	steps := []struct {
		file string
		cols []string
		row  func(rec []string) error
	}{
		{PeopleFile, []string{"id", "name", "birth"}, func(rec []string) error {
			err := b.AddPerson(core.PersonID(rec[0]), rec[1], rec[2])
			return countRow(err, &rep.People, &rep.Duplicates, log, PeopleFile, rec[0])
		}},
		{MoviesFile, []string{"id", "title", "year"}, func(rec []string) error {
			err := b.AddMovie(core.MovieID(rec[0]), rec[1], rec[2])
			return countRow(err, &rep.Movies, &rep.Duplicates, log, MoviesFile, rec[0])
		}},
		{StarsFile, []string{"person_id", "movie_id"}, func(rec []string) error {
			err := b.AddStar(core.PersonID(rec[0]), core.MovieID(rec[1]))
			switch {
			case err == nil:
				rep.Stars++
			case errors.Is(err, core.ErrPersonNotFound), errors.Is(err, core.ErrMovieNotFound):
				rep.Dropped++
				log.Debug("skipping cast row", slog.String("person_id", rec[0]),
					slog.String("movie_id", rec[1]), slog.String("reason", err.Error()))
			default:
				return err
			}
			return nil
		}},
	}

	for _, s := range steps {
		if err := readFile(ctx, filepath.Join(dir, s.file), s.cols, s.row); err != nil {
			return nil, rep, err
		}
	}

	ds := b.Build()
	rep.Duration = time.Since(start)
	log.Info("dataset loaded",
		slog.Int("people", rep.People),
		slog.Int("movies", rep.Movies),
		slog.Int("stars", rep.Stars),
		slog.Int("dropped", rep.Dropped),
		slog.Duration("took", rep.Duration))

	return ds, rep, nil
}

// countRow turns a builder result into report counters. Empty ids are
// rejected as errors; duplicates are logged and skipped.
func countRow(err error, ok, dup *int, log *slog.Logger, file, id string) error {
	switch {
	case err == nil:
		*ok++
	case errors.Is(err, core.ErrDuplicateID):
		*dup++
		log.Debug("skipping duplicate row", slog.String("file", file), slog.String("id", id))
	default:
		return err
	}

	return nil
}

// readFile streams path and calls row with the requested columns in the
// order given by cols.
func readFile(ctx context.Context, path string, cols []string, row func([]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("loader: %s: read header: %w", filepath.Base(path), err)
	}
	idx, err := columnIndex(header, cols)
	if err != nil {
		return fmt.Errorf("loader: %s: %w", filepath.Base(path), err)
	}

	picked := make([]string, len(cols))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("loader: %s: %w", filepath.Base(path), err)
		}
		for i, at := range idx {
			if at < len(rec) {
				picked[i] = rec[at]
			} else {
				picked[i] = ""
			}
		}
		if err := row(picked); err != nil {
			line, _ := r.FieldPos(0)
			return fmt.Errorf("loader: %s line %d: %w", filepath.Base(path), line, err)
		}
	}
}

// columnIndex maps each wanted column to its position in header.
// Matching is case-insensitive and ignores surrounding space and a UTF-8 BOM.
func columnIndex(header, cols []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	idx := make([]int, len(cols))
	for i, c := range cols {
		at, ok := pos[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
		idx[i] = at
	}

	return idx, nil
}
