// Package loader reads the delimited source files into normalized records.
package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/ougirez/fishstats/internal/pkg/normalize"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

const (
	DefaultEncoding  = "latin1"
	DefaultDelimiter = ';'

	maxLineSize = 4 << 20
)

type Options struct {
	Encoding  string
	Delimiter rune
	// RegionalFilter keeps only LAGOS, AYSEN and MAGALLANES records.
	RegionalFilter bool
}

type Result[T any] struct {
	Records   []T
	Total     int
	Kept      int
	Filtered  int
	Malformed int
}

// Load streams path through the decoder, one physical line per record, normalizing each
// row with parse. A missing file yields an empty Result and no error. A line that does
// not split cleanly (an unterminated quote, say) is counted as malformed and skipped
// without affecting the lines after it.
func Load[T any](ctx context.Context, path string, parse func(normalize.Row) T, region func(T) string, opts Options) (Result[T], error) {
	var res Result[T]

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warnf(ctx, "dataset file %s not found, continuing without it", path)
			return res, nil
		}
		return res, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return res, err
	}

	comma := opts.Delimiter
	if comma == 0 {
		comma = DefaultDelimiter
	}

	sc := bufio.NewScanner(transform.NewReader(f, enc.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var header *normalize.Header
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if header == nil {
			columns, err := splitLine(line, comma)
			if err != nil {
				return res, fmt.Errorf("read header of %s: %w", path, err)
			}
			header = normalize.NewHeader(columns)
			continue
		}

		if res.Total%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		res.Total++

		values, err := splitLine(line, comma)
		if err != nil {
			res.Malformed++
			logger.Debugf(ctx, "skipping malformed line %d in %s: %v", res.Total+1, path, err)
			continue
		}

		item := parse(header.Row(values))
		if opts.RegionalFilter && !normalize.IsMacroRegion(region(item)) {
			res.Filtered++
			continue
		}

		res.Records = append(res.Records, item)
		res.Kept++
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	return res, nil
}

var errOpenQuote = errors.New("quoted field not closed on its line")

// splitLine parses a single physical line. A quoted field that would run past the
// end of the line is rejected instead of being joined with the next one.
func splitLine(line string, comma rune) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line + "\n"))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	values, err := r.Read()
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return nil, errOpenQuote
		}
	}
	return values, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(name)
	}
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}
