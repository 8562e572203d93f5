package rebalance

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// The store persists each mapping as a small JSON-looking document, one
// entry per line:
//
//	{
//	  "bitcoin":1.5,
//	  "ethereum":10
//	}
//
// It is not a JSON parser: the decoder is line oriented and lenient. Each
// line must contain a quoted key, then a colon, then a number; anything
// else on the line is ignored, lines that do not match are skipped. There
// is no escaping, so keys cannot contain quotes.

// number matches the numeric prefix of a value.
var number = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// DecodeMapping reads a mapping document. Malformed lines are skipped, the
// last entry wins for a key present twice. Lines have no length limit.
//
// On a read error the entries decoded so far are returned with the error.
func DecodeMapping(r io.Reader) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	in := bufio.NewReader(r)
	for {
		line, err := in.ReadString('\n')
		if key, val, ok := decodeLine(line); ok {
			out[key] = val
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("cannot read mapping: %w", err)
		}
	}
}

// decodeLine extracts the entry of a single line.
func decodeLine(line string) (key string, val decimal.Decimal, ok bool) {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return "", val, false
	}
	end := strings.IndexByte(line[start+1:], '"')
	if end < 0 {
		return "", val, false
	}
	end += start + 1
	key = line[start+1 : end]

	colon := strings.IndexByte(line[end:], ':')
	if colon < 0 {
		return "", val, false
	}
	rest := strings.TrimLeft(line[end+colon+1:], " \t\r\v\f")
	lit := number.FindString(rest)
	if lit == "" {
		return "", val, false
	}
	val, err := decimal.NewFromString(lit)
	if err != nil {
		return "", val, false
	}
	return key, val, true
}

// mappingWriter helps construct a mapping document, one entry per line.
// Its zero value is ready to use.
type mappingWriter struct {
	bytes.Buffer
	n int
}

// Append adds a new entry to the document.
func (w *mappingWriter) Append(key string, value decimal.Decimal) *mappingWriter {
	if w.n > 0 {
		w.WriteString(",\n")
	}
	fmt.Fprintf(w, "  \"%s\":%s", key, value.String())
	w.n++
	return w
}

// Close finalizes the document and returns its content.
func (w *mappingWriter) Close() []byte {
	out := make([]byte, 0, w.Len()+6)
	out = append(out, "{\n"...)
	out = append(out, w.Bytes()...)
	if w.n > 0 {
		out = append(out, '\n')
	}
	out = append(out, "}\n"...)
	return out
}

// EncodeMapping writes m with keys in lexicographic order.
func EncodeMapping(w io.Writer, m map[string]decimal.Decimal) error {
	var mw mappingWriter
	for _, key := range slices.Sorted(maps.Keys(m)) {
		mw.Append(key, m[key])
	}
	_, err := w.Write(mw.Close())
	return err
}
