package orbtrade

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// this file handles the import/export format: a single flat JSON object,
// item name to non-negative unit price. No envelope, no version field.
// The same payload shape is used for the persisted override snapshot, for
// file export and for file import, so an export can always be imported back.

// ErrParse reports a payload that is not valid JSON at all, as opposed to
// ErrValidation which reports valid JSON of the wrong shape.
var ErrParse = errors.New("unreadable catalog payload")

// DecodeCatalog reads an interchange payload from 'r'.
//
// The payload must be a single JSON object whose values are all
// non-negative numbers; anything else (top-level null, array or scalar,
// nested objects, negative or non-numeric values) fails with an error
// wrapping ErrValidation. Input that is not JSON fails with an error
// wrapping ErrParse.
//
// Decoding is done token by token rather than into a map, because the
// catalog must keep the document order of the keys.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top level must be an object, got %v", ErrValidation, tok)
	}

	c := NewCatalog()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		name, _ := tok.(string) // inside an object, keys are always strings
		if name == "" {
			return nil, fmt.Errorf("%w: empty item name", ErrValidation)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		num, ok := tok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: price of %q must be a number, got %v", ErrValidation, name, tok)
		}
		price, err := decimal.NewFromString(num.String())
		if err != nil {
			return nil, fmt.Errorf("%w: price of %q: %w", ErrParse, name, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: negative price for %q", ErrValidation, name)
		}
		c.Set(name, A(price))
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after payload", ErrParse)
	}
	return c, nil
}

// EncodeCatalog writes the catalog to 'w' in the interchange format, one
// item per line, in catalog enumeration order.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	var jw jsonObjectWriter
	for _, name := range c.Names() {
		price, _ := c.Get(name)
		jw.Append(name, json.RawMessage(price.Decimal().String()))
	}
	payload, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	payload = append(payload, '\n')
	_, err = w.Write(payload)
	return err
}

// Valid reports whether data is an acceptable interchange payload.
func Valid(data []byte) bool {
	_, err := DecodeCatalog(bytes.NewReader(data))
	return err == nil
}

// Import decodes an interchange payload from 'r' and replaces the whole
// catalog with it. Unlike the startup override merge, import is
// destructive: items absent from the payload are gone afterwards.
//
// On a decoding error (wrapping ErrParse or ErrValidation) the catalog is
// left unchanged.
func (s *Store) Import(r io.Reader) error {
	c, err := DecodeCatalog(r)
	if err != nil {
		return err
	}
	return s.ReplaceAll(c)
}

// Export writes the current catalog to 'w' in the interchange format.
func (s *Store) Export(w io.Writer) error {
	return EncodeCatalog(w, s.catalog)
}

// ExportName returns a filename for an export made on the given day, e.g.
// "orbtrade_prices_2026-01-31.json".
func ExportName(day time.Time) string {
	return fmt.Sprintf("orbtrade_prices_%s.json", day.Format("2006-01-02"))
}
