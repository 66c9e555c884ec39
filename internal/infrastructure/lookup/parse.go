package lookup

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"newspaper_checkout/internal/domain/entities"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

var ErrMalformedEditionCatalog = errors.New("malformed edition catalog")

type editionItem struct {
	ID      json.RawMessage `json:"id"`
	Name    string          `json:"name"`
	Picture string          `json:"picture"`
}

// ParseEditionCatalog normalizes the shapes the edition service is known to
// send: a list, a list of lists, an object keyed by id, a single edition
// object, or null. Anything else is ErrMalformedEditionCatalog.
func ParseEditionCatalog(postalCode string, raw json.RawMessage) (entities.EditionCatalog, error) {
	catalog := entities.EditionCatalog{PostalCode: postalCode, Editions: []entities.Edition{}}

	editions, err := parseEditionValue(raw, 0)
	if err != nil {
		return entities.EditionCatalog{}, errors.Wrapf(err, "postal code %s", postalCode)
	}
	catalog.Editions = lo.UniqBy(editions, func(e entities.Edition) int64 { return e.ID })
	return catalog, nil
}

const maxNesting = 4

func parseEditionValue(raw json.RawMessage, depth int) ([]entities.Edition, error) {
	if depth > maxNesting {
		return nil, errors.Wrap(ErrMalformedEditionCatalog, "nesting too deep")
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, errors.Mark(err, ErrMalformedEditionCatalog)
		}
		out := make([]entities.Edition, 0, len(items))
		for _, it := range items {
			parsed, err := parseEditionValue(it, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, parsed...)
		}
		return out, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, errors.Mark(err, ErrMalformedEditionCatalog)
		}
		if _, isEdition := fields["id"]; isEdition {
			e, err := parseEditionItem(trimmed)
			if err != nil {
				return nil, err
			}
			return []entities.Edition{e}, nil
		}
		out := make([]entities.Edition, 0, len(fields))
		for _, k := range sortedKeys(fields) {
			parsed, err := parseEditionValue(fields[k], depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, parsed...)
		}
		return out, nil
	default:
		return nil, errors.Wrapf(ErrMalformedEditionCatalog, "unexpected value %s", truncate(string(trimmed), 32))
	}
}

func parseEditionItem(raw json.RawMessage) (entities.Edition, error) {
	var it editionItem
	if err := json.Unmarshal(raw, &it); err != nil {
		return entities.Edition{}, errors.Mark(err, ErrMalformedEditionCatalog)
	}
	id, err := parseEditionID(it.ID)
	if err != nil {
		return entities.Edition{}, err
	}
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return entities.Edition{}, errors.Wrapf(ErrMalformedEditionCatalog, "edition %d has no name", id)
	}
	return entities.Edition{ID: id, Name: name, Picture: strings.TrimSpace(it.Picture)}, nil
}

// parseEditionID accepts 3 and "3".
func parseEditionID(raw json.RawMessage) (int64, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0, errors.Wrap(ErrMalformedEditionCatalog, "edition without id")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(ErrMalformedEditionCatalog, "invalid edition id %q", s)
	}
	return id, nil
}

// sortedKeys orders numeric keys numerically, then the rest lexically.
func sortedKeys(m map[string]json.RawMessage) []string {
	keys := lo.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.ParseInt(keys[i], 10, 64)
		b, bErr := strconv.ParseInt(keys[j], 10, 64)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
