// Package msgcat holds the localized UI strings. Messages are text/template
// sources keyed by "<locale>.<dotted.key>", loaded from embedded YAML with an
// optional override file.
package msgcat

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

// FallbackLocale is used for keys missing from the requested locale.
const FallbackLocale = "en"

//go:embed messages.yaml
var defaultMessages []byte

// Catalog maps flattened keys to template text.
type Catalog struct {
	mu   sync.RWMutex
	data map[string]string
}

// New loads the embedded messages and then the override file, if given.
func New(overridePath string) (*Catalog, error) {
	c := &Catalog{data: make(map[string]string)}
	if err := c.applyYAML(defaultMessages); err != nil {
		return nil, fmt.Errorf("parse embedded messages: %w", err)
	}
	if strings.TrimSpace(overridePath) != "" {
		b, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("read messages %s: %w", overridePath, err)
		}
		if err := c.applyYAML(b); err != nil {
			return nil, fmt.Errorf("parse messages %s: %w", overridePath, err)
		}
	}
	return c, nil
}

// Locales returns the locales present in the catalog, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool)
	for k := range c.data {
		if i := strings.IndexByte(k, '.'); i > 0 {
			seen[k[:i]] = true
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Render executes the template for key in locale, falling back to
// FallbackLocale when the locale lacks the key.
func (c *Catalog) Render(locale, key string, data any) (string, error) {
	key = strings.TrimSpace(key)
	c.mu.RLock()
	tpl, ok := c.data[locale+"."+key]
	if !ok {
		tpl, ok = c.data[FallbackLocale+"."+key]
	}
	c.mu.RUnlock()
	if !ok || strings.TrimSpace(tpl) == "" {
		return "", fmt.Errorf("message not found: %s", key)
	}

	t, err := template.New(key).Option("missingkey=error").Parse(tpl)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Text renders a message without data, returning the key itself if the
// message is missing or broken.
func (c *Catalog) Text(locale, key string) string {
	s, err := c.Render(locale, key, nil)
	if err != nil {
		return key
	}
	return s
}

func (c *Catalog) applyYAML(b []byte) error {
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return err
	}
	flat := make(map[string]string)
	if err := flattenStrings(m, "", flat); err != nil {
		return err
	}
	c.mu.Lock()
	for k, v := range flat {
		c.data[k] = v
	}
	c.mu.Unlock()
	return nil
}

func flattenStrings(src any, prefix string, out map[string]string) error {
	switch v := src.(type) {
	case map[string]any:
		for k, vv := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flattenStrings(vv, key, out); err != nil {
				return err
			}
		}
		return nil
	case string:
		if prefix == "" {
			return errors.New("string value without key prefix")
		}
		out[prefix] = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported value at %s: %T", prefix, v)
	}
}
