package param

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Handler is the capability set every parameter type implements. Extract
// must consult the request's parameter result cache first and short-circuit
// when this request already resolved the parameter; a successful extraction
// stores its result there (the only mutation a handler performs).
type Handler interface {
	// Setup binds the handler to the current request.
	Setup(req *domain.Request)
	// Extract returns the best candidate value found in the input, or "".
	Extract(input string) string
	// Guess returns a fallback candidate when extraction found nothing.
	Guess(input string) string
	// Validate checks the structure of a serialized built value.
	Validate(value string) bool
	// Build converts a raw candidate into its canonical serialized form.
	Build(value string) (string, error)
	// Found returns the exact input span the last extraction claimed.
	Found() string
	// Remove strips a claimed span from the input for later handlers.
	Remove(input, found string) string
	// ResponseTweak cleans a raw follow-up answer before extraction.
	ResponseTweak(input string) string
}

// Factory creates a fresh handler instance per use.
type Factory func() Handler

var registry = map[string]Factory{}

// Register binds a parameter name to its handler factory. Called from init.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// HandlerFor returns a fresh handler for a parameter name.
func HandlerFor(name string) (Handler, bool) {
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// RegisteredNames lists all known parameter names, sorted.
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// base carries the request binding shared by all handlers.
type base struct {
	req      *domain.Request
	language string
	found    string
}

func (b *base) Setup(req *domain.Request) {
	b.req = req
	b.language = req.Language
}

func (b *base) Found() string {
	return b.found
}

func (b *base) Guess(string) string {
	return ""
}

func (b *base) Remove(input, found string) string {
	return removeFirst(input, regexp.QuoteMeta(found))
}

func (b *base) ResponseTweak(input string) string {
	return strings.TrimSpace(input)
}

// buildValue serializes the canonical built form.
func buildValue(fields map[string]any) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// validateBuilt accepts any serialized object carrying the canonical value
// field.
func validateBuilt(value string) bool {
	var data map[string]any
	if err := json.Unmarshal([]byte(value), &data); err != nil {
		return false
	}
	_, ok := data[domain.DataValue]
	return ok
}

// findFirst returns the first match of an expression in the input.
func findFirst(input, expr string) string {
	re, err := regexp.Compile(expr)
	if err != nil {
		return ""
	}
	return re.FindString(input)
}

// removeFirst deletes the first match of an expression from the input and
// squashes the whitespace left behind.
func removeFirst(input, expr string) string {
	re, err := regexp.Compile(expr)
	if err != nil {
		return input
	}
	loc := re.FindStringIndex(input)
	if loc == nil {
		return input
	}
	cleaned := input[:loc[0]] + " " + input[loc[1]:]
	return strings.Join(strings.Fields(cleaned), " ")
}
