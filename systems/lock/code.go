package lock

import (
	"regexp"

	"github.com/pkg/errors"
)

// Payload field carrying the access code.
const codeAttr = "code"

// Single-entry cache of the compiled code format.
// Recompilation happens only when the pattern string changed since
// the last call; clearing the format clears the cache.
type codeFormat struct {
	pattern  string
	compiled *regexp.Regexp
}

// Returns a matcher for the pattern, reusing the cached one when
// the pattern didn't change. Empty pattern means no code is required.
// The matcher is anchored at the start of the candidate, the pattern
// itself decides whether the end is anchored too.
func (c *codeFormat) compile(pattern string) (*regexp.Regexp, error) {
	if "" == pattern {
		c.pattern = ""
		c.compiled = nil
		return nil, nil
	}

	if nil != c.compiled && pattern == c.pattern {
		return c.compiled, nil
	}

	compiled, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, errors.Wrap(err, "bad code format")
	}

	c.pattern = pattern
	c.compiled = compiled
	return compiled, nil
}

// Resolves the access code of an outgoing command payload in place.
// An empty supplied code is substituted with the device's default
// code, the result is validated against the code format and either
// attached to the payload or removed from it when empty.
func (w *lockWrapper) resolveCode(payload map[string]interface{}) error {
	code, _ := payload[codeAttr].(string)
	if "" == code {
		code = w.defaultCode
	}

	matcher, err := w.format.compile(w.codeFormatPattern())
	if err != nil {
		return err
	}

	if nil != matcher && !matcher.MatchString(code) {
		return &ErrInvalidCode{DeviceID: w.id, Code: code, Pattern: w.codeFormatPattern()}
	}

	if "" != code {
		payload[codeAttr] = code
	} else {
		delete(payload, codeAttr)
	}

	return nil
}
