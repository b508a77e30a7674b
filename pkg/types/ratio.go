// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/kinnison/harvey/pkg/diag"
)

// ratioPattern is the accepted lexical form of a slide ratio.
var ratioPattern = regexp.MustCompile(`^\d+:\d+$`)

// Ratio is a screen aspect ratio such as 16:9. Both components must
// be positive.
type Ratio struct {
	Width  int
	Height int
}

// ParseRatio parses "W:H" into a Ratio.
func ParseRatio(s string) (Ratio, error) {
	if !ratioPattern.MatchString(s) {
		return Ratio{}, diag.New(diag.CodeInvalidRatio, "", 0, "", "expected W:H, got %q", s)
	}
	w, h, _ := strings.Cut(s, ":")
	width, err := strconv.Atoi(w)
	if err != nil {
		return Ratio{}, diag.Wrap(diag.CodeInvalidRatio, "", 0, "", err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Ratio{}, diag.Wrap(diag.CodeInvalidRatio, "", 0, "", err)
	}
	if width <= 0 || height <= 0 {
		return Ratio{}, diag.New(diag.CodeInvalidRatio, "", 0, "", "components must be positive, got %q", s)
	}
	return Ratio{Width: width, Height: height}, nil
}

// String renders the ratio back into its W:H form.
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Width, r.Height)
}

// IsZero reports whether the ratio is unset.
func (r Ratio) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// UnmarshalYAML decodes a ratio from its scalar W:H form.
func (r *Ratio) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return diag.Wrap(diag.CodeInvalidRatio, "", 0, "", err)
	}
	parsed, err := ParseRatio(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML encodes the ratio as its W:H scalar form.
func (r Ratio) MarshalYAML() (any, error) {
	return r.String(), nil
}

// MarshalJSON encodes the ratio as its W:H scalar form.
func (r Ratio) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}
