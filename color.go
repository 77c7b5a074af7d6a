package mapcolors

import (
	"regexp"
	"strings"
)

var gradientFillRe = regexp.MustCompile(`^url\(#(.*)\)`)

// RegionColor returns the effective fill color of a region element.
// An inline style fill overrides the fill attribute, and a url(#id) fill is
// resolved through gradients. The result is lowercase.
func RegionColor(el *Element, gradients GradientTable) (string, error) {
	color := el.Attrs["fill"]

	if style, ok := el.Attr("style"); ok {
		if fill, ok := ParseInlineStyle(style)["fill"]; ok {
			if m := gradientFillRe.FindStringSubmatch(fill); m != nil {
				resolved, err := gradients.Resolve(m[1])
				if err != nil {
					return "", err
				}
				color = resolved
			} else {
				color = fill
			}
		}
	}

	return strings.ToLower(color), nil
}
