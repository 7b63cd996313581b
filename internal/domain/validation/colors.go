package validation

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	functionRE = regexp.MustCompile(`^(rgba?|hsla?|hwb)\(\s*(.*?)\s*\)$`)
	numberRE   = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)
)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return len(value) == 7 && parsesAsHex(strings.ToLower(value))
}

// IsCSSColor reports whether value parses as a CSS color: a named color,
// a hex color (3, 4, 6 or 8 digits) or an rgb/rgba/hsl/hsla/hwb function.
func IsCSSColor(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	if strings.HasPrefix(v, "#") {
		return isHex(v)
	}
	if _, ok := namedColors[v]; ok {
		return true
	}
	return isFunctional(v)
}

func isHex(v string) bool {
	v = expandHex(v)
	switch len(v) {
	case 7:
		return parsesAsHex(v)
	case 9:
		alpha := v[7:]
		return parsesAsHex(v[:7]) && parsesAsHex("#"+alpha+alpha+alpha)
	}
	return false
}

// expandHex turns #rgb and #rgba into #rrggbb and #rrggbbaa.
func expandHex(v string) string {
	if len(v) != 4 && len(v) != 5 {
		return v
	}
	var b strings.Builder
	b.WriteByte('#')
	for i := 1; i < len(v); i++ {
		b.WriteByte(v[i])
		b.WriteByte(v[i])
	}
	return b.String()
}

// parsesAsHex parses a lowercase #rrggbb color and requires colorful to
// encode it back to the same digits. colorful.Hex alone stops at the first
// non-hex digit and ignores trailing input.
func parsesAsHex(v string) bool {
	c, err := colorful.Hex(v)
	return err == nil && c.Hex() == v
}

func isFunctional(v string) bool {
	m := functionRE.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	name, body := m[1], m[2]

	args, alpha, ok := splitArgs(body)
	if !ok || len(args) != 3 {
		return false
	}
	if alpha != "" && !isAlpha(alpha) {
		return false
	}

	switch name {
	case "rgb", "rgba":
		for _, a := range args {
			if !isNumber(a) && !isPercentage(a) {
				return false
			}
		}
		return true
	case "hsl", "hsla":
		if !isHue(args[0]) {
			return false
		}
		return (isPercentage(args[1]) || isNumber(args[1])) && (isPercentage(args[2]) || isNumber(args[2]))
	case "hwb":
		return isHue(args[0]) && isPercentage(args[1]) && isPercentage(args[2])
	}
	return false
}

// splitArgs handles both the legacy comma syntax and the space syntax
// with an optional "/ alpha" suffix.
func splitArgs(body string) (args []string, alpha string, ok bool) {
	if strings.Contains(body, ",") {
		if strings.Contains(body, "/") {
			return nil, "", false
		}
		for _, p := range strings.Split(body, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				return nil, "", false
			}
			args = append(args, p)
		}
		switch len(args) {
		case 3:
			return args, "", true
		case 4:
			return args[:3], args[3], true
		}
		return nil, "", false
	}

	main := body
	if idx := strings.Index(body, "/"); idx >= 0 {
		main = body[:idx]
		alpha = strings.TrimSpace(body[idx+1:])
		if alpha == "" {
			return nil, "", false
		}
	}
	return strings.Fields(main), alpha, true
}

func isNumber(s string) bool {
	return numberRE.MatchString(s)
}

func isPercentage(s string) bool {
	return strings.HasSuffix(s, "%") && isNumber(strings.TrimSuffix(s, "%"))
}

func isAlpha(s string) bool {
	return isNumber(s) || isPercentage(s)
}

func isHue(s string) bool {
	for _, unit := range []string{"deg", "grad", "rad", "turn"} {
		if strings.HasSuffix(s, unit) {
			return isNumber(strings.TrimSuffix(s, unit))
		}
	}
	return isNumber(s)
}

var namedColors = func() map[string]struct{} {
	names := strings.Fields(`
		aliceblue antiquewhite aqua aquamarine azure beige bisque black
		blanchedalmond blue blueviolet brown burlywood cadetblue chartreuse
		chocolate coral cornflowerblue cornsilk crimson cyan darkblue darkcyan
		darkgoldenrod darkgray darkgreen darkgrey darkkhaki darkmagenta
		darkolivegreen darkorange darkorchid darkred darksalmon darkseagreen
		darkslateblue darkslategray darkslategrey darkturquoise darkviolet
		deeppink deepskyblue dimgray dimgrey dodgerblue firebrick floralwhite
		forestgreen fuchsia gainsboro ghostwhite gold goldenrod gray green
		greenyellow grey honeydew hotpink indianred indigo ivory khaki lavender
		lavenderblush lawngreen lemonchiffon lightblue lightcoral lightcyan
		lightgoldenrodyellow lightgray lightgreen lightgrey lightpink
		lightsalmon lightseagreen lightskyblue lightslategray lightslategrey
		lightsteelblue lightyellow lime limegreen linen magenta maroon
		mediumaquamarine mediumblue mediumorchid mediumpurple mediumseagreen
		mediumslateblue mediumspringgreen mediumturquoise mediumvioletred
		midnightblue mintcream mistyrose moccasin navajowhite navy oldlace
		olive olivedrab orange orangered orchid palegoldenrod palegreen
		paleturquoise palevioletred papayawhip peachpuff peru pink plum
		powderblue purple rebeccapurple red rosybrown royalblue saddlebrown
		salmon sandybrown seagreen seashell sienna silver skyblue slateblue
		slategray slategrey snow springgreen steelblue tan teal thistle tomato
		turquoise violet wheat white whitesmoke yellow yellowgreen
		transparent currentcolor`)
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}()
