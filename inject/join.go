package inject

import "strings"

// HumanDescriptionJoin joins binding descriptions into an English list:
//
//	a
//	a and b
//	a, b, and c
//
// An empty list yields "".
func HumanDescriptionJoin(bindings []Binding) string {
	switch len(bindings) {
	case 0:
		return ""
	case 1:
		return bindings[0].Description()
	case 2:
		return bindings[0].Description() + " and " + bindings[1].Description()
	}

	var sb strings.Builder
	last := len(bindings) - 1
	for i, b := range bindings {
		if i != 0 {
			sb.WriteString(", ")
		}
		if i == last {
			sb.WriteString("and ")
		}
		sb.WriteString(b.Description())
	}
	return sb.String()
}
