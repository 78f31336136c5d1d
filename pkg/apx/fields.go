package apx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/exp/constraints"
)

// noParentGUID marks an unset parent reference in model objects.
const noParentGUID = "NONENONENONENONENONENONENONENONE"

// childText returns the text of the first child element named tag and
// whether such a child exists.
func childText(el *etree.Element, tag string) (string, bool) {
	child := el.SelectElement(tag)
	if child == nil {
		return "", false
	}
	return child.Text(), true
}

// textField returns the text of the child element, or "" when absent.
func textField(el *etree.Element, tag string) string {
	s, _ := childText(el, tag)
	return s
}

// optionalText returns nil when the child element is missing. A present but
// empty element yields a pointer to "".
func optionalText(el *etree.Element, tag string) *string {
	s, ok := childText(el, tag)
	if !ok {
		return nil
	}
	return &s
}

// intField parses the child element text as an integer. Missing elements and
// unparseable text yield 0.
func intField[T constraints.Signed](el *etree.Element, tag string) T {
	s, _ := childText(el, tag)
	return parseInt[T](s)
}

// intAttr parses an attribute as an integer, 0 when missing or invalid.
func intAttr[T constraints.Signed](el *etree.Element, key string) T {
	return parseInt[T](el.SelectAttrValue(key, ""))
}

func parseInt[T constraints.Signed](s string) T {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return T(v)
}

// flagField reports whether the child element text is "1". Missing elements
// return dflt.
func flagField(el *etree.Element, tag string, dflt bool) bool {
	s, ok := childText(el, tag)
	if !ok {
		return dflt
	}
	return strings.TrimSpace(s) == "1"
}

// intList parses every child element named tag as an integer, in order.
func intList(el *etree.Element, tag string) []int {
	children := el.SelectElements(tag)
	values := make([]int, 0, len(children))
	for _, child := range children {
		values = append(values, parseInt[int](child.Text()))
	}
	return values
}

// indexedValues collects <tag index="i" value="v"/> children into a sparse map.
// Entries missing either attribute, or with non-integral ones, are skipped.
func indexedValues(el *etree.Element, tag string) map[int]int {
	m := make(map[int]int)
	for _, child := range el.SelectElements(tag) {
		idx := child.SelectAttr("index")
		val := child.SelectAttr("value")
		if idx == nil || val == nil {
			continue
		}
		i, err := strconv.Atoi(strings.TrimSpace(idx.Value))
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(val.Value))
		if err != nil {
			continue
		}
		m[i] = v
	}
	return m
}
