package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'shadowdom.style'
func tracer() tracing.Trace {
	return tracing.Select("shadowdom.style")
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// IsCustomProperty is a predicate for CSS custom properties ("--*" keys).
func IsCustomProperty(key string) bool {
	return strings.HasPrefix(key, "--")
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	return r
}

// IsSet is a predicate wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case, except for
// custom-property values, which are case-preserving.
func (pg *PropertyGroup) Set(key string, p Property) {
	if !IsCustomProperty(key) {
		p = Property(strings.ToLower(string(p)))
	}
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does
// nothing if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	if _, exists := pg.propsDict[key]; !exists {
		pg.Set(key, p)
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//
//	GroupNameFromPropertyKey("letter-spacing") => "Text"
//
// Custom properties ("--*") and unknown style property keys will return
// a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGFont      = "Font"
	PGText      = "Text"
	PGColor     = "Color"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"font-family":      PGFont, // Font
	"font-size":        PGFont,
	"font-style":       PGFont,
	"font-weight":      PGFont,
	"line-height":      PGFont,
	"text-align":       PGText, // Text
	"text-indent":      PGText,
	"letter-spacing":   PGText,
	"word-spacing":     PGText,
	"white-space":      PGText,
	"direction":        PGText,
	"color":            PGColor, // Color
	"background-color": PGColor,
	"width":            PGDimension, // Dimension
	"height":           PGDimension,
	"min-width":        PGDimension,
	"min-height":       PGDimension,
	"max-width":        PGDimension,
	"max-height":       PGDimension,
	"display":          PGDisplay, // Display
	"visibility":       PGDisplay,
	"position":         PGDisplay,
}

// InheritedProperties is the fixed list of style properties which normally
// inherit from the enclosing element, and which therefore get reset to
// 'initial' at a shadow-tree boundary by the style isolation pass.
var InheritedProperties = []string{
	"color", "font-family", "font-size", "font-style", "font-weight",
	"line-height", "text-align", "text-indent", "letter-spacing",
	"word-spacing", "white-space", "direction", "visibility",
}

// IsInherited returns wether a property is a member of the fixed
// inheritable list (see InheritedProperties).
func IsInherited(key string) bool {
	for _, k := range InheritedProperties {
		if k == key {
			return true
		}
	}
	return false
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a DOM node links to a
// property map, which contains zero or more property groups.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into
	// logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, v := range pmap.m {
		s += v.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	key = normalizeKey(key)
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add adds a property to this property map, e.g.,
//
//	pmap.Add("letter-spacing", "2pt")
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	key = normalizeKey(key)
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	tracer().P("key", key).Debugf("style: setting %s = %s", key, value)
	group.Set(key, value)
}

// normalizeKey lower-cases style property keys. Custom-property keys are
// case-preserving.
func normalizeKey(key string) string {
	if IsCustomProperty(key) {
		return key
	}
	return strings.ToLower(key)
}
