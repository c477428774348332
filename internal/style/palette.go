package style

import (
	"fmt"
	"sort"
)

// Scheme is a four-colour palette: primary (KDE line, strong text),
// secondary (rug), fill (histogram bars) and accent.
type Scheme struct {
	Name   string
	Colors [4]string
}

func (s Scheme) Primary() string   { return s.Colors[0] }
func (s Scheme) Secondary() string { return s.Colors[1] }
func (s Scheme) Fill() string      { return s.Colors[2] }
func (s Scheme) Accent() string    { return s.Colors[3] }

// Shared text colours
const (
	TitleColor = "#192231"
	FontColor  = "#9099A2"
	TableColor = "#192231"
)

const DefaultScheme = "custom"

// FunkyScheme replaces the requested scheme when funky output is asked for
const FunkyScheme = "ToddTerje"

var schemes = map[string]Scheme{
	"b_and_w":   {Name: "b_and_w", Colors: [4]string{"#D5D5D5", "#9099A2", "#6D7993", "#96858F"}},
	"ToddTerje": {Name: "ToddTerje", Colors: [4]string{"#F24C4E", "#EAB126", "#1FB58F", "#1B7B34"}},
	"cool_blue": {Name: "cool_blue", Colors: [4]string{"#99D3DF", "#88BBD6", "#CDCDCD", "#E9E9E9"}},
	"custom":    {Name: "custom", Colors: [4]string{"#192231", "#3C3C3C", "#CDCDCD", "#494E6B"}},
}

// Lookup finds a scheme by name; an empty name selects the default
func Lookup(name string) (Scheme, error) {
	if name == "" {
		name = DefaultScheme
	}
	s, ok := schemes[name]
	if !ok {
		return Scheme{}, fmt.Errorf("unknown colour scheme %q (available: %v)", name, Names())
	}
	return s, nil
}

// Resolve applies the funky override before looking a scheme up
func Resolve(name string, funky bool) (Scheme, error) {
	if funky {
		name = FunkyScheme
	}
	return Lookup(name)
}

// Names lists the available schemes alphabetically
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
