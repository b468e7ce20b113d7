package game

import (
	"fmt"
	"strings"
)

// ChartSet holds every chart and resource unpacked from one archive.
type ChartSet struct {
	Name      string
	Charts    []*Chart
	Resources map[string][]byte

	// Entries that failed to parse, keyed by entry name
	Rejected map[string]error
}

func NewChartSet(filename string) *ChartSet {
	return &ChartSet{
		Name:      SetName(filename),
		Resources: map[string][]byte{},
		Rejected:  map[string]error{},
	}
}

// SetName strips the extension from an archive filename.
// "song.osz" -> "song", "song" -> "song", ".osz" -> ".osz"
func SetName(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i <= 0 {
		return filename
	}
	return filename[:i]
}

type ResourceMissingError struct {
	Set  string
	Name string
}

func (e *ResourceMissingError) Error() string {
	return fmt.Sprintf("resource %q is not in %q", e.Name, e.Set)
}

func (s *ChartSet) Resource(name string) ([]byte, error) {
	data, ok := s.Resources[name]
	if !ok || name == "" {
		return nil, &ResourceMissingError{Set: s.Name, Name: name}
	}
	return data, nil
}
