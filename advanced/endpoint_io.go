package advanced

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlEndpoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	D float64 `yaml:"d"`
}

// UnmarshalYAML accepts {x, y, d} mappings. YAML's .inf spells the sub-path
// sentinel.
func (e *Endpoint) UnmarshalYAML(value *yaml.Node) error {
	var raw yamlEndpoint
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*e = NewEndpoint(raw.X, raw.Y, raw.D)
	return nil
}

func (e Endpoint) MarshalYAML() (interface{}, error) {
	return yamlEndpoint{X: e.P.X, Y: e.P.Y, D: e.D}, nil
}

// DecodeEndpointsYAML reads a YAML sequence of endpoints.
func DecodeEndpointsYAML(r io.Reader) (EndpointList, error) {
	var list EndpointList
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		return nil, errors.Wrap(err, "decoding endpoint list")
	}
	return list, nil
}

// ReadEndpoints reads one endpoint per line in the form "x y d". Blank lines
// and lines starting with # are ignored. "inf" is accepted for d.
func ReadEndpoints(r io.Reader) (EndpointList, error) {
	var list EndpointList
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, errors.Errorf("line %d: want 3 fields, got %d", lineNo, len(parts))
		}
		var values [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			values[i] = v
		}
		list = append(list, NewEndpoint(values[0], values[1], values[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading endpoints")
	}
	return list, nil
}
