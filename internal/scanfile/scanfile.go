// Package scanfile loads per-player scan inputs from YAML or JSON files.
// This is the collaborator boundary around the reconciliation engine: a file
// that cannot be read or whose top level is not a list of player entries is
// a single reportable failure here, never a per-field unknown inside the
// engine.
package scanfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fairscan/fairscan/pkg/errors"
	"github.com/fairscan/fairscan/pkg/scans"
)

// Load reads scan inputs from path. The format follows the file extension:
// .json decodes as JSON, everything else as YAML. "-" reads YAML from stdin.
func Load(path string) ([]scans.Input, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(data, path)
	default:
		return decodeYAML(data, path)
	}
}

func decodeJSON(data []byte, path string) ([]scans.Input, error) {
	var inputs []scans.Input
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, errors.NewParseError("json", path, "expected a top-level list of player entries", err)
	}
	return validate(inputs)
}

func decodeYAML(data []byte, path string) ([]scans.Input, error) {
	var inputs []scans.Input
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, errors.NewParseError("yaml", path, "expected a top-level list of player entries", err)
	}
	return validate(inputs)
}

// validate rejects entries the engine cannot identify. Structural oddities
// inside a single entry's sources are the engine's business and degrade to
// unknown fields there; a nameless entry is unusable and fails the load.
func validate(inputs []scans.Input) ([]scans.Input, error) {
	for i, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			return nil, errors.NewValidationError(
				fmt.Sprintf("[%d].name", i), in.Name, "player name must not be empty")
		}
	}
	return inputs, nil
}
