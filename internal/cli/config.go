package cli

import (
	"maps"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/merman-go/merman/pkg/diagram"
)

// loadConfig reads a TOML configuration file and deep-merges it over
// diagram.DefaultConfig(). An empty path returns the defaults unchanged.
// This merge is a CLI-level concern: the core always receives an
// already-effective diagram.Config and never loads a file itself.
func loadConfig(path string) (diagram.Config, error) {
	base := diagram.DefaultConfig()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var overrides map[string]any
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return nil, err
	}
	return mergeConfig(base, overrides), nil
}

// mergeConfig overlays override keys onto base. Both the flat
// "flowchart.nodeSpacing"-style keys and nested TOML tables
// (`[flowchart]\nnodeSpacing = 80`) are accepted: a nested table is
// flattened into its dotted-key form before merging.
func mergeConfig(base diagram.Config, overrides map[string]any) diagram.Config {
	out := make(diagram.Config, len(base)+len(overrides))
	maps.Copy(out, base)
	flattenInto(out, "", overrides)
	return out
}

func flattenInto(out diagram.Config, prefix string, table map[string]any) {
	for k, v := range table {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(out, key, nested)
			continue
		}
		out[key] = v
	}
}
