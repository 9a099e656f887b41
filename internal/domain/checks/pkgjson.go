package checks

import "encoding/json"

// loadPackageJSON parses the plugin's package.json into a generic map so
// checks can test field presence by name. A missing or unparsable file is
// normal input and comes back as ok=false.
func loadPackageJSON(pluginPath string) (map[string]any, bool) {
	content, ok := readPluginFile(pluginPath, "package.json")
	if !ok {
		return nil, false
	}
	var pkg map[string]any
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil, false
	}
	return pkg, true
}

// pkgString returns the string value of a top-level field, or "".
func pkgString(pkg map[string]any, key string) string {
	s, _ := pkg[key].(string)
	return s
}

// pkgScripts returns the scripts map with string values only.
func pkgScripts(pkg map[string]any) map[string]string {
	raw, _ := pkg["scripts"].(map[string]any)
	scripts := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			scripts[k] = s
		}
	}
	return scripts
}
