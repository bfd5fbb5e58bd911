package materialize

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeSettings deep-merges newContent into the JSON document at
// existingPath. If the file does not exist or does not parse as a JSON
// object, newContent is returned unchanged; the lenient fallback is
// deliberate, a broken user settings file must not block materialization.
//
// Merge rules: keys present on both sides with object values merge
// recursively; every other value (arrays and scalars included) is replaced
// wholesale by the new one.
func MergeSettings(existingPath string, newContent map[string]interface{}) map[string]interface{} {
	data, err := os.ReadFile(existingPath)
	if err != nil {
		return newContent
	}

	var existing map[string]interface{}
	if err := json.Unmarshal(data, &existing); err != nil {
		return newContent
	}

	return deepMerge(existing, newContent)
}

// deepMerge recursively merges update into base, returning a new map.
func deepMerge(base, update map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base)+len(update))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range update {
		if baseMap, ok := result[k].(map[string]interface{}); ok {
			if updateMap, ok := v.(map[string]interface{}); ok {
				result[k] = deepMerge(baseMap, updateMap)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// writeSettings serializes a settings document with stable indentation and a
// single trailing newline for reproducible diffs.
func writeSettings(path string, content map[string]interface{}) error {
	out, err := json.MarshalIndent(content, "", "    ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}
	return os.WriteFile(path, append(out, '\n'), 0644)
}

// applySettings routes one staged settings file onto its destination:
// merge when a destination file exists, plain copy otherwise. Any failure
// while reading, parsing, or merging degrades to a raw overwrite copy with a
// warning; materialization always continues.
func applySettings(srcFile, destFile string, result *Result) error {
	newContent, err := readSettings(srcFile)
	if err == nil {
		if _, statErr := os.Stat(destFile); statErr != nil {
			// No existing settings file; a plain copy is the merge result.
			return copyFile(srcFile, destFile)
		}
		merged := MergeSettings(destFile, newContent)
		if writeErr := writeSettings(destFile, merged); writeErr == nil {
			result.Merged = append(result.Merged, destFile)
			return nil
		} else {
			err = fmt.Errorf("writing merged settings: %w", writeErr)
		}
	}

	result.Warnings = append(result.Warnings,
		fmt.Sprintf("could not merge %s, copying instead: %v", destFile, err))
	return copyFile(srcFile, destFile)
}

// readSettings parses a staged settings file as a JSON object.
func readSettings(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	var content map[string]interface{}
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return content, nil
}
