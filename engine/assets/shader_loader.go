package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadShader reads <root>/shaders/<name> as GLSL text.
func LoadShader(root, name string) (string, error) {
	path := filepath.Join(root, "shaders", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("load shader %q: empty file", name)
	}
	return string(b), nil
}

// LoadShaderPair reads <name>.vert and <name>.frag from <root>/shaders.
func LoadShaderPair(root, name string) (vertex, fragment string, err error) {
	if vertex, err = LoadShader(root, name+".vert"); err != nil {
		return "", "", err
	}
	if fragment, err = LoadShader(root, name+".frag"); err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}
