package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderController = `@RestController
@RequestMapping("/orders")
public class OrderController {
    @GetMapping("/{id}")
    public Order getOrder(@PathVariable Long id) { return null; }
}
`

func init() {
	color.NoColor = true
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCLI("--help")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage: springhttp <path>")
	for _, flag := range []string{"--url", "--out", "--ext", "--skip-unreadable", "--request-mapping", "--dto-bodies", "--query-params", "--path-vars", "--auth-detect", "--config"} {
		assert.Contains(t, stdout, flag)
	}
}

func TestRun_MissingPathArgument(t *testing.T) {
	code, _, stderr := runCLI()

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr, "springhttp: error:")
}

func TestRun_GeneratesTemplates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "OrderController.java"), orderController)
	out := filepath.Join(root, "http")

	code, stdout, stderr := runCLI(filepath.Join(root, "src"), "--out", out, "--url", "https://staging.example.com")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Generated: "+out+"/OrderController.http\n"+
		"\nDone! Generated 1 .http files in '"+out+"'\n", stdout)

	content, err := os.ReadFile(filepath.Join(out, "OrderController.http"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "GET https://staging.example.com/orders/{id}\n")
}

func TestRun_RequestOptions(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "OrderController.java")
	writeFile(t, source, orderController)

	t.Run("flags", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "http")
		code, _, stderr := runCLI(source, "--out", out, "--path-vars", "--auth-detect", "--query-params")
		require.Equal(t, 0, code, stderr)

		content, err := os.ReadFile(filepath.Join(out, "OrderController.http"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "# getOrder\nGET http://localhost:8080/orders/{{id}}\n\n###\n")
	})

	t.Run("config file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "http")
		config := filepath.Join(t.TempDir(), "springhttp.json")
		writeFile(t, config, `{"path_vars": true, "out": "`+out+`"}`)

		code, _, stderr := runCLI(source, "--config", config)
		require.Equal(t, 0, code, stderr)

		content, err := os.ReadFile(filepath.Join(out, "OrderController.http"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "GET http://localhost:8080/orders/{{id}}\nAuthorization: Bearer {{token}}\n")
	})
}

func TestRun_MissingInputPath(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")

	code, stdout, stderr := runCLI(filepath.Join(root, "missing"), "--out", out)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "[WARN]")
	assert.Equal(t, "\nDone! Generated 0 .http files in '"+out+"'\n", stdout)
}

func TestRun_UnreadableFileFails(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Bad.java"), "@RestController class Bad {} \xff")

	code, stdout, stderr := runCLI(root, "--out", filepath.Join(root, "out"))

	assert.Equal(t, 1, code)
	assert.NotContains(t, stdout, "Done!")
	assert.Contains(t, stderr, "error:")
	assert.Contains(t, stderr, "type: Decode Error")
	assert.Contains(t, stderr, "--skip-unreadable")

	code, stdout, _ = runCLI(root, "--out", filepath.Join(root, "out"), "--skip-unreadable")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Done! Generated 0 .http files")
}

func TestRun_ConfigFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content func(out string) string
	}{
		{"json", "springhttp.json", func(out string) string {
			return `{"url": "http://json.test", "out": "` + out + `"}`
		}},
		{"yaml", "springhttp.yaml", func(out string) string {
			return "url: http://yaml.test\nout: " + out + "\n"
		}},
		{"toml", "springhttp.toml", func(out string) string {
			return "url = \"http://toml.test\"\nout = \"" + out + "\"\n"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			source := filepath.Join(root, "OrderController.java")
			writeFile(t, source, orderController)
			out := filepath.Join(root, "from-config")
			config := filepath.Join(root, tt.file)
			writeFile(t, config, tt.content(out))

			code, stdout, stderr := runCLI(source, "--config", config)
			require.Equal(t, 0, code, stderr)
			assert.Contains(t, stdout, "in '"+out+"'")

			content, err := os.ReadFile(filepath.Join(out, "OrderController.http"))
			require.NoError(t, err)
			assert.Contains(t, string(content), "GET http://"+tt.name+".test/orders/{id}\n")
		})
	}

	t.Run("flags override the file", func(t *testing.T) {
		root := t.TempDir()
		source := filepath.Join(root, "OrderController.java")
		writeFile(t, source, orderController)
		config := filepath.Join(root, "springhttp.yaml")
		writeFile(t, config, "url: http://yaml.test\nout: "+filepath.Join(root, "ignored")+"\n")
		out := filepath.Join(root, "flag")

		code, _, stderr := runCLI(source, "--config="+config, "--out", out)
		require.Equal(t, 0, code, stderr)
		assert.FileExists(t, filepath.Join(out, "OrderController.http"))
		assert.NoDirExists(t, filepath.Join(root, "ignored"))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		root := t.TempDir()
		code, _, stderr := runCLI(root, "--config", filepath.Join(root, "nope.yaml"))
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "type: Configuration Error")
	})
}

func TestFindUserConfig(t *testing.T) {
	assert.Equal(t, "a.yml", findUserConfig([]string{"src", "--config", "a.yml"}))
	assert.Equal(t, "b.toml", findUserConfig([]string{"--config=b.toml", "src"}))
	assert.Equal(t, "", findUserConfig([]string{"src", "--config"}))
}
