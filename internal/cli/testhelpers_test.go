package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/toyz/springhttp/internal/utils"
)

const orderControllerSource = `package com.example.orders;

@RestController
@RequestMapping("/orders")
public class OrderController {

    @GetMapping("/{id}")
    public Order getOrder(@PathVariable Long id) {
        return service.find(id);
    }
}
`

func init() {
	color.NoColor = true
}

// testDiagnostics returns a diagnostic system writing into the returned buffers
func testDiagnostics(level utils.DiagnosticLevel) (*utils.DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return utils.NewDiagnosticSystemWithWriters(level, &stdout, &stderr), &stdout, &stderr
}

// writeFile creates path under root with content, making parent directories
func writeFile(t *testing.T, root, path, content string) string {
	t.Helper()
	full := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	return full
}
