package app_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clasp/internal/adapters/cache"
	"go.trai.ch/clasp/internal/adapters/config"
	"go.trai.ch/clasp/internal/adapters/engine"
	"go.trai.ch/clasp/internal/adapters/fs"
	"go.trai.ch/clasp/internal/adapters/telemetry"
	"go.trai.ch/clasp/internal/app"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/clasp/internal/core/ports/mocks"
	"go.trai.ch/clasp/internal/resolver"
	"go.trai.ch/clasp/internal/transform"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Error(error) {}

// newApp wires a complete application over a temp workspace: real
// loader, real engine, real stages writing into a temp work dir.
func newApp(t *testing.T, agentAvailable bool) (*app.App, string, *bytes.Buffer) {
	t.Helper()

	cwd := t.TempDir()
	workDir := filepath.Join(cwd, ".clasp", "transforms")
	require.NoError(t, os.MkdirAll(workDir, 0o755))

	stages := transform.NewStages(workDir, fs.NewHasher())
	pipelines := resolver.Pipelines{
		Analysis:           stages.Analysis,
		Merge:              stages.Merge,
		ExternalInstrument: stages.ExternalInstrument,
		ProjectInstrument:  stages.ProjectInstrument,
	}

	factory := cache.NewFactory()
	res := resolver.New(pipelines, func() ports.OriginalFileCache {
		return factory.NewService()
	}, agentAvailable, nopLogger{})

	eng := engine.New(telemetry.NewNoOpTracer(), nopLogger{})

	out := &bytes.Buffer{}
	a := app.New(&config.FileConfigLoader{}, eng, res, nopLogger{}).WithOutput(out)
	return a, cwd, out
}

func writeJar(t *testing.T, cwd, name, content string) string {
	t.Helper()
	path := filepath.Join(cwd, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeWorkspaceFile(t *testing.T, cwd, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, config.DefaultFilename), []byte(content), 0o644))
}

func TestResolve_PrintsInstrumentedClasspath(t *testing.T) {
	a, cwd, out := newApp(t, false)

	libA := writeJar(t, cwd, "a.jar", "a bytes")
	appJar := writeJar(t, cwd, "app.jar", "app bytes")
	writeWorkspaceFile(t, cwd, fmt.Sprintf(`
dependencies:
  - file: %s
    module: com.example:a:1.0
  - file: %s
    project: ":app"
`, libA, appJar))

	require.NoError(t, a.Resolve(context.Background(), cwd))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "instrumented-a.jar", filepath.Base(lines[0]))
	assert.Equal(t, "instrumented-app.jar", filepath.Base(lines[1]))
}

func TestResolve_AgentAvailableSubstitutesOriginals(t *testing.T) {
	a, cwd, out := newApp(t, true)

	libA := writeJar(t, cwd, "a.jar", "a bytes")
	writeWorkspaceFile(t, cwd, fmt.Sprintf(`
dependencies:
  - file: %s
    module: com.example:a:1.0
`, libA))

	require.NoError(t, a.Resolve(context.Background(), cwd))

	// The placeholder emitted by the pipeline resolves back to the
	// untouched original archive.
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, libA, lines[0])
}

func TestResolve_PreservesDeclarationOrder(t *testing.T) {
	a, cwd, out := newApp(t, false)

	libA := writeJar(t, cwd, "a.jar", "a bytes")
	libB := writeJar(t, cwd, "b.jar", "b bytes")
	appJar := writeJar(t, cwd, "app.jar", "app bytes")
	writeWorkspaceFile(t, cwd, fmt.Sprintf(`
dependencies:
  - file: %s
    module: com.example:a:1.0
  - file: %s
    project: ":app"
  - file: %s
    module: com.example:b:1.0
`, libA, appJar, libB))

	require.NoError(t, a.Resolve(context.Background(), cwd))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "instrumented-a.jar", filepath.Base(lines[0]))
	assert.Equal(t, "instrumented-app.jar", filepath.Base(lines[1]))
	assert.Equal(t, "instrumented-b.jar", filepath.Base(lines[2]))
}

func TestResolve_ConfigLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/nowhere").Return(nil, zerr.New("no workspace file"))

	eng := engine.New(telemetry.NewNoOpTracer(), nopLogger{})
	res := resolver.New(resolver.Pipelines{}, func() ports.OriginalFileCache {
		return cache.NewFactory().NewService()
	}, false, nopLogger{})

	a := app.New(loader, eng, res, nopLogger{}).WithOutput(&bytes.Buffer{})
	err := a.Resolve(context.Background(), "/nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load workspace configuration")
}
