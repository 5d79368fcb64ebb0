package adapters

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/core"
	"venvctl/internal/ports"
	"venvctl/internal/types"
)

// ScriptWriterAdapter renders standalone bootstrap scripts so machines
// without venvctl can still provision the environment.  The POSIX
// variant provisions through pyenv; the Windows variant relies on the
// py launcher and fails when the pinned series is absent.
type ScriptWriterAdapter struct{}

func NewScriptWriterAdapter() ScriptWriterAdapter {
	return ScriptWriterAdapter{}
}

type scriptData struct {
	EnvName  string
	Pin      string
	Series   string
	VenvDir  string
	Manifest string
	Prompt   string
	IndexURL string
	Upgrade  bool
}

func (a ScriptWriterAdapter) Render(spec types.EnvSpec, platform types.Platform) (string, error) {
	series, err := core.MinorSeries(spec.Python.Version)
	if err != nil {
		return "", err
	}
	data := scriptData{
		EnvName:  spec.Metadata.Name,
		Pin:      spec.Python.Version,
		Series:   series,
		VenvDir:  spec.Venv.Dir,
		Manifest: spec.Manifest.Path,
		Prompt:   spec.Venv.Prompt,
		IndexURL: spec.Pip.IndexURL,
		Upgrade:  spec.Pip.UpgradePip,
	}
	tmpl, ok := scriptTemplates[platform]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported platform: %s", platform))
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render bootstrap script").
			WithCause(err)
	}
	return b.String(), nil
}

var scriptTemplates = map[types.Platform]*template.Template{
	types.PlatformPosix:   template.Must(template.New("posix").Parse(posixScript)),
	types.PlatformWindows: template.Must(template.New("windows").Parse(windowsScript)),
}

const posixScript = `#!/usr/bin/env sh
# bootstrap for {{.EnvName}}
set -eu

if [ -n "${VIRTUAL_ENV:-}" ]; then
    deactivate 2>/dev/null || true
    unset VIRTUAL_ENV
fi

PY_PIN="{{.Pin}}"
PY_SERIES="{{.Series}}"
VENV_DIR="{{.VenvDir}}"
MANIFEST="{{.Manifest}}"

detected="$(python3 --version 2>/dev/null | cut -d' ' -f2 | cut -d. -f1,2 || true)"
if [ "$detected" = "$PY_SERIES" ]; then
    PYTHON="$(command -v python3)"
else
    pyenv install -s "$PY_PIN"
    PYTHON="$(pyenv prefix "$PY_PIN")/bin/python3"
fi

"$PYTHON" -m venv{{if .Prompt}} --prompt "{{.Prompt}}"{{end}} "$VENV_DIR"
. "$VENV_DIR/bin/activate"
{{if .Upgrade}}pip install --upgrade pip{{if .IndexURL}} --index-url "{{.IndexURL}}"{{end}}
{{end}}pip install -r "$MANIFEST"{{if .IndexURL}} --index-url "{{.IndexURL}}"{{end}}
`

const windowsScript = `# bootstrap for {{.EnvName}}
$ErrorActionPreference = "Stop"

if ($env:VIRTUAL_ENV) {
    if (Get-Command deactivate -ErrorAction SilentlyContinue) { deactivate }
    Remove-Item Env:VIRTUAL_ENV -ErrorAction SilentlyContinue
}

$series = "{{.Series}}"
$venvDir = "{{.VenvDir}}"
$manifest = "{{.Manifest}}"

& py "-$series" --version
if ($LASTEXITCODE -ne 0) {
    Write-Error "Python $series not found; install {{.Pin}} from python.org"
}

& py "-$series" -m venv{{if .Prompt}} --prompt "{{.Prompt}}"{{end}} $venvDir
& "$venvDir\Scripts\Activate.ps1"
{{if .Upgrade}}pip install --upgrade pip{{if .IndexURL}} --index-url "{{.IndexURL}}"{{end}}
{{end}}pip install -r $manifest{{if .IndexURL}} --index-url "{{.IndexURL}}"{{end}}
`

var _ ports.ScriptWriterPort = ScriptWriterAdapter{}
