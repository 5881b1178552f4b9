package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics
	d.AddWarning(CodeOmittedKind, "quaternion has no generated form", "scene.Player", "Rotation")
	d.AddInfo(CodeNoMembers, "no member has a static form", "scene.Light", "")

	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError(CodeRender, "bad identifier", "scene.Player", "")

	assert.True(t, d.HasErrors())
	require.Len(t, d.All(), 3)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	assert.Equal(t, DiagnosticInfo, d.All()[2].Severity)
	assert.EqualError(t, d.Error(), "[scene.Player]: [render] bad identifier")
}

func TestDiagnostic_String(t *testing.T) {
	diag := Diagnostic{
		Code:    CodeOmittedKind,
		Message: "list members are drawn by the object tree",
		Type:    "scene.Inventory",
		Member:  "Items",
	}

	assert.Equal(t, "[scene.Inventory] Items: [omitted-kind] list members are drawn by the object tree", diag.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}
