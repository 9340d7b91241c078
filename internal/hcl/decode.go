package hcl

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/kballard/go-shellquote"
	"github.com/vk/gradlerun/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext exposes the process environment as the `env` object.
func newEvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func defaultEvalContext() *hcl.EvalContext {
	return newEvalContext(os.Environ())
}

// decodeSettings decodes the shared settings attributes from body.
func decodeSettings(body hcl.Body, evalCtx *hcl.EvalContext) (config.SettingsDecl, hcl.Diagnostics) {
	var raw settingsBody
	diags := gohcl.DecodeBody(body, evalCtx, &raw)
	if diags.HasErrors() {
		return config.SettingsDecl{}, diags
	}

	args, argDiags := decodeArgumentList(raw.Arguments, evalCtx)
	diags = append(diags, argDiags...)
	jvmArgs, jvmDiags := decodeArgumentList(raw.JvmArguments, evalCtx)
	diags = append(diags, jvmDiags...)
	if diags.HasErrors() {
		return config.SettingsDecl{}, diags
	}

	return config.SettingsDecl{
		GradleDistribution: raw.GradleDistribution,
		GradleUserHome:     raw.GradleUserHome,
		JavaHome:           raw.JavaHome,
		Arguments:          args,
		JvmArguments:       jvmArgs,
		OfflineMode:        raw.OfflineMode,
		BuildScansEnabled:  raw.BuildScansEnabled,
		ShowExecutionsView: raw.ShowExecutionsView,
		ShowConsoleView:    raw.ShowConsoleView,
	}, diags
}

// decodeArgumentList evaluates an argument attribute. A missing attribute
// evaluates to null and yields nil (not declared). A string is split like a
// shell would; a list or tuple must contain only strings.
func decodeArgumentList(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}
	if !val.IsWhollyKnown() {
		return nil, append(diags, argumentDiag(expr, "The value must be known when settings are loaded."))
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		words, err := shellquote.Split(val.AsString())
		if err != nil {
			return nil, append(diags, argumentDiag(expr, fmt.Sprintf("Cannot split argument string: %s.", err)))
		}
		if words == nil {
			words = []string{}
		}
		return words, diags

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		list, err := convert.Convert(val, cty.List(cty.String))
		if err != nil {
			return nil, append(diags, argumentDiag(expr, fmt.Sprintf("All arguments must be strings: %s.", err)))
		}
		out := []string{}
		if err := gocty.FromCtyValue(list, &out); err != nil {
			return nil, append(diags, argumentDiag(expr, err.Error()))
		}
		return out, diags

	default:
		return nil, append(diags, argumentDiag(expr,
			fmt.Sprintf("Expected a string or a list of strings, got %s.", ty.FriendlyName())))
	}
}

func argumentDiag(expr hcl.Expression, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid argument list",
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}
}
