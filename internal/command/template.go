package command

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMissingField reports a template placeholder that had no value.
var ErrMissingField = errors.New("missing template field")

// Field names a template placeholder.
type Field string

const (
	FieldLog            Field = "log"
	FieldCharenc        Field = "charenc"
	FieldSource         Field = "source"
	FieldTrack          Field = "track"
	FieldSubtitleSource Field = "subtitle_source"
	FieldSubtitles      Field = "subtitles"
	FieldSubFilter      Field = "sub_filter"
	FieldFilters        Field = "filters"
	FieldMode           Field = "mode"
	FieldPalette        Field = "palette"
	FieldPaletteUse     Field = "paletteuse"
	FieldGIF            Field = "gif"
	FieldOptimized      Field = "optimized"

	// fragment-only fields
	FieldFPS        Field = "fps"
	FieldSize       Field = "size"
	FieldResize     Field = "resize"
	FieldEscapedSub Field = "escaped_subtitles"
	FieldDither     Field = "dither"
	FieldBayerScale Field = "bayer_scale"
	FieldNew        Field = "new"
	FieldDiffMode   Field = "diff_mode"
)

const trimToken = "{trim}"

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// Template is the argv skeleton for one StepKind.
type Template struct {
	Kind   StepKind
	Tool   Tool
	Tokens []string
}

var templates = [numStepKinds]Template{
	ExtractSubtitleTrack: {
		Kind: ExtractSubtitleTrack,
		Tool: ToolTranscoder,
		Tokens: []string{
			"-v", "{log}", "-y", "-sub_charenc", "{charenc}", trimToken,
			"-i", "{source}", "-map", "0:s:{track}", "{subtitles}",
		},
	},
	ExtractSubtitleFile: {
		Kind: ExtractSubtitleFile,
		Tool: ToolTranscoder,
		Tokens: []string{
			"-v", "{log}", "-y", "-sub_charenc", "{charenc}", trimToken,
			"-i", "{subtitle_source}", "{subtitles}",
		},
	},
	GeneratePalette: {
		Kind: GeneratePalette,
		Tool: ToolTranscoder,
		Tokens: []string{
			"-v", "{log}", "-y", trimToken, "-i", "{source}",
			"-vf", "{sub_filter}{filters},palettegen=stats_mode={mode}", "{palette}",
		},
	},
	CreateGIFTwoPass: {
		Kind: CreateGIFTwoPass,
		Tool: ToolTranscoder,
		Tokens: []string{
			"-v", "{log}", "-y", trimToken, "-i", "{source}", "-i", "{palette}",
			"-lavfi", "{sub_filter}{filters}[x];[x][1:v]{paletteuse}", "-f", "gif", "{gif}",
		},
	},
	CreateGIFOnePass: {
		Kind: CreateGIFOnePass,
		Tool: ToolTranscoder,
		Tokens: []string{
			"-v", "{log}", "-y", trimToken, "-i", "{source}",
			"-vf", "{sub_filter}{filters}", "-f", "gif", "{gif}",
		},
	},
	OptimizeGIF: {
		Kind:   OptimizeGIF,
		Tool:   ToolOptimizer,
		Tokens: []string{"-b", "-O3", "{gif}", "-o", "{optimized}"},
	},
}

// TemplateFor returns the template registered for kind.
func TemplateFor(kind StepKind) (Template, bool) {
	if kind < 0 || kind >= numStepKinds {
		return Template{}, false
	}
	return templates[kind], true
}

// Values holds placeholder substitutions for a run.
type Values struct {
	fields  map[Field]string
	trim    []string
	trimSet bool
}

// NewValues returns an empty value set.
func NewValues() *Values {
	return &Values{fields: make(map[Field]string)}
}

// Set assigns a placeholder value. Empty strings are valid values.
func (v *Values) Set(field Field, value string) *Values {
	v.fields[field] = value
	return v
}

// SetTrim assigns the trim-window fragment spliced at {trim}.
func (v *Values) SetTrim(args []string) *Values {
	v.trim = append([]string(nil), args...)
	v.trimSet = true
	return v
}

// Lookup returns the value for field.
func (v *Values) Lookup(field Field) (string, bool) {
	value, ok := v.fields[field]
	return value, ok
}

// Build renders the template for kind into a Step.
func Build(kind StepKind, tools Tools, values *Values) (Step, error) {
	tmpl, ok := TemplateFor(kind)
	if !ok {
		return Step{}, fmt.Errorf("build %s: unknown step kind", kind)
	}
	binary := strings.TrimSpace(tools.binary(tmpl.Tool))
	if binary == "" {
		return Step{}, fmt.Errorf("build %s: no executable configured", kind)
	}
	if values == nil {
		values = NewValues()
	}

	args := make([]string, 0, len(tmpl.Tokens)+4)
	for _, token := range tmpl.Tokens {
		if token == trimToken {
			if !values.trimSet {
				return Step{}, fmt.Errorf("build %s: %w: trim", kind, ErrMissingField)
			}
			args = append(args, values.trim...)
			continue
		}
		rendered, err := expand(token, values.fields)
		if err != nil {
			return Step{}, fmt.Errorf("build %s: %w", kind, err)
		}
		args = append(args, rendered)
	}
	return Step{Kind: kind, Binary: binary, Args: args}, nil
}

func expand(token string, fields map[Field]string) (string, error) {
	var missing []string
	out := placeholder.ReplaceAllStringFunc(token, func(match string) string {
		name := Field(match[1 : len(match)-1])
		value, ok := fields[name]
		if !ok {
			missing = append(missing, string(name))
			return match
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return out, nil
}

func mustExpand(format string, fields map[Field]string) string {
	out, err := expand(format, fields)
	if err != nil {
		panic(fmt.Sprintf("command: fragment %q: %v", format, err))
	}
	return out
}
