package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"coordedit/coord"
)

// rawFlags holds flag values before validation. valueSet comes from
// FlagSet.Changed since 0 is a valid operand.
type rawFlags struct {
	vec      string
	op       string
	axis     string
	value    float32
	valueSet bool
	script   string
	verbose  bool
}

func (r *rawFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&r.vec, "vec", "", "Vector to edit in x,y,z format")
	fs.StringVar(&r.op, "op", "", "Operation: set, add, subtract, multiply or divide")
	fs.StringVar(&r.axis, "axis", "", "Axis selector: x, y, z, xy, xz, yz or xyz")
	fs.Float32Var(&r.value, "value", 0, "Operand applied to the selected components")
	fs.StringVar(&r.script, "script", "", "Path to a YAML edit script (.yaml or .yml)")
	fs.BoolVarP(&r.verbose, "verbose", "v", false, "Log every applied edit")
}

type flags struct {
	vec     coord.Vec3
	edit    coord.Edit
	script  string
	verbose bool
}

func newFlags(r rawFlags) (*flags, error) {
	if r.script == "" && r.vec == "" {
		return nil, fmt.Errorf("error: One of --vec or --script is required")
	}
	if r.script != "" && r.vec != "" {
		return nil, fmt.Errorf("error: --vec and --script cannot be used together")
	}
	if r.script != "" && (r.op != "" || r.axis != "" || r.valueSet) {
		return nil, fmt.Errorf("error: --op, --axis and --value cannot be used with --script")
	}

	f := &flags{script: r.script, verbose: r.verbose}

	if r.script != "" {
		if scriptExists, err := exists(r.script); !scriptExists {
			return nil, fmt.Errorf("error: Edit script not found:\n\t%s", err.Error())
		}
		if ext := filepath.Ext(r.script); ext != ".yaml" && ext != ".yml" {
			return nil, fmt.Errorf("error: Edit script must have a .yaml or .yml extension")
		}
		return f, nil
	}

	if !r.valueSet {
		return nil, fmt.Errorf("error: --value is required with --vec")
	}

	vec, err := parseVec3(r.vec)
	if err != nil {
		return nil, fmt.Errorf("error: Vector could not be parsed:\n\t%s", err.Error())
	}
	op, err := coord.ParseOperation(r.op)
	if err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}
	axis, err := coord.ParseAxis(r.axis)
	if err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}

	f.vec = vec
	f.edit = coord.Edit{Op: op, Axis: axis, Value: r.value}
	return f, nil
}

func parseVec3(s string) (coord.Vec3, error) {
	operands := strings.Split(s, ",")
	if len(operands) != 3 {
		return coord.Vec3{}, fmt.Errorf("error: Invalid format, expected \"x,y,z\"")
	}
	var c [3]float32
	for i, operand := range operands {
		f, err := strconv.ParseFloat(strings.TrimSpace(operand), 32)
		if err != nil {
			return coord.Vec3{}, fmt.Errorf("error: Invalid %c value", "xyz"[i])
		}
		c[i] = float32(f)
	}
	return coord.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func (f flags) Vec() coord.Vec3 {
	return f.vec
}

func (f flags) Edit() coord.Edit {
	return f.edit
}

func (f flags) Script() string {
	return f.script
}

func (f flags) Verbose() bool {
	return f.verbose
}
