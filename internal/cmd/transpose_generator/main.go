// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// transpose_generator generates the specialized engines of the transpose package, one per tensor order
// (the loop nest depth), and registers each (dtype, order, output mode) combination in the engines table.
//
// It is run by `go generate` in the transpose package directory, and writes gen_engines.go and gen_register.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"slices"
	"strings"
	"text/template"

	"github.com/gomlx/transpose/pkg/support/xslices"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagMinOrder  = flag.Int("min_order", 1, "Smallest tensor order with a specialized engine.")
	flagMaxOrder  = flag.Int("max_order", 8, "Largest tensor order with a specialized engine.")
	flagOutputDir = flag.String("output_dir", "", "Directory where to write the generated files. Defaults to the current directory.")
)

var flagDTypes = xslices.Flag("dtypes", []string{"s", "d", "c", "z", "h", "b"},
	"Comma-separated abbreviations of the element types to generate engines for.", parseAbbrev)

const (
	enginesFileName  = "gen_engines.go"
	registerFileName = "gen_register.go"
)

// DTypeInfo describes one element type the engines are instantiated for.
type DTypeInfo struct {
	DType, GoType                 string
	KernelFactory, KernelPriority string
	Abbrev                        string
}

// LevelInfo describes one loop of the nest of an engine.
type LevelInfo struct {
	Level           int
	Indent          string
	InPrev, OutPrev string
}

// OrderInfo describes the engine of one order.
type OrderInfo struct {
	Order        int
	Levels       []LevelInfo
	KernelIndent string
	Closings     []string
}

type Data struct {
	MinOrder, MaxOrder int
	Orders             []OrderInfo
	DTypes             []DTypeInfo
	Modes              []string

	// UsesFloat16 and UsesBFloat16 tell whether the register file imports their packages.
	UsesFloat16, UsesBFloat16 bool
}

var (
	// dtypes lists the element types, and the kernel factory registered for each.
	dtypes = []DTypeInfo{
		{"Float32", "float32", "numberKernelFactory[float32]", "priorityGeneric", "s"},
		{"Float64", "float64", "numberKernelFactory[float64]", "priorityGeneric", "d"},
		{"Complex64", "complex64", "numberKernelFactory[complex64]", "priorityGeneric", "c"},
		{"Complex128", "complex128", "numberKernelFactory[complex128]", "priorityGeneric", "z"},
		{"Float16", "float16.Float16", "float16KernelFactory", "priorityTyped", "h"},
		{"BFloat16", "bfloat16.BFloat16", "bfloat16KernelFactory", "priorityTyped", "b"},
	}

	// modes are the type-level output modes, also used as suffix of the Mode constants.
	modes = []string{"Overwrite", "Accumulate"}
)

func parseAbbrev(abbrev string) (string, error) {
	for _, info := range dtypes {
		if info.Abbrev == abbrev {
			return abbrev, nil
		}
	}
	return "", errors.Errorf("unknown dtype abbreviation %q", abbrev)
}

// selectDTypes returns the dtypes with the given abbreviations, in the order of the catalog.
func selectDTypes(abbrevs []string) []DTypeInfo {
	var selected []DTypeInfo
	for _, info := range dtypes {
		if slices.Contains(abbrevs, info.Abbrev) {
			selected = append(selected, info)
		}
	}
	return selected
}

func makeOrders(minOrder, maxOrder int) []OrderInfo {
	orders := make([]OrderInfo, 0, maxOrder-minOrder+1)
	for order := minOrder; order <= maxOrder; order++ {
		info := OrderInfo{Order: order, KernelIndent: strings.Repeat("\t", order+1)}
		for level := range order {
			l := LevelInfo{
				Level:   level,
				Indent:  strings.Repeat("\t", level+1),
				InPrev:  "e.geo.inBase",
				OutPrev: "e.geo.outBase",
			}
			if level > 0 {
				l.InPrev = fmt.Sprintf("inPos%d", level-1)
				l.OutPrev = fmt.Sprintf("outPos%d", level-1)
			}
			info.Levels = append(info.Levels, l)
		}
		for level := order - 1; level >= 0; level-- {
			info.Closings = append(info.Closings, strings.Repeat("\t", level+1)+"}")
		}
		orders = append(orders, info)
	}
	return orders
}

var enginesTemplate = `// Code generated by internal/cmd/transpose_generator. DO NOT EDIT.

package transpose

import "github.com/gomlx/transpose/pkg/core/dtypes"

// MinOrder and MaxOrder are the range of tensor orders with a specialized engine.
const (
	MinOrder = {{.MinOrder}}
	MaxOrder = {{.MaxOrder}}
)
{{- range .Orders}}
{{- $last := sub .Order 1}}

// engine{{.Order}} is the specialized engine for tensors of order {{.Order}}.
type engine{{.Order}}[T dtypes.Element, M outputMode] struct {
	engineBase[T]
}

// newEngine{{.Order}} is the engineFactory of engine{{.Order}}[T, M].
func newEngine{{.Order}}[T dtypes.Element, M outputMode](in, out any, g *geometry, tuning Tuning) (engine, error) {
	e := &engine{{.Order}}[T, M]{}
	if err := e.setup(Slot{Order: {{.Order}}, Mode: modeOf[M]()}, in, out, g, tuning, e.runPartition); err != nil {
		return nil, err
	}
	return e, nil
}

// runPartition runs the loop nest over one partition, calling the kernel at the innermost level.
func (e *engine{{.Order}}[T, M]) runPartition(out []T, nest *loopNest, part *partition) {
	in, kern := e.in, e.kernel
	shape := nest.shape
	levelA, levelB := nest.levelA, nest.levelB
	var idx [{{.Order}}]int
{{- range .Levels}}
{{.Indent}}for idx[{{.Level}}] = part.begin[{{.Level}}]; idx[{{.Level}}] < part.end[{{.Level}}]; idx[{{.Level}}] += nest.step[{{.Level}}] {
{{.Indent}}	inPos{{.Level}} := {{.InPrev}} + idx[{{.Level}}]*nest.inStride[{{.Level}}]
{{.Indent}}	outPos{{.Level}} := {{.OutPrev}} + idx[{{.Level}}]*nest.outStride[{{.Level}}]
{{- end}}
{{.KernelIndent}}if nest.tiled {
{{.KernelIndent}}	shape.extA = min(nest.step[levelA], part.end[levelA]-idx[levelA])
{{.KernelIndent}}}
{{.KernelIndent}}shape.extB = min(nest.step[levelB], part.end[levelB]-idx[levelB])
{{.KernelIndent}}kern(in, out, inPos{{$last}}, outPos{{$last}}, &shape)
{{- range .Closings}}
{{.}}
{{- end}}
}
{{- end}}
`

var registerTemplate = `// Code generated by internal/cmd/transpose_generator. DO NOT EDIT.

package transpose

import (
	"github.com/gomlx/transpose/pkg/core/dtypes"
{{- if .UsesBFloat16}}
	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
{{- end}}
{{- if .UsesFloat16}}
	"github.com/x448/float16"
{{- end}}
)

func init() {
	// Kernels.
{{- range .DTypes}}
	kernelFactories.Register(dtypes.{{.DType}}, {{.KernelPriority}}, {{.KernelFactory}})
{{- end}}
{{- range $dtype := .DTypes}}

	// Engines: {{$dtype.DType}}
{{- range $.Orders}}
{{- $order := .Order}}
{{- range $.Modes}}
	registerEngine(dtypes.{{$dtype.DType}}, {{$order}}, Mode{{.}}, priorityGeneric, newEngine{{$order}}[{{$dtype.GoType}}, {{.}}])
{{- end}}
{{- end}}
{{- end}}
}
`

func generate(outputDir, fileName, text string, data Data) {
	tmpl := template.Must(template.New(fileName).
		Funcs(template.FuncMap{"sub": func(a, b int) int { return a - b }}).
		Parse(text))
	fullPath := path.Join(outputDir, fileName)
	f := must.M1(os.Create(fullPath))
	must.M(tmpl.Execute(f, data))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ transpose_generator:  \tsuccessfully generated %s\n", fullPath)
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagMinOrder < 1 || *flagMinOrder > *flagMaxOrder {
		must.M(errors.Errorf("invalid order range [%d, %d]: it requires 1 <= -min_order <= -max_order",
			*flagMinOrder, *flagMaxOrder))
	}
	outputDir := *flagOutputDir
	if outputDir == "" {
		outputDir = must.M1(os.Getwd())
	}
	data := Data{
		MinOrder:     *flagMinOrder,
		MaxOrder:     *flagMaxOrder,
		Orders:       makeOrders(*flagMinOrder, *flagMaxOrder),
		DTypes:       selectDTypes(*flagDTypes),
		Modes:        modes,
		UsesFloat16:  slices.Contains(*flagDTypes, "h"),
		UsesBFloat16: slices.Contains(*flagDTypes, "b"),
	}
	if len(data.DTypes) == 0 {
		must.M(errors.New("no dtypes selected with -dtypes"))
	}
	generate(outputDir, enginesFileName, enginesTemplate, data)
	generate(outputDir, registerFileName, registerTemplate, data)
}
