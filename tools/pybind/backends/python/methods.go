// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package python

import (
	"fmt"
	"text/template"

	"github.com/ippsav/tigerbeetle/tools/pybind"
)

// methodTemplate renders one client method. Single-event operations wrap
// the caller's event in a one-element list; in either arity the dispatched
// payload and the returned results are lists.
const methodTemplate = `    {{ if .Await }}async {{ end }}def {{ .Name }}(self, {{ .Param }}: {{ .ParamType }}) -> list[{{ .ResultType }}]:
        return {{ if .Await }}await {{ end }}self._submit(
            {{ .Member }},
            {{ .Events }},
            {{ .EventBinding }},
            {{ .ResultBinding }},
        )
`

var methodTmpl = template.Must(template.New("PythonMethodTemplate").Parse(methodTemplate))

type methodData struct {
	Await         bool
	Name          string
	Param         string
	ParamType     string
	ResultType    string
	Member        string
	Events        string
	EventBinding  string
	ResultBinding string
}

// methodSet renders one client class with a method per public operation.
// Internal operations (heartbeats, session registration) never get methods.
func (g *Generator) methodSet(class, base string, await bool) error {
	g.block()
	fmt.Fprintf(&g.buf, "class %s(%s):\n", class, base)
	emitted := 0
	for _, op := range g.operations {
		if op.Internal {
			continue
		}
		data, err := g.methodData(op, await)
		if err != nil {
			return err
		}
		if emitted > 0 {
			g.buf.WriteString("\n")
		}
		if err := methodTmpl.Execute(&g.buf, data); err != nil {
			return err
		}
		emitted++
	}
	if emitted == 0 {
		g.buf.WriteString("    pass\n")
	}
	return nil
}

func (g *Generator) methodData(op pybind.Operation, await bool) (methodData, error) {
	member, err := g.operationMember(op)
	if err != nil {
		return methodData{}, err
	}
	eventType, err := g.domainType(op.Event)
	if err != nil {
		return methodData{}, fmt.Errorf("operation %s: event: %w", op.Name, err)
	}
	resultType, err := g.domainType(op.Result)
	if err != nil {
		return methodData{}, fmt.Errorf("operation %s: result: %w", op.Name, err)
	}
	eventBinding, err := g.dispatchType(op.Event)
	if err != nil {
		return methodData{}, fmt.Errorf("operation %s: event: %w", op.Name, err)
	}
	resultBinding, err := g.dispatchType(op.Result)
	if err != nil {
		return methodData{}, fmt.Errorf("operation %s: result: %w", op.Name, err)
	}

	data := methodData{
		Await:         await,
		Name:          op.Name,
		Param:         op.EventName,
		ParamType:     eventType,
		ResultType:    resultType,
		Member:        member,
		Events:        op.EventName,
		EventBinding:  eventBinding,
		ResultBinding: resultBinding,
	}
	switch op.Arity {
	case pybind.ArityBatch:
		data.ParamType = "list[" + eventType + "]"
	case pybind.AritySingle:
		data.Events = "[" + op.EventName + "]"
	}
	return data, nil
}

// operationMember resolves an operation to a member reference on the
// generated operation enum, checking that the native enum actually declares
// a variant of that name.
func (g *Generator) operationMember(op pybind.Operation) (string, error) {
	enumName, ok := g.domain.Lookup(g.operationEnum)
	if !ok {
		return "", fmt.Errorf("operation enum %s has no domain mapping", g.operationEnum.Name)
	}
	for _, v := range g.operationEnum.Variants {
		if v.Name == op.Name {
			return enumName + "." + pybind.UpperCaseWithUnderscores(op.Name), nil
		}
	}
	return "", fmt.Errorf("operation %s is not declared by enum %s", op.Name, g.operationEnum.Name)
}

// dispatchType is the FFI binding a method hands to _submit for marshaling
// the payload: the ctypes class for extern structs, the lowered ctypes type
// otherwise.
func (g *Generator) dispatchType(t *pybind.Type) (string, error) {
	if t.Kind == pybind.TypeKindExternStruct {
		name, ok := pybind.Lookup(t, g.protocol, g.domain)
		if !ok {
			return "", fmt.Errorf("%s has no mapping", t.Name)
		}
		return structPrefix + name, nil
	}
	return g.ffiType(t)
}
