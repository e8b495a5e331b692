// Package stagegraph draws the stages of a plot run as a DOT graph annotated with their durations.
package stagegraph

import (
	"fmt"
	"io"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/measure"
)

// StageGraph is the chain of stages a plot run went through.
type StageGraph struct {
	graph graph.Graph[string, string]
}

// New links the stages recorded by msr in the order they ran.
func New(msr measure.Measure) (*StageGraph, error) {
	sg := &StageGraph{
		graph: graph.New(graph.StringHash, graph.Directed(), graph.Acyclic()),
	}

	var previous string

	for _, name := range msr.Names() {
		mt := msr.GetMetric(name)

		err := sg.graph.AddVertex(name,
			graph.VertexAttribute("xlabel", mt.GetTotalDuration().String()),
			graph.VertexWeight(int(mt.GetTotalDuration())),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add stage %s", name)
		}

		if previous != "" {
			err = sg.graph.AddEdge(previous, name)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to link %s to %s", previous, name)
			}
		}

		previous = name
	}

	return sg, nil
}

// Stages returns the stages in run order.
func (sg *StageGraph) Stages() ([]string, error) {
	order, err := graph.TopologicalSort(sg.graph)
	if err != nil {
		return nil, errors.Wrap(err, "unable to order stages")
	}

	return order, nil
}

// Draw writes the graph in DOT format.
func (sg *StageGraph) Draw(wrt io.Writer) error {
	desc, err := sg.description()
	if err != nil {
		return errors.Wrap(err, "unable to describe stages")
	}

	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict digraph {
	rankdir="LR";
{{range $s := .Statements}}	"{{.Source}}" {{if .Target}}-> "{{.Target}}";{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}}weight={{.SourceWeight}} ];{{end}}
{{end}}}
`

type description struct {
	Statements []statement
}

type statement struct {
	Source         string
	Target         string
	HTMLAttributes map[string]string
	SourceWeight   int
}

func (sg *StageGraph) description() (description, error) {
	desc := description{}

	order, err := sg.Stages()
	if err != nil {
		return desc, err
	}

	adjacencyMap, err := sg.graph.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for _, stage := range order {
		_, properties, err := sg.graph.VertexWithProperties(stage)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		if xlabel, ok := properties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, stage, xlabel)
		}

		desc.Statements = append(desc.Statements, statement{
			Source:         stage,
			SourceWeight:   properties.Weight,
			HTMLAttributes: htmlAttributes,
		})

		for target := range adjacencyMap[stage] {
			desc.Statements = append(desc.Statements, statement{Source: stage, Target: target})
		}
	}

	return desc, nil
}
