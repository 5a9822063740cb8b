package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/rendererr"
)

// graphCommand builds the "graph" debug subcommand: render a flowchart
// document's raw node/edge/subgraph structure via Graphviz, before our own
// compound hierarchical layout runs over it. This is a debugging aid for
// inspecting input shape, not a substitute for pkg/layout/flowchart — the
// two engines make no attempt to agree on coordinates.
func (c *CLI) graphCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Render a flowchart document's raw structure via Graphviz (debug aid)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			if doc.Flowchart == nil {
				return rendererr.NewInvalidModel("graph debug dump requires a flowchart model, got kind %q", doc.Kind)
			}

			dot := toDOT(doc.Flowchart)
			out, err := renderDOTSVG(dot)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
			} else {
				err = os.WriteFile(output, out, 0o644)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// toDOT serializes a flowchart model's nodes, subgraph membership, and
// edges as Graphviz DOT source, clusters rendered as `subgraph cluster_*`
// blocks.
func toDOT(m *diagram.FlowchartModel) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=" + string(m.Direction) + ";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")

	childOf := make(map[string]string, len(m.Subgraphs))
	for _, sg := range m.Subgraphs {
		for _, child := range sg.Children {
			childOf[child] = sg.ID
		}
	}
	for _, sg := range m.Subgraphs {
		fmt.Fprintf(&buf, "  subgraph cluster_%s {\n    label=%q;\n", sg.ID, sg.Title)
		for _, child := range sg.Children {
			if _, isCluster := childOf[child]; !isCluster {
				fmt.Fprintf(&buf, "    %q;\n", child)
			}
		}
		buf.WriteString("  }\n")
	}
	for _, n := range m.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.Label)
	}
	for _, e := range m.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// renderDOTSVG renders DOT source to SVG bytes via an in-process Graphviz.
func renderDOTSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
