package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/tkarstens/cubist/pkg/solver"
)

// Options configures graph rendering.
type Options struct {
	// Detailed includes the token solution in each class label.
	// When false, only the member variables are shown.
	Detailed bool
}

// ToDOT converts a solver snapshot to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Classes holding more than one variable are the result of cycle
// collapsing and are rendered with a grey fill to distinguish them
// from singleton classes.
func ToDOT(snap solver.Snapshot[string, string], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, c := range snap.Classes {
		label := fmtLabel(c, opts.Detailed)
		attrs := fmtAttrs(c, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", classID(c), strings.Join(attrs, ", "))
	}

	ids := make(map[int]string, len(snap.Classes))
	for _, c := range snap.Classes {
		ids[c.ID] = classID(c)
	}

	buf.WriteString("\n")
	for _, e := range snap.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", ids[e.From], ids[e.To])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// classID names a class after its sorted member variables so DOT output is
// stable across runs regardless of internal slot numbering.
func classID(c solver.Class[string, string]) string {
	vars := append([]string(nil), c.Variables...)
	sort.Strings(vars)
	return strings.Join(vars, ", ")
}

func fmtLabel(c solver.Class[string, string], detailed bool) string {
	label := classID(c)
	if !detailed {
		return label
	}
	if len(c.Tokens) == 0 {
		return label + "\n∅"
	}
	tokens := append([]string(nil), c.Tokens...)
	sort.Strings(tokens)
	return label + "\n{" + strings.Join(tokens, ", ") + "}"
}

func fmtAttrs(c solver.Class[string, string], label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if len(c.Variables) > 1 {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the image scales to
// its container instead of using Graphviz's fixed point dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
