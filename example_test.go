package md2html_test

import (
	"context"
	"fmt"
	"slices"

	"github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/event"
)

// Example demonstrates basic markdown to HTML conversion.
func Example() {
	conv, err := md2html.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2html.Input{
		Markdown: "# Hello {#hello}\n\nWorld",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(result.HTML)
	// Output:
	// <nav>
	// <h2>Table of Contents</h2>
	// <ul>
	// <li><a href="#hello">Hello</a></li>
	// </ul>
	// </nav>
	// <h1>Hello</h1>
	// <p>World</p>
}

// Example_classes demonstrates class attributes and skipping the TOC.
func Example_classes() {
	conv, err := md2html.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2html.Input{
		Markdown:       "## Intro\n\nText",
		HeadingClass:   "title",
		ParagraphClass: "lead",
		NoTOC:          true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(result.HTML)
	// Output:
	// <h2 class="title">Intro</h2>
	// <p class="lead">Text</p>
}

// ExampleRenderEvents demonstrates rendering a hand-built event stream.
func ExampleRenderEvents() {
	events := event.Wrap(event.Heading(2, "usage"), event.Text("Usage"))

	body, headings := md2html.RenderEvents(slices.Values(events), "", "")

	fmt.Print(body)
	fmt.Printf("%d %s %s\n", headings[0].Level, headings[0].ID, headings[0].Text)
	// Output:
	// <h2>Usage</h2>
	// 2 usage Usage
}

// ExampleBuildTOC demonstrates stepwise nesting of a level jump.
func ExampleBuildTOC() {
	fmt.Print(md2html.BuildTOC([]md2html.Heading{
		{Level: 1, ID: "a", Text: "A"},
		{Level: 3, ID: "b", Text: "B"},
	}))
	// Output:
	// <nav>
	// <h2>Table of Contents</h2>
	// <ul>
	// <li><a href="#a">A</a></li>
	// <ul>
	// <ul>
	// <li><a href="#b">B</a></li>
	// </ul>
	// </ul>
	// </ul>
	// </nav>
}
