package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glamorous-css/website/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Title:   "Basics | glamorous",
		Lang:    "pt-BR",
		Meta:    []MetaTag{{Name: "description", Content: "docs"}},
		Styles:  []string{"body{margin:0}"},
		Scripts: []ScriptTag{{Src: "/assets/nav.js", Defer: true}},
		Body:    vdom.Main("hi"),
	})
	if err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html lang="pt-BR">`,
		`<meta charset="utf-8">`,
		`<meta content="docs" name="description">`,
		"<title>Basics | glamorous</title>",
		"<style>body{margin:0}</style>",
		"<main>hi</main>",
		`<script defer src="/assets/nav.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPageDefaultLang(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{Title: "x"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<html lang="en">`) {
		t.Errorf("missing default lang: %s", buf.String())
	}
}
