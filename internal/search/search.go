// Package search bootstraps the hosted documentation search widget.
package search

import (
	"errors"
	"fmt"
)

// DefaultInputSelector matches the navigation bar's search box.
const DefaultInputSelector = ".algolia_searchbox"

// Bootstrapper initializes the search widget for one navigation bar.
type Bootstrapper interface {
	Bootstrap() error
}

// BootstrapFunc adapts a function to Bootstrapper.
type BootstrapFunc func() error

// Bootstrap implements Bootstrapper.
func (f BootstrapFunc) Bootstrap() error { return f() }

// Noop is used when no search index is configured.
var Noop Bootstrapper = BootstrapFunc(func() error { return nil })

// Sink delivers messages to the browser hosting the widget.
type Sink interface {
	Send(msg any) error
}

// Config identifies the DocSearch index.
type Config struct {
	APIKey        string
	IndexName     string
	InputSelector string
}

// Enabled reports whether an index is configured.
func (c Config) Enabled() bool {
	return c.APIKey != "" || c.IndexName != ""
}

// Validate checks that the index can be initialized.
func (c Config) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, errors.New("api key is empty"))
	}
	if c.IndexName == "" {
		errs = append(errs, errors.New("index name is empty"))
	}
	return errors.Join(errs...)
}

// Command is the message that tells the client to start DocSearch.
type Command struct {
	Type          string `json:"type"`
	APIKey        string `json:"apiKey"`
	IndexName     string `json:"indexName"`
	InputSelector string `json:"inputSelector"`
}

// DocSearch bootstraps an Algolia DocSearch widget through a sink.
type DocSearch struct {
	cfg  Config
	sink Sink
}

// NewDocSearch returns a bootstrapper that sends the DocSearch command to
// sink. An empty input selector defaults to DefaultInputSelector.
func NewDocSearch(cfg Config, sink Sink) *DocSearch {
	if cfg.InputSelector == "" {
		cfg.InputSelector = DefaultInputSelector
	}
	return &DocSearch{cfg: cfg, sink: sink}
}

// Command returns the client command for the configured index.
func (d *DocSearch) Command() Command {
	return Command{
		Type:          "docsearch",
		APIKey:        d.cfg.APIKey,
		IndexName:     d.cfg.IndexName,
		InputSelector: d.cfg.InputSelector,
	}
}

// Bootstrap implements Bootstrapper.
func (d *DocSearch) Bootstrap() error {
	if err := d.cfg.Validate(); err != nil {
		return fmt.Errorf("docsearch: %w", err)
	}
	if d.sink == nil {
		return errors.New("docsearch: no sink")
	}
	if err := d.sink.Send(d.Command()); err != nil {
		return fmt.Errorf("docsearch: send: %w", err)
	}
	return nil
}
