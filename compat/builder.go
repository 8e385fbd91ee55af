// FILE: compat/builder.go
package compat

import (
	"fmt"

	"github.com/mgor/locust"
)

// Builder provides a flexible way to create configured logger adapters
// for gnet and fasthttp. It can use an existing *locust.Pipeline or
// create a new one from a *locust.Config.
type Builder struct {
	pipeline *locust.Pipeline
	cfg      *locust.Config
	err      error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPipeline specifies an existing pipeline to use for the adapters.
// Recommended for applications that already have a central pipeline.
// If this is set WithConfig is ignored.
func (b *Builder) WithPipeline(p *locust.Pipeline) *Builder {
	if p == nil {
		b.err = fmt.Errorf("locust/compat: provided pipeline cannot be nil")
		return b
	}
	b.pipeline = p
	return b
}

// WithConfig provides a configuration for a new pipeline. Used only
// when an existing pipeline is NOT provided via WithPipeline.
func (b *Builder) WithConfig(cfg *locust.Config) *Builder {
	b.cfg = cfg
	return b
}

// getPipeline resolves the pipeline to be used, creating and starting
// one if necessary.
func (b *Builder) getPipeline() (*locust.Pipeline, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.pipeline != nil {
		return b.pipeline, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = locust.DefaultConfig()
	}

	p, err := locust.NewPipeline(cfg)
	if err != nil {
		return nil, err
	}
	p.Start()

	// Cache the newly created pipeline for subsequent builds
	b.pipeline = p
	return p, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	p, err := b.getPipeline()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(p.Root(), p, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	p, err := b.getPipeline()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(p.Root(), opts...), nil
}

// GetPipeline returns the underlying pipeline, initializing it if needed.
func (b *Builder) GetPipeline() (*locust.Pipeline, error) {
	return b.getPipeline()
}

// --- Example Usage ---
//
// A single pipeline shared by gnet and fasthttp servers:
//
//	pipeline, err := locust.NewBuilder().LevelString("debug").Build()
//	if err != nil { /* handle error */ }
//	pipeline.Start()
//	defer pipeline.Shutdown()
//
//	builder := compat.NewBuilder().WithPipeline(pipeline)
//
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	var events gnet.EventHandler // your event handler
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
