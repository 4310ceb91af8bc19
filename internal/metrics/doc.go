// Package metrics provides generation and HTTP metrics behind a small
// Recorder interface.
//
// Components receive a Recorder through injection and default to
// NoopRecorder, so callers never nil-check:
//
//	gen := generator.New(cfg) // NoopRecorder
//	gen = generator.New(cfg, generator.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the registry it is given;
// HTTPHandler exposes that registry for scraping.
package metrics
