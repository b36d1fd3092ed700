// Package pipeline connects the signature parser and the client generator to
// files on disk.
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
	"github.com/doITmagic/lsrc2gen/internal/phpsig"
	"github.com/doITmagic/lsrc2gen/internal/pyclient"
)

// Output is the in-memory result of a transformation.
type Output struct {
	Client    string
	Functions []codetypes.Function
	Warnings  []phpsig.Warning
}

// Report summarises a file generation run.
type Report struct {
	Source    string
	Target    string
	Functions int
	Warnings  []phpsig.Warning
	Elapsed   time.Duration
}

// Pipeline runs PHP text through the parser and the generator.
type Pipeline struct {
	parser    *phpsig.Parser
	generator *pyclient.Generator
	log       *zap.Logger
}

// New builds a pipeline. An empty templatePath selects the embedded client
// template.
func New(log *zap.Logger, templatePath string) (*Pipeline, error) {
	if log == nil {
		log = zap.NewNop()
	}
	genOpts := []pyclient.Option{pyclient.WithLogger(log)}
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read client template %s", templatePath)
		}
		genOpts = append(genOpts, pyclient.WithTemplate(string(data)))
	}
	return &Pipeline{
		parser:    phpsig.New(phpsig.WithLogger(log)),
		generator: pyclient.New(genOpts...),
		log:       log,
	}, nil
}

// Parse extracts descriptors only.
func (p *Pipeline) Parse(src string) (*phpsig.Result, error) {
	return p.parser.Parse(src)
}

// Transform parses src and renders the client. A hard parse error yields no
// output at all.
func (p *Pipeline) Transform(src string) (*Output, error) {
	res, err := p.parser.Parse(src)
	if err != nil {
		return nil, err
	}
	client, err := p.generator.Generate(res.Functions)
	if err != nil {
		return nil, err
	}
	return &Output{
		Client:    client,
		Functions: res.Functions,
		Warnings:  res.Warnings,
	}, nil
}

// GenerateFile reads source, transforms it and writes the client to target.
// The target is written to a sibling temp file first and renamed into place,
// so a failed run never leaves a truncated client behind.
func (p *Pipeline) GenerateFile(source, target string) (*Report, error) {
	start := time.Now()

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read source %s", source)
	}

	out, err := p.Transform(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to process %s", source)
	}

	if err := writeFileAtomic(target, []byte(out.Client)); err != nil {
		return nil, err
	}

	report := &Report{
		Source:    source,
		Target:    target,
		Functions: len(out.Functions),
		Warnings:  out.Warnings,
		Elapsed:   time.Since(start),
	}
	p.log.Info("Client generated",
		zap.String("source", source),
		zap.String("target", target),
		zap.Int("functions", report.Functions),
		zap.Int("warnings", len(report.Warnings)),
		zap.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(err, "failed to set permissions")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "failed to write %s", path)
}
