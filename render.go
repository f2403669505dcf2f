package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/spf13/afero"
)

type renderOpts struct {
	provider string
	token    string
	logPath  string
	output   string
}

// runRender is a batch version of the web UI: it reads a log file,
// geolocates found IPs and writes a standalone HTML page either into
// output file or into out.
func runRender(ctx context.Context,
	fs afero.Fs,
	out io.Writer,
	conf *config,
	log *logger,
	opts renderOpts) error {
	content, err := afero.ReadFile(fs, opts.logPath)
	if err != nil {
		return fmt.Errorf("cannot read log file: %w", err)
	}

	mapper, err := makeMapper(conf, log, nil)
	if err != nil {
		return err
	}

	report := mapper.Run(ctx, maplib.Request{
		Provider:   opts.provider,
		Credential: opts.token,
		Content:    content,
	})

	log.Report(report.Messages)

	if report.Condition != nil {
		return fmt.Errorf("nothing to render: %w", report.Condition)
	}

	buf := bytes.Buffer{}
	page := maplib.Page{
		Selected:        maplib.ProviderName(opts.provider),
		Self:            report.Self,
		Messages:        report.Messages,
		Report:          report,
		FileName:        filepath.Base(opts.logPath),
		TileURL:         conf.Map.TileURL,
		TileAttribution: conf.Map.Attribution,
		Static:          true,
	}

	if err := maplib.WritePage(&buf, page); err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := buf.WriteTo(out); err != nil {
			return fmt.Errorf("cannot write a page: %w", err)
		}

		return nil
	}

	if err := afero.WriteFile(fs, opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write a page: %w", err)
	}

	log.appLog.Info().
		Str("output", opts.output).
		Int("points", len(report.View.Points)).
		Msg("Map was rendered")

	return nil
}
