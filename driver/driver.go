// Package driver feeds a ';' separated command script to an executor and
// writes one result line per command.
package driver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"go-linkedlist/config"
	"go-linkedlist/parser"
	"go-linkedlist/services/executor"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Driver struct {
	cfg *config.DriverConfig
	es  *executor.ExecutorService
	log logrus.FieldLogger
}

func New(cfg *config.DriverConfig, es *executor.ExecutorService, log logrus.FieldLogger) *Driver {
	return &Driver{cfg: cfg, es: es, log: log}
}

// Run executes every statement read from r. Results go to w as
// "ok: <result>" or "error: <err>". It returns the first command error when
// StopOnError is set, and read/write errors always.
func (d *Driver) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	s.Split(parser.CommandDivider)

	count := 0
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		stmt := s.Bytes()
		res, err := d.exec(stmt)
		if errors.Is(err, parser.ErrEmptyStatement) {
			continue
		}
		count++

		if d.cfg.Echo {
			if _, werr := fmt.Fprintf(w, "> %s\n", bytes.TrimSpace(stmt)); werr != nil {
				return errors.Wrap(werr, "failed to write statement")
			}
		}

		if err != nil {
			d.log.WithField("statement", count).Debugf("command failed: %v", err)
			if _, werr := fmt.Fprintf(w, "error: %v\n", err); werr != nil {
				return errors.Wrap(werr, "failed to write result")
			}
			if d.cfg.StopOnError {
				return errors.Wrapf(err, "statement #%d", count)
			}
			continue
		}

		if _, werr := fmt.Fprintf(w, "ok: %s\n", res); werr != nil {
			return errors.Wrap(werr, "failed to write result")
		}
	}

	if err := s.Err(); err != nil {
		return errors.Wrap(err, "failed to read script")
	}

	d.log.Infof("%d statements executed", count)
	return nil
}

func (d *Driver) exec(stmt []byte) (string, error) {
	cmd, err := parser.Parse(stmt)
	if err != nil {
		return "", err
	}
	return d.es.Exec(cmd)
}
