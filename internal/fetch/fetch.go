// Package fetch downloads the upstream RemoteControl handler to a local file.
package fetch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/doITmagic/lsrc2gen/internal/utils"
)

// Fetcher copies a single remote file to Dest.
type Fetcher struct {
	URL        string
	Dest       string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// Result describes a completed download.
type Result struct {
	Path     string
	Bytes    int64
	Attempts int
	Elapsed  time.Duration
}

// Fetch downloads URL to Dest, retrying transient failures with exponential
// backoff. The destination is only replaced once a download succeeded.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	if f.URL == "" {
		return nil, errors.New("fetch: source URL is empty")
	}
	if f.Dest == "" {
		return nil, errors.New("fetch: destination path is empty")
	}
	log := f.Logger
	if log == nil {
		log = zap.NewNop()
	}

	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}
	detected, err := getter.Detect(f.URL, pwd, getter.Detectors)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detect source type of %s", f.URL)
	}

	dest, err := filepath.Abs(f.Dest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve destination")
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create destination directory")
	}
	tmp := dest + ".part"
	defer os.Remove(tmp)

	start := time.Now()
	attempts := 0
	err = utils.RetryWithContext(ctx, f.MaxRetries, f.retryDelay(), func() error {
		attempts++
		log.Debug("Fetching with go-getter",
			zap.String("source", detected),
			zap.String("destination", tmp),
			zap.Int("attempt", attempts),
		)
		return f.get(ctx, detected, tmp)
	}, func(err error) bool {
		return ctx.Err() == nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", f.URL)
	}

	if err := os.Rename(tmp, dest); err != nil {
		return nil, errors.Wrap(err, "failed to move download into place")
	}
	info, err := os.Stat(dest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat download")
	}

	res := &Result{
		Path:     dest,
		Bytes:    info.Size(),
		Attempts: attempts,
		Elapsed:  time.Since(start),
	}
	log.Info("Fetch completed",
		zap.String("destination", res.Path),
		zap.Int64("bytes", res.Bytes),
		zap.Int("attempts", res.Attempts),
	)
	return res, nil
}

func (f *Fetcher) get(ctx context.Context, src, dst string) error {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	_ = os.Remove(dst)

	client := &getter.Client{
		Ctx:     ctx,
		Src:     src,
		Dst:     dst,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}
	return client.Get()
}

func (f *Fetcher) retryDelay() time.Duration {
	if f.RetryDelay > 0 {
		return f.RetryDelay
	}
	return time.Second
}
