package curesma

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CertFiles is the run-scoped certificate material on disk. The files exist
// for the duration of one run and must be removed exactly once at run end,
// whether or not the run succeeded. File names are randomized so a stale file
// from a crashed run can never be picked up by the next one.
type CertFiles struct {
	CertFile string
	KeyFile  string

	closeOnce sync.Once
	closeErr  error
}

// MaterializeCerts writes the configured certificate and key PEM blocks into
// temporary files readable only by this process.
func MaterializeCerts(cfg Config) (*CertFiles, error) {
	dir := os.TempDir()
	certFile := filepath.Join(dir, fmt.Sprintf("curesma-cert-%s.pem", uuid.NewString()))
	keyFile := filepath.Join(dir, fmt.Sprintf("curesma-key-%s.pem", uuid.NewString()))

	if err := os.WriteFile(certFile, []byte(cfg.Certificate), 0o600); err != nil {
		return nil, fmt.Errorf("write certificate file: %w", err)
	}
	if err := os.WriteFile(keyFile, []byte(cfg.CertificateKey), 0o600); err != nil {
		_ = os.Remove(certFile)
		return nil, fmt.Errorf("write certificate key file: %w", err)
	}
	log.Debug().Str("cert", certFile).Str("key", keyFile).Msg("Materialized client certificate files")
	return &CertFiles{CertFile: certFile, KeyFile: keyFile}, nil
}

// Close deletes the certificate files. Safe to call more than once; only the
// first call does work.
func (c *CertFiles) Close() error {
	c.closeOnce.Do(func() {
		for _, name := range []string{c.CertFile, c.KeyFile} {
			if err := os.Remove(name); err != nil {
				log.Error().Err(err).Str("file", name).Msg("Failed to delete certificate file")
				c.closeErr = err
			}
		}
	})
	return c.closeErr
}
