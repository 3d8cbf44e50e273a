package curesma

import (
	"errors"
	"time"
)

// Config holds the connection to the CureSMA data-exchange endpoint.
// Certificate material is held in configuration (it is distributed through
// the deployment's secret store) and written to ephemeral files per run.
type Config struct {
	// URL is the base URL of the exchange API.
	URL string `koanf:"url"`
	// Certificate is the PEM-encoded client certificate.
	Certificate string `koanf:"certificate"`
	// CertificateKey is the PEM-encoded private key, optionally
	// passphrase-encrypted.
	CertificateKey string `koanf:"certificatekey"`
	// Password decrypts CertificateKey when it is encrypted.
	Password string `koanf:"password"`
	// SubmittingOrg identifies the organization submitting data; it becomes
	// the identifier assigner on Patient resources.
	SubmittingOrg string `koanf:"submittingorg"`
	// Timeout bounds a single submission round trip.
	Timeout time.Duration `koanf:"timeout"`
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("curesma endpoint URL is not configured")
	}
	if c.Certificate == "" {
		return errors.New("curesma client certificate is not configured")
	}
	if c.CertificateKey == "" {
		return errors.New("curesma client certificate key is not configured")
	}
	if c.SubmittingOrg == "" {
		return errors.New("curesma submitting organization is not configured")
	}
	return nil
}

// DefaultConfig returns defaults for the optional fields.
func DefaultConfig() Config {
	return Config{
		Timeout: 60 * time.Second,
	}
}
