// Package curesma implements the certificate-authenticated submission client
// for the CureSMA data-exchange endpoint.
package curesma

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// SubmitError describes a failed submission. The instance stays unsent and is
// retried on a later scheduled run; the client itself never retries.
type SubmitError struct {
	URL        string
	StatusCode int
	Response   string
	Err        error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("PUT %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("PUT %s returned status %d: %s", e.URL, e.StatusCode, e.Response)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Client submits resource documents over mutual TLS.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a submission client from materialized certificate files.
func NewClient(cfg Config, certs *CertFiles) (*Client, error) {
	keyPair, err := loadKeyPair(certs.CertFile, certs.KeyFile, cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("load client certificate: %w", err)
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		// submissions require mutual TLS
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					Certificates:  []tls.Certificate{keyPair},
					MinVersion:    tls.VersionTLS12,
					Renegotiation: tls.RenegotiateOnceAsClient,
				},
			},
		},
	}, nil
}

// newWithHTTPClient is used by tests to bypass the TLS setup.
func newWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), httpClient: httpClient}
}

// Put submits one resource document. path is the resource path including the
// id, e.g. "/Condition/dx-12-3". Success is HTTP 200 exactly; everything
// else, including other 2xx codes, is reported as a *SubmitError.
func (c *Client) Put(ctx context.Context, path string, body []byte) error {
	target := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return &SubmitError{URL: target, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &SubmitError{URL: target, Err: err}
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &SubmitError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Response:   string(respBody),
		}
	}
	return nil
}

// loadKeyPair reads the certificate and key PEM files, decrypting the key
// with the passphrase when the PEM block is encrypted.
func loadKeyPair(certFile, keyFile, password string) (tls.Certificate, error) {
	certPEM, err := os.ReadFile(certFile)
	if err != nil {
		return tls.Certificate{}, err
	}
	keyPEM, err := os.ReadFile(keyFile)
	if err != nil {
		return tls.Certificate{}, err
	}
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return tls.Certificate{}, fmt.Errorf("no PEM block found in key file")
	}
	//nolint:staticcheck // legacy RSA PEM encryption is what the endpoint's CA issues
	if x509.IsEncryptedPEMBlock(block) {
		if password == "" {
			return tls.Certificate{}, fmt.Errorf("certificate key is encrypted but no passphrase is configured")
		}
		der, err := x509.DecryptPEMBlock(block, []byte(password))
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("decrypt certificate key: %w", err)
		}
		keyPEM = pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: der})
	}
	return tls.X509KeyPair(certPEM, keyPEM)
}
