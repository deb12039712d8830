// Package tlsutil loads TLS credentials for the credit service's gRPC server.
package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc/credentials"
)

// ServerConfig names the PEM files used to build server credentials.
// When ClientCAFile is set, clients must present a certificate signed by it.
type ServerConfig struct {
	CertFile     string
	KeyFile      string
	ClientCAFile string
}

// Enabled reports whether a certificate and key were configured.
func (c ServerConfig) Enabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// ServerTLSConfig builds a tls.Config from the configured files.
func ServerTLSConfig(cfg ServerConfig) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load server key pair: %w", err)
	}

	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if cfg.ClientCAFile != "" {
		caPEM, err := os.ReadFile(cfg.ClientCAFile)
		if err != nil {
			return nil, fmt.Errorf("tlsutil: read client CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("tlsutil: no certificates found in %s", cfg.ClientCAFile)
		}
		tlsCfg.ClientCAs = pool
		tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tlsCfg, nil
}

// ServerCredentials wraps ServerTLSConfig as gRPC transport credentials.
func ServerCredentials(cfg ServerConfig) (credentials.TransportCredentials, error) {
	tlsCfg, err := ServerTLSConfig(cfg)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(tlsCfg), nil
}
