package tlsutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSelfSigned(t *testing.T, dir string) (certFile, keyFile string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "localhost"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		DNSNames:              []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	certFile = filepath.Join(dir, "server.pem")
	keyFile = filepath.Join(dir, "server-key.pem")
	require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))
	return certFile, keyFile
}

func TestServerTLSConfig(t *testing.T) {
	dir := t.TempDir()
	certFile, keyFile := writeSelfSigned(t, dir)

	t.Run("server only", func(t *testing.T) {
		cfg, err := ServerTLSConfig(ServerConfig{CertFile: certFile, KeyFile: keyFile})
		require.NoError(t, err)
		assert.Len(t, cfg.Certificates, 1)
		assert.Equal(t, tls.NoClientCert, cfg.ClientAuth)
	})

	t.Run("mutual TLS", func(t *testing.T) {
		cfg, err := ServerTLSConfig(ServerConfig{CertFile: certFile, KeyFile: keyFile, ClientCAFile: certFile})
		require.NoError(t, err)
		assert.Equal(t, tls.RequireAndVerifyClientCert, cfg.ClientAuth)
		assert.NotNil(t, cfg.ClientCAs)
	})

	t.Run("missing files", func(t *testing.T) {
		_, err := ServerTLSConfig(ServerConfig{CertFile: filepath.Join(dir, "nope"), KeyFile: keyFile})
		assert.Error(t, err)
	})

	t.Run("bad client CA", func(t *testing.T) {
		bogus := filepath.Join(dir, "bogus.pem")
		require.NoError(t, os.WriteFile(bogus, []byte("not a cert"), 0o600))
		_, err := ServerTLSConfig(ServerConfig{CertFile: certFile, KeyFile: keyFile, ClientCAFile: bogus})
		assert.Error(t, err)
	})
}

func TestServerConfigEnabled(t *testing.T) {
	assert.False(t, ServerConfig{}.Enabled())
	assert.False(t, ServerConfig{CertFile: "a"}.Enabled())
	assert.True(t, ServerConfig{CertFile: "a", KeyFile: "b"}.Enabled())
}
