// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/fixtures"
	"github.com/regionx/regionxd/rpc/certificate"
	rpcfixtures "github.com/regionx/regionxd/rpc/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "certificate")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	der, err := rpcfixtures.CreateCertificate(dir)
	require.NoError(t, err, "create certificate")

	tlsConfig, fingerprint, err := certificate.Load(
		logger.New(fixtures.LogCategory),
		"test",
		path.Join(dir, rpcfixtures.CertificateFile),
		path.Join(dir, rpcfixtures.KeyFile),
	)
	require.NoError(t, err, "load")
	require.NotNil(t, tlsConfig, "no TLS configuration")
	assert.Equal(t, 1, len(tlsConfig.Certificates), "certificate count")
	assert.Equal(t, sha3.Sum256(der), fingerprint, "wrong fingerprint")
}

func TestLoadDisabled(t *testing.T) {
	tlsConfig, _, err := certificate.Load(logger.New(fixtures.LogCategory), "test", "", "")
	assert.NoError(t, err, "plain TCP")
	assert.Nil(t, tlsConfig, "TLS configuration without certificate")
}

func TestLoadErrors(t *testing.T) {
	log := logger.New(fixtures.LogCategory)

	_, _, err := certificate.Load(log, "test", "only.crt", "")
	assert.Equal(t, fault.MissingParameters, err, "half a key pair")

	_, _, err = certificate.Load(log, "test", "/nonexistent/rpc.crt", "/nonexistent/rpc.key")
	assert.Error(t, err, "missing files")
}
