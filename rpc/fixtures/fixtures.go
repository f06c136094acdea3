// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"encoding/pem"
	"io/ioutil"
	"path"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/regionx/regionxd/fault"
)

// certificate file names in a test directory
const (
	CertificateFile = "rpc.crt"
	KeyFile         = "rpc.key"
)

// CreateCertificate - write a self signed certificate and key into
// dir, returns the DER certificate
func CreateCertificate(dir string) ([]byte, error) {
	certificatePEM, keyPEM, err := certgen.NewTLSCertPair("regionxd test", time.Now().Add(24*time.Hour), false, nil)
	if nil != err {
		return nil, err
	}

	block, _ := pem.Decode(certificatePEM)
	if nil == block {
		return nil, fault.InvalidCertificate
	}

	err = ioutil.WriteFile(path.Join(dir, CertificateFile), certificatePEM, 0600)
	if nil != err {
		return nil, err
	}
	err = ioutil.WriteFile(path.Join(dir, KeyFile), keyPEM, 0600)
	if nil != err {
		return nil, err
	}
	return block.Bytes, nil
}
